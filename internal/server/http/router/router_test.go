package router

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/iscore/internal/config"
	"github.com/polkiloo/iscore/internal/domain/model"
	pkgAuth "github.com/polkiloo/iscore/internal/pkg/auth"
	"github.com/polkiloo/iscore/internal/server/http/dto"
	testhelpers "github.com/polkiloo/iscore/internal/test"
)

func newEngine(facade testhelpers.ViewFacadeStub, health testhelpers.HealthCheckerStub, verifier pkgAuth.KeyVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{Currency: "EGP", LookupTimeout: time.Second}
	return Setup(facade, health, verifier, cfg, logger)
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.ViewFacadeStub{ViewFn: func(ctx context.Context, view model.View, userID int64) (*model.ViewResult, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatal("expected lookup deadline on request context")
		}
		return &model.ViewResult{View: view, UserID: userID, Mix: &model.MixComponent{
			Record: model.MixRecord{TypesUsed: 3, TotalTypes: 5},
			Score:  60,
		}}, nil
	}}
	engine := newEngine(facade, testhelpers.HealthCheckerStub{}, pkgAuth.OpenVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/api/views/mix?user_id=5", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for view, got %d", resp.Code)
	}
	if resp.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
	var body dto.ViewResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Mix == nil || body.Mix.Score != 60 || body.UserID != 5 {
		t.Fatalf("unexpected body: %+v", body)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}
}

func TestSetupCompressesResponses(t *testing.T) {
	engine := newEngine(testhelpers.ViewFacadeStub{}, testhelpers.HealthCheckerStub{}, pkgAuth.OpenVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/api/views/score?user_id=1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", resp.Header().Get("Content-Encoding"))
	}
	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("invalid gzip body: %v", err)
	}
	defer reader.Close()
	if _, err := io.ReadAll(reader); err != nil {
		t.Fatalf("read gzip body: %v", err)
	}
}

func TestSetupProtectsAPIWithKey(t *testing.T) {
	verifier := testhelpers.KeyVerifierStub{Key: "secret", On: true}
	engine := newEngine(testhelpers.ViewFacadeStub{}, testhelpers.HealthCheckerStub{Err: errors.New("down")}, verifier)

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/views/home?user_id=1", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/views/home?user_id=1", nil)
	req.Header.Set("X-API-Key", "secret")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with key, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected health to bypass key check and report 503, got %d", resp.Code)
	}
}

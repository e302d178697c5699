package usecase

import (
	"errors"
	"testing"

	"github.com/polkiloo/iscore/internal/config"
	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
	"github.com/polkiloo/iscore/internal/scoring"
)

func TestNewPolicy(t *testing.T) {
	policy, err := newPolicy(&config.Config{AccountAgeMode: "elapsed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.AgeMode != scoring.AgeElapsedYears {
		t.Fatalf("expected elapsed mode, got %q", policy.AgeMode)
	}
	if policy.Now == nil {
		t.Fatal("expected clock to be set")
	}

	if _, err := newPolicy(&config.Config{AccountAgeMode: "lunar"}); !errors.Is(err, domainErrors.ErrInvalidAgeMode) {
		t.Fatalf("expected invalid age mode, got %v", err)
	}
}

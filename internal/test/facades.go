package test

import (
	"context"

	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
	"github.com/polkiloo/iscore/internal/domain/model"
)

// ViewFacadeStub provides controllable behaviour for view endpoints.
type ViewFacadeStub struct {
	ViewFn func(context.Context, model.View, int64) (*model.ViewResult, error)
}

// View delegates to provided function or returns an empty result for the view.
func (s ViewFacadeStub) View(ctx context.Context, view model.View, userID int64) (*model.ViewResult, error) {
	if s.ViewFn != nil {
		return s.ViewFn(ctx, view, userID)
	}
	return &model.ViewResult{View: view, UserID: userID}, nil
}

// HealthCheckerStub reports the configured error.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns Err.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

// KeyVerifierStub accepts only Key.
type KeyVerifierStub struct {
	Key string
	On  bool
}

// Verify compares key with the configured one.
func (s KeyVerifierStub) Verify(key string) error {
	if key != s.Key {
		return domainErrors.ErrInvalidAPIKey
	}
	return nil
}

// Enabled reports whether verification is active.
func (s KeyVerifierStub) Enabled() bool { return s.On }

package handlers

import (
	"context"

	"github.com/polkiloo/iscore/internal/domain/model"
)

// ViewFacade produces the read-out for a view.
type ViewFacade interface {
	View(ctx context.Context, view model.View, userID int64) (*model.ViewResult, error)
}

// HealthChecker reports whether the record stores are reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

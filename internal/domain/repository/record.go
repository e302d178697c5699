package repository

import (
	"context"

	"github.com/polkiloo/iscore/internal/domain/model"
)

// PaymentRepository reads payment punctuality counters.
type PaymentRepository interface {
	GetByUser(ctx context.Context, userID int64) (*model.PaymentRecord, error)
}

// DebtRepository reads credit utilization figures.
type DebtRepository interface {
	GetByUser(ctx context.Context, userID int64) (*model.DebtRecord, error)
}

// HistoryRepository reads account opening dates.
type HistoryRepository interface {
	GetByUser(ctx context.Context, userID int64) (*model.HistoryRecord, error)
}

// MixRepository reads credit mix counters.
type MixRepository interface {
	GetByUser(ctx context.Context, userID int64) (*model.MixRecord, error)
}

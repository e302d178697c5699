package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/iscore/internal/config"
	"github.com/polkiloo/iscore/internal/domain/repository"
)

// Module wires PostgreSQL record stores and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.PaymentRepository { return s.Payments() },
		func(s *Storage) repository.DebtRepository { return s.Debts() },
		func(s *Storage) repository.HistoryRepository { return s.Histories() },
		func(s *Storage) repository.MixRepository { return s.Mixes() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.Stores, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}

package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/iscore/internal/app"
	"github.com/polkiloo/iscore/internal/config"
	"github.com/polkiloo/iscore/internal/logger"
	"github.com/polkiloo/iscore/internal/pkg/auth"
	"github.com/polkiloo/iscore/internal/server/http/handlers"
	"github.com/polkiloo/iscore/internal/server/http/router"
	"github.com/polkiloo/iscore/internal/storage/postgres"
	"github.com/polkiloo/iscore/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.ViewFacade) handlers.ViewFacade { return f },
			func(s *postgres.Storage) handlers.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

package usecase

import (
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/iscore/internal/config"
	"github.com/polkiloo/iscore/internal/scoring"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newPolicy,
	NewProfileUseCase,
	NewScoreUseCase,
)

func newPolicy(cfg *config.Config) (Policy, error) {
	mode, err := scoring.ParseAgeMode(cfg.AccountAgeMode)
	if err != nil {
		return Policy{}, err
	}
	return Policy{AgeMode: mode, Now: time.Now}, nil
}

package app

import (
	"context"

	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
	"github.com/polkiloo/iscore/internal/domain/model"
	"github.com/polkiloo/iscore/internal/usecase"
)

type ViewFacade struct {
	profiles *usecase.ProfileUseCase
	scores   *usecase.ScoreUseCase
}

func NewViewFacade(profiles *usecase.ProfileUseCase, scores *usecase.ScoreUseCase) *ViewFacade {
	return &ViewFacade{profiles: profiles, scores: scores}
}

// View builds the read-out for one view. Only home consults the user store;
// the record views query their own source directly.
func (f *ViewFacade) View(ctx context.Context, view model.View, userID int64) (*model.ViewResult, error) {
	result := &model.ViewResult{View: view, UserID: userID}

	var err error
	switch view {
	case model.ViewHome:
		result.Profile, err = f.profiles.Profile(ctx, userID)
	case model.ViewPayment:
		result.Payment, err = f.scores.Payment(ctx, userID)
	case model.ViewDebt:
		result.Debt, err = f.scores.Debt(ctx, userID)
	case model.ViewHistory:
		result.History, err = f.scores.History(ctx, userID)
	case model.ViewMix:
		result.Mix, err = f.scores.Mix(ctx, userID)
	case model.ViewScore:
		result.Score, err = f.scores.Score(ctx, userID)
	default:
		return nil, domainErrors.ErrUnknownView
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

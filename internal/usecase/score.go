package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
	"github.com/polkiloo/iscore/internal/domain/model"
	"github.com/polkiloo/iscore/internal/domain/repository"
	"github.com/polkiloo/iscore/internal/scoring"
)

// Policy holds the tunable parts of scoring.
type Policy struct {
	AgeMode scoring.AgeMode
	Now     func() time.Time
}

func (p Policy) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// MissingRecordError reports that a user has no row in one of the record stores.
type MissingRecordError struct {
	Source model.Source
}

func (e *MissingRecordError) Error() string {
	return fmt.Sprintf("%s record missing", e.Source)
}

func (e *MissingRecordError) Unwrap() error { return domainErrors.ErrRecordMissing }

// ScoreUseCase reads the record stores and derives sub-scores and the iScore.
type ScoreUseCase struct {
	payments  repository.PaymentRepository
	debts     repository.DebtRepository
	histories repository.HistoryRepository
	mixes     repository.MixRepository
	policy    Policy
}

// NewScoreUseCase constructs ScoreUseCase.
func NewScoreUseCase(
	payments repository.PaymentRepository,
	debts repository.DebtRepository,
	histories repository.HistoryRepository,
	mixes repository.MixRepository,
	policy Policy,
) *ScoreUseCase {
	return &ScoreUseCase{payments: payments, debts: debts, histories: histories, mixes: mixes, policy: policy}
}

// Payment returns the payment record and its sub-score.
func (u *ScoreUseCase) Payment(ctx context.Context, userID int64) (*model.PaymentComponent, error) {
	rec, err := u.payments.GetByUser(ctx, userID)
	if err != nil {
		return nil, lookupError(model.SourcePayment, err)
	}
	return scoring.Payment(*rec), nil
}

// Debt returns the debt record, its utilization and sub-score.
func (u *ScoreUseCase) Debt(ctx context.Context, userID int64) (*model.DebtComponent, error) {
	rec, err := u.debts.GetByUser(ctx, userID)
	if err != nil {
		return nil, lookupError(model.SourceDebt, err)
	}
	return scoring.Debt(*rec), nil
}

// History returns the history record, account age and sub-score.
func (u *ScoreUseCase) History(ctx context.Context, userID int64) (*model.HistoryComponent, error) {
	rec, err := u.histories.GetByUser(ctx, userID)
	if err != nil {
		return nil, lookupError(model.SourceHistory, err)
	}
	return scoring.History(*rec, u.policy.now(), u.policy.AgeMode), nil
}

// Mix returns the credit mix record and its sub-score.
func (u *ScoreUseCase) Mix(ctx context.Context, userID int64) (*model.MixComponent, error) {
	rec, err := u.mixes.GetByUser(ctx, userID)
	if err != nil {
		return nil, lookupError(model.SourceMix, err)
	}
	return scoring.Mix(*rec), nil
}

// Score looks the four sources up one after another. Absent sources are
// listed in Missing and the composite is left unset; any other lookup error
// aborts the whole report.
func (u *ScoreUseCase) Score(ctx context.Context, userID int64) (*model.ScoreReport, error) {
	report := &model.ScoreReport{UserID: userID}

	var err error
	if report.Payment, err = u.Payment(ctx, userID); err != nil && !noteMissing(report, err) {
		return nil, err
	}
	if report.Debt, err = u.Debt(ctx, userID); err != nil && !noteMissing(report, err) {
		return nil, err
	}
	if report.History, err = u.History(ctx, userID); err != nil && !noteMissing(report, err) {
		return nil, err
	}
	if report.Mix, err = u.Mix(ctx, userID); err != nil && !noteMissing(report, err) {
		return nil, err
	}

	if len(report.Missing) > 0 {
		return report, nil
	}

	raw, scaled := scoring.Compute(model.SubScores{
		Payment: report.Payment.Score,
		Debt:    report.Debt.Score,
		History: report.History.Score,
		Mix:     report.Mix.Score,
	})
	report.Raw = &raw
	report.Final = &scaled
	return report, nil
}

// noteMissing records an absent source on report. It reports false for any
// other kind of error.
func noteMissing(report *model.ScoreReport, err error) bool {
	var missing *MissingRecordError
	if !errors.As(err, &missing) {
		return false
	}
	report.Missing = append(report.Missing, missing.Source)
	return true
}

func lookupError(source model.Source, err error) error {
	if errors.Is(err, domainErrors.ErrNotFound) {
		return &MissingRecordError{Source: source}
	}
	return fmt.Errorf("lookup %s record: %w", source, err)
}

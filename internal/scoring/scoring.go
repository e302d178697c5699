// Package scoring implements the iScore formula.
//
// Every function is pure: results depend only on the arguments, which makes
// repeated evaluation over identical records yield identical scores.
package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
	"github.com/polkiloo/iscore/internal/domain/model"
)

const (
	WeightPayment = 0.35
	WeightDebt    = 0.30
	WeightHistory = 0.15
	WeightMix     = 0.20

	MinScore = 300.0
	MaxScore = 850.0

	// historyHorizonYears is the account age that maps to a history score of 100.
	historyHorizonYears = 10.0
)

// AgeMode selects how account age is derived from the start date.
type AgeMode string

const (
	// AgeCalendarYears subtracts year components only, ignoring month and day.
	AgeCalendarYears AgeMode = "calendar"
	// AgeElapsedYears counts completed anniversaries.
	AgeElapsedYears AgeMode = "elapsed"
)

// ParseAgeMode converts configuration input into an AgeMode.
func ParseAgeMode(s string) (AgeMode, error) {
	switch AgeMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", AgeCalendarYears:
		return AgeCalendarYears, nil
	case AgeElapsedYears:
		return AgeElapsedYears, nil
	default:
		return "", fmt.Errorf("%w: %q", domainErrors.ErrInvalidAgeMode, s)
	}
}

// PaymentScore is the share of on-time payments, 0 when nothing was paid.
func PaymentScore(onTime, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(onTime) / float64(total) * 100
}

// DebtUtilization is used/limit. A zero limit counts as fully utilized.
func DebtUtilization(used, limit float64) float64 {
	if limit == 0 {
		return 1
	}
	return used / limit
}

// DebtScore is the unused share of the credit limit. Over-utilization goes negative.
func DebtScore(used, limit float64) float64 {
	return (1 - DebtUtilization(used, limit)) * 100
}

// AccountAge returns whole years between start and now according to mode.
func AccountAge(start, now time.Time, mode AgeMode) int {
	years := now.Year() - start.Year()
	if mode != AgeElapsedYears {
		return years
	}
	if now.Month() < start.Month() || (now.Month() == start.Month() && now.Day() < start.Day()) {
		years--
	}
	return years
}

// HistoryScore maps account age onto 0..100 per decade. It is not capped.
func HistoryScore(ageYears int) float64 {
	return float64(ageYears) / historyHorizonYears * 100
}

// MixScore is the share of tracked credit types in use, 0 when none are tracked.
func MixScore(used, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

// Raw is the weighted sum of the sub-scores on the nominal 0..100 scale.
func Raw(s model.SubScores) float64 {
	return WeightPayment*s.Payment +
		WeightDebt*s.Debt +
		WeightHistory*s.History +
		WeightMix*s.Mix
}

// Scale rescales a raw score from 0..100 onto MinScore..MaxScore.
func Scale(raw float64) float64 {
	return MinScore + raw/100*(MaxScore-MinScore)
}

// Compute returns the raw and scaled iScore for s.
func Compute(s model.SubScores) (raw, scaled float64) {
	raw = Raw(s)
	return raw, Scale(raw)
}

// Round2 rounds v half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

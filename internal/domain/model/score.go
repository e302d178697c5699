package model

// PaymentComponent is a payment record with its derived sub-score.
type PaymentComponent struct {
	Record PaymentRecord
	Score  float64
}

// DebtComponent is a debt record with its utilization ratio and sub-score.
type DebtComponent struct {
	Record      DebtRecord
	Utilization float64
	Score       float64
}

// HistoryComponent is a history record with the derived account age.
type HistoryComponent struct {
	Record   HistoryRecord
	AgeYears int
	Score    float64
}

// MixComponent is a credit mix record with its sub-score.
type MixComponent struct {
	Record MixRecord
	Score  float64
}

// SubScores carries the four weighted inputs of the iScore.
type SubScores struct {
	Payment float64
	Debt    float64
	History float64
	Mix     float64
}

// ScoreReport is the outcome of the final score view.
//
// Sub-scores of present sources are always filled. Raw and Final are set only
// when Missing is empty.
type ScoreReport struct {
	UserID  int64
	Payment *PaymentComponent
	Debt    *DebtComponent
	History *HistoryComponent
	Mix     *MixComponent
	Missing []Source
	Raw     *float64
	Final   *float64
}

// Complete reports whether every source contributed to the score.
func (r *ScoreReport) Complete() bool {
	return r != nil && len(r.Missing) == 0 && r.Final != nil
}

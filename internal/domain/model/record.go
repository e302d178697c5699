package model

import "time"

// Source names one of the record stores that feed the iScore.
type Source string

const (
	SourcePayment Source = "payment"
	SourceDebt    Source = "debt"
	SourceHistory Source = "history"
	SourceMix     Source = "mix"
)

// Sources lists the scoring sources in lookup order.
var Sources = []Source{SourcePayment, SourceDebt, SourceHistory, SourceMix}

// PaymentRecord holds payment punctuality counters.
type PaymentRecord struct {
	UserID int64
	OnTime int64
	Total  int64
}

// DebtRecord holds revolving credit usage. UsedCredit may exceed CreditLimit.
type DebtRecord struct {
	UserID      int64
	UsedCredit  float64
	CreditLimit float64
}

// HistoryRecord holds the date the user's oldest account was opened.
type HistoryRecord struct {
	UserID       int64
	AccountStart time.Time
}

// MixRecord holds how many credit types the user has out of those tracked.
type MixRecord struct {
	UserID     int64
	TypesUsed  int64
	TotalTypes int64
}

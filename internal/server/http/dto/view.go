package dto

import (
	"github.com/polkiloo/iscore/internal/domain/model"
	"github.com/polkiloo/iscore/internal/scoring"
)

// ViewResponse is the structured read-out of one view. Exactly one payload
// section is present; Lines carries the same data rendered for display.
type ViewResponse struct {
	View    string           `json:"view" yaml:"view"`
	UserID  int64            `json:"user_id" yaml:"user_id"`
	Profile *ProfileResponse `json:"profile,omitempty" yaml:"profile,omitempty"`
	Payment *PaymentResponse `json:"payment,omitempty" yaml:"payment,omitempty"`
	Debt    *DebtResponse    `json:"debt,omitempty" yaml:"debt,omitempty"`
	History *HistoryResponse `json:"history,omitempty" yaml:"history,omitempty"`
	Mix     *MixResponse     `json:"mix,omitempty" yaml:"mix,omitempty"`
	Score   *ScoreResponse   `json:"score,omitempty" yaml:"score,omitempty"`
	Lines   []string         `json:"lines" yaml:"lines"`
}

// ProfileResponse describes the user behind a lookup.
type ProfileResponse struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

type PaymentResponse struct {
	OnTime int64   `json:"on_time_payments" yaml:"on_time_payments"`
	Total  int64   `json:"total_payments" yaml:"total_payments"`
	Score  float64 `json:"score" yaml:"score"`
}

type DebtResponse struct {
	UsedCredit  float64 `json:"used_credit" yaml:"used_credit"`
	CreditLimit float64 `json:"credit_limit" yaml:"credit_limit"`
	Currency    string  `json:"currency,omitempty" yaml:"currency,omitempty"`
	Utilization float64 `json:"utilization" yaml:"utilization"`
	Score       float64 `json:"score" yaml:"score"`
}

type HistoryResponse struct {
	AccountStart string  `json:"account_start_date" yaml:"account_start_date"`
	AgeYears     int     `json:"age_years" yaml:"age_years"`
	Score        float64 `json:"score" yaml:"score"`
}

type MixResponse struct {
	TypesUsed  int64   `json:"types_used" yaml:"types_used"`
	TotalTypes int64   `json:"total_types" yaml:"total_types"`
	Score      float64 `json:"score" yaml:"score"`
}

// ScoreResponse lists the sub-scores that could be computed. Final is only
// present when Complete is true.
type ScoreResponse struct {
	Payment  *float64 `json:"payment,omitempty" yaml:"payment,omitempty"`
	Debt     *float64 `json:"debt,omitempty" yaml:"debt,omitempty"`
	History  *float64 `json:"history,omitempty" yaml:"history,omitempty"`
	Mix      *float64 `json:"mix,omitempty" yaml:"mix,omitempty"`
	Raw      *float64 `json:"raw,omitempty" yaml:"raw,omitempty"`
	Final    *float64 `json:"final,omitempty" yaml:"final,omitempty"`
	Complete bool     `json:"complete" yaml:"complete"`
	Missing  []string `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// ErrorResponse carries the informational message shown instead of a view.
type ErrorResponse struct {
	Error string `json:"error" yaml:"error"`
}

// NewViewResponse converts result into its wire form. Scores are rounded to two decimals.
func NewViewResponse(result *model.ViewResult, currency string, lines []string) ViewResponse {
	resp := ViewResponse{View: string(result.View), UserID: result.UserID, Lines: lines}
	if resp.Lines == nil {
		resp.Lines = []string{}
	}

	if u := result.Profile; u != nil {
		resp.Profile = &ProfileResponse{Name: u.Name, Email: u.Email}
	}
	if p := result.Payment; p != nil {
		resp.Payment = &PaymentResponse{OnTime: p.Record.OnTime, Total: p.Record.Total, Score: scoring.Round2(p.Score)}
	}
	if d := result.Debt; d != nil {
		resp.Debt = &DebtResponse{
			UsedCredit:  d.Record.UsedCredit,
			CreditLimit: d.Record.CreditLimit,
			Currency:    currency,
			Utilization: scoring.Round2(d.Utilization),
			Score:       scoring.Round2(d.Score),
		}
	}
	if h := result.History; h != nil {
		resp.History = &HistoryResponse{
			AccountStart: h.Record.AccountStart.Format("2006-01-02"),
			AgeYears:     h.AgeYears,
			Score:        scoring.Round2(h.Score),
		}
	}
	if m := result.Mix; m != nil {
		resp.Mix = &MixResponse{TypesUsed: m.Record.TypesUsed, TotalTypes: m.Record.TotalTypes, Score: scoring.Round2(m.Score)}
	}
	if s := result.Score; s != nil {
		resp.Score = newScoreResponse(s)
	}
	return resp
}

func newScoreResponse(r *model.ScoreReport) *ScoreResponse {
	resp := &ScoreResponse{Complete: r.Complete()}
	if r.Payment != nil {
		resp.Payment = rounded(r.Payment.Score)
	}
	if r.Debt != nil {
		resp.Debt = rounded(r.Debt.Score)
	}
	if r.History != nil {
		resp.History = rounded(r.History.Score)
	}
	if r.Mix != nil {
		resp.Mix = rounded(r.Mix.Score)
	}
	if r.Raw != nil {
		resp.Raw = rounded(*r.Raw)
	}
	if r.Final != nil {
		resp.Final = rounded(*r.Final)
	}
	for _, s := range r.Missing {
		resp.Missing = append(resp.Missing, string(s))
	}
	return resp
}

func rounded(v float64) *float64 {
	r := scoring.Round2(v)
	return &r
}

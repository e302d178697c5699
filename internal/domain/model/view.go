package model

import "strings"

// View enumerates the read-outs a caller can request.
type View string

const (
	ViewHome    View = "home"
	ViewPayment View = "payment"
	ViewDebt    View = "debt"
	ViewHistory View = "history"
	ViewMix     View = "mix"
	ViewScore   View = "score"
)

// Views lists every supported view in display order.
var Views = []View{ViewHome, ViewPayment, ViewDebt, ViewHistory, ViewMix, ViewScore}

// ParseView normalizes a view name. View names are case-insensitive.
func ParseView(raw string) View {
	return View(strings.ToLower(strings.TrimSpace(raw)))
}

// Valid reports whether v is one of the known views.
func (v View) Valid() bool {
	for _, known := range Views {
		if v == known {
			return true
		}
	}
	return false
}

// ViewResult carries the data rendered for one view. Exactly one of the
// payload fields is set, matching View.
type ViewResult struct {
	View    View
	UserID  int64
	Profile *User
	Payment *PaymentComponent
	Debt    *DebtComponent
	History *HistoryComponent
	Mix     *MixComponent
	Score   *ScoreReport
}

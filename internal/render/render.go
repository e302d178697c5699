// Package render turns view results into the labelled read-out shown to people.
package render

import (
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
	"github.com/polkiloo/iscore/internal/domain/model"
	"github.com/polkiloo/iscore/internal/scoring"
	"github.com/polkiloo/iscore/internal/usecase"
)

const (
	dateLayout  = "2006-01-02"
	unavailable = "unavailable"
)

var sourceTitles = map[model.Source]string{
	model.SourcePayment: "Payment History",
	model.SourceDebt:    "Debt Utilization",
	model.SourceHistory: "History Age",
	model.SourceMix:     "Credit Mix",
}

// Lines renders result as display lines. Numbers are rounded to two decimals.
func Lines(result *model.ViewResult, currency string) []string {
	if result == nil {
		return nil
	}
	switch result.View {
	case model.ViewHome:
		return homeLines(result.Profile)
	case model.ViewPayment:
		return paymentLines(result.Payment)
	case model.ViewDebt:
		return debtLines(result.Debt, currency)
	case model.ViewHistory:
		return historyLines(result.History)
	case model.ViewMix:
		return mixLines(result.Mix)
	case model.ViewScore:
		return scoreLines(result.Score)
	default:
		return []string{Message(domainErrors.ErrUnknownView)}
	}
}

// Text joins Lines with newlines.
func Text(result *model.ViewResult, currency string) string {
	return strings.Join(Lines(result, currency), "\n")
}

// Message maps an error to the informational text shown instead of a view.
func Message(err error) string {
	var missing *usecase.MissingRecordError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domainErrors.ErrMissingUserID):
		return "Please enter a user ID and load data first."
	case errors.Is(err, domainErrors.ErrInvalidUserID):
		return "User ID must be a positive whole number."
	case errors.Is(err, domainErrors.ErrUserNotFound):
		return "User not found."
	case errors.As(err, &missing):
		return fmt.Sprintf("No %s record found for this user.", missing.Source)
	case errors.Is(err, domainErrors.ErrRecordMissing):
		return "No record found for this user."
	case errors.Is(err, domainErrors.ErrUnknownView):
		return "Invalid view."
	case errors.Is(err, domainErrors.ErrInvalidAPIKey):
		return "Invalid API key."
	default:
		return "Unable to load data, try again later."
	}
}

func homeLines(u *model.User) []string {
	if u == nil {
		return []string{Message(domainErrors.ErrUserNotFound)}
	}
	return []string{
		"User: " + u.Name,
		"Email: " + u.Email,
		"Proceed through each view to load credit components.",
	}
}

func paymentLines(c *model.PaymentComponent) []string {
	if c == nil {
		return []string{Message(&usecase.MissingRecordError{Source: model.SourcePayment})}
	}
	return []string{
		"Payment History",
		fmt.Sprintf("On-time payments: %d", c.Record.OnTime),
		fmt.Sprintf("Total payments: %d", c.Record.Total),
		subScore(c.Score),
	}
}

func debtLines(c *model.DebtComponent, currency string) []string {
	if c == nil {
		return []string{Message(&usecase.MissingRecordError{Source: model.SourceDebt})}
	}
	return []string{
		"Debt Utilization",
		"Used Credit: " + money(c.Record.UsedCredit, currency),
		"Credit Limit: " + money(c.Record.CreditLimit, currency),
		subScore(c.Score),
	}
}

func historyLines(c *model.HistoryComponent) []string {
	if c == nil {
		return []string{Message(&usecase.MissingRecordError{Source: model.SourceHistory})}
	}
	return []string{
		"Credit History Age",
		"Account Started: " + c.Record.AccountStart.Format(dateLayout),
		fmt.Sprintf("Account Age: %d years", c.AgeYears),
		subScore(c.Score),
	}
}

func mixLines(c *model.MixComponent) []string {
	if c == nil {
		return []string{Message(&usecase.MissingRecordError{Source: model.SourceMix})}
	}
	return []string{
		"Credit Mix",
		fmt.Sprintf("Credit Types Used: %d", c.Record.TypesUsed),
		fmt.Sprintf("Total Types Tracked: %d", c.Record.TotalTypes),
		subScore(c.Score),
	}
}

func scoreLines(r *model.ScoreReport) []string {
	if r == nil {
		return nil
	}
	lines := []string{"Final Credit Score"}
	for _, source := range model.Sources {
		value := unavailable
		if score, ok := componentScore(r, source); ok {
			value = number(score)
		}
		lines = append(lines, fmt.Sprintf("%s Score: %s", sourceTitles[source], value))
	}

	if !r.Complete() {
		names := make([]string, len(r.Missing))
		for i, s := range r.Missing {
			names[i] = string(s)
		}
		return append(lines, fmt.Sprintf("Final iScore: %s (missing %s)", unavailable, strings.Join(names, ", ")))
	}
	return append(lines, fmt.Sprintf("Final iScore: %s / %d", number(*r.Final), int(scoring.MaxScore)))
}

func componentScore(r *model.ScoreReport, source model.Source) (float64, bool) {
	switch source {
	case model.SourcePayment:
		if r.Payment != nil {
			return r.Payment.Score, true
		}
	case model.SourceDebt:
		if r.Debt != nil {
			return r.Debt.Score, true
		}
	case model.SourceHistory:
		if r.History != nil {
			return r.History.Score, true
		}
	case model.SourceMix:
		if r.Mix != nil {
			return r.Mix.Score, true
		}
	}
	return 0, false
}

func subScore(v float64) string {
	return fmt.Sprintf("Score: %s / 100", number(v))
}

func money(v float64, currency string) string {
	if currency == "" {
		return number(v)
	}
	return number(v) + " " + currency
}

func number(v float64) string {
	return fmt.Sprintf("%.2f", scoring.Round2(v))
}

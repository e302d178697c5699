package ctl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/polkiloo/iscore/internal/app"
	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
	"github.com/polkiloo/iscore/internal/domain/model"
	"github.com/polkiloo/iscore/internal/render"
	"github.com/polkiloo/iscore/internal/scoring"
	"github.com/polkiloo/iscore/internal/server/http/dto"
	"github.com/polkiloo/iscore/internal/usecase"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

const (
	userFlag     = "user"
	viewFlag     = "view"
	formatFlag   = "format"
	ageModeFlag  = "age-mode"
	currencyFlag = "currency"
)

// lookupError keeps the user-facing message while preserving the cause.
type lookupError struct {
	msg string
	err error
}

func (e *lookupError) Error() string { return e.msg }

func (e *lookupError) Unwrap() error { return e.err }

func (rt *runtime) viewCmd() *cli.Command {
	return &cli.Command{
		Name:    "view",
		Aliases: []string{"v"},
		Usage:   "Prints one view for a user",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     userFlag,
				Aliases:  []string{"u"},
				Usage:    "User identifier to look up",
				Required: true,
			},
			&cli.StringFlag{
				Name:  viewFlag,
				Usage: "One of: home, payment, debt, history, mix, score",
				Value: string(model.ViewScore),
			},
			&cli.StringFlag{
				Name:  formatFlag,
				Usage: "Output format: text, json or yaml",
				Value: formatText,
			},
			&cli.StringFlag{
				Name:    ageModeFlag,
				Usage:   "Account age derivation: calendar or elapsed",
				Value:   string(scoring.AgeCalendarYears),
				Sources: cli.EnvVars("ACCOUNT_AGE_MODE"),
			},
			&cli.StringFlag{
				Name:    currencyFlag,
				Usage:   "Currency label printed next to debt amounts",
				Value:   "EGP",
				Sources: cli.EnvVars("CURRENCY"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := strings.ToLower(cmd.String(formatFlag))
			if format != formatText && format != formatJSON && format != formatYAML {
				return fmt.Errorf("unsupported format %q", format)
			}
			mode, err := scoring.ParseAgeMode(cmd.String(ageModeFlag))
			if err != nil {
				return err
			}

			userID, err := usecase.ParseUserID(cmd.String(userFlag))
			if err != nil {
				return &lookupError{msg: render.Message(err), err: err}
			}
			view := model.ParseView(cmd.String(viewFlag))
			if !view.Valid() {
				return &lookupError{msg: render.Message(domainErrors.ErrUnknownView), err: domainErrors.ErrUnknownView}
			}

			store, err := rt.openExisting(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			policy := usecase.Policy{AgeMode: mode, Now: time.Now}
			facade := app.NewViewFacade(
				usecase.NewProfileUseCase(store.Users()),
				usecase.NewScoreUseCase(store.Payments(), store.Debts(), store.Histories(), store.Mixes(), policy),
			)

			result, err := facade.View(ctx, view, userID)
			if err != nil {
				rt.logger.Debug("view lookup failed", "view", view, "user", userID, "error", err)
				return &lookupError{msg: render.Message(err), err: err}
			}

			return write(cmd.Root().Writer, format, result, cmd.String(currencyFlag))
		},
	}
}

func write(w io.Writer, format string, result *model.ViewResult, currency string) error {
	lines := render.Lines(result, currency)
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.NewViewResponse(result, currency, lines))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(dto.NewViewResponse(result, currency, lines))
	default:
		_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
		return err
	}
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Fixtures is the YAML document accepted by Import. Every record section is
// optional; a user without a payment entry simply has no payment record.
type Fixtures struct {
	Users []UserFixture `yaml:"users"`
}

// UserFixture describes one user and the records held about them.
type UserFixture struct {
	ID      int64           `yaml:"id"`
	Name    string          `yaml:"name"`
	Email   string          `yaml:"email"`
	Payment *PaymentFixture `yaml:"payment,omitempty"`
	Debt    *DebtFixture    `yaml:"debt,omitempty"`
	History *HistoryFixture `yaml:"history,omitempty"`
	Mix     *MixFixture     `yaml:"mix,omitempty"`
}

type PaymentFixture struct {
	OnTime int64 `yaml:"on_time"`
	Total  int64 `yaml:"total"`
}

type DebtFixture struct {
	UsedCredit  float64 `yaml:"used_credit"`
	CreditLimit float64 `yaml:"credit_limit"`
}

type HistoryFixture struct {
	AccountStart string `yaml:"account_start"`
}

type MixFixture struct {
	TypesUsed  int64 `yaml:"types_used"`
	TotalTypes int64 `yaml:"total_types"`
}

// ParseFixtures decodes a fixtures document.
func ParseFixtures(r io.Reader) (*Fixtures, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	for i, u := range fx.Users {
		if u.ID <= 0 {
			return nil, fmt.Errorf("fixture %d: user id must be positive", i)
		}
		if u.History != nil {
			if _, err := time.Parse(dateLayout, u.History.AccountStart); err != nil {
				return nil, fmt.Errorf("fixture %d: account_start must be YYYY-MM-DD: %w", i, err)
			}
		}
	}
	return &fx, nil
}

// Import writes the fixtures in a single transaction. Each imported user
// replaces every row stored for it, so a section left out of the fixture
// leaves that record absent. It returns the number of users written.
func (s *Store) Import(ctx context.Context, fx *Fixtures) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, u := range fx.Users {
		if err := importUser(ctx, tx, u); err != nil {
			return 0, fmt.Errorf("import user %d: %w", u.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	s.logger.Debug("fixtures imported", "users", len(fx.Users))
	return len(fx.Users), nil
}

var recordTables = []string{"payment_records", "debt_info", "history_info", "credit_mix"}

func importUser(ctx context.Context, tx *sql.Tx, u UserFixture) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO users (user_id, name, email) VALUES (?, ?, ?)`,
		u.ID, u.Name, u.Email); err != nil {
		return err
	}
	for _, table := range recordTables {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE user_id = ?`, u.ID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if p := u.Payment; p != nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO payment_records (user_id, on_time_payments, total_payments) VALUES (?, ?, ?)`,
			u.ID, p.OnTime, p.Total); err != nil {
			return err
		}
	}
	if d := u.Debt; d != nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO debt_info (user_id, used_credit, credit_limit) VALUES (?, ?, ?)`,
			u.ID, d.UsedCredit, d.CreditLimit); err != nil {
			return err
		}
	}
	if h := u.History; h != nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO history_info (user_id, account_start_date) VALUES (?, ?)`,
			u.ID, h.AccountStart); err != nil {
			return err
		}
	}
	if m := u.Mix; m != nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO credit_mix (user_id, types_used, total_types) VALUES (?, ?, ?)`,
			u.ID, m.TypesUsed, m.TotalTypes); err != nil {
			return err
		}
	}
	return nil
}

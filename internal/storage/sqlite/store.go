// Package sqlite keeps all record stores in a single local SQLite file.
// It backs the iscorectl sandbox.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
	"github.com/polkiloo/iscore/internal/domain/model"
	"github.com/polkiloo/iscore/internal/domain/repository"
)

const dateLayout = "2006-01-02"

//go:embed sql/*
var f embed.FS

// Store is a file backed implementation of repository.Factory.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ repository.Factory = (*Store)(nil)

// Open opens the database file at path. The schema is not created; call Init for that.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("database path not specified")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Init creates the record tables if they are missing.
func (s *Store) Init(ctx context.Context) error {
	b, err := f.ReadFile("sql/ddl.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, string(b)); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	s.logger.Debug("sandbox schema ready")
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Users() repository.UserRepository        { return userRepository{s.db} }
func (s *Store) Payments() repository.PaymentRepository  { return paymentRepository{s.db} }
func (s *Store) Debts() repository.DebtRepository        { return debtRepository{s.db} }
func (s *Store) Histories() repository.HistoryRepository { return historyRepository{s.db} }
func (s *Store) Mixes() repository.MixRepository         { return mixRepository{s.db} }

type userRepository struct{ db *sql.DB }

type paymentRepository struct{ db *sql.DB }

type debtRepository struct{ db *sql.DB }

type historyRepository struct{ db *sql.DB }

type mixRepository struct{ db *sql.DB }

func (r userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, name, email FROM users WHERE user_id = ?`, id).
		Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r paymentRepository) GetByUser(ctx context.Context, userID int64) (*model.PaymentRecord, error) {
	rec := model.PaymentRecord{UserID: userID}
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(on_time_payments, 0), COALESCE(total_payments, 0)
         FROM payment_records WHERE user_id = ?`, userID).
		Scan(&rec.OnTime, &rec.Total)
	if err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

func (r debtRepository) GetByUser(ctx context.Context, userID int64) (*model.DebtRecord, error) {
	rec := model.DebtRecord{UserID: userID}
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(used_credit, 0.0), COALESCE(credit_limit, 0.0)
         FROM debt_info WHERE user_id = ?`, userID).
		Scan(&rec.UsedCredit, &rec.CreditLimit)
	if err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

func (r historyRepository) GetByUser(ctx context.Context, userID int64) (*model.HistoryRecord, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT account_start_date FROM history_info
         WHERE user_id = ? AND account_start_date IS NOT NULL`, userID).
		Scan(&raw)
	if err != nil {
		return nil, notFound(err)
	}
	start, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("parse account start date %q: %w", raw, err)
	}
	return &model.HistoryRecord{UserID: userID, AccountStart: start}, nil
}

func (r mixRepository) GetByUser(ctx context.Context, userID int64) (*model.MixRecord, error) {
	rec := model.MixRecord{UserID: userID}
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(types_used, 0), COALESCE(total_types, 0)
         FROM credit_mix WHERE user_id = ?`, userID).
		Scan(&rec.TypesUsed, &rec.TotalTypes)
	if err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	return err
}

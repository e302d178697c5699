package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/iscore/internal/config"
	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
	"github.com/polkiloo/iscore/internal/domain/model"
	"github.com/polkiloo/iscore/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage exposes the record stores, each backed by its own PostgreSQL pool.
// Stores configured with the same DSN share a pool.
type Storage struct {
	users     pgxPool
	payments  pgxPool
	debts     pgxPool
	histories pgxPool
	mixes     pgxPool

	pools  []pgxPool
	logger *slog.Logger
}

type userRepository struct{ db pgxPool }

type paymentRepository struct{ db pgxPool }

type debtRepository struct{ db pgxPool }

type historyRepository struct{ db pgxPool }

type mixRepository struct{ db pgxPool }

var schema = struct {
	users, payments, debts, histories, mixes string
}{
	users: `CREATE TABLE IF NOT EXISTS users (
            user_id BIGINT PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL
        )`,
	payments: `CREATE TABLE IF NOT EXISTS payment_records (
            user_id BIGINT PRIMARY KEY,
            on_time_payments INTEGER,
            total_payments INTEGER
        )`,
	debts: `CREATE TABLE IF NOT EXISTS debt_info (
            user_id BIGINT PRIMARY KEY,
            used_credit NUMERIC(14, 2),
            credit_limit NUMERIC(14, 2)
        )`,
	histories: `CREATE TABLE IF NOT EXISTS history_info (
            user_id BIGINT PRIMARY KEY,
            account_start_date DATE
        )`,
	mixes: `CREATE TABLE IF NOT EXISTS credit_mix (
            user_id BIGINT PRIMARY KEY,
            types_used INTEGER,
            total_types INTEGER
        )`,
}

// New connects to every record store and makes sure its table exists.
func New(ctx context.Context, stores config.StoreURIs, logger *slog.Logger) (*Storage, error) {
	s := &Storage{logger: logger}
	byDSN := make(map[string]pgxPool)

	open := func(name, dsn string) (pgxPool, error) {
		if pool, ok := byDSN[dsn]; ok {
			return pool, nil
		}
		cfg, err := pgxpool.ParseConfig(dsn)
		if err != nil {
			return nil, fmt.Errorf("parse %s dsn: %w", name, err)
		}
		pool, err := newPgxPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect %s db: %w", name, err)
		}
		byDSN[dsn] = pool
		s.pools = append(s.pools, pool)
		return pool, nil
	}

	targets := []struct {
		name string
		dsn  string
		dst  *pgxPool
	}{
		{"users", stores.Users, &s.users},
		{"payments", stores.Payments, &s.payments},
		{"debt", stores.Debts, &s.debts},
		{"history", stores.Histories, &s.histories},
		{"mix", stores.Mixes, &s.mixes},
	}
	for _, t := range targets {
		pool, err := open(t.name, t.dsn)
		if err != nil {
			s.Close()
			return nil, err
		}
		*t.dst = pool
	}

	if err := s.initSchema(ctx); err != nil {
		s.Close()
		return nil, err
	}

	logger.Info("record stores connected", slog.Int("pools", len(s.pools)))
	return s, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	for _, pool := range s.pools {
		pool.Close()
	}
	s.pools = nil
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{db: s.users}
}

func (s *Storage) Payments() repository.PaymentRepository {
	return &paymentRepository{db: s.payments}
}

func (s *Storage) Debts() repository.DebtRepository {
	return &debtRepository{db: s.debts}
}

func (s *Storage) Histories() repository.HistoryRepository {
	return &historyRepository{db: s.histories}
}

func (s *Storage) Mixes() repository.MixRepository {
	return &mixRepository{db: s.mixes}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []struct {
		db   pgxPool
		stmt string
	}{
		{s.users, schema.users},
		{s.payments, schema.payments},
		{s.debts, schema.debts},
		{s.histories, schema.histories},
		{s.mixes, schema.mixes},
	}

	for _, st := range statements {
		if _, err := st.db.Exec(ctx, st.stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT user_id, name, email FROM users WHERE user_id=$1`
	var u model.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// --- Record repositories ---

func (r *paymentRepository) GetByUser(ctx context.Context, userID int64) (*model.PaymentRecord, error) {
	const query = `SELECT COALESCE(on_time_payments, 0), COALESCE(total_payments, 0)
                   FROM payment_records WHERE user_id=$1`
	rec := model.PaymentRecord{UserID: userID}
	if err := r.db.QueryRow(ctx, query, userID).Scan(&rec.OnTime, &rec.Total); err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

func (r *debtRepository) GetByUser(ctx context.Context, userID int64) (*model.DebtRecord, error) {
	const query = `SELECT COALESCE(used_credit, 0)::float8, COALESCE(credit_limit, 0)::float8
                   FROM debt_info WHERE user_id=$1`
	rec := model.DebtRecord{UserID: userID}
	if err := r.db.QueryRow(ctx, query, userID).Scan(&rec.UsedCredit, &rec.CreditLimit); err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

func (r *historyRepository) GetByUser(ctx context.Context, userID int64) (*model.HistoryRecord, error) {
	const query = `SELECT account_start_date FROM history_info
                   WHERE user_id=$1 AND account_start_date IS NOT NULL`
	rec := model.HistoryRecord{UserID: userID}
	if err := r.db.QueryRow(ctx, query, userID).Scan(&rec.AccountStart); err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

func (r *mixRepository) GetByUser(ctx context.Context, userID int64) (*model.MixRecord, error) {
	const query = `SELECT COALESCE(types_used, 0), COALESCE(total_types, 0)
                   FROM credit_mix WHERE user_id=$1`
	rec := model.MixRecord{UserID: userID}
	if err := r.db.QueryRow(ctx, query, userID).Scan(&rec.TypesUsed, &rec.TotalTypes); err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	return err
}

// HealthCheck verifies connectivity of every pool.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	for _, pool := range s.pools {
		if err := pool.Ping(ctx); err != nil {
			s.logger.Warn("store ping failed", slog.String("error", err.Error()))
			return err
		}
	}
	return nil
}

package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
)

const testFixtures = `
users:
  - id: 1
    name: Mona
    email: mona@example.com
    payment: {on_time: 8, total: 10}
    debt: {used_credit: 2000, credit_limit: 10000}
    history: {account_start: "2019-05-04"}
    mix: {types_used: 3, total_types: 5}
  - id: 2
    name: Karim
    email: karim@example.com
    debt: {used_credit: 500, credit_limit: 0}
`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(filepath.Join(t.TempDir(), "iscore.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Init(context.Background()))
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("", slog.Default())
	assert.Error(t, err)
}

func TestInitIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Init(context.Background()))
}

func TestImportAndRead(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	fx, err := ParseFixtures(strings.NewReader(testFixtures))
	require.NoError(t, err)

	n, err := s.Import(ctx, fx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	user, err := s.Users().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Mona", user.Name)
	assert.Equal(t, "mona@example.com", user.Email)

	payment, err := s.Payments().GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), payment.OnTime)
	assert.Equal(t, int64(10), payment.Total)

	debt, err := s.Debts().GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2000, debt.UsedCredit, 1e-9)
	assert.InDelta(t, 10000, debt.CreditLimit, 1e-9)

	history, err := s.Histories().GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.True(t, history.AccountStart.Equal(time.Date(2019, time.May, 4, 0, 0, 0, 0, time.UTC)))

	mix, err := s.Mixes().GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), mix.TypesUsed)
	assert.Equal(t, int64(5), mix.TotalTypes)

	zeroLimit, err := s.Debts().GetByUser(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, zeroLimit.CreditLimit)
}

func TestMissingRowsReadAsNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	fx, err := ParseFixtures(strings.NewReader(testFixtures))
	require.NoError(t, err)
	_, err = s.Import(ctx, fx)
	require.NoError(t, err)

	_, err = s.Users().GetByID(ctx, 42)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	_, err = s.Payments().GetByUser(ctx, 2)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	_, err = s.Histories().GetByUser(ctx, 2)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	_, err = s.Mixes().GetByUser(ctx, 2)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestNullColumns(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.db.ExecContext(ctx, `INSERT INTO payment_records (user_id, on_time_payments, total_payments) VALUES (3, 4, NULL)`)
	require.NoError(t, err)
	_, err = s.db.ExecContext(ctx, `INSERT INTO history_info (user_id, account_start_date) VALUES (3, NULL)`)
	require.NoError(t, err)

	payment, err := s.Payments().GetByUser(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, payment.Total)

	_, err = s.Histories().GetByUser(ctx, 3)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestImportReplacesExistingRows(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	fx, err := ParseFixtures(strings.NewReader(testFixtures))
	require.NoError(t, err)
	_, err = s.Import(ctx, fx)
	require.NoError(t, err)

	fx.Users[0].Payment.OnTime = 10
	_, err = s.Import(ctx, fx)
	require.NoError(t, err)

	payment, err := s.Payments().GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), payment.OnTime)
}

func TestImportDropsOmittedSections(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	fx, err := ParseFixtures(strings.NewReader(testFixtures))
	require.NoError(t, err)
	_, err = s.Import(ctx, fx)
	require.NoError(t, err)

	fx.Users[0].Debt = nil
	fx.Users[0].Mix = nil
	_, err = s.Import(ctx, fx)
	require.NoError(t, err)

	_, err = s.Debts().GetByUser(ctx, 1)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	_, err = s.Mixes().GetByUser(ctx, 1)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	payment, err := s.Payments().GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), payment.OnTime)
	_, err = s.Histories().GetByUser(ctx, 1)
	require.NoError(t, err)

	debt, err := s.Debts().GetByUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 500.0, debt.UsedCredit)
}

func TestParseFixturesRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"non positive id": "users:\n  - id: 0\n    name: x\n    email: y\n",
		"bad date":        "users:\n  - id: 1\n    name: x\n    email: y\n    history: {account_start: \"04/05/2019\"}\n",
		"unknown field":   "users:\n  - id: 1\n    nickname: x\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFixtures(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseFixturesEmptyDocument(t *testing.T) {
	fx, err := ParseFixtures(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, fx.Users)
}

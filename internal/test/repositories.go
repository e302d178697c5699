package test

import (
	"context"

	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
	"github.com/polkiloo/iscore/internal/domain/model"
	"github.com/polkiloo/iscore/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByID  map[int64]*model.User
	Err   error
	Calls int
}

// NewUserRepositoryStub constructs stub repository holding the given users.
func NewUserRepositoryStub(users ...model.User) *UserRepositoryStub {
	s := &UserRepositoryStub{ByID: make(map[int64]*model.User)}
	for i := range users {
		u := users[i]
		s.ByID[u.ID] = &u
	}
	return s
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// RecordRepositoryStub serves one kind of record keyed by user.
type RecordRepositoryStub[T any] struct {
	Records map[int64]T
	Err     error
	Calls   int
}

// NewRecordRepositoryStub returns an empty stub.
func NewRecordRepositoryStub[T any]() *RecordRepositoryStub[T] {
	return &RecordRepositoryStub[T]{Records: make(map[int64]T)}
}

// GetByUser returns the stored record, the configured error or not found.
func (s *RecordRepositoryStub[T]) GetByUser(ctx context.Context, userID int64) (*T, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	if rec, ok := s.Records[userID]; ok {
		return &rec, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Stores bundles one stub per record store.
type Stores struct {
	UserRepo    *UserRepositoryStub
	PaymentRepo *RecordRepositoryStub[model.PaymentRecord]
	DebtRepo    *RecordRepositoryStub[model.DebtRecord]
	HistoryRepo *RecordRepositoryStub[model.HistoryRecord]
	MixRepo     *RecordRepositoryStub[model.MixRecord]
}

// NewStores returns empty stores.
func NewStores() *Stores {
	return &Stores{
		UserRepo:    NewUserRepositoryStub(),
		PaymentRepo: NewRecordRepositoryStub[model.PaymentRecord](),
		DebtRepo:    NewRecordRepositoryStub[model.DebtRecord](),
		HistoryRepo: NewRecordRepositoryStub[model.HistoryRecord](),
		MixRepo:     NewRecordRepositoryStub[model.MixRecord](),
	}
}

func (s *Stores) Users() repository.UserRepository        { return s.UserRepo }
func (s *Stores) Payments() repository.PaymentRepository  { return s.PaymentRepo }
func (s *Stores) Debts() repository.DebtRepository        { return s.DebtRepo }
func (s *Stores) Histories() repository.HistoryRepository { return s.HistoryRepo }
func (s *Stores) Mixes() repository.MixRepository         { return s.MixRepo }

var _ repository.Factory = (*Stores)(nil)

package repository

import (
	"context"

	"github.com/polkiloo/iscore/internal/domain/model"
)

// UserRepository looks up user profiles.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

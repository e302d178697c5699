package errors

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrMissingUserID  = errors.New("missing user id")
	ErrInvalidUserID  = errors.New("invalid user id")
	ErrUserNotFound   = errors.New("user not found")
	ErrRecordMissing  = errors.New("record missing")
	ErrUnknownView    = errors.New("unknown view")
	ErrInvalidAPIKey  = errors.New("invalid api key")
	ErrInvalidAgeMode = errors.New("invalid account age mode")
)

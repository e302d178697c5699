package usecase

import (
	"strconv"
	"strings"

	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
)

// ParseUserID converts caller input into a user identifier.
// Empty input and "0" count as no identifier at all.
func ParseUserID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domainErrors.ErrMissingUserID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domainErrors.ErrInvalidUserID
	}
	switch {
	case id == 0:
		return 0, domainErrors.ErrMissingUserID
	case id < 0:
		return 0, domainErrors.ErrInvalidUserID
	}
	return id, nil
}

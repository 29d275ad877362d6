package usecase

import (
	"errors"
	"fmt"

	"parcel_backend/internal/shared/apperr"
)

var (
	// ErrOpenIDRequired is returned when a profile carries no external identifier.
	// It wraps apperr.ErrValidation.
	ErrOpenIDRequired = fmt.Errorf("%w: openId is required", apperr.ErrValidation)

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")
)

package service

import (
	"errors"
	"fmt"

	"github.com/shramik/admin-backend/internal/repository"
)

// Auth and management errors surfaced to handlers.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrInvalidToken       = errors.New("invalid token")
	ErrConflict           = errors.New("resource already exists")
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("action forbidden")
)

// translateRepoErr lifts repository sentinels into service sentinels.
func translateRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicateEmail), errors.Is(err, repository.ErrDuplicatePhone):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}

package repository

import (
	"context"
	"errors"

	"procommunity/internal/domain"
)

var (
	// ErrUserNotFound is returned when no user exists for the given id or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when creating a user with an email that is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository exposes storage operations for User records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, name, bio string) (*domain.User, error)
	Promote(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	ListAdmins(ctx context.Context) ([]domain.User, error)
	ListNonAdmins(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
}

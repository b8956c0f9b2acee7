package repository

import (
	"context"

	"reserveit/internal/domain"
)

// UserRepository defines storage operations for user accounts.
type UserRepository interface {
	// FindByUsername looks a user up by exact (case-sensitive) username.
	// Returns ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// Create inserts a new user. The username column carries a unique
	// index; a duplicate insert returns ErrDuplicateEntry.
	Create(ctx context.Context, user *domain.User) error
}

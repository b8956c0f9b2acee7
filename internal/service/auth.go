// Package service contains the business logic of the account and
// reservation stores.
package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"reserveit/internal/domain"
	"reserveit/internal/repository"
)

// AuthService handles account registration and authentication.
//
// Passwords are stored as bcrypt hashes, never in cleartext. Unknown-user
// and wrong-password login failures produce the same error so callers
// cannot probe for account existence.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates an AuthService instance.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	if userRepo == nil {
		panic("UserRepository cannot be nil for AuthService")
	}
	return &AuthService{userRepo: userRepo}
}

// Register creates a new account and returns it with the password cleared.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	logCtx := logrus.WithField("username", username)

	// Friendly pre-check for the common case. Enforcement is the unique
	// index on username: two concurrent registrations of the same name
	// both passing this check still cannot both insert.
	_, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil {
		logCtx.Warn("Registration failed: username already taken")
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		logCtx.WithError(err).Error("Database error checking username availability")
		return nil, ErrInternalServer
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return nil, ErrInternalServer
	}

	user := &domain.User{Username: username, Password: string(hashed)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			// Lost the race against a concurrent registration.
			logCtx.Warn("Registration failed: username taken concurrently")
			return nil, ErrUsernameTaken
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return nil, ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User registered successfully")
	user.Password = ""
	return user, nil
}

// Login verifies credentials and returns the matching account with the
// password cleared. Unknown username and wrong password return the same
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	logCtx := logrus.WithField("username", username)

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Warn("Login attempt failed: user not found")
			return nil, ErrInvalidCredentials
		}
		logCtx.WithError(err).Error("Database error finding user during login")
		return nil, ErrInternalServer
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		logCtx.Warn("Login attempt failed: invalid password")
		return nil, ErrInvalidCredentials
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in successfully")
	user.Password = ""
	return user, nil
}

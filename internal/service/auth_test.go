package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"reserveit/internal/domain"
	"reserveit/internal/repository"
	"reserveit/internal/repository/mocks"
	"reserveit/internal/service"
)

func TestAuthService_Register_Success(t *testing.T) {
	// Arrange
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo)
	ctx := context.Background()
	username := "alice"
	password := "pw1"

	mockUserRepo.On("FindByUsername", ctx, username).
		Return(nil, repository.ErrUserNotFound).
		Once()

	// The service clears the password on the struct it hands the repository
	// before returning, so the stored state is captured at call time and
	// asserted afterwards.
	var storedUsername, storedHash string
	mockUserRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*domain.User)
			storedUsername = user.Username
			storedHash = user.Password
			user.ID = 5
		}).
		Return(nil).
		Once()

	// Act
	user, err := authService.Register(ctx, username, password)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(5), user.ID)
	assert.Equal(t, username, user.Username)
	assert.Empty(t, user.Password, "password must not be echoed back")
	assert.Equal(t, username, storedUsername)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)),
		"stored password should be a bcrypt hash of the input")
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo)
	ctx := context.Background()

	_, err := authService.Register(ctx, "", "pw")
	assert.True(t, errors.Is(err, service.ErrMissingCredentials))

	_, err = authService.Register(ctx, "alice", "")
	assert.True(t, errors.Is(err, service.ErrMissingCredentials))

	// Validation failures never reach the repository.
	mockUserRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo)
	ctx := context.Background()
	username := "alice"

	existing := &domain.User{ID: 10, Username: username}
	mockUserRepo.On("FindByUsername", ctx, username).Return(existing, nil).Once()

	_, err := authService.Register(ctx, username, "pw2")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUsernameTaken))
	mockUserRepo.AssertExpectations(t)
	// The existing record is untouched.
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	// Both callers pass the pre-check; the unique index stops the second
	// insert and the constraint violation maps to the same conflict error.
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo)
	ctx := context.Background()
	username := "alice"

	mockUserRepo.On("FindByUsername", ctx, username).Return(nil, repository.ErrUserNotFound).Once()
	mockUserRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(repository.ErrDuplicateEntry).Once()

	_, err := authService.Register(ctx, username, "pw")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUsernameTaken))
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo)
	ctx := context.Background()
	username := "alice"
	password := "pw1"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userInDb := &domain.User{ID: 5, Username: username, Password: string(hashed)}

	mockUserRepo.On("FindByUsername", ctx, username).Return(userInDb, nil).Once()

	user, err := authService.Login(ctx, username, password)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(5), user.ID, "login should return the registered id")
	assert.Empty(t, user.Password)
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	// Unknown user and wrong password must yield the same error value and
	// message so a caller cannot probe for account existence.
	ctx := context.Background()

	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo)
	mockUserRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound).Once()
	_, errUnknown := authService.Login(ctx, "ghost", "whatever")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	mockUserRepo.On("FindByUsername", ctx, "alice").
		Return(&domain.User{ID: 1, Username: "alice", Password: string(hashed)}, nil).Once()
	_, errWrongPassword := authService.Login(ctx, "alice", "wrong")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPassword)
	assert.True(t, errors.Is(errUnknown, service.ErrInvalidCredentials))
	assert.True(t, errors.Is(errWrongPassword, service.ErrInvalidCredentials))
	assert.Equal(t, errUnknown.Error(), errWrongPassword.Error())
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo)

	_, err := authService.Login(context.Background(), "alice", "")
	assert.True(t, errors.Is(err, service.ErrMissingCredentials))
	mockUserRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"reserveit/internal/domain"
	"reserveit/internal/repository"
)

// ReservationRepository is a mock of repository.ReservationRepository.
type ReservationRepository struct {
	mock.Mock
}

func (m *ReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.Reservation)
	return list, args.Error(1)
}

func (m *ReservationRepository) FindByID(ctx context.Context, id uint) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	reservation, _ := args.Get(0).(*domain.Reservation)
	return reservation, args.Error(1)
}

func (m *ReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *ReservationRepository) UpdateOwned(ctx context.Context, id uint, username string, fields repository.ReservationUpdate) (int64, error) {
	args := m.Called(ctx, id, username, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReservationRepository) DeleteOwned(ctx context.Context, id uint, username string) (int64, error) {
	args := m.Called(ctx, id, username)
	return args.Get(0).(int64), args.Error(1)
}

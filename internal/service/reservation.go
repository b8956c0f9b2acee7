package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"reserveit/internal/domain"
	"reserveit/internal/repository"
)

// ReservationInput carries the client-supplied reservation fields.
type ReservationInput struct {
	RoomName  string
	Date      string
	StartTime string
	EndTime   string
	Purpose   string
	Username  string
}

// ReservationService handles listing, creation and owner-checked mutation
// of reservations.
//
// Update and Delete never read before writing: the conditional statement's
// affected-row count is the only existence/ownership signal, so the
// authorization check is atomic with the mutation and a caller cannot
// distinguish a missing reservation from one owned by someone else.
type ReservationService struct {
	reservationRepo repository.ReservationRepository
}

// NewReservationService creates a ReservationService instance.
func NewReservationService(reservationRepo repository.ReservationRepository) *ReservationService {
	if reservationRepo == nil {
		panic("ReservationRepository cannot be nil for ReservationService")
	}
	return &ReservationService{reservationRepo: reservationRepo}
}

// List returns all reservations ordered by date descending, then start
// time descending. No authentication and no filtering.
func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.reservationRepo.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Database error listing reservations")
		return nil, ErrInternalServer
	}
	return reservations, nil
}

// Create stores a new reservation tagged with the creating username. There
// is no check that the username belongs to an existing account and no
// overlap check: conflicting bookings for the same room and time are
// accepted.
func (s *ReservationService) Create(ctx context.Context, input ReservationInput) (*domain.Reservation, error) {
	if input.RoomName == "" || input.Date == "" || input.StartTime == "" ||
		input.EndTime == "" || input.Purpose == "" || input.Username == "" {
		return nil, ErrMissingFields
	}

	reservation := &domain.Reservation{
		RoomName:  input.RoomName,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Purpose:   input.Purpose,
		Username:  input.Username,
	}
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		logrus.WithError(err).WithField("room", input.RoomName).Error("Database error creating reservation")
		return nil, ErrInternalServer
	}

	logrus.WithFields(logrus.Fields{
		"reservation_id": reservation.ID,
		"room":           reservation.RoomName,
		"username":       reservation.Username,
	}).Info("Reservation created")
	return reservation, nil
}

// Update modifies the mutable fields of a reservation, but only when the
// requesting username matches the stored owner. The owner column itself is
// never written, whatever username the caller supplies. Zero affected rows
// (not found or not owner) collapse into ErrNotAllowedEdit.
func (s *ReservationService) Update(ctx context.Context, id uint, input ReservationInput) (*domain.Reservation, error) {
	if input.RoomName == "" || input.Date == "" || input.StartTime == "" ||
		input.EndTime == "" || input.Purpose == "" || input.Username == "" {
		return nil, ErrMissingFields
	}
	logCtx := logrus.WithFields(logrus.Fields{"reservation_id": id, "username": input.Username})

	affected, err := s.reservationRepo.UpdateOwned(ctx, id, input.Username, repository.ReservationUpdate{
		RoomName:  input.RoomName,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Purpose:   input.Purpose,
	})
	if err != nil {
		logCtx.WithError(err).Error("Database error updating reservation")
		return nil, ErrInternalServer
	}
	if affected == 0 {
		logCtx.Warn("Update rejected: reservation missing or owned by another user")
		return nil, ErrNotAllowedEdit
	}

	updated, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		logCtx.WithError(err).Error("Database error reading back updated reservation")
		return nil, ErrInternalServer
	}

	logCtx.Info("Reservation updated")
	return updated, nil
}

// Delete removes a reservation, but only when the requesting username
// matches the stored owner. Zero affected rows collapse into
// ErrNotAllowedDelete. Returns the deleted id.
func (s *ReservationService) Delete(ctx context.Context, id uint, username string) (uint, error) {
	if username == "" {
		return 0, ErrUsernameRequired
	}
	logCtx := logrus.WithFields(logrus.Fields{"reservation_id": id, "username": username})

	affected, err := s.reservationRepo.DeleteOwned(ctx, id, username)
	if err != nil {
		logCtx.WithError(err).Error("Database error deleting reservation")
		return 0, ErrInternalServer
	}
	if affected == 0 {
		logCtx.Warn("Delete rejected: reservation missing or owned by another user")
		return 0, ErrNotAllowedDelete
	}

	logCtx.Info("Reservation deleted")
	return id, nil
}

// IsValidationError reports whether err is one of the missing-field
// business errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrUsernameRequired)
}

package repository

import (
	"context"

	"reserveit/internal/domain"
)

// ReservationUpdate carries the mutable reservation fields for UpdateOwned.
// The owner username is intentionally absent: no update ever touches it.
type ReservationUpdate struct {
	RoomName  string
	Date      string
	StartTime string
	EndTime   string
	Purpose   string
}

// ReservationRepository defines storage operations for reservations.
//
// UpdateOwned and DeleteOwned are single conditional statements keyed on
// (id, username). They report how many rows were affected and never perform
// a separate existence read, so the authorization check is atomic with the
// mutation. Callers treat zero affected rows as their combined
// not-found/not-owner outcome.
type ReservationRepository interface {
	// FindAll returns every reservation ordered by date descending, then
	// start time descending.
	FindAll(ctx context.Context) ([]domain.Reservation, error)

	// FindByID returns a single reservation or ErrReservationNotFound.
	FindByID(ctx context.Context, id uint) (*domain.Reservation, error)

	// Create inserts a new reservation and fills in its generated ID.
	Create(ctx context.Context, reservation *domain.Reservation) error

	// UpdateOwned updates the mutable fields of the reservation matching
	// both id and owner username, returning the number of rows affected.
	UpdateOwned(ctx context.Context, id uint, username string, fields ReservationUpdate) (int64, error)

	// DeleteOwned removes the reservation matching both id and owner
	// username, returning the number of rows affected.
	DeleteOwned(ctx context.Context, id uint, username string) (int64, error)
}

package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"reserveit/internal/domain"
	"reserveit/internal/repository"
)

// GormReservationRepository is the GORM implementation of
// ReservationRepository.
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a GormReservationRepository instance.
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	if db == nil {
		panic("database connection cannot be nil for GormReservationRepository")
	}
	return &GormReservationRepository{db: db}
}

// FindAll returns every reservation, newest date first, then latest start
// time first. Ties beyond that are returned in storage order.
func (r *GormReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	err := r.db.WithContext(ctx).
		Order("date DESC, start_time DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find all reservations: %w", err)
	}
	return reservations, nil
}

// FindByID returns a single reservation by primary key.
func (r *GormReservationRepository) FindByID(ctx context.Context, id uint) (*domain.Reservation, error) {
	var reservation domain.Reservation
	err := r.db.WithContext(ctx).First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}
		return nil, fmt.Errorf("gorm: find reservation by id %d: %w", id, err)
	}
	return &reservation, nil
}

// Create inserts a new reservation and fills in the generated ID and
// CreatedAt.
func (r *GormReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	if err := r.db.WithContext(ctx).Create(reservation).Error; err != nil {
		return fmt.Errorf("gorm: create reservation (room: %s): %w", reservation.RoomName, err)
	}
	return nil
}

// UpdateOwned issues a single conditional UPDATE keyed on both id and owner
// username. The username column is never part of the SET clause, so
// ownership cannot be transferred. The affected-row count is the caller's
// only signal: zero means not-found or not-owner, indistinguishably.
func (r *GormReservationRepository) UpdateOwned(ctx context.Context, id uint, username string, fields repository.ReservationUpdate) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ? AND username = ?", id, username).
		Updates(map[string]interface{}{
			"room_name":  fields.RoomName,
			"date":       fields.Date,
			"start_time": fields.StartTime,
			"end_time":   fields.EndTime,
			"purpose":    fields.Purpose,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("gorm: update reservation %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteOwned issues a single conditional DELETE keyed on both id and owner
// username. With two concurrent deletes of the same row at most one sees a
// non-zero affected-row count.
func (r *GormReservationRepository) DeleteOwned(ctx context.Context, id uint, username string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Delete(&domain.Reservation{})
	if result.Error != nil {
		return 0, fmt.Errorf("gorm: delete reservation %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

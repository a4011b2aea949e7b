package services

import (
	"errors"
	"fmt"

	"hotel-receptionist/models"

	"gorm.io/gorm"
)

// ReservationService is the reservation store. Methods take an explicit
// handle so BookingService can run them inside its own transaction; pass nil
// to use the service's default connection.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

func (s *ReservationService) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return s.DB
}

// Insert assigns the reservation id on success. Referential integrity is
// checked up front: an unknown room fails with ErrIntegrity and leaves no row.
func (s *ReservationService) Insert(tx *gorm.DB, res *models.Reservation) error {
	db := s.handle(tx)

	var room models.Room
	if err := db.First(&room, res.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIntegrity
		}
		return fmt.Errorf("failed to verify room %d: %w", res.RoomID, err)
	}

	if err := db.Create(res).Error; err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

// ListForRoom returns the room's reservations, narrowed to those touching
// the range when one is supplied.
func (s *ReservationService) ListForRoom(tx *gorm.DB, roomID uint, rng DateRange) ([]models.Reservation, error) {
	q := s.handle(tx).Where("room_id = ?", roomID)
	if !rng.IsZero() {
		q = q.Where("check_in < ? AND check_out > ?", rng.CheckOut, rng.CheckIn)
	}

	var out []models.Reservation
	if err := q.Order("check_in ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations for room %d: %w", roomID, err)
	}
	if out == nil {
		out = []models.Reservation{}
	}
	return out, nil
}

// CountOverlapping counts confirmed reservations sharing at least one night
// with the range. Ranges are half-open, so back-to-back stays don't collide.
func (s *ReservationService) CountOverlapping(tx *gorm.DB, roomID uint, rng DateRange) (int64, error) {
	var count int64
	err := s.handle(tx).
		Model(&models.Reservation{}).
		Where("room_id = ? AND status = ?", roomID, models.ReservationConfirmed).
		Where("check_in < ? AND check_out > ?", rng.CheckOut, rng.CheckIn).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping reservations for room %d: %w", roomID, err)
	}
	return count, nil
}

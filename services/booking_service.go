package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"hotel-receptionist/models"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// DateRange is a half-open [CheckIn, CheckOut) stay. A zero range means
// "no availability filter".
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (r DateRange) IsZero() bool {
	return r.CheckIn.IsZero() && r.CheckOut.IsZero()
}

func (r DateRange) Valid() bool {
	return r.CheckIn.Before(r.CheckOut)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseDateRange parses both dates but does not order-check them; that is
// BookRoom's job so ErrInvalidRange surfaces uniformly.
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	ci, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, fmt.Errorf("check_in: %w", err)
	}
	co, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, fmt.Errorf("check_out: %w", err)
	}
	return DateRange{CheckIn: ci, CheckOut: co}, nil
}

// BookingService is the only writer to the inventory and reservation
// stores. Booking attempts for a given room are serialized by a per-room
// mutex so the overlap recheck and the insert are one atomic unit;
// unrelated rooms book concurrently.
type BookingService struct {
	DB           *gorm.DB
	rooms        *RoomService
	reservations *ReservationService

	roomLocks sync.Map // room id -> *sync.Mutex
}

func NewBookingService(db *gorm.DB, rooms *RoomService, reservations *ReservationService) *BookingService {
	return &BookingService{DB: db, rooms: rooms, reservations: reservations}
}

func (s *BookingService) lockRoom(roomID uint) *sync.Mutex {
	mu, _ := s.roomLocks.LoadOrStore(roomID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// FindRooms applies the static filters and, when a range is supplied, keeps
// only rooms with no overlapping confirmed reservation.
func (s *BookingService) FindRooms(filter RoomFilter, rng DateRange) ([]models.Room, error) {
	rooms, err := s.rooms.List(filter)
	if err != nil {
		return nil, err
	}
	if rng.IsZero() {
		return rooms, nil
	}
	if !rng.Valid() {
		return nil, ErrInvalidRange
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		n, err := s.reservations.CountOverlapping(nil, room.ID, rng)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			available = append(available, room)
		}
	}
	return available, nil
}

// BookRoom validates, then rechecks availability and inserts under the
// room's lock inside one transaction. Two simultaneous attempts for
// overlapping dates on the same room: exactly one wins, the other gets
// ErrConflict.
func (s *BookingService) BookRoom(roomID uint, guestName string, rng DateRange) (*models.Reservation, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, ErrGuestRequired
	}

	// Normalize to midnight before validating, so same-day times with
	// different clock components cannot slip through as a zero-night stay.
	ci := time.Date(rng.CheckIn.Year(), rng.CheckIn.Month(), rng.CheckIn.Day(), 0, 0, 0, 0, time.UTC)
	co := time.Date(rng.CheckOut.Year(), rng.CheckOut.Month(), rng.CheckOut.Day(), 0, 0, 0, 0, time.UTC)
	rng = DateRange{CheckIn: ci, CheckOut: co}

	if !rng.Valid() {
		return nil, ErrInvalidRange
	}
	if _, err := s.rooms.GetByID(roomID); err != nil {
		return nil, err
	}

	mu := s.lockRoom(roomID)
	mu.Lock()
	defer mu.Unlock()

	var result *models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.reservations.CountOverlapping(tx, roomID, rng)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrConflict
		}

		res := &models.Reservation{
			RoomID:    roomID,
			GuestName: guestName,
			CheckIn:   rng.CheckIn,
			CheckOut:  rng.CheckOut,
			Status:    models.ReservationConfirmed,
		}
		if err := s.reservations.Insert(tx, res); err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *BookingService) GetReservation(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := s.DB.Preload("Room").First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reservation %d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve reservation: %w", err)
	}
	return &res, nil
}

func (s *BookingService) ListReservations() ([]models.Reservation, error) {
	var list []models.Reservation
	if err := s.DB.
		Preload("Room").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	if list == nil {
		list = []models.Reservation{}
	}
	return list, nil
}

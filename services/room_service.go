package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-receptionist/models"

	"gorm.io/gorm"
)

// RoomFilter narrows List by static room attributes. Zero values mean
// "don't filter".
type RoomFilter struct {
	Type    string
	Amenity string
	MaxRate float64
}

// RoomService is the read-only inventory store. Rooms are seeded once and
// immutable afterwards, so reads need no locking.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) List(filter RoomFilter) ([]models.Room, error) {
	q := s.DB.Model(&models.Room{})
	if t := strings.TrimSpace(filter.Type); t != "" {
		q = q.Where("LOWER(type) = ?", strings.ToLower(t))
	}
	if filter.MaxRate > 0 {
		q = q.Where("rate <= ?", filter.MaxRate)
	}

	var rooms []models.Room
	if err := q.Order("rate ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	// Amenities live in a JSON column; match them here rather than with
	// driver-specific JSON operators so SQLite and MySQL behave the same.
	if a := strings.TrimSpace(filter.Amenity); a != "" {
		matched := make([]models.Room, 0, len(rooms))
		for _, room := range rooms {
			if room.HasAmenity(a) {
				matched = append(matched, room)
			}
		}
		rooms = matched
	}

	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return room, nil
}

func (s *RoomService) GetByNumber(number string) (models.Room, error) {
	var room models.Room
	err := s.DB.Where("room_number = ?", strings.TrimSpace(number)).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("failed to load room %q: %w", number, err)
	}
	return room, nil
}

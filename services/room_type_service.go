package services

import (
	"fmt"

	"hotel-receptionist/models"

	"gorm.io/gorm"
)

// RoomTypeService reads the room-type reference table. Types are part of
// the seeded closed set; there is no create/update path at runtime.
type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	if err := s.DB.Order("id ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}
	if types == nil {
		types = []models.RoomType{}
	}
	return types, nil
}

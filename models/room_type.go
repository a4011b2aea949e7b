package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType is read-mostly reference data seeded at startup.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string `json:"typeName" gorm:"uniqueIndex;type:varchar(50)"`
	Description string `json:"description"`
	MaxGuests   uint   `json:"maxGuests"`

	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

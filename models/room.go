package models

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Closed set of room types; seeding creates one RoomType row per value.
const (
	RoomTypeStandard = "Standard"
	RoomTypeDeluxe   = "Deluxe"
	RoomTypeSuite    = "Suite"
)

type Room struct {
	gorm.Model

	// Nullable so seed data without a resolved FK won't insert 0.
	RoomTypeID *uint  `json:"roomTypeId,omitempty" gorm:"column:room_type_id"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Name       string `json:"name" gorm:"type:varchar(100)"`

	Type         string         `json:"type" gorm:"type:varchar(50);index"`
	Rate         float64        `json:"rate"`
	Amenities    datatypes.JSON `json:"amenities"`
	MaxOccupancy int            `json:"maxOccupancy" gorm:"column:max_occupancy"`
	Description  string         `json:"description" gorm:"type:text"`

	RoomType RoomType `json:"-" gorm:"foreignKey:RoomTypeID"`
}

// AmenityList decodes the stored JSON array. A missing or malformed
// column reads as an empty list.
func (r Room) AmenityList() []string {
	if len(r.Amenities) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(r.Amenities, &out); err != nil {
		return nil
	}
	return out
}

func (r Room) HasAmenity(name string) bool {
	for _, a := range r.AmenityList() {
		if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

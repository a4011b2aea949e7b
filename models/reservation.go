package models

import (
	"time"

	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation rows are never physically deleted; a booking that goes away
// transitions to cancelled so the audit trail stays intact.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomID    uint              `gorm:"column:room_id;index;not null" json:"roomId"`
	GuestName string            `gorm:"column:guest_name;type:varchar(100)" json:"guestName"`
	CheckIn   time.Time         `gorm:"column:check_in" json:"checkIn"`
	CheckOut  time.Time         `gorm:"column:check_out" json:"checkOut"`
	Status    ReservationStatus `gorm:"column:status;type:varchar(20);default:'confirmed'" json:"status"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

func (r Reservation) Nights() int {
	n := int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

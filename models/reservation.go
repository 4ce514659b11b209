package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation lifecycle: Confirmed (pre-booked) or Occupied (walk-in) on
// creation, Occupied on check-in, then Completed on check-out or Cancelled
// before check-in.
const (
	ReservationConfirmed = "Confirmed"
	ReservationOccupied  = "Occupied"
	ReservationCompleted = "Completed"
	ReservationCancelled = "Cancelled"
)

type Reservation struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomID  uint `gorm:"index;column:room_id" json:"roomId"`
	GuestID uint `gorm:"index;column:guest_id" json:"guestId"`

	CheckInDate  time.Time  `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"check_out_date,omitempty"`

	Deposit int64  `gorm:"column:deposit;default:0" json:"deposit"`
	Status  string `gorm:"size:20;index;default:Confirmed" json:"status"`
	Note    string `gorm:"type:text" json:"note"`

	Room      Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Guest     Guest   `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Occupants []Guest `gorm:"many2many:reservation_occupants" json:"occupants,omitempty"`
}

// IsActive reports whether the reservation blocks its room's calendar.
func (r Reservation) IsActive() bool {
	return r.Status == ReservationConfirmed || r.Status == ReservationOccupied
}

package models

import (
	"gorm.io/gorm"
)

// Room status values. Status is a cached projection of the room's active
// reservation; only the reservation service writes it, always inside the
// same transaction as the reservation transition.
const (
	RoomStatusVacant   = "Vacant"
	RoomStatusDirty    = "Dirty"
	RoomStatusOccupied = "Occupied"
	RoomStatusBooked   = "Booked"
)

type Room struct {
	gorm.Model

	HotelID    uint   `gorm:"index;column:hotel_id" json:"hotelId"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	RoomType   string `json:"roomType" gorm:"column:room_type;size:50"`

	// Whole currency units per night (VND has no minor unit).
	PricePerNight int64  `json:"pricePerNight" gorm:"column:price_per_night"`
	Status        string `json:"status" gorm:"size:20;default:Vacant"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`
}

// IsBusy reports whether the room currently holds or awaits a guest.
func (r Room) IsBusy() bool {
	return r.Status == RoomStatusOccupied || r.Status == RoomStatusBooked
}

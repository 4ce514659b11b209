package models

import "time"

// Guest request states. Processing exists in the schema but the staff UI
// currently closes requests straight from New.
const (
	RequestStatusNew        = "New"
	RequestStatusProcessing = "Processing"
	RequestStatusCompleted  = "Completed"
)

// GuestRequest is an in-stay request submitted anonymously from the room's
// QR portal and triaged by staff.
type GuestRequest struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	RoomID        uint   `gorm:"index;column:room_id" json:"roomId"`
	ReservationID *uint  `gorm:"index;column:reservation_id" json:"reservationId,omitempty"`
	Content       string `gorm:"type:text" json:"content"`
	Status        string `gorm:"size:20;index;default:New" json:"status"`

	// Username of the staff member who closed the request.
	AssignedStaff string    `gorm:"size:150;column:assigned_staff" json:"assignedStaff,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Room        Room         `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Reservation *Reservation `gorm:"foreignKey:ReservationID" json:"-"`
}

package models

import "time"

// Hotel groups rooms under one property. A single instance usually runs with
// one row, but the schema supports a small chain.
type Hotel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Code      string    `gorm:"uniqueIndex;size:50" json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}

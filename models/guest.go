package models

import (
	"time"

	"gorm.io/datatypes"
)

// Identity document types accepted at registration.
const (
	IDTypeCitizenCard = "CCCD"
	IDTypeIdentity    = "CMND"
	IDTypePassport    = "PP"
	IDTypeOther       = "OTHER"
)

// Guest holds the temporary-residence registration record. IDNumber is the
// natural key: walk-ins and bookings upsert by it and never overwrite it.
type Guest struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FullName     string     `gorm:"size:255" json:"fullName"`
	DateOfBirth  *time.Time `json:"dateOfBirth"`
	IDType       string     `gorm:"size:10;default:CCCD" json:"idType"`
	IDNumber     string     `gorm:"uniqueIndex;size:50" json:"idNumber"`
	Address      string     `gorm:"size:500" json:"address"`
	Phone        string     `gorm:"size:20" json:"phone"`
	LicensePlate string     `gorm:"size:20" json:"licensePlate"`

	// Stored paths of identity photos under uploads/.
	Photos datatypes.JSON `gorm:"column:photos" json:"photos,omitempty"`
}

package models

import "time"

const (
	RoleReception    = "Reception"
	RoleHousekeeping = "Housekeeping"
	RoleGuard        = "Guard"
)

const (
	ShiftMorning   = "Morning"
	ShiftAfternoon = "Afternoon"
	ShiftNight     = "Night"
)

// StaffSchedule is one shift assignment on the weekly grid.
type StaffSchedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StaffName string    `gorm:"size:100" json:"staffName"`
	Role      string    `gorm:"size:20" json:"role"`
	Date      time.Time `gorm:"type:date;index" json:"date"`
	Shift     string    `gorm:"size:20;index" json:"shift"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

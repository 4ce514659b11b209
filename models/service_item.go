package models

import "time"

// ServiceItem is a catalog entry (minibar, laundry, ...). Charges snapshot
// its price by name, so deletion is blocked while any charge references it.
type ServiceItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemName  string    `gorm:"uniqueIndex;size:100" json:"itemName"`
	Price     int64     `gorm:"column:price" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

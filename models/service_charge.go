package models

import "time"

// ServiceCharge is an append-only billing line. Price is a snapshot of the
// catalog price at insertion time; catalog edits never touch existing rows.
type ServiceCharge struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReservationID uint      `gorm:"index;column:reservation_id" json:"reservationId"`
	ItemName      string    `gorm:"size:100;index" json:"itemName"`
	Quantity      int       `gorm:"default:1" json:"quantity"`
	Price         int64     `gorm:"column:price" json:"price"`
	CreatedAt     time.Time `json:"created_at"`

	Reservation Reservation `gorm:"foreignKey:ReservationID" json:"-"`
}

// TotalPrice is quantity times the snapshotted unit price.
func (c ServiceCharge) TotalPrice() int64 {
	return int64(c.Quantity) * c.Price
}

package services

import (
	"time"

	"hotel-pms/models"
)

// Nightly billing: the first night is owed as soon as the stay starts, and a
// remainder of more than six hours past whole elapsed days rounds up to one
// more night. The evaluation instant is always passed in, never read from a
// global clock, so checkout preview and checkout confirmation use the exact
// same method even though time passes between them.
const (
	nightLength            = 24 * time.Hour
	nightRoundingThreshold = 6 * time.Hour
)

// Bill is the settlement breakdown for one reservation at one instant.
type Bill struct {
	Nights       int                    `json:"nights"`
	RoomRate     int64                  `json:"roomRate"`
	RoomCost     int64                  `json:"roomCost"`
	ServiceCost  int64                  `json:"serviceCost"`
	GrandTotal   int64                  `json:"grandTotal"`
	Deposit      int64                  `json:"deposit"`
	FinalBill    int64                  `json:"finalBill"` // negative means refund due
	CheckIn      time.Time              `json:"checkIn"`
	CheckOutTime time.Time              `json:"checkOutTime"`
	Charges      []models.ServiceCharge `json:"charges"`
}

// ChargeableNights counts billable nights between check-in and the
// evaluation instant. Minimum one night regardless of duration.
func ChargeableNights(checkIn, until time.Time) int {
	if !until.After(checkIn) {
		return 1
	}
	elapsed := until.Sub(checkIn)
	nights := int(elapsed / nightLength)
	if nights < 1 {
		nights = 1
	}
	if elapsed%nightLength > nightRoundingThreshold {
		nights++
	}
	return nights
}

// CalculateBill prices a stay against the room's current nightly rate and
// the reservation's charge ledger. Pure: same inputs, same bill.
func CalculateBill(res models.Reservation, room models.Room, charges []models.ServiceCharge, at time.Time) Bill {
	nights := ChargeableNights(res.CheckInDate, at)
	roomCost := int64(nights) * room.PricePerNight

	var serviceCost int64
	for _, c := range charges {
		serviceCost += c.TotalPrice()
	}

	grand := roomCost + serviceCost
	return Bill{
		Nights:       nights,
		RoomRate:     room.PricePerNight,
		RoomCost:     roomCost,
		ServiceCost:  serviceCost,
		GrandTotal:   grand,
		Deposit:      res.Deposit,
		FinalBill:    grand - res.Deposit,
		CheckIn:      res.CheckInDate,
		CheckOutTime: at,
		Charges:      charges,
	}
}

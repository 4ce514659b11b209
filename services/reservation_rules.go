package services

import (
	"time"

	"hotel-pms/models"
)

// CheckinAlertWindow is how far ahead of an upcoming Confirmed check-in the
// dashboard starts flagging the room.
const CheckinAlertWindow = 30 * time.Minute

// openEndedStay is the span assumed for conflict checking when a booking has
// no declared check-out.
const openEndedStay = 24 * time.Hour

// DefaultCheckout returns the check-out used for conflict checking when the
// booking is open-ended.
func DefaultCheckout(checkIn time.Time) time.Time {
	return checkIn.Add(openEndedStay)
}

// Overlaps reports whether two half-open [start, end) intervals collide.
// Back-to-back stays that merely touch at a boundary do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// BlocksWindow reports whether an existing reservation collides with a
// proposed [start, end) stay on the same room. An Occupied stay without a
// check-out has no end until the guest actually leaves, so it blocks
// everything from its check-in forward; an open-ended Confirmed booking is
// assumed one day long.
func BlocksWindow(res models.Reservation, start, end time.Time) bool {
	if !res.IsActive() {
		return false
	}
	if res.CheckOutDate == nil && res.Status == models.ReservationOccupied {
		return res.CheckInDate.Before(end)
	}
	resEnd := DefaultCheckout(res.CheckInDate)
	if res.CheckOutDate != nil {
		resEnd = *res.CheckOutDate
	}
	return Overlaps(res.CheckInDate, resEnd, start, end)
}

// StartsOnOrBefore reports whether the check-in calendar date is today or
// earlier, ignoring the time of day. Used to decide whether a fresh booking
// should flip a Vacant room to Booked immediately.
func StartsOnOrBefore(checkIn, now time.Time) bool {
	ciY, ciM, ciD := checkIn.Date()
	nY, nM, nD := now.Date()
	ci := time.Date(ciY, ciM, ciD, 0, 0, 0, 0, time.UTC)
	n := time.Date(nY, nM, nD, 0, 0, 0, 0, time.UTC)
	return !ci.After(n)
}

package services

import (
	"testing"
	"time"

	"hotel-pms/models"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 4, 1, 14, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"FullyBefore", base, base.Add(day), base.Add(2 * day), base.Add(3 * day), false},
		{"BackToBackTouching", base, base.Add(day), base.Add(day), base.Add(2 * day), false},
		{"PartialOverlap", base, base.Add(2 * day), base.Add(day), base.Add(3 * day), true},
		{"Contained", base, base.Add(3 * day), base.Add(day), base.Add(2 * day), true},
		{"Identical", base, base.Add(day), base, base.Add(day), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// symmetric
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestStartsOnOrBefore(t *testing.T) {
	now := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)

	assert.True(t, StartsOnOrBefore(time.Date(2026, 4, 15, 23, 0, 0, 0, time.UTC), now),
		"later today still counts as today")
	assert.True(t, StartsOnOrBefore(now.Add(-48*time.Hour), now))
	assert.False(t, StartsOnOrBefore(time.Date(2026, 4, 16, 0, 30, 0, 0, time.UTC), now))
}

func TestBlocksWindow(t *testing.T) {
	now := time.Date(2026, 4, 20, 14, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	ptr := func(t time.Time) *time.Time { return &t }

	cases := []struct {
		name string
		res  models.Reservation
		want bool
	}{
		{
			// a walk-in from three days ago with no declared check-out
			// still holds the room today
			"OpenEndedOccupiedNeverExpires",
			models.Reservation{Status: models.ReservationOccupied, CheckInDate: now.Add(-3 * day)},
			true,
		},
		{
			"OpenEndedOccupiedStartingAfterWindow",
			models.Reservation{Status: models.ReservationOccupied, CheckInDate: now.Add(2 * day)},
			false,
		},
		{
			"OpenEndedConfirmedDefaultsToOneDay",
			models.Reservation{Status: models.ReservationConfirmed, CheckInDate: now.Add(-2 * day)},
			false,
		},
		{
			"OpenEndedConfirmedSameDay",
			models.Reservation{Status: models.ReservationConfirmed, CheckInDate: now.Add(-2 * time.Hour)},
			true,
		},
		{
			"BoundedStayOverlapping",
			models.Reservation{Status: models.ReservationOccupied, CheckInDate: now.Add(-day),
				CheckOutDate: ptr(now.Add(12 * time.Hour))},
			true,
		},
		{
			"BoundedStayEndedBackToBack",
			models.Reservation{Status: models.ReservationConfirmed, CheckInDate: now.Add(-2 * day),
				CheckOutDate: ptr(now)},
			false,
		},
		{
			"CompletedStayNeverBlocks",
			models.Reservation{Status: models.ReservationCompleted, CheckInDate: now.Add(-3 * day)},
			false,
		},
		{
			"CancelledBookingNeverBlocks",
			models.Reservation{Status: models.ReservationCancelled, CheckInDate: now},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BlocksWindow(tc.res, now, now.Add(day)))
		})
	}
}

func TestDefaultCheckout(t *testing.T) {
	checkIn := time.Date(2026, 4, 15, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, checkIn.Add(24*time.Hour), DefaultCheckout(checkIn))
}

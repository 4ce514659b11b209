package services

import (
	"testing"
	"time"

	"hotel-pms/models"

	"github.com/stretchr/testify/assert"
)

func TestRegistryRowFlattening(t *testing.T) {
	checkIn := time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC)
	dob := time.Date(1988, 2, 20, 0, 0, 0, 0, time.UTC)

	guest := models.Guest{
		FullName:     "Tran Van A",
		DateOfBirth:  &dob,
		IDType:       models.IDTypeCitizenCard,
		IDNumber:     "012345678901",
		LicensePlate: "30A-123.45",
		Address:      "Hanoi",
		Phone:        "0900000001",
	}
	stay := models.Reservation{
		CheckInDate: checkIn,
		Room:        models.Room{RoomNumber: "201"},
	}

	row := registryRow(guest, stay)

	assert.Equal(t, "Tran Van A", row.FullName)
	assert.Equal(t, models.IDTypeCitizenCard, row.IDType)
	assert.Equal(t, "012345678901", row.IDNumber)
	assert.Equal(t, "30A-123.45", row.LicensePlate)
	assert.Equal(t, "201", row.RoomNumber)
	assert.Equal(t, checkIn, row.CheckIn)
	assert.Nil(t, row.CheckOut, "open-ended stay carries no check-out")
}

package services

import (
	"testing"
	"time"

	"hotel-pms/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlySummary(t *testing.T) {
	db, mock := newGormMock(t)
	svc := NewReportService(db)

	anchor := time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)
	checkIn := time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(48 * time.Hour)

	mock.ExpectQuery("SELECT count(.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery("SELECT count(.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT count(.+) FROM `reservations`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	// one stay completed inside the month
	mock.ExpectQuery("SELECT (.+) FROM `reservations`").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "created_at", "updated_at", "deleted_at",
			"room_id", "guest_id", "check_in_date", "check_out_date",
			"deposit", "status", "note",
		}).AddRow(6, checkIn, checkOut, nil, 2, 1, checkIn, checkOut,
			100000, models.ReservationCompleted, ""))
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(roomRow(2, "102", models.RoomStatusVacant))
	mock.ExpectQuery("SELECT (.+) FROM `service_charges`").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "reservation_id", "item_name", "quantity", "price", "created_at",
		}).AddRow(1, 6, "Laundry", 1, 50000, checkIn))

	report, err := svc.MonthlySummary(anchor)
	require.NoError(t, err)

	assert.Equal(t, "2026-05", report.Month)
	assert.Equal(t, int64(4), report.TotalRooms)
	assert.Equal(t, int64(1), report.OccupiedRooms)
	assert.Equal(t, int64(3), report.MonthStays)
	assert.Equal(t, int64(1), report.CompletedStays)
	// 2 nights x 500000 + 50000; deposits do not reduce revenue
	assert.Equal(t, int64(1050000), report.Revenue)

	assert.NoError(t, mock.ExpectationsWereMet())
}

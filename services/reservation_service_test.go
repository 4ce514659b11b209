package services

import (
	"testing"
	"time"

	"hotel-pms/models"
	"hotel-pms/pmserr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func reservationRow(id uint, roomID uint, status string, checkIn time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "deleted_at",
		"room_id", "guest_id", "check_in_date", "check_out_date",
		"deposit", "status", "note",
	}).AddRow(id, checkIn, checkIn, nil, roomID, 1, checkIn, nil, 0, status, "")
}

func roomRow(id uint, number, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "deleted_at",
		"hotel_id", "room_number", "room_type", "price_per_night", "status",
	}).AddRow(id, time.Now(), time.Now(), nil, 1, number, "Standard", 500000, status)
}

func TestCheckInRejectsNonConfirmed(t *testing.T) {
	now := time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		status string
	}{
		{"AlreadyOccupied", models.ReservationOccupied},
		{"Completed", models.ReservationCompleted},
		{"Cancelled", models.ReservationCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newGormMock(t)
			svc := &ReservationService{DB: db, Now: fixedClock(now)}

			mock.ExpectBegin()
			mock.ExpectQuery("SELECT (.+) FROM `reservations`").
				WillReturnRows(reservationRow(7, 3, tc.status, now.Add(-time.Hour)))
			mock.ExpectRollback()

			res, err := svc.CheckIn(7)
			assert.Nil(t, res)

			var invalid *pmserr.InvalidStateError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.status, invalid.Current)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCheckInMissingReservation(t *testing.T) {
	db, mock := newGormMock(t)
	svc := NewReservationService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `reservations`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.CheckIn(99)

	var notFound *pmserr.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "reservation", notFound.Entity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelRejectsOccupiedStay(t *testing.T) {
	now := time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC)
	db, mock := newGormMock(t)
	svc := &ReservationService{DB: db, Now: fixedClock(now)}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `reservations`").
		WillReturnRows(reservationRow(4, 2, models.ReservationOccupied, now.Add(-3*time.Hour)))
	mock.ExpectRollback()

	err := svc.Cancel(4)

	var invalid *pmserr.InvalidStateError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "cancel", invalid.Op)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckOutRejectsConfirmedBooking(t *testing.T) {
	now := time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC)
	db, mock := newGormMock(t)
	svc := &ReservationService{DB: db, Now: fixedClock(now)}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `reservations`").
		WillReturnRows(reservationRow(5, 2, models.ReservationConfirmed, now.Add(2*time.Hour)))
	mock.ExpectRollback()

	bill, err := svc.CheckOut(5)
	assert.Nil(t, bill)

	var invalid *pmserr.InvalidStateError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "check-out", invalid.Op)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalkInRejectsBusyRoom(t *testing.T) {
	now := time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC)

	for _, status := range []string{models.RoomStatusOccupied, models.RoomStatusBooked} {
		t.Run(status, func(t *testing.T) {
			db, mock := newGormMock(t)
			svc := &ReservationService{DB: db, Now: fixedClock(now)}

			mock.ExpectBegin()
			mock.ExpectQuery("SELECT (.+) FROM `rooms`").
				WillReturnRows(roomRow(2, "102", status))
			mock.ExpectRollback()

			res, err := svc.WalkIn(2, GuestInput{FullName: "Pham Van D", IDNumber: "0123456789"}, 0, "")
			assert.Nil(t, res)

			var invalid *pmserr.InvalidStateError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, status, invalid.Current)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWalkInValidatesGuestBeforeTouchingDB(t *testing.T) {
	db, mock := newGormMock(t)
	svc := NewReservationService(db)

	_, err := svc.WalkIn(2, GuestInput{FullName: "No Papers"}, 0, "")

	var v *pmserr.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "id_number", v.Field)
	assert.NoError(t, mock.ExpectationsWereMet(), "no SQL should run")
}

func TestCreateBookingValidation(t *testing.T) {
	db, mock := newGormMock(t)
	svc := NewReservationService(db)
	checkIn := time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)

	t.Run("MissingRoom", func(t *testing.T) {
		_, err := svc.CreateBooking(BookingInput{
			CheckIn: checkIn,
			Guest:   GuestInput{FullName: "A", IDNumber: "1"},
		})
		var v *pmserr.ValidationError
		require.ErrorAs(t, err, &v)
		assert.Equal(t, "room_id", v.Field)
	})

	t.Run("CheckOutBeforeCheckIn", func(t *testing.T) {
		out := checkIn.Add(-time.Hour)
		_, err := svc.CreateBooking(BookingInput{
			RoomID:   1,
			CheckIn:  checkIn,
			CheckOut: &out,
			Guest:    GuestInput{FullName: "A", IDNumber: "1"},
		})
		var v *pmserr.ValidationError
		require.ErrorAs(t, err, &v)
		assert.Equal(t, "check_out_date", v.Field)
	})

	t.Run("CompletedNotAllowedAsInitialStatus", func(t *testing.T) {
		_, err := svc.CreateBooking(BookingInput{
			RoomID:  1,
			CheckIn: checkIn,
			Status:  models.ReservationCompleted,
			Guest:   GuestInput{FullName: "A", IDNumber: "1"},
		})
		var v *pmserr.ValidationError
		require.ErrorAs(t, err, &v)
		assert.Equal(t, "status", v.Field)
	})

	assert.NoError(t, mock.ExpectationsWereMet(), "validation failures never reach the database")
}

func TestCreateBookingOverlapConflict(t *testing.T) {
	now := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	db, mock := newGormMock(t)
	svc := &ReservationService{DB: db, Now: fixedClock(now)}

	checkIn := time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(48 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(roomRow(3, "201", models.RoomStatusVacant))
	// conflicting stay already on the room
	mock.ExpectQuery("SELECT (.+) FROM `reservations`").
		WillReturnRows(reservationRow(11, 3, models.ReservationConfirmed, checkIn.Add(12*time.Hour)))
	// preload of the conflicting stay's guest
	mock.ExpectQuery("SELECT (.+) FROM `guests`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "id_number"}).
			AddRow(1, "Hoang Thi E", "0987654321"))
	mock.ExpectRollback()

	res, err := svc.CreateBooking(BookingInput{
		RoomID:   3,
		CheckIn:  checkIn,
		CheckOut: &checkOut,
		Guest:    GuestInput{FullName: "Vu Van F", IDNumber: "1122334455"},
	})
	assert.Nil(t, res)

	var conflict *pmserr.OverlapConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "201", conflict.RoomNumber)
	assert.Equal(t, "Hoang Thi E", conflict.GuestName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingBlockedByLongRunningWalkIn(t *testing.T) {
	now := time.Date(2026, 5, 5, 9, 0, 0, 0, time.UTC)
	db, mock := newGormMock(t)
	svc := &ReservationService{DB: db, Now: fixedClock(now)}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(roomRow(2, "102", models.RoomStatusOccupied))
	// walk-in from three days ago, check-out still open
	mock.ExpectQuery("SELECT (.+) FROM `reservations`").
		WillReturnRows(reservationRow(8, 2, models.ReservationOccupied, now.Add(-72*time.Hour)))
	mock.ExpectQuery("SELECT (.+) FROM `guests`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "id_number"}).
			AddRow(1, "Do Van G", "5566778899"))
	mock.ExpectRollback()

	res, err := svc.CreateBooking(BookingInput{
		RoomID:  2,
		CheckIn: now,
		Status:  models.ReservationOccupied,
		Guest:   GuestInput{FullName: "Bui Thi H", IDNumber: "6677889900"},
	})
	assert.Nil(t, res)

	var conflict *pmserr.OverlapConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Do Van G", conflict.GuestName)
	assert.Nil(t, conflict.CheckOut)

	assert.NoError(t, mock.ExpectationsWereMet())
}

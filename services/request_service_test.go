package services

import (
	"testing"
	"time"

	"hotel-pms/models"
	"hotel-pms/pmserr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guestRequestRow(id uint, roomID uint, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "room_id", "reservation_id", "content", "status",
		"assigned_staff", "created_at", "updated_at",
	}).AddRow(id, roomID, 1, "Extra towels please", status, "", time.Now(), time.Now())
}

func TestPortalRequestNeedsOccupiedRoom(t *testing.T) {
	db, mock := newGormMock(t)
	svc := NewRequestService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(roomRow(1, "101", models.RoomStatusVacant))
	// no occupied stay on the room
	mock.ExpectQuery("SELECT (.+) FROM `reservations`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	req, err := svc.CreatePortalRequest(1, "Extra towels please")
	assert.Nil(t, req)

	var invalid *pmserr.InvalidStateError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "portal request", invalid.Op)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPortalRequestRejectsEmptyContent(t *testing.T) {
	db, mock := newGormMock(t)
	svc := NewRequestService(db)

	_, err := svc.CreatePortalRequest(1, "   ")

	var v *pmserr.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "content", v.Field)
	assert.NoError(t, mock.ExpectationsWereMet(), "no SQL should run")
}

func TestCompleteIsIdempotent(t *testing.T) {
	db, mock := newGormMock(t)
	svc := NewRequestService(db)

	mock.ExpectQuery("SELECT (.+) FROM `guest_requests`").
		WillReturnRows(guestRequestRow(3, 1, models.RequestStatusCompleted))
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(roomRow(1, "101", models.RoomStatusOccupied))

	req, err := svc.Complete(3, "reception1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, req.Status)
	assert.NoError(t, mock.ExpectationsWereMet(), "no update issued for an already-completed request")
}

func TestStartCannotReopenCompleted(t *testing.T) {
	db, mock := newGormMock(t)
	svc := NewRequestService(db)

	mock.ExpectQuery("SELECT (.+) FROM `guest_requests`").
		WillReturnRows(guestRequestRow(3, 1, models.RequestStatusCompleted))
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(roomRow(1, "101", models.RoomStatusOccupied))

	_, err := svc.Start(3, "reception1")

	var invalid *pmserr.InvalidStateError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "reopen request", invalid.Op)
	assert.NoError(t, mock.ExpectationsWereMet())
}

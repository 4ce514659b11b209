package services

import (
	"errors"
	"time"

	"hotel-pms/models"
	"hotel-pms/pmserr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService drives the booking lifecycle. Every operation that
// touches both a reservation row and its room's cached status runs inside a
// single transaction holding a row lock on the room, so a concurrent reader
// never observes the pair half-updated and two simultaneous bookings on the
// same room serialize instead of racing the overlap check.
type ReservationService struct {
	DB *gorm.DB

	// Now is injectable for tests.
	Now func() time.Time
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db, Now: time.Now}
}

// BookingInput is a create-booking request after controller-side parsing.
type BookingInput struct {
	RoomID    uint
	Guest     GuestInput
	Occupants []GuestInput
	CheckIn   time.Time
	CheckOut  *time.Time
	Deposit   int64
	Note      string

	// Confirmed for a pre-booking, Occupied for a desk-created stay.
	Status string
}

func (in *BookingInput) validate() error {
	if in.RoomID == 0 {
		return pmserr.Validation("room_id", "room is required")
	}
	if in.CheckIn.IsZero() {
		return pmserr.Validation("check_in_date", "check-in time is required")
	}
	if in.CheckOut != nil && !in.CheckOut.After(in.CheckIn) {
		return pmserr.Validation("check_out_date", "check-out must be after check-in")
	}
	if in.Status == "" {
		in.Status = models.ReservationConfirmed
	}
	if in.Status != models.ReservationConfirmed && in.Status != models.ReservationOccupied {
		return pmserr.Validation("status", "new bookings must be Confirmed or Occupied")
	}
	return in.Guest.validate()
}

var activeStatuses = []string{models.ReservationConfirmed, models.ReservationOccupied}

// findConflict looks for an active reservation on the room whose stay
// blocks [start, end). The room's active stays are few, so the interval
// rule is evaluated in Go (BlocksWindow) rather than SQL; this keeps
// open-ended Occupied stays blocking indefinitely instead of expiring a day
// after arrival.
func findConflict(tx *gorm.DB, roomID uint, start, end time.Time) (*models.Reservation, error) {
	var stays []models.Reservation
	err := tx.Preload("Guest").
		Where("room_id = ? AND status IN ?", roomID, activeStatuses).
		Find(&stays).Error
	if err != nil {
		return nil, err
	}

	for i := range stays {
		if BlocksWindow(stays[i], start, end) {
			return &stays[i], nil
		}
	}
	return nil, nil
}

// CreateBooking admits a reservation when it does not collide with any
// active stay on the room. Nothing persists on any failure.
func (s *ReservationService) CreateBooking(in BookingInput) (*models.Reservation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	newStart := in.CheckIn
	newEnd := DefaultCheckout(in.CheckIn)
	if in.CheckOut != nil {
		newEnd = *in.CheckOut
	}

	var created *models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pmserr.NotFound("room", in.RoomID)
			}
			return err
		}

		conflict, err := findConflict(tx, room.ID, newStart, newEnd)
		if err != nil {
			return err
		}
		if conflict != nil {
			return &pmserr.OverlapConflictError{
				RoomNumber: room.RoomNumber,
				GuestName:  conflict.Guest.FullName,
				CheckIn:    conflict.CheckInDate,
				CheckOut:   conflict.CheckOutDate,
			}
		}

		guest, err := upsertGuest(tx, in.Guest)
		if err != nil {
			return err
		}

		res := models.Reservation{
			RoomID:       room.ID,
			GuestID:      guest.ID,
			CheckInDate:  in.CheckIn,
			CheckOutDate: in.CheckOut,
			Deposit:      in.Deposit,
			Status:       in.Status,
			Note:         in.Note,
		}
		if err := tx.Create(&res).Error; err != nil {
			return err
		}

		for _, occ := range in.Occupants {
			og, err := upsertGuest(tx, occ)
			if err != nil {
				return err
			}
			if err := tx.Model(&res).Association("Occupants").Append(og); err != nil {
				return err
			}
		}

		// Keep the room's cached status in step with the new reservation.
		switch {
		case res.Status == models.ReservationOccupied:
			if err := tx.Model(&room).Update("status", models.RoomStatusOccupied).Error; err != nil {
				return err
			}
		case StartsOnOrBefore(res.CheckInDate, s.Now()) && room.Status == models.RoomStatusVacant:
			if err := tx.Model(&room).Update("status", models.RoomStatusBooked).Error; err != nil {
				return err
			}
		}

		res.Guest = *guest
		res.Room = room
		created = &res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CheckIn turns a Confirmed booking into an Occupied stay, stamping the
// actual arrival time. Fails if the room still physically holds a different
// active reservation.
func (s *ReservationService) CheckIn(reservationID uint) (*models.Reservation, error) {
	var checked *models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&res, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pmserr.NotFound("reservation", reservationID)
			}
			return err
		}

		if res.Status != models.ReservationConfirmed {
			return pmserr.InvalidState("check-in", res.Status)
		}

		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, res.RoomID).Error; err != nil {
			return err
		}

		// Guard against double check-in while a previous occupant is still
		// in the room.
		var holder models.Reservation
		err := tx.Preload("Guest").
			Where("room_id = ? AND status = ? AND id <> ?", room.ID, models.ReservationOccupied, res.ID).
			First(&holder).Error
		if err == nil {
			return &pmserr.RoomConflictError{RoomNumber: room.RoomNumber, GuestName: holder.Guest.FullName}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := s.Now()
		if err := tx.Model(&res).Updates(map[string]interface{}{
			"status":        models.ReservationOccupied,
			"check_in_date": now,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&room).Update("status", models.RoomStatusOccupied).Error; err != nil {
			return err
		}

		res.Status = models.ReservationOccupied
		res.CheckInDate = now
		res.Room = room
		checked = &res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return checked, nil
}

// Cancel voids a booking that has not been checked in. An occupied stay can
// only be checked out, never cancelled.
func (s *ReservationService) Cancel(reservationID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&res, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pmserr.NotFound("reservation", reservationID)
			}
			return err
		}

		if res.Status != models.ReservationConfirmed {
			return pmserr.InvalidState("cancel", res.Status)
		}

		if err := tx.Model(&res).Update("status", models.ReservationCancelled).Error; err != nil {
			return err
		}

		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, res.RoomID).Error; err != nil {
			return err
		}
		if room.Status == models.RoomStatusBooked {
			if err := tx.Model(&room).Update("status", models.RoomStatusVacant).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CheckOut settles and closes an Occupied stay, returning the final bill
// evaluated at the moment of checkout. The room goes straight back to
// Vacant.
func (s *ReservationService) CheckOut(reservationID uint) (*Bill, error) {
	var bill Bill
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&res, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pmserr.NotFound("reservation", reservationID)
			}
			return err
		}

		if res.Status != models.ReservationOccupied {
			return pmserr.InvalidState("check-out", res.Status)
		}

		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, res.RoomID).Error; err != nil {
			return err
		}

		var charges []models.ServiceCharge
		if err := tx.Where("reservation_id = ?", res.ID).Find(&charges).Error; err != nil {
			return err
		}

		now := s.Now()
		bill = CalculateBill(res, room, charges, now)

		if err := tx.Model(&res).Updates(map[string]interface{}{
			"status":         models.ReservationCompleted,
			"check_out_date": now,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&room).Update("status", models.RoomStatusVacant).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// PreviewBill prices an in-progress stay at "now" without changing any
// state. The figure legitimately drifts between calls as time passes.
func (s *ReservationService) PreviewBill(reservationID uint) (*Bill, error) {
	var res models.Reservation
	if err := s.DB.Preload("Room").Preload("Guest").First(&res, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pmserr.NotFound("reservation", reservationID)
		}
		return nil, err
	}
	if res.Status != models.ReservationOccupied {
		return nil, pmserr.InvalidState("billing preview", res.Status)
	}

	var charges []models.ServiceCharge
	if err := s.DB.Where("reservation_id = ?", res.ID).Find(&charges).Error; err != nil {
		return nil, err
	}

	bill := CalculateBill(res, res.Room, charges, s.Now())
	return &bill, nil
}

// WalkIn registers a guest with no prior booking and opens an Occupied stay
// immediately. The room must be Vacant or Dirty (housekeeping may simply not
// have updated the board yet).
func (s *ReservationService) WalkIn(roomID uint, guest GuestInput, deposit int64, note string) (*models.Reservation, error) {
	if err := guest.validate(); err != nil {
		return nil, err
	}

	var created *models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pmserr.NotFound("room", roomID)
			}
			return err
		}

		if room.Status != models.RoomStatusVacant && room.Status != models.RoomStatusDirty {
			return pmserr.InvalidState("walk-in check-in", room.Status)
		}

		g, err := upsertGuest(tx, guest)
		if err != nil {
			return err
		}

		if note == "" {
			note = "Walk-in check-in at front desk"
		}
		res := models.Reservation{
			RoomID:      room.ID,
			GuestID:     g.ID,
			CheckInDate: s.Now(),
			Deposit:     deposit,
			Status:      models.ReservationOccupied,
			Note:        note,
		}
		if err := tx.Create(&res).Error; err != nil {
			return err
		}

		if err := tx.Model(&room).Update("status", models.RoomStatusOccupied).Error; err != nil {
			return err
		}

		res.Guest = *g
		res.Room = room
		created = &res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetByID loads one reservation with its room, primary guest and occupants.
func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := s.DB.Preload("Room").Preload("Guest").Preload("Occupants").
		First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pmserr.NotFound("reservation", id)
		}
		return nil, err
	}
	return &res, nil
}

// Calendar lists active reservations in check-in order.
func (s *ReservationService) Calendar() ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.Preload("Room").Preload("Guest").
		Where("status IN ?", activeStatuses).
		Order("check_in_date ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

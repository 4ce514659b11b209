package services

import (
	"sort"
	"time"

	"hotel-pms/models"

	"gorm.io/gorm"
)

// RoomBoardEntry is one tile on the front-desk board: the room, whichever
// reservation currently matters for it, and a derived display state.
type RoomBoardEntry struct {
	Room        models.Room         `json:"room"`
	Reservation *models.Reservation `json:"reservation,omitempty"`
	GuestName   string              `json:"guestName,omitempty"`
	Status      string              `json:"status"`
	IsAlerting  bool                `json:"isAlerting"`
}

// BuildRoomBoard assembles board entries from rooms and the active
// reservations, flagging rooms whose Confirmed check-in falls inside the
// alert window. Pure so the sort and alert rules are directly testable.
//
// Per room the reservation shown is the Occupied one if any, otherwise the
// earliest upcoming Confirmed booking.
func BuildRoomBoard(rooms []models.Room, active []models.Reservation, now time.Time) []RoomBoardEntry {
	byRoom := make(map[uint][]models.Reservation)
	for _, res := range active {
		byRoom[res.RoomID] = append(byRoom[res.RoomID], res)
	}

	entries := make([]RoomBoardEntry, 0, len(rooms))
	for _, room := range rooms {
		entry := RoomBoardEntry{Room: room, Status: room.Status}

		var occupied, nextConfirmed *models.Reservation
		for i := range byRoom[room.ID] {
			res := &byRoom[room.ID][i]
			switch res.Status {
			case models.ReservationOccupied:
				occupied = res
			case models.ReservationConfirmed:
				if nextConfirmed == nil || res.CheckInDate.Before(nextConfirmed.CheckInDate) {
					nextConfirmed = res
				}
			}
		}

		// The reservation drives the displayed status; the stored room
		// status only stands when no active reservation claims the room.
		switch {
		case occupied != nil:
			entry.Reservation = occupied
			entry.GuestName = occupied.Guest.FullName
			entry.Status = models.RoomStatusOccupied
		case nextConfirmed != nil:
			entry.Reservation = nextConfirmed
			entry.GuestName = nextConfirmed.Guest.FullName
			entry.Status = models.RoomStatusBooked
			until := nextConfirmed.CheckInDate.Sub(now)
			if until > 0 && until < CheckinAlertWindow {
				entry.IsAlerting = true
			}
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return boardPriority(entries[i]) < boardPriority(entries[j])
	})
	return entries
}

// boardPriority orders the board by what the desk needs to act on first.
func boardPriority(e RoomBoardEntry) int {
	if e.IsAlerting {
		return 0
	}
	switch e.Status {
	case models.RoomStatusBooked:
		return 1
	case models.RoomStatusOccupied:
		return 2
	case models.RoomStatusDirty:
		return 3
	default:
		return 4
	}
}

type DashboardService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db, Now: time.Now}
}

// RoomBoard loads every room plus the active reservations and renders the
// front-desk board.
func (s *DashboardService) RoomBoard() ([]RoomBoardEntry, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}

	var active []models.Reservation
	if err := s.DB.Preload("Guest").
		Where("status IN ?", activeStatuses).
		Find(&active).Error; err != nil {
		return nil, err
	}

	return BuildRoomBoard(rooms, active, s.Now()), nil
}

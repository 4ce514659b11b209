package services

import (
	"errors"
	"strings"

	"hotel-pms/models"
	"hotel-pms/pmserr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomService covers room inventory management and housekeeping status
// changes. Occupancy transitions belong to ReservationService; this one only
// flips between the non-stay states.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) List() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pmserr.NotFound("room", id)
		}
		return nil, err
	}
	return &room, nil
}

type RoomInput struct {
	HotelID       uint
	RoomNumber    string
	RoomType      string
	PricePerNight int64
}

func (in RoomInput) validate() error {
	if strings.TrimSpace(in.RoomNumber) == "" {
		return pmserr.Validation("room_number", "room number is required")
	}
	if in.PricePerNight < 0 {
		return pmserr.Validation("price_per_night", "rate cannot be negative")
	}
	return nil
}

func (s *RoomService) Create(in RoomInput) (*models.Room, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	hotelID := in.HotelID
	if hotelID == 0 {
		var hotel models.Hotel
		if err := s.DB.First(&hotel).Error; err != nil {
			return nil, err
		}
		hotelID = hotel.ID
	}

	room := models.Room{
		HotelID:       hotelID,
		RoomNumber:    strings.TrimSpace(in.RoomNumber),
		RoomType:      in.RoomType,
		PricePerNight: in.PricePerNight,
		Status:        models.RoomStatusVacant,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Update(id uint, in RoomInput) (*models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if n := strings.TrimSpace(in.RoomNumber); n != "" {
		room.RoomNumber = n
	}
	if in.RoomType != "" {
		room.RoomType = in.RoomType
	}
	if in.PricePerNight > 0 {
		room.PricePerNight = in.PricePerNight
	}
	if err := s.DB.Save(room).Error; err != nil {
		return nil, err
	}
	return room, nil
}

// SetHousekeepingStatus flips a room between Vacant and Dirty. Rooms tied up
// by a stay are off limits here.
func (s *RoomService) SetHousekeepingStatus(id uint, status string) (*models.Room, error) {
	if status != models.RoomStatusVacant && status != models.RoomStatusDirty {
		return nil, pmserr.Validation("status", "housekeeping can only set Vacant or Dirty")
	}

	var updated *models.Room
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pmserr.NotFound("room", id)
			}
			return err
		}

		if room.IsBusy() {
			return pmserr.InvalidState("housekeeping update", room.Status)
		}

		if err := tx.Model(&room).Update("status", status).Error; err != nil {
			return err
		}
		room.Status = status
		updated = &room
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a room from inventory unless a stay or booking holds it.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pmserr.NotFound("room", id)
			}
			return err
		}

		if room.IsBusy() {
			return pmserr.InvalidState("delete room", room.Status)
		}

		var active int64
		if err := tx.Model(&models.Reservation{}).
			Where("room_id = ? AND status IN ?", room.ID, activeStatuses).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return pmserr.InvalidState("delete room", "active reservations exist")
		}

		return tx.Delete(&room).Error
	})
}

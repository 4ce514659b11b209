package services

import (
	"errors"
	"strings"

	"hotel-pms/models"
	"hotel-pms/pmserr"

	"gorm.io/gorm"
)

// RequestService backs the in-room guest portal. Guests submit requests
// anonymously from the room's QR code; staff work the queue from the desk.
type RequestService struct {
	DB *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{DB: db}
}

// CreatePortalRequest files a request from a room's portal page. The room
// must currently hold an occupied stay, otherwise the portal is dark.
func (s *RequestService) CreatePortalRequest(roomID uint, content string) (*models.GuestRequest, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, pmserr.Validation("content", "request content is required")
	}

	var created *models.GuestRequest
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pmserr.NotFound("room", roomID)
			}
			return err
		}

		var res models.Reservation
		err := tx.Where("room_id = ? AND status = ?", room.ID, models.ReservationOccupied).
			First(&res).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pmserr.InvalidState("portal request", room.Status)
		}
		if err != nil {
			return err
		}

		req := models.GuestRequest{
			RoomID:        room.ID,
			ReservationID: &res.ID,
			Content:       content,
			Status:        models.RequestStatusNew,
		}
		if err := tx.Create(&req).Error; err != nil {
			return err
		}
		req.Room = room
		created = &req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// OpenRequests lists requests still needing attention, oldest first.
func (s *RequestService) OpenRequests() ([]models.GuestRequest, error) {
	var list []models.GuestRequest
	err := s.DB.Preload("Room").
		Where("status IN ?", []string{models.RequestStatusNew, models.RequestStatusProcessing}).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Start moves a New request to Processing under the acting staff member.
func (s *RequestService) Start(id uint, staffUsername string) (*models.GuestRequest, error) {
	return s.transition(id, staffUsername, models.RequestStatusProcessing)
}

// Complete closes a request. Completing an already-completed request is a
// no-op so double taps from the queue screen are harmless.
func (s *RequestService) Complete(id uint, staffUsername string) (*models.GuestRequest, error) {
	return s.transition(id, staffUsername, models.RequestStatusCompleted)
}

func (s *RequestService) transition(id uint, staffUsername, target string) (*models.GuestRequest, error) {
	var req models.GuestRequest
	if err := s.DB.Preload("Room").First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pmserr.NotFound("guest request", id)
		}
		return nil, err
	}

	if req.Status == target {
		return &req, nil
	}
	if req.Status == models.RequestStatusCompleted {
		return nil, pmserr.InvalidState("reopen request", req.Status)
	}

	updates := map[string]interface{}{"status": target}
	if staffUsername != "" {
		updates["assigned_staff"] = staffUsername
	}
	if err := s.DB.Model(&req).Updates(updates).Error; err != nil {
		return nil, err
	}

	req.Status = target
	if staffUsername != "" {
		req.AssignedStaff = staffUsername
	}
	return &req, nil
}

// CountNew returns how many untouched requests are waiting, for the badge
// on the staff navigation.
func (s *RequestService) CountNew() (int64, error) {
	var n int64
	err := s.DB.Model(&models.GuestRequest{}).
		Where("status = ?", models.RequestStatusNew).
		Count(&n).Error
	return n, err
}

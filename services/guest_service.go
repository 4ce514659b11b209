package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"hotel-pms/models"
	"hotel-pms/pmserr"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GuestInput is the registration data collected at the desk or from a
// booking form. Controllers parse raw payloads into this before any write.
type GuestInput struct {
	FullName     string
	DateOfBirth  *time.Time
	IDType       string
	IDNumber     string
	Address      string
	Phone        string
	LicensePlate string
}

func (in GuestInput) validate() error {
	if strings.TrimSpace(in.FullName) == "" {
		return pmserr.Validation("full_name", "guest name is required")
	}
	if strings.TrimSpace(in.IDNumber) == "" {
		return pmserr.Validation("id_number", "identity document number is required")
	}
	return nil
}

// applyGuestUpdate copies non-empty input fields onto an existing record.
// The id-number is the natural key and is never overwritten.
func applyGuestUpdate(g *models.Guest, in GuestInput) {
	if name := strings.TrimSpace(in.FullName); name != "" {
		g.FullName = name
	}
	if in.DateOfBirth != nil {
		g.DateOfBirth = in.DateOfBirth
	}
	if in.IDType != "" {
		g.IDType = in.IDType
	}
	if in.Address != "" {
		g.Address = in.Address
	}
	if in.Phone != "" {
		g.Phone = in.Phone
	}
	if in.LicensePlate != "" {
		g.LicensePlate = in.LicensePlate
	}
}

// upsertGuest finds-or-creates a guest by id-number inside the caller's
// transaction. Existing records are refreshed field by field; the id-number
// itself is left alone.
func upsertGuest(tx *gorm.DB, in GuestInput) (*models.Guest, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	idNumber := strings.TrimSpace(in.IDNumber)

	var guest models.Guest
	err := tx.Where("id_number = ?", idNumber).First(&guest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		idType := in.IDType
		if idType == "" {
			idType = models.IDTypeCitizenCard
		}
		guest = models.Guest{
			FullName:     strings.TrimSpace(in.FullName),
			DateOfBirth:  in.DateOfBirth,
			IDType:       idType,
			IDNumber:     idNumber,
			Address:      in.Address,
			Phone:        in.Phone,
			LicensePlate: in.LicensePlate,
		}
		if err := tx.Create(&guest).Error; err != nil {
			return nil, err
		}
		return &guest, nil
	}
	if err != nil {
		return nil, err
	}

	applyGuestUpdate(&guest, in)
	if err := tx.Save(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// Upsert registers or refreshes a guest profile by id-number.
func (s *GuestService) Upsert(in GuestInput) (*models.Guest, error) {
	var guest *models.Guest
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		g, err := upsertGuest(tx, in)
		if err != nil {
			return err
		}
		guest = g
		return nil
	})
	return guest, err
}

// Search filters profiles by name, id-number or phone. Empty query lists
// everyone, newest first.
func (s *GuestService) Search(query string) ([]models.Guest, error) {
	var guests []models.Guest
	q := s.DB.Order("created_at DESC")
	if query = strings.TrimSpace(query); query != "" {
		like := "%" + query + "%"
		q = q.Where("full_name LIKE ? OR id_number LIKE ? OR phone LIKE ?", like, like, like)
	}
	if err := q.Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pmserr.NotFound("guest", id)
		}
		return nil, err
	}
	return &guest, nil
}

// Update edits an existing profile. The stored id-number wins over whatever
// the payload carries.
func (s *GuestService) Update(id uint, in GuestInput) (*models.Guest, error) {
	guest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	applyGuestUpdate(guest, in)
	if err := s.DB.Save(guest).Error; err != nil {
		return nil, err
	}
	return guest, nil
}

// AttachPhoto appends a stored photo path to the guest's identity photo
// list.
func (s *GuestService) AttachPhoto(id uint, path string) (*models.Guest, error) {
	guest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	paths := guestPhotoPaths(*guest)
	paths = append(paths, path)
	raw, err := marshalPhotoPaths(paths)
	if err != nil {
		return nil, err
	}
	guest.Photos = raw

	if err := s.DB.Model(guest).Update("photos", guest.Photos).Error; err != nil {
		return nil, err
	}
	return guest, nil
}

// Delete removes a profile unless the guest is currently staying.
func (s *GuestService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pmserr.NotFound("guest", id)
			}
			return err
		}

		var staying int64
		if err := tx.Model(&models.Reservation{}).
			Where("guest_id = ? AND status = ?", guest.ID, models.ReservationOccupied).
			Count(&staying).Error; err != nil {
			return err
		}
		if staying > 0 {
			return pmserr.InvalidState("delete guest", "currently staying")
		}

		return tx.Delete(&guest).Error
	})
}

func guestPhotoPaths(g models.Guest) []string {
	if len(g.Photos) == 0 {
		return nil
	}
	var paths []string
	if err := json.Unmarshal(g.Photos, &paths); err != nil {
		return nil
	}
	return paths
}

func marshalPhotoPaths(paths []string) (datatypes.JSON, error) {
	raw, err := json.Marshal(paths)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

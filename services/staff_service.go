package services

import (
	"errors"
	"strings"

	"hotel-pms/models"
	"hotel-pms/pmserr"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// StaffService manages staff accounts and credential checks.
type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

// ErrBadCredentials deliberately does not say whether the username or the
// password was wrong.
var ErrBadCredentials = errors.New("invalid username or password")

// Authenticate verifies a username/password pair.
func (s *StaffService) Authenticate(username, password string) (*models.Staff, error) {
	var staff models.Staff
	err := s.DB.Where("username = ?", strings.TrimSpace(username)).First(&staff).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return &staff, nil
}

type StaffInput struct {
	FullName  string
	Username  string
	Password  string
	IsManager bool
}

func (s *StaffService) Create(in StaffInput) (*models.Staff, error) {
	if strings.TrimSpace(in.Username) == "" {
		return nil, pmserr.Validation("username", "username is required")
	}
	if len(in.Password) < 6 {
		return nil, pmserr.Validation("password", "password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := models.Staff{
		FullName:  strings.TrimSpace(in.FullName),
		Username:  strings.TrimSpace(in.Username),
		Password:  string(hash),
		IsManager: in.IsManager,
	}
	if err := s.DB.Create(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (s *StaffService) List() ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.DB.Order("username ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// Delete removes an account. A manager cannot delete their own account so
// the system always keeps at least the acting manager.
func (s *StaffService) Delete(id uint, actingUsername string) error {
	var staff models.Staff
	if err := s.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pmserr.NotFound("staff", id)
		}
		return err
	}

	if staff.Username == actingUsername {
		return pmserr.InvalidState("delete staff", "cannot delete own account")
	}

	return s.DB.Delete(&staff).Error
}

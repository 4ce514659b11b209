package services

import (
	"time"

	"hotel-pms/models"

	"gorm.io/gorm"
)

// RegistryRow is one line of the residence-registration export: one row per
// person currently in house, occupants included.
type RegistryRow struct {
	Index        int
	FullName     string
	DateOfBirth  *time.Time
	IDType       string
	IDNumber     string
	LicensePlate string
	Address      string
	Phone        string
	RoomNumber   string
	CheckIn      time.Time
	CheckOut     *time.Time
}

// ExportService produces the guest registry for the local-authority filing.
type ExportService struct {
	DB *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{DB: db}
}

// RegistryRows flattens every occupied stay into per-person rows. The
// primary guest comes first, then the stay's registered occupants.
func (s *ExportService) RegistryRows() ([]RegistryRow, error) {
	var stays []models.Reservation
	err := s.DB.Preload("Guest").Preload("Room").Preload("Occupants").
		Where("status = ?", models.ReservationOccupied).
		Order("check_in_date ASC").
		Find(&stays).Error
	if err != nil {
		return nil, err
	}

	var rows []RegistryRow
	for _, stay := range stays {
		rows = append(rows, registryRow(stay.Guest, stay))
		for _, occ := range stay.Occupants {
			if occ.ID == stay.GuestID {
				continue
			}
			rows = append(rows, registryRow(occ, stay))
		}
	}
	for i := range rows {
		rows[i].Index = i + 1
	}
	return rows, nil
}

func registryRow(g models.Guest, stay models.Reservation) RegistryRow {
	return RegistryRow{
		FullName:     g.FullName,
		DateOfBirth:  g.DateOfBirth,
		IDType:       g.IDType,
		IDNumber:     g.IDNumber,
		LicensePlate: g.LicensePlate,
		Address:      g.Address,
		Phone:        g.Phone,
		RoomNumber:   stay.Room.RoomNumber,
		CheckIn:      stay.CheckInDate,
		CheckOut:     stay.CheckOutDate,
	}
}

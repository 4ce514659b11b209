package services

import (
	"time"

	"hotel-pms/models"

	"gorm.io/gorm"
)

// MonthlyReport is the management summary for one calendar month.
// MonthStays counts reservations whose check-in falls inside the month; it
// is a stay count, not a head count.
type MonthlyReport struct {
	Month          string `json:"month"`
	OccupiedRooms  int64  `json:"occupiedRooms"`
	TotalRooms     int64  `json:"totalRooms"`
	MonthStays     int64  `json:"monthStays"`
	CompletedStays int64  `json:"completedStays"`
	Revenue        int64  `json:"revenue"`
}

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// MonthlySummary builds the report for the month containing anchor.
// Revenue is the grand total of every stay that completed inside the month,
// re-priced with the same method used at checkout.
func (s *ReportService) MonthlySummary(anchor time.Time) (*MonthlyReport, error) {
	monthStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	report := MonthlyReport{Month: monthStart.Format("2006-01")}

	if err := s.DB.Model(&models.Room{}).Count(&report.TotalRooms).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Room{}).
		Where("status = ?", models.RoomStatusOccupied).
		Count(&report.OccupiedRooms).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Reservation{}).
		Where("check_in_date >= ? AND check_in_date < ?", monthStart, monthEnd).
		Count(&report.MonthStays).Error; err != nil {
		return nil, err
	}

	var completed []models.Reservation
	if err := s.DB.Preload("Room").
		Where("status = ? AND check_out_date >= ? AND check_out_date < ?",
			models.ReservationCompleted, monthStart, monthEnd).
		Find(&completed).Error; err != nil {
		return nil, err
	}
	report.CompletedStays = int64(len(completed))

	for _, stay := range completed {
		if stay.CheckOutDate == nil {
			continue
		}
		var charges []models.ServiceCharge
		if err := s.DB.Where("reservation_id = ?", stay.ID).Find(&charges).Error; err != nil {
			return nil, err
		}
		bill := CalculateBill(stay, stay.Room, charges, *stay.CheckOutDate)
		report.Revenue += bill.GrandTotal
	}

	return &report, nil
}

package services

import (
	"strings"
	"time"

	"hotel-pms/models"
	"hotel-pms/pmserr"

	"gorm.io/gorm"
)

var validShifts = map[string]bool{
	models.ShiftMorning:   true,
	models.ShiftAfternoon: true,
	models.ShiftNight:     true,
}

var validRoles = map[string]bool{
	models.RoleReception:    true,
	models.RoleHousekeeping: true,
	models.RoleGuard:        true,
}

// ScheduleService manages the staff shift roster.
type ScheduleService struct {
	DB *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{DB: db}
}

type ScheduleInput struct {
	StaffName string
	Role      string
	Date      time.Time
	Shift     string
	Note      string
}

func (in ScheduleInput) validate() error {
	if strings.TrimSpace(in.StaffName) == "" {
		return pmserr.Validation("staff_name", "staff name is required")
	}
	if !validRoles[in.Role] {
		return pmserr.Validation("role", "unknown role")
	}
	if in.Date.IsZero() {
		return pmserr.Validation("date", "date is required")
	}
	if !validShifts[in.Shift] {
		return pmserr.Validation("shift", "unknown shift")
	}
	return nil
}

func (s *ScheduleService) Create(in ScheduleInput) (*models.StaffSchedule, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	entry := models.StaffSchedule{
		StaffName: strings.TrimSpace(in.StaffName),
		Role:      in.Role,
		Date:      truncateToDate(in.Date),
		Shift:     in.Shift,
		Note:      in.Note,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *ScheduleService) Delete(id uint) error {
	res := s.DB.Delete(&models.StaffSchedule{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pmserr.NotFound("schedule entry", id)
	}
	return nil
}

// List returns entries for a date range, chronological then by shift order.
func (s *ScheduleService) List(from, to time.Time) ([]models.StaffSchedule, error) {
	var entries []models.StaffSchedule
	err := s.DB.Where("date >= ? AND date < ?", truncateToDate(from), truncateToDate(to)).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// TimetableCell is one day+shift slot on the weekly grid.
type TimetableCell struct {
	Date    time.Time              `json:"date"`
	Shift   string                 `json:"shift"`
	Entries []models.StaffSchedule `json:"entries"`
}

// WeekTimetable renders the Monday-start week containing anchor as a
// 3-shift by 7-day grid.
func (s *ScheduleService) WeekTimetable(anchor time.Time) ([][]TimetableCell, error) {
	monday := weekStart(anchor)
	entries, err := s.List(monday, monday.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	keyed := make(map[string][]models.StaffSchedule)
	for _, e := range entries {
		k := e.Date.Format("2006-01-02") + "|" + e.Shift
		keyed[k] = append(keyed[k], e)
	}

	shifts := []string{models.ShiftMorning, models.ShiftAfternoon, models.ShiftNight}
	grid := make([][]TimetableCell, 0, len(shifts))
	for _, shift := range shifts {
		row := make([]TimetableCell, 0, 7)
		for day := 0; day < 7; day++ {
			date := monday.AddDate(0, 0, day)
			k := date.Format("2006-01-02") + "|" + shift
			row = append(row, TimetableCell{
				Date:    date,
				Shift:   shift,
				Entries: keyed[k],
			})
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// weekStart returns midnight on the Monday of t's week.
func weekStart(t time.Time) time.Time {
	d := truncateToDate(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

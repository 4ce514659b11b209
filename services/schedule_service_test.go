package services

import (
	"testing"
	"time"

	"hotel-pms/models"
	"hotel-pms/pmserr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name   string
		anchor time.Time
		want   time.Time
	}{
		{
			"MidweekWednesday",
			time.Date(2026, 5, 6, 15, 30, 0, 0, time.UTC),
			time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			"MondayStaysPut",
			time.Date(2026, 5, 4, 0, 0, 1, 0, time.UTC),
			time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			"SundayBelongsToPreviousMonday",
			time.Date(2026, 5, 10, 23, 0, 0, 0, time.UTC),
			time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, weekStart(tc.anchor))
		})
	}
}

func TestScheduleInputValidation(t *testing.T) {
	date := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		in    ScheduleInput
		field string
	}{
		{"MissingName", ScheduleInput{Role: models.RoleReception, Date: date, Shift: models.ShiftMorning}, "staff_name"},
		{"UnknownRole", ScheduleInput{StaffName: "An", Role: "Chef", Date: date, Shift: models.ShiftMorning}, "role"},
		{"MissingDate", ScheduleInput{StaffName: "An", Role: models.RoleGuard, Shift: models.ShiftNight}, "date"},
		{"UnknownShift", ScheduleInput{StaffName: "An", Role: models.RoleGuard, Date: date, Shift: "Dawn"}, "shift"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.validate()
			var v *pmserr.ValidationError
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tc.field, v.Field)
		})
	}

	t.Run("Valid", func(t *testing.T) {
		in := ScheduleInput{StaffName: "An", Role: models.RoleHousekeeping, Date: date, Shift: models.ShiftAfternoon}
		assert.NoError(t, in.validate())
	})
}

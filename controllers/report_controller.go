package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"hotel-pms/services"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportSvc *services.ReportService
	ExportSvc *services.ExportService
}

func NewReportController(reportSvc *services.ReportService, exportSvc *services.ExportService) *ReportController {
	return &ReportController{ReportSvc: reportSvc, ExportSvc: exportSvc}
}

// Monthly returns the management summary. ?month=YYYY-MM selects the month;
// default is the current one.
func (ctl *ReportController) Monthly(c *gin.Context) {
	anchor := time.Now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "month must be YYYY-MM")
			return
		}
		anchor = parsed
	}

	report, err := ctl.ReportSvc.MonthlySummary(anchor)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

// RegistryCSV streams the residence-registration sheet for everyone
// currently in house.
func (ctl *ReportController) RegistryCSV(c *gin.Context) {
	rows, err := ctl.ExportSvc.RegistryRows()
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}

	filename := fmt.Sprintf("guest-registry-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{
		"No", "Full Name", "Date of Birth", "ID Type", "ID Number",
		"License Plate", "Address", "Phone", "Room", "Check-In", "Check-Out",
	})
	for _, r := range rows {
		dob := ""
		if r.DateOfBirth != nil {
			dob = r.DateOfBirth.Format("2006-01-02")
		}
		checkOut := ""
		if r.CheckOut != nil {
			checkOut = r.CheckOut.Format("2006-01-02 15:04")
		}
		_ = w.Write([]string{
			fmt.Sprintf("%d", r.Index),
			r.FullName,
			dob,
			r.IDType,
			r.IDNumber,
			r.LicensePlate,
			r.Address,
			r.Phone,
			r.RoomNumber,
			r.CheckIn.Format("2006-01-02 15:04"),
			checkOut,
		})
	}
	w.Flush()
}

package controllers

import (
	"net/http"
	"time"

	"hotel-pms/services"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	ScheduleSvc *services.ScheduleService
}

func NewScheduleController(svc *services.ScheduleService) *ScheduleController {
	return &ScheduleController{ScheduleSvc: svc}
}

type SchedulePayload struct {
	StaffName string `json:"staffName" binding:"required"`
	Role      string `json:"role" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Shift     string `json:"shift" binding:"required"`
	Note      string `json:"note"`
}

func (ctl *ScheduleController) Create(c *gin.Context) {
	var payload SchedulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid schedule payload")
		return
	}

	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	entry, err := ctl.ScheduleSvc.Create(services.ScheduleInput{
		StaffName: payload.StaffName,
		Role:      payload.Role,
		Date:      date,
		Shift:     payload.Shift,
		Note:      payload.Note,
	})
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, entry)
}

func (ctl *ScheduleController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctl.ScheduleSvc.Delete(id); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// Week renders the Monday-start weekly grid. ?date=YYYY-MM-DD picks the
// week; default is the current one.
func (ctl *ScheduleController) Week(c *gin.Context) {
	anchor := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		anchor = parsed
	}

	grid, err := ctl.ScheduleSvc.WeekTimetable(anchor)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, grid)
}

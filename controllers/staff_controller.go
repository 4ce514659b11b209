package controllers

import (
	"net/http"

	"hotel-pms/middleware"
	"hotel-pms/services"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	StaffSvc *services.StaffService
}

func NewStaffController(svc *services.StaffService) *StaffController {
	return &StaffController{StaffSvc: svc}
}

type StaffPayload struct {
	FullName  string `json:"fullName"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	IsManager bool   `json:"isManager"`
}

func (ctl *StaffController) List(c *gin.Context) {
	staff, err := ctl.StaffSvc.List()
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

func (ctl *StaffController) Create(c *gin.Context) {
	var payload StaffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	staff, err := ctl.StaffSvc.Create(services.StaffInput{
		FullName:  payload.FullName,
		Username:  payload.Username,
		Password:  payload.Password,
		IsManager: payload.IsManager,
	})
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, staff)
}

func (ctl *StaffController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	acting := c.GetString(middleware.ContextStaffUsername)
	if err := ctl.StaffSvc.Delete(id, acting); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

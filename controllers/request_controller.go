package controllers

import (
	"fmt"
	"net/http"

	"hotel-pms/config"
	"hotel-pms/middleware"
	"hotel-pms/services"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
)

type RequestController struct {
	RequestSvc *services.RequestService
	RoomSvc    *services.RoomService
}

func NewRequestController(reqSvc *services.RequestService, roomSvc *services.RoomService) *RequestController {
	return &RequestController{RequestSvc: reqSvc, RoomSvc: roomSvc}
}

type PortalRequestPayload struct {
	Content string `json:"content" binding:"required"`
}

// CreateFromPortal files a guest request from the in-room portal page. No
// auth: the room id in the URL comes from the printed QR code.
func (ctl *RequestController) CreateFromPortal(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload PortalRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "content is required")
		return
	}

	req, err := ctl.RequestSvc.CreatePortalRequest(id, payload.Content)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, req)
}

// PortalURL returns the address to encode in a room's QR code.
func (ctl *RequestController) PortalURL(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	room, err := ctl.RoomSvc.GetByID(id)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}

	base := config.EnvOrDefault("PORTAL_BASE_URL", "http://localhost:8080")
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"roomNumber": room.RoomNumber,
		"url":        fmt.Sprintf("%s/portal/rooms/%d", base, room.ID),
	})
}

func (ctl *RequestController) ListOpen(c *gin.Context) {
	list, err := ctl.RequestSvc.OpenRequests()
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctl *RequestController) Start(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	req, err := ctl.RequestSvc.Start(id, c.GetString(middleware.ContextStaffUsername))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}

func (ctl *RequestController) Complete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	req, err := ctl.RequestSvc.Complete(id, c.GetString(middleware.ContextStaffUsername))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}

// CountNew backs the badge on the staff navigation bar.
func (ctl *RequestController) CountNew(c *gin.Context) {
	n, err := ctl.RequestSvc.CountNew()
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"count": n})
}

package controllers

import (
	"net/http"
	"strconv"

	"hotel-pms/services"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

type RoomPayload struct {
	HotelID       uint   `json:"hotelId"`
	RoomNumber    string `json:"roomNumber"`
	RoomType      string `json:"roomType"`
	PricePerNight int64  `json:"pricePerNight"`
}

func (p RoomPayload) toInput() services.RoomInput {
	return services.RoomInput{
		HotelID:       p.HotelID,
		RoomNumber:    p.RoomNumber,
		RoomType:      p.RoomType,
		PricePerNight: p.PricePerNight,
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (ctl *RoomController) List(c *gin.Context) {
	rooms, err := ctl.RoomSvc.List()
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctl *RoomController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	room, err := ctl.RoomSvc.GetByID(id)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctl *RoomController) Create(c *gin.Context) {
	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room payload")
		return
	}

	room, err := ctl.RoomSvc.Create(payload.toInput())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctl *RoomController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room payload")
		return
	}

	room, err := ctl.RoomSvc.Update(id, payload.toInput())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

type HousekeepingPayload struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus handles the housekeeping Vacant/Dirty flip.
func (ctl *RoomController) SetStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload HousekeepingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	room, err := ctl.RoomSvc.SetHousekeepingStatus(id, payload.Status)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctl *RoomController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctl.RoomSvc.Delete(id); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

package controllers

import (
	"net/http"
	"time"

	"hotel-pms/services"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

type BookingPayload struct {
	RoomID    uint           `json:"roomId" binding:"required"`
	Guest     GuestPayload   `json:"guest" binding:"required"`
	Occupants []GuestPayload `json:"occupants"`
	CheckIn   time.Time      `json:"checkIn" binding:"required"`
	CheckOut  *time.Time     `json:"checkOut"`
	Deposit   int64          `json:"deposit"`
	Note      string         `json:"note"`
	Status    string         `json:"status"`
}

func (ctl *ReservationController) Create(c *gin.Context) {
	var payload BookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload")
		return
	}

	guest, err := payload.Guest.toInput()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "dateOfBirth must be YYYY-MM-DD")
		return
	}

	in := services.BookingInput{
		RoomID:   payload.RoomID,
		Guest:    guest,
		CheckIn:  payload.CheckIn,
		CheckOut: payload.CheckOut,
		Deposit:  payload.Deposit,
		Note:     payload.Note,
		Status:   payload.Status,
	}
	for _, occ := range payload.Occupants {
		oin, err := occ.toInput()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "dateOfBirth must be YYYY-MM-DD")
			return
		}
		in.Occupants = append(in.Occupants, oin)
	}

	res, err := ctl.ReservationSvc.CreateBooking(in)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}

func (ctl *ReservationController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	res, err := ctl.ReservationSvc.GetByID(id)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

func (ctl *ReservationController) CheckIn(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	res, err := ctl.ReservationSvc.CheckIn(id)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

func (ctl *ReservationController) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctl.ReservationSvc.Cancel(id); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": id})
}

// BillPreview prices the stay as of now without closing it.
func (ctl *ReservationController) BillPreview(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	bill, err := ctl.ReservationSvc.PreviewBill(id)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

func (ctl *ReservationController) CheckOut(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	bill, err := ctl.ReservationSvc.CheckOut(id)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

type WalkInPayload struct {
	RoomID  uint         `json:"roomId" binding:"required"`
	Guest   GuestPayload `json:"guest" binding:"required"`
	Deposit int64        `json:"deposit"`
	Note    string       `json:"note"`
}

func (ctl *ReservationController) WalkIn(c *gin.Context) {
	var payload WalkInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid walk-in payload")
		return
	}

	guest, err := payload.Guest.toInput()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "dateOfBirth must be YYYY-MM-DD")
		return
	}

	res, err := ctl.ReservationSvc.WalkIn(payload.RoomID, guest, payload.Deposit, payload.Note)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}

func (ctl *ReservationController) Calendar(c *gin.Context) {
	list, err := ctl.ReservationSvc.Calendar()
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

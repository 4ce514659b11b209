package controllers

import (
	"net/http"
	"time"

	"hotel-pms/services"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

type GuestPayload struct {
	FullName     string `json:"fullName"`
	DateOfBirth  string `json:"dateOfBirth"` // YYYY-MM-DD
	IDType       string `json:"idType"`
	IDNumber     string `json:"idNumber"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	LicensePlate string `json:"licensePlate"`
}

func (p GuestPayload) toInput() (services.GuestInput, error) {
	in := services.GuestInput{
		FullName:     p.FullName,
		IDType:       p.IDType,
		IDNumber:     p.IDNumber,
		Address:      p.Address,
		Phone:        p.Phone,
		LicensePlate: p.LicensePlate,
	}
	if p.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", p.DateOfBirth)
		if err != nil {
			return in, err
		}
		in.DateOfBirth = &dob
	}
	return in, nil
}

func (ctl *GuestController) Search(c *gin.Context) {
	guests, err := ctl.GuestSvc.Search(c.Query("q"))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func (ctl *GuestController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	guest, err := ctl.GuestSvc.GetByID(id)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (ctl *GuestController) Create(c *gin.Context) {
	var payload GuestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest payload")
		return
	}
	in, err := payload.toInput()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "dateOfBirth must be YYYY-MM-DD")
		return
	}

	guest, err := ctl.GuestSvc.Upsert(in)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

func (ctl *GuestController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload GuestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest payload")
		return
	}
	in, err := payload.toInput()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "dateOfBirth must be YYYY-MM-DD")
		return
	}

	guest, err := ctl.GuestSvc.Update(id, in)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

type PhotoPayload struct {
	Image string `json:"image" binding:"required"` // data URL or raw base64
}

// UploadPhoto stores an identity photo and attaches its path to the guest.
func (ctl *GuestController) UploadPhoto(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload PhotoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image is required")
		return
	}

	path, err := utils.SaveBase64Image(payload.Image)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	guest, err := ctl.GuestSvc.AttachPhoto(id, path)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (ctl *GuestController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctl.GuestSvc.Delete(id); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

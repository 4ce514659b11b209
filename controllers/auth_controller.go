package controllers

import (
	"errors"
	"net/http"

	"hotel-pms/middleware"
	"hotel-pms/services"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	StaffSvc *services.StaffService
}

func NewAuthController(svc *services.StaffService) *AuthController {
	return &AuthController{StaffSvc: svc}
}

type LoginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges credentials for a bearer token.
func (ctl *AuthController) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	staff, err := ctl.StaffSvc.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
			return
		}
		utils.JSONFromError(c, err)
		return
	}

	token, err := middleware.IssueToken(staff)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":     token,
		"username":  staff.Username,
		"fullName":  staff.FullName,
		"isManager": staff.IsManager,
	})
}

// Me echoes the identity carried by the current token.
func (ctl *AuthController) Me(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"username":  c.GetString(middleware.ContextStaffUsername),
		"isManager": c.GetBool(middleware.ContextIsManager),
	})
}

package middleware

import (
	"net/http"
	"strings"
	"time"

	"hotel-pms/config"
	"hotel-pms/models"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextStaffUsername = "staffUsername"
	ContextIsManager     = "isManager"

	tokenLifetime = 12 * time.Hour
)

type StaffClaims struct {
	Username  string `json:"username"`
	IsManager bool   `json:"isManager"`
	jwt.RegisteredClaims
}

// IssueToken signs a session token for a staff member.
func IssueToken(staff *models.Staff) (string, error) {
	claims := StaffClaims{
		Username:  staff.Username,
		IsManager: staff.IsManager,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staff.Username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}

// RequireAuth validates the Bearer token and stashes the staff identity on
// the context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims := &StaffClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret(), nil
		})
		if err != nil || !token.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextStaffUsername, claims.Username)
		c.Set(ContextIsManager, claims.IsManager)
		c.Next()
	}
}

// RequireManager allows only manager accounts past. Must run after
// RequireAuth.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsManager) {
			utils.JSONError(c, http.StatusForbidden, "manager role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

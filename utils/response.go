package utils

import (
	"hotel-pms/pmserr"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFromError maps a service error to its HTTP status and renders the
// standard envelope.
func JSONFromError(c *gin.Context, err error) {
	c.JSON(pmserr.HTTPStatus(err), gin.H{"success": false, "error": err.Error()})
}

package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every API response shares one envelope: {success: true, data: ...} or
// {success: false, error: "..."} with a string the UI can render directly.

// Generic user-facing messages for failures whose detail must stay
// server-side.
const (
	MsgInternalError = "internal server error"
	MsgConfigError   = "server configuration error"
	MsgUnauthorized  = "authentication required"
)

// RespondData writes a success envelope carrying a payload.
func RespondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// RespondOK writes a bare success envelope.
func RespondOK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RespondError writes a failure envelope and aborts the handler chain.
func RespondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}

// Recovery converts an escaped panic into the generic failure envelope so
// nothing reaches the transport layer unconverted.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				LogError(fmt.Errorf("panic recovered: %v", r), "Unhandled panic in request handler")
				RespondError(c, http.StatusInternalServerError, MsgInternalError)
			}
		}()
		c.Next()
	}
}

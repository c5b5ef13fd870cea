package middleware

import (
	"net/http"

	"fitness_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RequireStore short-circuits data routes when the database credential was
// absent at startup. The request is answered with the configuration-error
// envelope before any store call could be attempted.
func RequireStore(configured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !configured {
			utils.RespondError(c, http.StatusInternalServerError, utils.MsgConfigError)
			return
		}
		c.Next()
	}
}

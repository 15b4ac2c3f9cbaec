package middleware

import (
	"fmt"
	"net/http"

	"ia-admin/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a JSON 500 in the same shape as handler errors.
func Recovery(lg *logging.Logger) gin.HandlerFunc {
	lg = lg.WithComponent(logging.ComponentHTTP)

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				lg.Error("panic recovered",
					logging.FieldRequestID, GetRequestID(c),
					logging.FieldPath, c.Request.URL.Path,
					logging.FieldError, fmt.Sprint(r),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			}
		}()
		c.Next()
	}
}

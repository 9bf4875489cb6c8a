package middleware

import (
	ierr "github.com/flexprice/vanrental/internal/errors"
	"github.com/flexprice/vanrental/internal/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)
		if status >= 500 {
			log.WithContext(c.Request.Context()).Errorw("request failed", "error", err)
		}

		c.AbortWithStatusJSON(status, ierr.NewErrorResponse(err))
	}
}

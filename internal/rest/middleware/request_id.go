package middleware

import (
	"context"

	"github.com/flexprice/vanrental/internal/types"
	"github.com/gin-gonic/gin"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or assigns a new one,
// and makes it available through the request context.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(types.HeaderRequestID)
		if requestID == "" {
			requestID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST)
		}

		ctx := context.WithValue(c.Request.Context(), types.CtxRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(types.HeaderRequestID, requestID)

		c.Next()
	}
}

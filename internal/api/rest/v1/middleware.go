package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the response header carrying the request id.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a correlation id, reusing the one the
// caller sent when present.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set("request_id", requestID)
		ctx.Writer.Header().Set(RequestIDHeader, requestID)
		ctx.Next()
	}
}

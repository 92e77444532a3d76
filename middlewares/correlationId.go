package middlewares

import (
	"github.com/aurumsoft/jewelbooks_backend/appctx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationId tags every request with an id for log correlation,
// honoring one supplied by the caller.
func CorrelationId() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationId := c.GetHeader("X-Correlation-Id")
		if correlationId == "" {
			correlationId = uuid.NewString()
		}

		ctx := appctx.Set(c.Request.Context(), appctx.ContextKeyCorrelationId, correlationId)
		ctx = appctx.Set(ctx, appctx.ContextKeyClientIp, c.ClientIP())
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Correlation-Id", correlationId)
		c.Next()
	}
}

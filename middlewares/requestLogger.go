package middlewares

import (
	"time"

	"github.com/aurumsoft/jewelbooks_backend/appctx"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		correlationId, _ := appctx.GetString(c.Request.Context(), appctx.ContextKeyCorrelationId)
		logger.WithFields(logrus.Fields{
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"status":        c.Writer.Status(),
			"latencyMs":     time.Since(start).Milliseconds(),
			"correlationId": correlationId,
		}).Info("request")
	}
}

package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"

	"taskdesk.io/infrastructure/logger"
)

// RequestLogMiddleware emits one structured log line per request with the
// parsed client user agent.
func RequestLogMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		ua := useragent.Parse(ctx.Request.UserAgent())
		logger.Info("request completed", logger.LoggerOptions{
			Key:  "method",
			Data: ctx.Request.Method,
		}, logger.LoggerOptions{
			Key:  "path",
			Data: ctx.Request.URL.Path,
		}, logger.LoggerOptions{
			Key:  "status",
			Data: ctx.Writer.Status(),
		}, logger.LoggerOptions{
			Key:  "durationMs",
			Data: time.Since(start).Milliseconds(),
		}, logger.LoggerOptions{
			Key:  "client",
			Data: ua.Name,
		}, logger.LoggerOptions{
			Key:  "clientOS",
			Data: ua.OS,
		})
	}
}

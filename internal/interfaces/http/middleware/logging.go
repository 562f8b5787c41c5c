package middleware

import (
	"github.com/gin-gonic/gin"

	"bureau/internal/shared/logger"
)

// Logger emits one structured line per request. Health probes only show up
// at debug level along with everything else below 400.
func Logger(log logger.Interface) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		args := []any{
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency", param.Latency,
			"client_ip", param.ClientIP,
			"bytes", param.BodySize,
		}
		if param.ErrorMessage != "" {
			args = append(args, "error", param.ErrorMessage)
		}

		switch {
		case param.StatusCode >= 500:
			log.Errorw("request completed", args...)
		case param.StatusCode >= 400:
			log.Warnw("request completed", args...)
		default:
			log.Debugw("request completed", args...)
		}

		return ""
	})
}

package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/mortgagekit-api/pkg/logger"
)

// RequestLogger logs incoming HTTP requests using slog. Requests to
// skipPaths are not logged.
func RequestLogger(skipPaths ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// Process request
		c.Next()

		if _, ok := skipped[path]; ok {
			return
		}

		end := time.Now()
		latency := end.Sub(start)

		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		userAgent := c.Request.UserAgent()

		if raw != "" {
			path = path + "?" + raw
		}

		// Log attributes
		attrs := []any{
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", statusCode),
			slog.String("ip", clientIP),
			slog.Duration("latency", latency),
			slog.String("user_agent", userAgent),
		}

		// Add error message if present
		if errorMessage != "" {
			attrs = append(attrs, slog.String("error", errorMessage))
		}

		if requestID := GetRequestID(c); requestID != "" {
			attrs = append(attrs, slog.String("request_id", requestID))
		}

		if clientID := GetClientID(c); clientID != "" {
			attrs = append(attrs, slog.String("client_id", clientID))
		}

		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("bytes", size))
		}

		msg := "Request completed"
		if statusCode >= 500 {
			logger.Log.Error(msg, attrs...)
		} else if statusCode >= 400 {
			logger.Log.Warn(msg, attrs...)
		} else {
			logger.Log.Info(msg, attrs...)
		}
	}
}

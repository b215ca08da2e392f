package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/tyrehub/tyrehub/internal/pkg/logger"
)

// RequestLogger logs every request with a correlation id, latency and
// outcome. The id is echoed back in the X-Request-ID header.
func RequestLogger(log *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			entry := log.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     c.Request().Method,
				"path":       c.Request().URL.Path,
				"status":     c.Response().Status,
				"latency_ms": latency.Milliseconds(),
				"remote_ip":  c.RealIP(),
			})

			if err != nil {
				entry.WithError(err).Error("request failed")
			} else if c.Response().Status >= 500 {
				entry.Error("request completed")
			} else {
				entry.Info("request completed")
			}

			return err
		}
	}
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// RequestLogger writes access log entry for each request.
// Errors returned by next handlers are sent to the echo error handler before the entry is written,
// so logged status is the one client receives.
func RequestLogger() echo.MiddlewareFunc {
	logger := echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := logrus.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency,
				"remote_ip": v.RemoteIP,
			}
			if v.RequestID != "" {
				fields["request_id"] = v.RequestID
			}
			if p := Principal(c); p != nil {
				fields["username"] = p.Username
			}

			entry := logrus.WithFields(fields)
			if v.Status >= http.StatusInternalServerError {
				entry.Warn("request served")
			} else {
				entry.Info("request served")
			}
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return logger(func(c echo.Context) error {
			if err := next(c); err != nil {
				c.Error(err)
			}
			return nil
		})
	}
}

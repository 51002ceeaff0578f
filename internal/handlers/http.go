package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/loyalty/internal/errors"
	"github.com/umalmyha/loyalty/internal/middleware"
	"github.com/umalmyha/loyalty/internal/validation"
)

const internalServerErrorMessage = "Internal server error"

type identifier struct {
	ID string `param:"id" validate:"required"`
}

type codePattern struct {
	Code string `param:"code" validate:"required"`
}

type namePattern struct {
	Name string `param:"name" validate:"required"`
}

type message struct {
	Message string `json:"message"`
}

// requestLogger returns log entry bound to the authenticated user
func requestLogger(c echo.Context) *logrus.Entry {
	entry := logrus.WithField("uri", c.Request().RequestURI)
	if p := middleware.Principal(c); p != nil {
		entry = entry.WithField("username", p.Username)
	}
	return entry
}

// listOrNotFound responds with items or raises EntryNotFoundErr if there are no items
func listOrNotFound[T any](c echo.Context, items []T, notFoundMsg string) error {
	if len(items) == 0 {
		return apperrors.NewEntryNotFoundErr(notFoundMsg)
	}
	return c.JSON(http.StatusOK, items)
}

// bindParams binds path params into p and validates them
func bindParams(c echo.Context, p any) error {
	if err := c.Bind(p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.Validate(p)
}

// ErrorHandler converts errors raised by handlers and middleware into json responses
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		notFoundErr *apperrors.EntryNotFoundErr
		payloadErr  *validation.PayloadError
		httpErr     *echo.HTTPError
	)

	status := http.StatusInternalServerError
	var body any = &message{Message: internalServerErrorMessage}

	logger := logrus.WithFields(logrus.Fields{
		"method": c.Request().Method,
		"uri":    c.Request().RequestURI,
	})

	switch {
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
		body = notFoundErr
		logger.Info(err.Error())
	case errors.As(err, &payloadErr):
		status = http.StatusBadRequest
		body = payloadErr
		logger.Infof("invalid request data - %v", err)
	case errors.As(err, &httpErr):
		if internal, ok := httpErr.Internal.(*echo.HTTPError); ok {
			httpErr = internal
		}

		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			body = &message{Message: msg}
		} else {
			body = httpErr.Message
		}

		if status >= http.StatusInternalServerError {
			logger.Errorf("error occurred on request processing - %v", err)
		} else {
			logger.Infof("request rejected - %v", err)
		}
	default:
		logger.Errorf("error occurred on request processing - %v", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}

	if err != nil {
		logger.Errorf("failed to send error response - %v", err)
	}
}

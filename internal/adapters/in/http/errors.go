package http

import (
	"errors"
	"net/http"

	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/logging"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatusFor maps a core error to an HTTP status. Unrecognised errors are 500.
func StatusFor(err error) int {
	var httpErr *echo.HTTPError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrConflictRetry),
		errors.Is(err, errs.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidQuantity):
		return http.StatusUnprocessableEntity
	case errors.As(err, &validationErrs),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders every error as an Error body. 500-class errors are
// logged and their message is hidden from the client.
func ErrorHandler(logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := StatusFor(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}

		if status >= http.StatusInternalServerError {
			logging.LogError(logger, "http", "ErrorHandler", c.Request().Method+" "+c.Path(), nil, err)
			message = http.StatusText(status)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, Error{Code: status, Message: message})
		}
		if writeErr != nil {
			logging.LogError(logger, "http", "ErrorHandler", "write error response", nil, writeErr)
		}
	}
}

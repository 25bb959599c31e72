package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tneaCompass/pkg/logger"
)

// ErrorHandler is the echo-wide fallback for errors no handler turned into
// a response itself (unknown routes, panics surfaced by Recover, bad
// methods).
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	logger.Error("Unhandled request error", err,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", code,
	)

	if err := c.JSON(code, map[string]interface{}{"message": message}); err != nil {
		logger.Error("Failed to write error response", err)
	}
}

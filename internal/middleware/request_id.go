package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tneaCompass/business/recommend"
)

const RequestIDHeader = "X-Request-Id"

// RequestID tags every request with a UUID, echoes it in the response
// header and carries it in the request context so service logs can be
// correlated with responses.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(RequestIDHeader, requestID)
			c.Set("request_id", requestID)

			ctx := recommend.WithTraceID(c.Request().Context(), requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

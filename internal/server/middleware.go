package server

import (
	"github.com/jongwoo01/comment-analyze/internal/correlation"
	"github.com/labstack/echo/v4"
)

const correlationHeader = "X-Correlation-ID"

// correlationMiddleware attaches a correlation ID to every request context
// and echoes it back in the response. An incoming header is reused so that
// IDs propagate across hops.
func correlationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(correlationHeader)
			if id == "" {
				id = correlation.NewID()
			}

			ctx := correlation.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(correlationHeader, id)

			return next(c)
		}
	}
}

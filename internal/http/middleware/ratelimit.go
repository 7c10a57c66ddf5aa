package middleware

import (
	"strconv"

	"github.com/jmehdipour/jobs-api/internal/access"
	echo "github.com/labstack/echo/v4"
)

// AuthOnlyMiddleware validates the API key without counting the request.
func AuthOnlyMiddleware(gate *access.Gate) echo.MiddlewareFunc {
	return APIKeyMiddleware("auth", gate.AuthOnly, gate.Limit())
}

// RateLimitMiddleware validates the API key and then counts the request
// against the key's lifetime budget. The counter never resets, so no
// Retry-After is sent.
func RateLimitMiddleware(gate *access.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// remaining comes from this request's own increment
			remaining := 0
			check := func(presented string) (access.Credential, error) {
				cred, left, err := gate.Admit(presented)
				remaining = left
				return cred, err
			}

			return APIKeyMiddleware("throttle", check, gate.Limit())(func(c echo.Context) error {
				h := c.Response().Header()
				h.Set("X-RateLimit-Limit", strconv.Itoa(gate.Limit()))
				h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
				return next(c)
			})(c)
		}
	}
}

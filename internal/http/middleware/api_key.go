package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jmehdipour/jobs-api/internal/access"
	"github.com/jmehdipour/jobs-api/internal/metrics"
	echo "github.com/labstack/echo/v4"
)

const (
	HeaderAPIKey = "X-API-Key"

	ctxCredential = "credential"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// CredentialFromCtx extracts the credential set by APIKeyMiddleware.
func CredentialFromCtx(c echo.Context) (access.Credential, bool) {
	cred, ok := c.Get(ctxCredential).(access.Credential)
	return cred, ok
}

// APIKeyMiddleware authenticates requests using the X-API-Key header and the
// given gate variant. gate labels the metrics ("auth" | "throttle").
func APIKeyMiddleware(gate string, check access.CheckFunc, limit int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cred, err := check(c.Request().Header.Get(HeaderAPIKey))
			if err != nil {
				return accessDenied(c, gate, err, limit)
			}
			metrics.AccessTotal.WithLabelValues(gate, "allowed").Inc()
			c.Set(ctxCredential, cred)
			return next(c)
		}
	}
}

func accessDenied(c echo.Context, gate string, err error, limit int) error {
	switch {
	case errors.Is(err, access.ErrUnauthorized):
		metrics.AccessTotal.WithLabelValues(gate, "unauthorized").Inc()
		return c.JSON(http.StatusUnauthorized, ErrorBody{
			Error:  "unauthorized",
			Detail: "401 Unauthorized: Invalid API Key. Please provide a valid X-API-Key header.",
		})
	case errors.Is(err, access.ErrTooManyRequests):
		metrics.AccessTotal.WithLabelValues(gate, "throttled").Inc()
		return c.JSON(http.StatusTooManyRequests, ErrorBody{
			Error:  "too_many_requests",
			Detail: fmt.Sprintf("429 Too Many Requests: Rate limit exceeded. Max %d requests allowed.", limit),
		})
	default:
		c.Logger().Errorf("access check failed: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "internal_error", Detail: "auth error"})
	}
}

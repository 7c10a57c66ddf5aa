package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmehdipour/jobs-api/internal/access"
	"github.com/jmehdipour/jobs-api/internal/http/middleware"
	"github.com/jmehdipour/jobs-api/internal/metrics"
	"github.com/jmehdipour/jobs-api/internal/repository"
	"github.com/jmehdipour/jobs-api/internal/util"
	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct{ e *echo.Echo }

func NewServer(jobs repository.JobsRepository, gate *access.Gate, logger *zap.Logger) *Server {
	// echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)
	e.Use(
		echoMid.Recover(),
		echoMid.RequestIDWithConfig(echoMid.RequestIDConfig{Generator: util.New}),
		requestLogger(logger),
	)

	reg := prometheus.NewRegistry()
	metrics.MustRegister(reg)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// health
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	// middlewares
	authMW := middleware.AuthOnlyMiddleware(gate)
	rlMW := middleware.RateLimitMiddleware(gate)

	// routes
	g := e.Group("/jobs")
	g.GET("/", listJobsHandler(jobs), rlMW)
	g.POST("/", createJobHandler(jobs), authMW)
	g.GET("/:id", getJobHandler(jobs), authMW)

	return &Server{e: e}
}

// errorHandler renders errors that escape handlers (unknown routes, 405,
// recovered panics) in the same body shape as the API's own errors.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		body := middleware.ErrorBody{Error: "internal_error", Detail: "internal server error"}

		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code != http.StatusInternalServerError {
			code = he.Code
			body.Error = strings.ToLower(strings.ReplaceAll(http.StatusText(code), " ", "_"))
			body.Detail = fmt.Sprint(he.Message)
		} else {
			logger.Error("unhandled error", zap.Error(err), zap.String("uri", c.Request().RequestURI))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			logger.Error("write error response", zap.Error(err))
		}
	}
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return echoMid.RequestLoggerWithConfig(echoMid.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echoMid.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}

// ServeHTTP lets the server be driven directly by httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.e.ServeHTTP(w, r) }

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }

// ShutdownTimeout falls back to 5s when unset.
func ShutdownTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 5 * time.Second
	}
	return d
}

package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lawfully-illegal/masterhub/internal/errs"
	"github.com/lawfully-illegal/masterhub/internal/lib/stamp"
	"github.com/lawfully-illegal/masterhub/internal/server"
)

// endpointNotFound is the message of every unmatched route.
const endpointNotFound = "Endpoint not found"

// GlobalMiddlewares groups “global” middleware and the global error handler.
//
// Middleware functions read config (CORS origins, env) through the shared
// *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo’s CORS middleware configured by the server config.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger returns Echo’s request logger middleware with a zerolog
// LogValuesFunc: one “API” line per request, severity based on status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// When a handler returns an error the final status is only decided
			// by GlobalErrorHandler, so derive it from the error instead.
			// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			statusCode := v.Status
			if v.Error != nil {
				statusCode = statusOf(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover returns Echo’s panic recovery middleware. Recovered panics reach
// GlobalErrorHandler as plain errors and become 500s.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			GetLogger(c).Error().Err(err).Bytes("stack", stack).Msg("recovered from panic")
			return err
		},
	})
}

// BodyLimit rejects request bodies larger than the configured limit with 413.
func (global *GlobalMiddlewares) BodyLimit() echo.MiddlewareFunc {
	return middleware.BodyLimit(global.server.Config.Server.BodyLimit)
}

// Secure returns Echo’s secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error ends up here, regardless of where it happened:
//   - *errs.HTTPError is written as is
//   - echo's 404 and 405 become {"error": "Endpoint not found", path, method}
//   - other echo errors keep their status with the hub's error shape
//   - anything else is an internal error; the real cause is only logged
//
// 5xx responses carry a timestamp.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := ToHTTPError(err, c.Request())

	if httpErr.Status >= http.StatusInternalServerError && httpErr.Timestamp == "" {
		cp := *httpErr
		httpErr = &cp
		httpErr.Timestamp = stamp.Timestamp(time.Now())
	}

	logger := GetLogger(c)
	var event *zerolog.Event
	if httpErr.Status >= http.StatusInternalServerError {
		event = logger.Error().Stack()
	} else {
		event = logger.Debug()
	}
	event.
		Err(err).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}
	_ = c.JSON(httpErr.Status, httpErr)
}

// ToHTTPError classifies any error into the hub's wire error.
func ToHTTPError(err error, req *http.Request) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		switch echoErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return errs.NewNotFoundError(endpointNotFound, nil).WithDetails(map[string]any{
				"path":   req.URL.Path,
				"method": req.Method,
			})
		}

		message, ok := echoErr.Message.(string)
		if !ok {
			message = http.StatusText(echoErr.Code)
		}
		return &errs.HTTPError{
			Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
			Message: message,
			Status:  echoErr.Code,
		}
	}

	return errs.NewInternalServerError()
}

// statusOf returns the status GlobalErrorHandler will answer err with.
func statusOf(err error) int {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusMethodNotAllowed {
			return http.StatusNotFound
		}
		return echoErr.Code
	}

	return http.StatusInternalServerError
}

package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"

	"github.com/lawfully-illegal/masterhub/internal/middleware"
	"github.com/lawfully-illegal/masterhub/internal/server"
	"github.com/lawfully-illegal/masterhub/internal/validation"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers (e.g., LegalHandler, SystemHandler) so they can
// access shared resources via *server.Server (config, logger, New Relic).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// It returns the struct by value; copies still point to the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc represents a typed endpoint function that:
//
// - receives a validated request payload (Req)
// - returns a response (Res) or an error
//
// Req is a POINTER type, e.g. *model.SubmitEvidenceRequest, because Echo's
// Bind needs a pointer to populate fields.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// payload ties a request struct T to its pointer type, so the pipeline can
// allocate a fresh *T for every request.
type payload[T any] interface {
	*T
	validation.Validatable
}

// ResponseHandler defines how a successful handler result is written to the
// HTTP response, and how observability attributes are attached for that
// response type.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string

	// AddAttributes attaches New Relic attributes based on response type and/or result.
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	// http.status_code is already set by tracing middleware (EnhanceTracing).
}

// BlobResponseHandler writes a raw body ([]byte) with a fixed content type.
// Responses are marked no-cache.
type BlobResponseHandler struct {
	status      int
	contentType string
}

func (h BlobResponseHandler) Handle(c echo.Context, result interface{}) error {
	data, ok := result.([]byte)
	if !ok {
		return errors.Errorf("blob handler expects []byte, got %T", result)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	return c.Blob(h.status, h.contentType, data)
}

func (h BlobResponseHandler) GetOperation() string {
	return "handler_blob"
}

func (h BlobResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if txn == nil {
		return
	}
	txn.AddAttribute("blob.content_type", h.contentType)
	if data, ok := result.([]byte); ok {
		txn.AddAttribute("blob.size_bytes", len(data))
	}
}

// handleRequest is the shared execution pipeline for all handlers.
//
// It centralizes:
//
// - request binding + validation
// - structured logging (with request context)
// - New Relic tracing attributes and error reporting
// - timing metrics (validation duration, handler duration, total duration)
// - response writing (json / blob)
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	// New Relic transaction is set by the New Relic Echo middleware (nrecho).
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	// The context-enhanced logger already carries request_id, method, path
	// and trace ids.
	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		// The global error handler formats the response.
		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())

		responseHandler.AddAttributes(txn, result)
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with binding, validation, error handling,
// logging, metrics, and tracing.
//
// A new request value is allocated for every call, so concurrent requests
// never share a payload.
//
// Usage:
//
//	api.POST("/evidence/submit", handler.Handle(h.Handler, h.Submit, http.StatusCreated))
func Handle[T any, Req payload[T], Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, Req(new(T)), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleBlob is Handle for endpoints answering with a raw body of the given
// content type.
func HandleBlob[T any, Req payload[T]](
	h Handler,
	handler HandlerFunc[Req, []byte],
	status int,
	contentType string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, Req(new(T)), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, BlobResponseHandler{
			status:      status,
			contentType: contentType,
		})
	}
}

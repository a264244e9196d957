// Items HTTP handlers.
//
// This file exposes the items endpoint and the health probe:
//   - ANY /items   (GET lists, POST echoes, anything else is 405)
//   - GET /health
//
// The handler is transport-thin: it maps the Gin request onto a
// domain.Request, runs the items pipeline, and writes the result.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-items-api/internal/domain"
	"github.com/tbourn/go-items-api/internal/http/middleware"
	"github.com/tbourn/go-items-api/internal/services"
)

// Handlers groups the HTTP endpoints backed by the items pipeline.
type Handlers struct {
	items services.Handler
}

// New constructs Handlers bound to the given pipeline.
func New(items services.Handler) *Handlers {
	return &Handlers{items: items}
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Health godoc
// @ID          health
// @Summary     Liveness probe
// @Tags        Ops
// @Produce     json
// @Success     200  {object}  handlers.HealthResponse
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	ok(c, http.StatusOK, HealthResponse{Status: "ok"})
}

// ListItems godoc
// @ID          listItems
// @Summary     List items
// @Description Returns the fixed item list. A small fraction of calls may be replaced by a simulated 400 or 500.
// @Tags        Items
// @Produce     json
// @Success     200  {object}  domain.ListPayload
// @Failure     400  {object}  domain.ErrorPayload  "Simulated client error"
// @Failure     500  {object}  domain.ErrorPayload  "Simulated server error"
// @Router      /items [get]
func (h *Handlers) ListItems(c *gin.Context) { h.serve(c) }

// CreateItem godoc
// @ID          createItem
// @Summary     Echo a posted item
// @Description Echoes the JSON body under "received". An empty body is treated as {}.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body  body      object  false  "Any JSON value"
// @Success     201   {object}  domain.EchoPayload
// @Failure     400   {object}  handlers.ErrorResponse  "Malformed JSON body or simulated client error"
// @Failure     413   {object}  handlers.ErrorResponse  "Body too large"
// @Failure     500   {object}  domain.ErrorPayload     "Simulated server error"
// @Router      /items [post]
func (h *Handlers) CreateItem(c *gin.Context) { h.serve(c) }

// OtherMethod godoc
// @ID          rejectMethod
// @Summary     Unsupported methods
// @Tags        Items
// @Produce     json
// @Success     405  {object}  domain.ErrorPayload
// @Router      /items [delete]
func (h *Handlers) OtherMethod(c *gin.Context) { h.serve(c) }

// serve runs the pipeline for every verb; method dispatch belongs to the
// router so the HTTP and Lambda paths behave the same.
func (h *Handlers) serve(c *gin.Context) {
	req, err := toRequest(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(c, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "request body too large")
			return
		}
		_ = c.Error(err)
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unable to read request body")
		return
	}

	resp, err := h.items.Handle(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrMalformedBody):
		_ = c.Error(err)
		middleware.LoggerFrom(c).Error().Err(err).Msg("rejecting malformed body")
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Malformed JSON body")
		return
	case err != nil:
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
		return
	}

	write(c, resp)
}

// toRequest maps the Gin request onto a domain.Request. A request without
// body bytes is treated as having no body.
func toRequest(c *gin.Context) (domain.Request, error) {
	req := domain.Request{Method: c.Request.Method}
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return req, nil
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return req, err
	}
	if len(raw) > 0 {
		body := string(raw)
		req.Body = &body
	}
	return req, nil
}

// Package lambdaapi adapts API Gateway proxy events to the items pipeline.
//
// Both payload formats are accepted: HTTP API (v2, method under
// requestContext.http.method) and REST API (v1, httpMethod). An empty body is
// passed on as absent. Malformed bodies, undecodable base64 included, are
// returned to the Lambda runtime as errors so the invocation fails visibly.
package lambdaapi

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-items-api/internal/domain"
	"github.com/tbourn/go-items-api/internal/services"
)

const contentTypeJSON = "application/json"

// Handler serves Lambda invocations through a services.Handler.
type Handler struct {
	items services.Handler
}

// New returns a Handler bound to the given pipeline.
func New(items services.Handler) *Handler {
	return &Handler{items: items}
}

// Handle serves an HTTP API (payload v2) event.
func (h *Handler) Handle(ctx context.Context, ev events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	resp, err := h.dispatch(ctx, ev.RequestContext.HTTP.Method, ev.Body, ev.IsBase64Encoded)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       resp.Body,
	}, nil
}

// HandleREST serves a REST API (payload v1) event.
func (h *Handler) HandleREST(ctx context.Context, ev events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp, err := h.dispatch(ctx, ev.HTTPMethod, ev.Body, ev.IsBase64Encoded)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       resp.Body,
	}, nil
}

// payloadProbe picks out the fields that tell the two formats apart.
type payloadProbe struct {
	Version    string `json:"version"`
	HTTPMethod string `json:"httpMethod"`
}

// HandleEvent accepts either payload format and dispatches on its shape.
// Events carrying version "2.0", or no httpMethod at all, are read as v2.
func (h *Handler) HandleEvent(ctx context.Context, raw json.RawMessage) (any, error) {
	var probe payloadProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}

	if probe.Version != "2.0" && probe.HTTPMethod != "" {
		var ev events.APIGatewayProxyRequest
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, fmt.Errorf("decode rest event: %w", err)
		}
		return h.HandleREST(ctx, ev)
	}

	var ev events.APIGatewayV2HTTPRequest
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, fmt.Errorf("decode http event: %w", err)
	}
	return h.Handle(ctx, ev)
}

func (h *Handler) dispatch(ctx context.Context, method, body string, b64 bool) (domain.Response, error) {
	start := time.Now()

	l := invocationLogger(ctx)
	ctx = l.WithContext(ctx)

	resp, err := h.items.Handle(ctx, toRequest(method, body, b64))
	if err != nil {
		l.Error().Err(err).Str("method", method).Dur("latency", time.Since(start)).Msg("invocation failed")
		return domain.Response{}, err
	}

	l.Info().
		Str("method", method).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("invocation")
	return resp, nil
}

// toRequest builds a domain.Request. Base64 bodies are decoded by the
// router so the fault gate still runs before any body processing.
func toRequest(method, body string, b64 bool) domain.Request {
	req := domain.Request{Method: method, Base64: b64}
	if body != "" {
		req.Body = &body
	}
	return req
}

// invocationLogger derives a logger tagged with the AWS request id when the
// runtime supplied one.
func invocationLogger(ctx context.Context) zerolog.Logger {
	c := log.Logger.With()
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		c = c.Str("aws_request_id", lc.AwsRequestID)
	}
	return c.Logger()
}

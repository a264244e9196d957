package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-items-api/internal/config"
	"github.com/tbourn/go-items-api/internal/domain"
)

// Handler turns a Request into a Response. Implementations must be safe for
// concurrent use; every call is independent.
type Handler interface {
	Handle(ctx context.Context, req domain.Request) (domain.Response, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, req domain.Request) (domain.Response, error)

// Handle calls fn(ctx, req).
func (fn HandlerFunc) Handle(ctx context.Context, req domain.Request) (domain.Response, error) {
	return fn(ctx, req)
}

var tracer = otel.Tracer("github.com/tbourn/go-items-api/internal/services")

// NewPipeline composes the router with an optional fault injector in front
// of it. A nil injector disables fault injection.
func NewPipeline(router *Router, injector *FaultInjector) Handler {
	var h Handler = router
	if injector != nil {
		h = injector.Wrap(h)
	}
	return traced{next: h}
}

// NewPipelineFromConfig builds the pipeline described by cfg. A zero Seed
// draws from the global random source.
func NewPipelineFromConfig(cfg config.FaultConfig) (Handler, error) {
	if !cfg.Enabled {
		return NewPipeline(NewRouter(), nil), nil
	}
	src := GlobalSource()
	if cfg.Seed != 0 {
		src = NewSeededSource(cfg.Seed)
	}
	injector, err := NewFaultInjector(cfg.Probability, src)
	if err != nil {
		return nil, err
	}
	return NewPipeline(NewRouter(), injector), nil
}

// traced records one span per request.
type traced struct {
	next Handler
}

func (t traced) Handle(ctx context.Context, req domain.Request) (domain.Response, error) {
	ctx, span := tracer.Start(ctx, "items.handle",
		trace.WithAttributes(attribute.String("http.request.method", req.Method)))
	defer span.End()

	resp, err := t.next.Handle(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return resp, err
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	return resp, nil
}

package services

import (
	"context"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-items-api/internal/domain"
)

// DefaultFaultProbability is the chance (0.1%) that a request is replaced by
// a synthetic error.
const DefaultFaultProbability = 0.001

// faultsInjected counts synthetic responses by status code.
var faultsInjected = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "items_injected_faults_total",
		Help: "Total number of synthetic error responses returned by the fault injector.",
	},
	[]string{"status"},
)

func init() {
	prometheus.MustRegister(faultsInjected)
}

// RandomSource supplies the draws used by FaultInjector. Implementations
// must be safe for concurrent use.
type RandomSource interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// GlobalSource returns a RandomSource backed by the top-level math/rand/v2
// functions, which are randomly seeded and goroutine-safe.
func GlobalSource() RandomSource { return globalSource{} }

// seededSource serializes access to a deterministic generator.
type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource returns a deterministic RandomSource. Two sources built
// from the same seed yield the same sequence.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// FaultInjector replaces a small, random fraction of requests with a
// synthetic 400 or 500 response. The decision ignores request content.
type FaultInjector struct {
	probability float64
	src         RandomSource
}

// NewFaultInjector builds an injector that triggers with the given
// probability. A nil src falls back to GlobalSource.
func NewFaultInjector(probability float64, src RandomSource) (*FaultInjector, error) {
	if !(probability >= 0 && probability <= 1) {
		return nil, ErrInvalidProbability
	}
	if src == nil {
		src = GlobalSource()
	}
	return &FaultInjector{probability: probability, src: src}, nil
}

// Probability returns the configured trigger probability.
func (f *FaultInjector) Probability() float64 { return f.probability }

// shouldFail draws once from the source.
func (f *FaultInjector) shouldFail() bool {
	return f.src.Float64() < f.probability
}

// syntheticError picks a client or server error with equal odds.
func (f *FaultInjector) syntheticError() domain.Response {
	if f.src.IntN(2) == 0 {
		return mustRender(http.StatusBadRequest, domain.ErrorPayload{
			Error:   domain.ErrorBadRequest,
			Message: domain.MessageSimulatedClient,
		})
	}
	return mustRender(http.StatusInternalServerError, domain.ErrorPayload{
		Error:   domain.ErrorInternalServerError,
		Message: domain.MessageSimulatedServer,
	})
}

// MaybeFail runs the fault check for one request. When it reports true the
// returned Response must be sent instead of dispatching the request.
func (f *FaultInjector) MaybeFail(ctx context.Context) (domain.Response, bool) {
	if !f.shouldFail() {
		return domain.Response{}, false
	}
	resp := f.syntheticError()

	faultsInjected.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	trace.SpanFromContext(ctx).SetAttributes(attribute.Bool("items.fault_injected", true))
	zerolog.Ctx(ctx).Warn().
		Int("status", resp.StatusCode).
		Float64("probability", f.probability).
		Msg("fault injected")

	return resp, true
}

// Wrap decorates next so that the fault check runs before it. On trigger
// next is never called.
func (f *FaultInjector) Wrap(next Handler) Handler {
	return HandlerFunc(func(ctx context.Context, req domain.Request) (domain.Response, error) {
		if resp, failed := f.MaybeFail(ctx); failed {
			return resp, nil
		}
		return next.Handle(ctx, req)
	})
}

// mustRender encodes payloads whose shape is fixed at compile time.
func mustRender(status int, payload domain.ErrorPayload) domain.Response {
	resp, err := render(status, payload)
	if err != nil {
		panic(err)
	}
	return resp
}

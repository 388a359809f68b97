package bench

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/devhub/internal/errs"
	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/service"
	"github.com/MrSnakeDoc/devhub/internal/utils"
)

const DefaultTimeout = 5 * time.Second

// Engine measures mirror latency with concurrent HEAD probes. It is safe for
// concurrent use; the HTTP client is shared read-only.
type Engine struct {
	client    service.HTTPClient
	timeout   time.Duration
	workers   int
	userAgent string
	now       func() time.Time
}

type Option func(*Engine)

func WithClient(c service.HTTPClient) Option {
	return func(e *Engine) { e.client = c }
}

// WithTimeout sets the per-probe deadline. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithWorkers bounds the number of in-flight probes. Zero means one goroutine
// per mirror.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

func WithUserAgent(ua string) Option {
	return func(e *Engine) { e.userAgent = ua }
}

func New(opts ...Option) *Engine {
	e := &Engine{timeout: DefaultTimeout, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	if e.client == nil {
		// The client timeout is a backstop; each probe carries its own deadline.
		e.client = service.NewHTTPClient(e.timeout + time.Second)
	}
	return e
}

func (e *Engine) Timeout() time.Duration { return e.timeout }

// NormalizeURL turns a catalog URL into an HTTP probe target.
func NormalizeURL(raw string) string {
	return utils.NormalizeProbeURL(raw)
}

// Probe measures one mirror. Failures are reported as models.Unreachable,
// never as an error.
func (e *Engine) Probe(ctx context.Context, m models.Mirror) models.BenchmarkResult {
	result := models.BenchmarkResult{Mirror: m, Latency: models.Unreachable}

	target := NormalizeURL(m.URL)
	if _, err := utils.ParseProbeURL(target); err != nil {
		logger.Debug("Skipping %s: %v", m.Name, err)
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := e.now()
	status, err := service.Head(ctx, e.client, target, e.userAgent)
	elapsed := e.now().Sub(start)

	switch {
	case err != nil:
		logger.Debug("Probe %s (%s) failed: %v", m.Name, target, err)
	case !service.IsSuccess(status):
		logger.Debug("Probe %s (%s) answered %d", m.Name, target, status)
	case elapsed > e.timeout:
		logger.Debug("Probe %s (%s) exceeded %s", m.Name, target, e.timeout)
	default:
		if elapsed < 0 {
			elapsed = 0
		}
		result.Latency = elapsed
	}
	return result
}

// Rank probes every mirror concurrently and returns one result per mirror,
// fastest first, unreachable last. Ties keep input order.
func (e *Engine) Rank(ctx context.Context, mirrors []models.Mirror) []models.BenchmarkResult {
	results := make([]models.BenchmarkResult, len(mirrors))
	if len(mirrors) == 0 {
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	if e.workers > 0 {
		g.SetLimit(e.workers)
	}
	for i, m := range mirrors {
		g.Go(func() error {
			results[i] = e.Probe(gctx, m)
			return nil
		})
	}
	_ = g.Wait()

	Sort(results)
	return results
}

// Sort orders results ascending by latency, stable, unreachable last.
func Sort(results []models.BenchmarkResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Latency < results[j].Latency
	})
}

// Fastest returns the first reachable result of a ranked list.
func Fastest(results []models.BenchmarkResult) (models.BenchmarkResult, error) {
	for _, r := range results {
		if r.Reachable() {
			return r, nil
		}
	}
	return models.BenchmarkResult{}, errs.ErrAllUnreachable
}

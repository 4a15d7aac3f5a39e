package discovery

import (
	"context"
	"time"

	"go.uber.org/zap"

	"nearby/pkg/geo"
)

// DefaultProviderTimeout bounds a single provider call.
const DefaultProviderTimeout = 10 * time.Second

// SearchClient is the transport to the place-search provider. Errors should
// wrap one of ErrPermissionDenied, ErrInvalidRequest, ErrRateLimited or
// ErrTransient.
type SearchClient interface {
	SearchByTag(ctx context.Context, center geo.LatLng, radiusMeters int, tag string, maxResults int) ([]RawPlace, error)
	SearchByText(ctx context.Context, center geo.LatLng, radiusMeters int, query string, maxResults int) ([]RawPlace, error)
}

// ProviderAdapter executes sub-queries against a SearchClient. Provider
// failures are logged and turned into empty results.
type ProviderAdapter struct {
	client  SearchClient
	timeout time.Duration
	sleep   SleepFunc
	logger  *zap.Logger
}

type AdapterOption func(*ProviderAdapter)

func WithTimeout(d time.Duration) AdapterOption {
	return func(a *ProviderAdapter) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithSleep replaces the wall-clock wait between calls.
func WithSleep(fn SleepFunc) AdapterOption {
	return func(a *ProviderAdapter) {
		if fn != nil {
			a.sleep = fn
		}
	}
}

func NewProviderAdapter(client SearchClient, logger *zap.Logger, opts ...AdapterOption) *ProviderAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &ProviderAdapter{
		client:  client,
		timeout: DefaultProviderTimeout,
		sleep:   sleepContext,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute runs q, waiting as the pacer dictates. failed reports that the
// provider error was absorbed and the empty list stands in for real results.
// The returned error is only ever the context's error.
func (a *ProviderAdapter) Execute(ctx context.Context, q SubQuery, pacer *Pacer) (raws []RawPlace, failed bool, err error) {
	log := a.logger.With(
		zap.String("category", q.Category),
		zap.Int("subquery", q.Index),
		zap.String("kind", string(q.Kind)),
		zap.String("term", q.Term),
	)

	for attempt := 1; ; attempt++ {
		if err := a.sleep(ctx, pacer.Before()); err != nil {
			return nil, false, err
		}

		raws, err := a.call(ctx, q)
		if err == nil {
			pacer.OnSuccess()
			return raws, false, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, false, ctxErr
		}

		class := ErrorClass(err)
		log.Warn("provider sub-query failed",
			zap.String("class", className(class)),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		if class != ErrRateLimited {
			pacer.OnFailure()
			return []RawPlace{}, true, nil
		}
		pacer.OnRateLimited()
		if attempt > pacer.policy.MaxRetries {
			log.Warn("giving up on rate-limited sub-query",
				zap.Int("attempts", attempt),
				zap.Duration("delay", pacer.Delay()),
			)
			return []RawPlace{}, true, nil
		}
	}
}

func (a *ProviderAdapter) call(ctx context.Context, q SubQuery) ([]RawPlace, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	limit := q.MaxResults
	if limit <= 0 || limit > MaxResultsPerCall {
		limit = MaxResultsPerCall
	}

	switch q.Kind {
	case QueryByText:
		return a.client.SearchByText(callCtx, q.Center, q.RadiusMeters, q.Term, limit)
	default:
		return a.client.SearchByTag(callCtx, q.Center, q.RadiusMeters, q.Term, limit)
	}
}

package discovery

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nearby/pkg/geo"
)

// Engine answers "what is around this point" for a category taxonomy. It
// holds no per-request state and is safe for concurrent use.
type Engine struct {
	aggregator *Aggregator
	logger     *zap.Logger
}

func NewEngine(aggregator *Aggregator, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{aggregator: aggregator, logger: logger}
}

// Report describes how complete a discovery run was.
type Report struct {
	// FailedSubQueries counts sub-queries whose provider error was absorbed.
	FailedSubQueries int
}

// Degraded reports whether some categories may be missing places because
// the provider failed.
func (r Report) Degraded() bool {
	return r.FailedSubQueries > 0
}

// Discover searches every category of taxonomy around center and folds in
// the curated snapshot. Only a *ValidationError fails the call outright. If
// ctx ends early the categories finished so far are returned together with
// ctx's error.
func (e *Engine) Discover(ctx context.Context, center geo.LatLng, radiusMeters int, taxonomy CategoryTaxonomy, curated []CuratedPlace) (Result, error) {
	result, _, err := e.DiscoverWithReport(ctx, center, radiusMeters, taxonomy, curated)
	return result, err
}

// DiscoverWithReport is Discover that also says whether provider failures
// were absorbed along the way.
func (e *Engine) DiscoverWithReport(ctx context.Context, center geo.LatLng, radiusMeters int, taxonomy CategoryTaxonomy, curated []CuratedPlace) (Result, Report, error) {
	if err := validate(center, radiusMeters, taxonomy); err != nil {
		return nil, Report{}, err
	}

	categories := taxonomy.Categories()
	lists := make([][]Place, len(categories))
	failures := make([]int, len(categories))
	finished := make([]bool, len(categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			plan := Plan(category, taxonomy[category], center, radiusMeters)
			places, failed, err := e.aggregator.Collect(gctx, category, plan, center, radiusMeters)
			failures[i] = failed
			if err != nil {
				e.logger.Warn("category abandoned",
					zap.String("category", category),
					zap.Error(err),
				)
				return err
			}
			lists[i] = Rank(places)
			finished[i] = true
			return nil
		})
	}
	waitErr := g.Wait()

	var report Report
	result := make(Result, len(categories)+1)
	for i, category := range categories {
		report.FailedSubQueries += failures[i]
		if finished[i] {
			result[category] = lists[i]
		}
	}
	result = MergeCurated(result, curated, center, radiusMeters)

	if waitErr != nil {
		e.logger.Warn("discovery interrupted",
			zap.Int("categories_done", countTrue(finished)),
			zap.Int("categories", len(categories)),
			zap.Error(waitErr),
		)
		return result, report, waitErr
	}
	return result, report, nil
}

func validate(center geo.LatLng, radiusMeters int, taxonomy CategoryTaxonomy) error {
	if !center.Valid() {
		return &ValidationError{Field: "center", Reason: "latitude must be in [-90,90] and longitude in [-180,180]"}
	}
	if radiusMeters <= 0 {
		return &ValidationError{Field: "radius", Reason: "must be greater than 0"}
	}
	return taxonomy.Validate()
}

func countTrue(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

package discovery

import (
	"context"

	"go.uber.org/zap"

	"nearby/pkg/geo"
)

// Aggregator runs the plan of one category and merges what comes back.
type Aggregator struct {
	adapter    *ProviderAdapter
	normalizer *Normalizer
	policy     PacingPolicy
	logger     *zap.Logger
}

func NewAggregator(adapter *ProviderAdapter, normalizer *Normalizer, policy PacingPolicy, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		adapter:    adapter,
		normalizer: normalizer,
		policy:     policy,
		logger:     logger,
	}
}

// Collect executes plan one sub-query at a time and returns the in-radius
// places, deduplicated by id with the first occurrence kept, and the number
// of sub-queries lost to provider failures. A non-nil error means ctx ended
// before the plan finished.
func (g *Aggregator) Collect(ctx context.Context, category string, plan []SubQuery, center geo.LatLng, radiusMeters int) ([]Place, int, error) {
	pacer := g.policy.NewPacer()
	seen := make(map[string]struct{})
	places := make([]Place, 0, len(plan)*MaxResultsPerCall)
	failures := 0

	for _, q := range plan {
		raws, failed, err := g.adapter.Execute(ctx, q, pacer)
		if err != nil {
			return places, failures, err
		}
		if failed {
			failures++
		}

		kept := 0
		for _, raw := range raws {
			place, ok := g.normalizer.Normalize(raw, center, category)
			if !ok || place.DistanceMeters > radiusMeters {
				continue
			}
			if _, dup := seen[place.ID]; dup {
				continue
			}
			seen[place.ID] = struct{}{}
			places = append(places, place)
			kept++
		}

		g.logger.Debug("sub-query merged",
			zap.String("category", category),
			zap.Int("subquery", q.Index),
			zap.Int("raw", len(raws)),
			zap.Int("kept", kept),
		)
	}

	switch {
	case failures > 0:
		g.logger.Warn("category degraded by provider failures",
			zap.String("category", category),
			zap.Int("failed_subqueries", failures),
			zap.Int("subqueries", len(plan)),
			zap.Int("places", len(places)),
		)
	case len(places) == 0:
		g.logger.Info("no results for category",
			zap.String("category", category),
			zap.Bool("no_results", true),
			zap.Int("subqueries", len(plan)),
		)
	}
	return places, failures, nil
}

package discovery

import (
	"strings"

	"nearby/pkg/geo"
)

// MaxResultsPerCall is the provider's documented per-call result cap.
const MaxResultsPerCall = 20

type QueryKind string

const (
	QueryByTag  QueryKind = "tag"
	QueryByText QueryKind = "text"
)

// SubQuery is one planned provider call.
type SubQuery struct {
	Category     string
	Index        int
	Kind         QueryKind
	Term         string
	Center       geo.LatLng
	RadiusMeters int
	MaxResults   int
}

// Plan lists the sub-queries for one category: the tag search first so its
// records win deduplication, then each free-text query in order.
func Plan(category string, entry TaxonomyEntry, center geo.LatLng, radiusMeters int) []SubQuery {
	plan := make([]SubQuery, 0, 1+len(entry.TextQueries))

	add := func(kind QueryKind, term string) {
		term = strings.TrimSpace(term)
		if term == "" {
			return
		}
		plan = append(plan, SubQuery{
			Category:     category,
			Index:        len(plan),
			Kind:         kind,
			Term:         term,
			Center:       center,
			RadiusMeters: radiusMeters,
			MaxResults:   MaxResultsPerCall,
		})
	}

	add(QueryByTag, entry.PrimaryTag)
	for _, q := range entry.TextQueries {
		add(QueryByText, q)
	}
	return plan
}

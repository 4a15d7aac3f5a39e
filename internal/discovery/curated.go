package discovery

import (
	"sort"
	"strings"

	"nearby/pkg/geo"
)

// CuratedOverlay converts the curated snapshot into in-radius places ordered
// by distance. Entries without an id, a name or a valid location are skipped.
func CuratedOverlay(snapshot []CuratedPlace, center geo.LatLng, radiusMeters int) []Place {
	seen := make(map[string]struct{}, len(snapshot))
	places := make([]Place, 0, len(snapshot))

	for _, c := range snapshot {
		id := strings.TrimSpace(c.ID)
		name := cleanName(c.Name)
		if id == "" || name == "" || !c.Location.Valid() {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}

		distance := geo.RoundedDistance(center, c.Location)
		if distance > radiusMeters {
			continue
		}
		seen[id] = struct{}{}

		places = append(places, Place{
			ID:             id,
			Name:           name,
			Address:        strings.TrimSpace(c.Address),
			Location:       c.Location,
			Rating:         clampRating(c.Rating),
			RatingCount:    max(c.RatingCount, 0),
			DistanceMeters: distance,
			PhotoRefs:      append([]PhotoRef{}, c.PhotoRefs...),
			WebsiteURI:     strings.TrimSpace(c.WebsiteURI),
			Category:       CategoryCurated,
			SourceTypes:    []string{},
		})
	}

	sort.SliceStable(places, func(i, j int) bool {
		return places[i].DistanceMeters < places[j].DistanceMeters
	})
	return places
}

// MergeCurated adds the curated category to result when any curated place is
// within the radius.
func MergeCurated(result Result, snapshot []CuratedPlace, center geo.LatLng, radiusMeters int) Result {
	if len(snapshot) == 0 {
		return result
	}
	if overlay := CuratedOverlay(snapshot, center, radiusMeters); len(overlay) > 0 {
		result[CategoryCurated] = overlay
	}
	return result
}

func clampRating(r float64) float64 {
	if r != r || r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

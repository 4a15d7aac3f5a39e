package discovery

import (
	"fmt"
	"strings"
	"unicode"

	"nearby/pkg/geo"
)

// Normalizer turns raw provider records into canonical places. Context tokens
// are the city and country names of the search area; they are never accepted
// as a place name.
type Normalizer struct {
	contextTokens map[string]struct{}
}

func NewNormalizer(contextTokens []string) *Normalizer {
	tokens := make(map[string]struct{}, len(contextTokens))
	for _, t := range contextTokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tokens[t] = struct{}{}
		}
	}
	return &Normalizer{contextTokens: tokens}
}

// Normalize builds a Place from raw. The second return is false when the
// record has no id, no usable coordinates, or no resolvable name.
func (n *Normalizer) Normalize(raw RawPlace, center geo.LatLng, category string) (Place, bool) {
	id := strings.TrimSpace(raw.ID)
	if id == "" || raw.Location == nil || !raw.Location.Valid() {
		return Place{}, false
	}

	name := n.resolveName(raw)
	if name == "" {
		return Place{}, false
	}

	place := Place{
		ID:             id,
		Name:           name,
		Address:        strings.TrimSpace(deref(raw.FormattedAddress)),
		Location:       *raw.Location,
		DistanceMeters: geo.RoundedDistance(center, *raw.Location),
		PhotoRefs:      make([]PhotoRef, 0, len(raw.Photos)),
		WebsiteURI:     strings.TrimSpace(deref(raw.WebsiteURI)),
		Category:       category,
		SourceTypes:    append([]string(nil), raw.Types...),
	}
	if raw.Rating != nil {
		place.Rating = clampRating(*raw.Rating)
	}
	if raw.RatingCount != nil && *raw.RatingCount > 0 {
		place.RatingCount = *raw.RatingCount
	}
	for _, p := range raw.Photos {
		if strings.TrimSpace(p.Ref) != "" {
			place.PhotoRefs = append(place.PhotoRefs, p)
		}
	}
	return place, true
}

func (n *Normalizer) resolveName(raw RawPlace) string {
	if name := cleanName(deref(raw.DisplayName)); name != "" {
		return name
	}
	if name := cleanName(deref(raw.Name)); name != "" {
		return name
	}
	if name := n.nameFromAddress(deref(raw.FormattedAddress)); name != "" {
		return name
	}
	return labelFromTypes(raw.Types, raw.Location)
}

func (n *Normalizer) nameFromAddress(address string) string {
	for _, segment := range strings.Split(address, ",") {
		segment = cleanName(segment)
		if segment == "" {
			continue
		}
		if first := []rune(segment)[0]; unicode.IsDigit(first) {
			continue
		}
		if _, ok := n.contextTokens[strings.ToLower(segment)]; ok {
			continue
		}
		return segment
	}
	return ""
}

func labelFromTypes(types []string, loc *geo.LatLng) string {
	if loc == nil {
		return ""
	}
	for _, t := range types {
		if label, ok := TagLabel(t); ok {
			return fmt.Sprintf("%s (%.4f, %.4f)", label, loc.Latitude, loc.Longitude)
		}
	}
	return ""
}

// cleanName trims s and rejects placeholder names.
func cleanName(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "unknown") {
		return ""
	}
	return s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

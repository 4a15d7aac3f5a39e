package discovery

import "sort"

// Rank orders places by rating descending, then distance ascending. Ties keep
// their input order.
func Rank(places []Place) []Place {
	sort.SliceStable(places, func(i, j int) bool {
		if places[i].Rating != places[j].Rating {
			return places[i].Rating > places[j].Rating
		}
		return places[i].DistanceMeters < places[j].DistanceMeters
	})
	return places
}

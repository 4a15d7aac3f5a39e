package discovery

import (
	"reflect"
	"testing"
)

func ids(places []Place) []string {
	out := make([]string, len(places))
	for i, p := range places {
		out[i] = p.ID
	}
	return out
}

func TestRank(t *testing.T) {
	cases := []struct {
		name   string
		places []Place
		want   []string
	}{
		{
			name: "rating descending",
			places: []Place{
				{ID: "low", Rating: 3.9, DistanceMeters: 10},
				{ID: "high", Rating: 4.8, DistanceMeters: 900},
			},
			want: []string{"high", "low"},
		},
		{
			name: "unrated ordered by distance",
			places: []Place{
				{ID: "far", DistanceMeters: 700},
				{ID: "near", DistanceMeters: 50},
				{ID: "mid", DistanceMeters: 300},
			},
			want: []string{"near", "mid", "far"},
		},
		{
			name: "full ties keep input order",
			places: []Place{
				{ID: "first", Rating: 4, DistanceMeters: 100},
				{ID: "second", Rating: 4, DistanceMeters: 100},
				{ID: "third", Rating: 4, DistanceMeters: 100},
			},
			want: []string{"first", "second", "third"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Rank(tc.places))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Rank = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestRank_Idempotent(t *testing.T) {
	places := []Place{
		{ID: "a", Rating: 4.2, DistanceMeters: 400},
		{ID: "b", Rating: 0, DistanceMeters: 20},
		{ID: "c", Rating: 4.2, DistanceMeters: 100},
		{ID: "d", Rating: 0, DistanceMeters: 20},
	}
	once := ids(Rank(places))
	twice := ids(Rank(places))
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second Rank changed order: %v -> %v", once, twice)
	}
	if want := []string{"c", "a", "b", "d"}; !reflect.DeepEqual(once, want) {
		t.Fatalf("Rank = %v; want %v", once, want)
	}
}

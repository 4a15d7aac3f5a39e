package geo

import (
	"math"
	"testing"
)

func TestDistanceMeters(t *testing.T) {
	cases := []struct {
		name string
		a, b LatLng
		want float64
	}{
		{"same point", LatLng{21.034087, 105.85114}, LatLng{21.034087, 105.85114}, 0},
		{"one degree of latitude", LatLng{0, 0}, LatLng{1, 0}, 111194.93},
		{"one degree of longitude at equator", LatLng{0, 0}, LatLng{0, 1}, 111194.93},
		{"hoan kiem to temple of literature", LatLng{21.028511, 105.852020}, LatLng{21.027650, 105.835580}, 1709.0},
		{"hanoi to ho chi minh city", LatLng{21.0285, 105.8542}, LatLng{10.8231, 106.6297}, 1137800.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DistanceMeters(tc.a, tc.b)
			if tc.want == 0 {
				if got != 0 {
					t.Fatalf("DistanceMeters = %f; want 0", got)
				}
				return
			}
			// reference values are accurate to ~0.1% here; the 1m grid is checked below
			if math.Abs(got-tc.want)/tc.want > 0.001 {
				t.Fatalf("DistanceMeters = %f; want ~%f", got, tc.want)
			}
		})
	}
}

func TestDistanceMeters_Reference(t *testing.T) {
	// independent spherical law of cosines evaluation
	ref := func(a, b LatLng) float64 {
		p1, p2 := a.Latitude*math.Pi/180, b.Latitude*math.Pi/180
		dl := (b.Longitude - a.Longitude) * math.Pi / 180
		c := math.Sin(p1)*math.Sin(p2) + math.Cos(p1)*math.Cos(p2)*math.Cos(dl)
		return EarthRadiusMeters * math.Acos(math.Min(1, c))
	}

	pairs := [][2]LatLng{
		{{21.034087, 105.85114}, {21.040000, 105.85114}},
		{{21.034087, 105.85114}, {21.034087, 105.86000}},
		{{21.034087, 105.85114}, {20.990000, 105.80000}},
		{{48.8566, 2.3522}, {51.5074, -0.1278}},
	}
	for _, p := range pairs {
		got := DistanceMeters(p[0], p[1])
		want := ref(p[0], p[1])
		if math.Abs(got-want) > 1 {
			t.Errorf("DistanceMeters(%v, %v) = %f; reference %f", p[0], p[1], got, want)
		}
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := LatLng{21.034087, 105.85114}
	b := LatLng{21.0245, 105.8412}
	if RoundedDistance(a, b) != RoundedDistance(b, a) {
		t.Fatalf("distance is not symmetric: %d vs %d", RoundedDistance(a, b), RoundedDistance(b, a))
	}
	if RoundedDistance(a, a) != 0 {
		t.Fatalf("distance to self = %d; want 0", RoundedDistance(a, a))
	}
}

func TestLatLngValid(t *testing.T) {
	cases := []struct {
		name  string
		point LatLng
		want  bool
	}{
		{"hanoi", LatLng{21.034087, 105.85114}, true},
		{"latitude too large", LatLng{91, 0}, false},
		{"longitude too small", LatLng{0, -181}, false},
		{"nan", LatLng{math.NaN(), 0}, false},
		{"inf", LatLng{0, math.Inf(1)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.point.Valid(); got != tc.want {
				t.Fatalf("Valid(%v) = %v; want %v", tc.point, got, tc.want)
			}
		})
	}
}

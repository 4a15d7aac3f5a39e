package discovery

import (
	"context"
	"sync"
	"time"

	"nearby/pkg/geo"
)

type fakeResponse struct {
	places []RawPlace
	err    error
}

// fakeClient replays scripted responses per search term. The last response of
// a script repeats once the script is exhausted.
type fakeClient struct {
	mu      sync.Mutex
	scripts map[string][]fakeResponse
	block   map[string]bool
	calls   map[string]int
	limits  []int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		scripts: make(map[string][]fakeResponse),
		block:   make(map[string]bool),
		calls:   make(map[string]int),
	}
}

func (f *fakeClient) on(term string, responses ...fakeResponse) *fakeClient {
	f.scripts[term] = responses
	return f
}

func (f *fakeClient) callCount(term string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[term]
}

func (f *fakeClient) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeClient) respond(ctx context.Context, term string, maxResults int) ([]RawPlace, error) {
	f.mu.Lock()
	n := f.calls[term]
	f.calls[term]++
	f.limits = append(f.limits, maxResults)
	script := f.scripts[term]
	blocking := f.block[term]
	f.mu.Unlock()

	if blocking {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if len(script) == 0 {
		return nil, nil
	}
	if n >= len(script) {
		n = len(script) - 1
	}
	return script[n].places, script[n].err
}

func (f *fakeClient) SearchByTag(ctx context.Context, _ geo.LatLng, _ int, tag string, maxResults int) ([]RawPlace, error) {
	return f.respond(ctx, tag, maxResults)
}

func (f *fakeClient) SearchByText(ctx context.Context, _ geo.LatLng, _ int, query string, maxResults int) ([]RawPlace, error) {
	return f.respond(ctx, query, maxResults)
}

// sleepRecorder records requested waits instead of sleeping.
type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.delays = append(s.delays, d)
	s.mu.Unlock()
	return ctx.Err()
}

func ptr[T any](v T) *T { return &v }

func raw(id, name string, lat, lng, rating float64) RawPlace {
	r := RawPlace{
		ID:       id,
		Location: &geo.LatLng{Latitude: lat, Longitude: lng},
	}
	if name != "" {
		r.DisplayName = ptr(name)
	}
	if rating > 0 {
		r.Rating = ptr(rating)
		r.RatingCount = ptr(10)
	}
	return r
}

// Package googleplaces implements discovery.SearchClient on top of the
// Places API (New).
package googleplaces

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	places "google.golang.org/api/places/v1"

	"nearby/internal/discovery"
	"nearby/pkg/geo"
)

const fieldMask = "places.id,places.name,places.displayName,places.formattedAddress,places.location," +
	"places.rating,places.userRatingCount,places.photos,places.websiteUri,places.types"

type Client struct {
	service  *places.Service
	language string
}

// NewClient builds a Places client authenticated with apiKey. Extra options
// are appended, so tests can redirect the endpoint.
func NewClient(ctx context.Context, apiKey, language string, opts ...option.ClientOption) (*Client, error) {
	if apiKey != "" {
		opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	}
	svc, err := places.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create places service: %w", err)
	}
	return &Client{service: svc, language: language}, nil
}

func (c *Client) SearchByTag(ctx context.Context, center geo.LatLng, radiusMeters int, tag string, maxResults int) ([]discovery.RawPlace, error) {
	req := &places.GoogleMapsPlacesV1SearchNearbyRequest{
		IncludedTypes:  []string{tag},
		MaxResultCount: int64(maxResults),
		LanguageCode:   c.language,
		LocationRestriction: &places.GoogleMapsPlacesV1SearchNearbyRequestLocationRestriction{
			Circle: circle(center, radiusMeters),
		},
	}

	call := c.service.Places.SearchNearby(req).Context(ctx)
	call.Header().Set("X-Goog-FieldMask", fieldMask)
	resp, err := call.Do()
	if err != nil {
		return nil, classify(err)
	}
	return toRawPlaces(resp.Places), nil
}

func (c *Client) SearchByText(ctx context.Context, center geo.LatLng, radiusMeters int, query string, maxResults int) ([]discovery.RawPlace, error) {
	req := &places.GoogleMapsPlacesV1SearchTextRequest{
		TextQuery:      query,
		MaxResultCount: int64(maxResults),
		LanguageCode:   c.language,
		LocationBias: &places.GoogleMapsPlacesV1SearchTextRequestLocationBias{
			Circle: circle(center, radiusMeters),
		},
	}

	call := c.service.Places.SearchText(req).Context(ctx)
	call.Header().Set("X-Goog-FieldMask", fieldMask)
	resp, err := call.Do()
	if err != nil {
		return nil, classify(err)
	}
	return toRawPlaces(resp.Places), nil
}

func circle(center geo.LatLng, radiusMeters int) *places.GoogleMapsPlacesV1Circle {
	return &places.GoogleMapsPlacesV1Circle{
		Center: &places.GoogleTypeLatLng{Latitude: center.Latitude, Longitude: center.Longitude},
		Radius: float64(radiusMeters),
	}
}

// classify wraps err with its discovery error class.
func classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", discovery.ErrPermissionDenied, err)
		case http.StatusBadRequest, http.StatusNotFound:
			return fmt.Errorf("%w: %v", discovery.ErrInvalidRequest, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", discovery.ErrRateLimited, err)
		}
	}
	return fmt.Errorf("%w: %w", discovery.ErrTransient, err)
}

func toRawPlaces(in []*places.GoogleMapsPlacesV1Place) []discovery.RawPlace {
	out := make([]discovery.RawPlace, 0, len(in))
	for _, p := range in {
		if p == nil {
			continue
		}
		out = append(out, toRawPlace(p))
	}
	return out
}

func toRawPlace(p *places.GoogleMapsPlacesV1Place) discovery.RawPlace {
	r := discovery.RawPlace{
		ID:    p.Id,
		Types: p.Types,
	}
	if p.DisplayName != nil {
		r.DisplayName = &p.DisplayName.Text
	}
	// name is normally the "places/{id}" resource name, not a label
	if p.Name != "" && !strings.HasPrefix(p.Name, "places/") {
		r.Name = &p.Name
	}
	if p.FormattedAddress != "" {
		r.FormattedAddress = &p.FormattedAddress
	}
	if p.Location != nil {
		r.Location = &geo.LatLng{Latitude: p.Location.Latitude, Longitude: p.Location.Longitude}
	}
	if p.Rating > 0 {
		rating := p.Rating
		r.Rating = &rating
	}
	if p.UserRatingCount > 0 {
		count := int(p.UserRatingCount)
		r.RatingCount = &count
	}
	if p.WebsiteUri != "" {
		r.WebsiteURI = &p.WebsiteUri
	}
	for _, ph := range p.Photos {
		if ph == nil || ph.Name == "" {
			continue
		}
		r.Photos = append(r.Photos, discovery.PhotoRef{
			Ref:    ph.Name,
			Width:  int(ph.WidthPx),
			Height: int(ph.HeightPx),
		})
	}
	return r
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"nearby/internal/discovery"
	"nearby/internal/models/db_models"
	"nearby/internal/models/request_models"
	"nearby/internal/models/response_models"
	"nearby/internal/repositories"
	"nearby/pkg/geo"
	mem "nearby/pkg/memcache"
	"nearby/pkg/utils"
)

type DiscoveryServiceInterface interface {
	Discover(ctx context.Context, req request_models.DiscoverRequest) (response_models.DiscoverResponse, error)
	ListCategories() []response_models.Category
	ListCurated(ctx context.Context) ([]response_models.CuratedPlace, error)
}

// Discoverer is the aggregation engine seen from the service.
type Discoverer interface {
	DiscoverWithReport(ctx context.Context, center geo.LatLng, radiusMeters int, taxonomy discovery.CategoryTaxonomy, curated []discovery.CuratedPlace) (discovery.Result, discovery.Report, error)
}

type DiscoveryConfig struct {
	DefaultRadius int
	MaxRadius     int
	CacheTTL      time.Duration
}

func DefaultDiscoveryConfig() DiscoveryConfig {
	return DiscoveryConfig{
		DefaultRadius: 1000,
		MaxRadius:     10000,
		CacheTTL:      5 * time.Minute,
	}
}

type DiscoveryService struct {
	engine      Discoverer
	curatedRepo repositories.CuratedPlaceRepository
	taxonomy    discovery.CategoryTaxonomy
	cache       mem.TTLStore[discovery.Result]
	config      DiscoveryConfig
	logger      *zap.Logger
}

func NewDiscoveryService(
	engine Discoverer,
	curatedRepo repositories.CuratedPlaceRepository,
	taxonomy discovery.CategoryTaxonomy,
	cache mem.TTLStore[discovery.Result],
	config DiscoveryConfig,
	logger *zap.Logger,
) DiscoveryServiceInterface {
	return &DiscoveryService{
		engine:      engine,
		curatedRepo: curatedRepo,
		taxonomy:    taxonomy,
		cache:       cache,
		config:      config,
		logger:      logger,
	}
}

func (s *DiscoveryService) Discover(ctx context.Context, req request_models.DiscoverRequest) (response_models.DiscoverResponse, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return response_models.DiscoverResponse{}, fmt.Errorf("%w: lat and lng are required", utils.ErrInvalidInput)
	}
	center := geo.LatLng{Latitude: *req.Latitude, Longitude: *req.Longitude}
	radius := s.radius(req.Radius)

	key := cacheKey(center, radius)
	if result, ok := s.cache.Get(key); ok {
		s.logger.Debug("discovery cache hit", zap.String("key", key))
		return s.toResponse(center, radius, req.Label, result, false, false), nil
	}

	start := time.Now()
	result, report, err := s.engine.DiscoverWithReport(ctx, center, radius, s.taxonomy, s.curatedSnapshot(ctx))

	var verr *discovery.ValidationError
	switch {
	case errors.As(err, &verr):
		return response_models.DiscoverResponse{}, fmt.Errorf("%w: %s", utils.ErrInvalidInput, verr.Error())
	case err != nil && result == nil:
		return response_models.DiscoverResponse{}, err
	case err != nil:
		s.logger.Warn("returning partial discovery result",
			zap.Float64("lat", center.Latitude),
			zap.Float64("lng", center.Longitude),
			zap.Int("radius", radius),
			zap.Error(err),
		)
		return s.toResponse(center, radius, req.Label, result, true, report.Degraded()), nil
	}

	if report.Degraded() {
		s.logger.Warn("not caching degraded discovery result",
			zap.String("key", key),
			zap.Int("failed_subqueries", report.FailedSubQueries),
		)
	} else {
		s.cache.Set(key, result, s.config.CacheTTL)
	}
	s.logger.Info("discovery complete",
		zap.Float64("lat", center.Latitude),
		zap.Float64("lng", center.Longitude),
		zap.Int("radius", radius),
		zap.Int("categories", len(result)),
		zap.Bool("degraded", report.Degraded()),
		zap.Duration("took", time.Since(start)),
	)
	return s.toResponse(center, radius, req.Label, result, false, report.Degraded()), nil
}

// cacheKey uses the exact center: cached distances and radius filtering are
// only valid for the point they were computed from.
func cacheKey(center geo.LatLng, radius int) string {
	return strconv.FormatFloat(center.Latitude, 'g', -1, 64) + ":" +
		strconv.FormatFloat(center.Longitude, 'g', -1, 64) + ":" +
		strconv.Itoa(radius)
}

// radius applies the default and clamps to the configured maximum. Values
// <= 0 are passed through so the engine rejects them.
func (s *DiscoveryService) radius(requested *int) int {
	if requested == nil {
		return s.config.DefaultRadius
	}
	if *requested > s.config.MaxRadius {
		return s.config.MaxRadius
	}
	return *requested
}

// curatedSnapshot loads the curated places; a failing store only costs the
// curated category.
func (s *DiscoveryService) curatedSnapshot(ctx context.Context) []discovery.CuratedPlace {
	rows, err := s.curatedRepo.ListAll(ctx)
	if err != nil {
		s.logger.Warn("curated snapshot unavailable", zap.Error(err))
		return nil
	}

	snapshot := make([]discovery.CuratedPlace, 0, len(rows))
	for _, row := range rows {
		snapshot = append(snapshot, toCuratedPlace(row))
	}
	return snapshot
}

func (s *DiscoveryService) ListCategories() []response_models.Category {
	out := make([]response_models.Category, 0, len(s.taxonomy))
	for _, name := range s.taxonomy.Categories() {
		entry := s.taxonomy[name]
		out = append(out, response_models.Category{
			Name:        name,
			PrimaryTag:  entry.PrimaryTag,
			TextQueries: append([]string{}, entry.TextQueries...),
		})
	}
	return out
}

func (s *DiscoveryService) ListCurated(ctx context.Context) ([]response_models.CuratedPlace, error) {
	rows, err := s.curatedRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrCuratedStore, err)
	}

	out := make([]response_models.CuratedPlace, 0, len(rows))
	for _, row := range rows {
		resp := response_models.CuratedPlace{
			ID:          row.ID.String(),
			Name:        row.Name,
			Address:     row.Address,
			Location:    response_models.Coordinates{Latitude: row.Latitude, Longitude: row.Longitude},
			Rating:      row.Rating,
			RatingCount: row.RatingCount,
			PhotoRefs:   append([]string{}, row.PhotoRefs...),
			WebsiteURI:  row.WebsiteURI,
			AddedBy:     row.AddedBy,
			Featured:    row.Featured,
		}
		if row.AddedDate > 0 {
			resp.AddedDate = time.Unix(row.AddedDate, 0).UTC().Format(time.RFC3339)
		}
		out = append(out, resp)
	}
	return out, nil
}

func toCuratedPlace(row db_models.CuratedPlace) discovery.CuratedPlace {
	photos := make([]discovery.PhotoRef, 0, len(row.PhotoRefs))
	for _, ref := range row.PhotoRefs {
		photos = append(photos, discovery.PhotoRef{Ref: ref})
	}

	var added time.Time
	if row.AddedDate > 0 {
		added = time.Unix(row.AddedDate, 0).UTC()
	}

	return discovery.CuratedPlace{
		ID:          row.ID.String(),
		Name:        row.Name,
		Address:     row.Address,
		Location:    geo.LatLng{Latitude: row.Latitude, Longitude: row.Longitude},
		Rating:      row.Rating,
		RatingCount: row.RatingCount,
		PhotoRefs:   photos,
		WebsiteURI:  row.WebsiteURI,
		AddedBy:     row.AddedBy,
		AddedDate:   added,
		Featured:    row.Featured,
	}
}

func (s *DiscoveryService) toResponse(center geo.LatLng, radius int, label string, result discovery.Result, partial, degraded bool) response_models.DiscoverResponse {
	categories := make(map[string][]response_models.Place, len(result))
	for name, places := range result {
		list := make([]response_models.Place, 0, len(places))
		for _, p := range places {
			photos := make([]response_models.Photo, 0, len(p.PhotoRefs))
			for _, ph := range p.PhotoRefs {
				photos = append(photos, response_models.Photo{Ref: ph.Ref, Width: ph.Width, Height: ph.Height})
			}
			types := p.SourceTypes
			if types == nil {
				types = []string{}
			}
			list = append(list, response_models.Place{
				ID:             p.ID,
				Name:           p.Name,
				Address:        p.Address,
				Location:       response_models.Coordinates{Latitude: p.Location.Latitude, Longitude: p.Location.Longitude},
				Rating:         p.Rating,
				RatingCount:    p.RatingCount,
				DistanceMeters: p.DistanceMeters,
				Photos:         photos,
				WebsiteURI:     p.WebsiteURI,
				Category:       p.Category,
				Types:          types,
			})
		}
		categories[name] = list
	}

	return response_models.DiscoverResponse{
		Center:       response_models.Coordinates{Latitude: center.Latitude, Longitude: center.Longitude},
		Label:        label,
		RadiusMeters: radius,
		Categories:   categories,
		Partial:      partial,
		Degraded:     degraded,
	}
}

package repositories

import (
	"context"

	"gorm.io/gorm"
	"nearby/internal/models/db_models"
)

// CuratedPlaceRepository exposes a read-only snapshot of the curated places.
type CuratedPlaceRepository interface {
	ListAll(ctx context.Context) ([]db_models.CuratedPlace, error)
}

type curatedPlaceRepository struct {
	db *gorm.DB
}

func NewCuratedPlaceRepository(db *gorm.DB) CuratedPlaceRepository {
	return &curatedPlaceRepository{db: db}
}

func (r *curatedPlaceRepository) ListAll(ctx context.Context) ([]db_models.CuratedPlace, error) {
	var places []db_models.CuratedPlace
	err := r.db.WithContext(ctx).
		Order("featured DESC").
		Order("created_at ASC").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

// emptyCuratedRepository is used when no curated store is configured.
type emptyCuratedRepository struct{}

func NewEmptyCuratedRepository() CuratedPlaceRepository {
	return emptyCuratedRepository{}
}

func (emptyCuratedRepository) ListAll(context.Context) ([]db_models.CuratedPlace, error) {
	return []db_models.CuratedPlace{}, nil
}

package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"nearby/internal/models/db_models"
)

// InitPostgresql opens the curated store database and makes sure the
// curated_places table exists.
func InitPostgresql(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("POSTGRES_URL is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := db.AutoMigrate(&db_models.CuratedPlace{}); err != nil {
		return nil, fmt.Errorf("migrate curated_places: %w", err)
	}

	logger.Info("connected to postgres")
	return db, nil
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("get postgres handle", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("close postgres", zap.Error(err))
	} else {
		logger.Info("postgres connection closed")
	}
}

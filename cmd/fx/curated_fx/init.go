package curated_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"nearby/internal/infra"
	"nearby/internal/repositories"
	"nearby/pkg/utils"
)

var Module = fx.Provide(provideCuratedRepo)

// provideCuratedRepo picks the curated store backend from CURATED_STORE.
func provideCuratedRepo(lc fx.Lifecycle, logger *zap.Logger) (repositories.CuratedPlaceRepository, error) {
	store := utils.GetEnvWithDefault("CURATED_STORE", "postgres")
	logger.Info("curated store", zap.String("backend", store))

	switch store {
	case "postgres":
		db, err := infra.InitPostgresql(utils.GetEnvWithDefault("POSTGRES_URL", ""), logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				infra.ClosePostgresql(db, logger)
				return nil
			},
		})
		return repositories.NewCuratedPlaceRepository(db), nil

	case "dynamodb":
		client, err := infra.InitDynamoDB(context.Background(), utils.GetEnvWithDefault("AWS_REGION", "ap-southeast-1"))
		if err != nil {
			return nil, err
		}
		table := utils.GetEnvWithDefault("CURATED_DYNAMO_TABLE", "curated_places")
		return repositories.NewCuratedDynamoRepository(client, table, logger.Named("curated")), nil

	case "none":
		return repositories.NewEmptyCuratedRepository(), nil

	default:
		return nil, fmt.Errorf("unknown CURATED_STORE %q", store)
	}
}

package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"nearby/internal/models/db_models"
)

// DynamoScanAPI is the subset of the DynamoDB client used by the curated
// repository.
type DynamoScanAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type curatedItem struct {
	ID          string   `dynamodbav:"id"`
	Name        string   `dynamodbav:"name"`
	Address     string   `dynamodbav:"address"`
	Latitude    float64  `dynamodbav:"latitude"`
	Longitude   float64  `dynamodbav:"longitude"`
	Rating      float64  `dynamodbav:"rating"`
	RatingCount int      `dynamodbav:"rating_count"`
	PhotoRefs   []string `dynamodbav:"photo_refs"`
	WebsiteURI  string   `dynamodbav:"website_uri"`
	AddedBy     string   `dynamodbav:"added_by"`
	AddedDate   string   `dynamodbav:"added_date"` // RFC 3339
	Featured    bool     `dynamodbav:"featured"`
}

type curatedDynamoRepository struct {
	client    DynamoScanAPI
	tableName string
	logger    *zap.Logger
}

func NewCuratedDynamoRepository(client DynamoScanAPI, tableName string, logger *zap.Logger) CuratedPlaceRepository {
	return &curatedDynamoRepository{client: client, tableName: tableName, logger: logger}
}

func (r *curatedDynamoRepository) ListAll(ctx context.Context) ([]db_models.CuratedPlace, error) {
	places := make([]db_models.CuratedPlace, 0)
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan curated places: %w", err)
		}

		var items []curatedItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshal curated places: %w", err)
		}
		for _, item := range items {
			place, err := item.toModel()
			if err != nil {
				r.logger.Warn("skipping curated item", zap.String("id", item.ID), zap.Error(err))
				continue
			}
			places = append(places, place)
		}
	}
	return places, nil
}

func (i curatedItem) toModel() (db_models.CuratedPlace, error) {
	id, err := uuid.Parse(i.ID)
	if err != nil {
		return db_models.CuratedPlace{}, fmt.Errorf("invalid id: %w", err)
	}

	var added int64
	if i.AddedDate != "" {
		t, err := time.Parse(time.RFC3339, i.AddedDate)
		if err != nil {
			return db_models.CuratedPlace{}, fmt.Errorf("invalid added_date: %w", err)
		}
		added = t.Unix()
	}

	place := db_models.CuratedPlace{
		Name:        i.Name,
		Address:     i.Address,
		Latitude:    i.Latitude,
		Longitude:   i.Longitude,
		Rating:      i.Rating,
		RatingCount: i.RatingCount,
		PhotoRefs:   i.PhotoRefs,
		WebsiteURI:  i.WebsiteURI,
		AddedBy:     i.AddedBy,
		AddedDate:   added,
		Featured:    i.Featured,
	}
	place.ID = id
	return place, nil
}

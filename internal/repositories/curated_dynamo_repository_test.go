package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap/zaptest"
)

type fakeScanner struct {
	pages []*dynamodb.ScanOutput
	err   error
	calls int
}

func (f *fakeScanner) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[f.calls]
	f.calls++
	return page, nil
}

func mustItem(t *testing.T, item curatedItem) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		t.Fatalf("MarshalMap: %v", err)
	}
	return av
}

func TestCuratedDynamoRepository_ListAll(t *testing.T) {
	scanner := &fakeScanner{pages: []*dynamodb.ScanOutput{
		{
			Items: []map[string]types.AttributeValue{
				mustItem(t, curatedItem{
					ID: "6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f", Name: "Cafe Dinh", Latitude: 21.0339, Longitude: 105.8526,
					PhotoRefs: []string{"curated/cafe-dinh.jpg"}, AddedBy: "linh", AddedDate: "2024-03-01T08:00:00Z", Featured: true,
				}),
				mustItem(t, curatedItem{ID: "not-a-uuid", Name: "Broken"}),
			},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "page-1"}},
		},
		{
			Items: []map[string]types.AttributeValue{
				mustItem(t, curatedItem{ID: "0d9e8f7a-6b5c-4d3e-9f1a-2b3c4d5e6f70", Name: "Bia Hoi Corner", Latitude: 21.0352, Longitude: 105.8519}),
			},
		},
	}}

	repo := NewCuratedDynamoRepository(scanner, "curated_places", zaptest.NewLogger(t))
	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}

	if scanner.calls != 2 {
		t.Errorf("scan calls = %d; want 2", scanner.calls)
	}
	if len(got) != 2 {
		t.Fatalf("len(places) = %d; want 2 (invalid item skipped)", len(got))
	}
	if got[0].Name != "Cafe Dinh" || !got[0].Featured || got[0].AddedDate != 1709280000 {
		t.Errorf("unexpected first place %+v", got[0])
	}
	if len(got[0].PhotoRefs) != 1 {
		t.Errorf("PhotoRefs = %v", got[0].PhotoRefs)
	}
	if got[1].ID.String() != "0d9e8f7a-6b5c-4d3e-9f1a-2b3c4d5e6f70" {
		t.Errorf("second id = %s", got[1].ID)
	}
}

func TestCuratedDynamoRepository_ScanError(t *testing.T) {
	repo := NewCuratedDynamoRepository(&fakeScanner{err: errors.New("throttled")}, "curated_places", zaptest.NewLogger(t))
	if _, err := repo.ListAll(context.Background()); err == nil {
		t.Fatalf("ListAll returned nil error on scan failure")
	}
}

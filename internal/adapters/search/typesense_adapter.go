package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/domain/repositories"
	tsclient "github.com/medbridge360/backend/internal/infrastructure/clients/typesense"
)

// TypesenseAdapter implements full-text hospital search using Typesense.
// Only identity comes back from the index; the catalog repository stays
// the source of truth for hospital data.
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.HospitalSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the hospitals collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(tsclient.HospitalsCollection).Retrieve(ctx)
	if err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: tsclient.HospitalsCollection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "city", Type: "string"},
			{Name: "country", Type: "string", Facet: pointer.True()},
			{Name: "specializations", Type: "string[]", Facet: pointer.True()},
			{Name: "treatments", Type: "string[]"},
			{Name: "rating", Type: "float"},
			{Name: "created_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("rating"),
	}

	if _, err := a.client.Client().Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}
	return nil
}

// Index adds or updates a hospital document
func (a *TypesenseAdapter) Index(ctx context.Context, hospital *entities.Hospital) error {
	treatments := make([]string, 0, len(hospital.Treatments))
	for _, t := range hospital.Treatments {
		treatments = append(treatments, t.Name)
	}

	document := map[string]interface{}{
		"id":              hospital.ID,
		"name":            hospital.Name,
		"city":            hospital.City,
		"country":         hospital.Country,
		"specializations": hospital.Specializations,
		"treatments":      treatments,
		"rating":          hospital.Rating,
		"created_at":      hospital.CreatedAt.Unix(),
	}

	if _, err := a.client.Client().Collection(tsclient.HospitalsCollection).Documents().Upsert(ctx, document); err != nil {
		return fmt.Errorf("failed to index hospital: %w", err)
	}
	return nil
}

// Delete removes a hospital document
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	if _, err := a.client.Client().Collection(tsclient.HospitalsCollection).Document(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete hospital from index: %w", err)
	}
	return nil
}

// Search returns catalog IDs matching the query, by relevance.
func (a *TypesenseAdapter) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 30
	}
	q := strings.TrimSpace(query)
	if q == "" {
		q = "*"
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(q),
		QueryBy: pointer.String("name,city,country,specializations,treatments"),
		PerPage: pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(tsclient.HospitalsCollection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search hospitals: %w", err)
	}

	var ids []string
	if result.Hits == nil {
		return ids, nil
	}
	for _, hit := range *result.Hits {
		doc := *hit.Document
		if id, ok := doc["id"].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

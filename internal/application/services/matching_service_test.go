package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge360/backend/internal/adapters/memory"
	"github.com/medbridge360/backend/internal/adapters/providers/distance"
	"github.com/medbridge360/backend/internal/application/services"
	"github.com/medbridge360/backend/internal/domain/entities"
)

func fixtureHospitals() []*entities.Hospital {
	return []*entities.Hospital{
		{
			ID: "h-apollo", Name: "Apollo Hospitals", City: "Chennai", Country: "India",
			Rating:          4.8,
			Specializations: []string{"Cardiology", "Oncology"},
			Treatments: []entities.Treatment{
				{ID: "t-1", HospitalID: "h-apollo", Name: "Cardiac Bypass Surgery", BaseCost: 1200, SurgeryCost: 5500, MedicationCost: 800, StayCost: 1500, DurationDays: 10},
			},
		},
		{
			ID: "h-bumrungrad", Name: "Bumrungrad International", City: "Bangkok", Country: "Thailand",
			Rating:          4.7,
			Specializations: []string{"Orthopedics"},
			Treatments: []entities.Treatment{
				{ID: "t-2", HospitalID: "h-bumrungrad", Name: "Knee Replacement", BaseCost: 900, SurgeryCost: 4200, MedicationCost: 600, StayCost: 1300, DurationDays: 14},
			},
		},
		{
			ID: "h-fortis", Name: "Fortis Memorial", City: "Gurgaon", State: "Haryana", Country: "India",
			Rating:          4.5,
			Specializations: []string{"Oncology", "Neurology"},
			Treatments: []entities.Treatment{
				{ID: "t-3", HospitalID: "h-fortis", Name: "Chemotherapy Cycle", BaseCost: 500, SurgeryCost: 0, MedicationCost: 2200, StayCost: 400, DurationDays: 3},
			},
		},
	}
}

func newMatchingService(fallback entities.FallbackPolicy, hours float64) *services.MatchingService {
	catalog := memory.NewCatalog(fixtureHospitals())
	return services.NewMatchingService(catalog, &distance.FixedEstimator{Hours: hours}, fallback)
}

func TestMatchingService_NoCriteriaReturnsAll(t *testing.T) {
	svc := newMatchingService(entities.FallbackReturnAll, 5)

	results, err := svc.Search(context.Background(), entities.SearchCriteria{}, entities.MatchWeights{}, entities.SortByRating)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestMatchingService_CountryFilterIsExact(t *testing.T) {
	svc := newMatchingService(entities.FallbackReturnAll, 5)

	results, err := svc.Search(context.Background(), entities.SearchCriteria{Country: "India"}, entities.MatchWeights{}, entities.SortByRating)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, "India", r.Hospital.Country)
	}
}

func TestMatchingService_AbsentCountryMatchesNothing(t *testing.T) {
	// Exact filters do not get the free-text fallback.
	svc := newMatchingService(entities.FallbackReturnAll, 5)

	results, err := svc.Search(context.Background(), entities.SearchCriteria{Country: "Atlantis"}, entities.MatchWeights{}, entities.SortByRating)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchingService_TreatmentFilterIsCaseInsensitiveSubstring(t *testing.T) {
	svc := newMatchingService(entities.FallbackReturnAll, 5)

	results, err := svc.Search(context.Background(), entities.SearchCriteria{Treatment: "knee"}, entities.MatchWeights{}, entities.SortByRating)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "h-bumrungrad", results[0].Hospital.ID)
	require.NotNil(t, results[0].MatchedTreatment)
	assert.Equal(t, "Knee Replacement", results[0].MatchedTreatment.Name)
}

func TestMatchingService_ZeroMatchFreeTextFallsBackToAll(t *testing.T) {
	svc := newMatchingService(entities.FallbackReturnAll, 5)

	results, err := svc.Search(context.Background(), entities.SearchCriteria{Treatment: "liver transplant"}, entities.MatchWeights{}, entities.SortByRating)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestMatchingService_ZeroMatchFreeTextEmptyPolicy(t *testing.T) {
	svc := newMatchingService(entities.FallbackReturnEmpty, 5)

	results, err := svc.Search(context.Background(), entities.SearchCriteria{Treatment: "liver transplant"}, entities.MatchWeights{}, entities.SortByRating)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchingService_FiltersCombineWithAnd(t *testing.T) {
	svc := newMatchingService(entities.FallbackReturnAll, 5)

	criteria := entities.SearchCriteria{Country: "India", Specialization: "Oncology", Location: "gurgaon"}
	results, err := svc.Search(context.Background(), criteria, entities.MatchWeights{}, entities.SortByRating)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "h-fortis", results[0].Hospital.ID)
}

func TestMatchingService_WeightedScoreFormula(t *testing.T) {
	svc := newMatchingService(entities.FallbackReturnAll, 4)

	weights := entities.MatchWeights{Quality: 0.7, Proximity: 0.3}
	results, err := svc.Search(context.Background(), entities.SearchCriteria{}, weights, "")
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Equal distances: ordering reduces to rating descending.
	assert.Equal(t, "h-apollo", results[0].Hospital.ID)
	assert.Equal(t, "h-bumrungrad", results[1].Hospital.ID)
	assert.Equal(t, "h-fortis", results[2].Hospital.ID)

	// score = max(0, rating*2*wq - hours*wp)
	assert.InDelta(t, 4.8*2*0.7-4*0.3, results[0].Score, 1e-9)
	assert.Equal(t, 4.0, results[0].DistanceHours)
}

func TestMatchingService_EqualDistanceHigherRatingNeverScoresLower(t *testing.T) {
	svc := newMatchingService(entities.FallbackReturnAll, 7)

	weights := entities.MatchWeights{Quality: 0.5, Proximity: 0.5}
	results, err := svc.Search(context.Background(), entities.SearchCriteria{}, weights, "")
	require.NoError(t, err)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestMatchingService_ScoreFloorsAtZero(t *testing.T) {
	svc := newMatchingService(entities.FallbackReturnAll, 10)

	weights := entities.MatchWeights{Quality: 0.0, Proximity: 1.0}
	results, err := svc.Search(context.Background(), entities.SearchCriteria{}, weights, "")
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, 0.0, r.Score)
	}
}

func TestMatchingService_UnweightedCostAscending(t *testing.T) {
	svc := newMatchingService(entities.FallbackReturnAll, 5)

	results, err := svc.Search(context.Background(), entities.SearchCriteria{}, entities.MatchWeights{}, entities.SortByCost)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Totals: fortis 3100, bumrungrad 7000, apollo 9000.
	assert.Equal(t, "h-fortis", results[0].Hospital.ID)
	assert.Equal(t, "h-bumrungrad", results[1].Hospital.ID)
	assert.Equal(t, "h-apollo", results[2].Hospital.ID)
}

func TestMatchingService_RatingSortIsStableForTies(t *testing.T) {
	hospitals := fixtureHospitals()
	hospitals[1].Rating = 4.8 // tie with apollo
	catalog := memory.NewCatalog(hospitals)
	svc := services.NewMatchingService(catalog, &distance.FixedEstimator{Hours: 5}, entities.FallbackReturnAll)

	results, err := svc.Search(context.Background(), entities.SearchCriteria{}, entities.MatchWeights{}, entities.SortByRating)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "h-apollo", results[0].Hospital.ID)
	assert.Equal(t, "h-bumrungrad", results[1].Hospital.ID)
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge360/backend/internal/adapters/memory"
	"github.com/medbridge360/backend/internal/application/services"
	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/pkg/errors"
)

func newItineraryService() *services.ItineraryService {
	return services.NewItineraryService(memory.NewCatalog(fixtureHospitals()))
}

func eventDays(events []entities.TimelineEvent) []int {
	days := make([]int, len(events))
	for i, e := range events {
		days[i] = e.Day
	}
	return days
}

func TestItineraryService_TenDayStay(t *testing.T) {
	svc := newItineraryService()
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	events, err := svc.Generate(fixtureHospitals()[0], start, 10)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 6, 10}, eventDays(events))
	assert.Equal(t, entities.EventArrival, events[0].Category)
	assert.Equal(t, entities.EventConsultation, events[1].Category)
	assert.Equal(t, entities.EventProcedure, events[2].Category)
	assert.Equal(t, entities.EventRecovery, events[3].Category)
	assert.Equal(t, entities.EventDeparture, events[4].Category)

	// Dates derive from the start date and the 1-based day.
	assert.Equal(t, start, events[0].Date)
	assert.Equal(t, start.AddDate(0, 0, 9), events[4].Date)
}

func TestItineraryService_FiveDayStayHasNoRecoveryCheck(t *testing.T) {
	svc := newItineraryService()
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	events, err := svc.Generate(fixtureHospitals()[0], start, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 5}, eventDays(events))
	for _, e := range events {
		assert.NotEqual(t, entities.EventRecovery, e.Category)
	}
}

func TestItineraryService_ThreeDayStayKeepsCollision(t *testing.T) {
	svc := newItineraryService()
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	events, err := svc.Generate(fixtureHospitals()[0], start, 3)
	require.NoError(t, err)

	// Procedure and departure share day 3; the skeleton is not clamped.
	require.Len(t, events, 4)
	assert.Equal(t, []int{1, 2, 3, 3}, eventDays(events))
	assert.Equal(t, entities.EventProcedure, events[2].Category)
	assert.Equal(t, entities.EventDeparture, events[3].Category)
}

func TestItineraryService_RejectsNonPositiveDuration(t *testing.T) {
	svc := newItineraryService()
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	for _, d := range []int{0, -1} {
		_, err := svc.Generate(fixtureHospitals()[0], start, d)
		assert.True(t, errors.IsType(err, errors.ErrorTypeValidation), "duration %d", d)
	}
}

func TestItineraryService_GenerateForHospitalResolvesCatalog(t *testing.T) {
	svc := newItineraryService()
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	events, err := svc.GenerateForHospital(context.Background(), "h-apollo", start, 7)
	require.NoError(t, err)
	assert.Contains(t, events[0].Description, "Chennai")

	_, err = svc.GenerateForHospital(context.Background(), "h-missing", start, 7)
	assert.True(t, errors.IsNotFound(err))
}

func TestItineraryService_JourneyIsStaticEightSteps(t *testing.T) {
	svc := newItineraryService()

	steps := svc.Journey()
	require.Len(t, steps, 8)
	for i, step := range steps {
		assert.Equal(t, i+1, step.Step)
		assert.NotEmpty(t, step.Phase)
		assert.NotEmpty(t, step.Description)
		assert.NotEmpty(t, step.When)
	}
	assert.Equal(t, "Remote Consultation", steps[0].Phase)
	assert.Equal(t, "Follow-up", steps[7].Phase)
}

package distance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medbridge360/backend/internal/domain/entities"
)

func TestRandomEstimatorStaysInRange(t *testing.T) {
	est := NewRandomEstimator()
	for i := 0; i < 200; i++ {
		hours := est.EstimateHours(context.Background(), nil, nil)
		assert.GreaterOrEqual(t, hours, 1.0)
		assert.LessOrEqual(t, hours, 10.0)
	}
}

func TestHaversineEstimatorKnownRoute(t *testing.T) {
	est := NewHaversineEstimator(&FixedEstimator{Hours: 5})

	london := &entities.Location{Latitude: 51.5074, Longitude: -0.1278}
	chennai := &entities.Location{Latitude: 13.0827, Longitude: 80.2707}

	hours := est.EstimateHours(context.Background(), london, chennai)

	// London to Chennai is roughly 8,200 km, so around 10 flight hours.
	assert.InDelta(t, 10.0, hours, 0.5)
}

func TestHaversineEstimatorClampsShortHops(t *testing.T) {
	est := NewHaversineEstimator(nil)

	a := &entities.Location{Latitude: 28.6139, Longitude: 77.2090}
	b := &entities.Location{Latitude: 28.4595, Longitude: 77.0266}

	hours := est.EstimateHours(context.Background(), a, b)
	assert.Equal(t, 1.0, hours)
}

func TestHaversineEstimatorFallsBackWithoutLocations(t *testing.T) {
	est := NewHaversineEstimator(&FixedEstimator{Hours: 4.5})

	hours := est.EstimateHours(context.Background(), nil, &entities.Location{Latitude: 1, Longitude: 1})
	assert.Equal(t, 4.5, hours)
}

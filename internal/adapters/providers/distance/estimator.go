package distance

import (
	"context"
	"math"
	"math/rand"

	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/domain/providers"
)

const (
	minFlightHours = 1.0
	maxFlightHours = 10.0

	// cruiseSpeedKmh approximates a long-haul airliner
	cruiseSpeedKmh = 800.0
)

// RandomEstimator draws an independent 1-10 flight-hours value per call.
// This is the placeholder behavior carried over from the source product,
// where no real user location is ever resolved. Not safe to treat as a
// real distance.
type RandomEstimator struct{}

var _ providers.DistanceEstimator = (*RandomEstimator)(nil)

// NewRandomEstimator creates the placeholder estimator
func NewRandomEstimator() *RandomEstimator {
	return &RandomEstimator{}
}

// EstimateHours returns a uniform draw in [1, 10].
func (e *RandomEstimator) EstimateHours(_ context.Context, _ *entities.Location, _ *entities.Location) float64 {
	return minFlightHours + rand.Float64()*(maxFlightHours-minFlightHours)
}

// HaversineEstimator converts great-circle distance to flight hours,
// clamped to the engine's 1-10 range. Falls back to the placeholder draw
// when either location is unknown.
type HaversineEstimator struct {
	fallback providers.DistanceEstimator
}

var _ providers.DistanceEstimator = (*HaversineEstimator)(nil)

// NewHaversineEstimator creates a geodesic estimator with the given
// fallback for unknown locations.
func NewHaversineEstimator(fallback providers.DistanceEstimator) *HaversineEstimator {
	return &HaversineEstimator{fallback: fallback}
}

// EstimateHours returns distance/cruise-speed in hours, clamped to [1, 10].
func (e *HaversineEstimator) EstimateHours(ctx context.Context, user *entities.Location, hospital *entities.Location) float64 {
	if user == nil || hospital == nil {
		if e.fallback != nil {
			return e.fallback.EstimateHours(ctx, user, hospital)
		}
		return minFlightHours
	}

	km := haversineKm(user.Latitude, user.Longitude, hospital.Latitude, hospital.Longitude)
	hours := km / cruiseSpeedKmh
	if hours < minFlightHours {
		return minFlightHours
	}
	if hours > maxFlightHours {
		return maxFlightHours
	}
	return hours
}

// FixedEstimator always returns the same value. Test stub.
type FixedEstimator struct {
	Hours float64
}

var _ providers.DistanceEstimator = (*FixedEstimator)(nil)

// EstimateHours returns the fixed value.
func (e *FixedEstimator) EstimateHours(_ context.Context, _ *entities.Location, _ *entities.Location) float64 {
	return e.Hours
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	deltaLat := toRadians(lat2 - lat1)
	deltaLon := toRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

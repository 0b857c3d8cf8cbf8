package providers

import (
	"context"

	"github.com/medbridge360/backend/internal/domain/entities"
)

// DistanceEstimator supplies the proximity cost of a hospital in flight
// hours, in the 1-10 range. The production estimator may be a placeholder
// draw until a real user location is resolved; tests inject a
// deterministic stub.
type DistanceEstimator interface {
	// EstimateHours returns the flight-hours estimate from the user
	// location to the hospital. Either location may be nil.
	EstimateHours(ctx context.Context, user *entities.Location, hospital *entities.Location) float64
}

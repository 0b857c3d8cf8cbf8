package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/domain/repositories"
	"github.com/medbridge360/backend/pkg/errors"
)

// ItineraryService generates day-by-day trip timelines and exposes the
// static treatment journey protocol. Generation is deterministic.
type ItineraryService struct {
	hospitals repositories.HospitalRepository
}

// NewItineraryService creates a new itinerary service
func NewItineraryService(hospitals repositories.HospitalRepository) *ItineraryService {
	return &ItineraryService{hospitals: hospitals}
}

// GenerateForHospital resolves the hospital and builds its timeline.
func (s *ItineraryService) GenerateForHospital(ctx context.Context, hospitalID string, start time.Time, durationDays int) ([]entities.TimelineEvent, error) {
	hospital, err := s.hospitals.GetByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	return s.Generate(hospital, start, durationDays)
}

// Generate builds the trip timeline for a stay of durationDays starting
// at start. The skeleton is fixed: arrival on day 1, consultation on day
// 2, procedure on day 3, a recovery check midway through stays longer
// than five days, departure on the final day. Short stays keep the full
// skeleton, so a three-day trip schedules the procedure and the
// departure on the same day.
func (s *ItineraryService) Generate(hospital *entities.Hospital, start time.Time, durationDays int) ([]entities.TimelineEvent, error) {
	if durationDays < 1 {
		return nil, errors.NewValidationError("duration must be at least one day")
	}

	events := []entities.TimelineEvent{
		{
			Day:         1,
			Category:    entities.EventArrival,
			Title:       "Arrival",
			Description: fmt.Sprintf("Arrive in %s and check in to your accommodation", hospital.City),
		},
		{
			Day:         2,
			Category:    entities.EventConsultation,
			Title:       "Initial Consultation",
			Description: fmt.Sprintf("Pre-treatment consultation and evaluation at %s", hospital.Name),
		},
		{
			Day:         3,
			Category:    entities.EventProcedure,
			Title:       "Procedure",
			Description: fmt.Sprintf("Scheduled procedure at %s", hospital.Name),
		},
	}

	if durationDays > 5 {
		events = append(events, entities.TimelineEvent{
			Day:         durationDays/2 + 1,
			Category:    entities.EventRecovery,
			Title:       "Recovery Check",
			Description: "Post-procedure review and recovery monitoring",
		})
	}

	events = append(events, entities.TimelineEvent{
		Day:         durationDays,
		Category:    entities.EventDeparture,
		Title:       "Departure",
		Description: fmt.Sprintf("Final clearance and departure from %s", hospital.City),
	})

	for i := range events {
		events[i].Date = start.AddDate(0, 0, events[i].Day-1)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Day < events[j].Day
	})

	return events, nil
}

// Journey returns the static eight-step treatment journey shown on the
// hospital detail page. It takes no dynamic input.
func (s *ItineraryService) Journey() []entities.JourneyStep {
	return []entities.JourneyStep{
		{Step: 1, Phase: "Remote Consultation", Description: "Share medical records and receive a treatment plan with a cost estimate", When: "4-6 weeks before travel"},
		{Step: 2, Phase: "Visa & Travel", Description: "Arrange medical visa, flights and accommodation near the hospital", When: "2-4 weeks before travel"},
		{Step: 3, Phase: "Pre-operative Assessment", Description: "On-site diagnostics, lab work and anesthesia clearance", When: "Day 1-2"},
		{Step: 4, Phase: "Procedure", Description: "Scheduled surgery or treatment by the assigned specialist team", When: "Day 3"},
		{Step: 5, Phase: "Intensive Care", Description: "Monitored recovery in ICU or high-dependency unit as required", When: "Day 3-4"},
		{Step: 6, Phase: "In-patient Recovery", Description: "Ward recovery with physiotherapy and daily specialist reviews", When: "Day 4 onwards"},
		{Step: 7, Phase: "Discharge Planning", Description: "Fitness-to-fly assessment, medication plan and travel clearance", When: "Final days of stay"},
		{Step: 8, Phase: "Follow-up", Description: "Remote follow-up consultations and records transfer to your home physician", When: "After return"},
	}
}

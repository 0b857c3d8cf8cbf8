package entities

import (
	"time"
)

// EventCategory tags a timeline event with its phase of the trip.
type EventCategory string

const (
	EventArrival      EventCategory = "arrival"
	EventConsultation EventCategory = "consultation"
	EventProcedure    EventCategory = "procedure"
	EventRecovery     EventCategory = "recovery"
	EventDeparture    EventCategory = "departure"
)

// TimelineEvent is one dated entry of a generated trip itinerary. Day is
// 1-based within the stay and Date is derived from the start date.
type TimelineEvent struct {
	Day         int           `json:"day"`
	Date        time.Time     `json:"date"`
	Category    EventCategory `json:"category"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
}

// JourneyStep is one entry of the static 8-step treatment journey shown
// on the hospital detail page. It carries a relative-time label instead
// of a computed date and takes no dynamic input.
type JourneyStep struct {
	Step        int    `json:"step"`
	Phase       string `json:"phase"`
	Description string `json:"description"`
	When        string `json:"when"`
}

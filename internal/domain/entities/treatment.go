package entities

import (
	"time"
)

// Treatment represents a priced treatment offered by a hospital. A
// treatment is owned by its hospital (1:N) and cannot exist without it.
// All cost components are USD.
type Treatment struct {
	ID             string    `json:"id" db:"id"`
	HospitalID     string    `json:"hospital_id" db:"hospital_id"`
	Name           string    `json:"name" db:"name"`
	BaseCost       float64   `json:"base_cost" db:"base_cost"`
	SurgeryCost    float64   `json:"surgery_cost" db:"surgery_cost"`
	MedicationCost float64   `json:"medication_cost" db:"medication_cost"`
	StayCost       float64   `json:"stay_cost" db:"stay_cost"`
	DurationDays   int       `json:"duration_days" db:"duration_days"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// TotalCost is the sum of all cost components. It is always recomputed
// and never stored.
func (t *Treatment) TotalCost() float64 {
	return t.BaseCost + t.SurgeryCost + t.MedicationCost + t.StayCost
}

package entities

import (
	"time"
)

// Hospital represents a hospital in the medical tourism catalog
type Hospital struct {
	ID                    string      `json:"id" db:"id"`
	Name                  string      `json:"name" db:"name"`
	City                  string      `json:"city" db:"city"`
	State                 string      `json:"state,omitempty" db:"state"`
	Country               string      `json:"country" db:"country"`
	Rating                float64     `json:"rating" db:"rating"`
	Location              *Location   `json:"location,omitempty" db:"-"`
	Specializations       []string    `json:"specializations" db:"-"`
	InternationalPatients bool        `json:"international_patients" db:"international_patients"`
	ImageURL              string      `json:"image_url" db:"image_url"`
	Description           string      `json:"description" db:"description"`
	Treatments            []Treatment `json:"treatments" db:"-"`
	CreatedAt             time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at" db:"updated_at"`
}

// Location represents geographical coordinates. Required only for map
// display and distance estimation; hospitals without coordinates are
// still searchable.
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// HasSpecialization reports whether the hospital carries the exact
// specialization tag.
func (h *Hospital) HasSpecialization(tag string) bool {
	for _, s := range h.Specializations {
		if s == tag {
			return true
		}
	}
	return false
}

// FirstTreatment returns the first owned treatment, or nil when the
// hospital has none. Comparison highlighting is defined over this
// treatment only.
func (h *Hospital) FirstTreatment() *Treatment {
	if len(h.Treatments) == 0 {
		return nil
	}
	return &h.Treatments[0]
}

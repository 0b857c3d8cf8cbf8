package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreatmentTotalCostIsAlwaysTheSum(t *testing.T) {
	treatment := Treatment{
		BaseCost:       1200,
		SurgeryCost:    5500,
		MedicationCost: 800,
		StayCost:       1500,
	}
	assert.Equal(t, 9000.0, treatment.TotalCost())

	treatment.MedicationCost = 0
	assert.Equal(t, 8200.0, treatment.TotalCost())
}

func TestTreatmentTotalCostZeroComponents(t *testing.T) {
	var treatment Treatment
	assert.Equal(t, 0.0, treatment.TotalCost())
}

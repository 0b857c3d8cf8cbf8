package services

import (
	"context"
	"fmt"

	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/domain/repositories"
	"github.com/medbridge360/backend/pkg/errors"
)

// ErrInsufficientSelection is returned when a comparison is requested
// for fewer than two resolvable hospitals. Handlers render it as a
// structured conflict payload, not a server failure.
var ErrInsufficientSelection = errors.NewConflictError("select at least two hospitals to compare")

// ErrCompareSetFull is returned by the rejecting capacity policy.
var ErrCompareSetFull = errors.NewConflictError("compare set is full")

// CompareService manages session compare selections and builds the
// side-by-side comparison matrix.
type CompareService struct {
	hospitals repositories.HospitalRepository
	sets      repositories.CompareSetRepository
}

// NewCompareService creates a new compare service
func NewCompareService(hospitals repositories.HospitalRepository, sets repositories.CompareSetRepository) *CompareService {
	return &CompareService{
		hospitals: hospitals,
		sets:      sets,
	}
}

// Get returns the session's current selection.
func (s *CompareService) Get(ctx context.Context, sessionID string) (*entities.CompareSet, error) {
	return s.sets.Get(ctx, sessionID)
}

// Add selects a hospital for comparison. Unknown hospitals are rejected
// up front; re-adding a selected hospital is a no-op. A full set fails
// with ErrCompareSetFull under the rejecting policy and evicts the oldest
// selection otherwise.
func (s *CompareService) Add(ctx context.Context, sessionID, hospitalID string) (*entities.CompareSet, error) {
	if _, err := s.hospitals.GetByID(ctx, hospitalID); err != nil {
		return nil, err
	}

	set, err := s.sets.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !set.Add(hospitalID) {
		if set.Contains(hospitalID) {
			return set, nil
		}
		return nil, ErrCompareSetFull
	}

	if err := s.sets.Save(ctx, sessionID, set); err != nil {
		return nil, err
	}
	return set, nil
}

// Remove deselects a hospital. Removing an absent ID is a no-op.
func (s *CompareService) Remove(ctx context.Context, sessionID, hospitalID string) (*entities.CompareSet, error) {
	set, err := s.sets.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if set.Remove(hospitalID) {
		if err := s.sets.Save(ctx, sessionID, set); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Clear drops the session's selection.
func (s *CompareService) Clear(ctx context.Context, sessionID string) error {
	return s.sets.Clear(ctx, sessionID)
}

// BuildMatrix builds the comparison matrix for the session's selection.
func (s *CompareService) BuildMatrix(ctx context.Context, sessionID string) (*entities.ComparisonMatrix, error) {
	set, err := s.sets.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.BuildMatrixFromIDs(ctx, set.IDs)
}

// BuildMatrixFromIDs builds the comparison matrix for an explicit ID
// list. IDs that no longer resolve are dropped; fewer than two surviving
// hospitals yields ErrInsufficientSelection.
func (s *CompareService) BuildMatrixFromIDs(ctx context.Context, ids []string) (*entities.ComparisonMatrix, error) {
	hospitals, err := s.hospitals.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(hospitals) < entities.CompareMinSize {
		return nil, ErrInsufficientSelection
	}

	matrix := &entities.ComparisonMatrix{
		Hospitals: hospitals,
	}

	matrix.Rows = []entities.CompareRow{
		buildRow("Rating", entities.FormatText, hospitals, func(h *entities.Hospital) (string, float64, bool) {
			return fmt.Sprintf("%.1f / 5.0", h.Rating), h.Rating, true
		}),
		buildCostRow("Base Cost", hospitals, func(t *entities.Treatment) float64 { return t.BaseCost }),
		buildCostRow("Surgery Cost", hospitals, func(t *entities.Treatment) float64 { return t.SurgeryCost }),
		buildCostRow("Medication Cost", hospitals, func(t *entities.Treatment) float64 { return t.MedicationCost }),
		buildCostRow("Stay Cost", hospitals, func(t *entities.Treatment) float64 { return t.StayCost }),
		buildCostRow("Total Cost", hospitals, func(t *entities.Treatment) float64 { return t.TotalCost() }),
		buildRow("Duration", entities.FormatText, hospitals, func(h *entities.Hospital) (string, float64, bool) {
			t := h.FirstTreatment()
			if t == nil {
				return "N/A", 0, false
			}
			return fmt.Sprintf("%d days", t.DurationDays), float64(t.DurationDays), true
		}),
	}

	matrix.LowestCostID = lowestTotalCostID(hospitals)
	matrix.HighestRatingID = highestRatingID(hospitals)
	markBest(matrix)

	return matrix, nil
}

func buildRow(label string, format entities.ValueFormat, hospitals []*entities.Hospital, value func(*entities.Hospital) (string, float64, bool)) entities.CompareRow {
	row := entities.CompareRow{Label: label, Format: format}
	for _, h := range hospitals {
		text, amount, _ := value(h)
		row.Cells = append(row.Cells, entities.CompareCell{
			HospitalID: h.ID,
			Text:       text,
			Amount:     amount,
		})
	}
	return row
}

func buildCostRow(label string, hospitals []*entities.Hospital, component func(*entities.Treatment) float64) entities.CompareRow {
	row := entities.CompareRow{Label: label, Format: entities.FormatCurrency}
	for _, h := range hospitals {
		cell := entities.CompareCell{HospitalID: h.ID, Text: "N/A"}
		if t := h.FirstTreatment(); t != nil {
			amount := component(t)
			cell.Amount = amount
			cell.Text = fmt.Sprintf("$%.0f", amount)
		}
		row.Cells = append(row.Cells, cell)
	}
	return row
}

// lowestTotalCostID picks exactly one winner by strict less-than over the
// first treatment's total. Ties keep the earlier selection.
func lowestTotalCostID(hospitals []*entities.Hospital) string {
	winner := ""
	best := 0.0
	for _, h := range hospitals {
		t := h.FirstTreatment()
		if t == nil {
			continue
		}
		if winner == "" || t.TotalCost() < best {
			winner = h.ID
			best = t.TotalCost()
		}
	}
	return winner
}

// highestRatingID picks exactly one winner by strict greater-than. Ties
// keep the earlier selection.
func highestRatingID(hospitals []*entities.Hospital) string {
	winner := ""
	best := 0.0
	for _, h := range hospitals {
		if winner == "" || h.Rating > best {
			winner = h.ID
			best = h.Rating
		}
	}
	return winner
}

func markBest(matrix *entities.ComparisonMatrix) {
	for i := range matrix.Rows {
		row := &matrix.Rows[i]
		var winner string
		switch row.Label {
		case "Total Cost":
			winner = matrix.LowestCostID
		case "Rating":
			winner = matrix.HighestRatingID
		default:
			continue
		}
		for j := range row.Cells {
			if row.Cells[j].HospitalID == winner {
				row.Cells[j].Best = true
			}
		}
	}
}

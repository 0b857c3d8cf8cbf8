package entities

// CompareCapacityPolicy decides how a full CompareSet handles another
// selection. The two source variants disagreed; the policy is an explicit
// tagged choice.
type CompareCapacityPolicy int

const (
	// CapacityReject refuses additions once the set is full
	CapacityReject CompareCapacityPolicy = iota
	// CapacityEvictOldest drops the oldest selection to make room
	CapacityEvictOldest
)

// CompareMinSize is the smallest set a comparison can be built from.
const CompareMinSize = 2

// CompareMaxCapacity is the default upper bound on selections.
const CompareMaxCapacity = 4

// CompareSet is the bounded, selection-ordered set of hospital IDs a user
// has marked for side-by-side comparison.
type CompareSet struct {
	IDs      []string              `json:"ids"`
	Capacity int                   `json:"capacity"`
	Policy   CompareCapacityPolicy `json:"policy"`
}

// NewCompareSet creates an empty compare set. Non-positive capacities fall
// back to the default.
func NewCompareSet(capacity int, policy CompareCapacityPolicy) *CompareSet {
	if capacity <= 0 {
		capacity = CompareMaxCapacity
	}
	return &CompareSet{IDs: []string{}, Capacity: capacity, Policy: policy}
}

// Contains reports whether the hospital is already selected.
func (s *CompareSet) Contains(id string) bool {
	for _, existing := range s.IDs {
		if existing == id {
			return true
		}
	}
	return false
}

// Add selects a hospital. Adding an already-selected ID is a no-op that
// reports success. A full set either rejects the addition or evicts the
// oldest selection, per the policy. Returns whether the set changed.
func (s *CompareSet) Add(id string) bool {
	if id == "" || s.Contains(id) {
		return false
	}
	if len(s.IDs) >= s.Capacity {
		if s.Policy == CapacityReject {
			return false
		}
		s.IDs = s.IDs[1:]
	}
	s.IDs = append(s.IDs, id)
	return true
}

// Remove deselects a hospital. Returns whether the set changed.
func (s *CompareSet) Remove(id string) bool {
	for i, existing := range s.IDs {
		if existing == id {
			s.IDs = append(s.IDs[:i], s.IDs[i+1:]...)
			return true
		}
	}
	return false
}

// Size returns the number of selections.
func (s *CompareSet) Size() int {
	return len(s.IDs)
}

// ValueFormat declares how a comparison cell should be displayed.
type ValueFormat string

const (
	// FormatText renders the cell value as plain text
	FormatText ValueFormat = "text"
	// FormatCurrency renders the cell value as a USD amount
	FormatCurrency ValueFormat = "currency"
)

// CompareCell is one hospital's value for one comparison metric.
type CompareCell struct {
	HospitalID string  `json:"hospital_id"`
	Text       string  `json:"text,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
	Best       bool    `json:"best,omitempty"`
}

// CompareRow is one labeled metric across all compared hospitals.
type CompareRow struct {
	Label  string        `json:"label"`
	Format ValueFormat   `json:"format"`
	Cells  []CompareCell `json:"cells"`
}

// ComparisonMatrix is the side-by-side feature matrix built from a
// resolved CompareSet. Request-scoped.
type ComparisonMatrix struct {
	Hospitals       []*Hospital  `json:"hospitals"`
	Rows            []CompareRow `json:"rows"`
	LowestCostID    string       `json:"lowest_cost_id"`
	HighestRatingID string       `json:"highest_rating_id"`
}

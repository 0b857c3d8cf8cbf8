package entities

// SearchCriteria holds the optional filters of a hospital search. All
// present filters are AND-combined.
type SearchCriteria struct {
	Treatment      string `json:"treatment,omitempty"`
	Location       string `json:"location,omitempty"`
	Country        string `json:"country,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

// IsZero reports whether no filter is set.
func (c SearchCriteria) IsZero() bool {
	return c.Treatment == "" && c.Location == "" && c.Country == "" && c.Specialization == ""
}

// MatchWeights tunes the weighted ranking. The UI keeps Quality and
// Proximity summing to 1.0; the engine accepts any non-negative pair.
type MatchWeights struct {
	Quality   float64 `json:"quality"`
	Proximity float64 `json:"proximity"`
}

// IsZero reports whether both weights are unset, which selects the
// unweighted sort path.
func (w MatchWeights) IsZero() bool {
	return w.Quality == 0 && w.Proximity == 0
}

// SortOrder selects the ordering of unweighted search results.
type SortOrder string

const (
	// SortByRating orders by rating, descending
	SortByRating SortOrder = "rating"
	// SortByCost orders by the total cost of the matched (or first)
	// treatment, ascending
	SortByCost SortOrder = "cost"
)

// FallbackPolicy decides what a free-text filter returns when it matches
// nothing. The two source variants disagreed; the policy is an explicit
// tagged choice.
type FallbackPolicy int

const (
	// FallbackReturnAll returns the unfiltered set on zero matches
	FallbackReturnAll FallbackPolicy = iota
	// FallbackReturnEmpty returns the empty result on zero matches
	FallbackReturnEmpty
)

// ScoredHospital is a hospital with its ephemeral ranking signal.
// Recomputed per search, never persisted. Score is a relative ordering
// signal, not a probability.
type ScoredHospital struct {
	Hospital         *Hospital  `json:"hospital"`
	Score            float64    `json:"score"`
	DistanceHours    float64    `json:"distance_hours"`
	MatchedTreatment *Treatment `json:"matched_treatment,omitempty"`
}

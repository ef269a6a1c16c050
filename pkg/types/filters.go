package types

import "slices"

type SortBy string

const (
	SortRating     SortBy = "rating"
	SortPriceAsc   SortBy = "price-asc"
	SortPriceDesc  SortBy = "price-desc"
	SortExperience SortBy = "experience"
	SortReviews    SortBy = "reviews"
)

const DefaultSort = SortRating

func (s SortBy) IsValid() bool {
	switch s {
	case SortRating, SortPriceAsc, SortPriceDesc, SortExperience, SortReviews:
		return true
	}
	return false
}

// PriceRange is a closed interval, both ends inclusive.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Clamp forces the range inside bounds and orders min before max, so no
// update can produce an unsatisfiable interval.
func (r PriceRange) Clamp(bounds PriceRange) PriceRange {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	if r.Min < bounds.Min {
		r.Min = bounds.Min
	}
	if r.Max > bounds.Max {
		r.Max = bounds.Max
	}
	return r
}

// FilterState is the whole filter panel as one value. Updates replace
// the value wholesale and never mutate a field in place, so concurrent
// readers of an old value stay consistent.
type FilterState struct {
	Locations     []string   `json:"locations"`
	Specialties   []string   `json:"specialties"`
	Services      []string   `json:"services"`
	PriceRange    PriceRange `json:"priceRange"`
	MinRating     float64    `json:"minRating"`
	MinExperience int        `json:"minExperience"`
	VerifiedOnly  bool       `json:"verifiedOnly"`
	SortBy        SortBy     `json:"sortBy"`
	SearchQuery   string     `json:"searchQuery"`
}

// DefaultFilterState is the session start state. Price bounds come from
// the live dataset, nothing is hardcoded.
func DefaultFilterState(bounds PriceRange) FilterState {
	return FilterState{
		Locations:   []string{},
		Specialties: []string{},
		Services:    []string{},
		PriceRange:  bounds,
		SortBy:      DefaultSort,
	}
}

func (f FilterState) Equal(other FilterState) bool {
	return slices.Equal(f.Locations, other.Locations) &&
		slices.Equal(f.Specialties, other.Specialties) &&
		slices.Equal(f.Services, other.Services) &&
		f.PriceRange == other.PriceRange &&
		f.MinRating == other.MinRating &&
		f.MinExperience == other.MinExperience &&
		f.VerifiedOnly == other.VerifiedOnly &&
		f.SortBy == other.SortBy &&
		f.SearchQuery == other.SearchQuery
}

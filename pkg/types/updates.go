package types

import "slices"

// FilterKey identifies one filterable category, used by chips and by
// RemoveFilter to address the constraint to drop.
type FilterKey string

const (
	KeyLocations     FilterKey = "locations"
	KeySpecialties   FilterKey = "specialties"
	KeyServices      FilterKey = "services"
	KeyPriceRange    FilterKey = "priceRange"
	KeyMinRating     FilterKey = "minRating"
	KeyMinExperience FilterKey = "minExperience"
	KeyVerifiedOnly  FilterKey = "verifiedOnly"
	KeySearchQuery   FilterKey = "searchQuery"
)

// Update is one transition of the filter panel. Every variant is total:
// applying it to any valid state yields a valid state. The previous
// value is never written to.
type Update interface {
	Apply(prev FilterState, bounds PriceRange) FilterState
}

type SetQuery struct {
	Query string `json:"query"`
}

func (u SetQuery) Apply(prev FilterState, _ PriceRange) FilterState {
	prev.SearchQuery = u.Query
	return prev
}

type ToggleLocation struct {
	Value string `json:"value"`
}

func (u ToggleLocation) Apply(prev FilterState, _ PriceRange) FilterState {
	prev.Locations = toggle(prev.Locations, u.Value)
	return prev
}

type ToggleSpecialty struct {
	Value string `json:"value"`
}

func (u ToggleSpecialty) Apply(prev FilterState, _ PriceRange) FilterState {
	prev.Specialties = toggle(prev.Specialties, u.Value)
	return prev
}

type ToggleService struct {
	Value string `json:"value"`
}

func (u ToggleService) Apply(prev FilterState, _ PriceRange) FilterState {
	prev.Services = toggle(prev.Services, u.Value)
	return prev
}

type SetPriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (u SetPriceRange) Apply(prev FilterState, bounds PriceRange) FilterState {
	prev.PriceRange = PriceRange{Min: u.Min, Max: u.Max}.Clamp(bounds)
	return prev
}

type SetMinRating struct {
	Value float64 `json:"value"`
}

func (u SetMinRating) Apply(prev FilterState, _ PriceRange) FilterState {
	prev.MinRating = max(u.Value, 0)
	return prev
}

type SetMinExperience struct {
	Value int `json:"value"`
}

func (u SetMinExperience) Apply(prev FilterState, _ PriceRange) FilterState {
	prev.MinExperience = max(u.Value, 0)
	return prev
}

type SetVerifiedOnly struct {
	Value bool `json:"value"`
}

func (u SetVerifiedOnly) Apply(prev FilterState, _ PriceRange) FilterState {
	prev.VerifiedOnly = u.Value
	return prev
}

type SetSortBy struct {
	Value SortBy `json:"value"`
}

func (u SetSortBy) Apply(prev FilterState, _ PriceRange) FilterState {
	if u.Value.IsValid() {
		prev.SortBy = u.Value
	}
	return prev
}

// ClearAll resets everything to defaults with price bounds re-derived
// from the live dataset.
type ClearAll struct{}

func (u ClearAll) Apply(_ FilterState, bounds PriceRange) FilterState {
	return DefaultFilterState(bounds)
}

// RemoveFilter drops one active constraint, the operation behind chip
// removal. For the multi-valued categories an empty Value clears the
// whole set.
type RemoveFilter struct {
	Key   FilterKey `json:"key"`
	Value string    `json:"value,omitempty"`
}

func (u RemoveFilter) Apply(prev FilterState, bounds PriceRange) FilterState {
	switch u.Key {
	case KeyLocations:
		prev.Locations = without(prev.Locations, u.Value)
	case KeySpecialties:
		prev.Specialties = without(prev.Specialties, u.Value)
	case KeyServices:
		prev.Services = without(prev.Services, u.Value)
	case KeyPriceRange:
		prev.PriceRange = bounds
	case KeyMinRating:
		prev.MinRating = 0
	case KeyMinExperience:
		prev.MinExperience = 0
	case KeyVerifiedOnly:
		prev.VerifiedOnly = false
	case KeySearchQuery:
		prev.SearchQuery = ""
	}
	return prev
}

func toggle(values []string, value string) []string {
	if slices.Contains(values, value) {
		return without(values, value)
	}
	result := make([]string, 0, len(values)+1)
	result = append(result, values...)
	return append(result, value)
}

func without(values []string, value string) []string {
	result := make([]string, 0, len(values))
	if value == "" {
		return result
	}
	for _, v := range values {
		if v != value {
			result = append(result, v)
		}
	}
	return result
}

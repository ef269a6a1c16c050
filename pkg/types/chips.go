package types

import "fmt"

// Chip is one removable token in the active filter row. Key plus Value
// carry enough identity to feed RemoveFilter.
type Chip struct {
	Key   FilterKey `json:"key"`
	Label string    `json:"label"`
	Value string    `json:"value,omitempty"`
}

// ActiveChips derives the chip row from the state. One chip per
// selected value in the multi-valued categories, one per active scalar
// constraint. Price only counts when it differs from the full bounds.
func (f FilterState) ActiveChips(bounds PriceRange) []Chip {
	chips := make([]Chip, 0, len(f.Locations)+len(f.Specialties)+len(f.Services)+5)
	for _, loc := range f.Locations {
		chips = append(chips, Chip{Key: KeyLocations, Label: loc, Value: loc})
	}
	for _, sp := range f.Specialties {
		chips = append(chips, Chip{Key: KeySpecialties, Label: sp, Value: sp})
	}
	for _, sv := range f.Services {
		chips = append(chips, Chip{Key: KeyServices, Label: sv, Value: sv})
	}
	if f.PriceRange != bounds {
		chips = append(chips, Chip{
			Key:   KeyPriceRange,
			Label: fmt.Sprintf("%g€ - %g€", f.PriceRange.Min, f.PriceRange.Max),
		})
	}
	if f.MinRating > 0 {
		chips = append(chips, Chip{Key: KeyMinRating, Label: fmt.Sprintf("≥ %g★", f.MinRating)})
	}
	if f.MinExperience > 0 {
		chips = append(chips, Chip{Key: KeyMinExperience, Label: fmt.Sprintf("%d+ años exp.", f.MinExperience)})
	}
	if f.VerifiedOnly {
		chips = append(chips, Chip{Key: KeyVerifiedOnly, Label: "Verificadas"})
	}
	if f.SearchQuery != "" {
		chips = append(chips, Chip{Key: KeySearchQuery, Label: fmt.Sprintf("%q", f.SearchQuery)})
	}
	return chips
}

// ActiveFilterCount is the badge number: active categories, not chips.
// Three selected locations still count as one.
func (f FilterState) ActiveFilterCount(bounds PriceRange) int {
	count := 0
	if len(f.Locations) > 0 {
		count++
	}
	if len(f.Specialties) > 0 {
		count++
	}
	if len(f.Services) > 0 {
		count++
	}
	if f.PriceRange != bounds {
		count++
	}
	if f.MinRating > 0 {
		count++
	}
	if f.MinExperience > 0 {
		count++
	}
	if f.VerifiedOnly {
		count++
	}
	if f.SearchQuery != "" {
		count++
	}
	return count
}

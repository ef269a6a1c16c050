package types

import "testing"

func TestActiveFilterCountCountsCategories(t *testing.T) {
	bounds := PriceRange{Min: 12, Max: 20}
	state := DefaultFilterState(bounds)
	state = ToggleLocation{Value: "Madrid"}.Apply(state, bounds)
	state = ToggleLocation{Value: "Valencia"}.Apply(state, bounds)
	state = ToggleLocation{Value: "Bilbao"}.Apply(state, bounds)
	state = ToggleSpecialty{Value: "Perros"}.Apply(state, bounds)
	state = ToggleSpecialty{Value: "Gatos"}.Apply(state, bounds)

	if got := state.ActiveFilterCount(bounds); got != 2 {
		t.Errorf("3 locations + 2 specialties should count as 2 categories, got %d", got)
	}
	if got := len(state.ActiveChips(bounds)); got != 5 {
		t.Errorf("expected 5 chips, got %d", got)
	}
}

func TestPriceChipOnlyWhenNarrowed(t *testing.T) {
	bounds := PriceRange{Min: 12, Max: 20}
	state := DefaultFilterState(bounds)

	if got := len(state.ActiveChips(bounds)); got != 0 {
		t.Fatalf("default state should have no chips, got %d", got)
	}
	if got := state.ActiveFilterCount(bounds); got != 0 {
		t.Fatalf("default state should have no active categories, got %d", got)
	}

	state = SetPriceRange{Min: 13, Max: 17}.Apply(state, bounds)
	chips := state.ActiveChips(bounds)
	if len(chips) != 1 || chips[0].Key != KeyPriceRange {
		t.Errorf("expected one price chip, got %v", chips)
	}
	if chips[0].Label != "13€ - 17€" {
		t.Errorf("unexpected price label %q", chips[0].Label)
	}
}

func TestScalarChipsRoundTripThroughRemove(t *testing.T) {
	bounds := PriceRange{Min: 12, Max: 20}
	state := DefaultFilterState(bounds)
	state = SetMinRating{Value: 4.5}.Apply(state, bounds)
	state = SetVerifiedOnly{Value: true}.Apply(state, bounds)
	state = SetQuery{Query: "gatos"}.Apply(state, bounds)

	chips := state.ActiveChips(bounds)
	if len(chips) != 3 {
		t.Fatalf("expected 3 chips, got %d", len(chips))
	}
	for _, chip := range chips {
		state = RemoveFilter{Key: chip.Key, Value: chip.Value}.Apply(state, bounds)
	}
	if !state.Equal(DefaultFilterState(bounds)) {
		t.Errorf("removing every chip should restore defaults, got %+v", state)
	}
}

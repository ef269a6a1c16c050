package index

import (
	"testing"

	"github.com/petsisters/sitter-finder/pkg/facet"
	"github.com/petsisters/sitter-finder/pkg/types"
)

func mockIndex() *Index {
	return NewIndex(types.MockSitters())
}

func defaultState(t *testing.T, idx *Index) types.FilterState {
	t.Helper()
	options, err := idx.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	return types.DefaultFilterState(options.Bounds())
}

func TestMatchNoConstraintsKeepsDatasetOrder(t *testing.T) {
	idx := mockIndex()
	result := idx.Match(defaultState(t, idx))

	if len(result) != idx.Len() {
		t.Fatalf("expected all %d sitters, got %d", idx.Len(), len(result))
	}
	for i, s := range result {
		if s.Id != idx.Items[i].Id {
			t.Errorf("position %d: expected %s, got %s", i, idx.Items[i].Id, s.Id)
		}
	}
}

// Scenario A: six sitters, four verified.
func TestMatchVerifiedOnly(t *testing.T) {
	idx := mockIndex()
	state := defaultState(t, idx)
	state = types.SetVerifiedOnly{Value: true}.Apply(state, idx.Bounds())

	result := idx.Match(state)
	if len(result) != 4 {
		t.Fatalf("expected 4 verified sitters, got %d", len(result))
	}
	counts := facet.CountResult(result)
	if counts.Verified != 4 || counts.Total != 4 {
		t.Errorf("expected verified=4 total=4, got verified=%d total=%d", counts.Verified, counts.Total)
	}
}

// Scenario B: price window [12,16] over prices {15,18,12,20,14,16}.
func TestMatchPriceRangeSortedAscending(t *testing.T) {
	idx := mockIndex()
	state := defaultState(t, idx)
	state = types.SetPriceRange{Min: 12, Max: 16}.Apply(state, idx.Bounds())
	state = types.SetSortBy{Value: types.SortPriceAsc}.Apply(state, idx.Bounds())

	result := idx.Search(state)
	if len(result) != 4 {
		t.Fatalf("expected 4 results, got %d", len(result))
	}
	want := []float64{12, 14, 15, 16}
	for i, s := range result {
		if s.Price != want[i] {
			t.Errorf("position %d: expected price %g, got %g", i, want[i], s.Price)
		}
	}
}

// Scenario C: the query matches on location alone.
func TestMatchQueryReachesLocation(t *testing.T) {
	idx := mockIndex()
	state := defaultState(t, idx)
	state = types.SetQuery{Query: "Madrid"}.Apply(state, idx.Bounds())

	result := idx.Match(state)
	if len(result) != 1 || result[0].Location != "Madrid" {
		t.Fatalf("expected the Madrid sitter, got %v", result)
	}

	state = types.SetQuery{Query: "conejos"}.Apply(state, idx.Bounds())
	result = idx.Match(state)
	if len(result) != 1 || result[0].Id != "s3" {
		t.Errorf("expected specialty match for s3, got %v", result)
	}
}

// Scenario D: an unreachable threshold is a normal empty result.
func TestMatchEmptyResult(t *testing.T) {
	idx := mockIndex()
	state := defaultState(t, idx)
	state = types.SetMinRating{Value: 5.0}.Apply(state, idx.Bounds())
	state = types.SetVerifiedOnly{Value: true}.Apply(state, idx.Bounds())

	result := idx.Search(state)
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %d", len(result))
	}
	counts := facet.CountResult(result)
	if counts.Total != 0 {
		t.Errorf("expected total 0, got %d", counts.Total)
	}
}

func TestMatchSpecialtyIntersection(t *testing.T) {
	idx := mockIndex()
	state := defaultState(t, idx)
	state = types.ToggleSpecialty{Value: "Aves"}.Apply(state, idx.Bounds())
	state = types.ToggleSpecialty{Value: "Reptiles"}.Apply(state, idx.Bounds())

	result := idx.Match(state)
	if len(result) != 2 {
		t.Fatalf("expected 2 sitters (Aves or Reptiles), got %d", len(result))
	}
}

func TestMatchMonotonicity(t *testing.T) {
	idx := mockIndex()
	bounds := idx.Bounds()
	state := types.DefaultFilterState(bounds)

	tightenings := []types.Update{
		types.SetQuery{Query: "a"},
		types.ToggleSpecialty{Value: "Perros"},
		types.SetPriceRange{Min: 13, Max: 19},
		types.SetMinRating{Value: 4.7},
		types.SetMinExperience{Value: 4},
		types.SetVerifiedOnly{Value: true},
	}
	prev := len(idx.Match(state))
	for _, u := range tightenings {
		state = u.Apply(state, bounds)
		got := len(idx.Match(state))
		if got > prev {
			t.Errorf("adding constraint %T grew the result: %d -> %d", u, prev, got)
		}
		prev = got
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	idx := mockIndex()
	state := defaultState(t, idx)
	state = types.ToggleSpecialty{Value: "Perros"}.Apply(state, idx.Bounds())
	state = types.SetSortBy{Value: types.SortReviews}.Apply(state, idx.Bounds())

	first := idx.Search(state)
	for run := 0; run < 5; run++ {
		again := idx.Search(state)
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed %d -> %d", run, len(first), len(again))
		}
		for i := range first {
			if first[i].Id != again[i].Id {
				t.Fatalf("run %d: order changed at %d: %s vs %s", run, i, first[i].Id, again[i].Id)
			}
		}
	}
}

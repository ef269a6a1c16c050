package index

import (
	"cmp"
	"slices"

	"github.com/petsisters/sitter-finder/pkg/types"
)

// SortResult orders the filtered result in place by the selected key.
// The sort is stable: equal keys keep their pre-sort relative order,
// which for a fresh Match result is the dataset order. An unknown key
// falls back to the default sort.
func SortResult(result []*types.Sitter, by types.SortBy) {
	switch by {
	case types.SortPriceAsc:
		slices.SortStableFunc(result, func(a, b *types.Sitter) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case types.SortPriceDesc:
		slices.SortStableFunc(result, func(a, b *types.Sitter) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case types.SortExperience:
		slices.SortStableFunc(result, func(a, b *types.Sitter) int {
			return cmp.Compare(b.Experience, a.Experience)
		})
	case types.SortReviews:
		slices.SortStableFunc(result, func(a, b *types.Sitter) int {
			return cmp.Compare(b.Reviews, a.Reviews)
		})
	default:
		slices.SortStableFunc(result, func(a, b *types.Sitter) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	}
}

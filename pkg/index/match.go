package index

import (
	"slices"
	"strings"

	"github.com/petsisters/sitter-finder/pkg/types"
)

// Match evaluates every record against the state, AND across the
// categories, OR inside each multi-valued one. The result keeps the
// dataset order, sorting is a separate step.
func (i *Index) Match(state types.FilterState) []*types.Sitter {
	result := make([]*types.Sitter, 0, len(i.Items))
	query := strings.ToLower(state.SearchQuery)
	for idx := range i.Items {
		s := &i.Items[idx]
		if matches(s, &state, query) {
			result = append(result, s)
		}
	}
	return result
}

func matches(s *types.Sitter, state *types.FilterState, query string) bool {
	if query != "" && !matchesQuery(s, query) {
		return false
	}
	if len(state.Locations) > 0 && !slices.Contains(state.Locations, s.Location) {
		return false
	}
	if len(state.Specialties) > 0 && !intersects(state.Specialties, s.Specialties) {
		return false
	}
	if len(state.Services) > 0 && !anyService(state.Services, s) {
		return false
	}
	if !state.PriceRange.Contains(s.Price) {
		return false
	}
	if state.MinRating > 0 && s.Rating < state.MinRating {
		return false
	}
	if state.MinExperience > 0 && s.Experience < state.MinExperience {
		return false
	}
	if state.VerifiedOnly && !s.Verified {
		return false
	}
	return true
}

// matchesQuery is a case-insensitive substring match over name,
// location, bio and every specialty label. One hit is enough.
func matchesQuery(s *types.Sitter, query string) bool {
	if strings.Contains(strings.ToLower(s.Name), query) ||
		strings.Contains(strings.ToLower(s.Location), query) ||
		strings.Contains(strings.ToLower(s.Bio), query) {
		return true
	}
	for _, sp := range s.Specialties {
		if strings.Contains(strings.ToLower(sp), query) {
			return true
		}
	}
	return false
}

func intersects(selected, values []string) bool {
	for _, v := range selected {
		if slices.Contains(values, v) {
			return true
		}
	}
	return false
}

func anyService(selected []string, s *types.Sitter) bool {
	for _, name := range selected {
		if s.HasService(name) {
			return true
		}
	}
	return false
}

package facet

import "github.com/petsisters/sitter-finder/pkg/types"

// Counts are the per-value tallies shown next to each facet option.
// They are always computed over the already filtered result, so every
// number answers "how many of the currently visible sitters".
type Counts struct {
	Locations   map[string]int `json:"locations"`
	Specialties map[string]int `json:"specialties"`
	Services    map[string]int `json:"services"`
	Verified    int            `json:"verified"`
	Total       int            `json:"total"`
}

// CountResult tallies the filtered result in a single pass. Each sitter
// contributes one location increment and one increment per specialty
// and per service name.
func CountResult(result []*types.Sitter) Counts {
	counts := Counts{
		Locations:   map[string]int{},
		Specialties: map[string]int{},
		Services:    map[string]int{},
		Total:       len(result),
	}
	for _, s := range result {
		counts.Locations[s.Location]++
		for _, sp := range s.Specialties {
			counts.Specialties[sp]++
		}
		for _, sv := range s.Services {
			counts.Services[sv.Name]++
		}
		if s.Verified {
			counts.Verified++
		}
	}
	return counts
}

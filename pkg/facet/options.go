package facet

import (
	"errors"
	"math"
	"slices"

	"github.com/petsisters/sitter-finder/pkg/types"
)

// ErrEmptyCatalog is returned instead of deriving price bounds from an
// empty sequence. Callers decide how to surface it, the engine never
// invents a sentinel range.
var ErrEmptyCatalog = errors.New("facet: empty catalog")

// Options is the option universe of the filter panel, derived from the
// dataset alone. The specialty vocabulary is whatever the data
// contains, nothing is hardcoded.
type Options struct {
	Locations   []string `json:"locations"`
	Specialties []string `json:"specialties"`
	Services    []string `json:"services"`
	PriceMin    float64  `json:"priceMin"`
	PriceMax    float64  `json:"priceMax"`
}

func (o Options) Bounds() types.PriceRange {
	return types.PriceRange{Min: o.PriceMin, Max: o.PriceMax}
}

// OptionsFrom collects the distinct facet values and the price bounds
// from the full dataset. Pure function of the dataset, compute it once
// per catalog.
func OptionsFrom(sitters []types.Sitter) (Options, error) {
	if len(sitters) == 0 {
		return Options{}, ErrEmptyCatalog
	}

	locations := map[string]struct{}{}
	specialties := map[string]struct{}{}
	services := map[string]struct{}{}
	priceMin := sitters[0].Price
	priceMax := sitters[0].Price

	for i := range sitters {
		s := &sitters[i]
		locations[s.Location] = struct{}{}
		for _, sp := range s.Specialties {
			specialties[sp] = struct{}{}
		}
		for _, sv := range s.Services {
			services[sv.Name] = struct{}{}
		}
		if s.Price < priceMin {
			priceMin = s.Price
		}
		if s.Price > priceMax {
			priceMax = s.Price
		}
	}

	return Options{
		Locations:   sortedKeys(locations),
		Specialties: sortedKeys(specialties),
		Services:    sortedKeys(services),
		PriceMin:    math.Floor(priceMin),
		PriceMax:    math.Ceil(priceMax),
	}, nil
}

func sortedKeys(values map[string]struct{}) []string {
	keys := make([]string, 0, len(values))
	for v := range values {
		keys = append(keys, v)
	}
	slices.Sort(keys)
	return keys
}

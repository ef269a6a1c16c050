package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/petsisters/sitter-finder/pkg/types"
)

// SearchRequest is the wire form of one stateless search. GET requests
// decode from the query string, POST from a JSON body. The price window
// travels as "min-max" on the query string.
type SearchRequest struct {
	Query         string            `json:"searchQuery" schema:"query"`
	Locations     []string          `json:"locations" schema:"location"`
	Specialties   []string          `json:"specialties" schema:"specialty"`
	Services      []string          `json:"services" schema:"service"`
	Price         string            `json:"-" schema:"price"`
	PriceRange    *types.PriceRange `json:"priceRange" schema:"-"`
	MinRating     float64           `json:"minRating" schema:"rating"`
	MinExperience int               `json:"minExperience" schema:"experience"`
	VerifiedOnly  bool              `json:"verifiedOnly" schema:"verified"`
	Sort          string            `json:"sortBy" schema:"sort,default:rating"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func GetSearchRequest(r *http.Request) (*SearchRequest, error) {
	sr := &SearchRequest{}
	if r.Method == http.MethodGet {
		if err := decoder.Decode(sr, r.URL.Query()); err != nil {
			return nil, err
		}
		if sr.Price != "" {
			var priceMin, priceMax float64
			if _, err := fmt.Sscanf(sr.Price, "%f-%f", &priceMin, &priceMax); err == nil {
				sr.PriceRange = &types.PriceRange{Min: priceMin, Max: priceMax}
			}
		}
		return sr, nil
	}
	if err := json.NewDecoder(r.Body).Decode(sr); err != nil {
		return nil, err
	}
	return sr, nil
}

// ToFilterState maps the request onto a full state over the dataset
// bounds. Out of range values are clamped, unknown sort keys fall back
// to the default, so any request yields a valid state.
func (sr *SearchRequest) ToFilterState(bounds types.PriceRange) types.FilterState {
	state := types.DefaultFilterState(bounds)
	state.SearchQuery = sr.Query
	if len(sr.Locations) > 0 {
		state.Locations = sr.Locations
	}
	if len(sr.Specialties) > 0 {
		state.Specialties = sr.Specialties
	}
	if len(sr.Services) > 0 {
		state.Services = sr.Services
	}
	if sr.PriceRange != nil {
		state.PriceRange = sr.PriceRange.Clamp(bounds)
	}
	state.MinRating = max(sr.MinRating, 0)
	state.MinExperience = max(sr.MinExperience, 0)
	state.VerifiedOnly = sr.VerifiedOnly
	if sort := types.SortBy(sr.Sort); sort.IsValid() {
		state.SortBy = sort
	}
	return state
}

package server

import (
	"github.com/petsisters/sitter-finder/pkg/facet"
	"github.com/petsisters/sitter-finder/pkg/types"
)

type SearchResponse struct {
	Items             []*types.Sitter `json:"items"`
	Facets            facet.Counts    `json:"facetCounts"`
	Options           facet.Options   `json:"facetOptions"`
	ActiveFilters     []types.Chip    `json:"activeFilters"`
	ActiveFilterCount int             `json:"activeFilterCount"`
	TotalHits         int             `json:"totalHits"`
}

type SitterListResponse struct {
	Items   []types.Sitter `json:"items"`
	Options facet.Options  `json:"facetOptions"`
	Total   int            `json:"total"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

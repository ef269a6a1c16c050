package index

import (
	"sync"

	"github.com/petsisters/sitter-finder/pkg/facet"
	"github.com/petsisters/sitter-finder/pkg/types"
)

// Index holds the immutable catalog for one session and memoizes the
// derived facet options. A new dataset means a new Index, the options
// are never recomputed for the same one.
type Index struct {
	Items []types.Sitter

	once       sync.Once
	options    facet.Options
	optionsErr error
	byId       map[string]int
}

func NewIndex(items []types.Sitter) *Index {
	byId := make(map[string]int, len(items))
	for i := range items {
		byId[items[i].Id] = i
	}
	return &Index{Items: items, byId: byId}
}

// Options returns the facet option universe, computed once per catalog.
func (i *Index) Options() (facet.Options, error) {
	i.once.Do(func() {
		i.options, i.optionsErr = facet.OptionsFrom(i.Items)
	})
	return i.options, i.optionsErr
}

// Bounds returns the dataset price bounds, degenerate [0,0] only for an
// empty catalog which callers are expected to reject up front.
func (i *Index) Bounds() types.PriceRange {
	options, err := i.Options()
	if err != nil {
		return types.PriceRange{}
	}
	return options.Bounds()
}

func (i *Index) Get(id string) (*types.Sitter, bool) {
	idx, ok := i.byId[id]
	if !ok {
		return nil, false
	}
	return &i.Items[idx], true
}

func (i *Index) Len() int {
	return len(i.Items)
}

// Search runs the full pipeline for one state: filter then sort.
func (i *Index) Search(state types.FilterState) []*types.Sitter {
	result := i.Match(state)
	SortResult(result, state.SortBy)
	return result
}

package session

import (
	"sync"

	"github.com/petsisters/sitter-finder/pkg/facet"
	"github.com/petsisters/sitter-finder/pkg/index"
	"github.com/petsisters/sitter-finder/pkg/types"
)

// View is everything the presentation layer needs after a state change,
// recomputed eagerly and fully on every update.
type View struct {
	Filters           types.FilterState `json:"filters"`
	Sitters           []*types.Sitter   `json:"sitters"`
	Options           facet.Options     `json:"facetOptions"`
	Counts            facet.Counts      `json:"facetCounts"`
	ActiveFilters     []types.Chip      `json:"activeFilters"`
	ActiveFilterCount int               `json:"activeFilterCount"`
}

// Session owns the FilterState for one visitor. There is a single
// logical writer, the lock only guards against a torn read when the
// serving layer renders concurrently.
type Session struct {
	Id string

	mu     sync.RWMutex
	idx    *index.Index
	bounds types.PriceRange
	state  types.FilterState
}

func New(id string, idx *index.Index) (*Session, error) {
	options, err := idx.Options()
	if err != nil {
		return nil, err
	}
	bounds := options.Bounds()
	return &Session{
		Id:     id,
		idx:    idx,
		bounds: bounds,
		state:  types.DefaultFilterState(bounds),
	}, nil
}

// Apply replaces the state with the update's result and returns the
// recomputed view.
func (s *Session) Apply(update types.Update) View {
	s.mu.Lock()
	s.state = update.Apply(s.state, s.bounds)
	state := s.state
	s.mu.Unlock()
	return s.compute(state)
}

func (s *Session) View() View {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()
	return s.compute(state)
}

func (s *Session) State() types.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) compute(state types.FilterState) View {
	result := s.idx.Search(state)
	options, _ := s.idx.Options()
	return View{
		Filters:           state,
		Sitters:           result,
		Options:           options,
		Counts:            facet.CountResult(result),
		ActiveFilters:     state.ActiveChips(s.bounds),
		ActiveFilterCount: state.ActiveFilterCount(s.bounds),
	}
}

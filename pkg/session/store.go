package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/petsisters/sitter-finder/pkg/index"
)

// Store keeps the live sessions in memory. Nothing survives a restart,
// filter state is never persisted.
type Store struct {
	mu       sync.RWMutex
	idx      *index.Index
	sessions map[string]*Session
}

func NewStore(idx *index.Index) *Store {
	return &Store{
		idx:      idx,
		sessions: map[string]*Session{},
	}
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *Store) Create() (*Session, error) {
	s, err := New(uuid.NewString(), st.idx)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	st.sessions[s.Id] = s
	st.mu.Unlock()
	return s, nil
}

// GetOrCreate resolves the session for a cookie value. An unknown id is
// adopted as-is so the cookie stays stable across restarts, an empty id
// gets a generated one.
func (st *Store) GetOrCreate(id string) (*Session, error) {
	if id == "" {
		return st.Create()
	}
	if s, ok := st.Get(id); ok {
		return s, nil
	}
	s, err := New(id, st.idx)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if existing, ok := st.sessions[id]; ok {
		return existing, nil
	}
	st.sessions[id] = s
	return s, nil
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

package wizard

import (
	"sync"

	"akcayapi/internal/catalog"

	"github.com/google/uuid"
)

// Store keeps active sessions in memory for the HTTP layer. Nothing
// survives process restart; abandoning a session just drops it.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	criteria []catalog.Criterion
}

func NewStore(criteria []catalog.Criterion) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		criteria: criteria,
	}
}

func (st *Store) Create() *Session {
	s := NewSession(uuid.New().String(), st.criteria)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	return s, ok
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

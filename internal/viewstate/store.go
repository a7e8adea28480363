package viewstate

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const cleanupInterval = 10 * time.Minute

// Store keeps one State per session id. Entries expire with the session.
type Store struct {
	mu    sync.Mutex
	cache *gocache.Cache
	ttl   time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		cache: gocache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

func (s *Store) Get(sessionID string) State {
	value, found := s.cache.Get(sessionID)
	if !found {
		return State{}
	}
	st, ok := value.(State)
	if !ok {
		return State{}
	}
	return st
}

// Dispatch applies the events in order and stores the result.
func (s *Store) Dispatch(sessionID string, events ...Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.Get(sessionID)
	for _, ev := range events {
		st = Reduce(st, ev)
	}
	s.cache.Set(sessionID, st, s.ttl)

	return st
}

// TakeMessage returns the state and clears its pending message, so a
// message is shown once.
func (s *Store) TakeMessage(sessionID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.Get(sessionID)
	if st.Message != nil {
		cleared := st
		cleared.Message = nil
		s.cache.Set(sessionID, cleared, s.ttl)
	}
	return st
}

func (s *Store) Delete(sessionID string) {
	s.cache.Delete(sessionID)
}

package quiz

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

type entry struct {
	sess    *Session
	touched time.Time
}

// Store is the in-memory session registry. Sessions are ephemeral; anything
// idle past ttl is swept. All engine mutations run under the store lock, so
// the Session itself stays lock-free.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	rng      *rand.Rand
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: map[string]*entry{},
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create derives a new session over qs and registers it under a fresh ID.
func (st *Store) Create(qs []Question, mode Mode, limit int) (string, *Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, err := NewSession(qs, mode, limit, st.rng)
	if err != nil {
		return "", nil, err
	}
	id := uuid.NewString()
	st.sessions[id] = &entry{sess: sess, touched: st.now()}
	st.sweepLocked()
	return id, sess, nil
}

// With runs fn against the named session under the store lock and refreshes
// its idle timer.
func (st *Store) With(id string, fn func(*Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	e.touched = st.now()
	return fn(e.sess)
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops sessions idle longer than the TTL.
func (st *Store) Sweep() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweepLocked()
}

func (st *Store) sweepLocked() {
	if st.ttl <= 0 {
		return
	}
	cutoff := st.now().Add(-st.ttl)
	for id, e := range st.sessions {
		if e.touched.Before(cutoff) {
			delete(st.sessions, id)
		}
	}
}

// Package session owns the per-visitor state containers: cart, booking
// wizard and contact form. State lives in memory only and is dropped after
// a period of inactivity.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shinelaptops/storefront/internal/cart"
	"github.com/shinelaptops/storefront/internal/catalog"
	"github.com/shinelaptops/storefront/internal/metrics"
	"github.com/shinelaptops/storefront/internal/wizard"
)

// HeaderName carries the session id on requests and responses.
const HeaderName = "X-Session-ID"

// State is the mutable per-visitor state. It must only be touched inside
// Session.With.
type State struct {
	Cart    *cart.Cart
	Booking *wizard.Booking
	Contact *wizard.Contact
}

// Session is one visitor's state guarded by its own mutex.
type Session struct {
	id string

	mu       sync.Mutex
	state    *State
	lastSeen time.Time
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// With runs fn with exclusive access to the session state.
func (s *Session) With(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Config controls session lifetime.
type Config struct {
	TTL             time.Duration
	SubmittedWindow time.Duration
}

// Store holds the live sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	catalog *catalog.Store
	cfg     Config
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewStore creates an empty session store. recorder may be nil.
func NewStore(store *catalog.Store, cfg Config, recorder *metrics.Recorder) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		catalog:  store,
		cfg:      cfg,
		metrics:  recorder,
		now:      time.Now,
	}
}

func (s *Store) newState() *State {
	return &State{
		Cart: cart.New(s.catalog),
		Booking: wizard.NewBooking(func(id string) error {
			_, err := s.catalog.Service(id)
			return err
		}),
		Contact: wizard.NewContact(s.cfg.SubmittedWindow),
	}
}

// Get returns the live session with id and refreshes its idle timer.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	sess.touch(s.now())
	return sess, true
}

// Resolve returns the session for id, creating a fresh one when id is not a
// valid uuid or has expired. created reports whether a new session was made.
func (s *Store) Resolve(id string) (sess *Session, created bool) {
	if _, err := uuid.Parse(id); err == nil {
		if existing, ok := s.Get(id); ok {
			return existing, false
		}
	}
	return s.create(), true
}

func (s *Store) create() *Session {
	sess := &Session{
		id:       uuid.NewString(),
		state:    s.newState(),
		lastSeen: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.SetActiveSessions(n)
	}
	return sess
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed. A non-positive TTL disables expiry.
func (s *Store) Sweep() int {
	if s.cfg.TTL <= 0 {
		return 0
	}
	now := s.now()

	s.mu.Lock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.cfg.TTL {
			delete(s.sessions, id)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.SetActiveSessions(n)
		if removed > 0 {
			s.metrics.RecordSessionsSwept(removed)
		}
	}
	return removed
}

package cart

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/manevdusko/fitbody-sub000/internal/notify"
)

const (
	// SessionTTL is how long an idle session survives before cleanup.
	SessionTTL = 30 * time.Minute

	// CleanupInterval is how often the background cleanup runs.
	CleanupInterval = 5 * time.Minute
)

// Session binds one visitor to a remote cart token, the cart aggregator
// for it, and the visitor's notification queue.
type Session struct {
	ID            string
	Token         string
	Cart          *Aggregator
	Notifications *notify.Center

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) expired(ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastSeen) > ttl
}

// Store holds live sessions in memory. Sessions are ephemeral by
// design: the authoritative cart lives in the backend, keyed by the
// session's cart token.
type Store struct {
	api RemoteCart
	ttl time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

func NewStore(api RemoteCart, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	s := &Store{
		api:         api,
		ttl:         ttl,
		sessions:    make(map[string]*Session),
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

func (s *Store) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expireSessions()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *Store) expireSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if sess.expired(s.ttl) {
			sess.Notifications.ClearAll()
			delete(s.sessions, id)
		}
	}
}

// Get returns the session for id, or nil when unknown or expired. A
// session past its TTL is dead even before the cleanup tick sweeps it;
// touching it here would revive it.
func (s *Store) Get(id string) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || sess.expired(s.ttl) {
		return nil
	}
	sess.touch()
	return sess
}

// GetOrCreate returns the session for id, creating a fresh one (with a
// new id and cart token) when id is empty or unknown.
func (s *Store) GetOrCreate(id string) *Session {
	if id != "" {
		if sess := s.Get(id); sess != nil {
			return sess
		}
	}

	sess := &Session{
		ID:            uuid.New().String(),
		Token:         newCartToken(),
		Notifications: notify.NewCenter(),
		lastSeen:      time.Now(),
	}
	sess.Cart = NewAggregator(s.api, sess.Token)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Close stops the cleanup loop and drops all sessions.
func (s *Store) Close() {
	close(s.stopCleanup)
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.Notifications.ClearAll()
		delete(s.sessions, id)
	}
}

// newCartToken generates the random token that scopes a remote cart to
// this session. Without one the backend may reuse carts across
// visitors.
func newCartToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

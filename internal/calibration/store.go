package calibration

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultSessionTTL is how long an idle session keeps its standards.
const DefaultSessionTTL = 2 * time.Hour

// Store keeps per-session standards in memory. Entries expire after ttl
// without access; each Get or Put restarts the clock.
type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewStore creates a session store. A non-positive ttl uses
// DefaultSessionTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Store{
		cache: gocache.New(ttl, ttl/2),
		ttl:   ttl,
	}
}

// Get returns a copy of the session's standards, or the defaults when the
// session has none.
func (s *Store) Get(sessionID string) Standards {
	if v, found := s.cache.Get(sessionID); found {
		std := v.(Standards)
		s.cache.Set(sessionID, std, s.ttl)
		return std.Clone()
	}
	return DefaultStandards()
}

// Put validates and stores a copy of std for the session.
func (s *Store) Put(sessionID string, std Standards) error {
	if err := std.Validate(); err != nil {
		return err
	}
	s.cache.Set(sessionID, std.Clone(), s.ttl)
	return nil
}

// Reset drops the session's overrides so Get returns the defaults again.
func (s *Store) Reset(sessionID string) {
	s.cache.Delete(sessionID)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}

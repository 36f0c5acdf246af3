package vlive

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SessionCache keeps signed-in sessions keyed by email so repeated lookups
// do not re-authenticate (the platform bans accounts over frequent login
// attempts).
type SessionCache struct {
	client *Client
	cache  *expirable.LRU[string, *Session]
}

// NewSessionCache builds a cache holding up to 128 sessions for ttl each
// (15 minutes when zero).
func (c *Client) NewSessionCache(ttl time.Duration) *SessionCache {
	if ttl == 0 {
		ttl = time.Minute * 15
	}
	return &SessionCache{
		client: c,
		cache:  expirable.NewLRU[string, *Session](128, nil, ttl),
	}
}

// Get returns the cached session for email, signing in on a miss.
func (s *SessionCache) Get(ctx context.Context, email, pwd string) (*Session, error) {
	cached, hit := s.cache.Get(email)
	if hit {
		return cached, nil
	}

	session, err := s.client.SignIn(ctx, email, pwd, false)
	if err != nil {
		return nil, err
	}
	s.cache.Add(email, session)
	return session, nil
}

// Evict drops the cached session for email, forcing the next Get to sign
// in again.
func (s *SessionCache) Evict(email string) {
	s.cache.Remove(email)
}

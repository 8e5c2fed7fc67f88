package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"asesor-legal-be/pkg/store"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions expire after an hour of inactivity; expired items are purged
	// every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// GetOrCreate returns the session for the ID, creating it on first use. Every
// access refreshes the expiration.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	if x, found := r.cache.Get(sessionID); found {
		session := x.(*store.Session)
		r.cache.Set(sessionID, session, cache.DefaultExpiration)
		return session
	}
	session := store.NewSession(sessionID)
	r.cache.Set(sessionID, session, cache.DefaultExpiration)
	return session
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

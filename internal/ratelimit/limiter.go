package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Store manages per-client rate limiters: client key -> rate limiter.
// A nil *Store allows everything.
type Store struct {
	clients      map[string]*client
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
	now          func() time.Time
}

// NewStore returns nil when perSecond is zero, which disables limiting
func NewStore(perSecond float64, burst int) *Store {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &Store{
		clients:      make(map[string]*client),
		defaultRate:  rate.Limit(perSecond),
		defaultBurst: burst,
		now:          time.Now,
	}
}

func (s *Store) GetLimiter(key string) *rate.Limiter {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.clients[key]
	if !exists {
		c = &client{limiter: rate.NewLimiter(s.defaultRate, s.defaultBurst)}
		s.clients[key] = c
	}
	c.lastSeen = s.now()
	return c.limiter
}

// Allow reports whether key may perform one more request now
func (s *Store) Allow(key string) bool {
	limiter := s.GetLimiter(key)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// Prune forgets clients idle for at least maxIdle and returns how many were removed.
// A forgotten client starts again with a full burst.
func (s *Store) Prune(maxIdle time.Duration) int {
	if s == nil {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for key, c := range s.clients {
		if !c.lastSeen.After(cutoff) {
			delete(s.clients, key)
			removed++
		}
	}
	return removed
}

// RunPruner calls Prune every interval until ctx is done
func (s *Store) RunPruner(ctx context.Context, interval, maxIdle time.Duration) {
	if s == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Prune(maxIdle)
		}
	}
}

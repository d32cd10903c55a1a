package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSweepSchedule is how often expired in-memory sessions are purged
const DefaultSweepSchedule = "@every 10m"

type memoryEntry struct {
	userID    int
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
	sweeper  *cron.Cron
	logger   *zap.Logger
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore(ttl time.Duration, logger *zap.Logger) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// StartSweeper schedules Sweep with the given cron spec
func (s *MemoryStore) StartSweeper(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if n := s.Sweep(); n > 0 {
			s.logger.Debug("expired sessions purged", zap.Int("count", n))
		}
	}); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", spec, err)
	}
	c.Start()
	s.sweeper = c
	return nil
}

// Create issues a new session for the user
func (s *MemoryStore) Create(ctx context.Context, userID int) (string, error) {
	token := newToken()

	s.mu.Lock()
	s.sessions[token] = memoryEntry{userID: userID, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return token, nil
}

// Resolve returns the user bound to the token
func (s *MemoryStore) Resolve(ctx context.Context, token string) (int, bool, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return 0, false, nil
	}
	if !s.now().Before(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return 0, false, nil
	}

	return entry.userID, true, nil
}

// Destroy removes the session
func (s *MemoryStore) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// Sweep drops expired sessions and returns how many were removed
func (s *MemoryStore) Sweep() int {
	now := s.now()
	removed := 0

	s.mu.Lock()
	defer s.mu.Unlock()
	for token, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}

	return removed
}

// Len returns the number of stored sessions, expired ones included
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the sweeper
func (s *MemoryStore) Close() error {
	if s.sweeper != nil {
		<-s.sweeper.Stop().Done()
		s.sweeper = nil
	}
	return nil
}

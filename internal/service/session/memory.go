package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/domain"
)

// MemoryStore keeps conversation contexts in process memory. Retention is
// enforced lazily on write via Cleanup.
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string]*domain.ConversationContext
	retention time.Duration
	logger    *zap.Logger

	// now is swappable for retention tests
	now func() time.Time
}

func NewMemoryStore(retention time.Duration, logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		sessions:  make(map[string]*domain.ConversationContext),
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}
}

// Get returns a copy with its own slice backing. Callers mutate the copy
// freely and swap it back in with Put; concurrent writers for the same
// session last-write-win without racing.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (*domain.ConversationContext, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.sessions[sessionID]
	if !ok {
		return nil, false, nil
	}
	return cloneContext(conv), true, nil
}

func (s *MemoryStore) Put(_ context.Context, conv *domain.ConversationContext) error {
	copied := cloneContext(conv)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[conv.SessionID] = copied
	return nil
}

// cloneContext copies the slice backing of a context. Turns are immutable
// once created, so the turn values themselves are safe to share.
func cloneContext(conv *domain.ConversationContext) *domain.ConversationContext {
	copied := *conv
	copied.History = append([]domain.ConversationTurn(nil), conv.History...)
	copied.TopicProgression = append([]string(nil), conv.TopicProgression...)
	return &copied
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *MemoryStore) Cleanup(_ context.Context) (int, error) {
	cutoff := s.now().Add(-s.retention)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for sessionID, conv := range s.sessions {
		last := conv.LastActivity()
		if !last.IsZero() && last.Before(cutoff) {
			delete(s.sessions, sessionID)
			removed++
		}
	}

	if removed > 0 {
		s.logger.Debug("Evicted idle sessions", zap.Int("count", removed))
	}
	return removed, nil
}

// Package session tracks per-session conversation context: history, tone,
// topic progression, and expertise inference, with pluggable storage.
package session

import (
	"context"

	"github.com/kapu/contract-assistant-go/internal/domain"
)

// ContextStore persists conversation contexts keyed by session ID.
// Implementations must be safe for concurrent use: Get returns a value the
// caller owns and may mutate, and Put replaces the stored context wholesale.
// Concurrent writers for one session resolve last-write-wins.
type ContextStore interface {
	// Get returns an owned copy of the context, or ok=false when absent
	Get(ctx context.Context, sessionID string) (*domain.ConversationContext, bool, error)

	// Put stores or replaces the context for a session
	Put(ctx context.Context, conv *domain.ConversationContext) error

	// Delete removes a session's context
	Delete(ctx context.Context, sessionID string) error

	// Cleanup evicts sessions idle longer than the retention period and
	// returns how many were removed
	Cleanup(ctx context.Context) (int, error)
}

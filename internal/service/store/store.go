// Package store persists contract documents. Memory and PostgreSQL
// implementations share the DocumentStore interface.
package store

import (
	"context"

	"github.com/kapu/contract-assistant-go/internal/domain"
)

// DocumentStore is the persistence boundary for uploaded documents.
type DocumentStore interface {
	Get(ctx context.Context, id string) (*domain.Document, bool, error)
	Put(ctx context.Context, doc *domain.Document) error
	List(ctx context.Context) ([]*domain.Document, error)
	Delete(ctx context.Context, id string) error
}

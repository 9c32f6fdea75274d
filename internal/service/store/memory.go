package store

import (
	"context"
	"sort"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/domain"
	apperrors "github.com/kapu/contract-assistant-go/pkg/errors"
)

// MemoryStore keeps documents in an in-process cache. Documents never expire;
// the cache gives us concurrency-safe access without extra locking.
type MemoryStore struct {
	cache  *gocache.Cache
	logger *zap.Logger
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		cache:  gocache.New(gocache.NoExpiration, 0),
		logger: logger,
	}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*domain.Document, bool, error) {
	value, ok := m.cache.Get(id)
	if !ok {
		return nil, false, nil
	}

	doc, ok := value.(*domain.Document)
	if !ok {
		return nil, false, apperrors.NewStoreError("unexpected cache entry type", "get", id, nil)
	}

	copied := *doc
	return &copied, true, nil
}

func (m *MemoryStore) Put(ctx context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return apperrors.NewStoreError("document requires an ID", "put", "", nil)
	}

	copied := *doc
	m.cache.Set(doc.ID, &copied, gocache.NoExpiration)
	return nil
}

func (m *MemoryStore) List(ctx context.Context) ([]*domain.Document, error) {
	items := m.cache.Items()

	docs := make([]*domain.Document, 0, len(items))
	for _, item := range items {
		if doc, ok := item.Object.(*domain.Document); ok {
			copied := *doc
			docs = append(docs, &copied)
		}
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.cache.Delete(id)
	return nil
}

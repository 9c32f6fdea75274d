package store

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/domain"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	doc := &domain.Document{ID: "d1", Title: "Service Agreement", Text: "The client shall pay.", LegalType: "contract"}
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := s.Get(ctx, "d1")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if got.Title != "Service Agreement" {
		t.Fatalf("unexpected title: %q", got.Title)
	}

	// Mutating the returned copy must not leak into the store
	got.Title = "mutated"
	again, _, _ := s.Get(ctx, "d1")
	if again.Title != "Service Agreement" {
		t.Fatalf("store entry mutated through returned copy")
	}
}

func TestMemoryStoreMissingAndDelete(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	s.Put(ctx, &domain.Document{ID: "d1", Text: "x"})
	if err := s.Delete(ctx, "d1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "d1"); ok {
		t.Fatalf("document survived delete")
	}
}

func TestMemoryStoreListSorted(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	s.Put(ctx, &domain.Document{ID: "b", Text: "x"})
	s.Put(ctx, &domain.Document{ID: "a", Text: "y"})

	docs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != "a" || docs[1].ID != "b" {
		t.Fatalf("unexpected list order: %v", docs)
	}
}

func TestMemoryStorePutRequiresID(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	if err := s.Put(context.Background(), &domain.Document{}); err == nil {
		t.Fatalf("expected error for missing ID")
	}
}

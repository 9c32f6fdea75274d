package router

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/service/classifier"
	"github.com/kapu/contract-assistant-go/internal/service/mta"
	"github.com/kapu/contract-assistant-go/internal/service/respond"
	"github.com/kapu/contract-assistant-go/internal/service/session"
	"github.com/kapu/contract-assistant-go/internal/service/store"
)

const sampleMTAText = `MATERIAL TRANSFER AGREEMENT

Provider: University Research Institute
Recipient: Biotech Labs LLC

The provider transfers the cell line to the recipient for research use only.
Derivatives remain subject to the provider's intellectual property rights.
The recipient shall not distribute the material to third parties.
Publication of results requires prior review. Liability is limited to direct damages.`

func newTestRouter(t *testing.T) (*Router, store.DocumentStore) {
	t.Helper()
	logger := zap.NewNop()

	docs := store.NewMemoryStore(logger)
	sessions := session.NewMemoryStore(24*time.Hour, logger)

	return New(
		classifier.New(logger),
		respond.NewSystem(t.TempDir(), logger),
		session.NewTracker(sessions, logger),
		mta.NewSpecialist(logger),
		nil,
		docs,
		logger,
	), docs
}

func TestRouteNeverEmpty(t *testing.T) {
	r, _ := newTestRouter(t)
	ctx := context.Background()

	inputs := []string{
		"",
		"What does the liability clause mean?",
		"asdf qwerty zxcv",
		strings.Repeat("liability ", 300),
		"🤔🤔🤔",
	}
	for _, input := range inputs {
		resp := r.Route(ctx, input, "", "s1")
		if strings.TrimSpace(resp.Content) == "" {
			t.Fatalf("empty response for input %q", input)
		}
		if resp.Confidence < 0 || resp.Confidence > 1 {
			t.Fatalf("confidence out of range for %q: %f", input, resp.Confidence)
		}
	}
}

func TestRouteOffTopicRedirects(t *testing.T) {
	r, _ := newTestRouter(t)

	resp := r.Route(context.Background(), "What's the weather like today?", "", "s1")
	if resp.Category != domain.CategoryFallback {
		t.Fatalf("expected fallback category, got %s", resp.Category)
	}
	if !strings.Contains(resp.Content, "contract") {
		t.Fatalf("expected redirection toward contracts: %q", resp.Content)
	}
	if len(resp.Suggestions) == 0 {
		t.Fatalf("expected redirection suggestions")
	}
}

func TestRouteCasualConversational(t *testing.T) {
	r, _ := newTestRouter(t)

	resp := r.Route(context.Background(), "hey there! how are you doing?", "", "s1")
	if resp.Category != domain.CategoryCasual {
		t.Fatalf("expected casual category, got %s", resp.Category)
	}
	if resp.Tone != domain.ToneConversational {
		t.Fatalf("expected conversational tone, got %s", resp.Tone)
	}
}

func TestRouteMTAEnrichment(t *testing.T) {
	r, docs := newTestRouter(t)
	ctx := context.Background()

	docs.Put(ctx, &domain.Document{
		ID:    "mta-1",
		Title: "Material Transfer Agreement",
		Text:  sampleMTAText,
	})

	resp := r.Route(ctx, "What about derivatives of the original material?", "mta-1", "s1")
	if !strings.Contains(resp.Content, "MTA-Specific Context") &&
		!strings.Contains(resp.Content, "Research Implications") {
		t.Fatalf("expected MTA enrichment in response: %q", resp.Content)
	}
	if len(resp.Suggestions) > 5 {
		t.Fatalf("suggestions over cap: %v", resp.Suggestions)
	}
}

func TestRouteDocumentSuggestionsKeyed(t *testing.T) {
	r, docs := newTestRouter(t)
	ctx := context.Background()

	docs.Put(ctx, &domain.Document{
		ID:   "c1",
		Text: "The client shall pay $5000 monthly. Either party may terminate with notice.",
	})

	resp := r.Route(ctx, "Summarize this agreement for me", "c1", "s1")
	if len(resp.Suggestions) == 0 || len(resp.Suggestions) > 5 {
		t.Fatalf("unexpected suggestion count: %v", resp.Suggestions)
	}
}

func TestRouteRecordsTurns(t *testing.T) {
	r, _ := newTestRouter(t)
	ctx := context.Background()

	r.Route(ctx, "What does the liability clause mean?", "", "s1")
	r.Route(ctx, "And what about termination?", "", "s1")

	conv, err := r.tracker.Get(ctx, "s1")
	if err != nil || conv == nil {
		t.Fatalf("expected tracked session, got conv=%v err=%v", conv, err)
	}
	if len(conv.History) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(conv.History))
	}
	if conv.History[0].Intent == nil || conv.History[0].Strategy == nil {
		t.Fatalf("turn missing intent or strategy")
	}
}

func TestRouteSatisfactionShiftsTone(t *testing.T) {
	r, _ := newTestRouter(t)
	ctx := context.Background()

	r.Route(ctx, "What does the liability clause say?", "", "s1")
	r.Route(ctx, "thanks, that was perfect and really clear", "", "s1")

	resp := r.Route(ctx, "What about the termination clause?", "", "s1")
	if resp.Tone != domain.ToneConversational {
		t.Fatalf("expected conversational tone after satisfaction signals, got %s", resp.Tone)
	}

	found := false
	for _, used := range resp.ContextUsed {
		if used == "satisfaction_tone" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected satisfaction_tone in %v", resp.ContextUsed)
	}
}

func TestApplyFlowSuggestionsTopsUpSparseLists(t *testing.T) {
	flow := &domain.FlowSummary{
		SuggestedDirections: []string{"Explore key risk factors in the agreement"},
	}

	sparse := &domain.StructuredResponse{Suggestions: []string{"one"}}
	applyFlowSuggestions(sparse, flow)
	if len(sparse.Suggestions) != 2 {
		t.Fatalf("expected flow direction appended, got %v", sparse.Suggestions)
	}

	full := &domain.StructuredResponse{Suggestions: []string{"a", "b", "c"}}
	applyFlowSuggestions(full, flow)
	if len(full.Suggestions) != 3 {
		t.Fatalf("full list must not grow, got %v", full.Suggestions)
	}

	applyFlowSuggestions(sparse, nil)
	if len(sparse.Suggestions) != 2 {
		t.Fatalf("nil flow must be a no-op, got %v", sparse.Suggestions)
	}
}

func TestDetermineStrategy(t *testing.T) {
	cases := []struct {
		intent  domain.Intent
		handler domain.HandlerType
	}{
		{domain.Intent{Primary: domain.IntentDocumentRelated, DocumentRelevance: 0.9}, domain.HandlerContractEngine},
		{domain.Intent{Primary: domain.IntentContractGeneral}, domain.HandlerGeneralKnowledge},
		{domain.Intent{Primary: domain.IntentOffTopic}, domain.HandlerFallback},
		{domain.Intent{Primary: domain.IntentCasual}, domain.HandlerCasual},
	}
	for _, tc := range cases {
		strategy := determineStrategy(tc.intent)
		if strategy.Handler != tc.handler {
			t.Fatalf("intent %s: expected %s, got %s", tc.intent.Primary, tc.handler, strategy.Handler)
		}
	}

	casual := determineStrategy(domain.Intent{Primary: domain.IntentDocumentRelated, Casualness: 0.8})
	if casual.TonePreference != domain.ToneConversational {
		t.Fatalf("high casualness should prefer conversational tone")
	}
}

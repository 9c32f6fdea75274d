package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/domain"
)

func professionalResponse(content string) domain.StructuredResponse {
	return domain.StructuredResponse{
		Content:   content,
		Pattern:   domain.PatternDocument,
		Category:  domain.CategoryDocumentAnalysis,
		Tone:      domain.ToneProfessional,
		Timestamp: time.Now(),
	}
}

func newTestTracker(t *testing.T) (*Tracker, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore(24*time.Hour, zap.NewNop())
	return NewTracker(store, zap.NewNop()), store
}

func TestRecordTurnCreatesSession(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	err := tracker.RecordTurn(ctx, "s1", "What about liability?", professionalResponse("Liability is limited."), nil, nil)
	if err != nil {
		t.Fatalf("RecordTurn failed: %v", err)
	}

	conv, err := tracker.Get(ctx, "s1")
	if err != nil || conv == nil {
		t.Fatalf("expected session, got conv=%v err=%v", conv, err)
	}
	if len(conv.History) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(conv.History))
	}
	if conv.ExpertiseLevel != domain.ExpertiseIntermediate {
		t.Fatalf("expected intermediate default, got %s", conv.ExpertiseLevel)
	}
	if len(conv.TopicProgression) == 0 {
		t.Fatalf("expected liability topic tracked, got %v", conv.TopicProgression)
	}
}

func TestHistoryLengthCapped(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		question := fmt.Sprintf("Question %d about payment terms?", i)
		if err := tracker.RecordTurn(ctx, "s1", question, professionalResponse("ok"), nil, nil); err != nil {
			t.Fatalf("RecordTurn %d failed: %v", i, err)
		}
	}

	conv, _ := tracker.Get(ctx, "s1")
	if len(conv.History) != 50 {
		t.Fatalf("expected capped history of 50, got %d", len(conv.History))
	}
	if conv.History[len(conv.History)-1].Question != "Question 59 about payment terms?" {
		t.Fatalf("newest turn missing: %s", conv.History[len(conv.History)-1].Question)
	}
}

func TestConcurrentRecordTurnsSameSession(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	if err := tracker.RecordTurn(ctx, "s1", "What about liability?", professionalResponse("ok"), nil, nil); err != nil {
		t.Fatalf("seed RecordTurn failed: %v", err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				question := fmt.Sprintf("Worker %d question %d about payment?", worker, i)
				if err := tracker.RecordTurn(ctx, "s1", question, professionalResponse("ok"), nil, nil); err != nil {
					t.Errorf("concurrent RecordTurn failed: %v", err)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	conv, err := tracker.Get(ctx, "s1")
	if err != nil || conv == nil {
		t.Fatalf("expected session after concurrent writes, got conv=%v err=%v", conv, err)
	}
	if len(conv.History) == 0 || len(conv.History) > 50 {
		t.Fatalf("history out of bounds after concurrent writes: %d", len(conv.History))
	}
}

func TestGetReturnsIndependentCopy(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	tracker.RecordTurn(ctx, "s1", "What about liability?", professionalResponse("ok"), nil, nil)

	conv, _ := tracker.Get(ctx, "s1")
	conv.History[0].Question = "mutated"
	conv.TopicProgression = append(conv.TopicProgression, "bogus")

	again, _ := tracker.Get(ctx, "s1")
	if again.History[0].Question != "What about liability?" {
		t.Fatalf("stored history mutated through returned copy: %q", again.History[0].Question)
	}
	for _, topic := range again.TopicProgression {
		if topic == "bogus" {
			t.Fatalf("stored topics mutated through returned copy")
		}
	}
}

func TestExpertiseInference(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	tracker.RecordTurn(ctx, "expert", "How does the indemnification interact with the liability cap and governing law?", professionalResponse("ok"), nil, nil)
	conv, _ := tracker.Get(ctx, "expert")
	if conv.ExpertiseLevel != domain.ExpertiseExpert {
		t.Fatalf("expected expert, got %s", conv.ExpertiseLevel)
	}

	tracker.RecordTurn(ctx, "novice", "Can you explain this in simple terms? I don't understand", professionalResponse("ok"), nil, nil)
	conv, _ = tracker.Get(ctx, "novice")
	if conv.ExpertiseLevel != domain.ExpertiseBeginner {
		t.Fatalf("expected beginner, got %s", conv.ExpertiseLevel)
	}
}

func TestRetentionEviction(t *testing.T) {
	store := NewMemoryStore(24*time.Hour, zap.NewNop())
	tracker := NewTracker(store, zap.NewNop())
	ctx := context.Background()

	tracker.RecordTurn(ctx, "old", "What about liability?", professionalResponse("ok"), nil, nil)

	// Jump the store clock past the retention window
	store.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	removed, err := store.Cleanup(ctx)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 eviction, got %d", removed)
	}

	conv, _ := tracker.Get(ctx, "old")
	if conv != nil {
		t.Fatalf("expected session evicted, got %+v", conv)
	}
}

func TestDetectPatternsDeepDive(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	questions := []string{
		"What does the liability clause say?",
		"How is liability limited here?",
		"Does liability cover indirect damages?",
		"Who carries liability for third parties?",
	}
	for _, q := range questions {
		tracker.RecordTurn(ctx, "s1", q, professionalResponse("ok"), nil, nil)
	}

	patterns, err := tracker.DetectPatterns(ctx, "s1")
	if err != nil {
		t.Fatalf("DetectPatterns failed: %v", err)
	}

	found := false
	for _, p := range patterns {
		if p == domain.PatternDeepDive {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected deep_dive in %v", patterns)
	}
}

func TestDetectPatternsFrustration(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	tracker.RecordTurn(ctx, "s1", "What does the payment clause mean?", professionalResponse("ok"), nil, nil)
	tracker.RecordTurn(ctx, "s1", "I'm still confused, this is not clear at all", professionalResponse("ok"), nil, nil)

	patterns, _ := tracker.DetectPatterns(ctx, "s1")
	found := false
	for _, p := range patterns {
		if p == domain.PatternFrustration {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected potential_frustration in %v", patterns)
	}
}

func TestAnalyzeFlowFocused(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		tracker.RecordTurn(ctx, "s1", "Tell me more about termination conditions", professionalResponse("ok"), nil, nil)
	}

	flow, err := tracker.AnalyzeFlow(ctx, "s1")
	if err != nil {
		t.Fatalf("AnalyzeFlow failed: %v", err)
	}
	if flow == nil {
		t.Fatalf("expected flow summary")
	}
	if flow.FlowType != domain.FlowFocused {
		t.Fatalf("expected focused flow, got %s", flow.FlowType)
	}
	if flow.TopicCoherence <= 0 {
		t.Fatalf("expected positive coherence, got %f", flow.TopicCoherence)
	}
	if len(flow.SuggestedDirections) == 0 || len(flow.SuggestedDirections) > 3 {
		t.Fatalf("unexpected directions: %v", flow.SuggestedDirections)
	}
}

func TestAnalyzeFlowNeedsTwoTurns(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	tracker.RecordTurn(ctx, "s1", "What about liability?", professionalResponse("ok"), nil, nil)

	flow, err := tracker.AnalyzeFlow(ctx, "s1")
	if err != nil {
		t.Fatalf("AnalyzeFlow failed: %v", err)
	}
	if flow != nil {
		t.Fatalf("expected nil summary for single-turn session")
	}
}

func TestSuggestToneDefaultsProfessional(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	if tone := tracker.SuggestTone(ctx, "unknown", "What about liability?"); tone != domain.ToneProfessional {
		t.Fatalf("expected professional for unknown session, got %s", tone)
	}
}

func TestSuggestToneKeepsCasualStreak(t *testing.T) {
	tracker, _ := newTestTracker(t)
	ctx := context.Background()

	casual := domain.StructuredResponse{
		Content: "sure thing", Tone: domain.ToneConversational, Timestamp: time.Now(),
	}
	tracker.RecordTurn(ctx, "s1", "hey what's up with this contract", casual, nil, nil)
	tracker.RecordTurn(ctx, "s1", "cool, and the payment part?", casual, nil, nil)

	tone := tracker.SuggestTone(ctx, "s1", "thanks! what about termination lol")
	if tone != domain.ToneConversational {
		t.Fatalf("expected conversational, got %s", tone)
	}
}

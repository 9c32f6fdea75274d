package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/util"
)

type stubEngine struct {
	name   string
	result string
	err    error
	calls  int
}

func (s *stubEngine) Name() string { return s.name }

func (s *stubEngine) Analyze(ctx context.Context, question, documentText string) (string, error) {
	s.calls++
	return s.result, s.err
}

func TestManagerFallsBackToSecondEngine(t *testing.T) {
	primary := &stubEngine{name: "primary", err: errors.New("boom")}
	fallback := &stubEngine{name: "fallback", result: "analysis"}
	m := NewManager([]Engine{primary, fallback}, zap.NewNop())

	got, err := m.Analyze(context.Background(), "What about liability?", "doc")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if got != "analysis" {
		t.Fatalf("expected fallback result, got %q", got)
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Fatalf("unexpected call counts: primary=%d fallback=%d", primary.calls, fallback.calls)
	}
}

func TestManagerOpensCircuitAfterRepeatedFailures(t *testing.T) {
	failing := &stubEngine{name: "failing", err: errors.New("boom")}
	m := NewManager([]Engine{failing}, zap.NewNop())

	for i := 0; i < constants.Engine.FailureThreshold; i++ {
		if _, err := m.Analyze(context.Background(), "q", ""); err == nil {
			t.Fatalf("expected failure on attempt %d", i)
		}
	}

	before := failing.calls
	if _, err := m.Analyze(context.Background(), "q", ""); err == nil {
		t.Fatalf("expected error with open circuit")
	}
	if failing.calls != before {
		t.Fatalf("provider called while circuit open")
	}
}

func TestManagerStatusReportsOpenCircuit(t *testing.T) {
	failing := &stubEngine{name: "failing", err: errors.New("boom")}
	m := NewManager([]Engine{failing}, zap.NewNop())

	for i := 0; i < constants.Engine.FailureThreshold; i++ {
		m.Analyze(context.Background(), "q", "")
	}

	status := m.Status()
	st, ok := status["failing"]
	if !ok {
		t.Fatalf("expected status entry for failing provider, got %v", status)
	}
	if st.State != util.CircuitStateOpen {
		t.Fatalf("expected open circuit, got %s", st.State)
	}
	if st.FailureCount < constants.Engine.FailureThreshold {
		t.Fatalf("expected failure count >= %d, got %d", constants.Engine.FailureThreshold, st.FailureCount)
	}
}

func TestManagerUnavailableWithoutEngines(t *testing.T) {
	m := NewManager(nil, zap.NewNop())
	if m.Available() {
		t.Fatalf("empty manager must not be available")
	}
	if _, err := m.Analyze(context.Background(), "q", ""); err == nil {
		t.Fatalf("expected error from empty manager")
	}

	var nilManager *Manager
	if nilManager.Available() {
		t.Fatalf("nil manager must not be available")
	}
}

func TestBuildPromptTruncatesDocument(t *testing.T) {
	long := strings.Repeat("liability clause text ", 2000)
	prompt := buildPrompt("What about liability?", long)

	if len(prompt) > maxDocumentPromptChars+500 {
		t.Fatalf("prompt not truncated: %d chars", len(prompt))
	}
	if !strings.Contains(prompt, "Question: What about liability?") {
		t.Fatalf("question missing from prompt")
	}
}

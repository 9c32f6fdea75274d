package classifier

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/domain"
)

func TestClassifyDocumentQuestion(t *testing.T) {
	c := New(zap.NewNop())

	intent := c.Classify("What are the payment terms in this agreement?", nil)
	if intent.Primary != domain.IntentDocumentRelated {
		t.Fatalf("expected document_related, got %s", intent.Primary)
	}
	if intent.Confidence <= 0 || intent.Confidence > 1 {
		t.Fatalf("confidence out of range: %f", intent.Confidence)
	}
	if intent.RequiresFallback {
		t.Fatalf("document question must not require fallback")
	}
}

func TestClassifyStyleRequestIsOffTopic(t *testing.T) {
	c := New(zap.NewNop())

	intent := c.Classify("Can you explain this agreement in the style of a cooking recipe?", nil)
	if intent.Primary != domain.IntentOffTopic && intent.Primary != domain.IntentCasual {
		t.Fatalf("expected off_topic or casual, got %s", intent.Primary)
	}
	if !intent.RequiresFallback {
		t.Fatalf("style request must require fallback")
	}
}

func TestClassifyDefinitionQuestionIsContractGeneral(t *testing.T) {
	c := New(zap.NewNop())

	intent := c.Classify("What is an MTA?", nil)
	if intent.Primary != domain.IntentContractGeneral {
		t.Fatalf("expected contract_general, got %s", intent.Primary)
	}
}

func TestClassifyCasualGreeting(t *testing.T) {
	c := New(zap.NewNop())

	intent := c.Classify("hey thanks, cool!", nil)
	if intent.Primary != domain.IntentCasual {
		t.Fatalf("expected casual, got %s", intent.Primary)
	}
	if !intent.RequiresFallback {
		t.Fatalf("casual question must require fallback")
	}
}

func TestClassifyEmptyInputUsesAbsorbingDefault(t *testing.T) {
	c := New(zap.NewNop())

	intent := c.Classify("", nil)
	if intent.Primary != domain.IntentDocumentRelated {
		t.Fatalf("expected absorbing default document_related, got %s", intent.Primary)
	}
	if intent.Confidence != 1.0 {
		t.Fatalf("expected confidence 1.0 for absorbing default, got %f", intent.Confidence)
	}
}

func TestClassifyNeverPanicsOnHostileInput(t *testing.T) {
	c := New(zap.NewNop())

	inputs := []string{
		"",
		"\x00\x01\x02",
		strings.Repeat("liability ", 10000),
		"???!!!",
		"계약서의 책임 조항은 무엇입니까",
	}

	for _, input := range inputs {
		intent := c.Classify(input, nil)
		if intent.Confidence < 0 || intent.Confidence > 1 {
			t.Fatalf("confidence out of range for %q: %f", input[:min(len(input), 20)], intent.Confidence)
		}
	}
}

func TestMTAExpertiseDetection(t *testing.T) {
	c := New(zap.NewNop())

	intent := c.Classify("Who owns derivatives of the original material?", nil)
	if !intent.RequiresMTAExpertise {
		t.Fatalf("expected MTA expertise requirement")
	}
}

func TestDetectDocumentRelevance(t *testing.T) {
	c := New(zap.NewNop())

	doc := &domain.Document{
		ID:        "doc-1",
		Title:     "Service Agreement",
		Text:      "Payment: $1000 monthly. Termination requires 30 days notice.",
		LegalType: "contract",
	}

	relevant := c.DetectDocumentRelevance("What are the payment and termination terms?", doc)
	irrelevant := c.DetectDocumentRelevance("favorite pasta recipe ideas", doc)

	if relevant <= irrelevant {
		t.Fatalf("expected higher relevance for on-topic question: %f vs %f", relevant, irrelevant)
	}
	if c.DetectDocumentRelevance("anything", nil) != 0 {
		t.Fatalf("nil document must score zero")
	}
}

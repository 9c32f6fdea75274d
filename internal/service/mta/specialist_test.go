package mta

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/domain"
)

const sampleMTA = `MATERIAL TRANSFER AGREEMENT

Provider: University Research Institute
Recipient: Biotech Labs LLC

The provider agrees to transfer the cell line and plasmid samples to the
recipient for research purposes. The material shall be used for research use
only and shall not be used for commercial purposes. Derivatives and
modifications remain subject to the provider's intellectual property rights.
The recipient shall not distribute the original material to third parties.
Publication of results requires prior review by the provider. This academic
collaboration supports ongoing industry research.`

func newSpecialist() *Specialist {
	return NewSpecialist(zap.NewNop())
}

func sampleDoc() *domain.Document {
	return &domain.Document{
		ID:        "mta-1",
		Title:     "Material Transfer Agreement",
		Text:      sampleMTA,
		LegalType: "mta",
	}
}

func TestIsMTADocument(t *testing.T) {
	if !IsMTADocument(sampleDoc()) {
		t.Fatalf("expected MTA detection for sample document")
	}
	if IsMTADocument(nil) {
		t.Fatalf("nil document must not be an MTA")
	}
	if IsMTADocument(&domain.Document{ID: "x", Title: "Lease", Text: "The tenant shall pay rent monthly."}) {
		t.Fatalf("lease must not be detected as MTA")
	}
}

func TestAnalyzeContextExtractsParties(t *testing.T) {
	ctx := newSpecialist().AnalyzeContext(sampleDoc())

	if !strings.Contains(ctx.ProviderEntity, "university research institute") {
		t.Fatalf("provider not extracted: %q", ctx.ProviderEntity)
	}
	if !strings.Contains(ctx.RecipientEntity, "biotech labs llc") {
		t.Fatalf("recipient not extracted: %q", ctx.RecipientEntity)
	}
	if len(ctx.MaterialTypes) == 0 {
		t.Fatalf("expected material types, got none")
	}
	if ctx.Collaboration != domain.CollaborationHybrid {
		t.Fatalf("expected hybrid collaboration, got %s", ctx.Collaboration)
	}
	if len(ctx.KeyRestrictions) == 0 || len(ctx.KeyRestrictions) > 3 {
		t.Fatalf("unexpected restrictions: %v", ctx.KeyRestrictions)
	}
}

func TestProvideExpertiseOnDerivatives(t *testing.T) {
	s := newSpecialist()
	mtaCtx := s.AnalyzeContext(sampleDoc())

	insight := s.ProvideExpertise("What about derivatives of the original material?", mtaCtx)

	found := false
	for _, implication := range insight.ResearchImplications {
		if strings.Contains(strings.ToLower(implication), "derivative") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected derivative implication in %v", insight.ResearchImplications)
	}
	if len(insight.ConceptExplanations) == 0 {
		t.Fatalf("expected glossary hits for derivatives question")
	}
	if len(insight.SuggestedQuestions) > 3 {
		t.Fatalf("suggested questions over cap: %v", insight.SuggestedQuestions)
	}
}

func TestSuggestConsiderationsDefaults(t *testing.T) {
	s := newSpecialist()

	suggestions := s.SuggestConsiderations("nothing notable here")
	if len(suggestions) != 3 {
		t.Fatalf("expected 3 default suggestions, got %d", len(suggestions))
	}

	loaded := s.SuggestConsiderations("derivative publication commercial liability confidential termination")
	if len(loaded) != 5 {
		t.Fatalf("expected cap of 5, got %d", len(loaded))
	}
}

func TestResearchContext(t *testing.T) {
	s := newSpecialist()

	got := s.ResearchContext("The material is for research use only.")
	if !strings.Contains(got, "non-commercial research") {
		t.Fatalf("unexpected research-use-only context: %q", got)
	}

	fallback := s.ResearchContext("Force majeure applies.")
	if !strings.Contains(fallback, "institutional policies") {
		t.Fatalf("unexpected fallback context: %q", fallback)
	}
}

func TestExplainConceptsFallback(t *testing.T) {
	s := newSpecialist()

	explanations := s.ExplainConcepts([]string{"research use only", "quantum clause"})
	if !strings.Contains(explanations["quantum clause"], "In MTA context") {
		t.Fatalf("expected generic fallback, got %q", explanations["quantum clause"])
	}
	if strings.Contains(explanations["research use only"], "In MTA context") {
		t.Fatalf("known glossary term should use its explanation")
	}
}

package respond

import (
	"fmt"
	"strings"
	"time"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/util"
)

const (
	headerStatus      = "### ℹ️ Status"
	headerGeneralRule = "### 📚 General Rule"
	headerApplication = "### 🎯 Application"
)

func (s *System) synthesizeGeneralLegal(processed domain.ProcessedInput, docText string) domain.StructuredResponse {
	status := documentCoverageStatus(processed.Original, docText)
	rule := generalLegalRule(processed.Original)
	application := practicalApplication(processed.Original)

	content := fmt.Sprintf("%s\n%s\n\n%s\n%s\n\n%s\n%s",
		headerStatus, status,
		headerGeneralRule, rule,
		headerApplication, application)

	return domain.StructuredResponse{
		Content:     content,
		Pattern:     domain.PatternGeneralLegal,
		Category:    domain.CategoryGeneralKnowledge,
		Confidence:  processed.Confidence,
		Sources:     []string{"general_legal_knowledge"},
		Suggestions: generalLegalSuggestions(),
		Tone:        domain.ToneProfessional,
		Structured: map[string]any{
			"pattern":      domain.PatternGeneralLegal.String(),
			"status":       status,
			"general_rule": rule,
			"application":  application,
		},
		ContextUsed: []string{"general_knowledge"},
		Timestamp:   time.Now(),
	}
}

// documentCoverageStatus reports how directly the loaded document addresses
// the question, based on keyword coverage
func documentCoverageStatus(question, docText string) string {
	if docText == "" {
		return "No document is currently loaded for analysis."
	}

	contentLower := strings.ToLower(docText)
	questionWords := make([]string, 0, 8)
	for _, w := range strings.Fields(strings.ToLower(question)) {
		if len(w) > 3 {
			questionWords = append(questionWords, w)
		}
	}
	if len(questionWords) == 0 {
		return "Document analysis is limited, but here's general guidance:"
	}

	matches := 0
	for _, w := range questionWords {
		if strings.Contains(contentLower, w) {
			matches++
		}
	}

	coverage := float64(matches) / float64(len(questionWords))
	switch {
	case coverage > constants.Processing.DirectCoverageRatio:
		return "The document covers this topic directly."
	case coverage > constants.Processing.PartialCoverageRatio:
		return "The document has some related information, but this question goes beyond what's specifically covered."
	default:
		return "The document doesn't specifically address this question, but here's what typically applies:"
	}
}

func generalLegalRule(question string) string {
	lowered := strings.ToLower(question)

	switch {
	case util.ContainsAny(lowered, []string{"contract", "agreement", "binding"}):
		return "Contracts are legally binding agreements that require offer, acceptance, and consideration. Both parties must have the capacity to enter into the agreement."
	case util.ContainsAny(lowered, []string{"liability", "damages", "responsible"}):
		return "Legal liability typically requires proving duty, breach of duty, causation, and damages. Parties can limit liability through contract terms, subject to legal restrictions."
	case util.ContainsAny(lowered, []string{"breach", "violation", "default"}):
		return "Contract breaches can be material (fundamental) or minor. Remedies may include damages, specific performance, or contract termination, depending on the severity."
	case util.ContainsAny(lowered, []string{"termination", "terminate", "end"}):
		return "Contracts can typically be terminated by mutual agreement, completion of terms, breach by one party, or specific termination clauses. Notice requirements often apply."
	default:
		return "Contract law generally requires parties to act in good faith and deal fairly with each other. Specific terms control, but general legal principles provide the framework."
	}
}

func practicalApplication(question string) string {
	lowered := strings.ToLower(question)

	switch {
	case strings.Contains(lowered, "contract"):
		return "In practice: Ensure all agreements are in writing, clearly define terms, and include dispute resolution procedures. Keep records of all communications and performance."
	case strings.Contains(lowered, "liability"):
		return "In practice: Consider insurance coverage, include limitation of liability clauses where legally permissible, and implement risk management procedures."
	case strings.Contains(lowered, "breach"):
		return "In practice: Document any breaches immediately, attempt to resolve through communication first, and preserve evidence for potential legal action."
	case strings.Contains(lowered, "termination"):
		return "In practice: Follow notice requirements exactly, document reasons for termination, and ensure proper wind-down procedures are followed."
	default:
		return "In practice: Document everything, communicate clearly with all parties, and seek legal advice when uncertain about rights or obligations."
	}
}

func generalLegalSuggestions() []string {
	return []string{
		"How does this typically work in contracts?",
		"What are common practices in this area?",
		"What should I be careful about?",
		"Are there standard legal requirements?",
	}
}

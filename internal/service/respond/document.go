package respond

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/lexicon"
	"github.com/kapu/contract-assistant-go/internal/util"
)

// Section headers for the document analysis pattern. These are part of the
// response contract and survive tone adaptation untouched.
const (
	headerEvidence     = "### 📋 Evidence"
	headerPlainEnglish = "### 🔍 Plain English"
	headerImplications = "### ⚖️ Implications"
)

func (s *System) synthesizeDocument(processed domain.ProcessedInput, docText string) domain.StructuredResponse {
	evidence := extractEvidence(processed.Original, docText)
	plainEnglish := plainEnglishExplanation(processed.Original, evidence)
	implications := analyzeImplications(processed.Original)

	content := fmt.Sprintf("%s\n%s\n\n%s\n%s\n\n%s\n%s",
		headerEvidence, evidence,
		headerPlainEnglish, plainEnglish,
		headerImplications, implications)

	return domain.StructuredResponse{
		Content:     content,
		Pattern:     domain.PatternDocument,
		Category:    domain.CategoryDocumentAnalysis,
		Confidence:  processed.Confidence,
		Sources:     []string{"structured_document_analysis"},
		Suggestions: documentSuggestions(),
		Tone:        domain.ToneProfessional,
		Structured: map[string]any{
			"pattern":       domain.PatternDocument.String(),
			"evidence":      evidence,
			"plain_english": plainEnglish,
			"implications":  implications,
		},
		ContextUsed: []string{"document_content"},
		Timestamp:   time.Now(),
	}
}

// extractEvidence pulls sentences from the document that share keywords with
// the question, capped at the first few hits
func extractEvidence(question, docText string) string {
	if docText == "" {
		return "No document content available for evidence extraction."
	}

	questionWords := make([]string, 0, 8)
	for _, w := range strings.Fields(strings.ToLower(question)) {
		if len(w) > 3 {
			questionWords = append(questionWords, w)
		}
	}

	sentences := util.SplitSentences(docText)
	if len(sentences) > constants.Processing.EvidenceSentenceLimit {
		sentences = sentences[:constants.Processing.EvidenceSentenceLimit]
	}

	var hits []string
	for _, sentence := range sentences {
		lowered := strings.ToLower(sentence)
		for _, w := range questionWords {
			if strings.Contains(lowered, w) {
				hits = append(hits, sentence)
				break
			}
		}
		if len(hits) >= constants.Processing.EvidenceHitLimit {
			break
		}
	}

	if len(hits) == 0 {
		return "The document contains relevant information, but specific evidence for this question requires closer examination of the full text."
	}

	var b strings.Builder
	b.WriteString("Based on the document:")
	for _, hit := range hits {
		b.WriteString("\n- ")
		b.WriteString(hit)
	}
	return b.String()
}

// plainEnglishExplanation translates the legal terms present in the question
// or evidence into reader-friendly language
func plainEnglishExplanation(question, evidence string) string {
	questionLower := strings.ToLower(question)
	evidenceLower := strings.ToLower(evidence)

	terms := make([]string, 0, len(lexicon.PlainEnglishGlossary))
	for term := range lexicon.PlainEnglishGlossary {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	var relevant []string
	for _, term := range terms {
		if strings.Contains(questionLower, term) || strings.Contains(evidenceLower, term) {
			relevant = append(relevant, fmt.Sprintf("**%s**: %s", titleCase(term), lexicon.PlainEnglishGlossary[term]))
		}
	}

	if len(relevant) == 0 {
		return "In simple terms: This relates to the rights, responsibilities, and practical arrangements between the parties in the contract."
	}
	return "Here's what this means in plain terms:\n" + strings.Join(relevant, "\n")
}

func analyzeImplications(question string) string {
	lowered := strings.ToLower(question)

	switch {
	case util.ContainsAny(lowered, []string{"payment", "pay", "fee", "cost"}):
		return "**Financial Impact**: Review payment schedules, late fees, and consequences of non-payment.\n**Action Items**: Set up payment tracking and ensure compliance with payment terms."
	case util.ContainsAny(lowered, []string{"termination", "terminate", "end"}):
		return "**Risk Assessment**: Understand termination triggers and notice requirements.\n**Action Items**: Plan for potential termination scenarios and ensure proper procedures are followed."
	case util.ContainsAny(lowered, []string{"liability", "damages", "responsible"}):
		return "**Risk Exposure**: Identify potential liability scenarios and coverage limits.\n**Action Items**: Consider insurance coverage and risk mitigation strategies."
	case util.ContainsAny(lowered, []string{"breach", "violation", "default"}):
		return "**Compliance Risk**: Understand what constitutes a breach and potential consequences.\n**Action Items**: Implement compliance monitoring and have remediation plans ready."
	default:
		return "**General Considerations**: This affects your rights and obligations under the contract.\n**Action Items**: Ensure you understand and can comply with the relevant requirements."
	}
}

func documentSuggestions() []string {
	return []string{
		"What are the termination conditions?",
		"Are there any liability limitations?",
		"What are the payment terms?",
		"Who are the parties to this agreement?",
	}
}

func titleCase(term string) string {
	words := strings.Fields(term)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

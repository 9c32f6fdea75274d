package respond

import (
	"strings"
	"time"

	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/util"
)

func (s *System) synthesizeErrorRecovery(processed domain.ProcessedInput) domain.StructuredResponse {
	var b strings.Builder
	b.WriteString("I want to help you with your contract question, but I need to approach it differently.")

	switch {
	case len(strings.TrimSpace(processed.Original)) < 3:
		b.WriteString("\n\nYour question seems quite brief. Could you provide more details about what you'd like to know?")
	case processed.Ambiguity > 0.7:
		b.WriteString("\n\nYour question has multiple possible meanings. Let me try to address the most likely interpretation.")
	default:
		b.WriteString("\n\nLet me try to help with what I understand from your question.")
	}

	b.WriteString("\n\n**Here are some ways I can help:**")
	b.WriteString("\n- Explain specific contract clauses or terms")
	b.WriteString("\n- Analyze risks and obligations")
	b.WriteString("\n- Provide general legal context")
	b.WriteString("\n- Create summaries or data exports")

	return domain.StructuredResponse{
		Content:    b.String(),
		Pattern:    domain.PatternErrorRecovery,
		Category:   domain.CategoryFallback,
		Confidence: 0.5,
		Sources:    []string{"error_recovery"},
		Suggestions: []string{
			"What does this specific clause mean?",
			"What are the key risks in this contract?",
			"Can you summarize the main terms?",
			"What are my obligations under this agreement?",
		},
		Tone: domain.ToneConversational,
		Structured: map[string]any{
			"pattern":       domain.PatternErrorRecovery.String(),
			"recovery_type": "input_processing_error",
		},
		ContextUsed: []string{"error_handling"},
		Timestamp:   time.Now(),
	}
}

// fallbackForPattern returns the canned fallback for a synthesis pattern that
// failed mid-generation
func (s *System) fallbackForPattern(pattern domain.PatternType, processed domain.ProcessedInput) domain.StructuredResponse {
	switch pattern {
	case domain.PatternDocument:
		return fallbackDocumentResponse()
	case domain.PatternGeneralLegal:
		return fallbackGeneralResponse()
	case domain.PatternDataTable:
		return fallbackDataResponse()
	case domain.PatternAmbiguous:
		return fallbackAmbiguousResponse()
	default:
		return s.synthesizeErrorRecovery(processed)
	}
}

func fallbackDocumentResponse() domain.StructuredResponse {
	content := headerEvidence + `
I'm having difficulty extracting specific evidence from the document right now.

` + headerPlainEnglish + `
Your question relates to contract terms that require careful analysis.

` + headerImplications + `
This is an important aspect of your contract that deserves proper attention. Consider reviewing the relevant sections or consulting with legal counsel.`

	return domain.StructuredResponse{
		Content:     content,
		Pattern:     domain.PatternDocument,
		Category:    domain.CategoryDocumentAnalysis,
		Confidence:  0.4,
		Sources:     []string{"fallback_document"},
		Suggestions: documentSuggestions(),
		Tone:        domain.ToneProfessional,
		Structured:  map[string]any{"pattern": "document_fallback"},
		ContextUsed: []string{"fallback"},
		Timestamp:   time.Now(),
	}
}

func fallbackGeneralResponse() domain.StructuredResponse {
	content := headerStatus + `
I'm having some difficulty analyzing the document coverage for this question.

` + headerGeneralRule + `
Contract law generally requires parties to fulfill their obligations in good faith and according to the agreed terms.

` + headerApplication + `
In practice, it's important to understand your specific rights and obligations under the contract terms.`

	return domain.StructuredResponse{
		Content:     content,
		Pattern:     domain.PatternGeneralLegal,
		Category:    domain.CategoryGeneralKnowledge,
		Confidence:  0.4,
		Sources:     []string{"fallback_general"},
		Suggestions: generalLegalSuggestions(),
		Tone:        domain.ToneProfessional,
		Structured:  map[string]any{"pattern": "general_fallback"},
		ContextUsed: []string{"fallback"},
		Timestamp:   time.Now(),
	}
}

func fallbackDataResponse() domain.StructuredResponse {
	content := `## Contract Information

| Aspect | Status |
| --- | --- |
| Analysis | In progress |
| Data extraction | Limited |
| Export capability | Available upon request |

📥 **Export:** Please try rephrasing your data request for better results.`

	return domain.StructuredResponse{
		Content:     content,
		Pattern:     domain.PatternDataTable,
		Category:    domain.CategoryDocumentAnalysis,
		Confidence:  0.4,
		Sources:     []string{"fallback_data"},
		Suggestions: dataSuggestions(),
		Tone:        domain.ToneProfessional,
		Structured:  map[string]any{"pattern": "data_fallback"},
		ContextUsed: []string{"fallback"},
		Timestamp:   time.Now(),
	}
}

func fallbackAmbiguousResponse() domain.StructuredResponse {
	content := `🤔 **My Take:** Your question has multiple possible interpretations, and I want to make sure I address what you're really asking about.

**If Option A:** You want specific information from the contract
I can search through the document for relevant terms and clauses.

**If Option B:** You want general guidance on this topic
I can provide context about how this typically works in contracts.

**Synthesis:** The best approach is often to start with the specific contract terms and then provide broader context as needed.`

	return domain.StructuredResponse{
		Content:    content,
		Pattern:    domain.PatternAmbiguous,
		Category:   domain.CategoryDocumentAnalysis,
		Confidence: 0.4,
		Sources:    []string{"fallback_ambiguous"},
		Suggestions: []string{
			"Can you be more specific about what you need?",
			"Are you asking about a particular clause?",
			"Do you want legal context or practical guidance?",
			"Is this about compliance or interpretation?",
		},
		Tone:        domain.ToneConversational,
		Structured:  map[string]any{"pattern": "ambiguous_fallback"},
		ContextUsed: []string{"fallback"},
		Timestamp:   time.Now(),
	}
}

// UltimateFallback is the last line of defense. It depends on nothing that
// can fail and always yields a helpful response.
func UltimateFallback(question string) domain.StructuredResponse {
	var b strings.Builder
	b.WriteString("I'm here to help you understand your contract.")

	if trimmed := strings.TrimSpace(question); trimmed != "" {
		b.WriteString("\n\nRegarding your question about: \"")
		b.WriteString(util.TruncateString(trimmed, 100))
		b.WriteString("\"")
	}

	b.WriteString("\n\nI can help you with:")
	b.WriteString("\n- Explaining contract terms and clauses")
	b.WriteString("\n- Analyzing your rights and obligations")
	b.WriteString("\n- Identifying potential risks or concerns")
	b.WriteString("\n- Providing general legal context")
	b.WriteString("\n\nPlease feel free to ask about any specific aspect of your contract.")

	return domain.StructuredResponse{
		Content:    b.String(),
		Pattern:    domain.PatternErrorRecovery,
		Category:   domain.CategoryFallback,
		Confidence: 0.5,
		Sources:    []string{"ultimate_fallback"},
		Suggestions: []string{
			"What does this clause mean?",
			"What are my obligations?",
			"Are there any risks I should know about?",
			"Can you summarize the key terms?",
		},
		Tone:        domain.ToneProfessional,
		Structured:  map[string]any{"pattern": "ultimate_fallback"},
		ContextUsed: []string{"emergency_response"},
		Timestamp:   time.Now(),
	}
}

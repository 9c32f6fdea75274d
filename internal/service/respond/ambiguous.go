package respond

import (
	"fmt"
	"strings"
	"time"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/lexicon"
	"github.com/kapu/contract-assistant-go/internal/service/analyzer"
	"github.com/kapu/contract-assistant-go/internal/util"
)

// interpretation is one reading of an ambiguous question
type interpretation struct {
	Intent            string
	Confidence        float64
	Reasoning         string
	FocusAreas        []string
	DocumentRelevance float64
}

// alternative is a secondary reading with its own analysis path
type alternative struct {
	Focus        string
	Description  string
	AnalysisPath string
	Confidence   float64
}

var intentIndicators = []struct {
	intent     string
	indicators []string
}{
	{"definition", []string{"what is", "what does", "define", "meaning of", "means"}},
	{"explanation", []string{"how does", "how can", "explain", "why does", "why is"}},
	{"comparison", []string{"difference", "compare", "versus", "better", "worse"}},
	{"procedure", []string{"how to", "steps", "process", "procedure"}},
	{"consequences", []string{"what happens", "result", "outcome", "implications"}},
	{"obligations", []string{"must", "required", "obligation", "responsibility"}},
	{"rights", []string{"can", "allowed", "permitted", "rights", "entitlement"}},
}

var focusAreaKeywords = []struct {
	area     string
	keywords []string
}{
	{"parties", []string{"party", "parties", "who", "entity", "organization"}},
	{"obligations", []string{"obligation", "duty", "must", "shall", "required", "responsibility"}},
	{"rights", []string{"right", "entitle", "can", "may", "allowed", "permitted"}},
	{"terms", []string{"term", "condition", "provision", "clause"}},
	{"timeline", []string{"when", "date", "deadline", "time", "duration"}},
	{"consequences", []string{"penalty", "breach", "violation", "consequence", "result"}},
	{"termination", []string{"end", "terminate", "cancel", "expire", "dissolution"}},
}

var questionWordPaths = map[string]string{
	"what":  "Identify and define the key concepts or elements mentioned",
	"how":   "Explain the process, mechanism, or method involved",
	"when":  "Determine timing, deadlines, or temporal aspects",
	"where": "Identify location, jurisdiction, or applicable scope",
	"why":   "Analyze the reasoning, purpose, or underlying rationale",
	"which": "Compare options and identify the most relevant choice",
	"who":   "Identify the parties, roles, or responsible entities",
}

func (s *System) synthesizeAmbiguous(processed domain.ProcessedInput, docText string) domain.StructuredResponse {
	analysis := analyzer.AnalyzeAmbiguity(processed.Original)

	primary := determinePrimaryInterpretation(processed.Original, analysis, docText)
	alternatives := alternativeInterpretations(processed.Original, analysis)
	content := formatAmbiguousResponse(primary, alternatives, processed.Tone)

	return domain.StructuredResponse{
		Content:     content,
		Pattern:     domain.PatternAmbiguous,
		Category:    domain.CategoryDocumentAnalysis,
		Confidence:  processed.Confidence,
		Sources:     []string{"enhanced_ambiguity_resolution"},
		Suggestions: clarificationSuggestions(alternatives),
		Tone:        domain.ToneConversational,
		Structured: map[string]any{
			"pattern":                domain.PatternAmbiguous.String(),
			"primary_interpretation": primary,
			"alternatives":           alternatives,
			"ambiguity_analysis":     analysis,
		},
		ContextUsed: []string{"enhanced_ambiguity_handling"},
		Timestamp:   time.Now(),
	}
}

func determinePrimaryInterpretation(question string, analysis domain.AmbiguityAnalysis, docText string) interpretation {
	lowered := strings.ToLower(question)

	bestIntent := "general_inquiry"
	bestScore := 0
	for _, candidate := range intentIndicators {
		score := util.CountMatches(lowered, candidate.indicators)
		if score > bestScore {
			bestIntent = candidate.intent
			bestScore = score
		}
	}

	return interpretation{
		Intent:     bestIntent,
		Confidence: 0.8 - analysis.Level*0.3,
		Reasoning: fmt.Sprintf("Based on the question structure and key terms, this appears to be a %s question.",
			strings.ReplaceAll(bestIntent, "_", " ")),
		FocusAreas:        identifyFocusAreas(lowered),
		DocumentRelevance: wordOverlapRelevance(question, docText),
	}
}

func identifyFocusAreas(lowered string) []string {
	var areas []string
	for _, candidate := range focusAreaKeywords {
		if util.ContainsAny(lowered, candidate.keywords) {
			areas = append(areas, candidate.area)
		}
		if len(areas) == 3 {
			break
		}
	}
	return areas
}

// wordOverlapRelevance is the fraction of question words appearing in the document
func wordOverlapRelevance(question, docText string) float64 {
	if docText == "" {
		return 0.5
	}

	questionWords := util.WordSet(question)
	docWords := util.WordSet(docText)

	overlap := 0
	for w := range questionWords {
		if _, ok := docWords[w]; ok {
			overlap++
		}
	}

	denominator := len(questionWords)
	if denominator == 0 {
		denominator = 1
	}
	return util.Clamp01(float64(overlap) / float64(denominator))
}

func alternativeInterpretations(question string, analysis domain.AmbiguityAnalysis) []alternative {
	var alternatives []alternative
	lowered := strings.ToLower(question)

	if analysis.QuestionWordCount > 1 {
		count := 0
		for _, word := range lexicon.QuestionWords {
			if !strings.Contains(lowered, word) {
				continue
			}
			alternatives = append(alternatives, alternative{
				Focus:        titleCase(word) + "-focused interpretation",
				Description:  fmt.Sprintf("Interpreting this as primarily a '%s' question", word),
				AnalysisPath: questionWordPaths[word],
				Confidence:   0.6,
			})
			count++
			if count == 3 {
				break
			}
		}
	}

	if analysis.HasConditionals {
		alternatives = append(alternatives, alternative{
			Focus:        "Conditional scenario analysis",
			Description:  "Analyzing this as a hypothetical or conditional situation",
			AnalysisPath: "Examine the conditions mentioned and their potential outcomes",
			Confidence:   0.7,
		})
	}

	if analysis.HasComparatives {
		alternatives = append(alternatives, alternative{
			Focus:        "Comparative analysis",
			Description:  "Interpreting this as a request to compare different options or outcomes",
			AnalysisPath: "Identify the elements being compared and analyze their relative merits",
			Confidence:   0.7,
		})
	}

	if util.Contains(analysis.Sources, domain.AmbiguityVagueTerminology) {
		alternatives = append(alternatives, alternative{
			Focus:        "Clarification-seeking interpretation",
			Description:  "This question may need more specific details to provide a complete answer",
			AnalysisPath: "Address the general concept while noting areas that need clarification",
			Confidence:   0.5,
		})
	}

	if len(alternatives) > 3 {
		alternatives = alternatives[:3]
	}
	return alternatives
}

func formatAmbiguousResponse(primary interpretation, alternatives []alternative, tone domain.ToneProfile) string {
	isCasual := tone[domain.ToneKeyCasual]+tone[domain.ToneKeySlang] > constants.Tone.CasualDominance
	intentLabel := strings.ReplaceAll(primary.Intent, "_", " ")

	var b strings.Builder
	if isCasual {
		fmt.Fprintf(&b, "🤔 **My Take:** I'm reading this as a %s question", intentLabel)
	} else {
		fmt.Fprintf(&b, "🤔 **Primary Interpretation:** This appears to be a %s inquiry", intentLabel)
	}
	fmt.Fprintf(&b, " (confidence: %.0f%%)\n\n", primary.Confidence*100)
	b.WriteString(primary.Reasoning)
	b.WriteString("\n\n")

	if len(alternatives) > 0 {
		b.WriteString("**Alternative Interpretations:**\n\n")
		for i, alt := range alternatives {
			if isCasual {
				b.WriteString("**If you meant:** ")
			} else {
				fmt.Fprintf(&b, "**Option %c:** ", 'A'+i)
			}
			b.WriteString(alt.Description)
			b.WriteString("\n- ")
			b.WriteString(alt.AnalysisPath)
			b.WriteString("\n\n")
		}
	}

	if isCasual {
		b.WriteString("**Bottom Line:**\n")
	} else {
		b.WriteString("**Synthesis:**\n")
	}
	b.WriteString(synthesisRecommendation(primary, alternatives, isCasual))
	b.WriteString("\n\n")

	if len(alternatives) > 1 {
		b.WriteString("**How These Connect:**\n")
		b.WriteString("- These interpretations are interconnected and addressing one often informs the others\n")
		b.WriteString("- The document content can be analyzed from multiple angles to address each perspective\n\n")
	}

	if isCasual {
		b.WriteString("**What's Next:**\n")
	} else {
		b.WriteString("**Recommended Next Steps:**\n")
	}
	b.WriteString("- Feel free to ask follow-up questions if you'd like me to explore any of these angles more deeply\n")
	b.WriteString("- I can provide more specific analysis if you clarify which aspect is most important to you\n")

	return b.String()
}

func synthesisRecommendation(primary interpretation, alternatives []alternative, isCasual bool) string {
	intentLabel := strings.ReplaceAll(primary.Intent, "_", " ")

	if len(alternatives) > 1 {
		if isCasual {
			return fmt.Sprintf("I'm going with the %s angle as my main take, but I can see how this could also be about %s.",
				intentLabel, strings.ToLower(alternatives[0].Focus))
		}
		focuses := make([]string, 0, 2)
		for _, alt := range alternatives[:2] {
			focuses = append(focuses, strings.ToLower(alt.Focus))
		}
		return fmt.Sprintf("The primary interpretation focuses on %s, while alternative perspectives consider %s.",
			intentLabel, strings.Join(focuses, ", "))
	}

	if isCasual {
		return fmt.Sprintf("This looks like a %s question, so I'll focus on that angle.", intentLabel)
	}
	return fmt.Sprintf("The analysis will focus on the %s aspect as the primary interpretation.", intentLabel)
}

func clarificationSuggestions(alternatives []alternative) []string {
	suggestions := []string{
		"Could you clarify which specific aspect you're most interested in?",
		"Would you like me to focus on a particular part of the contract?",
		"Are you looking for practical implications or technical details?",
	}

	limit := 2
	if len(alternatives) < limit {
		limit = len(alternatives)
	}
	for _, alt := range alternatives[:limit] {
		focus := strings.ToLower(alt.Focus)
		switch {
		case strings.Contains(focus, "conditional"):
			suggestions = append(suggestions, "Are you asking about a hypothetical scenario or current situation?")
		case strings.Contains(focus, "comparative"):
			suggestions = append(suggestions, "Which specific elements would you like me to compare?")
		case strings.Contains(focus, "clarification"):
			suggestions = append(suggestions, "Could you provide more specific details about what you're looking for?")
		}
	}

	if len(suggestions) > 4 {
		suggestions = suggestions[:4]
	}
	return suggestions
}

package analyzer

import (
	"strings"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/lexicon"
	"github.com/kapu/contract-assistant-go/internal/util"
)

// MeasureAmbiguity scores how ambiguous a question is. Hedging words,
// stacked question words, and extreme lengths all push the score up.
func MeasureAmbiguity(input string) float64 {
	lowered := strings.ToLower(input)

	hedges := util.CountMatches(lowered, lexicon.AmbiguousWords)
	questionCount := lexicon.QuestionWordCount(lowered)

	lengthFactor := 0.0
	wordCount := len(strings.Fields(lowered))
	if wordCount < 3 || wordCount > 50 {
		lengthFactor = 0.3
	}

	extraQuestions := questionCount - 1
	if extraQuestions < 0 {
		extraQuestions = 0
	}

	total := float64(hedges)*0.4 + float64(extraQuestions)*0.2 + lengthFactor
	if total > 1.0 {
		return 1.0
	}
	return total
}

// AnalyzeAmbiguity identifies the sources of ambiguity in a question. The
// level is the source count over the number of known source kinds.
func AnalyzeAmbiguity(question string) domain.AmbiguityAnalysis {
	lowered := strings.ToLower(question)
	tokens := make(map[string]struct{})
	for _, w := range strings.Fields(lowered) {
		tokens[strings.Trim(w, ".,!?;:")] = struct{}{}
	}

	var sources []string

	for _, pronoun := range lexicon.Pronouns {
		if _, ok := tokens[pronoun]; ok {
			sources = append(sources, domain.AmbiguityPronounReference)
			break
		}
	}

	questionWordCount := lexicon.QuestionWordCount(lowered)
	if questionWordCount > 1 {
		sources = append(sources, domain.AmbiguityMultipleQuestions)
	}

	if util.ContainsAny(lowered, lexicon.VagueTerms) {
		sources = append(sources, domain.AmbiguityVagueTerminology)
	}

	hasConditionals := util.ContainsAny(lowered, lexicon.ConditionalWords)
	if hasConditionals {
		sources = append(sources, domain.AmbiguityConditionalScenario)
	}

	hasComparatives := util.ContainsAny(lowered, lexicon.ComparativeWords)
	if hasComparatives {
		sources = append(sources, domain.AmbiguityComparativeAnalysis)
	}

	return domain.AmbiguityAnalysis{
		Sources:           sources,
		Level:             float64(len(sources)) / constants.Processing.AmbiguitySourceCount,
		QuestionWordCount: questionWordCount,
		HasConditionals:   hasConditionals,
		HasComparatives:   hasComparatives,
	}
}

package classifier

import (
	"strings"

	"github.com/kapu/contract-assistant-go/internal/lexicon"
	"github.com/kapu/contract-assistant-go/internal/util"
)

// Features are the lexical signals extracted from a question before scoring
type Features struct {
	WordCount        int
	QuestionWords    []string
	LegalTerms       []string
	MTATerms         []string
	CasualIndicators []string
	ContractConcepts []string
	SentimentScore   float64
	FormalityScore   float64
}

func extractFeatures(question string) Features {
	lowered := util.Normalize(question)
	words := strings.Fields(lowered)

	questionWords := make([]string, 0, 4)
	for _, w := range words {
		if lexicon.IsQuestionWord(w) {
			questionWords = append(questionWords, w)
		}
	}

	return Features{
		WordCount:        len(words),
		QuestionWords:    questionWords,
		LegalTerms:       lexicon.FindLegalTerms(lowered),
		MTATerms:         lexicon.FindMTATerms(lowered),
		CasualIndicators: lexicon.FindCasualIndicators(lowered),
		ContractConcepts: identifyContractConcepts(lowered),
		SentimentScore:   sentimentScore(lowered),
		FormalityScore:   formalityScore(lowered, words),
	}
}

// identifyContractConcepts collects every known legal, MTA, and contract
// concept present in the text, deduplicated in order of first appearance
func identifyContractConcepts(lowered string) []string {
	seen := make(map[string]struct{})
	var concepts []string

	collect := func(terms []string) {
		for _, term := range terms {
			if strings.Contains(lowered, term) {
				if _, ok := seen[term]; !ok {
					seen[term] = struct{}{}
					concepts = append(concepts, term)
				}
			}
		}
	}

	collect(lexicon.LegalTermsGeneral)
	collect(lexicon.MTATerms)
	collect(lexicon.ContractConcepts)
	return concepts
}

func sentimentScore(lowered string) float64 {
	positive := util.CountMatches(lowered, lexicon.PositiveWords)
	negative := util.CountMatches(lowered, lexicon.NegativeWords)
	if positive+negative == 0 {
		return 0.5
	}
	return float64(positive) / float64(positive+negative)
}

func formalityScore(lowered string, words []string) float64 {
	formality := 0.5

	formality += 0.1 * float64(lexicon.CountFormalPatterns(lowered))

	informal := 0
	for _, w := range words {
		if util.Contains(lexicon.InformalMarkers, w) {
			informal++
		}
	}
	formality -= float64(informal) * 0.1

	if len(words) > 10 {
		formality += 0.1
	}

	return util.Clamp01(formality)
}

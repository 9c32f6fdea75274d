// Package analyzer preprocesses raw question text into a ProcessedInput the
// synthesizers consume. Processing is tiered: a full analysis pass, a
// simplified pass when the full pass rejects the input, and a minimal pass
// that always succeeds.
package analyzer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/lexicon"
	"github.com/kapu/contract-assistant-go/internal/util"

	apperrors "github.com/kapu/contract-assistant-go/pkg/errors"
)

type Analyzer struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Process runs the tiered analysis chain. It never fails: the tertiary tier
// accepts anything, including empty input.
func (a *Analyzer) Process(input string) domain.ProcessedInput {
	processed, err := a.processPrimary(input)
	if err == nil {
		return processed
	}
	a.logger.Warn("Primary input processing rejected input, trying secondary", zap.Error(err))

	processed, err = a.processSecondary(input)
	if err == nil {
		return processed
	}
	a.logger.Warn("Secondary input processing rejected input, using tertiary", zap.Error(err))

	return a.processTertiary(input)
}

func (a *Analyzer) processPrimary(input string) (domain.ProcessedInput, error) {
	if strings.TrimSpace(input) == "" {
		return domain.ProcessedInput{}, apperrors.NewValidationError("empty input", "input", input)
	}

	tone := AnalyzeTone(input)
	ambiguity := MeasureAmbiguity(input)
	pattern := DetectPattern(input)

	return domain.ProcessedInput{
		Original:      input,
		Normalized:    util.Normalize(input),
		Pattern:       pattern,
		Tone:          tone,
		DataRequested: DetectDataRequest(input),
		Ambiguity:     ambiguity,
		Parts:         SplitParts(input),
		Confidence:    processingConfidence(input, tone, ambiguity),
	}, nil
}

func (a *Analyzer) processSecondary(input string) (domain.ProcessedInput, error) {
	normalized := util.Normalize(input)
	if normalized == "" {
		return domain.ProcessedInput{}, apperrors.NewValidationError("nothing to analyze", "input", input)
	}

	pattern := domain.PatternDocument
	switch {
	case util.ContainsAny(normalized, []string{"what", "how", "when", "where", "why"}):
		pattern = domain.PatternDocument
	case util.ContainsAny(normalized, []string{"table", "list", "data", "export"}):
		pattern = domain.PatternDataTable
	case len(strings.Fields(normalized)) < 3:
		pattern = domain.PatternAmbiguous
	}

	return domain.ProcessedInput{
		Original:   input,
		Normalized: normalized,
		Pattern:    pattern,
		Tone: domain.ToneProfile{
			domain.ToneKeyCasual: 0.5,
			domain.ToneKeyFormal: 0.5,
		},
		Ambiguity:  0.5,
		Parts:      []string{input},
		Confidence: constants.Processing.SecondaryConfidence,
	}, nil
}

func (a *Analyzer) processTertiary(input string) domain.ProcessedInput {
	original := input
	if original == "" {
		original = "empty input"
	}

	return domain.ProcessedInput{
		Original:   original,
		Normalized: strings.ToLower(original),
		Pattern:    domain.PatternErrorRecovery,
		Tone:       domain.ToneProfile{domain.ToneKeyNeutral: 1.0},
		Ambiguity:  1.0,
		Parts:      []string{original},
		Confidence: constants.Processing.TertiaryConfidence,
	}
}

// DetectPattern picks the response pattern for a question. Data requests win,
// then ambiguity markers, then general-knowledge phrasing, with document
// analysis as the default.
func DetectPattern(input string) domain.PatternType {
	lowered := strings.ToLower(input)

	if util.ContainsAny(lowered, lexicon.DataIndicators) {
		return domain.PatternDataTable
	}

	if util.ContainsAny(lowered, lexicon.AmbiguousIndicators) ||
		lexicon.QuestionWordCount(lowered) > 2 {
		return domain.PatternAmbiguous
	}

	if util.ContainsAny(lowered, lexicon.GeneralIndicators) {
		return domain.PatternGeneralLegal
	}

	return domain.PatternDocument
}

// DetectDataRequest reports whether the question asks for tabular output
func DetectDataRequest(input string) bool {
	return util.ContainsAny(strings.ToLower(input), lexicon.DataKeywords)
}

func processingConfidence(input string, tone domain.ToneProfile, ambiguity float64) float64 {
	confidence := constants.Processing.BaseConfidence

	wordCount := len(strings.Fields(input))
	if wordCount >= 5 && wordCount <= 20 {
		confidence += 0.1
	} else if wordCount < 3 {
		confidence -= 0.3
	}

	confidence -= ambiguity * 0.3

	maxTone := 0.0
	for _, score := range tone {
		if score > maxTone {
			maxTone = score
		}
	}
	confidence += maxTone * 0.1

	if confidence < constants.Processing.MinConfidence {
		return constants.Processing.MinConfidence
	}
	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}

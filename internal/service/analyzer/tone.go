package analyzer

import (
	"strings"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/lexicon"
)

// AnalyzeTone scores the input along six tone dimensions. Each dimension is
// the fraction of its lexicon present in the text, scaled by a per-dimension
// multiplier and capped at 1. Casual additionally counts exclamation and
// question punctuation.
func AnalyzeTone(input string) domain.ToneProfile {
	lowered := strings.ToLower(input)

	casualPunctuation := float64(strings.Count(input, "!")) + float64(strings.Count(input, "?"))*0.5
	casual := lexiconRatio(lowered, lexicon.CasualWords) + casualPunctuation*0.1

	formal := lexiconRatio(lowered, lexicon.FormalWords)
	if containsAnyPhrase(lowered, lexicon.FormalStructures) {
		formal += 0.3
	}

	return domain.ToneProfile{
		domain.ToneKeyCasual:    capped(casual * constants.Tone.CasualMultiplier),
		domain.ToneKeyFormal:    capped(formal * constants.Tone.FormalMultiplier),
		domain.ToneKeyTechnical: capped(lexiconRatio(lowered, lexicon.TechnicalWords) * constants.Tone.TechnicalMultiplier),
		domain.ToneKeyBusiness:  capped(lexiconRatio(lowered, lexicon.BusinessWords) * constants.Tone.BusinessMultiplier),
		domain.ToneKeyStartup:   capped(lexiconRatio(lowered, lexicon.StartupWords) * constants.Tone.StartupMultiplier),
		domain.ToneKeySlang:     capped(lexiconRatio(lowered, lexicon.SlangWords) * constants.Tone.SlangMultiplier),
	}
}

func lexiconRatio(lowered string, words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	hits := 0
	for _, w := range words {
		if strings.Contains(lowered, w) {
			hits++
		}
	}
	return float64(hits) / float64(len(words))
}

func containsAnyPhrase(lowered string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

func capped(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}

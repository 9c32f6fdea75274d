package domain

// ToneProfile maps tone labels to intensities in [0, 1]
type ToneProfile map[string]float64

// Tone profile keys
const (
	ToneKeyCasual    = "casual"
	ToneKeyFormal    = "formal"
	ToneKeyTechnical = "technical"
	ToneKeyBusiness  = "business"
	ToneKeyStartup   = "startup"
	ToneKeySlang     = "slang"
	ToneKeyNeutral   = "neutral"
)

// CasualWeight aggregates the conversational side of the profile
func (p ToneProfile) CasualWeight() float64 {
	return p[ToneKeyCasual] + p[ToneKeySlang] + p[ToneKeyStartup]
}

// FormalWeight aggregates the professional side of the profile
func (p ToneProfile) FormalWeight() float64 {
	return p[ToneKeyFormal] + p[ToneKeyTechnical] + p[ToneKeyBusiness]
}

// CasualDominant reports whether the casual side of the profile wins outright
func (p ToneProfile) CasualDominant(threshold float64) bool {
	casual := p.CasualWeight()
	return casual > threshold && casual > p.FormalWeight()
}

// Ambiguity source tags
const (
	AmbiguityPronounReference    = "pronoun_reference"
	AmbiguityMultipleQuestions   = "multiple_questions"
	AmbiguityVagueTerminology    = "vague_terminology"
	AmbiguityConditionalScenario = "conditional_scenarios"
	AmbiguityComparativeAnalysis = "comparative_analysis"
)

// AmbiguityAnalysis records why and how much a question is ambiguous
type AmbiguityAnalysis struct {
	Sources           []string
	Level             float64
	QuestionWordCount int
	HasConditionals   bool
	HasComparatives   bool
}

// ProcessedInput is the normalized record threading through the pipeline.
// Built fresh per call and never shared across requests.
type ProcessedInput struct {
	Original      string
	Normalized    string
	Pattern       PatternType
	Tone          ToneProfile
	DataRequested bool
	Ambiguity     float64
	Parts         []string
	Confidence    float64
}

package domain

// IntentType classifies what a question is fundamentally about
type IntentType string

const (
	IntentDocumentRelated IntentType = "document_related"
	IntentOffTopic        IntentType = "off_topic"
	IntentContractGeneral IntentType = "contract_general"
	IntentCasual          IntentType = "casual"
)

func (t IntentType) String() string {
	return string(t)
}

// NormalizeIntentType maps a raw string to a known intent type, defaulting to
// document_related for anything unrecognized
func NormalizeIntentType(raw string) IntentType {
	switch IntentType(raw) {
	case IntentOffTopic:
		return IntentOffTopic
	case IntentContractGeneral:
		return IntentContractGeneral
	case IntentCasual:
		return IntentCasual
	default:
		return IntentDocumentRelated
	}
}

// Intent is the classification result for a single question.
// Confidence and all scores are normalized to [0, 1].
type Intent struct {
	Primary              IntentType
	Confidence           float64
	Secondary            []IntentType
	DocumentRelevance    float64
	Casualness           float64
	RequiresMTAExpertise bool
	RequiresFallback     bool
}

// SafeDefaultIntent is the absorbing default returned when classification
// cannot produce a real signal
func SafeDefaultIntent() Intent {
	return Intent{
		Primary:           IntentDocumentRelated,
		Confidence:        0.5,
		DocumentRelevance: 0.5,
		Casualness:        0,
		RequiresFallback:  false,
	}
}

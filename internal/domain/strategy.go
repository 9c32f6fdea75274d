package domain

// HandlerType names the handler a response strategy routes to
type HandlerType string

const (
	HandlerContractEngine   HandlerType = "contract_engine"
	HandlerGeneralKnowledge HandlerType = "general_knowledge"
	HandlerFallback         HandlerType = "fallback"
	HandlerCasual           HandlerType = "casual"
)

// ResponseStrategy records how the router decided to answer a question.
// It is attached to the ConversationTurn for later pattern analysis.
type ResponseStrategy struct {
	Handler             HandlerType
	UseStructuredFormat bool
	IncludeSuggestions  bool
	TonePreference      ToneType
	FallbackOptions     []string
	ContextRequirements []string
}

// DefaultStrategy is the baseline strategy before intent adjustments
func DefaultStrategy() ResponseStrategy {
	return ResponseStrategy{
		Handler:             HandlerContractEngine,
		UseStructuredFormat: true,
		IncludeSuggestions:  true,
		TonePreference:      ToneProfessional,
	}
}

package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/lexicon"
	"github.com/kapu/contract-assistant-go/internal/util"
)

// Tracker maintains conversation context across turns and derives patterns,
// flow summaries, and tone suggestions from the history.
type Tracker struct {
	store  ContextStore
	logger *zap.Logger
}

func NewTracker(store ContextStore, logger *zap.Logger) *Tracker {
	return &Tracker{store: store, logger: logger}
}

// RecordTurn appends a turn to the session history and refreshes the derived
// session state. A new session context is created on first contact.
func (t *Tracker) RecordTurn(
	ctx context.Context,
	sessionID, question string,
	response domain.StructuredResponse,
	intent *domain.Intent,
	strategy *domain.ResponseStrategy,
) error {
	conv, ok, err := t.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !ok {
		conv = &domain.ConversationContext{
			SessionID:      sessionID,
			DocumentID:     "default",
			CurrentTone:    domain.ToneProfessional,
			ExpertiseLevel: domain.ExpertiseIntermediate,
			PreferredStyle: "structured",
		}
	}

	conv.History = append(conv.History, domain.ConversationTurn{
		ID:        uuid.New().String(),
		Question:  question,
		Response:  response,
		Intent:    intent,
		Strategy:  strategy,
		Timestamp: time.Now(),
	})
	if len(conv.History) > constants.Context.MaxHistoryLength {
		conv.History = conv.History[len(conv.History)-constants.Context.MaxHistoryLength:]
	}

	if response.Tone != "" {
		conv.CurrentTone = domain.NormalizeToneType(response.Tone.String())
	}

	updateTopicProgression(conv, question, response.Content)
	updateExpertiseLevel(conv, question)
	updateStylePreference(conv, response)

	if err := t.store.Put(ctx, conv); err != nil {
		return err
	}

	if _, err := t.store.Cleanup(ctx); err != nil {
		t.logger.Warn("Session cleanup failed", zap.Error(err))
	}
	return nil
}

// Get returns the context for a session, or nil when the session is unknown
func (t *Tracker) Get(ctx context.Context, sessionID string) (*domain.ConversationContext, error) {
	conv, ok, err := t.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return conv, nil
}

// DetectPatterns scans the recent history for conversational patterns
func (t *Tracker) DetectPatterns(ctx context.Context, sessionID string) ([]string, error) {
	conv, ok, err := t.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok || len(conv.History) < 2 {
		return nil, nil
	}

	history := conv.History
	var patterns []string

	if detectComplexityIncrease(lastTurns(history, 3)) {
		patterns = append(patterns, domain.PatternIncreasingComplexity)
	}
	if detectTopicJumping(lastTurns(history, constants.Context.RecentTurnWindow)) {
		patterns = append(patterns, domain.PatternTopicJumping)
	}
	if detectRepetitivePattern(lastTurns(history, constants.Context.PatternTurnWindow)) {
		patterns = append(patterns, domain.PatternRepetitiveQuestions)
	}
	if detectCasualDrift(lastTurns(history, 3)) {
		patterns = append(patterns, domain.PatternCasualDrift)
	}
	if detectDeepDive(lastTurns(history, constants.Context.PatternTurnWindow)) {
		patterns = append(patterns, domain.PatternDeepDive)
	}

	if detectSatisfaction(lastTurns(history, 3)) {
		patterns = append(patterns, domain.PatternHighSatisfaction)
	} else if detectFrustration(lastTurns(history, 3)) {
		patterns = append(patterns, domain.PatternFrustration)
	}

	return patterns, nil
}

// AnalyzeFlow summarizes the conversation flow. Requires at least two turns.
func (t *Tracker) AnalyzeFlow(ctx context.Context, sessionID string) (*domain.FlowSummary, error) {
	conv, ok, err := t.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok || len(conv.History) < 2 {
		return nil, nil
	}

	return &domain.FlowSummary{
		SessionID:             sessionID,
		FlowType:              determineFlowType(conv),
		TopicCoherence:        topicCoherence(conv),
		EngagementLevel:       engagementLevel(conv),
		ComplexityProgression: complexityProgression(conv),
		SuggestedDirections:   suggestDirections(conv),
	}, nil
}

// SuggestTone picks the tone for the next response based on the question and
// the session's recent tone history
func (t *Tracker) SuggestTone(ctx context.Context, sessionID, question string) domain.ToneType {
	conv, ok, err := t.store.Get(ctx, sessionID)
	if err != nil || !ok {
		return domain.ToneProfessional
	}

	var recentTones []domain.ToneType
	for _, turn := range lastTurns(conv.History, 3) {
		if turn.Response.Tone != "" {
			recentTones = append(recentTones, turn.Response.Tone)
		}
	}

	lowered := strings.ToLower(question)
	isCasual := util.ContainsAny(lowered, []string{"thanks", "cool", "awesome", "lol", "haha", "😊", "👍"})
	isFormal := util.ContainsAny(lowered, []string{"please", "kindly", "would you", "could you"})

	switch {
	case isCasual && (conv.CurrentTone == domain.ToneConversational || conv.CurrentTone == domain.TonePlayful):
		return domain.ToneConversational
	case isFormal || len(recentTones) == 0:
		return domain.ToneProfessional
	case allSameTone(recentTones):
		return recentTones[len(recentTones)-1]
	default:
		return domain.ToneProfessional
	}
}

// SuggestContextAware proposes response approaches based on recent patterns
func (t *Tracker) SuggestContextAware(ctx context.Context, sessionID, question string) []string {
	conv, ok, err := t.store.Get(ctx, sessionID)
	if err != nil || !ok {
		return nil
	}

	recent := lastTurns(conv.History, constants.Context.RecentTurnWindow)
	var suggestions []string

	if detectRepetitiveQuestion(recent, question) {
		suggestions = append(suggestions,
			"Acknowledge repetition and offer new perspective",
			"Suggest exploring related but different aspects")
	}
	if detectComplexityIncrease(recent) {
		suggestions = append(suggestions,
			"Provide more detailed technical explanation",
			"Include relevant examples and analogies")
	}
	if detectCasualShift(recent) {
		suggestions = append(suggestions,
			"Match conversational tone while maintaining professionalism",
			"Include light, engaging elements in response")
	}

	switch conv.ExpertiseLevel {
	case domain.ExpertiseExpert:
		suggestions = append(suggestions, "Use technical terminology and detailed analysis")
	case domain.ExpertiseBeginner:
		suggestions = append(suggestions, "Provide clear explanations with basic terminology")
	}

	if detectTopicShift(conv, question) {
		suggestions = append(suggestions, "Acknowledge topic change and provide smooth transition")
	}

	return suggestions
}

func lastTurns(history []domain.ConversationTurn, n int) []domain.ConversationTurn {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

func allSameTone(tones []domain.ToneType) bool {
	for _, tone := range tones[1:] {
		if tone != tones[0] {
			return false
		}
	}
	return true
}

func updateTopicProgression(conv *domain.ConversationContext, question, responseContent string) {
	seen := make(map[string]struct{}, len(conv.TopicProgression))
	for _, topic := range conv.TopicProgression {
		seen[topic] = struct{}{}
	}

	for _, topic := range lexicon.ExtractTopics(question + " " + responseContent) {
		if _, ok := seen[topic]; !ok {
			seen[topic] = struct{}{}
			conv.TopicProgression = append(conv.TopicProgression, topic)
		}
	}

	if len(conv.TopicProgression) > constants.Context.MaxTopicProgression {
		conv.TopicProgression = conv.TopicProgression[len(conv.TopicProgression)-constants.Context.MaxTopicProgression:]
	}
}

func updateExpertiseLevel(conv *domain.ConversationContext, question string) {
	lowered := strings.ToLower(question)

	expertScore := util.CountMatches(lowered, lexicon.ExpertTerms)
	beginnerScore := util.CountMatches(lowered, lexicon.BeginnerTerms)

	switch {
	case expertScore > beginnerScore && expertScore > 0:
		conv.ExpertiseLevel = domain.ExpertiseExpert
	case beginnerScore > expertScore && beginnerScore > 0:
		conv.ExpertiseLevel = domain.ExpertiseBeginner
	}
}

func updateStylePreference(conv *domain.ConversationContext, response domain.StructuredResponse) {
	switch {
	case response.Category == domain.CategoryDocumentAnalysis && len(response.Structured) > 0:
		conv.PreferredStyle = "structured"
	case response.Category == domain.CategoryCasual:
		conv.PreferredStyle = "conversational"
	case response.Category == domain.CategoryFallback:
		conv.PreferredStyle = "helpful_redirection"
	}
}

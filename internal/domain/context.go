package domain

import "time"

// ExpertiseLevel is the inferred sophistication of the user
type ExpertiseLevel string

const (
	ExpertiseBeginner     ExpertiseLevel = "beginner"
	ExpertiseIntermediate ExpertiseLevel = "intermediate"
	ExpertiseExpert       ExpertiseLevel = "expert"
)

// FlowType characterizes how a conversation is progressing
type FlowType string

const (
	FlowLinear      FlowType = "linear"
	FlowExploratory FlowType = "exploratory"
	FlowFocused     FlowType = "focused"
)

// ComplexityProgression describes how question complexity changes over time
type ComplexityProgression string

const (
	ComplexityIncreasing ComplexityProgression = "increasing"
	ComplexityDecreasing ComplexityProgression = "decreasing"
	ComplexityStable     ComplexityProgression = "stable"
)

// Conversation pattern tags produced by the pattern detectors
const (
	PatternIncreasingComplexity = "increasing_complexity"
	PatternTopicJumping         = "topic_jumping"
	PatternRepetitiveQuestions  = "repetitive_questioning"
	PatternCasualDrift          = "casual_drift"
	PatternDeepDive             = "deep_dive"
	PatternHighSatisfaction     = "high_satisfaction"
	PatternFrustration          = "potential_frustration"
)

// ConversationTurn is one question/response exchange. Owned exclusively by
// its ConversationContext and immutable once created.
type ConversationTurn struct {
	ID           string
	Question     string
	Response     StructuredResponse
	Intent       *Intent
	Strategy     *ResponseStrategy
	Satisfaction *int // 1-5 user rating, nil until feedback arrives
	Timestamp    time.Time
}

// ConversationContext is the per-session state tracked across turns
type ConversationContext struct {
	SessionID        string
	DocumentID       string
	History          []ConversationTurn
	CurrentTone      ToneType
	TopicProgression []string
	ExpertiseLevel   ExpertiseLevel
	PreferredStyle   string
}

// LastActivity returns the timestamp of the most recent turn, or zero time
func (c *ConversationContext) LastActivity() time.Time {
	if len(c.History) == 0 {
		return time.Time{}
	}
	return c.History[len(c.History)-1].Timestamp
}

// FlowSummary is the result of conversation flow analysis (needs >= 2 turns)
type FlowSummary struct {
	SessionID             string
	FlowType              FlowType
	TopicCoherence        float64
	EngagementLevel       float64
	ComplexityProgression ComplexityProgression
	SuggestedDirections   []string
}

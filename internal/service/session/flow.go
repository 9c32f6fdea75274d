package session

import (
	"strings"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/lexicon"
	"github.com/kapu/contract-assistant-go/internal/util"
)

func determineFlowType(conv *domain.ConversationContext) domain.FlowType {
	if len(conv.History) < 3 {
		return domain.FlowExploratory
	}

	unique := make(map[string]struct{})
	for _, turn := range lastTurns(conv.History, constants.Context.RecentTurnWindow) {
		for _, topic := range lexicon.ExtractTopics(turn.Question) {
			unique[topic] = struct{}{}
		}
	}

	switch {
	case len(unique) <= 2:
		return domain.FlowFocused
	case len(unique) > 4:
		return domain.FlowExploratory
	default:
		return domain.FlowLinear
	}
}

// topicCoherence is 1 minus the unique-to-total topic ratio over the last
// ten turns; a conversation circling the same topics scores high
func topicCoherence(conv *domain.ConversationContext) float64 {
	history := lastTurns(conv.History, 10)
	if len(history) < 2 {
		return 1.0
	}

	var all []string
	unique := make(map[string]struct{})
	for _, turn := range history {
		for _, topic := range lexicon.ExtractTopics(turn.Question) {
			all = append(all, topic)
			unique[topic] = struct{}{}
		}
	}

	if len(all) == 0 {
		return 0.5
	}
	return util.Clamp01(1.0 - float64(len(unique))/float64(len(all)))
}

func engagementLevel(conv *domain.ConversationContext) float64 {
	history := lastTurns(conv.History, constants.Context.RecentTurnWindow)
	if len(history) == 0 {
		return 0.5
	}

	score := 0.0
	for _, turn := range history {
		wordCount := len(strings.Fields(turn.Question))
		if wordCount > 10 {
			score += 0.2
		} else if wordCount > 5 {
			score += 0.1
		}

		lowered := strings.ToLower(turn.Question)
		if util.ContainsAny(lowered, []string{"also", "additionally", "furthermore", "what about"}) {
			score += 0.1
		}

		if turn.Response.Tone == domain.ToneConversational || turn.Response.Tone == domain.TonePlayful {
			score += 0.1
		}
	}
	return util.Clamp01(score)
}

func complexityProgression(conv *domain.ConversationContext) domain.ComplexityProgression {
	history := lastTurns(conv.History, constants.Context.RecentTurnWindow)
	if len(history) < 2 {
		return domain.ComplexityStable
	}

	scores := make([]float64, len(history))
	for i, turn := range history {
		scores[i] = questionComplexity(turn.Question)
	}

	mid := len(scores) / 2
	firstAvg := average(scores[:mid])
	secondAvg := average(scores[mid:])

	switch {
	case secondAvg > firstAvg*1.2:
		return domain.ComplexityIncreasing
	case secondAvg < firstAvg*0.8:
		return domain.ComplexityDecreasing
	default:
		return domain.ComplexityStable
	}
}

func questionComplexity(question string) float64 {
	lowered := strings.ToLower(question)

	score := float64(util.CountMatches(lowered, []string{"liability", "indemnification", "derivative", "ip", "jurisdiction"}))
	score += float64(len(strings.Fields(lowered))) / 10
	score += float64(strings.Count(lowered, ",") + strings.Count(lowered, ";"))
	return score
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func suggestDirections(conv *domain.ConversationContext) []string {
	recentTopics := make(map[string]struct{})
	for _, turn := range lastTurns(conv.History, 3) {
		for _, topic := range lexicon.ExtractTopics(turn.Question) {
			recentTopics[topic] = struct{}{}
		}
	}

	var suggestions []string
	if _, ok := recentTopics["liability"]; ok {
		suggestions = append(suggestions, "Explore indemnification and risk allocation")
	}
	if _, ok := recentTopics["intellectual property"]; ok {
		suggestions = append(suggestions, "Discuss ownership and licensing terms")
	}
	if _, ok := recentTopics["termination"]; ok {
		suggestions = append(suggestions, "Review post-termination obligations")
	}

	switch conv.ExpertiseLevel {
	case domain.ExpertiseBeginner:
		suggestions = append(suggestions, "Provide foundational contract concepts")
	case domain.ExpertiseExpert:
		suggestions = append(suggestions, "Dive into advanced legal implications")
	}

	if len(suggestions) == 0 {
		suggestions = []string{
			"Explore key risk factors in the agreement",
			"Discuss practical implementation considerations",
			"Review compliance and monitoring requirements",
		}
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

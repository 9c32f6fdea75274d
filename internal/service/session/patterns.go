package session

import (
	"strings"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/lexicon"
	"github.com/kapu/contract-assistant-go/internal/util"
)

// detectRepetitiveQuestion reports whether the incoming question heavily
// overlaps any recent question
func detectRepetitiveQuestion(recent []domain.ConversationTurn, question string) bool {
	if len(recent) == 0 {
		return false
	}

	currentWords := util.WordSet(question)
	if len(currentWords) == 0 {
		return false
	}

	for _, turn := range recent {
		turnWords := util.WordSet(turn.Question)
		overlap := 0
		for w := range currentWords {
			if _, ok := turnWords[w]; ok {
				overlap++
			}
		}
		if float64(overlap)/float64(len(currentWords)) > constants.Context.RepetitionOverlap {
			return true
		}
	}
	return false
}

// detectComplexityIncrease compares the first and last questions of a window
func detectComplexityIncrease(turns []domain.ConversationTurn) bool {
	if len(turns) < 2 {
		return false
	}

	first := len(strings.Fields(turns[0].Question))
	last := len(strings.Fields(turns[len(turns)-1].Question))
	return float64(last) > float64(first)*constants.Context.ComplexityGrowth
}

// detectCasualShift reports whether the latest question reads casual
func detectCasualShift(turns []domain.ConversationTurn) bool {
	if len(turns) == 0 {
		return false
	}
	lowered := strings.ToLower(turns[len(turns)-1].Question)
	return util.ContainsAny(lowered, []string{"thanks", "cool", "awesome", "great", "nice"})
}

// detectTopicShift reports whether the question shares no topics with the
// last two turns
func detectTopicShift(conv *domain.ConversationContext, question string) bool {
	if len(conv.History) == 0 {
		return false
	}

	recentTopics := make(map[string]struct{})
	for _, turn := range lastTurns(conv.History, 2) {
		for _, topic := range lexicon.ExtractTopics(turn.Question) {
			recentTopics[topic] = struct{}{}
		}
	}

	currentTopics := lexicon.ExtractTopics(question)
	if len(recentTopics) == 0 || len(currentTopics) == 0 {
		return false
	}

	for _, topic := range currentTopics {
		if _, ok := recentTopics[topic]; ok {
			return false
		}
	}
	return true
}

// detectTopicJumping reports whether nearly every turn changes topic
func detectTopicJumping(turns []domain.ConversationTurn) bool {
	if len(turns) < 3 {
		return false
	}

	topicSets := make([]map[string]struct{}, len(turns))
	for i, turn := range turns {
		topicSets[i] = make(map[string]struct{})
		for _, topic := range lexicon.ExtractTopics(turn.Question) {
			topicSets[i][topic] = struct{}{}
		}
	}

	transitions := 0
	for i := 1; i < len(topicSets); i++ {
		shared := false
		for topic := range topicSets[i] {
			if _, ok := topicSets[i-1][topic]; ok {
				shared = true
				break
			}
		}
		if !shared {
			transitions++
		}
	}
	return transitions >= len(turns)-1
}

// detectRepetitivePattern checks whether question openings repeat across a window
func detectRepetitivePattern(turns []domain.ConversationTurn) bool {
	if len(turns) < 3 {
		return false
	}

	openings := make(map[string]struct{})
	for _, turn := range turns {
		words := strings.Fields(strings.ToLower(turn.Question))
		if len(words) > 3 {
			words = words[:3]
		}
		openings[strings.Join(words, " ")] = struct{}{}
	}

	return float64(len(openings)) < float64(len(turns))/2
}

// detectCasualDrift reports whether at least half the recent responses came
// out conversational or playful
func detectCasualDrift(turns []domain.ConversationTurn) bool {
	if len(turns) == 0 {
		return false
	}

	casual := 0
	for _, turn := range turns {
		if turn.Response.Tone == domain.ToneConversational || turn.Response.Tone == domain.TonePlayful {
			casual++
		}
	}
	return float64(casual) >= float64(len(turns))/2
}

// detectDeepDive reports repeated focus on a narrow topic set
func detectDeepDive(turns []domain.ConversationTurn) bool {
	if len(turns) < 3 {
		return false
	}

	var all []string
	unique := make(map[string]struct{})
	for _, turn := range turns {
		for _, topic := range lexicon.ExtractTopics(turn.Question) {
			all = append(all, topic)
			unique[topic] = struct{}{}
		}
	}

	return len(all) >= 3 && len(unique) <= 2
}

func detectSatisfaction(turns []domain.ConversationTurn) bool {
	for _, turn := range turns {
		if util.ContainsAny(strings.ToLower(turn.Question), lexicon.SatisfactionIndicators) {
			return true
		}
	}
	return false
}

func detectFrustration(turns []domain.ConversationTurn) bool {
	for _, turn := range turns {
		if util.ContainsAny(strings.ToLower(turn.Question), lexicon.FrustrationIndicators) {
			return true
		}
	}
	return false
}

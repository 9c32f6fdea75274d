// Package classifier turns raw question text into an Intent with confidence
// scores for routing decisions. Classification never fails: any internal
// fault degrades to the safe default intent.
package classifier

import (
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/lexicon"
	"github.com/kapu/contract-assistant-go/internal/util"
)

var definitionPhrases = []string{"what is", "what does", "define", "meaning of"}

var definitionPhrasesWide = []string{"what is", "what are", "what does", "define", "explain", "meaning of"}

var provisionWords = []string{"provisions", "clauses", "terms", "sections", "articles"}

var documentSpecificWords = []string{"this", "the contract", "the agreement", "document", "here", "above", "below"}

var generalLegalTerms = []string{"mta", "nda", "liability clause", "intellectual property", "contract", "agreement"}

type Classifier struct {
	cache  *gocache.Cache
	logger *zap.Logger
}

func New(logger *zap.Logger) *Classifier {
	return &Classifier{
		cache:  gocache.New(constants.Classifier.CacheTTL, constants.Classifier.CacheSweep),
		logger: logger,
	}
}

// Classify computes the intent for a question. The optional conversation
// context biases nothing today but keeps the call signature stable for
// context-aware scoring.
func (c *Classifier) Classify(question string, conv *domain.ConversationContext) (intent domain.Intent) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Classification panicked, using safe default", zap.Any("cause", r))
			intent = domain.SafeDefaultIntent()
		}
	}()

	cacheKey := util.Normalize(question)
	if cached, ok := c.cache.Get(cacheKey); ok {
		if hit, ok := cached.(domain.Intent); ok {
			c.logger.Debug("Intent cache hit", zap.String("primary", hit.Primary.String()))
			return hit
		}
	}

	features := extractFeatures(question)
	scores := c.scoreIntents(features, question)

	primary, confidence := argmax(scores)

	var secondary []domain.IntentType
	for _, it := range intentOrder {
		if it != primary && scores[it] >= constants.Classifier.SecondaryThreshold {
			secondary = append(secondary, it)
		}
	}

	intent = domain.Intent{
		Primary:              primary,
		Confidence:           confidence,
		Secondary:            secondary,
		DocumentRelevance:    documentRelevanceScore(features),
		Casualness:           casualnessLevel(features),
		RequiresMTAExpertise: len(features.MTATerms) >= 1,
		RequiresFallback:     primary == domain.IntentOffTopic || primary == domain.IntentCasual,
	}

	c.cache.SetDefault(cacheKey, intent)

	c.logger.Debug("Question classified",
		zap.String("primary", primary.String()),
		zap.Float64("confidence", confidence),
		zap.Int("legal_terms", len(features.LegalTerms)),
		zap.Int("mta_terms", len(features.MTATerms)),
	)

	return intent
}

// AssessCasualness exposes the casualness heuristic on raw text
func (c *Classifier) AssessCasualness(question string) float64 {
	return casualnessLevel(extractFeatures(question))
}

// DetectDocumentRelevance scores how relevant a question is to a concrete
// document by keyword overlap, with a boost for legal terms when the
// document carries a legal classification
func (c *Classifier) DetectDocumentRelevance(question string, doc *domain.Document) float64 {
	if doc == nil || doc.Text == "" {
		return 0.0
	}

	lowered := util.Normalize(question)
	docText := strings.ToLower(doc.Text)
	docTitle := strings.ToLower(doc.Title)

	keywords := lexicon.ExtractKeywords(lowered)
	if len(keywords) == 0 {
		return 0.0
	}

	matches := 0
	for _, word := range keywords {
		if strings.Contains(docText, word) || strings.Contains(docTitle, word) {
			matches++
		}
	}
	relevance := float64(matches) / float64(len(keywords))

	if doc.IsLegal() {
		if legalTerms := lexicon.FindLegalTerms(lowered); len(legalTerms) > 0 {
			boost := float64(len(legalTerms)) * 0.1
			if boost > 0.3 {
				boost = 0.3
			}
			relevance += boost
		}
	}

	return util.Clamp01(relevance)
}

var intentOrder = []domain.IntentType{
	domain.IntentDocumentRelated,
	domain.IntentOffTopic,
	domain.IntentContractGeneral,
	domain.IntentCasual,
}

func argmax(scores map[domain.IntentType]float64) (domain.IntentType, float64) {
	best := intentOrder[0]
	bestScore := scores[best]
	for _, it := range intentOrder[1:] {
		if scores[it] > bestScore {
			best = it
			bestScore = scores[it]
		}
	}
	return best, bestScore
}

// scoreIntents applies the additive scoring rules and normalizes the four
// category scores to sum to one
func (c *Classifier) scoreIntents(features Features, question string) map[domain.IntentType]float64 {
	scores := map[domain.IntentType]float64{
		domain.IntentDocumentRelated: 0,
		domain.IntentOffTopic:        0,
		domain.IntentContractGeneral: 0,
		domain.IntentCasual:          0,
	}

	text := util.Normalize(question)

	// Off-topic first so obvious misfires win the tie-break
	offTopicMatches := lexicon.CountOffTopicPatterns(text)
	offTopicWords := util.CountMatches(text, lexicon.OffTopicWords)
	playfulMatches := util.CountMatches(text, lexicon.PlayfulPatterns)
	hasStyleRequest := lexicon.IsStyleRequest(text)

	if offTopicMatches > 0 || offTopicWords > 0 || playfulMatches > 0 || hasStyleRequest {
		total := float64(offTopicMatches + offTopicWords + playfulMatches*2)
		if hasStyleRequest {
			total += constants.Classifier.StyleRequestBoost
		}
		score := total * constants.Classifier.OffTopicScoreWeight
		if score > constants.Classifier.OffTopicScoreCap {
			score = constants.Classifier.OffTopicScoreCap
		}
		scores[domain.IntentOffTopic] += score
	}

	offTopic := scores[domain.IntentOffTopic]

	// Casual scoring is suppressed when the question is strongly off-topic
	casualness := casualnessLevel(features)
	if casualness > 0.3 && offTopic < constants.Classifier.CasualSuppression {
		scores[domain.IntentCasual] += casualness * constants.Classifier.CasualWeight
	}

	hasLegalSignal := len(features.LegalTerms) > 0 || len(features.ContractConcepts) > 0

	isDefinition := util.ContainsAny(text, definitionPhrases)
	asksAboutProvisions := util.ContainsAny(text, provisionWords)
	// "What are" questions about provisions read as document questions
	if strings.Contains(text, "what are") && asksAboutProvisions {
		isDefinition = false
	}

	if !isDefinition {
		if hasLegalSignal && offTopic < constants.Classifier.CasualSuppression {
			scores[domain.IntentDocumentRelated] += constants.Classifier.DocumentTermBoost
		}
		if len(features.QuestionWords) > 0 && hasLegalSignal && offTopic < constants.Classifier.CasualSuppression {
			scores[domain.IntentDocumentRelated] += constants.Classifier.DocumentQuestionTerm
		}
	} else if util.ContainsAny(text, documentSpecificWords) && hasLegalSignal && offTopic < constants.Classifier.CasualSuppression {
		scores[domain.IntentDocumentRelated] += constants.Classifier.DefinitionDocBoost
	}

	if features.FormalityScore > 0.6 && offTopic < constants.Classifier.CasualSuppression {
		scores[domain.IntentDocumentRelated] += constants.Classifier.FormalityBoost
	}

	// Definition-style questions about legal concepts without document
	// anchoring are general knowledge, not document analysis
	isDefinitionWide := util.ContainsAny(text, definitionPhrasesWide)
	hasGeneralLegalTerm := util.ContainsAny(text, generalLegalTerms)

	if isDefinitionWide && (hasLegalSignal || hasGeneralLegalTerm) {
		if util.ContainsAny(text, documentSpecificWords) {
			scores[domain.IntentDocumentRelated] += constants.Classifier.DocumentQuestionTerm
		} else {
			scores[domain.IntentContractGeneral] += constants.Classifier.GeneralDefinition
		}
	}

	if len(features.LegalTerms) > 0 && !isDefinitionWide {
		scores[domain.IntentContractGeneral] += constants.Classifier.GeneralTermBoost
	}
	if len(features.ContractConcepts) > 0 && features.FormalityScore > 0.5 {
		scores[domain.IntentContractGeneral] += constants.Classifier.GeneralTermBoost
	}

	// Final document boost, reduced when playful phrasing is present
	if hasLegalSignal && offTopic < 0.3 {
		reduction := float64(playfulMatches) * 0.1
		if hasStyleRequest {
			reduction += 0.3
		}
		if boost := 0.2 - reduction; boost > 0 {
			scores[domain.IntentDocumentRelated] += boost
		}
	}

	total := 0.0
	for _, s := range scores {
		total += s
	}
	if total > 0 {
		for k, s := range scores {
			scores[k] = s / total
		}
	} else {
		// Absorbing default when no signal fires at all
		scores[domain.IntentDocumentRelated] = 1.0
	}

	return scores
}

func documentRelevanceScore(features Features) float64 {
	relevance := 0.0

	if n := len(features.LegalTerms); n > 0 {
		boost := float64(n) * 0.1
		if boost > 0.4 {
			boost = 0.4
		}
		relevance += boost
	}
	if n := len(features.ContractConcepts); n > 0 {
		boost := float64(n) * 0.15
		if boost > 0.5 {
			boost = 0.5
		}
		relevance += boost
	}
	if len(features.QuestionWords) > 0 {
		relevance += 0.2
	}
	if features.FormalityScore > 0.6 {
		relevance += 0.2
	}

	return util.Clamp01(relevance)
}

func casualnessLevel(features Features) float64 {
	casualness := 0.0

	if n := len(features.CasualIndicators); n > 0 {
		boost := float64(n) * 0.2
		if boost > 0.6 {
			boost = 0.6
		}
		casualness += boost
	}

	casualness += (1.0 - features.FormalityScore) * 0.4

	if features.WordCount < 5 {
		casualness += 0.2
	}

	return util.Clamp01(casualness)
}

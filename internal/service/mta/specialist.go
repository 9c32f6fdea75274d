// Package mta provides material transfer agreement expertise: extracting
// MTA context from documents and enriching answers with research-specific
// insight.
package mta

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/lexicon"
	"github.com/kapu/contract-assistant-go/internal/util"
)

var providerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)provider[:\s]+([^,\n]+)`),
	regexp.MustCompile(`(?i)providing institution[:\s]+([^,\n]+)`),
	regexp.MustCompile(`(?i)material provided by[:\s]+([^,\n]+)`),
}

var recipientPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)recipient[:\s]+([^,\n]+)`),
	regexp.MustCompile(`(?i)receiving institution[:\s]+([^,\n]+)`),
	regexp.MustCompile(`(?i)material received by[:\s]+([^,\n]+)`),
}

type Specialist struct {
	logger *zap.Logger
}

func NewSpecialist(logger *zap.Logger) *Specialist {
	return &Specialist{logger: logger}
}

// IsMTADocument reports whether a document reads like a material transfer
// agreement
func IsMTADocument(doc *domain.Document) bool {
	if doc == nil {
		return false
	}
	lowered := strings.ToLower(doc.Title + " " + doc.Text)
	return util.CountMatches(lowered, lexicon.MTADocumentIndicators) >= constants.Router.MTAIndicatorMinimum
}

// AnalyzeContext extracts the MTA-specific context from a document
func (s *Specialist) AnalyzeContext(doc *domain.Document) domain.MTAContext {
	content := strings.ToLower(doc.Text)

	return domain.MTAContext{
		DocumentID:       doc.ID,
		ProviderEntity:   firstSubmatch(content, providerPatterns),
		RecipientEntity:  firstSubmatch(content, recipientPatterns),
		MaterialTypes:    findAll(content, lexicon.MTAMaterialKeywords),
		ResearchPurposes: suffixAll(content, lexicon.MTAPurposeKeywords, " activities"),
		IPConsiderations: ipConsiderations(content),
		KeyRestrictions:  extractRestrictions(content),
		Collaboration:    collaborationType(content),
	}
}

// ProvideExpertise builds MTA insight for a question against an analyzed
// document context
func (s *Specialist) ProvideExpertise(question string, context domain.MTAContext) domain.MTAInsight {
	lowered := strings.ToLower(question)

	return domain.MTAInsight{
		ConceptExplanations:  conceptExplanations(lowered),
		ResearchImplications: researchImplications(lowered),
		CommonPractices:      commonPractices(lowered),
		RiskConsiderations:   riskConsiderations(lowered),
		SuggestedQuestions:   suggestedQuestions(lowered),
	}
}

// ExplainConcepts maps concept names to their glossary explanations, with a
// generic fallback for unknown terms
func (s *Specialist) ExplainConcepts(concepts []string) map[string]string {
	explanations := make(map[string]string, len(concepts))
	for _, concept := range concepts {
		key := strings.ToLower(concept)
		if explanation, ok := lexicon.MTAGlossary[key]; ok {
			explanations[concept] = explanation
		} else {
			explanations[concept] = fmt.Sprintf(
				"In MTA context: %s refers to a specific aspect of material transfer agreements that should be carefully reviewed.",
				concept)
		}
	}
	return explanations
}

// SuggestConsiderations proposes MTA review points keyed off analysis content
func (s *Specialist) SuggestConsiderations(analysisContent string) []string {
	lowered := strings.ToLower(analysisContent)
	var suggestions []string

	if strings.Contains(lowered, "derivative") || strings.Contains(lowered, "modification") {
		suggestions = append(suggestions, "Consider who owns intellectual property rights to derivatives and modifications")
	}
	if strings.Contains(lowered, "publication") {
		suggestions = append(suggestions, "Review publication timeline requirements and approval processes")
	}
	if strings.Contains(lowered, "commercial") {
		suggestions = append(suggestions, "Clarify restrictions on commercial use and future licensing opportunities")
	}
	if strings.Contains(lowered, "liability") {
		suggestions = append(suggestions, "Assess liability limitations and indemnification provisions")
	}
	if strings.Contains(lowered, "confidential") {
		suggestions = append(suggestions, "Evaluate confidentiality obligations and their impact on research collaboration")
	}
	if strings.Contains(lowered, "termination") {
		suggestions = append(suggestions, "Understand material return or destruction requirements upon termination")
	}

	if len(suggestions) == 0 {
		suggestions = []string{
			"Verify the scope of permitted research activities",
			"Check for any restrictions on sharing with collaborators",
			"Review intellectual property ownership provisions",
		}
	}

	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}

// ResearchContext explains a clause from the research collaboration angle
func (s *Specialist) ResearchContext(clause string) string {
	lowered := strings.ToLower(clause)

	switch {
	case strings.Contains(lowered, "research use only"):
		return "This clause restricts use to non-commercial research, which is common in academic MTAs to protect the provider's commercial interests while enabling scientific advancement."
	case strings.Contains(lowered, "derivative"):
		return "Derivative provisions are crucial in research settings as they determine ownership of improvements, modifications, or new discoveries made using the original material."
	case strings.Contains(lowered, "publication"):
		return "Publication clauses balance the academic need to share research findings with the provider's need to protect proprietary information and review results before disclosure."
	case strings.Contains(lowered, "collaboration"):
		return "Collaboration terms define how the material can be shared with other researchers, which is essential for multi-institutional research projects."
	default:
		return "This provision should be evaluated in the context of your research goals and institutional policies for material transfer agreements."
	}
}

func firstSubmatch(content string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		if match := p.FindStringSubmatch(content); len(match) > 1 {
			return strings.TrimSpace(match[1])
		}
	}
	return ""
}

func findAll(content string, keywords []string) []string {
	var found []string
	for _, k := range keywords {
		if strings.Contains(content, k) {
			found = append(found, k)
		}
	}
	return found
}

func suffixAll(content string, keywords []string, suffix string) []string {
	var found []string
	for _, k := range keywords {
		if strings.Contains(content, k) {
			found = append(found, k+suffix)
		}
	}
	return found
}

func ipConsiderations(content string) []string {
	var considerations []string
	for _, k := range lexicon.MTAIPKeywords {
		if strings.Contains(content, k) {
			considerations = append(considerations, titleCase(k)+" rights and ownership")
		}
	}
	return considerations
}

func titleCase(term string) string {
	words := strings.Fields(term)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// extractRestrictions returns the first sentence containing each restriction
// marker, capped at three
func extractRestrictions(content string) []string {
	sentences := util.SplitSentences(content)

	var restrictions []string
	for _, marker := range lexicon.MTARestrictionMarkers {
		if !strings.Contains(content, marker) {
			continue
		}
		for _, sentence := range sentences {
			if strings.Contains(sentence, marker) {
				restrictions = append(restrictions, sentence)
				break
			}
		}
		if len(restrictions) == 3 {
			break
		}
	}
	return restrictions
}

func collaborationType(content string) domain.CollaborationType {
	hasCommercial := strings.Contains(content, "commercial")
	hasAcademic := strings.Contains(content, "academic")

	switch {
	case hasCommercial && hasAcademic:
		return domain.CollaborationHybrid
	case hasCommercial || strings.Contains(content, "industry"):
		return domain.CollaborationCommercial
	default:
		return domain.CollaborationAcademic
	}
}

func conceptExplanations(question string) map[string]string {
	explanations := make(map[string]string)

	concepts := make([]string, 0, len(lexicon.MTAGlossary))
	for concept := range lexicon.MTAGlossary {
		concepts = append(concepts, concept)
	}
	sort.Strings(concepts)

	for _, concept := range concepts {
		if strings.Contains(question, concept) {
			explanations[concept] = lexicon.MTAGlossary[concept]
		}
	}
	return explanations
}

func researchImplications(question string) []string {
	var implications []string

	if strings.Contains(question, "derivative") || strings.Contains(question, "modification") {
		implications = append(implications,
			"Research derivatives may be subject to provider's IP claims",
			"Consider impact on future research and commercialization")
	}
	if strings.Contains(question, "publication") {
		implications = append(implications,
			"Publication delays may affect research timelines and career advancement",
			"Review requirements may limit academic freedom")
	}
	if strings.Contains(question, "collaboration") {
		implications = append(implications,
			"Sharing restrictions may limit multi-institutional research opportunities",
			"Third-party access may require additional approvals")
	}
	return implications
}

func commonPractices(question string) []string {
	var practices []string

	if strings.Contains(question, "negotiation") || strings.Contains(question, "terms") {
		practices = append(practices,
			"Negotiate reasonable publication review periods (30-60 days)",
			"Seek to limit liability to direct damages only",
			"Clarify ownership of improvements and derivatives")
	}
	if strings.Contains(question, "ip") || strings.Contains(question, "intellectual property") {
		practices = append(practices,
			"Retain rights to independently developed improvements",
			"Negotiate joint ownership for collaborative developments",
			"Include background IP protection clauses")
	}

	if len(practices) > 3 {
		practices = practices[:3]
	}
	return practices
}

func riskConsiderations(question string) []string {
	var risks []string
	for _, risk := range lexicon.MTARiskFactors {
		for _, keyword := range strings.Fields(strings.ToLower(risk)) {
			if strings.Contains(question, keyword) {
				risks = append(risks, risk)
				break
			}
		}
		if len(risks) == 3 {
			break
		}
	}
	return risks
}

// suggestedQuestions filters the canned follow-ups down to those that do not
// heavily overlap the asked question
func suggestedQuestions(question string) []string {
	canned := []string{
		"What are the key restrictions on material use?",
		"Who owns intellectual property rights to derivatives?",
		"What are the publication review requirements?",
		"Are there limitations on sharing with collaborators?",
		"What happens to the material upon agreement termination?",
	}

	questionWords := util.WordSet(question)

	var filtered []string
	for _, suggestion := range canned {
		suggestionWords := util.WordSet(suggestion)
		overlap := 0
		for w := range questionWords {
			if _, ok := suggestionWords[w]; ok {
				overlap++
			}
		}
		if float64(overlap)/float64(len(suggestionWords)) < 0.5 {
			filtered = append(filtered, suggestion)
		}
		if len(filtered) == 3 {
			break
		}
	}
	return filtered
}

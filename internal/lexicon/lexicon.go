// Package lexicon holds the shared keyword tables and compiled patterns used
// by the classifier, analyzers, and synthesizers. Loaded once, read-only.
package lexicon

import (
	"regexp"
	"strings"
)

// General legal and contract vocabulary
var LegalTermsGeneral = []string{
	"agreement", "contract", "terms", "conditions", "liability",
	"intellectual property", "confidential", "proprietary", "obligations",
	"rights", "responsibilities", "breach", "termination", "governing law",
	"jurisdiction", "dispute", "arbitration", "indemnification", "warranty",
	"clause", "provision", "section", "article", "paragraph", "subsection",
	"legal", "law", "attorney", "lawyer", "counsel", "litigation",
	"compliance", "regulation", "statute", "precedent", "case law",
}

// Material transfer agreement vocabulary
var MTATerms = []string{
	"material transfer", "research use", "derivatives", "publication",
	"recipient", "provider", "original material", "modifications",
	"research purposes", "commercial use", "third party", "ownership",
	"improvements", "inventions", "patent rights", "licensing",
	"academic", "university", "institution", "researcher", "scientist",
	"laboratory", "study", "experiment", "data", "results", "findings",
	"collaboration", "joint research", "sponsored research",
	"intellectual property",
}

var ContractConcepts = []string{
	"force majeure", "consideration", "damages", "remedy", "cure",
	"notice", "consent", "approval", "assignment", "delegation",
	"severability", "waiver", "amendment", "modification", "renewal",
	"extension", "expiration", "effective date", "execution",
	"counterpart", "signature", "witness", "notarization",
}

// Casual and conversational indicators grouped by flavor
var CasualIndicators = map[string][]string{
	"informal_greetings": {"hi", "hello", "hey", "sup", "yo"},
	"casual_language": {
		"cool", "awesome", "sweet", "nice", "great", "perfect",
		"yeah", "yep", "nope", "ok", "okay", "sure", "gotcha",
		"thanks", "thx", "ty", "appreciate", "cheers",
	},
	"conversational_fillers": {
		"um", "uh", "well", "so", "like", "you know", "i mean",
		"basically", "actually", "honestly", "frankly",
	},
	"playful_language": {
		"lol", "haha", "hehe", "funny", "joke", "kidding",
		"silly", "crazy", "weird", "strange", "odd", "vibe",
		"style of", "like a", "as if", "pretend", "imagine",
		"mouse", "recipe", "cooking",
	},
	"questions_about_system": {
		"who are you", "what are you", "how do you work", "tell me about yourself",
		"what can you do", "help me", "how does this work",
	},
}

var QuestionWords = []string{"what", "how", "when", "where", "why", "which", "who"}

var questionWordPattern = regexp.MustCompile(`(?i)\b(what|how|why|when|where|who|which|can|could|would|should|is|are|does|do)\b`)

// Off-topic signals checked before everything else
var offTopicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(weather|sports|food|music|movie|tv|game|politics)\b`),
	regexp.MustCompile(`(?i)\b(recipe|cooking|restaurant|travel|vacation)\b`),
	regexp.MustCompile(`(?i)\b(birthday|holiday|weekend|party|celebration)\b`),
	regexp.MustCompile(`(?i)\b(health|doctor|medicine|exercise|fitness)\b`),
	regexp.MustCompile(`(?i)\b(technology|computer|phone|internet|social media)\b`),
	regexp.MustCompile(`(?i)\b(style of|in the style|like a|as if|pretend|imagine)\b`),
	regexp.MustCompile(`(?i)\b(joke|funny|humor|laugh|comedy)\b`),
	regexp.MustCompile(`(?i)\b(vibe|feeling|mood|atmosphere)\b`),
	regexp.MustCompile(`(?i)\b(mouse|animal|pet|creature)\b`),
}

var OffTopicWords = []string{
	"weather", "sports", "food", "music", "movie", "tv", "game", "politics",
	"recipe", "cooking", "cook", "restaurant", "travel", "vacation", "birthday",
	"holiday", "weekend", "party", "celebration", "health", "doctor",
	"medicine", "exercise", "fitness", "technology", "computer", "phone",
	"internet", "social media", "pasta", "dinner", "lunch", "breakfast",
}

var PlayfulPatterns = []string{
	"style of", "in the style", "like a", "as if", "pretend", "imagine",
	"joke", "funny", "humor", "vibe", "feeling", "mouse", "animal",
}

// Tone lexicons, one per profile dimension
var CasualWords = []string{
	"hey", "hi", "yo", "sup", "cool", "awesome", "dude", "lol", "btw", "fyi",
	"gonna", "wanna", "kinda", "sorta", "yeah", "yep", "nah", "ok", "okay",
}

var FormalWords = []string{
	"please", "kindly", "would you", "could you", "thank you", "appreciate",
	"grateful", "respectfully", "sincerely", "regarding", "concerning",
}

var FormalStructures = []string{"would you please", "i would like to", "may i"}

var TechnicalWords = []string{
	"clause", "provision", "liability", "indemnification", "breach", "jurisdiction",
	"governing law", "force majeure", "intellectual property", "confidentiality",
	"warranty", "covenant", "consideration", "termination", "amendment",
}

var BusinessWords = []string{
	"contract", "agreement", "terms", "conditions", "obligations", "parties",
	"deliverables", "milestones", "payment", "invoice", "compliance", "audit",
}

var StartupWords = []string{
	"disrupt", "scale", "pivot", "iterate", "mvp", "agile", "lean", "growth hack",
	"unicorn", "burn rate", "runway", "equity", "vesting", "cap table",
}

var SlangWords = []string{
	"gonna", "wanna", "gotta", "dunno", "ain't", "y'all", "whatcha", "lemme",
}

// Ambiguity vocabulary
var AmbiguousWords = []string{"maybe", "perhaps", "might", "could be", "not sure", "unclear"}

var AmbiguousIndicators = []string{"maybe", "perhaps", "not sure", "unclear", "confused"}

var VagueTerms = []string{"thing", "stuff", "something", "anything", "everything", "part", "section"}

var Pronouns = []string{"it", "this", "that", "they", "them", "these", "those"}

var ConditionalWords = []string{"if", "when", "unless", "provided", "assuming", "suppose"}

var ComparativeWords = []string{"better", "worse", "more", "less", "compared to", "versus", "rather than"}

// Pattern selection vocabulary
var DataKeywords = []string{
	"table", "list", "export", "download", "csv", "excel", "data",
	"summary", "breakdown", "overview", "comparison", "timeline",
}

var DataIndicators = []string{"table", "list", "export", "download", "csv", "excel", "data"}

var GeneralIndicators = []string{"generally", "typically", "usually", "in general", "normally"}

// Formality heuristics
var formalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(please|kindly|would you|could you|may I)\b`),
	regexp.MustCompile(`(?i)\b(regarding|concerning|pursuant to|in accordance with)\b`),
	regexp.MustCompile(`(?i)\b(therefore|furthermore|moreover|however|nevertheless)\b`),
}

var InformalMarkers = []string{"yeah", "ok", "cool", "awesome"}

var PositiveWords = []string{"good", "great", "excellent", "perfect", "amazing", "wonderful", "fantastic"}

var NegativeWords = []string{"bad", "terrible", "awful", "horrible", "wrong", "problem", "issue", "error"}

// Expertise inference vocabulary
var ExpertTerms = []string{
	"derivative work", "ip assignment", "indemnification", "liability cap",
	"force majeure", "governing law", "jurisdiction", "arbitration",
}

var BeginnerTerms = []string{
	"what does this mean", "can you explain", "i don't understand",
	"simple terms", "basic question", "new to this",
}

// Topic extraction vocabulary used by the conversation tracker
var ContractTopics = []string{
	"liability", "indemnification", "termination", "intellectual property",
	"confidentiality", "payment", "delivery", "warranty", "dispute",
	"governing law", "force majeure", "assignment", "modification",
}

var MTATopics = []string{
	"material transfer", "research use", "derivatives", "publication",
	"commercial use", "provider", "recipient", "original material",
}

// Satisfaction and frustration phrase lists
var SatisfactionIndicators = []string{"thank", "great", "helpful", "perfect", "exactly", "clear"}

var FrustrationIndicators = []string{"still confused", "not clear", "don't understand", "unclear", "confusing"}

// Documents matching any of these are treated as MTA-style agreements
var MTADocumentIndicators = []string{
	"material transfer", "mta", "research material", "biological material",
	"provider", "recipient", "original material", "research use only",
}

var MTAQuestionTerms = []string{
	"derivative", "modification", "research use", "commercial use",
	"provider", "recipient", "original material", "publication",
}

// Stop words skipped during keyword extraction
var StopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {},
	"would": {}, "could": {}, "should": {}, "may": {}, "might": {}, "can": {},
	"this": {}, "that": {}, "these": {}, "those": {},
}

// FindLegalTerms returns the general legal terms and contract concepts present
// in lowercased text
func FindLegalTerms(text string) []string {
	var found []string
	for _, term := range LegalTermsGeneral {
		if strings.Contains(text, term) {
			found = append(found, term)
		}
	}
	for _, term := range ContractConcepts {
		if strings.Contains(text, term) {
			found = append(found, term)
		}
	}
	return found
}

// FindMTATerms returns the MTA vocabulary present in lowercased text
func FindMTATerms(text string) []string {
	var found []string
	for _, term := range MTATerms {
		if strings.Contains(text, term) {
			found = append(found, term)
		}
	}
	return found
}

// FindCasualIndicators returns casual language markers present in text.
// Single words must match whole tokens; multi-word phrases match substrings.
func FindCasualIndicators(text string) []string {
	lowered := strings.ToLower(text)
	tokens := make(map[string]struct{})
	for _, w := range strings.Fields(lowered) {
		tokens[strings.Trim(w, ".,!?;:")] = struct{}{}
	}

	var found []string
	for _, terms := range CasualIndicators {
		for _, term := range terms {
			if strings.Contains(term, " ") {
				if strings.Contains(lowered, term) {
					found = append(found, term)
				}
			} else if _, ok := tokens[term]; ok {
				found = append(found, term)
			}
		}
	}
	return found
}

// CountOffTopicPatterns counts how many off-topic regex patterns match text
func CountOffTopicPatterns(text string) int {
	count := 0
	for _, p := range offTopicPatterns {
		if p.MatchString(text) {
			count++
		}
	}
	return count
}

// CountFormalPatterns counts how many formality regex patterns match text
func CountFormalPatterns(text string) int {
	count := 0
	for _, p := range formalPatterns {
		if p.MatchString(text) {
			count++
		}
	}
	return count
}

// IsQuestionWord reports whether a token looks like a question or auxiliary word
func IsQuestionWord(token string) bool {
	return questionWordPattern.MatchString(token)
}

// IsStyleRequest reports whether text asks for a persona or style rendition
func IsStyleRequest(text string) bool {
	return strings.Contains(text, "style of") || strings.Contains(text, "in the style")
}

// QuestionWordCount counts distinct question words present in lowercased text
func QuestionWordCount(text string) int {
	count := 0
	for _, w := range QuestionWords {
		if strings.Contains(text, w) {
			count++
		}
	}
	return count
}

// ExtractTopics returns the known contract and MTA topics present in text
func ExtractTopics(text string) []string {
	lowered := strings.ToLower(text)
	var topics []string
	for _, topic := range ContractTopics {
		if strings.Contains(lowered, topic) {
			topics = append(topics, topic)
		}
	}
	for _, topic := range MTATopics {
		if strings.Contains(lowered, topic) {
			topics = append(topics, topic)
		}
	}
	return topics
}

// ExtractKeywords returns lowercased tokens longer than two characters that
// are not stop words
var wordPattern = regexp.MustCompile(`\b\w+\b`)

func ExtractKeywords(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := StopWords[w]; !stop && len(w) > 2 {
			keywords = append(keywords, w)
		}
	}
	return keywords
}

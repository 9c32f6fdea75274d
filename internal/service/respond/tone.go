package respond

import (
	"strings"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
)

// Tone adaptation rewrites phrasing in the body of a response. Section
// headers (lines starting with "### ") are never modified: downstream
// consumers key off them.

type replacement struct {
	from string
	to   string
}

var conversationalReplacements = []replacement{
	{"The document indicates", "From what I can see in the document"},
	{"It is recommended", "I'd recommend"},
	{"This provision states", "This part says"},
	{"In accordance with", "According to"},
	{"Furthermore", "Also"},
	{"Therefore", "So"},
	{"The analysis reveals", "What I'm seeing is"},
	{"It should be noted", "Worth noting"},
	{"The parties are required", "Both sides need to"},
	{"This clause establishes", "This section sets up"},
	{"The agreement specifies", "The contract says"},
}

var formalReplacements = []replacement{
	{"I'd say", "The analysis indicates"},
	{"looks like", "appears to be"},
	{"pretty much", "essentially"},
	{"kind of", "somewhat"},
	{"really", "particularly"},
	{"gonna", "going to"},
	{"wanna", "want to"},
	{"gotta", "must"},
	{"ok", "acceptable"},
	{"yeah", "yes"},
}

var startupReplacements = []replacement{
	{"The document indicates", "Looking at this agreement"},
	{"It is recommended", "I'd suggest"},
	{"This provision", "This clause"},
	{"The parties", "Both companies"},
	{"obligations", "commitments"},
	{"termination", "ending the partnership"},
	{"intellectual property", "IP rights"},
	{"confidentiality", "keeping things private"},
}

var legalEnhancements = []replacement{
	{" says ", " provides "},
	{" means ", " establishes "},
	{" allows ", " permits "},
	{" requires ", " mandates "},
	{" can ", " may "},
	{" must ", " shall "},
}

var technicalEnhancements = []replacement{
	{"agreement", "contractual agreement"},
	{"parties", "contracting parties"},
	{"terms", "contractual terms"},
	{"conditions", "terms and conditions"},
	{"obligations", "legal obligations"},
	{"rights", "legal rights and entitlements"},
}

// AdaptTone adjusts the response body to match the asker's tone profile.
// The dominant side of the profile decides the direction; headers stay
// verbatim in every case.
func (s *System) adaptTone(response domain.StructuredResponse, processed domain.ProcessedInput) domain.StructuredResponse {
	tone := processed.Tone

	casualWeight := tone.CasualWeight()
	formalWeight := tone.FormalWeight()

	switch {
	case casualWeight > constants.Tone.CasualDominance && casualWeight > formalWeight:
		response.Tone = domain.ToneConversational
		response.Content = applyBodyReplacements(response.Content, conversationalReplacements)

	case formalWeight > constants.Tone.FormalDominance:
		response.Tone = domain.ToneProfessional
		response.Content = applyBodyReplacements(response.Content, formalReplacements)
		if tone[domain.ToneKeyTechnical] > 0.5 {
			response.Content = applyBodyReplacements(response.Content, legalEnhancements)
		}

	case tone[domain.ToneKeyStartup] > constants.Tone.StartupThreshold:
		response.Tone = domain.ToneConversational
		response.Content = applyBodyReplacements(response.Content, startupReplacements)
		response.Content = addStartupContext(response.Content)

	case tone[domain.ToneKeyTechnical] > constants.Tone.TechnicalThreshold:
		response.Tone = domain.ToneProfessional
		response.Content = applyTechnicalEnhancements(response.Content)
	}

	if len(processed.Parts) > 1 {
		response.Content = formatMultiPart(response.Content, processed.Parts, tone)
	}

	return response
}

// applyBodyReplacements applies a replacement table line by line, leaving
// section header lines untouched
func applyBodyReplacements(content string, table []replacement) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "### ") {
			continue
		}
		for _, r := range table {
			line = strings.ReplaceAll(line, r.from, r.to)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func applyTechnicalEnhancements(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "### ") {
			continue
		}
		for _, r := range technicalEnhancements {
			// Skip terms already written in their technical form
			if strings.Contains(line, r.from) && !strings.Contains(line, r.to) {
				line = strings.ReplaceAll(line, r.from, r.to)
			}
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func addStartupContext(content string) string {
	lowered := strings.ToLower(content)
	switch {
	case strings.Contains(lowered, "equity") || strings.Contains(lowered, "vesting"):
		return content + "\n\n💡 *This is particularly important for startup equity arrangements.*"
	case strings.Contains(lowered, "intellectual property") || strings.Contains(lowered, "ip"):
		return content + "\n\n💡 *IP ownership is crucial for startup valuation and future funding.*"
	case strings.Contains(lowered, "confidentiality"):
		return content + "\n\n💡 *Protecting your startup's competitive advantage is key.*"
	}
	return content
}

package respond

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/domain"
)

const sampleContract = `This Agreement is entered into by Provider Corp and Recipient LLC.
Payment of $5000 is due within 30 days of invoice. Late payment incurs a 2% monthly fee.
Either party may terminate this Agreement with 60 days written notice.
The Provider's liability is limited to direct damages not exceeding the fees paid.`

func newTestSystem(t *testing.T) *System {
	t.Helper()
	return NewSystem(t.TempDir(), zap.NewNop())
}

func TestRespondNeverEmpty(t *testing.T) {
	s := newTestSystem(t)

	inputs := []string{
		"",
		"   ",
		"?",
		"\x00\x01",
		strings.Repeat("a", 5000),
		"What are the payment terms?",
		"🤷",
	}

	for _, input := range inputs {
		response := s.Respond(input, sampleContract)
		if strings.TrimSpace(response.Content) == "" {
			t.Fatalf("empty content for input %q", input)
		}
		if len(response.Content) < 50 {
			t.Fatalf("content below minimum length for %q: %d chars", input, len(response.Content))
		}
		if len(response.Suggestions) == 0 {
			t.Fatalf("no suggestions for input %q", input)
		}
		if response.Confidence < 0.1 || response.Confidence > 1.0 {
			t.Fatalf("confidence out of range for %q: %f", input, response.Confidence)
		}
	}
}

func TestRespondDocumentPatternSections(t *testing.T) {
	s := newTestSystem(t)

	response := s.Respond("What does the liability clause say?", sampleContract)
	if response.Pattern != domain.PatternDocument {
		t.Fatalf("expected document pattern, got %s", response.Pattern)
	}

	for _, header := range []string{headerEvidence, headerPlainEnglish, headerImplications} {
		if !strings.Contains(response.Content, header) {
			t.Fatalf("missing section %q in:\n%s", header, response.Content)
		}
	}
	if !strings.Contains(response.Content, "liability") {
		t.Fatalf("response does not mention the queried term:\n%s", response.Content)
	}
}

func TestRespondGeneralLegalSections(t *testing.T) {
	s := newTestSystem(t)

	response := s.Respond("How does liability typically work in contracts?", sampleContract)
	if response.Pattern != domain.PatternGeneralLegal {
		t.Fatalf("expected general_legal pattern, got %s", response.Pattern)
	}

	for _, header := range []string{headerStatus, headerGeneralRule, headerApplication} {
		if !strings.Contains(response.Content, header) {
			t.Fatalf("missing section %q in:\n%s", header, response.Content)
		}
	}
}

func TestRespondDataTableWithExports(t *testing.T) {
	s := newTestSystem(t)

	response := s.Respond("Can you export the payment data as a table?", sampleContract)
	if response.Pattern != domain.PatternDataTable {
		t.Fatalf("expected data_table pattern, got %s", response.Pattern)
	}
	if !containsTabularContent(response.Content) {
		t.Fatalf("no markdown table in:\n%s", response.Content)
	}
	if !strings.Contains(response.Content, exportFooter) {
		t.Fatalf("missing export footer in:\n%s", response.Content)
	}
	if !strings.Contains(response.Content, "/exports/contract_data_") {
		t.Fatalf("missing download links in:\n%s", response.Content)
	}
}

func TestRespondAmbiguousPattern(t *testing.T) {
	s := newTestSystem(t)

	response := s.Respond("I'm not sure, maybe something about that?", sampleContract)
	if response.Pattern != domain.PatternAmbiguous {
		t.Fatalf("expected ambiguous pattern, got %s", response.Pattern)
	}
	if !strings.Contains(response.Content, "🤔") {
		t.Fatalf("missing interpretation header in:\n%s", response.Content)
	}
}

func TestHeaderPreservationUnderCasualTone(t *testing.T) {
	s := newTestSystem(t)

	// Casual phrasing strong enough to trigger conversational adaptation
	response := s.Respond("hey dude, what's the deal with the liability clause lol!", sampleContract)

	if response.Pattern != domain.PatternDocument {
		t.Fatalf("expected document pattern, got %s", response.Pattern)
	}
	for _, header := range []string{headerEvidence, headerPlainEnglish, headerImplications} {
		if !strings.Contains(response.Content, header) {
			t.Fatalf("tone adaptation rewrote header %q:\n%s", header, response.Content)
		}
	}
}

func TestToneAdaptationRewritesBody(t *testing.T) {
	s := newTestSystem(t)

	original := domain.StructuredResponse{
		Content: headerEvidence + "\nThe document indicates a monthly fee. Furthermore, notice is required.",
	}
	processed := domain.ProcessedInput{
		Tone: domain.ToneProfile{
			domain.ToneKeyCasual: 0.6,
			domain.ToneKeySlang:  0.2,
		},
		Parts: []string{"single"},
	}

	adapted := s.adaptTone(original, processed)
	if adapted.Tone != domain.ToneConversational {
		t.Fatalf("expected conversational tone, got %s", adapted.Tone)
	}
	if !strings.Contains(adapted.Content, "From what I can see in the document") {
		t.Fatalf("body not adapted:\n%s", adapted.Content)
	}
	if !strings.Contains(adapted.Content, "Also") {
		t.Fatalf("connector not adapted:\n%s", adapted.Content)
	}
	if !strings.Contains(adapted.Content, headerEvidence) {
		t.Fatalf("header modified:\n%s", adapted.Content)
	}
}

func TestMultiPartResponse(t *testing.T) {
	s := newTestSystem(t)

	response := s.Respond("What are the payment terms? Also who can terminate the agreement?", sampleContract)

	if !strings.Contains(response.Content, "**1.") || !strings.Contains(response.Content, "**2.") {
		t.Fatalf("missing numbered parts in:\n%s", response.Content)
	}
	hasSynthesis := strings.Contains(response.Content, "**Synthesis:**") ||
		strings.Contains(response.Content, "**Putting it all together:**")
	if !hasSynthesis {
		t.Fatalf("missing synthesis section in:\n%s", response.Content)
	}
}

func TestSplitContentForPartsBackfillsSurplusParts(t *testing.T) {
	sections := splitContentForParts("Only one sentence here.", 3)

	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	for i, section := range sections {
		if strings.TrimSpace(section) == "" {
			t.Fatalf("section %d rendered empty: %v", i, sections)
		}
	}
}

func TestTableRoundTrip(t *testing.T) {
	table := domain.DataTable{
		Title:   "Test",
		Headers: []string{"Clause", "Value"},
		Rows: [][]string{
			{"Payment", "$5000"},
			{"Notice", "60 days"},
		},
	}

	rendered := renderMarkdownTable(table)
	parsed, ok := extractTableFromContent(rendered)
	if !ok {
		t.Fatalf("failed to parse rendered table:\n%s", rendered)
	}
	if len(parsed.Headers) != 2 || parsed.Headers[0] != "Clause" {
		t.Fatalf("headers mangled: %v", parsed.Headers)
	}
	if len(parsed.Rows) != 2 || parsed.Rows[1][1] != "60 days" {
		t.Fatalf("rows mangled: %v", parsed.Rows)
	}
}

func TestValidateEnforcesFloor(t *testing.T) {
	s := newTestSystem(t)

	response := s.validate(domain.StructuredResponse{Content: "", Confidence: 0.05})
	if response.Content == "" {
		t.Fatalf("empty content survived validation")
	}
	if len(response.Content) < 50 {
		t.Fatalf("short content survived validation: %q", response.Content)
	}
	if len(response.Suggestions) != 3 {
		t.Fatalf("expected injected suggestions, got %v", response.Suggestions)
	}
	if response.Confidence != 0.3 {
		t.Fatalf("expected floored confidence 0.3, got %f", response.Confidence)
	}
}

func TestUltimateFallbackTruncatesQuestion(t *testing.T) {
	long := strings.Repeat("liability ", 30)
	response := UltimateFallback(long)

	if !strings.Contains(response.Content, "...") {
		t.Fatalf("long question not truncated:\n%s", response.Content)
	}
	if len(response.Suggestions) != 4 {
		t.Fatalf("expected 4 canned suggestions, got %d", len(response.Suggestions))
	}
}

package analyzer

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/domain"
)

func TestProcessNeverReturnsEmptyParts(t *testing.T) {
	a := New(zap.NewNop())

	inputs := []string{
		"What are the payment terms?",
		"",
		"   ",
		"?",
		"\x00",
	}

	for _, input := range inputs {
		processed := a.Process(input)
		if len(processed.Parts) == 0 {
			t.Fatalf("no parts for input %q", input)
		}
		if processed.Confidence < 0.1 || processed.Confidence > 1.0 {
			t.Fatalf("confidence out of range for %q: %f", input, processed.Confidence)
		}
	}
}

func TestProcessEmptyInputFallsToErrorRecovery(t *testing.T) {
	a := New(zap.NewNop())

	processed := a.Process("")
	if processed.Pattern != domain.PatternErrorRecovery {
		t.Fatalf("expected error_recovery pattern, got %s", processed.Pattern)
	}
	if processed.Original != "empty input" {
		t.Fatalf("expected placeholder original, got %q", processed.Original)
	}
	if processed.Tone[domain.ToneKeyNeutral] != 1.0 {
		t.Fatalf("expected neutral tone, got %v", processed.Tone)
	}
}

func TestDetectPatternPriority(t *testing.T) {
	cases := []struct {
		input string
		want  domain.PatternType
	}{
		{"Can you export this as a table?", domain.PatternDataTable},
		{"I'm not sure what this means", domain.PatternAmbiguous},
		{"What happens when and why does which clause apply?", domain.PatternAmbiguous},
		{"How does liability typically work?", domain.PatternGeneralLegal},
		{"What does clause 5 say?", domain.PatternDocument},
		// Data indicators outrank ambiguity markers
		{"Maybe show me a list of deadlines?", domain.PatternDataTable},
	}

	for _, tc := range cases {
		if got := DetectPattern(tc.input); got != tc.want {
			t.Fatalf("DetectPattern(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestDetectPatternDeterministic(t *testing.T) {
	input := "Can you summarize the data in a table and export it?"
	first := DetectPattern(input)
	for i := 0; i < 10; i++ {
		if got := DetectPattern(input); got != first {
			t.Fatalf("pattern changed between runs: %s vs %s", first, got)
		}
	}
}

func TestAnalyzeToneCasualDetection(t *testing.T) {
	casual := AnalyzeTone("hey dude, what's the deal with this contract lol!")
	formal := AnalyzeTone("Could you kindly clarify the indemnification provision, please?")

	if casual[domain.ToneKeyCasual] <= formal[domain.ToneKeyCasual] {
		t.Fatalf("casual input scored lower on casual: %f vs %f",
			casual[domain.ToneKeyCasual], formal[domain.ToneKeyCasual])
	}
	if formal[domain.ToneKeyFormal] <= casual[domain.ToneKeyFormal] {
		t.Fatalf("formal input scored lower on formal: %f vs %f",
			formal[domain.ToneKeyFormal], casual[domain.ToneKeyFormal])
	}

	for key, score := range casual {
		if score < 0 || score > 1 {
			t.Fatalf("tone %s out of range: %f", key, score)
		}
	}
}

func TestMeasureAmbiguity(t *testing.T) {
	vague := MeasureAmbiguity("maybe something about that thing, not sure?")
	direct := MeasureAmbiguity("What does section 4.2 say about payment deadlines?")

	if vague <= direct {
		t.Fatalf("vague question scored lower: %f vs %f", vague, direct)
	}
	if vague > 1.0 {
		t.Fatalf("ambiguity exceeds 1.0: %f", vague)
	}
}

func TestAnalyzeAmbiguitySources(t *testing.T) {
	analysis := AnalyzeAmbiguity("If this happens, what is better and who decides?")

	want := map[string]bool{
		domain.AmbiguityConditionalScenario: false,
		domain.AmbiguityComparativeAnalysis: false,
		domain.AmbiguityMultipleQuestions:   false,
		domain.AmbiguityPronounReference:    false,
	}
	for _, source := range analysis.Sources {
		if _, ok := want[source]; ok {
			want[source] = true
		}
	}
	for source, found := range want {
		if !found {
			t.Fatalf("missing ambiguity source %s in %v", source, analysis.Sources)
		}
	}

	if !analysis.HasConditionals || !analysis.HasComparatives {
		t.Fatalf("conditional/comparative flags not set: %+v", analysis)
	}
	if analysis.Level <= 0 || analysis.Level > 1 {
		t.Fatalf("level out of range: %f", analysis.Level)
	}
}

func TestSplitPartsCompoundQuestion(t *testing.T) {
	parts := SplitParts("What are the payment terms? Also who owns the derivatives and when does the contract expire?")

	if len(parts) < 2 {
		t.Fatalf("expected multiple parts, got %v", parts)
	}
	if len(parts) > 5 {
		t.Fatalf("part cap exceeded: %v", parts)
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			t.Fatalf("empty part in %v", parts)
		}
	}
}

func TestSplitPartsIdempotent(t *testing.T) {
	parts := SplitParts("What are the payment terms and who are the parties?")
	for _, part := range parts {
		again := SplitParts(part)
		if len(again) != 1 {
			t.Fatalf("re-splitting part %q produced %v", part, again)
		}
		if again[0] != part {
			t.Fatalf("re-split changed part: %q -> %q", part, again[0])
		}
	}
}

func TestSplitPartsFallsBackToOriginal(t *testing.T) {
	parts := SplitParts("why?")
	if len(parts) != 1 || parts[0] != "why?" {
		t.Fatalf("expected original as single part, got %v", parts)
	}
}

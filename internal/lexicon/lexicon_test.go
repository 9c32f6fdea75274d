package lexicon

import "testing"

func TestFindLegalTerms(t *testing.T) {
	terms := FindLegalTerms("what does the liability clause say about breach")
	if len(terms) == 0 {
		t.Fatalf("expected legal terms, got none")
	}

	has := func(want string) bool {
		for _, term := range terms {
			if term == want {
				return true
			}
		}
		return false
	}

	if !has("liability") || !has("clause") || !has("breach") {
		t.Fatalf("missing expected terms in %v", terms)
	}
}

func TestFindCasualIndicatorsWholeWords(t *testing.T) {
	// "hi" must not match inside "this"
	found := FindCasualIndicators("what does this provision mean")
	for _, f := range found {
		if f == "hi" {
			t.Fatalf("matched 'hi' inside 'this': %v", found)
		}
	}

	found = FindCasualIndicators("hey, cool contract lol")
	if len(found) < 3 {
		t.Fatalf("expected hey/cool/lol, got %v", found)
	}
}

func TestCountOffTopicPatterns(t *testing.T) {
	if CountOffTopicPatterns("explain this in the style of a cooking recipe") == 0 {
		t.Fatalf("expected off-topic match for style/recipe question")
	}
	if CountOffTopicPatterns("what are the payment terms") != 0 {
		t.Fatalf("expected no off-topic match for a contract question")
	}
}

func TestIsStyleRequest(t *testing.T) {
	if !IsStyleRequest("explain this in the style of a pirate") {
		t.Fatalf("expected style request")
	}
	if IsStyleRequest("what is the governing law") {
		t.Fatalf("unexpected style request")
	}
}

func TestExtractTopics(t *testing.T) {
	topics := ExtractTopics("Who owns derivatives and what about liability?")
	if len(topics) < 2 {
		t.Fatalf("expected liability and derivatives topics, got %v", topics)
	}
}

func TestExtractKeywordsSkipsStopWords(t *testing.T) {
	keywords := ExtractKeywords("What are the payment terms in this agreement?")
	for _, k := range keywords {
		if k == "the" || k == "this" || k == "are" {
			t.Fatalf("stop word leaked into keywords: %v", keywords)
		}
	}

	has := func(want string) bool {
		for _, k := range keywords {
			if k == want {
				return true
			}
		}
		return false
	}
	if !has("payment") || !has("terms") || !has("agreement") {
		t.Fatalf("missing expected keywords in %v", keywords)
	}
}

// Package engine wraps external analysis model providers behind a common
// interface with circuit-breaker protected fallback.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/kapu/contract-assistant-go/internal/util"
)

// Engine produces a free-form analysis for a question against a document.
type Engine interface {
	Name() string
	Analyze(ctx context.Context, question, documentText string) (string, error)
}

const maxDocumentPromptChars = 8000

// buildPrompt frames the question for the model. Document text is truncated
// so oversized uploads do not blow the token budget.
func buildPrompt(question, documentText string) string {
	var b strings.Builder
	b.WriteString("You are a contract analysis assistant. Answer the question using only the document below.\n")
	b.WriteString("Structure the answer with sections for evidence, plain English explanation, and implications.\n\n")

	if documentText != "" {
		b.WriteString("Document:\n")
		b.WriteString(util.TruncateString(documentText, maxDocumentPromptChars))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "Question: %s\n", question)
	return b.String()
}

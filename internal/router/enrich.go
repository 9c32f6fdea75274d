package router

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/service/mta"
)

// enrich layers best-effort additions onto a guaranteed response. Each
// enrichment absorbs its own failures so the base response survives intact.
func (r *Router) enrich(
	ctx context.Context,
	response *domain.StructuredResponse,
	question string,
	doc *domain.Document,
	sessionID string,
	conv *domain.ConversationContext,
) {
	var (
		insight    *domain.MTAInsight
		patterns   []string
		flow       *domain.FlowSummary
		approaches []string
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		defer r.absorb("mta enrichment")
		if r.specialist != nil && mta.IsMTADocument(doc) {
			mtaCtx := r.specialist.AnalyzeContext(doc)
			result := r.specialist.ProvideExpertise(question, mtaCtx)
			insight = &result
		}
	})
	wg.Go(func() {
		defer r.absorb("pattern detection")
		detected, err := r.tracker.DetectPatterns(ctx, sessionID)
		if err == nil {
			patterns = detected
		}
	})
	wg.Go(func() {
		defer r.absorb("flow analysis")
		summary, err := r.tracker.AnalyzeFlow(ctx, sessionID)
		if err == nil {
			flow = summary
		}
		approaches = r.tracker.SuggestContextAware(ctx, sessionID, question)
	})
	wg.Wait()

	if insight != nil {
		applyMTAInsight(response, insight)
	}
	applyPatternNotes(response, patterns, conv)
	applyFlowSuggestions(response, flow)
	response.ContextUsed = append(response.ContextUsed, approaches...)
	if doc != nil {
		applyDocumentSuggestions(response, doc)
	}

	if len(response.Suggestions) > constants.Router.MaxSuggestions {
		response.Suggestions = response.Suggestions[:constants.Router.MaxSuggestions]
	}
}

func (r *Router) absorb(stage string) {
	if rec := recover(); rec != nil {
		r.logger.Warn("Enrichment stage panicked", zap.String("stage", stage), zap.Any("panic", rec))
	}
}

func applyMTAInsight(response *domain.StructuredResponse, insight *domain.MTAInsight) {
	var b strings.Builder

	if len(insight.ConceptExplanations) > 0 {
		concepts := make([]string, 0, len(insight.ConceptExplanations))
		for concept := range insight.ConceptExplanations {
			concepts = append(concepts, concept)
		}
		sort.Strings(concepts)

		b.WriteString("\n\n**MTA-Specific Context:**\n")
		for _, concept := range concepts {
			fmt.Fprintf(&b, "- **%s**: %s\n", concept, insight.ConceptExplanations[concept])
		}
	}
	if len(insight.ResearchImplications) > 0 {
		b.WriteString("\n**Research Implications:**\n")
		for _, implication := range insight.ResearchImplications {
			fmt.Fprintf(&b, "- %s\n", implication)
		}
	}

	if b.Len() > 0 {
		response.Content += b.String()
		response.ContextUsed = append(response.ContextUsed, "mta_expertise")
	}

	response.Suggestions = append(response.Suggestions, insight.SuggestedQuestions...)
}

func applyPatternNotes(response *domain.StructuredResponse, patterns []string, conv *domain.ConversationContext) {
	for _, pattern := range patterns {
		switch pattern {
		case domain.PatternRepetitiveQuestions:
			response.Content += "\n\n*We've covered similar ground before. Let me know if you'd like a different angle on this topic.*"
			response.ContextUsed = append(response.ContextUsed, "repetition_note")
		case domain.PatternIncreasingComplexity:
			if conv != nil && conv.ExpertiseLevel == domain.ExpertiseBeginner {
				response.Content += "\n\n*These questions are getting into deeper territory. I'm happy to break any of this down further.*"
				response.ContextUsed = append(response.ContextUsed, "complexity_note")
			}
		case domain.PatternHighSatisfaction:
			response.Tone = domain.ToneConversational
			response.ContextUsed = append(response.ContextUsed, "satisfaction_tone")
		}
	}
}

// applyFlowSuggestions tops up sparse suggestion lists with directions
// derived from the conversation flow
func applyFlowSuggestions(response *domain.StructuredResponse, flow *domain.FlowSummary) {
	if flow == nil || len(response.Suggestions) >= 3 {
		return
	}
	response.Suggestions = append(response.Suggestions, flow.SuggestedDirections...)
	response.ContextUsed = append(response.ContextUsed, "flow_directions")
}

// applyDocumentSuggestions proposes follow-ups keyed to what the document
// actually contains
func applyDocumentSuggestions(response *domain.StructuredResponse, doc *domain.Document) {
	lowered := strings.ToLower(doc.Text)
	existing := make(map[string]struct{}, len(response.Suggestions))
	for _, s := range response.Suggestions {
		existing[s] = struct{}{}
	}

	add := func(keyword, suggestion string) {
		if !strings.Contains(lowered, keyword) {
			return
		}
		if _, ok := existing[suggestion]; ok {
			return
		}
		existing[suggestion] = struct{}{}
		response.Suggestions = append(response.Suggestions, suggestion)
	}

	add("pay", "What are the payment terms and deadlines?")
	add("terminat", "Under what conditions can this agreement be terminated?")
	add("liab", "How is liability allocated between the parties?")
	add("intellectual property", "Who owns the intellectual property?")
	add("confidential", "What are the confidentiality obligations?")
	add("material transfer", "What restrictions apply to using the material?")
}

// Package router decides how each question is answered and guarantees that a
// usable response comes back no matter which stage fails.
package router

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/service/classifier"
	"github.com/kapu/contract-assistant-go/internal/service/engine"
	"github.com/kapu/contract-assistant-go/internal/service/mta"
	"github.com/kapu/contract-assistant-go/internal/service/respond"
	"github.com/kapu/contract-assistant-go/internal/service/session"
	"github.com/kapu/contract-assistant-go/internal/service/store"
)

// Router wires classification, synthesis, context tracking, and domain
// enrichment into one entry point.
type Router struct {
	classifier *classifier.Classifier
	responder  *respond.System
	tracker    *session.Tracker
	specialist *mta.Specialist
	engines    *engine.Manager
	documents  store.DocumentStore
	logger     *zap.Logger
}

func New(
	cls *classifier.Classifier,
	responder *respond.System,
	tracker *session.Tracker,
	specialist *mta.Specialist,
	engines *engine.Manager,
	documents store.DocumentStore,
	logger *zap.Logger,
) *Router {
	return &Router{
		classifier: cls,
		responder:  responder,
		tracker:    tracker,
		specialist: specialist,
		engines:    engines,
		documents:  documents,
		logger:     logger,
	}
}

// Route answers a question. It never returns an empty response: any panic or
// stage failure degrades to the ultimate fallback.
func (r *Router) Route(ctx context.Context, question, documentID, sessionID string) (response domain.StructuredResponse) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Routing panicked, using ultimate fallback",
				zap.Any("panic", rec),
				zap.String("session_id", sessionID))
			response = respond.UltimateFallback(question)
		}
	}()

	doc := r.loadDocument(ctx, documentID)

	conv, err := r.tracker.Get(ctx, sessionID)
	if err != nil {
		r.logger.Warn("Context lookup failed", zap.Error(err), zap.String("session_id", sessionID))
		conv = nil
	}

	intent := r.classifier.Classify(question, conv)
	if doc != nil {
		intent.DocumentRelevance = r.classifier.DetectDocumentRelevance(question, doc)
	}

	strategy := determineStrategy(intent)
	if suggested := r.tracker.SuggestTone(ctx, sessionID, question); suggested == domain.ToneConversational {
		strategy.TonePreference = domain.ToneConversational
	}

	response = r.dispatch(ctx, question, doc, intent, strategy)

	r.enrich(ctx, &response, question, doc, sessionID, conv)

	if err := r.tracker.RecordTurn(ctx, sessionID, question, response, &intent, &strategy); err != nil {
		r.logger.Warn("Failed to record turn", zap.Error(err), zap.String("session_id", sessionID))
	}

	return response
}

func (r *Router) loadDocument(ctx context.Context, documentID string) *domain.Document {
	if documentID == "" || r.documents == nil {
		return nil
	}

	doc, ok, err := r.documents.Get(ctx, documentID)
	if err != nil {
		r.logger.Warn("Document lookup failed", zap.Error(err), zap.String("document_id", documentID))
		return nil
	}
	if !ok {
		return nil
	}
	return doc
}

// determineStrategy maps a classified intent to a response strategy
func determineStrategy(intent domain.Intent) domain.ResponseStrategy {
	strategy := domain.DefaultStrategy()

	switch intent.Primary {
	case domain.IntentDocumentRelated:
		strategy.Handler = domain.HandlerContractEngine
		strategy.UseStructuredFormat = intent.DocumentRelevance > constants.Router.HighDocumentRelevance
	case domain.IntentContractGeneral:
		strategy.Handler = domain.HandlerGeneralKnowledge
		strategy.FallbackOptions = []string{"document_redirection"}
	case domain.IntentOffTopic:
		strategy.Handler = domain.HandlerFallback
		strategy.UseStructuredFormat = false
		strategy.FallbackOptions = []string{"redirection", "suggestions"}
	case domain.IntentCasual:
		strategy.Handler = domain.HandlerCasual
		strategy.UseStructuredFormat = false
		strategy.TonePreference = domain.ToneConversational
		strategy.FallbackOptions = []string{"gentle_redirection"}
	}

	if intent.Casualness > constants.Router.HighCasualness {
		strategy.TonePreference = domain.ToneConversational
	}
	if intent.RequiresMTAExpertise {
		strategy.ContextRequirements = append(strategy.ContextRequirements, "mta_expertise")
	}

	return strategy
}

func (r *Router) dispatch(
	ctx context.Context,
	question string,
	doc *domain.Document,
	intent domain.Intent,
	strategy domain.ResponseStrategy,
) domain.StructuredResponse {
	switch strategy.Handler {
	case domain.HandlerCasual:
		return casualResponse(question)
	case domain.HandlerFallback:
		return offTopicResponse(question)
	case domain.HandlerContractEngine:
		if r.engines.Available() && doc != nil {
			if analysis, err := r.engines.Analyze(ctx, question, doc.Text); err == nil {
				return engineResponse(analysis)
			}
			r.logger.Debug("Engine analysis unavailable, using template synthesis")
		}
	}

	docText := ""
	if doc != nil {
		docText = doc.Text
	}
	return r.responder.Respond(question, docText)
}

func engineResponse(analysis string) domain.StructuredResponse {
	return domain.StructuredResponse{
		Content:    analysis,
		Pattern:    domain.PatternDocument,
		Category:   domain.CategoryDocumentAnalysis,
		Confidence: 0.8,
		Sources:    []string{"analysis_engine"},
		Suggestions: []string{
			"What are the key terms in this contract?",
			"What are my main obligations?",
			"Are there any important deadlines?",
		},
		Tone:      domain.ToneProfessional,
		Timestamp: time.Now(),
	}
}

func casualResponse(question string) domain.StructuredResponse {
	return domain.StructuredResponse{
		Content: "Happy to chat! I'm at my best when digging into contracts, so feel free to " +
			"ask about your document whenever you're ready.\n\n" +
			"*If you have a contract question, just ask away.*",
		Pattern:    domain.PatternGeneralLegal,
		Category:   domain.CategoryCasual,
		Confidence: 0.8,
		Suggestions: []string{
			"What should I look for in this contract?",
			"Can you summarize the key terms?",
			"Are there any risky clauses here?",
		},
		Tone:      domain.ToneConversational,
		Timestamp: time.Now(),
	}
}

func offTopicResponse(question string) domain.StructuredResponse {
	return domain.StructuredResponse{
		Content: "That's outside what I can help with. I focus on contract and legal document " +
			"analysis.\n\n**Here's what I can do:**\n" +
			"- Explain specific clauses in your document\n" +
			"- Break down legal terminology into plain English\n" +
			"- Identify obligations, deadlines, and risks\n" +
			"- Extract contract data into tables and exports",
		Pattern:    domain.PatternErrorRecovery,
		Category:   domain.CategoryFallback,
		Confidence: 0.7,
		Suggestions: []string{
			"What are the payment terms in my contract?",
			"Explain the termination clause",
			"What are my obligations under this agreement?",
		},
		Tone:      domain.ToneProfessional,
		Timestamp: time.Now(),
	}
}

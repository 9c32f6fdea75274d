// Package respond synthesizes structured responses for contract questions.
// Every entry point is guaranteed to return a usable response: pattern
// synthesis failures degrade to canned fallbacks, and the ultimate fallback
// absorbs anything else.
package respond

import (
	"strings"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/service/analyzer"
)

type System struct {
	analyzer *analyzer.Analyzer
	exporter *Exporter
	logger   *zap.Logger
}

func NewSystem(exportDir string, logger *zap.Logger) *System {
	return &System{
		analyzer: analyzer.New(logger),
		exporter: NewExporter(exportDir, logger),
		logger:   logger,
	}
}

// Respond turns a question and optional document text into a structured
// response. It never returns an empty or broken response.
func (s *System) Respond(question, docText string) (response domain.StructuredResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Response synthesis panicked, using ultimate fallback", zap.Any("cause", r))
			response = UltimateFallback(question)
		}
	}()

	processed := s.analyzer.Process(question)

	response = s.generate(processed, docText)
	response = s.adaptTone(response, processed)
	response = s.addDataExports(response, processed)
	response = s.validate(response)

	s.logger.Debug("Structured response generated",
		zap.String("pattern", response.Pattern.String()),
		zap.Float64("confidence", response.Confidence),
	)
	return response
}

// Process exposes the input analysis for callers that need the breakdown
// without a full response
func (s *System) Process(question string) domain.ProcessedInput {
	return s.analyzer.Process(question)
}

func (s *System) generate(processed domain.ProcessedInput, docText string) (response domain.StructuredResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Pattern synthesis panicked, using pattern fallback",
				zap.String("pattern", processed.Pattern.String()), zap.Any("cause", r))
			response = s.fallbackForPattern(processed.Pattern, processed)
		}
	}()

	switch processed.Pattern {
	case domain.PatternDocument:
		return s.synthesizeDocument(processed, docText)
	case domain.PatternGeneralLegal:
		return s.synthesizeGeneralLegal(processed, docText)
	case domain.PatternDataTable:
		return s.synthesizeDataTable(processed, docText)
	case domain.PatternAmbiguous:
		return s.synthesizeAmbiguous(processed, docText)
	default:
		return s.synthesizeErrorRecovery(processed)
	}
}

// addDataExports attaches export files when a non-table response happens to
// embed tabular content. Table pattern responses already carry their exports.
func (s *System) addDataExports(response domain.StructuredResponse, processed domain.ProcessedInput) domain.StructuredResponse {
	if processed.DataRequested || processed.Pattern == domain.PatternDataTable {
		return response
	}
	if !containsTabularContent(response.Content) {
		return response
	}

	table, ok := extractTableFromContent(response.Content)
	if !ok {
		return response
	}

	exports := s.exporter.Generate(table)
	if len(exports) == 0 {
		return response
	}

	response.Content += "\n\n📥 **Export:** Data available for download:\n"
	for _, export := range exports {
		response.Content += "- [" + strings.ToUpper(export.Format) + "](" + export.DownloadURL + ")\n"
	}
	return response
}

// validate enforces the response quality floor: non-empty content, minimum
// length, at least one suggestion, and a sane confidence
func (s *System) validate(response domain.StructuredResponse) domain.StructuredResponse {
	if len(response.Content) == 0 {
		response.Content = "I understand you have a question about the contract. Let me help you with that."
		response.Confidence = 0.3
	}

	if len(response.Content) < constants.Processing.MinContentLength {
		response.Content += "\n\nI'm here to help with any specific questions about contract terms, obligations, or implications."
	}

	if len(response.Suggestions) == 0 {
		response.Suggestions = []string{
			"What are the key terms in this contract?",
			"What are my main obligations?",
			"Are there any important deadlines?",
		}
	}

	if response.Confidence < constants.Processing.MinConfidence {
		response.Confidence = 0.3
	}

	return response
}

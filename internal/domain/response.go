package domain

import "time"

// PatternType identifies which structured response pattern produced a response
type PatternType string

const (
	PatternDocument      PatternType = "document"
	PatternGeneralLegal  PatternType = "general_legal"
	PatternDataTable     PatternType = "data_table"
	PatternAmbiguous     PatternType = "ambiguous"
	PatternErrorRecovery PatternType = "error_recovery"
)

func (p PatternType) String() string {
	return string(p)
}

// ResponseCategory is the coarse category exposed to callers
type ResponseCategory string

const (
	CategoryDocumentAnalysis ResponseCategory = "document_analysis"
	CategoryGeneralKnowledge ResponseCategory = "general_knowledge"
	CategoryFallback         ResponseCategory = "fallback"
	CategoryCasual           ResponseCategory = "casual"
)

func (c ResponseCategory) String() string {
	return string(c)
}

// ToneType is the tone a response is written in
type ToneType string

const (
	ToneProfessional   ToneType = "professional"
	ToneConversational ToneType = "conversational"
	TonePlayful        ToneType = "playful"
)

func (t ToneType) String() string {
	return string(t)
}

// NormalizeToneType maps a raw string to a known tone, defaulting to professional
func NormalizeToneType(raw string) ToneType {
	switch ToneType(raw) {
	case ToneConversational:
		return ToneConversational
	case TonePlayful:
		return TonePlayful
	default:
		return ToneProfessional
	}
}

// StructuredResponse is the guaranteed output of the response pipeline.
// Content is never empty and Confidence is always in [0, 1].
type StructuredResponse struct {
	Content     string
	Pattern     PatternType
	Category    ResponseCategory
	Confidence  float64
	Sources     []string
	Suggestions []string
	Tone        ToneType
	Structured  map[string]any
	ContextUsed []string
	Timestamp   time.Time
}

// DataTable is the structured payload behind a data_table response
type DataTable struct {
	Title    string
	Headers  []string
	Rows     [][]string
	Metadata map[string]any
}

// ExportFile describes one on-disk artifact produced for a data table
type ExportFile struct {
	ID          string
	Filename    string
	Path        string
	Format      string
	DownloadURL string
	CreatedAt   time.Time
}

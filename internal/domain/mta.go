package domain

// CollaborationType classifies the research relationship behind an MTA
type CollaborationType string

const (
	CollaborationAcademic   CollaborationType = "academic"
	CollaborationCommercial CollaborationType = "commercial"
	CollaborationHybrid     CollaborationType = "hybrid"
)

// MTAContext is extracted on demand from document text and never cached
type MTAContext struct {
	DocumentID       string
	ProviderEntity   string
	RecipientEntity  string
	MaterialTypes    []string
	ResearchPurposes []string
	IPConsiderations []string
	KeyRestrictions  []string
	Collaboration    CollaborationType
}

// MTAInsight is the specialist enrichment attached to a baseline response
type MTAInsight struct {
	ConceptExplanations  map[string]string
	ResearchImplications []string
	CommonPractices      []string
	RiskConsiderations   []string
	SuggestedQuestions   []string
}

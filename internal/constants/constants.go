package constants

import "time"

var Classifier = struct {
	SecondaryThreshold   float64
	OffTopicScoreWeight  float64
	OffTopicScoreCap     float64
	StyleRequestBoost    float64
	CasualSuppression    float64
	CasualWeight         float64
	GeneralDefinition    float64
	DocumentTermBoost    float64
	DocumentQuestionTerm float64
	DefinitionDocBoost   float64
	FormalityBoost       float64
	GeneralTermBoost     float64
	SafeConfidence       float64
	CacheTTL             time.Duration
	CacheSweep           time.Duration
}{
	SecondaryThreshold:   0.3,
	OffTopicScoreWeight:  0.4,
	OffTopicScoreCap:     0.98,
	StyleRequestBoost:    5,
	CasualSuppression:    0.5,
	CasualWeight:         0.8,
	GeneralDefinition:    0.8,
	DocumentTermBoost:    0.5,
	DocumentQuestionTerm: 0.3,
	DefinitionDocBoost:   0.4,
	FormalityBoost:       0.2,
	GeneralTermBoost:     0.2,
	SafeConfidence:       0.5,
	CacheTTL:             10 * time.Minute,
	CacheSweep:           30 * time.Minute,
}

var Tone = struct {
	CasualMultiplier    float64
	FormalMultiplier    float64
	TechnicalMultiplier float64
	BusinessMultiplier  float64
	StartupMultiplier   float64
	SlangMultiplier     float64
	CasualDominance     float64
	FormalDominance     float64
	StartupThreshold    float64
	TechnicalThreshold  float64
	SlangThreshold      float64
}{
	CasualMultiplier:    2.5,
	FormalMultiplier:    2,
	TechnicalMultiplier: 2,
	BusinessMultiplier:  1.5,
	StartupMultiplier:   3,
	SlangMultiplier:     4,
	CasualDominance:     0.4,
	FormalDominance:     0.5,
	StartupThreshold:    0.3,
	TechnicalThreshold:  0.4,
	SlangThreshold:      0.3,
}

var Processing = struct {
	BaseConfidence        float64
	SecondaryConfidence   float64
	TertiaryConfidence    float64
	MinConfidence         float64
	AmbiguitySourceCount  float64
	MaxQuestionParts      int
	MinFragmentLength     int
	LongClauseLength      int
	MinContentLength      int
	EvidenceSentenceLimit int
	EvidenceHitLimit      int
	MaxSuggestions        int
	DirectCoverageRatio   float64
	PartialCoverageRatio  float64
}{
	BaseConfidence:        0.7,
	SecondaryConfidence:   0.3,
	TertiaryConfidence:    0.1,
	MinConfidence:         0.1,
	AmbiguitySourceCount:  6,
	MaxQuestionParts:      5,
	MinFragmentLength:     8,
	LongClauseLength:      50,
	MinContentLength:      50,
	EvidenceSentenceLimit: 50,
	EvidenceHitLimit:      3,
	MaxSuggestions:        5,
	DirectCoverageRatio:   0.7,
	PartialCoverageRatio:  0.3,
}

var Context = struct {
	MaxHistoryLength    int
	RetentionHours      int
	MaxTopicProgression int
	RepetitionOverlap   float64
	ComplexityGrowth    float64
	RecentTurnWindow    int
	PatternTurnWindow   int
}{
	MaxHistoryLength:    50,
	RetentionHours:      24,
	MaxTopicProgression: 20,
	RepetitionOverlap:   0.6,
	ComplexityGrowth:    1.5,
	RecentTurnWindow:    5,
	PatternTurnWindow:   4,
}

var Export = struct {
	FilePrefix      string
	TimestampLayout string
	DownloadPrefix  string
	DirPermissions  uint32
}{
	FilePrefix:      "contract_data",
	TimestampLayout: "20060102_150405",
	DownloadPrefix:  "/exports/",
	DirPermissions:  0755,
}

var Router = struct {
	HighDocumentRelevance float64
	HighCasualness        float64
	MaxSuggestions        int
	MTAIndicatorMinimum   int
}{
	HighDocumentRelevance: 0.7,
	HighCasualness:        0.6,
	MaxSuggestions:        5,
	MTAIndicatorMinimum:   2,
}

var Engine = struct {
	FailureThreshold    int
	ResetTimeout        time.Duration
	HealthCheckInterval time.Duration
	RequestTimeout      time.Duration
	MaxOutputTokens     int
}{
	FailureThreshold:    3,
	ResetTimeout:        30 * time.Second,
	HealthCheckInterval: 10 * time.Minute,
	RequestTimeout:      30 * time.Second,
	MaxOutputTokens:     2048,
}

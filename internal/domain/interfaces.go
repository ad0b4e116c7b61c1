package domain

import (
	"context"
	"time"
)

// Config defines the configuration interface
type Config interface {
	GetServerPort() string
	GetExportPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetGeminiAPIKey() string
	GetGeminiModel() string
	GetLLMTimeout() time.Duration
	GetTrendsGeo() string
	GetTrendsTimeframe() string
	GetAllowedOrigins() []string
	Validate() error
}

// Logger defines the logging interface
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// LLMClient sends a prompt to the hosted language model and returns the
// raw completion text.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TrendsClient queries relative search interest for a batch of keywords
// (at most five per call, the upstream limit) and returns the raw
// interest-over-time series per keyword.
type TrendsClient interface {
	InterestOverTime(ctx context.Context, keywords []string) (map[string][]float64, error)
}

// TextExtractor turns an uploaded file into plain text.
type TextExtractor interface {
	Extract(filename string, data []byte) (string, error)
}

// KeywordService asks the model for a keyword taxonomy of the given text.
type KeywordService interface {
	Generate(ctx context.Context, text string) (*KeywordTaxonomy, error)
}

// PopularityRanker scores candidate keywords by search interest and
// returns them ranked. Batch failures degrade to unknown scores, so Rank
// never fails.
type PopularityRanker interface {
	Rank(ctx context.Context, candidates []string) []RankedKeyword
}

// CopyService asks the model for long-form SEO copy built around the
// ranked keywords.
type CopyService interface {
	Compose(ctx context.Context, text string, rankedKeywords []string) (string, error)
}

// ExportService converts generated markdown into a downloadable DOCX in
// the export directory and resolves previously exported filenames back
// to paths.
type ExportService interface {
	Export(markdown string) (string, error)
	Resolve(name string) (string, error)
}

// AnalysisService drives the full pipeline for one uploaded document.
type AnalysisService interface {
	Analyze(ctx context.Context, filename string, data []byte) (*AnalysisResult, error)
}

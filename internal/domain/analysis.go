package domain

// KeywordTaxonomy is the structured keyword breakdown returned by the
// language model for a single document.
type KeywordTaxonomy struct {
	LanguageDetected string        `json:"language_detected"`
	PrimaryTopics    []string      `json:"primary_topics"`
	SeedKeywords     []string      `json:"seed_keywords"`
	LongTailKeywords []string      `json:"long_tail_keywords"`
	ByIntent         IntentBuckets `json:"by_intent"`
	Questions        []string      `json:"questions"`
}

// IntentBuckets classifies keywords by search intent.
type IntentBuckets struct {
	Informational []string `json:"informational"`
	Commercial    []string `json:"commercial"`
	Transactional []string `json:"transactional"`
	Navigational  []string `json:"navigational"`
}

// RankedKeyword pairs a keyword with its average relative search interest.
// Popularity is nil when the trends service had no data for the term.
type RankedKeyword struct {
	Keyword    string   `json:"keyword"`
	Popularity *float64 `json:"popularity"`
}

// AnalysisResult is the consolidated response for an uploaded document.
// DocxFilename is nil when the DOCX export failed or was skipped.
type AnalysisResult struct {
	LanguageDetected string          `json:"language_detected"`
	PrimaryTopics    []string        `json:"primary_topics"`
	ByIntent         IntentBuckets   `json:"by_intent"`
	Questions        []string        `json:"questions"`
	KeywordsRanked   []RankedKeyword `json:"keywords_ranked"`
	SeedKeywords     []string        `json:"seed_keywords"`
	LongTailKeywords []string        `json:"long_tail_keywords"`
	SEOCopyMarkdown  string          `json:"seo_copy_markdown"`
	DocxFilename     *string         `json:"docx_filename"`
}

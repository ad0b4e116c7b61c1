package service

import (
	"context"
	"fmt"

	"seo-keyword-finder/internal/domain"
)

// maxCandidatesPerList caps how many deduplicated seeds and long-tails
// each contribute to the ranking candidates.
const maxCandidatesPerList = 15

// AnalysisPipeline implements domain.AnalysisService. Extraction and
// keyword synthesis failures abort the request; ranking, copy and export
// failures degrade, because partial results are still useful.
type AnalysisPipeline struct {
	extractor domain.TextExtractor
	keywords  domain.KeywordService
	ranker    domain.PopularityRanker
	composer  domain.CopyService
	exporter  domain.ExportService
	logger    domain.Logger
}

// NewAnalysisService creates a new analysis pipeline
func NewAnalysisService(
	extractor domain.TextExtractor,
	keywords domain.KeywordService,
	ranker domain.PopularityRanker,
	composer domain.CopyService,
	exporter domain.ExportService,
	logger domain.Logger,
) *AnalysisPipeline {
	return &AnalysisPipeline{
		extractor: extractor,
		keywords:  keywords,
		ranker:    ranker,
		composer:  composer,
		exporter:  exporter,
		logger:    logger,
	}
}

// Analyze runs the full pipeline for one uploaded document.
func (s *AnalysisPipeline) Analyze(ctx context.Context, filename string, data []byte) (*domain.AnalysisResult, error) {
	text, err := s.extractor.Extract(filename, data)
	if err != nil {
		return nil, err
	}

	taxonomy, err := s.keywords.Generate(ctx, text)
	if err != nil {
		return nil, err
	}

	seeds := dedupeCap(taxonomy.SeedKeywords, maxCandidatesPerList)
	longTails := dedupeCap(taxonomy.LongTailKeywords, maxCandidatesPerList)

	candidates := make([]string, 0, len(seeds)+len(longTails))
	candidates = append(candidates, seeds...)
	candidates = append(candidates, longTails...)

	ranked := s.ranker.Rank(ctx, candidates)

	rankedNames := make([]string, 0, len(ranked))
	for _, rk := range ranked {
		rankedNames = append(rankedNames, rk.Keyword)
	}

	copyMarkdown, err := s.composer.Compose(ctx, text, rankedNames)
	if err != nil {
		s.logger.Error("Copy generation degraded to placeholder", err, "filename", filename)
		copyMarkdown = fmt.Sprintf("Error generating SEO copy: %v", err)
	}

	var docxFilename *string
	if name, err := s.exporter.Export(copyMarkdown); err != nil {
		s.logger.Error("DOCX export failed, returning without document", err, "filename", filename)
	} else {
		docxFilename = &name
	}

	return &domain.AnalysisResult{
		LanguageDetected: taxonomy.LanguageDetected,
		PrimaryTopics:    taxonomy.PrimaryTopics,
		ByIntent:         taxonomy.ByIntent,
		Questions:        taxonomy.Questions,
		KeywordsRanked:   ranked,
		SeedKeywords:     seeds,
		LongTailKeywords: longTails,
		SEOCopyMarkdown:  copyMarkdown,
		DocxFilename:     docxFilename,
	}, nil
}

// dedupeCap removes duplicates preserving first-seen order and keeps at
// most max entries.
func dedupeCap(keywords []string, max int) []string {
	seen := make(map[string]struct{}, len(keywords))
	result := make([]string, 0, max)
	for _, keyword := range keywords {
		if _, ok := seen[keyword]; ok {
			continue
		}
		seen[keyword] = struct{}{}
		result = append(result, keyword)
		if len(result) == max {
			break
		}
	}
	return result
}

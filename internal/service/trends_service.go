package service

import (
	"context"
	"sort"

	"seo-keyword-finder/internal/domain"
)

// maxKeywordsPerBatch is the Google Trends per-request keyword limit.
const maxKeywordsPerBatch = 5

// PopularityRankerService implements domain.PopularityRanker. Each batch
// is queried independently; a failed batch marks its keywords as unknown
// instead of failing the whole ranking.
type PopularityRankerService struct {
	client domain.TrendsClient
	logger domain.Logger
}

// NewPopularityRanker creates a new popularity ranker
func NewPopularityRanker(client domain.TrendsClient, logger domain.Logger) *PopularityRankerService {
	return &PopularityRankerService{client: client, logger: logger}
}

// Rank scores the candidates by average relative search interest and
// returns them sorted descending, with unknown scores after all numeric
// ones. The sort is stable: ties and unknowns keep their input order.
func (r *PopularityRankerService) Rank(ctx context.Context, candidates []string) []domain.RankedKeyword {
	scores := r.scores(ctx, candidates)

	ranked := make([]domain.RankedKeyword, 0, len(candidates))
	for _, keyword := range candidates {
		ranked = append(ranked, domain.RankedKeyword{Keyword: keyword, Popularity: scores[keyword]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Popularity, ranked[j].Popularity
		switch {
		case a != nil && b != nil:
			return *a > *b
		case a != nil:
			return true
		default:
			return false
		}
	})

	return ranked
}

// scores queries the trends service in batches of at most five keywords
// and averages each keyword's interest series into a scalar. Keywords in
// a failed batch, and keywords the service returned no data for, map to
// nil.
func (r *PopularityRankerService) scores(ctx context.Context, keywords []string) map[string]*float64 {
	scores := make(map[string]*float64, len(keywords))

	for _, batch := range chunkKeywords(keywords, maxKeywordsPerBatch) {
		series, err := r.client.InterestOverTime(ctx, batch)
		if err != nil {
			r.logger.Warn("Trends batch failed, scoring batch as unknown", "keywords", len(batch), "error", err)
			for _, keyword := range batch {
				scores[keyword] = nil
			}
			continue
		}

		for _, keyword := range batch {
			if values, ok := series[keyword]; ok && len(values) > 0 {
				mean := meanOf(values)
				scores[keyword] = &mean
			} else {
				scores[keyword] = nil
			}
		}
	}

	return scores
}

// chunkKeywords splits keywords into groups of at most size.
func chunkKeywords(keywords []string, size int) [][]string {
	var batches [][]string
	for start := 0; start < len(keywords); start += size {
		end := start + size
		if end > len(keywords) {
			end = len(keywords)
		}
		batches = append(batches, keywords[start:end])
	}
	return batches
}

func meanOf(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

package service

import (
	"context"
	"fmt"
	"strings"

	"seo-keyword-finder/internal/domain"
)

const (
	// maxCopyPromptChars caps how much of the document is embedded in
	// the copy prompt.
	maxCopyPromptChars = 10000

	// maxCopyKeywords is how many of the top ranked keywords the copy
	// must weave in.
	maxCopyKeywords = 15
)

const copyPromptTemplate = `You are a senior SEO copywriter for an inbound tour operator in Ecuador targeting travelers from
Europe, the US/Canada, and occasionally Asia. Write ORIGINAL ENGLISH copy (no plagiarism).

Follow this EXACT structure (H2/H3 + bullets):
## 1. General destination information
### Country overview (1-2 intro paragraphs)
### Reasons to visit (culture, nature, adventure, gastronomy)
### Highlight regions or zones (Ecuador: Andes/Highlands, Amazon, Coast, Galapagos; Peru: Coast, Andes, Amazon)
### Climate & best time to visit (clear, practical)
### Entry requirements (visas, vaccines) - include a disclaimer to verify official sources
### Map or infographic (short caption text describing what to show)

Rules:
- Weave these keywords naturally (no stuffing, ~1-2%% density): %s
- Tone: clear, trustworthy, inspiring; emphasize authenticity, sustainability, safety.
- Avoid medical/legal claims; use soft guidance and official-source disclaimers.
- End with:
  - Meta title (<= 60 chars)
  - Meta description (<= 155 chars)
  - Suggested slugs (5)
  - JSON-LD FAQPage with 6-8 FAQs (valid JSON)

Reference (rewrite in your own words; do NOT copy sentences verbatim):
"""%s"""`

// CopyComposer implements domain.CopyService.
type CopyComposer struct {
	llm    domain.LLMClient
	logger domain.Logger
}

// NewCopyService creates a new copy composer
func NewCopyService(llm domain.LLMClient, logger domain.Logger) *CopyComposer {
	return &CopyComposer{llm: llm, logger: logger}
}

// Compose asks the model for long-form English SEO copy following the
// fixed outline, weaving in the top ranked keywords. Errors are returned
// to the orchestrator, which decides how to degrade.
func (c *CopyComposer) Compose(ctx context.Context, text string, rankedKeywords []string) (string, error) {
	topKeywords := rankedKeywords
	if len(topKeywords) > maxCopyKeywords {
		topKeywords = topKeywords[:maxCopyKeywords]
	}

	prompt := fmt.Sprintf(copyPromptTemplate,
		strings.Join(topKeywords, ", "),
		truncateText(text, maxCopyPromptChars),
	)

	reply, err := c.llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("copy generation failed: %w", err)
	}

	c.logger.Info("SEO copy composed", "keywords", len(topKeywords), "copy_chars", len(reply))
	return reply, nil
}

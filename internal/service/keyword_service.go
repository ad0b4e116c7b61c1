package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"seo-keyword-finder/internal/domain"
)

// maxKeywordPromptChars caps how much of the document is embedded in the
// keyword prompt.
const maxKeywordPromptChars = 12000

const keywordPromptTemplate = `You are an SEO analyst. Analyze the document and return ONLY JSON (no prose).
Always output in ENGLISH, even if the source text is in another language.
Use widely searched English terms that a traveler from Europe/US/Canada/Asia would type.

Return EXACTLY this schema:
{
  "language_detected": "<source language>",
  "primary_topics": ["..."],
  "seed_keywords": ["<15 short, high-signal head terms in ENGLISH>"],
  "long_tail_keywords": ["<20 intent-rich long-tail phrases in ENGLISH>"],
  "by_intent": {
    "informational": ["..."],
    "commercial": ["..."],
    "transactional": ["..."],
    "navigational": ["..."]
  },
  "questions": ["<10 common user queries in ENGLISH>"]
}

Reference text (truncate if needed):
"""%s"""`

// KeywordSynthesizer implements domain.KeywordService.
type KeywordSynthesizer struct {
	llm    domain.LLMClient
	logger domain.Logger
}

// NewKeywordService creates a new keyword synthesizer
func NewKeywordService(llm domain.LLMClient, logger domain.Logger) *KeywordSynthesizer {
	return &KeywordSynthesizer{llm: llm, logger: logger}
}

// Generate asks the model for an English keyword taxonomy of the text.
// A reply that is not valid JSON after cleanup fails the request; the
// pipeline has nothing useful to do without keywords.
func (s *KeywordSynthesizer) Generate(ctx context.Context, text string) (*domain.KeywordTaxonomy, error) {
	prompt := fmt.Sprintf(keywordPromptTemplate, truncateText(text, maxKeywordPromptChars))

	reply, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("keyword generation failed: %w", err)
	}

	payload := cleanJSONBlock(reply)

	var taxonomy domain.KeywordTaxonomy
	if err := json.Unmarshal([]byte(payload), &taxonomy); err != nil {
		s.logger.Error("Model returned unparseable keyword JSON", err, "reply_chars", len(reply))
		return nil, fmt.Errorf("failed to parse keyword JSON: %w", err)
	}

	// Missing list fields default to empty, never nil.
	ensureTaxonomyDefaults(&taxonomy)

	s.logger.Info("Keyword taxonomy generated",
		"language", taxonomy.LanguageDetected,
		"seeds", len(taxonomy.SeedKeywords),
		"long_tails", len(taxonomy.LongTailKeywords),
	)

	return &taxonomy, nil
}

// cleanJSONBlock removes markdown code fences and isolates the substring
// between the first '{' and the last '}'.
func cleanJSONBlock(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.Trim(s, "`")
		if lines := strings.SplitN(s, "\n", 2); len(lines) == 2 {
			s = lines[1]
		}
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start != -1 && end != -1 && end > start {
		return s[start : end+1]
	}
	return s
}

func ensureTaxonomyDefaults(t *domain.KeywordTaxonomy) {
	if t.PrimaryTopics == nil {
		t.PrimaryTopics = []string{}
	}
	if t.SeedKeywords == nil {
		t.SeedKeywords = []string{}
	}
	if t.LongTailKeywords == nil {
		t.LongTailKeywords = []string{}
	}
	if t.Questions == nil {
		t.Questions = []string{}
	}
	if t.ByIntent.Informational == nil {
		t.ByIntent.Informational = []string{}
	}
	if t.ByIntent.Commercial == nil {
		t.ByIntent.Commercial = []string{}
	}
	if t.ByIntent.Transactional == nil {
		t.ByIntent.Transactional = []string{}
	}
	if t.ByIntent.Navigational == nil {
		t.ByIntent.Navigational = []string{}
	}
}

// truncateText limits s to at most max runes so a multi-byte character is
// never split mid-sequence.
func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

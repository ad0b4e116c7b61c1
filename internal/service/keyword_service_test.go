package service

import (
	"context"
	"strings"
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare json",
			input:    `{"a":1}`,
			expected: `{"a":1}`,
		},
		{
			name:     "code fence with language tag",
			input:    "```json\n{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "prose around braces",
			input:    "Here is the result:\n{\"a\":1}\nHope that helps!",
			expected: `{"a":1}`,
		},
		{
			name:     "fence plus leading and trailing prose",
			input:    "```json\nSure, see below\n{\"a\":{\"b\":2}}\ntrailing note\n```",
			expected: `{"a":{"b":2}}`,
		},
		{
			name:     "no braces at all",
			input:    "nothing here",
			expected: "nothing here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONBlock(tt.input); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestGenerate_ParsesFencedReply(t *testing.T) {
	llm := &mockLLMClient{replies: []string{
		"```json\n{\"language_detected\":\"Spanish\",\"seed_keywords\":[\"galapagos tours\"],\"long_tail_keywords\":[\"best time to visit galapagos\"]}\n```",
	}}
	svc := NewKeywordService(llm, &mockLogger{})

	taxonomy, err := svc.Generate(context.Background(), "some document text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if taxonomy.LanguageDetected != "Spanish" {
		t.Fatalf("expected language Spanish, got %q", taxonomy.LanguageDetected)
	}
	if len(taxonomy.SeedKeywords) != 1 || taxonomy.SeedKeywords[0] != "galapagos tours" {
		t.Fatalf("unexpected seed keywords: %v", taxonomy.SeedKeywords)
	}
}

func TestGenerate_MissingFieldsDefaultToEmpty(t *testing.T) {
	llm := &mockLLMClient{replies: []string{`{"language_detected":"English"}`}}
	svc := NewKeywordService(llm, &mockLogger{})

	taxonomy, err := svc.Generate(context.Background(), "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if taxonomy.SeedKeywords == nil || len(taxonomy.SeedKeywords) != 0 {
		t.Fatalf("expected empty seed keywords, got %v", taxonomy.SeedKeywords)
	}
	if taxonomy.LongTailKeywords == nil || len(taxonomy.LongTailKeywords) != 0 {
		t.Fatalf("expected empty long tail keywords, got %v", taxonomy.LongTailKeywords)
	}
	if taxonomy.Questions == nil || taxonomy.PrimaryTopics == nil {
		t.Fatal("expected list fields to default to empty slices")
	}
	if taxonomy.ByIntent.Informational == nil || taxonomy.ByIntent.Navigational == nil {
		t.Fatal("expected intent buckets to default to empty slices")
	}
}

func TestGenerate_InvalidJSONFails(t *testing.T) {
	llm := &mockLLMClient{replies: []string{"sorry, I cannot do that"}}
	svc := NewKeywordService(llm, &mockLogger{})

	if _, err := svc.Generate(context.Background(), "text"); err == nil {
		t.Fatal("expected parse error for non-JSON reply")
	}
}

func TestGenerate_TruncatesPromptText(t *testing.T) {
	llm := &mockLLMClient{replies: []string{`{}`}}
	svc := NewKeywordService(llm, &mockLogger{})

	longText := strings.Repeat("x", maxKeywordPromptChars+500)
	if _, err := svc.Generate(context.Background(), longText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := llm.prompts[0]
	if strings.Contains(prompt, strings.Repeat("x", maxKeywordPromptChars+1)) {
		t.Fatal("expected document text to be truncated in the prompt")
	}
	if !strings.Contains(prompt, strings.Repeat("x", maxKeywordPromptChars)) {
		t.Fatal("expected the first 12000 characters to be kept")
	}
}

func TestTruncateText_MultibyteSafe(t *testing.T) {
	s := strings.Repeat("é", 10)
	got := truncateText(s, 4)
	if got != strings.Repeat("é", 4) {
		t.Fatalf("expected 4 runes, got %q", got)
	}
}

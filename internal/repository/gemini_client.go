// Package repository wraps the external collaborators: the Gemini API
// and the Google Trends endpoints.
package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"seo-keyword-finder/internal/domain"

	"google.golang.org/genai"
)

// GeminiClient implements domain.LLMClient over the Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  domain.Logger
}

// NewGeminiClient creates a Gemini client authenticated with the API key
// from configuration.
func NewGeminiClient(config domain.Config, logger domain.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.GetGeminiAPIKey(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   config.GetGeminiModel(),
		timeout: config.GetLLMTimeout(),
		logger:  logger,
	}, nil
}

// Complete sends a single-turn prompt and returns the model's text reply.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	contents := []*genai.Content{
		{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{genai.NewPartFromText(prompt)},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	var out strings.Builder
	if resp != nil {
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					out.WriteString(part.Text)
				}
			}
			if out.Len() > 0 {
				break
			}
		}
	}

	if out.Len() == 0 {
		return "", domain.ErrNoCompletion
	}

	c.logger.Debug("Completion finished",
		"model", c.model,
		"prompt_chars", len(prompt),
		"response_chars", out.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return out.String(), nil
}

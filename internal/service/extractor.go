// Package service implements the analysis pipeline: text extraction,
// keyword synthesis, popularity ranking, copy composition and DOCX export.
package service

import (
	"fmt"
	"strings"

	"seo-keyword-finder/internal/domain"
)

// TextExtractorService dispatches uploaded bytes to the extractor for
// their file type.
type TextExtractorService struct {
	logger domain.Logger
}

// NewTextExtractor creates a new text extractor
func NewTextExtractor(logger domain.Logger) *TextExtractorService {
	return &TextExtractorService{logger: logger}
}

// Extract returns the plain text of a .pdf or .docx file. The suffix
// check is case-insensitive. An unsupported suffix or a document with no
// readable text fails with the matching domain error.
func (s *TextExtractorService) Extract(filename string, data []byte) (string, error) {
	var text string
	var err error

	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		text, err = extractPDFText(data)
	case strings.HasSuffix(name, ".docx"):
		text, err = extractDocxText(data)
	default:
		return "", domain.ErrUnsupportedFileType
	}

	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", filename, err)
	}

	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyDocument
	}

	s.logger.Debug("Text extracted", "filename", filename, "chars", len(text))
	return text, nil
}

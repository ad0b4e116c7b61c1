package service

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// extractPDFText concatenates per-page text with newline separators,
// skipping pages that yield no text.
func extractPDFText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var chunks []string
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", pageNum+1, err)
		}
		if strings.TrimSpace(text) != "" {
			chunks = append(chunks, text)
		}
	}

	return strings.Join(chunks, "\n"), nil
}

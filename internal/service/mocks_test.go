package service

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
)

// Mock logger used by service package tests.
type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

// mockLLMClient returns canned replies in order, or an error.
type mockLLMClient struct {
	replies []string
	err     error
	calls   int
	prompts []string
}

func (m *mockLLMClient) Complete(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	reply := m.replies[m.calls%len(m.replies)]
	m.calls++
	return reply, nil
}

// mockTrendsClient serves a fixed series map; failFor makes any batch
// containing that keyword fail.
type mockTrendsClient struct {
	series  map[string][]float64
	failFor string
	err     error
	batches [][]string
}

func (m *mockTrendsClient) InterestOverTime(ctx context.Context, keywords []string) (map[string][]float64, error) {
	batch := append([]string(nil), keywords...)
	m.batches = append(m.batches, batch)

	if m.err != nil {
		return nil, m.err
	}
	for _, k := range keywords {
		if m.failFor != "" && k == m.failFor {
			return nil, context.DeadlineExceeded
		}
	}

	result := make(map[string][]float64)
	for _, k := range keywords {
		if values, ok := m.series[k]; ok {
			result[k] = values
		}
	}
	return result, nil
}

// buildEmptyPDFFixture assembles a valid single-page PDF with no text
// content. Offsets in the xref table are computed so the document parses
// without repair.
func buildEmptyPDFFixture() []byte {
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		buf.WriteString(obj)
	}

	xrefStart := buf.Len()
	buf.WriteString("xref\n0 4\n0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefStart)
	return buf.Bytes()
}

// buildDocxFixture assembles a minimal DOCX archive with one paragraph
// per entry.
func buildDocxFixture(paragraphs []string) []byte {
	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		body.WriteString(p)
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/document.xml")
	_, _ = w.Write(body.Bytes())
	_ = zw.Close()
	return buf.Bytes()
}

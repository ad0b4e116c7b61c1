package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"seo-keyword-finder/internal/domain"
)

// Mock analysis service for handler testing
type MockAnalysisService struct {
	result *domain.AnalysisResult
	err    error

	filename string
	data     []byte
}

func (m *MockAnalysisService) Analyze(ctx context.Context, filename string, data []byte) (*domain.AnalysisResult, error) {
	m.filename = filename
	m.data = data
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func multipartUpload(t *testing.T, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write file part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUpload_Success(t *testing.T) {
	popularity := 80.0
	docxName := "seo-draft-abc.docx"
	svc := &MockAnalysisService{result: &domain.AnalysisResult{
		LanguageDetected: "Spanish",
		PrimaryTopics:    []string{"travel"},
		Questions:        []string{},
		KeywordsRanked:   []domain.RankedKeyword{{Keyword: "galapagos tours", Popularity: &popularity}},
		SeedKeywords:     []string{"galapagos tours"},
		LongTailKeywords: []string{},
		SEOCopyMarkdown:  "## 1. General destination information",
		DocxFilename:     &docxName,
	}}
	h := NewAnalysisHandler(svc, 1024*1024, NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	h.Upload(rr, multipartUpload(t, "guide.pdf", "%PDF-1.4 fake"))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if svc.filename != "guide.pdf" {
		t.Fatalf("expected filename to reach the service, got %q", svc.filename)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	for _, field := range []string{
		"language_detected", "primary_topics", "by_intent", "questions",
		"keywords_ranked", "seed_keywords", "long_tail_keywords",
		"seo_copy_markdown", "docx_filename",
	} {
		if _, ok := resp[field]; !ok {
			t.Fatalf("response missing field %q", field)
		}
	}
	if !strings.Contains(string(resp["keywords_ranked"]), `"popularity":80`) {
		t.Fatalf("unexpected keywords_ranked: %s", resp["keywords_ranked"])
	}
}

func TestUpload_MissingFile(t *testing.T) {
	h := NewAnalysisHandler(&MockAnalysisService{}, 1024, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("no file"))
	rr := httptest.NewRecorder()
	h.Upload(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestUpload_FileTooLarge(t *testing.T) {
	h := NewAnalysisHandler(&MockAnalysisService{}, 64, NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	h.Upload(rr, multipartUpload(t, "guide.pdf", strings.Repeat("x", 4096)))

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status 413, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "upload limit") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestUpload_UnsupportedType(t *testing.T) {
	svc := &MockAnalysisService{err: domain.ErrUnsupportedFileType}
	h := NewAnalysisHandler(svc, 1024*1024, NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	h.Upload(rr, multipartUpload(t, "notes.txt", "plain text"))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Unsupported file type") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestUpload_EmptyDocument(t *testing.T) {
	svc := &MockAnalysisService{err: domain.ErrEmptyDocument}
	h := NewAnalysisHandler(svc, 1024*1024, NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	h.Upload(rr, multipartUpload(t, "blank.pdf", "%PDF-1.4"))

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "No readable text") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestUpload_InternalFailure(t *testing.T) {
	svc := &MockAnalysisService{err: context.DeadlineExceeded}
	h := NewAnalysisHandler(svc, 1024*1024, NewMockHandlerLogger())

	rr := httptest.NewRecorder()
	h.Upload(rr, multipartUpload(t, "guide.pdf", "%PDF-1.4"))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
}

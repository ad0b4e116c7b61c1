// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"seo-keyword-finder/internal/domain"
	apperrors "seo-keyword-finder/pkg/errors"
)

// AnalysisHandler handles document upload and analysis requests
type AnalysisHandler struct {
	analysisService domain.AnalysisService
	maxFileSize     int64
	logger          domain.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService domain.AnalysisService, maxFileSize int64, logger domain.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		maxFileSize:     maxFileSize,
		logger:          logger,
	}
}

// Upload is the pipeline entry point: validates the multipart file,
// drives extraction, keyword synthesis, ranking, copy composition and
// export, and returns the consolidated JSON response.
func (h *AnalysisHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("File exceeds the %d byte upload limit", maxBytesErr.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", err, "filename", header.Filename)
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	h.logger.Info("Upload received", "filename", header.Filename, "size", len(data))

	result, err := h.analysisService.Analyze(r.Context(), header.Filename, data)
	if err != nil {
		h.writeAnalysisError(w, header.Filename, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *AnalysisHandler) writeAnalysisError(w http.ResponseWriter, filename string, err error) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFileType):
		writeError(w, http.StatusBadRequest, "Unsupported file type. Use .pdf or .docx")
	case errors.Is(err, domain.ErrEmptyDocument):
		writeError(w, http.StatusUnprocessableEntity, "No readable text found in the document.")
	default:
		h.logger.Error("Analysis failed", err, "filename", filename)
		writeError(w, apperrors.GetStatusCode(err), "Failed to analyze document")
	}
}

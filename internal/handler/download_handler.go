package handler

import (
	"net/http"

	"seo-keyword-finder/internal/domain"

	"github.com/gorilla/mux"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DownloadHandler serves previously exported DOCX files by name
type DownloadHandler struct {
	exporter domain.ExportService
	logger   domain.Logger
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(exporter domain.ExportService, logger domain.Logger) *DownloadHandler {
	return &DownloadHandler{exporter: exporter, logger: logger}
}

// Download streams an exported document. Names that don't match the
// exporter's filename shape, or that no longer exist, return 404.
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	path, err := h.exporter.Resolve(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	http.ServeFile(w, r, path)
}

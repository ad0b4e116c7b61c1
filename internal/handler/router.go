package handler

import (
	"net/http"

	"seo-keyword-finder/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"seo-keyword-finder"}`))
	}).Methods("GET")

	analysisHandler := NewAnalysisHandler(
		container.AnalysisService,
		container.Config.GetMaxFileSize(),
		container.Logger,
	)
	downloadHandler := NewDownloadHandler(container.ExportService, container.Logger)

	router.HandleFunc("/upload", analysisHandler.Upload).Methods("POST")
	router.HandleFunc("/download/{name}", downloadHandler.Download).Methods("GET")

	router.Use(RequestLogging(container.Logger))

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: container.Config.GetAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}

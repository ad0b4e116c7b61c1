package config

import (
	"seo-keyword-finder/internal/domain"
	"seo-keyword-finder/internal/repository"
	"seo-keyword-finder/internal/service"
	"seo-keyword-finder/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	LLMClient       domain.LLMClient
	TrendsClient    domain.TrendsClient
	ExportService   domain.ExportService
	AnalysisService domain.AnalysisService
}

// NewContainer creates a new dependency injection container. External
// clients are constructed once here and injected into the services, so
// tests can substitute doubles through the domain interfaces.
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	if err := config.Validate(); err != nil {
		return nil, err
	}

	// External collaborators
	llmClient, err := repository.NewGeminiClient(config, appLogger)
	if err != nil {
		return nil, err
	}
	trendsClient := repository.NewTrendsClient(config, appLogger)

	// Pipeline services
	extractor := service.NewTextExtractor(appLogger)
	keywordService := service.NewKeywordService(llmClient, appLogger)
	ranker := service.NewPopularityRanker(trendsClient, appLogger)
	copyService := service.NewCopyService(llmClient, appLogger)
	exportService := service.NewExportService(config.GetExportPath(), appLogger)

	analysisService := service.NewAnalysisService(
		extractor,
		keywordService,
		ranker,
		copyService,
		exportService,
		appLogger,
	)

	return &Container{
		Config:          config,
		Logger:          appLogger,
		LLMClient:       llmClient,
		TrendsClient:    trendsClient,
		ExportService:   exportService,
		AnalysisService: analysisService,
	}, nil
}

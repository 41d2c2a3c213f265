package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/feisong354/AIImageTools/internal/application/services"
	"github.com/feisong354/AIImageTools/internal/application/usecases"
	"github.com/feisong354/AIImageTools/internal/config"
	"github.com/feisong354/AIImageTools/internal/domain/repositories"
	domainservices "github.com/feisong354/AIImageTools/internal/domain/services"
	"github.com/feisong354/AIImageTools/internal/infrastructure/api"
	"github.com/feisong354/AIImageTools/internal/infrastructure/external"
	infrarepos "github.com/feisong354/AIImageTools/internal/infrastructure/repositories"
	infraservices "github.com/feisong354/AIImageTools/internal/infrastructure/services"
	"github.com/feisong354/AIImageTools/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize infrastructure layer
	clientPool := infraservices.NewGenAIClientPool(&repositories.AIClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	defer clientPool.Close()

	editingService := external.NewGeminiEditingService(clientPool, zapLogger)
	posterService := external.NewImagenPosterService(clientPool, zapLogger)
	sessionRepository := infrarepos.NewMemorySessionRepository()

	// Initialize domain layer
	workflow := domainservices.NewGenerationDomainService(
		editingService,
		posterService,
		cfg.Gemini.EditModel,
		cfg.Gemini.PosterModel,
		zapLogger,
	)

	// Initialize application layer
	sessionUseCase := usecases.NewSessionUseCase(sessionRepository, workflow)
	generateUseCase := usecases.NewGenerateUseCase(workflow)
	parameterService := services.NewParameterService()

	// Initialize API layer
	handler := api.NewHandler(sessionUseCase, generateUseCase, parameterService,
		cfg.App.MaxUploadBytes, zapLogger)
	router := api.NewRouter(handler)

	zapLogger.Info("starting server",
		zap.String("addr", cfg.Addr()),
		zap.String("editModel", cfg.Gemini.EditModel),
		zap.String("posterModel", cfg.Gemini.PosterModel))

	if err := http.ListenAndServe(cfg.Addr(), router); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/picmoney/dashboard-api/internal/pkg/config"
	"github.com/picmoney/dashboard-api/internal/pkg/health"
	"github.com/picmoney/dashboard-api/internal/pkg/logger"
	"github.com/picmoney/dashboard-api/internal/pkg/middleware"
	"github.com/picmoney/dashboard-api/internal/pkg/server"
	"github.com/picmoney/dashboard-api/services/analytics/handler"
	"github.com/picmoney/dashboard-api/services/analytics/repository"
	"github.com/picmoney/dashboard-api/services/analytics/usecase"
)

func main() {
	appName := "dashboard-api"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Load the CSV snapshot; the process is useless without it
	datasetRepo, err := repository.NewDatasetRepo(configs)
	if err != nil {
		zapLogger.Fatal("Failed to load datasets", zap.Error(err))
	}

	analyticsUC := usecase.NewAnalyticsUC(datasetRepo, configs)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUC, configs)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, func() bool {
		return datasetRepo.GetSnapshot() != nil
	})

	analyticsHandler.RegisterRoutes(e)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}

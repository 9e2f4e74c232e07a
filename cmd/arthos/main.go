package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"arthos/internal/api"
	"arthos/internal/api/handlers"
	"arthos/internal/category"
	"arthos/internal/repository"
	"arthos/internal/service"
	"arthos/internal/statement"
	"arthos/internal/subscription"
	"arthos/internal/upi"
	"arthos/pkg/auth"
	"arthos/pkg/config"
	"arthos/pkg/logger"
	"arthos/pkg/postgres"

	"go.uber.org/zap"
)

// @title Arthos API
// @version 1.0
// @description UPI spend analyzer: transaction parsing, categorization, subscription tracking and AI statement analysis
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@arthos.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Arthos service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	subRepo := repository.NewSubscriptionRepository(db, appLogger)
	analysisRepo := repository.NewAnalysisRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Core pipeline
	parser := upi.NewParser(appLogger)
	mapper := category.NewMapper(nil)
	detector := subscription.NewDetector(subscription.DefaultProviders(), appLogger)
	cleaner := statement.NewCleaner()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	analyzeService := service.NewAnalyzeService(parser, mapper, txRepo, appLogger)
	subscriptionService := service.NewSubscriptionService(subRepo, txRepo, detector, appLogger)

	geminiService, err := service.NewGeminiService(ctx, &cfg.Gemini, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini service", zap.Error(err))
	}
	statementService := service.NewStatementService(cleaner, geminiService, analysisRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	upiHandler := handlers.NewUPIHandler(analyzeService, appLogger)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, appLogger)
	statementHandler := handlers.NewStatementHandler(statementService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, upiHandler, subscriptionHandler, statementHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

package main

import (
	"context"
	"log"
	"time"

	"arthos/internal/models"
	"arthos/internal/repository"
	"arthos/pkg/auth"
	"arthos/pkg/config"
	"arthos/pkg/logger"
	"arthos/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		raw_text TEXT NOT NULL,
		merchant TEXT,
		amount DOUBLE PRECISION NOT NULL,
		category TEXT NOT NULL,
		timestamp TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user_created ON transactions (user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user_category ON transactions (user_id, category)`,
	`CREATE TABLE IF NOT EXISTS subscriptions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		billing_cycle TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		renewal_date DATE NOT NULL,
		source_transaction_id UUID REFERENCES transactions(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_subscriptions_user_renewal ON subscriptions (user_id, renewal_date)`,
	`CREATE TABLE IF NOT EXISTS statement_analyses (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		raw_text TEXT NOT NULL,
		total_spend DOUBLE PRECISION NOT NULL,
		total_income DOUBLE PRECISION NOT NULL,
		transaction_count INTEGER NOT NULL,
		top_category TEXT NOT NULL DEFAULT '',
		top_merchant TEXT NOT NULL DEFAULT '',
		analysis_json TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_statement_analyses_user_created ON statement_analyses (user_id, created_at DESC)`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Applying schema")
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			appLogger.Fatal("Schema statement failed", zap.Error(err))
		}
	}

	userRepo := repository.NewUserRepository(db, appLogger)
	if _, err := userRepo.GetByUsername(ctx, "demo"); err == nil {
		appLogger.Info("Demo user already exists, nothing to seed")
		return
	}

	password, err := auth.HashPassword("demo1234")
	if err != nil {
		appLogger.Fatal("Failed to hash demo password", zap.Error(err))
	}

	now := time.Now()
	demo := &models.User{
		ID:        uuid.New(),
		Username:  "demo",
		Email:     "demo@arthos.app",
		Password:  password,
		FullName:  "Demo User",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, demo); err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	appLogger.Info("Seeding complete", zap.String("username", demo.Username))
}

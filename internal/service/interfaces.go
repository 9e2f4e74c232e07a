package service

import (
	"context"

	"arthos/internal/dto"
	"arthos/internal/models"
	"arthos/internal/repository"

	"github.com/google/uuid"
)

// Storage interfaces implemented by internal/repository. Services depend on
// these so tests can substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type TransactionStore interface {
	CreateBatch(ctx context.Context, transactions []*models.Transaction) error
	ListByUser(ctx context.Context, userID uuid.UUID, category string, limit, offset int) ([]*models.Transaction, error)
	ListAllByUser(ctx context.Context, userID uuid.UUID, category string) ([]*models.Transaction, error)
	CountByUser(ctx context.Context, userID uuid.UUID, category string) (int64, error)
}

type SubscriptionStore interface {
	Create(ctx context.Context, sub *models.Subscription) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Subscription, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter repository.SubscriptionFilter, limit, offset int) ([]*models.Subscription, error)
	CountByUser(ctx context.Context, userID uuid.UUID, filter repository.SubscriptionFilter) (int64, error)
	Update(ctx context.Context, sub *models.Subscription) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type AnalysisStore interface {
	Create(ctx context.Context, analysis *models.StatementAnalysis) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.StatementAnalysis, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// StatementAnalyzer turns cleaned bank-statement text into a structured
// analysis. Implemented by GeminiService.
type StatementAnalyzer interface {
	AnalyzeStatement(ctx context.Context, text string) (*dto.AnalyzeStatementResponse, error)
}

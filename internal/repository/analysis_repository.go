package repository

import (
	"context"

	"arthos/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var analysisColumns = []string{"id", "user_id", "raw_text", "total_spend", "total_income", "transaction_count", "top_category", "top_merchant", "analysis_json", "created_at"}

type AnalysisRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAnalysisRepository(db *pgxpool.Pool, logger *zap.Logger) *AnalysisRepository {
	return &AnalysisRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AnalysisRepository) Create(ctx context.Context, analysis *models.StatementAnalysis) error {
	query := squirrel.Insert("statement_analyses").
		Columns(analysisColumns...).
		Values(analysis.ID, analysis.UserID, analysis.RawText, analysis.TotalSpend, analysis.TotalIncome, analysis.TransactionCount, analysis.TopCategory, analysis.TopMerchant, analysis.AnalysisJSON, analysis.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *AnalysisRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.StatementAnalysis, error) {
	query := squirrel.Select(analysisColumns...).
		From("statement_analyses").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*models.StatementAnalysis
	for rows.Next() {
		var a models.StatementAnalysis
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.RawText, &a.TotalSpend, &a.TotalIncome, &a.TransactionCount, &a.TopCategory, &a.TopMerchant, &a.AnalysisJSON, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		analyses = append(analyses, &a)
	}

	return analyses, rows.Err()
}

func (r *AnalysisRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("statement_analyses").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

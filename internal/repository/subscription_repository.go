package repository

import (
	"context"
	"errors"
	"fmt"

	"arthos/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var subscriptionColumns = []string{"id", "user_id", "name", "amount", "billing_cycle", "category", "renewal_date", "source_transaction_id", "created_at", "updated_at"}

// SubscriptionFilter narrows subscription listings. Zero values mean "no
// restriction".
type SubscriptionFilter struct {
	Name         string
	MinAmount    *float64
	MaxAmount    *float64
	BillingCycle models.BillingCycle
}

type SubscriptionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSubscriptionRepository(db *pgxpool.Pool, logger *zap.Logger) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	query := squirrel.Insert("subscriptions").
		Columns(subscriptionColumns...).
		Values(sub.ID, sub.UserID, sub.Name, sub.Amount, sub.BillingCycle, sub.Category, sub.RenewalDate, sub.SourceTransactionID, sub.CreatedAt, sub.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Subscription, error) {
	query := squirrel.Select(subscriptionColumns...).
		From("subscriptions").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var sub models.Subscription
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&sub.ID, &sub.UserID, &sub.Name, &sub.Amount, &sub.BillingCycle, &sub.Category, &sub.RenewalDate, &sub.SourceTransactionID, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter SubscriptionFilter, limit, offset int) ([]*models.Subscription, error) {
	query := r.applyFilter(squirrel.Select(subscriptionColumns...).From("subscriptions"), userID, filter).
		OrderBy("renewal_date ASC").
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

	var subscriptions []*models.Subscription
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(
			&sub.ID, &sub.UserID, &sub.Name, &sub.Amount, &sub.BillingCycle, &sub.Category, &sub.RenewalDate, &sub.SourceTransactionID, &sub.CreatedAt, &sub.UpdatedAt,
		); err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, &sub)
	}

	return subscriptions, rows.Err()
}

func (r *SubscriptionRepository) CountByUser(ctx context.Context, userID uuid.UUID, filter SubscriptionFilter) (int64, error) {
	query := r.applyFilter(squirrel.Select("COUNT(*)").From("subscriptions"), userID, filter).
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

func (r *SubscriptionRepository) Update(ctx context.Context, sub *models.Subscription) error {
	query := squirrel.Update("subscriptions").
		Set("name", sub.Name).
		Set("amount", sub.Amount).
		Set("billing_cycle", sub.BillingCycle).
		Set("category", sub.Category).
		Set("renewal_date", sub.RenewalDate).
		Set("updated_at", sub.UpdatedAt).
		Where(squirrel.Eq{"id": sub.ID, "user_id": sub.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Delete("subscriptions").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SubscriptionRepository) applyFilter(query squirrel.SelectBuilder, userID uuid.UUID, filter SubscriptionFilter) squirrel.SelectBuilder {
	query = query.Where(squirrel.Eq{"user_id": userID})
	if filter.Name != "" {
		query = query.Where(squirrel.ILike{"name": fmt.Sprintf("%%%s%%", filter.Name)})
	}
	if filter.MinAmount != nil {
		query = query.Where(squirrel.GtOrEq{"amount": *filter.MinAmount})
	}
	if filter.MaxAmount != nil {
		query = query.Where(squirrel.LtOrEq{"amount": *filter.MaxAmount})
	}
	if filter.BillingCycle != "" {
		query = query.Where(squirrel.Eq{"billing_cycle": filter.BillingCycle})
	}
	return query
}

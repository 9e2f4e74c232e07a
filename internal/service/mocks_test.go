package service

import (
	"context"
	"strings"

	"arthos/internal/dto"
	"arthos/internal/models"
	"arthos/internal/repository"

	"github.com/google/uuid"
)

type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeTransactionStore struct {
	transactions []*models.Transaction
	batchErr     error
}

func (f *fakeTransactionStore) CreateBatch(_ context.Context, transactions []*models.Transaction) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.transactions = append(f.transactions, transactions...)
	return nil
}

func (f *fakeTransactionStore) ListByUser(_ context.Context, userID uuid.UUID, category string, limit, offset int) ([]*models.Transaction, error) {
	matched := f.filter(userID, category)
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (f *fakeTransactionStore) ListAllByUser(_ context.Context, userID uuid.UUID, category string) ([]*models.Transaction, error) {
	return f.filter(userID, category), nil
}

func (f *fakeTransactionStore) CountByUser(_ context.Context, userID uuid.UUID, category string) (int64, error) {
	return int64(len(f.filter(userID, category))), nil
}

func (f *fakeTransactionStore) filter(userID uuid.UUID, category string) []*models.Transaction {
	var matched []*models.Transaction
	for _, tx := range f.transactions {
		if tx.UserID != userID {
			continue
		}
		if category != "" && tx.Category != category {
			continue
		}
		matched = append(matched, tx)
	}
	return matched
}

type fakeSubscriptionStore struct {
	subs []*models.Subscription
}

func (f *fakeSubscriptionStore) Create(_ context.Context, sub *models.Subscription) error {
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeSubscriptionStore) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Subscription, error) {
	for _, sub := range f.subs {
		if sub.ID == id && sub.UserID == userID {
			copied := *sub
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSubscriptionStore) ListByUser(_ context.Context, userID uuid.UUID, filter repository.SubscriptionFilter, limit, offset int) ([]*models.Subscription, error) {
	matched := f.filter(userID, filter)
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (f *fakeSubscriptionStore) CountByUser(_ context.Context, userID uuid.UUID, filter repository.SubscriptionFilter) (int64, error) {
	return int64(len(f.filter(userID, filter))), nil
}

func (f *fakeSubscriptionStore) Update(_ context.Context, sub *models.Subscription) error {
	for i, existing := range f.subs {
		if existing.ID == sub.ID && existing.UserID == sub.UserID {
			copied := *sub
			f.subs[i] = &copied
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeSubscriptionStore) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i, sub := range f.subs {
		if sub.ID == id && sub.UserID == userID {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeSubscriptionStore) filter(userID uuid.UUID, filter repository.SubscriptionFilter) []*models.Subscription {
	var matched []*models.Subscription
	for _, sub := range f.subs {
		if sub.UserID != userID {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(sub.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.MinAmount != nil && sub.Amount < *filter.MinAmount {
			continue
		}
		if filter.MaxAmount != nil && sub.Amount > *filter.MaxAmount {
			continue
		}
		if filter.BillingCycle != "" && sub.BillingCycle != filter.BillingCycle {
			continue
		}
		matched = append(matched, sub)
	}
	return matched
}

type fakeAnalysisStore struct {
	analyses  []*models.StatementAnalysis
	createErr error
}

func (f *fakeAnalysisStore) Create(_ context.Context, analysis *models.StatementAnalysis) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.analyses = append(f.analyses, analysis)
	return nil
}

func (f *fakeAnalysisStore) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*models.StatementAnalysis, error) {
	var matched []*models.StatementAnalysis
	for _, a := range f.analyses {
		if a.UserID == userID {
			matched = append(matched, a)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (f *fakeAnalysisStore) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	for _, a := range f.analyses {
		if a.UserID == userID {
			total++
		}
	}
	return total, nil
}

type fakeAnalyzer struct {
	resp     *dto.AnalyzeStatementResponse
	err      error
	lastText string
	calls    int
}

func (f *fakeAnalyzer) AnalyzeStatement(_ context.Context, text string) (*dto.AnalyzeStatementResponse, error) {
	f.calls++
	f.lastText = text
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

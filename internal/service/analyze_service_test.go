package service

import (
	"context"
	"testing"
	"time"

	"arthos/internal/category"
	"arthos/internal/dto"
	"arthos/internal/models"
	"arthos/internal/upi"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestAnalyzeService() (*AnalyzeService, *fakeTransactionStore) {
	store := &fakeTransactionStore{}
	svc := NewAnalyzeService(upi.NewParser(nil), category.NewMapper(nil), store, zap.NewNop())
	return svc, store
}

func strPtr(s string) *string { return &s }

func TestAnalyzeStoresAndSummarizes(t *testing.T) {
	svc, store := newTestAnalyzeService()
	userID := uuid.New()

	rawText := "Rs. 249.00 paid to Zomato on 20-11-2025. UPI Ref: 12345\n" +
		"Your a/c XX1234 was debited by INR 219.00 for UPI payment to OLA CABS on 2025-11-20.\n" +
		"Payment of ₹1,299 to Amazon was successful"

	resp, err := svc.Analyze(context.Background(), userID, &dto.AnalyzeRequest{RawText: rawText})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(store.transactions) != 3 {
		t.Fatalf("stored %d transactions, want 3", len(store.transactions))
	}
	for _, tx := range store.transactions {
		if tx.UserID != userID {
			t.Errorf("transaction stored with user %s, want %s", tx.UserID, userID)
		}
	}

	if resp.Summary.TotalSpend != 1767 {
		t.Errorf("TotalSpend = %v, want 1767", resp.Summary.TotalSpend)
	}
	if resp.Summary.TransactionCount != 3 {
		t.Errorf("TransactionCount = %d, want 3", resp.Summary.TransactionCount)
	}
	if resp.Summary.AverageAmount != 589 {
		t.Errorf("AverageAmount = %v, want 589", resp.Summary.AverageAmount)
	}
	if resp.Summary.TopCategory != "Shopping" {
		t.Errorf("TopCategory = %q, want Shopping", resp.Summary.TopCategory)
	}

	want := map[string]float64{"Food": 249, "Travel": 219, "Shopping": 1299}
	for cat, amount := range want {
		if resp.Categories[cat] != amount {
			t.Errorf("Categories[%q] = %v, want %v", cat, resp.Categories[cat], amount)
		}
	}

	if resp.Transactions[0].Merchant != "Zomato" {
		t.Errorf("first merchant = %q, want Zomato", resp.Transactions[0].Merchant)
	}
	if resp.Transactions[0].Timestamp == "" {
		t.Error("first transaction lost its timestamp")
	}
}

func TestAnalyzeEmptyInputReturnsZeroResponse(t *testing.T) {
	svc, store := newTestAnalyzeService()

	resp, err := svc.Analyze(context.Background(), uuid.New(), &dto.AnalyzeRequest{RawText: "hello there"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(store.transactions) != 0 {
		t.Errorf("stored %d transactions, want 0", len(store.transactions))
	}
	if resp.Summary.TransactionCount != 0 || resp.Summary.TotalSpend != 0 {
		t.Errorf("expected zero summary, got %+v", resp.Summary)
	}
	if resp.Categories == nil || resp.Transactions == nil {
		t.Error("empty response must carry empty, non-nil collections")
	}
}

func TestListTransactionsPaginatesAndFilters(t *testing.T) {
	svc, store := newTestAnalyzeService()
	userID := uuid.New()
	now := time.Now()

	seed := []struct {
		amount   float64
		cat      string
		merchant string
	}{
		{100, "Food", "Zomato"},
		{200, "Food", "Swiggy"},
		{300, "Shopping", "Amazon"},
	}
	for _, s := range seed {
		store.transactions = append(store.transactions, &models.Transaction{
			ID:        uuid.New(),
			UserID:    userID,
			RawText:   "seeded",
			Merchant:  strPtr(s.merchant),
			Amount:    s.amount,
			Category:  s.cat,
			CreatedAt: now,
		})
	}

	resp, err := svc.ListTransactions(context.Background(), userID, "Food", 1, 0)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}

	if len(resp.Transactions) != 1 {
		t.Fatalf("page size = %d, want 1", len(resp.Transactions))
	}
	if resp.Total != 2 {
		t.Errorf("Total = %d, want 2", resp.Total)
	}
	// Summary covers every matching transaction, not just the page.
	if resp.Summary.TotalSpend != 300 {
		t.Errorf("Summary.TotalSpend = %v, want 300", resp.Summary.TotalSpend)
	}
	if resp.Summary.AverageAmount != 150 {
		t.Errorf("Summary.AverageAmount = %v, want 150", resp.Summary.AverageAmount)
	}
	if resp.Summary.TopCategory != "Food" {
		t.Errorf("Summary.TopCategory = %q, want Food", resp.Summary.TopCategory)
	}
	if len(resp.Summary.TopMerchants) != 2 {
		t.Errorf("TopMerchants = %d entries, want 2", len(resp.Summary.TopMerchants))
	}
}

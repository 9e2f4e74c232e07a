package service

import (
	"context"
	"time"

	"arthos/internal/category"
	"arthos/internal/dto"
	"arthos/internal/models"
	"arthos/internal/summary"
	"arthos/internal/upi"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalyzeService runs pasted UPI/SMS text through the parse -> categorize ->
// persist pipeline and aggregates spending summaries.
type AnalyzeService struct {
	parser *upi.Parser
	mapper *category.Mapper
	txRepo TransactionStore
	logger *zap.Logger
}

func NewAnalyzeService(parser *upi.Parser, mapper *category.Mapper, txRepo TransactionStore, logger *zap.Logger) *AnalyzeService {
	return &AnalyzeService{
		parser: parser,
		mapper: mapper,
		txRepo: txRepo,
		logger: logger,
	}
}

// Analyze parses the raw text, categorizes and stores every extracted
// transaction, and returns the batch with its summary. Text with no parseable
// transactions yields an empty response, not an error.
func (s *AnalyzeService) Analyze(ctx context.Context, userID uuid.UUID, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	parsed := s.parser.Parse(sanitizeUTF8(req.RawText))
	if len(parsed) == 0 {
		return &dto.AnalyzeResponse{
			Categories:   map[string]float64{},
			Transactions: []dto.TransactionResponse{},
		}, nil
	}

	now := time.Now()
	transactions := make([]*models.Transaction, 0, len(parsed))
	for _, p := range parsed {
		tx := &models.Transaction{
			ID:        uuid.New(),
			UserID:    userID,
			RawText:   p.RawText,
			Amount:    p.Amount,
			Category:  s.mapper.Categorize(p.RawText, p.Merchant),
			Timestamp: p.Timestamp,
			CreatedAt: now,
		}
		if p.Merchant != "" {
			merchant := p.Merchant
			tx.Merchant = &merchant
		}
		transactions = append(transactions, tx)
	}

	if err := s.txRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, err
	}

	s.logger.Info("Analyzed transactions",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(transactions)),
	)

	stats := summaryInput(transactions)
	sum := summary.Build(stats)
	return &dto.AnalyzeResponse{
		Summary: dto.SummaryData{
			TotalSpend:       sum.TotalSpend,
			TransactionCount: sum.TransactionCount,
			TopCategory:      sum.TopCategory,
			AverageAmount:    sum.AverageAmount,
		},
		Categories:   summary.CategoryBreakdown(stats),
		Transactions: toTransactionResponses(transactions),
	}, nil
}

// ListTransactions returns one page of stored transactions plus a summary
// computed over everything that matches the filter, not just the page.
func (s *AnalyzeService) ListTransactions(ctx context.Context, userID uuid.UUID, categoryFilter string, limit, offset int) (*dto.TransactionListResponse, error) {
	page, err := s.txRepo.ListByUser(ctx, userID, categoryFilter, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.txRepo.CountByUser(ctx, userID, categoryFilter)
	if err != nil {
		return nil, err
	}

	all, err := s.txRepo.ListAllByUser(ctx, userID, categoryFilter)
	if err != nil {
		return nil, err
	}

	stats := summaryInput(all)
	sum := summary.Build(stats)
	return &dto.TransactionListResponse{
		Transactions: toTransactionResponses(page),
		Total:        total,
		Limit:        limit,
		Offset:       offset,
		Summary: dto.SummaryData{
			TotalSpend:       sum.TotalSpend,
			TransactionCount: sum.TransactionCount,
			TopCategory:      sum.TopCategory,
			AverageAmount:    sum.AverageAmount,
			Categories:       summary.CategoryBreakdown(stats),
			TopMerchants:     toMerchantStats(summary.TopMerchants(stats, 5)),
		},
	}, nil
}

func summaryInput(transactions []*models.Transaction) []summary.Transaction {
	stats := make([]summary.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		stats = append(stats, summary.Transaction{
			Amount:   tx.Amount,
			Category: tx.Category,
			Merchant: tx.MerchantName(),
		})
	}
	return stats
}

func toTransactionResponses(transactions []*models.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp := dto.TransactionResponse{
			ID:        tx.ID.String(),
			RawText:   tx.RawText,
			Merchant:  tx.MerchantName(),
			Amount:    tx.Amount,
			Category:  tx.Category,
			CreatedAt: tx.CreatedAt.Format(time.RFC3339),
		}
		if tx.Timestamp != nil {
			resp.Timestamp = tx.Timestamp.Format(time.RFC3339)
		}
		out = append(out, resp)
	}
	return out
}

func toMerchantStats(stats []summary.MerchantStat) []dto.MerchantStat {
	out := make([]dto.MerchantStat, 0, len(stats))
	for _, st := range stats {
		out = append(out, dto.MerchantStat{
			Merchant:   st.Merchant,
			TotalSpent: st.TotalSpent,
			Count:      st.Count,
		})
	}
	return out
}

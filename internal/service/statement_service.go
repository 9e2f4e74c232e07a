package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"unicode/utf8"

	"arthos/internal/dto"
	"arthos/internal/models"
	"arthos/internal/statement"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrStatementTooShort rejects input too small to be a real statement.
var ErrStatementTooShort = errors.New("statement text too short")

const (
	minStatementLength   = 50
	historyPreviewLength = 200
)

// StatementService coordinates statement cleanup, AI analysis and history.
type StatementService struct {
	cleaner      *statement.Cleaner
	analyzer     StatementAnalyzer
	analysisRepo AnalysisStore
	logger       *zap.Logger
}

func NewStatementService(cleaner *statement.Cleaner, analyzer StatementAnalyzer, analysisRepo AnalysisStore, logger *zap.Logger) *StatementService {
	return &StatementService{
		cleaner:      cleaner,
		analyzer:     analyzer,
		analysisRepo: analysisRepo,
		logger:       logger,
	}
}

// Analyze cleans the statement text, runs the AI analysis and records the
// result. A failed history write is logged but does not fail the request.
func (s *StatementService) Analyze(ctx context.Context, userID uuid.UUID, req *dto.AnalyzeStatementRequest) (*dto.AnalyzeStatementResponse, error) {
	rawText := sanitizeUTF8(req.RawText)
	if len(rawText) < minStatementLength {
		return nil, ErrStatementTooShort
	}

	cleaned, _ := s.cleaner.PreprocessForAI(rawText)

	analysis, err := s.analyzer.AnalyzeStatement(ctx, cleaned)
	if err != nil {
		return nil, err
	}

	if err := s.saveHistory(ctx, userID, rawText, analysis); err != nil {
		s.logger.Warn("Failed to save statement analysis", zap.Error(err))
	}

	return analysis, nil
}

func (s *StatementService) History(ctx context.Context, userID uuid.UUID, limit, offset int) (*dto.StatementHistoryResponse, error) {
	analyses, err := s.analysisRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.analysisRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StatementHistoryItem, 0, len(analyses))
	for _, a := range analyses {
		preview := truncateOnRune(a.RawText, historyPreviewLength)
		items = append(items, dto.StatementHistoryItem{
			ID:               a.ID.String(),
			Timestamp:        a.CreatedAt.Format(time.RFC3339),
			RawTextPreview:   preview,
			TotalSpend:       a.TotalSpend,
			TransactionCount: a.TransactionCount,
			TopCategory:      a.TopCategory,
		})
	}

	return &dto.StatementHistoryResponse{
		Analyses: items,
		Total:    total,
	}, nil
}

// truncateOnRune caps s at max bytes without splitting a multibyte rune.
func truncateOnRune(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func (s *StatementService) saveHistory(ctx context.Context, userID uuid.UUID, rawText string, analysis *dto.AnalyzeStatementResponse) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return err
	}

	record := &models.StatementAnalysis{
		ID:               uuid.New(),
		UserID:           userID,
		RawText:          rawText,
		TotalSpend:       analysis.Summary.TotalSpend,
		TotalIncome:      analysis.Summary.TotalIncome,
		TransactionCount: len(analysis.Transactions),
		TopCategory:      analysis.Summary.TopCategory,
		TopMerchant:      analysis.Summary.TopMerchant,
		AnalysisJSON:     string(payload),
		CreatedAt:        time.Now(),
	}

	return s.analysisRepo.Create(ctx, record)
}

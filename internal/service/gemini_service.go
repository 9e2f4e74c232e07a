package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"arthos/internal/dto"
	"arthos/pkg/config"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const analysisPromptTemplate = `Analyze this bank statement and extract financial data. Return ONLY a valid JSON object (no markdown, no explanation).

Statement:
%s

Required JSON format:
{
  "summary": {
    "total_spend": 0.0,
    "total_income": 0.0,
    "top_category": "Food",
    "top_merchant": "Amazon",
    "wasteful_spending": ["Zomato", "Swiggy"],
    "monthly_summary": {"Jan": 5000, "Feb": 6000},
    "category_breakdown": {"Food": 2000, "Shopping": 3000}
  },
  "transactions": [
    {"date": "2025-01-15", "merchant": "Amazon", "amount": 499.99, "category": "Shopping", "type": "debit"}
  ],
  "anomalies": ["Unusual charge: Rs 5000 to XYZ"],
  "recommendations": ["Reduce food delivery expenses"],
  "subscriptions_detected": ["Netflix", "Spotify"],
  "duplicate_charges": ["Rs 299 charged twice on same day"]
}

Categories: Food, Shopping, Transport, Entertainment, Bills, Healthcare, Education, Groceries, Dining, Subscriptions, Insurance, Rent, Other

Extract all transactions with dates, merchants, amounts (as numbers), categories, and type (debit/credit). Identify wasteful spending, anomalies, duplicates, and subscriptions. Provide actionable recommendations.

Return ONLY the JSON object, nothing else.`

var jsonFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// GeminiService analyzes bank statements through the Gemini API.
type GeminiService struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	logger.Info("Gemini client initialized", zap.String("model", cfg.Model))

	return &GeminiService{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

func (s *GeminiService) AnalyzeStatement(ctx context.Context, text string) (*dto.AnalyzeStatementResponse, error) {
	prompt := fmt.Sprintf(analysisPromptTemplate, text)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, errors.New("empty response from gemini")
	}

	s.logger.Debug("Gemini response received", zap.Int("length", len(raw)))

	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var analysis dto.AnalyzeStatementResponse
	if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
		return nil, fmt.Errorf("invalid json in gemini response: %w", err)
	}
	normalizeAnalysis(&analysis)

	return &analysis, nil
}

// extractJSON pulls the JSON object out of a model response that may wrap it
// in markdown fences or surrounding prose.
func extractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)

	if m := jsonFenceRe.FindStringSubmatch(text); m != nil {
		return m[1], nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", errors.New("no json object in gemini response")
	}
	return text[start : end+1], nil
}

// normalizeAnalysis fills defaults the model sometimes omits so the response
// always serializes with every field present.
func normalizeAnalysis(a *dto.AnalyzeStatementResponse) {
	if a.Summary.TopCategory == "" {
		a.Summary.TopCategory = "Unknown"
	}
	if a.Summary.TopMerchant == "" {
		a.Summary.TopMerchant = "Unknown"
	}
	if a.Summary.WastefulSpending == nil {
		a.Summary.WastefulSpending = []string{}
	}
	if a.Summary.MonthlySummary == nil {
		a.Summary.MonthlySummary = map[string]float64{}
	}
	if a.Summary.CategoryBreakdown == nil {
		a.Summary.CategoryBreakdown = map[string]float64{}
	}
	if a.Transactions == nil {
		a.Transactions = []dto.BankTransaction{}
	}
	for i := range a.Transactions {
		if a.Transactions[i].Merchant == "" {
			a.Transactions[i].Merchant = "Unknown"
		}
		if a.Transactions[i].Category == "" {
			a.Transactions[i].Category = "Other"
		}
		if a.Transactions[i].Type == "" {
			a.Transactions[i].Type = "debit"
		}
	}
	if a.Anomalies == nil {
		a.Anomalies = []string{}
	}
	if a.Recommendations == nil {
		a.Recommendations = []string{}
	}
	if a.SubscriptionsDetected == nil {
		a.SubscriptionsDetected = []string{}
	}
	if a.DuplicateCharges == nil {
		a.DuplicateCharges = []string{}
	}
}

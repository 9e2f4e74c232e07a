package dto

type AnalyzeStatementRequest struct {
	RawText string `json:"raw_text"`
}

type AnalysisSummary struct {
	TotalSpend        float64            `json:"total_spend"`
	TotalIncome       float64            `json:"total_income"`
	TopCategory       string             `json:"top_category"`
	TopMerchant       string             `json:"top_merchant"`
	WastefulSpending  []string           `json:"wasteful_spending"`
	MonthlySummary    map[string]float64 `json:"monthly_summary"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
}

type BankTransaction struct {
	Date     string  `json:"date"`
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Type     string  `json:"type"` // debit or credit
}

type AnalyzeStatementResponse struct {
	Summary               AnalysisSummary   `json:"summary"`
	Transactions          []BankTransaction `json:"transactions"`
	Anomalies             []string          `json:"anomalies"`
	Recommendations       []string          `json:"recommendations"`
	SubscriptionsDetected []string          `json:"subscriptions_detected"`
	DuplicateCharges      []string          `json:"duplicate_charges"`
}

type StatementHistoryItem struct {
	ID               string  `json:"id"`
	Timestamp        string  `json:"timestamp"`
	RawTextPreview   string  `json:"raw_text_preview"`
	TotalSpend       float64 `json:"total_spend"`
	TransactionCount int     `json:"transaction_count"`
	TopCategory      string  `json:"top_category"`
}

type StatementHistoryResponse struct {
	Analyses []StatementHistoryItem `json:"analyses"`
	Total    int64                  `json:"total"`
}

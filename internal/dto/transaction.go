package dto

type AnalyzeRequest struct {
	RawText string `json:"raw_text"`
}

type TransactionResponse struct {
	ID        string  `json:"id"`
	RawText   string  `json:"raw_text"`
	Merchant  string  `json:"merchant,omitempty"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Timestamp string  `json:"timestamp,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type MerchantStat struct {
	Merchant   string  `json:"merchant"`
	TotalSpent float64 `json:"total_spent"`
	Count      int     `json:"count"`
}

type SummaryData struct {
	TotalSpend       float64            `json:"total_spend"`
	TransactionCount int                `json:"transaction_count"`
	TopCategory      string             `json:"top_category,omitempty"`
	AverageAmount    float64            `json:"average_amount"`
	Categories       map[string]float64 `json:"categories,omitempty"`
	TopMerchants     []MerchantStat     `json:"top_merchants,omitempty"`
}

type AnalyzeResponse struct {
	Summary      SummaryData           `json:"summary"`
	Categories   map[string]float64    `json:"categories"`
	Transactions []TransactionResponse `json:"transactions"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
	Summary      SummaryData           `json:"summary"`
}

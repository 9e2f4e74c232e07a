package models

import (
	"time"

	"github.com/google/uuid"
)

// StatementAnalysis is a persisted AI statement-analysis run. AnalysisJSON
// holds the full response document; the scalar columns exist for history
// listings without unmarshalling.
type StatementAnalysis struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	RawText          string    `db:"raw_text"`
	TotalSpend       float64   `db:"total_spend"`
	TotalIncome      float64   `db:"total_income"`
	TransactionCount int       `db:"transaction_count"`
	TopCategory      string    `db:"top_category"`
	TopMerchant      string    `db:"top_merchant"`
	AnalysisJSON     string    `db:"analysis_json"`
	CreatedAt        time.Time `db:"created_at"`
}

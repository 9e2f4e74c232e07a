package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is one payment extracted from pasted UPI/SMS text. Merchant is
// nil when no pattern matched; Timestamp is nil when the message carried no
// date. RawText always keeps the original line.
type Transaction struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	RawText   string     `db:"raw_text"`
	Merchant  *string    `db:"merchant"`
	Amount    float64    `db:"amount"`
	Category  string     `db:"category"`
	Timestamp *time.Time `db:"timestamp"`
	CreatedAt time.Time  `db:"created_at"`
}

// MerchantName returns the merchant or "" when none was extracted.
func (t *Transaction) MerchantName() string {
	if t.Merchant == nil {
		return ""
	}
	return *t.Merchant
}

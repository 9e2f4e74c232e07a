package models

import (
	"time"

	"github.com/google/uuid"
)

type BillingCycle string

const (
	BillingMonthly   BillingCycle = "monthly"
	BillingQuarterly BillingCycle = "quarterly"
	BillingYearly    BillingCycle = "yearly"
)

// Valid reports whether c is one of the known billing cycles.
func (c BillingCycle) Valid() bool {
	switch c {
	case BillingMonthly, BillingQuarterly, BillingYearly:
		return true
	}
	return false
}

type Subscription struct {
	ID                  uuid.UUID    `db:"id"`
	UserID              uuid.UUID    `db:"user_id"`
	Name                string       `db:"name"`
	Amount              float64      `db:"amount"`
	BillingCycle        BillingCycle `db:"billing_cycle"`
	Category            string       `db:"category"`
	RenewalDate         time.Time    `db:"renewal_date"`
	SourceTransactionID *uuid.UUID   `db:"source_transaction_id"`
	CreatedAt           time.Time    `db:"created_at"`
	UpdatedAt           time.Time    `db:"updated_at"`
}

package dto

type SubscriptionCreateRequest struct {
	Name                string  `json:"name"`
	Amount              float64 `json:"amount"`
	BillingCycle        string  `json:"billing_cycle"`
	Category            string  `json:"category"`
	RenewalDate         string  `json:"renewal_date"` // YYYY-MM-DD
	SourceTransactionID string  `json:"source_transaction_id,omitempty"`
}

// SubscriptionUpdateRequest uses pointers so absent fields stay untouched.
type SubscriptionUpdateRequest struct {
	Name         *string  `json:"name,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
	BillingCycle *string  `json:"billing_cycle,omitempty"`
	Category     *string  `json:"category,omitempty"`
	RenewalDate  *string  `json:"renewal_date,omitempty"`
}

type SubscriptionResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Amount              float64 `json:"amount"`
	BillingCycle        string  `json:"billing_cycle"`
	Category            string  `json:"category"`
	RenewalDate         string  `json:"renewal_date"`
	MonthlyEquivalent   float64 `json:"monthly_equivalent"`
	SourceTransactionID string  `json:"source_transaction_id,omitempty"`
	CreatedAt           string  `json:"created_at"`
}

type SubscriptionListResponse struct {
	Items  []SubscriptionResponse `json:"items"`
	Total  int64                  `json:"total"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

type UpcomingRenewal struct {
	Name        string `json:"name"`
	DaysLeft    int    `json:"days_left"`
	RenewalDate string `json:"renewal_date"`
}

type SubscriptionSummaryResponse struct {
	MonthlyBurn      float64           `json:"monthly_burn"`
	YearlyBurn       float64           `json:"yearly_burn"`
	UpcomingRenewals []UpcomingRenewal `json:"upcoming_renewals"`
}

type DetectedSubscription struct {
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	BillingCycle  string  `json:"billing_cycle"`
	Category      string  `json:"category"`
	Confidence    float64 `json:"confidence"`
	TransactionID string  `json:"transaction_id"`
	RenewalDate   string  `json:"renewal_date"`
}

type DetectSubscriptionsResponse struct {
	Detected []DetectedSubscription `json:"detected"`
	Scanned  int                    `json:"scanned"`
}

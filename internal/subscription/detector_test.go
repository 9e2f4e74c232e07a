package subscription

import (
	"fmt"
	"math"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ts(year int, month time.Month, day int) *time.Time {
	v := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &v
}

func newTestDetector(now time.Time) *Detector {
	d := NewDetector(nil, nil)
	d.now = fixedClock(now)
	return d
}

func TestDetectKnownProvider(t *testing.T) {
	now := time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		tx             Transaction
		wantName       string
		wantCycle      Cycle
		wantConfidence float64
		wantRenewal    string
	}{
		{
			name: "exact price point",
			tx: Transaction{
				ID:        "tx-1",
				RawText:   "Debited Rs 399 from account to HOTSTAR on 22-Nov-2024",
				Merchant:  "HOTSTAR",
				Category:  "Entertainment",
				Amount:    399,
				Timestamp: ts(2024, time.November, 22),
			},
			wantName:       "Hotstar",
			wantCycle:      CycleMonthly,
			wantConfidence: 0.95,
			wantRenewal:    "2024-12-22",
		},
		{
			name: "near price point",
			tx: Transaction{
				ID:        "tx-2",
				RawText:   "INR 520.00 paid to Netflix on 10-11-2025",
				Merchant:  "Netflix",
				Category:  "Entertainment",
				Amount:    520,
				Timestamp: ts(2025, time.November, 10),
			},
			wantName:       "Netflix",
			wantCycle:      CycleMonthly,
			wantConfidence: 0.85,
			wantRenewal:    "2025-12-10",
		},
		{
			name: "provider name only",
			tx: Transaction{
				ID:        "tx-3",
				RawText:   "INR 42.00 paid to Netflix on 10-11-2025",
				Merchant:  "Netflix",
				Category:  "Entertainment",
				Amount:    42,
				Timestamp: ts(2025, time.November, 10),
			},
			wantName:       "Netflix",
			wantCycle:      CycleMonthly,
			wantConfidence: 0.75,
			wantRenewal:    "2025-12-10",
		},
		{
			name: "yearly keyword overrides cycle",
			tx: Transaction{
				ID:        "tx-4",
				RawText:   "Rs 5999 paid to Netflix yearly plan on 01-11-2025",
				Merchant:  "Netflix",
				Category:  "Entertainment",
				Amount:    5999,
				Timestamp: ts(2025, time.November, 1),
			},
			wantName:       "Netflix",
			wantCycle:      CycleYearly,
			wantConfidence: 0.85,
			wantRenewal:    "2026-11-01",
		},
		{
			name: "quarterly provider default",
			tx: Transaction{
				ID:        "tx-5",
				RawText:   "Rs 3499 paid to FabFitFun on 15-10-2025",
				Merchant:  "FabFitFun",
				Category:  "Shopping",
				Amount:    3499,
				Timestamp: ts(2025, time.October, 15),
			},
			wantName:       "FabFitFun",
			wantCycle:      CycleQuarterly,
			wantConfidence: 0.95,
			wantRenewal:    "2026-01-15",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDetector(now)
			got := d.Detect([]Transaction{tt.tx})
			if len(got) != 1 {
				t.Fatalf("Detect returned %d candidates, want 1", len(got))
			}
			c := got[0]
			if c.Name != tt.wantName {
				t.Errorf("name = %q, want %q", c.Name, tt.wantName)
			}
			if c.Cycle != tt.wantCycle {
				t.Errorf("cycle = %q, want %q", c.Cycle, tt.wantCycle)
			}
			if math.Abs(c.Confidence-tt.wantConfidence) > 1e-9 {
				t.Errorf("confidence = %v, want %v", c.Confidence, tt.wantConfidence)
			}
			if got := c.RenewalDate.Format("2006-01-02"); got != tt.wantRenewal {
				t.Errorf("renewal = %s, want %s", got, tt.wantRenewal)
			}
			if c.TransactionID != tt.tx.ID {
				t.Errorf("transaction id = %q, want %q", c.TransactionID, tt.tx.ID)
			}
		})
	}
}

func TestDetectMissingDateAnchorsOnClock(t *testing.T) {
	now := time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC)
	d := newTestDetector(now)

	got := d.Detect([]Transaction{{
		ID:       "tx-1",
		RawText:  "INR 499.00 paid to Netflix",
		Merchant: "Netflix",
		Category: "Entertainment",
		Amount:   499,
	}})
	if len(got) != 1 {
		t.Fatalf("Detect returned %d candidates, want 1", len(got))
	}
	if !got[0].LastPaymentAt.Equal(now) {
		t.Errorf("last payment = %v, want clock time %v", got[0].LastPaymentAt, now)
	}
	want := now.AddDate(0, 1, 0)
	if !got[0].RenewalDate.Equal(want) {
		t.Errorf("renewal = %v, want %v", got[0].RenewalDate, want)
	}
}

func TestDetectGenericWording(t *testing.T) {
	now := time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC)

	t.Run("named merchant", func(t *testing.T) {
		d := newTestDetector(now)
		got := d.Detect([]Transaction{{
			ID:        "tx-1",
			RawText:   "Rs 599 membership renewal paid to GOLDS GYM on 01-11-2025",
			Merchant:  "GOLDS GYM",
			Category:  "Health",
			Amount:    599,
			Timestamp: ts(2025, time.November, 1),
		}})
		if len(got) != 1 {
			t.Fatalf("Detect returned %d candidates, want 1", len(got))
		}
		if got[0].Name != "Golds Gym" {
			t.Errorf("name = %q, want %q", got[0].Name, "Golds Gym")
		}
		if math.Abs(got[0].Confidence-0.75) > 1e-9 {
			t.Errorf("confidence = %v, want 0.75", got[0].Confidence)
		}
		if got[0].Category != "Health" {
			t.Errorf("category = %q, want Health", got[0].Category)
		}
	})

	t.Run("unnamed merchant", func(t *testing.T) {
		d := newTestDetector(now)
		got := d.Detect([]Transaction{{
			ID:       "tx-1",
			RawText:  "Rs 299 debited for subscription auto renewal",
			Category: "Others",
			Amount:   299,
		}})
		if len(got) != 1 {
			t.Fatalf("Detect returned %d candidates, want 1", len(got))
		}
		if got[0].Name != "Unknown Subscription" {
			t.Errorf("name = %q, want Unknown Subscription", got[0].Name)
		}
		if math.Abs(got[0].Confidence-0.65) > 1e-9 {
			t.Errorf("confidence = %v, want 0.65", got[0].Confidence)
		}
	})

	t.Run("recurring wording", func(t *testing.T) {
		d := newTestDetector(now)
		got := d.Detect([]Transaction{{
			ID:        "tx-1",
			RawText:   "Recurring payment of Rs 450 to CITY LIBRARY on 01-11-2025",
			Merchant:  "CITY LIBRARY",
			Category:  "Others",
			Amount:    450,
			Timestamp: ts(2025, time.November, 1),
		}})
		if len(got) != 1 {
			t.Fatalf("Detect returned %d candidates, want 1", len(got))
		}
		if got[0].Name != "City Library" {
			t.Errorf("name = %q, want %q", got[0].Name, "City Library")
		}
		if got[0].Cycle != CycleMonthly {
			t.Errorf("cycle = %q, want monthly", got[0].Cycle)
		}
		if math.Abs(got[0].Confidence-0.75) > 1e-9 {
			t.Errorf("confidence = %v, want 0.75", got[0].Confidence)
		}
	})

	t.Run("yearly wording bumps confidence and cycle", func(t *testing.T) {
		d := newTestDetector(now)
		got := d.Detect([]Transaction{{
			ID:        "tx-1",
			RawText:   "Rs 1999 annual membership renewal paid to CITY CLUB on 01-11-2025",
			Merchant:  "CITY CLUB",
			Category:  "Others",
			Amount:    1999,
			Timestamp: ts(2025, time.November, 1),
		}})
		if len(got) != 1 {
			t.Fatalf("Detect returned %d candidates, want 1", len(got))
		}
		if got[0].Cycle != CycleYearly {
			t.Errorf("cycle = %q, want yearly", got[0].Cycle)
		}
		if math.Abs(got[0].Confidence-0.85) > 1e-9 {
			t.Errorf("confidence = %v, want 0.85", got[0].Confidence)
		}
	})
}

func TestDetectIgnoresOneOffPayments(t *testing.T) {
	now := time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC)
	d := newTestDetector(now)

	got := d.Detect([]Transaction{
		{ID: "tx-1", RawText: "Rs 230 paid to UBER on 01-11-2025", Merchant: "UBER", Category: "Travel", Amount: 230, Timestamp: ts(2025, time.November, 1)},
		{ID: "tx-2", RawText: "Rs. 249.00 paid to Zomato on 20-11-2025", Merchant: "Zomato", Category: "Food", Amount: 249, Timestamp: ts(2025, time.November, 20)},
	})
	if len(got) != 0 {
		t.Fatalf("Detect returned %d candidates, want 0", len(got))
	}
}

func TestDetectStreamingBundle(t *testing.T) {
	now := time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC)
	d := newTestDetector(now)

	got := d.Detect([]Transaction{
		{ID: "tx-1", RawText: "INR 649 debited for Netflix subscription on 05-11-2025", Merchant: "Netflix", Category: "Entertainment", Amount: 649, Timestamp: ts(2025, time.November, 5)},
		{ID: "tx-2", RawText: "Rs 299 paid to Disney Plus on 06-11-2025", Merchant: "Disney Plus", Category: "Entertainment", Amount: 299, Timestamp: ts(2025, time.November, 6)},
		{ID: "tx-3", RawText: "Rs 999 paid to HBO Max on 07-11-2025", Merchant: "HBO Max", Category: "Entertainment", Amount: 999, Timestamp: ts(2025, time.November, 7)},
		{ID: "tx-4", RawText: "Rs 1499 paid to Amazon Prime Video on 08-11-2025", Merchant: "Amazon Prime Video", Category: "Entertainment", Amount: 1499, Timestamp: ts(2025, time.November, 8)},
	})
	if len(got) != 4 {
		t.Fatalf("Detect returned %d candidates, want 4", len(got))
	}
	for _, c := range got {
		if c.Confidence < 0.90 {
			t.Errorf("candidate %q confidence = %v, want >= 0.90", c.Name, c.Confidence)
		}
	}
}

func TestDetectCollapsesRepeatCharges(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	d := newTestDetector(now)

	got := d.Detect([]Transaction{
		{ID: "tx-1", RawText: "INR 499.00 paid to Netflix on 10-11-2025", Merchant: "Netflix", Category: "Entertainment", Amount: 499, Timestamp: ts(2025, time.November, 10)},
		{ID: "tx-2", RawText: "INR 499.00 paid to Netflix on 10-12-2025", Merchant: "Netflix", Category: "Entertainment", Amount: 499, Timestamp: ts(2025, time.December, 10)},
	})
	if len(got) != 1 {
		t.Fatalf("Detect returned %d candidates, want 1", len(got))
	}
	// Exact price (0.95) plus the monthly-interval corroboration, capped.
	if math.Abs(got[0].Confidence-0.99) > 1e-9 {
		t.Errorf("confidence = %v, want 0.99", got[0].Confidence)
	}
}

func TestDetectRecurrenceBoostsGenericCandidate(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	d := newTestDetector(now)

	got := d.Detect([]Transaction{
		{ID: "tx-1", RawText: "Rs 599 membership renewal paid to GOLDS GYM on 01-11-2025", Merchant: "GOLDS GYM", Category: "Health", Amount: 599, Timestamp: ts(2025, time.November, 1)},
		{ID: "tx-2", RawText: "Rs 599 membership renewal paid to GOLDS GYM on 01-12-2025", Merchant: "GOLDS GYM", Category: "Health", Amount: 599, Timestamp: ts(2025, time.December, 1)},
	})
	if len(got) != 1 {
		t.Fatalf("Detect returned %d candidates, want 1", len(got))
	}
	if math.Abs(got[0].Confidence-0.80) > 1e-9 {
		t.Errorf("confidence = %v, want 0.80 (0.75 + recurrence boost)", got[0].Confidence)
	}
}

func TestDetectConfidenceFloor(t *testing.T) {
	now := time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC)
	d := newTestDetector(now)

	var batch []Transaction
	for i := 0; i < 20; i++ {
		batch = append(batch,
			Transaction{ID: fmt.Sprintf("a-%d", i), RawText: "Rs 120 subscription debit", Category: "Others", Amount: 120},
			Transaction{ID: fmt.Sprintf("b-%d", i), RawText: "INR 499.00 paid to Netflix", Merchant: "Netflix", Category: "Entertainment", Amount: 499},
		)
	}
	for _, c := range d.Detect(batch) {
		if c.Confidence < MinConfidence {
			t.Errorf("candidate %q confidence %v below floor %v", c.Name, c.Confidence, MinConfidence)
		}
		if c.Confidence > maxConfidence {
			t.Errorf("candidate %q confidence %v above cap %v", c.Name, c.Confidence, maxConfidence)
		}
	}
}

func TestNextRenewalCrossesYearEnd(t *testing.T) {
	anchor := time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)
	if got := NextRenewal(anchor, CycleMonthly); got.Format("2006-01-02") != "2026-01-15" {
		t.Errorf("monthly renewal = %s, want 2026-01-15", got.Format("2006-01-02"))
	}
	if got := NextRenewal(anchor, CycleQuarterly); got.Format("2006-01-02") != "2026-03-15" {
		t.Errorf("quarterly renewal = %s, want 2026-03-15", got.Format("2006-01-02"))
	}
	if got := NextRenewal(anchor, CycleYearly); got.Format("2006-01-02") != "2026-12-15" {
		t.Errorf("yearly renewal = %s, want 2026-12-15", got.Format("2006-01-02"))
	}
}

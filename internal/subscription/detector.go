// Package subscription flags recurring payments in parsed transactions.
// Detection is pure pattern matching over a provider table plus generic
// subscription wording; every candidate carries a confidence score so the
// caller can decide what to surface.
package subscription

import (
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Cycle is a subscription billing period.
type Cycle string

const (
	CycleMonthly   Cycle = "monthly"
	CycleQuarterly Cycle = "quarterly"
	CycleYearly    Cycle = "yearly"
)

// MinConfidence is the floor below which candidates are discarded.
const MinConfidence = 0.60

const maxConfidence = 0.99

// Amounts within this range of a known price point still count as a near
// match.
const nearAmountTolerance = 100.0

// Transaction is the detector's view of a stored transaction.
type Transaction struct {
	ID        string
	RawText   string
	Merchant  string
	Category  string
	Amount    float64
	Timestamp *time.Time
}

// Candidate is a probable subscription derived from one transaction.
type Candidate struct {
	Name          string
	Amount        float64
	Cycle         Cycle
	Category      string
	Confidence    float64
	TransactionID string
	LastPaymentAt time.Time
	RenewalDate   time.Time
}

type Detector struct {
	providers []Provider
	logger    *zap.Logger
	now       func() time.Time
}

// NewDetector builds a detector over the given provider table; nil selects
// DefaultProviders. The table is not copied and must not be mutated.
func NewDetector(providers []Provider, logger *zap.Logger) *Detector {
	if providers == nil {
		providers = DefaultProviders()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{
		providers: providers,
		logger:    logger,
		now:       time.Now,
	}
}

// Detect scans the batch and returns subscription candidates with confidence
// of at least MinConfidence. Repeated charges collapse to one candidate per
// name+cycle, keeping the highest confidence. When the same merchant shows
// up at roughly cycle-length intervals the candidate gets a small boost.
func (d *Detector) Detect(transactions []Transaction) []Candidate {
	recurring := d.recurringMerchants(transactions)

	index := make(map[string]int)
	var out []Candidate
	for _, tx := range transactions {
		cand, ok := d.detectOne(tx)
		if !ok {
			continue
		}

		if tx.Merchant != "" && recurring[strings.ToLower(tx.Merchant)] {
			cand.Confidence = math.Min(cand.Confidence+0.05, maxConfidence)
		}
		if cand.Confidence < MinConfidence {
			continue
		}

		key := strings.ToLower(cand.Name) + "|" + string(cand.Cycle)
		if i, seen := index[key]; seen {
			if cand.Confidence > out[i].Confidence {
				out[i] = cand
			}
			continue
		}
		index[key] = len(out)
		out = append(out, cand)

		d.logger.Debug("detected subscription candidate",
			zap.String("name", cand.Name),
			zap.Float64("amount", cand.Amount),
			zap.Float64("confidence", cand.Confidence),
		)
	}
	return out
}

func (d *Detector) detectOne(tx Transaction) (Candidate, bool) {
	if !d.isSubscriptionRelated(tx) {
		return Candidate{}, false
	}

	merchant := strings.ToLower(tx.Merchant)
	rawText := strings.ToLower(tx.RawText)

	for _, provider := range d.providers {
		if !matchesProvider(provider, merchant, rawText) {
			continue
		}

		confidence := 0.75
		if hasKnownAmount(provider, tx.Amount, 0) {
			confidence = 0.95
		} else if hasKnownAmount(provider, tx.Amount, nearAmountTolerance) {
			confidence = 0.85
		}

		cycle := provider.Cycle
		if containsAny(rawText, "yearly", "annual", "year") {
			cycle = CycleYearly
			confidence = math.Max(confidence, 0.85)
		} else if containsAny(rawText, "quarterly", "quarter") {
			cycle = CycleQuarterly
			confidence = math.Max(confidence, 0.80)
		}

		anchor := d.paymentAnchor(tx)
		return Candidate{
			Name:          provider.Name,
			Amount:        tx.Amount,
			Cycle:         cycle,
			Category:      provider.Category,
			Confidence:    confidence,
			TransactionID: tx.ID,
			LastPaymentAt: anchor,
			RenewalDate:   NextRenewal(anchor, cycle),
		}, true
	}

	// Unknown provider: fall back to generic subscription wording.
	if !containsAny(rawText, "subscription", "membership", "renewal", "auto renewal", "recurring") {
		return Candidate{}, false
	}

	confidence := 0.65
	name := "Unknown Subscription"
	if tx.Merchant != "" {
		name = titleCase(tx.Merchant)
		confidence = 0.75
	}

	cycle := CycleMonthly
	if containsAny(rawText, "yearly", "annual", "year") {
		cycle = CycleYearly
		confidence += 0.1
	} else if containsAny(rawText, "quarterly", "quarter") {
		cycle = CycleQuarterly
		confidence += 0.05
	}

	anchor := d.paymentAnchor(tx)
	return Candidate{
		Name:          name,
		Amount:        tx.Amount,
		Cycle:         cycle,
		Category:      tx.Category,
		Confidence:    math.Min(confidence, maxConfidence),
		TransactionID: tx.ID,
		LastPaymentAt: anchor,
		RenewalDate:   NextRenewal(anchor, cycle),
	}, true
}

func (d *Detector) isSubscriptionRelated(tx Transaction) bool {
	haystack := strings.ToLower(tx.RawText + " " + tx.Merchant + " " + tx.Category)
	for _, keyword := range subscriptionKeywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}

func (d *Detector) paymentAnchor(tx Transaction) time.Time {
	if tx.Timestamp != nil {
		return *tx.Timestamp
	}
	return d.now()
}

// recurringMerchants reports which merchants appear at least twice with an
// average gap that looks like a billing cycle.
func (d *Detector) recurringMerchants(transactions []Transaction) map[string]bool {
	byMerchant := make(map[string][]time.Time)
	for _, tx := range transactions {
		if tx.Merchant == "" || tx.Timestamp == nil {
			continue
		}
		key := strings.ToLower(tx.Merchant)
		byMerchant[key] = append(byMerchant[key], *tx.Timestamp)
	}

	recurring := make(map[string]bool)
	for merchant, stamps := range byMerchant {
		if len(stamps) < 2 {
			continue
		}
		sort.Slice(stamps, func(i, j int) bool { return stamps[i].Before(stamps[j]) })

		var total float64
		for i := 1; i < len(stamps); i++ {
			total += stamps[i].Sub(stamps[i-1]).Hours() / 24
		}
		avg := total / float64(len(stamps)-1)

		if cycleInterval(avg) {
			recurring[merchant] = true
			d.logger.Debug("recurring payment pattern",
				zap.String("merchant", merchant),
				zap.Int("payments", len(stamps)),
				zap.Float64("avg_interval_days", avg),
			)
		}
	}
	return recurring
}

func cycleInterval(avgDays float64) bool {
	switch {
	case avgDays >= 20 && avgDays <= 40: // monthly
		return true
	case avgDays >= 80 && avgDays <= 100: // quarterly
		return true
	case avgDays >= 330 && avgDays <= 400: // yearly
		return true
	}
	return false
}

// NextRenewal returns the charge date one billing cycle after anchor.
func NextRenewal(anchor time.Time, cycle Cycle) time.Time {
	switch cycle {
	case CycleQuarterly:
		return anchor.AddDate(0, 3, 0)
	case CycleYearly:
		return anchor.AddDate(1, 0, 0)
	default:
		return anchor.AddDate(0, 1, 0)
	}
}

func matchesProvider(p Provider, merchant, rawText string) bool {
	for _, alias := range p.Aliases {
		if strings.Contains(merchant, alias) || strings.Contains(rawText, alias) {
			return true
		}
	}
	return false
}

func hasKnownAmount(p Provider, amount, tolerance float64) bool {
	for _, known := range p.Amounts {
		if math.Abs(amount-known) <= tolerance+1e-9 {
			return true
		}
	}
	return false
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// Package summary aggregates parsed transactions into spend statistics.
// Pure additive math over value slices, no I/O.
package summary

import (
	"math"
	"sort"
)

// Transaction is the slice of a stored transaction the aggregations need.
type Transaction struct {
	Amount   float64
	Category string
	Merchant string // "" when the parser found none
}

// Summary holds the headline numbers for a set of transactions.
type Summary struct {
	TotalSpend       float64
	TransactionCount int
	TopCategory      string // "" when there are no transactions
	AverageAmount    float64
}

// CategoryStat is one row of a per-category ranking.
type CategoryStat struct {
	Category string
	Total    float64
}

// MerchantStat is one row of a per-merchant ranking.
type MerchantStat struct {
	Merchant   string
	TotalSpent float64
	Count      int
}

// Build computes the headline summary. Ties on top category resolve to the
// lexicographically smaller name so output stays deterministic.
func Build(transactions []Transaction) Summary {
	if len(transactions) == 0 {
		return Summary{}
	}

	var total float64
	for _, tx := range transactions {
		total += tx.Amount
	}

	top := ""
	var topAmount float64
	for category, amount := range CategoryBreakdown(transactions) {
		if amount > topAmount || (amount == topAmount && (top == "" || category < top)) {
			top = category
			topAmount = amount
		}
	}

	return Summary{
		TotalSpend:       round2(total),
		TransactionCount: len(transactions),
		TopCategory:      top,
		AverageAmount:    round2(total / float64(len(transactions))),
	}
}

// CategoryBreakdown sums spend per category.
func CategoryBreakdown(transactions []Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for _, tx := range transactions {
		totals[tx.Category] += tx.Amount
	}
	for category, amount := range totals {
		totals[category] = round2(amount)
	}
	return totals
}

// TopCategories ranks categories by spend, largest first.
func TopCategories(transactions []Transaction, limit int) []CategoryStat {
	totals := CategoryBreakdown(transactions)

	stats := make([]CategoryStat, 0, len(totals))
	for category, amount := range totals {
		stats = append(stats, CategoryStat{Category: category, Total: amount})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Category < stats[j].Category
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// TopMerchants ranks merchants by total spend, largest first. Transactions
// without a merchant are pooled under "Unknown".
func TopMerchants(transactions []Transaction, limit int) []MerchantStat {
	if len(transactions) == 0 {
		return nil
	}

	byMerchant := make(map[string]*MerchantStat)
	order := make([]string, 0)
	for _, tx := range transactions {
		merchant := tx.Merchant
		if merchant == "" {
			merchant = "Unknown"
		}
		stat, ok := byMerchant[merchant]
		if !ok {
			stat = &MerchantStat{Merchant: merchant}
			byMerchant[merchant] = stat
			order = append(order, merchant)
		}
		stat.TotalSpent += tx.Amount
		stat.Count++
	}

	stats := make([]MerchantStat, 0, len(order))
	for _, merchant := range order {
		stat := *byMerchant[merchant]
		stat.TotalSpent = round2(stat.TotalSpent)
		stats = append(stats, stat)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSpent > stats[j].TotalSpent
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

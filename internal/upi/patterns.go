package upi

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Amount patterns for Indian transaction message formats.
// Order matters: more specific patterns first.
var amountPatterns = []*regexp.Regexp{
	// UPI Mandate format: "for Rs.599.00" or "Rs.599.00 is"
	regexp.MustCompile(`(?i)(?:for\s+)?Rs\.?\s?(\d{1,10}(?:,\d{2,3})*(?:\.\d{1,2})?)`),
	// "INR 120.00 has been DEBITED"
	regexp.MustCompile(`(?i)INR\s?(\d{1,10}(?:,\d{2,3})*(?:\.\d{1,2})?)\s+(?:has\s+been\s+)?(?:debited|credited)`),
	// SBI format: "debited by 45.0" (plain number)
	regexp.MustCompile(`(?i)(?:debited|credited)\s+(?:by\s+)?(\d{1,10}(?:\.\d{1,2})?)`),
	// debited/credited with explicit currency
	regexp.MustCompile(`(?i)(?:debited|credited)\s+(?:by\s+)?(?:INR|Rs\.?)\s?(\d{1,10}(?:,\d{2,3})*(?:\.\d{1,2})?)`),
	// "INR 219.00"
	regexp.MustCompile(`(?i)INR\s?(\d{1,10}(?:,\d{2,3})*(?:\.\d{1,2})?)`),
	// Rupee symbol: ₹1,299 or ₹1299.50
	regexp.MustCompile(`₹\s?(\d{1,10}(?:,\d{2,3})*(?:\.\d{1,2})?)`),
	// "payment of 599"
	regexp.MustCompile(`(?i)payment\s+of\s+(?:INR|Rs\.?|₹)?\s?(\d{1,10}(?:,\d{2,3})*(?:\.\d{1,2})?)`),
	// "paid 120" / "amount 120"
	regexp.MustCompile(`(?i)(?:paid|amount)\s+(?:INR|Rs\.?|₹)?\s?(\d{1,10}(?:,\d{2,3})*(?:\.\d{1,2})?)`),
	// Generic currency pattern, last resort
	regexp.MustCompile(`(?:INR|Rs\.?|₹)\s?(\d{1,10}(?:,\d{2,3})*(?:\.\d{1,2})?)`),
}

// Merchant phrases. Order matters: more specific patterns first.
var merchantPatterns = []*regexp.Regexp{
	// UPI Mandate: "towards STORYTV from"
	regexp.MustCompile(`(?i)towards\s+([A-Z][A-Za-z0-9\s&]+?)(?:\s+from|\s+A/c)`),
	// SBI: "trf to <merchant> Refno" or "trf to <merchant> on"
	regexp.MustCompile(`(?i)trf\s+to\s+([A-Z][A-Za-z0-9\s&]+?)(?:\s+Refno|\s+on|\s+ref|\s+from)`),
	// "paid to <merchant>"
	regexp.MustCompile(`(?i)(?:paid\s+)?to\s+([A-Z][A-Za-z0-9\s&]+?)(?:\s+on|\s+was|\s+for|\.|\s+UPI|\s+Ref|\s+from)`),
	// "at <merchant>"
	regexp.MustCompile(`(?i)at\s+([A-Z][A-Za-z0-9\s&]+?)(?:\s+on|\s+was|\s+for|\.|\s+Dial)`),
	// "payment to <merchant>"
	regexp.MustCompile(`(?i)payment\s+to\s+([A-Z][A-Za-z0-9\s&]+?)(?:\s+on|\s+was|\.|\s+Ref|\s+from)`),
	// "for UPI payment to <merchant>"
	regexp.MustCompile(`(?i)for\s+UPI\s+payment\s+to\s+([A-Z][A-Za-z0-9\s&]+?)(?:\s+on|\.|\s+from)`),
	// HDFC/ICICI: "with <merchant>"
	regexp.MustCompile(`(?i)with\s+([A-Z][A-Za-z0-9\s&]+?)(?:\s+on|\s+is|\.|\s+from)`),
	// Generic: capitalized words after common keywords
	regexp.MustCompile(`(?i)(?:from|merchant|vendor)\s+([A-Z][A-Za-z0-9\s&]+?)(?:\s|\.|\s+on)`),
}

// Tokens that a merchant capture must not reduce to.
var merchantStopWords = map[string]struct{}{
	"your":    {},
	"account": {},
	"acct":    {},
	"a/c":     {},
	"upi":     {},
}

type dateOrder int

const (
	orderDayMonthYear dateOrder = iota // numeric day-month-year
	orderDayMonName                    // day, month name, year
	orderYearMonthDay                  // numeric year-month-day
	orderMonNameDay                    // month name, day, year
)

var datePatterns = []struct {
	re    *regexp.Regexp
	order dateOrder
}{
	// DD/MM/YYYY or DD-MM-YYYY: "21/11/2025"
	{regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`), orderDayMonthYear},
	// SBI compact: 05Nov25 or 05Nov2025
	{regexp.MustCompile(`(?i)(\d{1,2})(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)(\d{2,4})`), orderDayMonName},
	// "20 Nov 2025"
	{regexp.MustCompile(`(?i)(\d{1,2})\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{4})`), orderDayMonName},
	// YYYY-MM-DD
	{regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})`), orderYearMonthDay},
	// "05-Nov-25" or "22-Nov-2024"
	{regexp.MustCompile(`(?i)(\d{1,2})-(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*-(\d{2,4})`), orderDayMonName},
	// "Nov 20, 2025"
	{regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{1,2}),?\s+(\d{4})`), orderMonNameDay},
}

var monthsByName = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var spaceCollapser = regexp.MustCompile(`\s+`)

// ExtractAmount returns the first monetary amount found in text.
func ExtractAmount(text string) (float64, bool) {
	for _, pattern := range amountPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return amount, true
	}
	return 0, false
}

// ExtractMerchant returns the merchant name found in text, or "" when no
// pattern yields a usable name.
func ExtractMerchant(text string) string {
	for _, pattern := range merchantPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		merchant := cleanMerchant(m[1])
		if merchant != "" {
			return merchant
		}
	}
	return ""
}

func cleanMerchant(raw string) string {
	merchant := spaceCollapser.ReplaceAllString(strings.TrimSpace(raw), " ")
	merchant = strings.TrimRight(merchant, ".,;:")

	// Numbers glued after a name (reference ids, masked accounts) are never
	// part of the merchant: cut at the first token that starts with a digit.
	tokens := strings.Fields(merchant)
	for i, token := range tokens {
		if token[0] >= '0' && token[0] <= '9' {
			tokens = tokens[:i]
			break
		}
	}
	merchant = strings.Join(tokens, " ")

	if len(merchant) <= 2 {
		return ""
	}
	if _, stop := merchantStopWords[strings.ToLower(merchant)]; stop {
		return ""
	}
	return merchant
}

// ExtractDate returns the first calendar date found in text. Two-digit years
// up to 50 land in 20xx, the rest in 19xx. Impossible dates (month 13,
// Feb 30) are skipped so a later pattern may still match.
func ExtractDate(text string) *time.Time {
	for _, entry := range datePatterns {
		m := entry.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if ts, ok := buildDate(m[1], m[2], m[3], entry.order); ok {
			return &ts
		}
	}
	return nil
}

func buildDate(g1, g2, g3 string, order dateOrder) (time.Time, bool) {
	var day, year int
	var month time.Month

	switch order {
	case orderDayMonthYear:
		day, _ = strconv.Atoi(g1)
		m, _ := strconv.Atoi(g2)
		year, _ = strconv.Atoi(g3)
		if m < 1 || m > 12 {
			return time.Time{}, false
		}
		month = time.Month(m)
	case orderDayMonName:
		day, _ = strconv.Atoi(g1)
		month = monthsByName[strings.ToLower(g2)]
		year, _ = strconv.Atoi(g3)
	case orderYearMonthDay:
		year, _ = strconv.Atoi(g1)
		m, _ := strconv.Atoi(g2)
		day, _ = strconv.Atoi(g3)
		if m < 1 || m > 12 {
			return time.Time{}, false
		}
		month = time.Month(m)
	case orderMonNameDay:
		month = monthsByName[strings.ToLower(g1)]
		day, _ = strconv.Atoi(g2)
		year, _ = strconv.Atoi(g3)
	}

	if year < 100 {
		if year <= 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	if month == 0 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	ts := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if ts.Day() != day || ts.Month() != month || ts.Year() != year {
		// time.Date normalized an impossible date like Feb 30
		return time.Time{}, false
	}
	return ts, true
}

// NormalizeText collapses runs of whitespace and trims the ends.
func NormalizeText(text string) string {
	return strings.TrimSpace(spaceCollapser.ReplaceAllString(text, " "))
}

// Package statement prepares pasted bank-statement text for AI analysis:
// normalizes whitespace, strips boilerplate, and picks out the lines that
// look like transactions.
package statement

import (
	"regexp"
	"strings"
)

// Boilerplate that banks print around the actual transaction table.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*$`),
	regexp.MustCompile(`^={3,}`),
	regexp.MustCompile(`^-{3,}`),
	regexp.MustCompile(`^\*{3,}`),
	regexp.MustCompile(`(?i)^Page \d+`),
	regexp.MustCompile(`^\s*\d+\s*$`),
	regexp.MustCompile(`(?i)CONFIDENTIAL`),
	regexp.MustCompile(`(?i)STATEMENT OF ACCOUNT`),
	regexp.MustCompile(`(?i)This is a computer generated`),
	regexp.MustCompile(`(?i)Thank you for banking`),
	regexp.MustCompile(`(?i)For any queries`),
	regexp.MustCompile(`(?i)Customer Care`),
	regexp.MustCompile(`(?i)^\s*continued`),
}

// Markers that a line carries a transaction.
var transactionIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(UPI|NEFT|IMPS|RTGS|ATM|POS|DEBIT|CREDIT|WITHDRAWAL|DEPOSIT|TRANSFER)\b`),
	regexp.MustCompile(`(?i)\b(Dr|Cr|DB|CR)\b`),
	regexp.MustCompile(`(?i)Rs\.?\s*\d+`),
	regexp.MustCompile(`\d+\.\d{2}`),
	regexp.MustCompile(`\d{2}[-/]\d{2}[-/]\d{2,4}`),
}

// When the indicator pass finds fewer lines than this, the statement layout
// is probably unusual and every non-empty line is kept instead.
const minIndicatorLines = 5

var (
	horizontalSpace = regexp.MustCompile(`[ \t]+`)
	excessNewlines  = regexp.MustCompile(`\n{3,}`)
)

type Cleaner struct{}

func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// CleanText normalizes line endings and whitespace without dropping content.
func (c *Cleaner) CleanText(rawText string) string {
	if rawText == "" {
		return ""
	}

	text := strings.ReplaceAll(rawText, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = horizontalSpace.ReplaceAllString(text, " ")
	text = excessNewlines.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// ExtractTransactionLines returns the lines of cleaned text that look like
// transactions: not boilerplate, and carrying at least one indicator.
func (c *Cleaner) ExtractTransactionLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if matchesAny(noisePatterns, line) {
			continue
		}
		if matchesAny(transactionIndicators, line) {
			out = append(out, line)
		}
	}
	return out
}

// PreprocessForAI runs the full pipeline and returns the cleaned text plus
// the candidate transaction lines the prompt should focus on.
func (c *Cleaner) PreprocessForAI(rawText string) (string, []string) {
	cleaned := c.CleanText(rawText)
	lines := c.ExtractTransactionLines(cleaned)

	if len(lines) < minIndicatorLines {
		lines = nil
		for _, line := range strings.Split(cleaned, "\n") {
			if strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
	}
	return cleaned, lines
}

func matchesAny(patterns []*regexp.Regexp, line string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

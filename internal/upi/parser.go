// Package upi extracts structured transactions from pasted UPI/SMS/bank
// notification text. Everything here is pure string work: no I/O, no shared
// mutable state, safe for concurrent use.
package upi

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// Lines shorter than this are noise (stray "OK", empty fragments).
const minLineLength = 10

// ParsedTransaction is one extracted payment. Amount is always set; Merchant
// is "" and Timestamp nil when the line did not carry them.
type ParsedTransaction struct {
	RawText   string
	Amount    float64
	Merchant  string
	Timestamp *time.Time
}

type Parser struct {
	logger *zap.Logger
}

func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// Parse splits raw input into candidate message lines and extracts a
// transaction from each. A line without a positive amount is dropped;
// a missing merchant or date never drops a line. Malformed lines are
// skipped without aborting the rest of the batch.
func (p *Parser) Parse(rawText string) []ParsedTransaction {
	text := strings.ReplaceAll(rawText, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var parsed []ParsedTransaction
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < minLineLength {
			continue
		}

		// Some senders cram several messages into one line separated by
		// ";" or "|"; treat each fragment as its own message.
		if strings.ContainsRune(line, ';') || strings.ContainsRune(line, '|') {
			for _, fragment := range splitFragments(line) {
				if tx, ok := p.parseLine(fragment); ok {
					parsed = append(parsed, tx)
				}
			}
			continue
		}

		if tx, ok := p.parseLine(line); ok {
			parsed = append(parsed, tx)
		}
	}

	p.logger.Debug("parsed upi messages", zap.Int("transactions", len(parsed)))
	return parsed
}

func splitFragments(line string) []string {
	sep := ";"
	if !strings.ContainsRune(line, ';') {
		sep = "|"
	}
	var fragments []string
	for _, part := range strings.Split(line, sep) {
		part = strings.TrimSpace(part)
		if len(part) >= minLineLength {
			fragments = append(fragments, part)
		}
	}
	return fragments
}

func (p *Parser) parseLine(line string) (ParsedTransaction, bool) {
	normalized := NormalizeText(line)

	amount, ok := ExtractAmount(normalized)
	if !ok || amount <= 0 {
		p.logger.Debug("no amount found, skipping line", zap.String("line", line))
		return ParsedTransaction{}, false
	}

	return ParsedTransaction{
		RawText:   line,
		Amount:    amount,
		Merchant:  ExtractMerchant(normalized),
		Timestamp: ExtractDate(normalized),
	}, true
}

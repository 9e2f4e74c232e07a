package upi

import (
	"testing"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"rs with dot", "Rs. 249.00 paid to Zomato on 20-11-2025", 249.00, true},
		{"inr", "INR 219.00 paid to OLA CABS on 2025-11-20", 219.00, true},
		{"rupee symbol with comma", "Payment of ₹1,299 to Amazon was successful", 1299.0, true},
		{"comma separators", "Paid Rs. 12,345.50 to merchant", 12345.50, true},
		{"debited by inr", "Your a/c was debited by INR 499.00", 499.00, true},
		{"debited plain number", "A/c XX9876 debited by 45.0 trf to GROCERY MART", 45.0, true},
		{"for rs mandate", "Payment of Rs.599.00 towards STORYTV from your account", 599.00, true},
		{"no amount", "This is just a regular message", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractAmount(tt.text)
			if ok != tt.ok {
				t.Fatalf("ExtractAmount(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ExtractAmount(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractMerchant(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"paid to", "Rs. 249.00 paid to Zomato on 20-11-2025", "Zomato"},
		{"payment to", "Payment of ₹1,299 to Amazon was successful", "Amazon"},
		{"upi payment multiword", "Your a/c was debited for UPI payment to OLA CABS on 2025-11-20", "OLA CABS"},
		{"card at", "Card transaction at BIG BAZAAR for Rs 500", "BIG BAZAAR"},
		{"towards mandate", "Payment of Rs.599.00 towards STORYTV from your account", "STORYTV"},
		{"uppercase provider", "Debited Rs 399 from account to HOTSTAR on 22-Nov-2024", "HOTSTAR"},
		{"credited no merchant", "INR 100 credited to your account", ""},
		{"stop word rejected", "Rs. 500 debited from your account on 20-11-2025", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMerchant(tt.text); got != tt.want {
				t.Errorf("ExtractMerchant(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string // "" means no date expected
	}{
		{"dd-mm-yyyy", "Payment on 20-11-2025 was successful", "2025-11-20"},
		{"dd/mm/yyyy", "Transaction on 19/11/2025", "2025-11-19"},
		{"dd mon yyyy", "Payment on 20 Nov 2025", "2025-11-20"},
		{"yyyy-mm-dd", "Transaction dated 2025-11-20", "2025-11-20"},
		{"dd-mon-yyyy", "Debited Rs 399 from account to HOTSTAR on 22-Nov-2024", "2024-11-22"},
		{"dd-mon-yy", "Paid Rs 120 on 05-Nov-25 ref 99881", "2025-11-05"},
		{"compact ddmonyy", "trf to AIRTEL 05Nov25 Refno 1234", "2025-11-05"},
		{"mon dd yyyy", "Charged on Nov 20, 2025 for plan renewal", "2025-11-20"},
		{"impossible month skipped", "Ref 99-99-2025 payment done", ""},
		{"no date", "Payment was successful", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDate(tt.text)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("ExtractDate(%q) = %v, want nil", tt.text, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ExtractDate(%q) = nil, want %s", tt.text, tt.want)
			}
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("ExtractDate(%q) = %s, want %s", tt.text, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestParseSingleMessages(t *testing.T) {
	p := NewParser(nil)

	tests := []struct {
		name         string
		message      string
		wantAmount   float64
		wantMerchant string
		wantDate     string // "" means nil timestamp
	}{
		{
			name:         "zomato sms",
			message:      "Rs. 249.00 paid to Zomato on 20-11-2025. UPI Ref: 12345",
			wantAmount:   249.00,
			wantMerchant: "Zomato",
			wantDate:     "2025-11-20",
		},
		{
			name:         "ola debited",
			message:      "Your a/c XX1234 was debited by INR 219.00 for UPI payment to OLA CABS on 2025-11-20.",
			wantAmount:   219.00,
			wantMerchant: "OLA CABS",
			wantDate:     "2025-11-20",
		},
		{
			name:         "amazon rupee symbol",
			message:      "Payment of ₹1,299 to Amazon was successful on 19/11/2025",
			wantAmount:   1299.0,
			wantMerchant: "Amazon",
			wantDate:     "2025-11-19",
		},
		{
			name:         "hotstar mon-name date",
			message:      "Debited Rs 399 from account to HOTSTAR on 22-Nov-2024",
			wantAmount:   399.0,
			wantMerchant: "HOTSTAR",
			wantDate:     "2024-11-22",
		},
		{
			name:         "netflix without date",
			message:      "INR 499.00 paid to Netflix. Subscription renewal",
			wantAmount:   499.00,
			wantMerchant: "Netflix",
			wantDate:     "",
		},
		{
			name:         "amount only",
			message:      "Rs. 500 debited from your account on 20-11-2025",
			wantAmount:   500.0,
			wantMerchant: "",
			wantDate:     "2025-11-20",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := p.Parse(tt.message)
			if len(parsed) != 1 {
				t.Fatalf("Parse(%q) returned %d transactions, want 1", tt.message, len(parsed))
			}
			tx := parsed[0]
			if tx.Amount != tt.wantAmount {
				t.Errorf("amount = %v, want %v", tx.Amount, tt.wantAmount)
			}
			if tx.Merchant != tt.wantMerchant {
				t.Errorf("merchant = %q, want %q", tx.Merchant, tt.wantMerchant)
			}
			if tx.RawText != tt.message {
				t.Errorf("raw text = %q, want the original line", tx.RawText)
			}
			switch {
			case tt.wantDate == "" && tx.Timestamp != nil:
				t.Errorf("timestamp = %v, want nil", tx.Timestamp)
			case tt.wantDate != "" && tx.Timestamp == nil:
				t.Errorf("timestamp = nil, want %s", tt.wantDate)
			case tt.wantDate != "" && tx.Timestamp.Format("2006-01-02") != tt.wantDate:
				t.Errorf("timestamp = %s, want %s", tx.Timestamp.Format("2006-01-02"), tt.wantDate)
			}
		})
	}
}

func TestParseBatches(t *testing.T) {
	p := NewParser(nil)

	t.Run("multiple lines with blanks", func(t *testing.T) {
		raw := "Rs. 249.00 paid to Zomato on 20-11-2025. UPI Ref: 12345\n" +
			"\n" +
			"INR 219 paid to OLA CABS on 20-11-2025.\n" +
			"Payment of ₹1,299 to Amazon was successful\n"
		parsed := p.Parse(raw)
		if len(parsed) != 3 {
			t.Fatalf("got %d transactions, want 3", len(parsed))
		}
		wantAmounts := []float64{249.00, 219.0, 1299.0}
		for i, want := range wantAmounts {
			if parsed[i].Amount != want {
				t.Errorf("transaction %d amount = %v, want %v", i, parsed[i].Amount, want)
			}
		}
	})

	t.Run("semicolon packed line", func(t *testing.T) {
		raw := "Rs. 249.00 paid to Zomato on 20-11-2025; INR 219 paid to OLA CABS on 20-11-2025"
		parsed := p.Parse(raw)
		if len(parsed) != 2 {
			t.Fatalf("got %d transactions, want 2", len(parsed))
		}
	})

	t.Run("garbage line does not abort batch", func(t *testing.T) {
		raw := "This is a random message without transaction details\n" +
			"Rs. 249.00 paid to Zomato on 20-11-2025"
		parsed := p.Parse(raw)
		if len(parsed) != 1 {
			t.Fatalf("got %d transactions, want 1", len(parsed))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if parsed := p.Parse(""); len(parsed) != 0 {
			t.Fatalf("got %d transactions, want 0", len(parsed))
		}
	})

	t.Run("short noise lines skipped", func(t *testing.T) {
		if parsed := p.Parse("OK\nhi\nRs 50"); len(parsed) != 0 {
			t.Fatalf("got %d transactions, want 0", len(parsed))
		}
	})
}

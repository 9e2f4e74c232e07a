package category

import "testing"

func TestCategorize(t *testing.T) {
	m := NewMapper(nil)

	tests := []struct {
		name     string
		rawText  string
		merchant string
		want     string
	}{
		{"zomato is food", "Rs. 249.00 paid to Zomato on 20-11-2025", "Zomato", "Food"},
		{"hotstar is entertainment", "Debited Rs 399 from account to HOTSTAR on 22-Nov-2024", "HOTSTAR", "Entertainment"},
		{"amazon is shopping", "Payment of ₹1,299 to Amazon was successful on 19/11/2025", "Amazon", "Shopping"},
		{"uber is travel", "Rs 230 paid to UBER on 01-11-2025", "UBER", "Travel"},
		{"merchant only match", "Paid 450 via app ref 20113", "Dominos Pizza", "Food"},
		{"keyword in raw text only", "Monthly broadband bill paid Rs 799", "", "Bills"},
		{"case insensitive", "PAID RS 120 TO SPOTIFY", "SPOTIFY", "Entertainment"},
		{"no match falls back", "Rs 100 paid to Ramesh Kumar", "Ramesh Kumar", "Others"},
		{"empty input falls back", "", "", "Others"},
		{"food wins over travel on tie", "Paid Rs 320 to cafe near the hotel", "", "Food"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Categorize(tt.rawText, tt.merchant); got != tt.want {
				t.Errorf("Categorize(%q, %q) = %q, want %q", tt.rawText, tt.merchant, got, tt.want)
			}
		})
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	m := NewMapper(nil)
	raw := "Paid Rs 320 to cafe near the hotel"
	want := m.Categorize(raw, "")
	for i := 0; i < 100; i++ {
		if got := m.Categorize(raw, ""); got != want {
			t.Fatalf("run %d: Categorize returned %q, previously %q", i, got, want)
		}
	}
}

func TestCustomRules(t *testing.T) {
	m := NewMapper([]Rule{
		{Category: "Pets", Keywords: []string{"petshop", "vet"}},
	})
	if got := m.Categorize("Rs 900 paid to CITY PETSHOP", "CITY PETSHOP"); got != "Pets" {
		t.Errorf("custom rule: got %q, want Pets", got)
	}
	if got := m.Categorize("Rs 900 paid to Zomato", "Zomato"); got != Fallback {
		t.Errorf("custom rules replace defaults: got %q, want %q", got, Fallback)
	}
}

func TestCategories(t *testing.T) {
	got := NewMapper(nil).Categories()
	want := []string{"Food", "Travel", "Bills", "Shopping", "Groceries", "Entertainment", "Education", "Health", "Others"}
	if len(got) != len(want) {
		t.Fatalf("Categories() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

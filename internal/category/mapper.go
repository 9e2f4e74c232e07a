// Package category assigns spending categories to parsed transactions by
// keyword lookup. Matching is pure and deterministic: rules are checked in
// order and the first category with a keyword hit wins.
package category

import "strings"

// Fallback is returned when no rule matches.
const Fallback = "Others"

// Rule binds one category to the keywords that select it.
type Rule struct {
	Category string
	Keywords []string
}

// DefaultRules returns the built-in category table. The slice order is the
// match priority.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: "Food",
			Keywords: []string{
				"zomato", "swiggy", "food", "restaurant", "cafe", "pizza", "burger",
				"dominos", "mcdonald", "kfc", "subway", "starbucks", "dunkin",
				"barbeque", "dining", "eatery", "kitchen", "biryani", "canteen",
				"mess", "dhaba", "tiffin", "lunch", "breakfast", "dinner", "snacks",
			},
		},
		{
			Category: "Travel",
			Keywords: []string{
				"ola", "uber", "rapido", "cab", "taxi", "metro", "railway", "irctc",
				"flight", "airline", "indigo", "spicejet", "goair", "vistara",
				"bus", "redbus", "train", "makemytrip", "yatra", "cleartrip",
				"travel", "booking", "hotel", "oyo", "petrol", "fuel", "parking",
			},
		},
		{
			Category: "Bills",
			Keywords: []string{
				"electricity", "electric", "water", "gas", "bill", "recharge",
				"mobile", "airtel", "jio", "vi", "vodafone", "broadband", "wifi",
				"internet", "postpaid", "utility", "bsnl", "tata sky", "dish tv",
				"dth", "prepaid", "telephone",
			},
		},
		{
			Category: "Shopping",
			Keywords: []string{
				"amazon", "flipkart", "myntra", "ajio", "shopping", "store",
				"mall", "retail", "fashion", "clothing", "shoes", "accessories",
				"electronics", "gadgets", "meesho", "snapdeal", "nykaa", "lifestyle",
				"shoppers stop", "pantaloons", "westside",
			},
		},
		{
			Category: "Groceries",
			Keywords: []string{
				"grocery", "supermarket", "mart", "bigbasket", "grofers", "blinkit",
				"dunzo", "instamart", "zepto", "jiomart", "dmart", "reliance fresh",
				"more", "vegetables", "fruits", "kirana", "provisions",
			},
		},
		{
			Category: "Entertainment",
			Keywords: []string{
				"netflix", "prime", "hotstar", "disney", "sony liv", "zee5",
				"hbo", "hbo max", "entertainment", "movie", "cinema", "pvr",
				"inox", "theatre", "spotify", "youtube", "gaana", "music",
				"gaming", "game", "concert", "event", "show", "storytv", "sony",
				"ott", "streaming", "subscription", "jio tv", "airtel tv",
			},
		},
		{
			Category: "Education",
			Keywords: []string{
				"education", "course", "tuition", "school", "college", "university",
				"udemy", "coursera", "byju", "unacademy", "vedantu", "learning",
				"books", "stationery", "exam", "fees", "institute", "academy",
			},
		},
		{
			Category: "Health",
			Keywords: []string{
				"hospital", "clinic", "doctor", "medical", "pharmacy", "medicine",
				"health", "apollo", "fortis", "max", "medanta", "pharma",
				"diagnostic", "lab", "test", "gym", "fitness", "cult fit",
				"wellness", "dental", "physiotherapy",
			},
		},
	}
}

type Mapper struct {
	rules []Rule
}

// NewMapper builds a mapper over the given rules; nil selects DefaultRules.
// The rules are not copied and must not be mutated afterwards.
func NewMapper(rules []Rule) *Mapper {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Mapper{rules: rules}
}

// Categorize maps a transaction to a category by substring search over the
// lowercased raw text and merchant name. Returns Fallback when nothing hits.
func (m *Mapper) Categorize(rawText, merchant string) string {
	haystack := strings.ToLower(rawText)
	if merchant != "" {
		haystack += " " + strings.ToLower(merchant)
	}

	for _, rule := range m.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(haystack, keyword) {
				return rule.Category
			}
		}
	}
	return Fallback
}

// Categories lists every known category, Fallback last.
func (m *Mapper) Categories() []string {
	names := make([]string, 0, len(m.rules)+1)
	for _, rule := range m.rules {
		names = append(names, rule.Category)
	}
	return append(names, Fallback)
}

package subscription

// Keywords that mark a transaction as possibly subscription-related. Used as
// a cheap pre-filter before the provider table is consulted.
var subscriptionKeywords = []string{
	// Streaming, international
	"netflix", "prime", "amazon prime", "disney", "disney+", "disney plus", "hulu",
	"hbo", "hbo max", "max", "apple tv", "apple tv+", "peacock", "paramount", "paramount+",
	"youtube premium", "youtube tv", "crunchyroll", "mubi", "discovery", "discovery plus",
	"curiositystream", "britbox", "shudder", "sling tv", "amc", "amc+",

	// Streaming, Indian
	"hotstar", "jiohotstar", "zee5", "sony liv", "sonyliv", "aha", "viu",

	// Streaming, Asian
	"tencent", "iqiyi", "stan",

	// Music
	"spotify", "apple music", "amazon music", "youtube music", "tidal", "pandora",
	"deezer", "gaana", "jio saavn", "jiosaavn",

	// Fitness and lifestyle
	"classpass", "masterclass",

	// Software and tools
	"adobe", "microsoft 365", "hubspot", "webflow", "icloud", "google one",

	// Beauty and fashion
	"sephora", "ipsy", "fabfitfun",

	// Generic wording
	"subscription", "membership", "monthly", "yearly", "annual", "recurring",
	"auto renewal", "renewal", "auto debit", "standing instruction",
	"ott", "streaming", "plan", "package", "recharge", "premium",
}

// Provider describes one known subscription service: the aliases it appears
// under in payment messages, its typical price points in INR, and the billing
// cycle it defaults to when the message does not say otherwise.
type Provider struct {
	Name     string
	Aliases  []string
	Amounts  []float64
	Cycle    Cycle
	Category string
}

// DefaultProviders returns the built-in provider table. Slice order is the
// match priority; longer aliases must precede any provider whose alias is a
// substring of them ("hbo max" before "max").
func DefaultProviders() []Provider {
	return []Provider{
		// International streaming
		{Name: "Netflix", Aliases: []string{"netflix"}, Amounts: []float64{199, 499, 649, 799}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Amazon Prime Video", Aliases: []string{"amazon prime video", "amazon prime"}, Amounts: []float64{179, 459, 999, 1499}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Disney+", Aliases: []string{"disney+", "disney plus"}, Amounts: []float64{299, 599, 799, 1499}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Hulu", Aliases: []string{"hulu"}, Amounts: []float64{499, 799, 999}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "HBO Max", Aliases: []string{"hbo max", "max"}, Amounts: []float64{699, 999, 1299}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Apple TV+", Aliases: []string{"apple tv+", "apple tv plus"}, Amounts: []float64{99, 199, 299}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Peacock", Aliases: []string{"peacock"}, Amounts: []float64{499, 799}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Paramount+", Aliases: []string{"paramount+", "paramount plus"}, Amounts: []float64{499, 799}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "YouTube Premium", Aliases: []string{"youtube premium"}, Amounts: []float64{129, 149, 179, 199}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "YouTube TV", Aliases: []string{"youtube tv"}, Amounts: []float64{3999, 4499}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Crunchyroll", Aliases: []string{"crunchyroll"}, Amounts: []float64{299, 499, 799}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Mubi", Aliases: []string{"mubi"}, Amounts: []float64{499, 799}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Discovery Plus", Aliases: []string{"discovery plus"}, Amounts: []float64{299, 399, 499}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "CuriosityStream", Aliases: []string{"curiositystream"}, Amounts: []float64{299, 499}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "BritBox", Aliases: []string{"britbox"}, Amounts: []float64{499, 799}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Shudder", Aliases: []string{"shudder"}, Amounts: []float64{399, 599}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Sling TV", Aliases: []string{"sling tv"}, Amounts: []float64{2499, 3499}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "AMC+", Aliases: []string{"amc+", "amc plus"}, Amounts: []float64{499, 699}, Cycle: CycleMonthly, Category: "Entertainment"},

		// Indian streaming
		{Name: "Hotstar", Aliases: []string{"hotstar", "jiohotstar"}, Amounts: []float64{299, 399, 499, 799, 1499}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Zee5", Aliases: []string{"zee5"}, Amounts: []float64{99, 299, 599, 699, 999}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "SonyLIV", Aliases: []string{"sonyliv", "sony liv"}, Amounts: []float64{299, 399, 599, 699, 999}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Aha", Aliases: []string{"aha"}, Amounts: []float64{199, 299, 365}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Viu", Aliases: []string{"viu"}, Amounts: []float64{99, 199, 299}, Cycle: CycleMonthly, Category: "Entertainment"},

		// Asian streaming
		{Name: "Tencent Video", Aliases: []string{"tencent video"}, Amounts: []float64{299, 499, 799}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "iQIYI", Aliases: []string{"iqiyi"}, Amounts: []float64{299, 499, 799}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Stan", Aliases: []string{"stan"}, Amounts: []float64{599, 799, 999}, Cycle: CycleMonthly, Category: "Entertainment"},

		// Music
		{Name: "Spotify", Aliases: []string{"spotify"}, Amounts: []float64{119, 149, 179, 199}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Apple Music", Aliases: []string{"apple music"}, Amounts: []float64{99, 149, 199}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Amazon Music", Aliases: []string{"amazon music"}, Amounts: []float64{99, 149, 199}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "YouTube Music", Aliases: []string{"youtube music"}, Amounts: []float64{99, 129, 149}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Tidal", Aliases: []string{"tidal"}, Amounts: []float64{199, 399}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Pandora", Aliases: []string{"pandora"}, Amounts: []float64{299, 499}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Deezer", Aliases: []string{"deezer"}, Amounts: []float64{149, 299}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "JioSaavn", Aliases: []string{"jio saavn"}, Amounts: []float64{99, 299, 399}, Cycle: CycleMonthly, Category: "Entertainment"},
		{Name: "Gaana", Aliases: []string{"gaana"}, Amounts: []float64{99, 299, 399}, Cycle: CycleMonthly, Category: "Entertainment"},

		// Fitness and lifestyle
		{Name: "ClassPass", Aliases: []string{"classpass"}, Amounts: []float64{2999, 4999, 6999}, Cycle: CycleMonthly, Category: "Health"},

		// Education and professional
		{Name: "MasterClass", Aliases: []string{"masterclass"}, Amounts: []float64{999, 1499, 14999}, Cycle: CycleMonthly, Category: "Education"},
		{Name: "HubSpot", Aliases: []string{"hubspot"}, Amounts: []float64{2999, 4999, 9999}, Cycle: CycleMonthly, Category: "Software"},
		{Name: "Webflow", Aliases: []string{"webflow"}, Amounts: []float64{999, 1999, 2999}, Cycle: CycleMonthly, Category: "Software"},

		// Beauty and fashion boxes
		{Name: "Sephora", Aliases: []string{"sephora"}, Amounts: []float64{299, 499, 999}, Cycle: CycleMonthly, Category: "Shopping"},
		{Name: "Ipsy", Aliases: []string{"ipsy glam bag", "ipsy"}, Amounts: []float64{799, 999, 1999}, Cycle: CycleMonthly, Category: "Shopping"},
		{Name: "FabFitFun", Aliases: []string{"fabfitfun"}, Amounts: []float64{3499, 4999}, Cycle: CycleQuarterly, Category: "Shopping"},

		// Software and cloud storage
		{Name: "Adobe", Aliases: []string{"adobe"}, Amounts: []float64{1675, 4347}, Cycle: CycleMonthly, Category: "Software"},
		{Name: "Microsoft 365", Aliases: []string{"microsoft 365"}, Amounts: []float64{420, 489, 5299}, Cycle: CycleMonthly, Category: "Software"},
		{Name: "iCloud", Aliases: []string{"icloud"}, Amounts: []float64{75, 219, 749}, Cycle: CycleMonthly, Category: "Storage"},
		{Name: "Google One", Aliases: []string{"google one"}, Amounts: []float64{130, 210, 650}, Cycle: CycleMonthly, Category: "Storage"},
	}
}

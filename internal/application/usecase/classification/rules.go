// Package classification implements the rule-based transaction classification
// engine. It is pure computation: no storage, no network, no shared mutable
// state beyond the immutable rule tables below.
package classification

import "github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"

// CategoryRule maps lowercase substring patterns to the zone and category
// label they imply. Rules and their patterns are evaluated in declared order;
// the first match wins, so table order encodes precedence.
type CategoryRule struct {
	Patterns []string
	Zone     entity.Zone
	Category string
}

// CategoryStreaming names the subscription category the insight generator
// aggregates by; the label must match the rule table below.
const CategoryStreaming = "Streaming & Music"

// Confidence constants per rule tier. These are hand-authored signals of
// certainty shown in the UI, not calibrated probabilities.
const (
	ConfidenceRuleMatch   = 0.85
	ConfidenceBillPayment = 0.6
	ConfidenceTransfer    = 0.5
	ConfidenceDining      = 0.65
	ConfidenceRetail      = 0.55
	ConfidenceSmallAmount = 0.45
	ConfidenceMidAmount   = 0.4
	ConfidenceUpperMid    = 0.35
	ConfidenceLargeAmount = 0.4
	ConfidenceFallback    = 0.3
)

// greenRules classify essential spending (needs).
var greenRules = []CategoryRule{
	{
		Patterns: []string{"whole foods", "trader joe", "safeway", "kroger", "aldi", "wegmans", "publix", "food lion", "supermarket", "grocery", "market basket", "h-e-b", "sprouts"},
		Zone:     entity.ZoneGreen,
		Category: "Groceries",
	},
	{
		Patterns: []string{"pharmacy", "cvs", "walgreens", "rite aid", "doctor", "dental", "medical", "clinic", "hospital", "urgent care", "optometr"},
		Zone:     entity.ZoneGreen,
		Category: "Healthcare",
	},
	{
		Patterns: []string{"electric", "water bill", "gas bill", "utility", "utilities", "sewer", "national grid", "eversource", "con edison"},
		Zone:     entity.ZoneGreen,
		Category: "Utilities",
	},
	{
		Patterns: []string{"internet", "comcast", "xfinity", "verizon", "at&t", "t-mobile", "spectrum"},
		Zone:     entity.ZoneGreen,
		Category: "Phone & Internet",
	},
	{
		Patterns: []string{"rent", "mortgage", "landlord", "property management", "hoa "},
		Zone:     entity.ZoneGreen,
		Category: "Housing",
	},
	{
		Patterns: []string{"shell", "exxon", "chevron", "mobil", "sunoco", "gas station", "fuel", "citgo", "speedway"},
		Zone:     entity.ZoneGreen,
		Category: "Gas & Fuel",
	},
	{
		Patterns: []string{"insurance", "geico", "allstate", "progressive", "state farm"},
		Zone:     entity.ZoneGreen,
		Category: "Insurance",
	},
	{
		Patterns: []string{"mbta", "metro", "transit", "amtrak", "commuter rail", "toll"},
		Zone:     entity.ZoneGreen,
		Category: "Public Transit",
	},
	{
		Patterns: []string{"daycare", "childcare", "tuition", "school lunch"},
		Zone:     entity.ZoneGreen,
		Category: "Family & Education",
	},
}

// yellowRules classify discretionary-but-reasonable spending.
var yellowRules = []CategoryRule{
	{
		Patterns: []string{"starbucks", "dunkin", "coffee", "espresso", "peet", "caribou"},
		Zone:     entity.ZoneYellow,
		Category: "Coffee Shops",
	},
	{
		Patterns: []string{"restaurant", "grill", "bistro", "diner", "pizzeria", "sushi", "taco", "pub", "tavern", "steakhouse", "cantina", "trattoria"},
		Zone:     entity.ZoneYellow,
		Category: "Dining Out",
	},
	{
		Patterns: []string{"netflix", "spotify", "hulu", "disney+", "hbo", "paramount+", "apple music", "youtube premium", "audible", "pandora"},
		Zone:     entity.ZoneYellow,
		Category: CategoryStreaming,
	},
	{
		Patterns: []string{"amazon", "ebay", "etsy", "wayfair", "overstock"},
		Zone:     entity.ZoneYellow,
		Category: "Online Shopping",
	},
	{
		Patterns: []string{"target", "costco", "walmart", "best buy", "home depot", "lowe's", "ikea"},
		Zone:     entity.ZoneYellow,
		Category: "Retail & Home",
	},
	{
		Patterns: []string{"movie", "cinema", "amc ", "regal", "theater", "concert", "ticketmaster", "stubhub"},
		Zone:     entity.ZoneYellow,
		Category: "Entertainment",
	},
	{
		Patterns: []string{"gym", "planet fitness", "equinox", "yoga", "crossfit", "peloton"},
		Zone:     entity.ZoneYellow,
		Category: "Fitness",
	},
	{
		Patterns: []string{"uber", "lyft", "taxi", "parking"},
		Zone:     entity.ZoneYellow,
		Category: "Rideshare & Parking",
	},
	{
		Patterns: []string{"subscription", "membership", "patreon", "substack"},
		Zone:     entity.ZoneYellow,
		Category: "Subscriptions",
	},
	{
		Patterns: []string{"sephora", "ulta", "salon", "barber", "spa "},
		Zone:     entity.ZoneYellow,
		Category: "Personal Care",
	},
}

// redRules classify avoidable or impulsive spending.
var redRules = []CategoryRule{
	{
		Patterns: []string{"mcdonald", "burger king", "wendy", "taco bell", "kfc", "popeyes", "chick-fil-a", "five guys", "sonic drive", "jack in the box", "arby"},
		Zone:     entity.ZoneRed,
		Category: "Fast Food",
	},
	{
		Patterns: []string{"doordash", "grubhub", "postmates", "seamless", "uber eats", "caviar"},
		Zone:     entity.ZoneRed,
		Category: "Food Delivery",
	},
	{
		Patterns: []string{"liquor", "brewery", "taproom", "wine & spirits", "nightclub", "lounge", "bottle shop"},
		Zone:     entity.ZoneRed,
		Category: "Alcohol & Bars",
	},
	{
		Patterns: []string{"casino", "draftkings", "fanduel", "betmgm", "lottery", "poker", "sportsbook"},
		Zone:     entity.ZoneRed,
		Category: "Gambling",
	},
	{
		Patterns: []string{"temu", "shein", "wish.com", "aliexpress", "flash sale"},
		Zone:     entity.ZoneRed,
		Category: "Impulse Shopping",
	},
	{
		Patterns: []string{"vape", "smoke shop", "tobacco", "cigar"},
		Zone:     entity.ZoneRed,
		Category: "Smoking & Vaping",
	},
	{
		Patterns: []string{"playstation network", "xbox live", "nintendo eshop", "steam purchase", "in-app purchase", "loot"},
		Zone:     entity.ZoneRed,
		Category: "Games & Microtransactions",
	},
	{
		Patterns: []string{"atm fee", "overdraft", "late fee", "nsf fee", "interest charge"},
		Zone:     entity.ZoneRed,
		Category: "Fees & Penalties",
	},
}

// evaluationOrder is the concatenated scan list: GREEN first, then YELLOW,
// then RED. When a search string could satisfy several rules, the earliest
// rule in this list wins, deliberately favoring the essential reading of an
// ambiguous merchant ("pub" resolves to Dining Out, never Alcohol & Bars).
var evaluationOrder = buildEvaluationOrder()

func buildEvaluationOrder() []CategoryRule {
	rules := make([]CategoryRule, 0, len(greenRules)+len(yellowRules)+len(redRules))
	rules = append(rules, greenRules...)
	rules = append(rules, yellowRules...)
	rules = append(rules, redRules...)
	return rules
}

// Keyword heuristics applied when no rule matches, in priority order.
var (
	billPaymentKeywords = []string{"bill pay", "billpay", "autopay", "auto pay", "direct debit", "payment", "e-pay"}
	transferKeywords    = []string{"zelle", "venmo", "paypal", "cash app", "transfer", "wire"}
	diningKeywords      = []string{"restaurant", "cafe", "eatery", "kitchen", "food", "bakery", "deli"}
	retailKeywords      = []string{"store", "mart", "retail", "outlet", "wholesale", "boutique"}
)

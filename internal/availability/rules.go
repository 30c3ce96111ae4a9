package availability

import "github.com/shopspring/decimal"

// Rules is the immutable configuration the validator and pricer run
// against. Handed to New once; never mutated afterwards. Tests build their
// own value instead of patching globals.
type Rules struct {
	AllowedLanguages     []string
	AllowedCurrencies    []string
	AllowedNationalities []string
	AllowedMarkets       []string

	DefaultLanguage    string
	DefaultCurrency    string
	DefaultNationality string
	DefaultMarket      string

	DefaultOptionsQuota int
	MaxOptionsQuota     int

	// Stay constraints, both in whole days.
	MinLeadDays int
	MinStayDays int

	MaxRooms           int
	MaxGuestsPerRoom   int
	MaxChildrenPerRoom int

	// Guests older than AdultAgeOver count as adults.
	AdultAgeOver int

	// NetRate is denominated in SellingCurrency before conversion.
	SellingCurrency string
	NetRate         decimal.Decimal
	MarkupPercent   decimal.Decimal
	Rates           RateTable
}

func DefaultRules() Rules {
	return Rules{
		AllowedLanguages:     []string{"en", "fr", "de", "es"},
		AllowedCurrencies:    []string{"EUR", "USD", "GBP"},
		AllowedNationalities: []string{"US", "GB", "CA"},
		AllowedMarkets:       []string{"US", "GB", "CA", "ES"},

		DefaultLanguage:    "en",
		DefaultCurrency:    "EUR",
		DefaultNationality: "US",
		DefaultMarket:      "ES",

		DefaultOptionsQuota: 20,
		MaxOptionsQuota:     50,

		MinLeadDays: 2,
		MinStayDays: 3,

		MaxRooms:           10,
		MaxGuestsPerRoom:   10,
		MaxChildrenPerRoom: 4,

		AdultAgeOver: 5,

		SellingCurrency: "USD",
		NetRate:         decimal.RequireFromString("132.42"),
		MarkupPercent:   decimal.RequireFromString("3.2"),
		Rates:           DefaultRateTable(),
	}
}

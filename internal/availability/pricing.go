package availability

import (
	"bitbucket.org/crgw/availability-hub/internal/schema"
	"github.com/shopspring/decimal"
)

// RateTable holds static exchange rates keyed by base then quote currency.
type RateTable map[string]map[string]decimal.Decimal

func (t RateTable) Rate(base, quote string) (decimal.Decimal, bool) {
	quotes, ok := t[base]
	if !ok {
		return decimal.Decimal{}, false
	}

	rate, ok := quotes[quote]
	return rate, ok
}

// DefaultRateTable covers the USD/EUR/GBP triangulation. Anything outside
// it is a RateLookupError at pricing time.
func DefaultRateTable() RateTable {
	rates := map[string]map[string]string{
		"USD": {"USD": "1", "EUR": "0.96", "GBP": "0.79"},
		"EUR": {"USD": "1.04", "EUR": "1", "GBP": "0.83"},
		"GBP": {"USD": "1.26", "EUR": "1.21", "GBP": "1"},
	}

	table := make(RateTable, len(rates))
	for base, quotes := range rates {
		table[base] = make(map[string]decimal.Decimal, len(quotes))
		for quote, rate := range quotes {
			table[base][quote] = decimal.RequireFromString(rate)
		}
	}

	return table
}

// priceQuote converts the net rate from the selling currency into the
// requested one and derives the selling price:
// selling = net + round(net * markup / 100, 2).
func (s *Service) priceQuote(currency string) (schema.Price, error) {
	net := s.rules.NetRate
	rate := decimal.NewFromInt(1)

	if currency != s.rules.SellingCurrency {
		tableRate, ok := s.rules.Rates.Rate(s.rules.SellingCurrency, currency)
		if !ok {
			return schema.Price{}, &RateLookupError{Base: s.rules.SellingCurrency, Quote: currency}
		}

		rate = tableRate
		net = net.Mul(rate)
	}

	markupAmount := net.
		Mul(s.rules.MarkupPercent).
		Div(decimal.NewFromInt(100)).
		Round(2)

	return schema.Price{
		Currency:        currency,
		Net:             net.InexactFloat64(),
		Markup:          s.rules.MarkupPercent.InexactFloat64(),
		SellingCurrency: s.rules.SellingCurrency,
		ExchangeRate:    rate.InexactFloat64(),
		SellingPrice:    net.Add(markupAmount).InexactFloat64(),
	}, nil
}

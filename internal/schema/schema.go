package schema

// Price is the quote embedded in an availability response. Net is converted
// into the requested currency; SellingPrice adds the markup on top.
type Price struct {
	MinimumSellingPrice *float64 `json:"minimumSellingPrice"`
	Currency            string   `json:"currency"`
	Net                 float64  `json:"net"`
	Markup              float64  `json:"markup"`
	SellingCurrency     string   `json:"selling_currency"`
	ExchangeRate        float64  `json:"exchange_rate"`
	SellingPrice        float64  `json:"selling_price"`
}

// AvailabilityResponse is the priced result for one validated room group.
// Built once per successful run and never mutated afterwards.
type AvailabilityResponse struct {
	Id                string `json:"id"`
	HotelCodeSupplier string `json:"hotelCodeSupplier"`
	Market            string `json:"market"`
	Price             Price  `json:"price"`
}

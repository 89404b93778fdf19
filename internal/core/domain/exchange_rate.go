package domain

// ExchangeRateEntry holds the conversion factors for one calendar month.
// Factors are TRY per one unit of the keyed currency. A factor that is missing or not
// positive means the rate is unavailable for that currency.
type ExchangeRateEntry struct {
	Month    string               `json:"month"` // YYYY-MM
	Factors  map[Currency]float64 `json:"factors"`
	BrentTRY float64              `json:"brentTRY"` // TRY per barrel
	BrentUSD float64              `json:"brentUSD"` // USD per barrel
}

// Factor returns the divisor that converts a base-currency value into c.
// The base currency always resolves to 1; BRENT resolves to the Brent TRY price.
func (e ExchangeRateEntry) Factor(c Currency) (float64, bool) {
	if c.IsBase() {
		return 1, true
	}
	var f float64
	if c == BRENT {
		f = e.BrentTRY
	} else {
		f = e.Factors[c]
	}
	if !(f > 0) {
		return 0, false
	}
	return f, true
}

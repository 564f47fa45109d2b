package fxrates

import "math"

// Rates is the latest rate table for a base currency.
type Rates struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Rate returns the rate for a quote currency when it is present, positive and finite.
func (r *Rates) Rate(currency string) (float64, bool) {
	if r == nil {
		return 0, false
	}

	rate, ok := r.Rates[currency]
	if !ok || rate <= 0 || math.IsInf(rate, 1) {
		return 0, false
	}

	return rate, true
}

package model

import "time"

// Metal is an ISO 4217 precious-metal code.
type Metal string

const (
	Gold   Metal = "XAU"
	Silver Metal = "XAG"
)

type Currency string

const (
	USD Currency = "USD"
	AED Currency = "AED"
	EGP Currency = "EGP"
)

type Purity string

const (
	Purity24k Purity = "24k"
	Purity21k Purity = "21k"
)

// Karat returns the purity in karats out of 24.
func (p Purity) Karat() int {
	switch p {
	case Purity21k:
		return 21
	default:
		return 24
	}
}

// SpotQuote is a spot price as reported by an upstream provider.
// Optional fields stay nil when the provider does not report them.
type SpotQuote struct {
	Metal             Metal     `json:"metal"`
	PricePerTroyOunce float64   `json:"price_per_troy_ounce"`
	AsOf              string    `json:"as_of"`
	AsOfTime          time.Time `json:"as_of_time,omitzero"`
	PriorClose        *float64  `json:"prior_close,omitempty"`
	ChangeAbsolute    *float64  `json:"change_absolute,omitempty"`
	ChangePercent     *float64  `json:"change_percent,omitempty"`
}

// HasChange reports whether both change values are known.
func (q SpotQuote) HasChange() bool {
	return q.ChangeAbsolute != nil && q.ChangePercent != nil
}

type ExchangeRate struct {
	From Currency `json:"from"`
	To   Currency `json:"to"`
	Rate float64  `json:"rate"`
}

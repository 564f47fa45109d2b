package model

import (
	"time"

	"github.com/google/uuid"
)

type GramPrice struct {
	Currency Currency `json:"currency"`
	Purity   Purity   `json:"purity"`
	Amount   float64  `json:"amount"`
}

// DerivedPriceSet is the per-gram view of one gold quote.
// CrossRates is empty when no EGP rate was available.
type DerivedPriceSet struct {
	Grams      []GramPrice    `json:"grams"`
	CrossRates []ExchangeRate `json:"cross_rates"`
}

// Gram returns the per-gram price for the currency and purity.
func (s DerivedPriceSet) Gram(currency Currency, purity Purity) (float64, bool) {
	for _, g := range s.Grams {
		if g.Currency == currency && g.Purity == purity {
			return g.Amount, true
		}
	}

	return 0, false
}

// Rate returns the displayed cross rate between two currencies.
func (s DerivedPriceSet) Rate(from, to Currency) (float64, bool) {
	for _, r := range s.CrossRates {
		if r.From == from && r.To == to {
			return r.Rate, true
		}
	}

	return 0, false
}

// FXSource tells where the USD to EGP rate of a report came from.
type FXSource string

const (
	FXNone     FXSource = ""
	FXDerived  FXSource = "derived"
	FXLive     FXSource = "live"
	FXFallback FXSource = "fallback"
)

// Report is the outcome of one successful pipeline run.
type Report struct {
	CycleID   uuid.UUID       `json:"cycle_id"`
	Source    string          `json:"source"`
	Gold      SpotQuote       `json:"gold"`
	Silver    SpotQuote       `json:"silver"`
	Prices    DerivedPriceSet `json:"prices"`
	FXSource  FXSource        `json:"fx_source,omitempty"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Region identifies one pipeline's area on the price board.
type Region string

const (
	RegionPrimary   Region = "primary"
	RegionSecondary Region = "secondary"
)

// Package conversion turns ounce spot prices into per-gram prices.
package conversion

import "bullion/internal/model"

const (
	// OunceToGrams is the exact troy ounce in grams.
	OunceToGrams = 31.1034768
	// USDToAED is the fixed dirham peg.
	USDToAED = 3.6725
	// FallbackUSDToEGP is used when no live EGP rate is available.
	FallbackUSDToEGP = 50.0
)

// Inputs parameterize Compute.
//
// FXRate is the USD to EGP rate; zero means EGP is unavailable.
// OunceFX is an EGP-denominated ounce price quoted directly by the provider;
// when zero the EGP gram price is derived from OunceUSD and FXRate.
type Inputs struct {
	OunceUSD float64
	PegRate  float64
	FXRate   float64
	OunceFX  float64
}

// PerGram converts an ounce price to a gram price.
func PerGram(ouncePrice float64) float64 {
	return ouncePrice / OunceToGrams
}

// ToPurity scales a 24k gram price to the given purity.
func ToPurity(gram24k float64, purity model.Purity) float64 {
	if purity == model.Purity24k {
		return gram24k
	}

	return gram24k * float64(purity.Karat()) / 24
}

// Compute derives the gram prices and cross rates for one gold quote.
func Compute(in Inputs) model.DerivedPriceSet {
	set := model.DerivedPriceSet{}

	set.Grams = appendPurities(set.Grams, model.USD, PerGram(in.OunceUSD))
	set.Grams = appendPurities(set.Grams, model.AED, in.OunceUSD*in.PegRate/OunceToGrams)

	if in.FXRate <= 0 {
		return set
	}

	egp := in.OunceUSD * in.FXRate / OunceToGrams
	if in.OunceFX > 0 {
		egp = PerGram(in.OunceFX)
	}
	set.Grams = appendPurities(set.Grams, model.EGP, egp)

	set.CrossRates = []model.ExchangeRate{
		{From: model.USD, To: model.EGP, Rate: in.FXRate},
		{From: model.AED, To: model.EGP, Rate: in.FXRate / in.PegRate},
	}

	return set
}

// ImpliedRate is the exchange rate implied by the same gold ounce quoted in two currencies.
func ImpliedRate(ounceInTarget, ounceInBase float64) float64 {
	return ounceInTarget / ounceInBase
}

func appendPurities(grams []model.GramPrice, currency model.Currency, gram24k float64) []model.GramPrice {
	return append(grams,
		model.GramPrice{Currency: currency, Purity: model.Purity24k, Amount: gram24k},
		model.GramPrice{Currency: currency, Purity: model.Purity21k, Amount: ToPurity(gram24k, model.Purity21k)},
	)
}

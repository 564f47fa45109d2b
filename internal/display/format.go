// Package display formats prices the way the board shows them.
package display

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"bullion/internal/model"
)

const (
	Positive = "positive"
	Negative = "negative"

	// NotAvailable replaces amounts that are not finite numbers.
	NotAvailable = "n/a"
)

var printer = message.NewPrinter(language.English)

var symbols = map[model.Currency]string{
	model.USD: "$",
	model.AED: "AED ",
	model.EGP: "EGP ",
}

// Money renders an amount with exactly two fraction digits and the currency symbol.
func Money(amount float64, currency model.Currency) string {
	if !finite(amount) {
		return symbol(currency) + NotAvailable
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return sign + symbol(currency) + grouped(amount)
}

// Change renders a signed amount, always prefixing non-negative values with "+".
func Change(amount float64, currency model.Currency) string {
	if amount >= 0 {
		return "+" + Money(amount, currency)
	}

	return Money(amount, currency)
}

// Direction returns the style class for a change value.
func Direction(amount float64) string {
	if amount >= 0 {
		return Positive
	}

	return Negative
}

// Percent keeps the precision the provider sent.
func Percent(pc float64) string {
	return "(" + strconv.FormatFloat(pc, 'f', -1, 64) + "%)"
}

// Rate renders an exchange rate without a currency symbol.
func Rate(rate float64) string {
	return grouped(rate)
}

func symbol(currency model.Currency) string {
	if s, ok := symbols[currency]; ok {
		return s
	}

	return string(currency) + " "
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func grouped(amount float64) string {
	if !finite(amount) {
		return NotAvailable
	}

	rounded := decimal.NewFromFloat(amount).Round(2).InexactFloat64()
	return printer.Sprint(number.Decimal(rounded, number.Scale(2)))
}

package goldapi

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Price is the spot price of one metal in USD per troy ounce.
type Price struct {
	Name      string `json:"name"`   // ex: Gold
	Price     Amount `json:"price"`  // ex: 2730.5 or "2730.5"
	Symbol    string `json:"symbol"` // ex: XAU
	UpdatedAt string `json:"updatedAt"`
}

// Amount accepts both JSON numbers and numeric strings. NaN and infinities are rejected.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*a = 0
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", data, err)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("parse amount %q: not a finite number", data)
	}

	*a = Amount(v)
	return nil
}

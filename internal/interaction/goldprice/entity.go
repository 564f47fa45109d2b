package goldprice

// Rates is the dbXRates table for one currency.
type Rates struct {
	Date  string `json:"date"`
	Items []Item `json:"items"`
}

// Item is one row of the table, prices per troy ounce in Curr.
type Item struct {
	Curr     string  `json:"curr"`     // ex: USD
	XauPrice float64 `json:"xauPrice"` // ex: 5581.4
	XagPrice float64 `json:"xagPrice"` // ex: 114.05
	ChgXau   float64 `json:"chgXau"`   // ex: 276.15
	ChgXag   float64 `json:"chgXag"`
	PcXau    float64 `json:"pcXau"` // ex: 5.2052
	PcXag    float64 `json:"pcXag"`
	XauClose float64 `json:"xauClose"` // ex: 5305.25
	XagClose float64 `json:"xagClose"`
}

// First returns the first item of the table, if any.
func (r *Rates) First() (Item, bool) {
	if r == nil || len(r.Items) == 0 {
		return Item{}, false
	}

	return r.Items[0], true
}

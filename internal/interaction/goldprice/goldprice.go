package goldprice

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"bullion/internal/interaction/httpjson"
)

const Source = "goldprice.org"

type Interaction struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
}

// NewInteraction creates a new instance of Interaction with goldprice.org.
func NewInteraction(logger *slog.Logger, client *http.Client, baseURL string) *Interaction {
	return &Interaction{
		logger:  logger.With("component", "goldprice"),
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetRates returns the gold and silver table denominated in the given currency.
func (that *Interaction) GetRates(ctx context.Context, currency string) (*Rates, error) {
	target := that.baseURL + "/dbXRates/" + url.PathEscape(currency)

	var rates Rates
	if err := httpjson.Get(ctx, that.client, target, &rates); err != nil {
		return nil, fmt.Errorf("get %s rates: %w", currency, err)
	}

	that.logger.Debug("fetched rates", "method", "GetRates", "currency", currency, "items", len(rates.Items))
	return &rates, nil
}

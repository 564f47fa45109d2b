package goldapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"bullion/internal/interaction/httpjson"
)

const Source = "gold-api.com"

type Interaction struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
}

// NewInteraction creates a new instance of Interaction with gold-api.com.
func NewInteraction(logger *slog.Logger, client *http.Client, baseURL string) *Interaction {
	return &Interaction{
		logger:  logger.With("component", "goldapi"),
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetPrice returns the USD spot price for a metal symbol such as XAU.
func (that *Interaction) GetPrice(ctx context.Context, symbol string) (*Price, error) {
	target := that.baseURL + "/price/" + url.PathEscape(symbol)

	var price Price
	if err := httpjson.Get(ctx, that.client, target, &price); err != nil {
		return nil, fmt.Errorf("get %s price: %w", symbol, err)
	}

	that.logger.Debug("fetched price", "method", "GetPrice", "symbol", symbol, "price", float64(price.Price))
	return &price, nil
}

package fxrates

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"bullion/internal/interaction/httpjson"
)

type Interaction struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
}

// NewInteraction creates a new instance of Interaction with the exchange rate provider.
func NewInteraction(logger *slog.Logger, client *http.Client, baseURL string) *Interaction {
	return &Interaction{
		logger:  logger.With("component", "fxrates"),
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetLatest returns the latest rates for the base currency.
func (that *Interaction) GetLatest(ctx context.Context, base string) (*Rates, error) {
	target := that.baseURL + "/latest/" + url.PathEscape(base)

	var rates Rates
	if err := httpjson.Get(ctx, that.client, target, &rates); err != nil {
		return nil, fmt.Errorf("get latest %s rates: %w", base, err)
	}

	return &rates, nil
}

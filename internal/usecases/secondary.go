package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"bullion/internal/conversion"
	"bullion/internal/interaction/fxrates"
	"bullion/internal/interaction/goldapi"
	"bullion/internal/model"
)

type SpotInteraction interface {
	GetPrice(ctx context.Context, symbol string) (*goldapi.Price, error)
}

type FXInteraction interface {
	GetLatest(ctx context.Context, base string) (*fxrates.Rates, error)
}

// SecondaryPipeline combines gold and silver spot prices with a live USD to EGP rate.
// Both spot prices are mandatory. A missing rate falls back to conversion.FallbackUSDToEGP.
type SecondaryPipeline struct {
	logger *slog.Logger
	spot   SpotInteraction
	fx     FXInteraction
	now    func() time.Time
}

func NewSecondaryPipeline(logger *slog.Logger, spot SpotInteraction, fx FXInteraction) *SecondaryPipeline {
	return &SecondaryPipeline{logger: logger.With("component", "secondary_pipeline"), spot: spot, fx: fx, now: time.Now}
}

func (that *SecondaryPipeline) Region() model.Region {
	return model.RegionSecondary
}

func (that *SecondaryPipeline) Run(ctx context.Context, cycleID uuid.UUID) (*model.Report, error) {
	log := that.logger.With("method", "Run", "cycle_id", cycleID)

	var gold, silver *goldapi.Price
	fxRate, fxSource := conversion.FallbackUSDToEGP, model.FXFallback

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		price, err := that.fetchSpot(groupCtx, model.Gold)
		gold = price
		return err
	})
	group.Go(func() error {
		price, err := that.fetchSpot(groupCtx, model.Silver)
		silver = price
		return err
	})
	group.Go(func() error {
		rates, err := that.fx.GetLatest(groupCtx, string(model.USD))
		if err != nil {
			log.Warn("FX rate unavailable, using fallback", "error", err, "fallback", conversion.FallbackUSDToEGP)
			return nil
		}

		rate, ok := rates.Rate(string(model.EGP))
		if !ok {
			log.Warn("FX table has no EGP rate, using fallback", "fallback", conversion.FallbackUSDToEGP)
			return nil
		}

		fxRate, fxSource = rate, model.FXLive
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	ounceUSD := float64(gold.Price)

	return &model.Report{
		CycleID: cycleID,
		Source:  goldapi.Source,
		Gold: model.SpotQuote{
			Metal:             model.Gold,
			PricePerTroyOunce: ounceUSD,
			AsOf:              gold.UpdatedAt,
			AsOfTime:          parseAsOf(gold.UpdatedAt),
		},
		Silver: model.SpotQuote{
			Metal:             model.Silver,
			PricePerTroyOunce: float64(silver.Price),
			AsOf:              silver.UpdatedAt,
			AsOfTime:          parseAsOf(silver.UpdatedAt),
		},
		Prices:    conversion.Compute(conversion.Inputs{OunceUSD: ounceUSD, PegRate: conversion.USDToAED, FXRate: fxRate}),
		FXSource:  fxSource,
		FetchedAt: that.now(),
	}, nil
}

func (that *SecondaryPipeline) fetchSpot(ctx context.Context, metal model.Metal) (*goldapi.Price, error) {
	price, err := that.spot.GetPrice(ctx, string(metal))
	if err != nil {
		return nil, fmt.Errorf("fetch %s spot price: %w", metal, err)
	}

	if !positive(float64(price.Price)) {
		return nil, fmt.Errorf("%s spot price %v: %w", metal, float64(price.Price), ErrMalformedPayload)
	}

	return price, nil
}

package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"bullion/internal/conversion"
	"bullion/internal/interaction/goldprice"
	"bullion/internal/model"
)

type RatesInteraction interface {
	GetRates(ctx context.Context, currency string) (*goldprice.Rates, error)
}

// PrimaryPipeline reads the USD and EGP gold tables of one provider.
// The USD table is mandatory, the EGP table only adds EGP prices.
// The USD to EGP rate is implied by the two tables rather than fetched.
type PrimaryPipeline struct {
	logger      *slog.Logger
	interaction RatesInteraction
	now         func() time.Time
}

func NewPrimaryPipeline(logger *slog.Logger, interaction RatesInteraction) *PrimaryPipeline {
	return &PrimaryPipeline{logger: logger.With("component", "primary_pipeline"), interaction: interaction, now: time.Now}
}

func (that *PrimaryPipeline) Region() model.Region {
	return model.RegionPrimary
}

func (that *PrimaryPipeline) Run(ctx context.Context, cycleID uuid.UUID) (*model.Report, error) {
	log := that.logger.With("method", "Run", "cycle_id", cycleID)

	var usd, egp *goldprice.Rates

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		rates, err := that.interaction.GetRates(groupCtx, string(model.USD))
		if err != nil {
			return fmt.Errorf("fetch USD table: %w", err)
		}
		usd = rates
		return nil
	})
	group.Go(func() error {
		rates, err := that.interaction.GetRates(groupCtx, string(model.EGP))
		if err != nil {
			log.Warn("EGP table unavailable, skipping EGP prices", "error", err)
			return nil
		}
		egp = rates
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	item, ok := usd.First()
	if !ok {
		return nil, fmt.Errorf("USD table has no items: %w", ErrMalformedPayload)
	}
	if !positive(item.XauPrice) {
		return nil, fmt.Errorf("USD table gold price %v: %w", item.XauPrice, ErrMalformedPayload)
	}

	in := conversion.Inputs{OunceUSD: item.XauPrice, PegRate: conversion.USDToAED}
	fxSource := model.FXNone

	if egpItem, ok := egp.First(); ok && positive(egpItem.XauPrice) {
		in.FXRate = conversion.ImpliedRate(egpItem.XauPrice, item.XauPrice)
		in.OunceFX = egpItem.XauPrice
		fxSource = model.FXDerived
	} else if egp != nil {
		log.Warn("EGP table has no usable gold price, skipping EGP prices")
	}

	asOfTime := parseAsOf(usd.Date)

	return &model.Report{
		CycleID: cycleID,
		Source:  goldprice.Source,
		Gold: model.SpotQuote{
			Metal:             model.Gold,
			PricePerTroyOunce: item.XauPrice,
			AsOf:              usd.Date,
			AsOfTime:          asOfTime,
			PriorClose:        ptr(item.XauClose),
			ChangeAbsolute:    ptr(item.ChgXau),
			ChangePercent:     ptr(item.PcXau),
		},
		Silver: model.SpotQuote{
			Metal:             model.Silver,
			PricePerTroyOunce: item.XagPrice,
			AsOf:              usd.Date,
			AsOfTime:          asOfTime,
			PriorClose:        ptr(item.XagClose),
			ChangeAbsolute:    ptr(item.ChgXag),
			ChangePercent:     ptr(item.PcXag),
		},
		Prices:    conversion.Compute(in),
		FXSource:  fxSource,
		FetchedAt: that.now(),
	}, nil
}

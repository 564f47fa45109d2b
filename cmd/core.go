package cmd

import (
	"net/http"

	"bullion/internal/board"
	"bullion/internal/interaction/fxrates"
	"bullion/internal/interaction/goldapi"
	"bullion/internal/interaction/goldprice"
	"bullion/internal/model"
	"bullion/internal/render"
	"bullion/internal/usecases"
	"bullion/locales"
)

// core is what every command needs: the board, the refresh cycle and the renderer.
type core struct {
	board    *board.Board
	cycle    *usecases.CycleUseCase
	renderer *render.Renderer
}

func newCore() *core {
	renderer := render.New(logger, locales.MustGetBundle("."))

	// Initialize HTTP clients
	providersClient := &http.Client{Timeout: cnf.Providers.Timeout}

	// Initialize interactions
	goldpriceInteractor := goldprice.NewInteraction(logger, providersClient, cnf.Providers.Primary)
	goldapiInteractor := goldapi.NewInteraction(logger, providersClient, cnf.Providers.Secondary)
	fxInteractor := fxrates.NewInteraction(logger, providersClient, cnf.Providers.FX)

	// Initialize usecases
	priceBoard := board.New(
		board.Region{ID: model.RegionPrimary, Title: goldprice.Source},
		board.Region{ID: model.RegionSecondary, Title: goldapi.Source},
	)
	cycleUC := usecases.NewCycleUseCase(logger, priceBoard,
		usecases.NewPrimaryPipeline(logger, goldpriceInteractor),
		usecases.NewSecondaryPipeline(logger, goldapiInteractor, fxInteractor),
	)

	return &core{board: priceBoard, cycle: cycleUC, renderer: renderer}
}

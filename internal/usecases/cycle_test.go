package usecases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bullion/internal/board"
	"bullion/internal/interaction/fxrates"
	"bullion/internal/interaction/goldapi"
	"bullion/internal/interaction/goldprice"
	"bullion/internal/model"
	"bullion/internal/usecases"
	usecasesMock "bullion/mocks/usecases"
	"bullion/testing/suite"
)

func newBoard() *board.Board {
	return board.New(
		board.Region{ID: model.RegionPrimary, Title: "Primary"},
		board.Region{ID: model.RegionSecondary, Title: "Secondary"},
	)
}

func pipelineMock(t *testing.T, region model.Region) *usecasesMock.MockPipeline {
	p := usecasesMock.NewMockPipeline(t)
	p.EXPECT().Region().Return(region)
	return p
}

func Test_RunCycle(t *testing.T) {
	ctx, st := suite.New(t)

	t.Run("should publish both regions and clear busy", func(t *testing.T) {
		b := newBoard()

		primary := pipelineMock(t, model.RegionPrimary)
		primary.EXPECT().Run(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, cycleID uuid.UUID) (*model.Report, error) {
			// Then: The board is busy while the pipelines run
			require.True(t, b.Busy())
			return &model.Report{CycleID: cycleID, Source: goldprice.Source}, nil
		})

		secondary := pipelineMock(t, model.RegionSecondary)
		secondary.EXPECT().Run(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, cycleID uuid.UUID) (*model.Report, error) {
			return &model.Report{CycleID: cycleID, Source: goldapi.Source}, nil
		})

		// When: One cycle runs
		ran := usecases.NewCycleUseCase(st.Logger, b, primary, secondary).RunCycle(ctx)
		require.True(t, ran)

		// Then: Both regions show their reports sharing one cycle id
		snapshot := b.Snapshot()
		require.False(t, snapshot.Busy)

		first, ok := snapshot.Region(model.RegionPrimary)
		require.True(t, ok)
		require.Equal(t, board.StatusOK, first.Status)

		second, ok := snapshot.Region(model.RegionSecondary)
		require.True(t, ok)
		require.Equal(t, board.StatusOK, second.Status)
		require.Equal(t, goldapi.Source, second.Report.Source)
		require.Equal(t, first.Report.CycleID, second.Report.CycleID)
	})

	t.Run("should paint errors and clear busy when both pipelines fail", func(t *testing.T) {
		b := newBoard()

		primary := pipelineMock(t, model.RegionPrimary)
		primary.EXPECT().Run(mock.Anything, mock.Anything).Return(nil, errors.New("primary down"))

		secondary := pipelineMock(t, model.RegionSecondary)
		secondary.EXPECT().Run(mock.Anything, mock.Anything).Return(nil, errors.New("secondary down"))

		require.True(t, usecases.NewCycleUseCase(st.Logger, b, primary, secondary).RunCycle(ctx))

		snapshot := b.Snapshot()
		require.False(t, snapshot.Busy)
		for _, region := range snapshot.Regions {
			require.Equal(t, board.StatusError, region.Status)
			require.Nil(t, region.Report)
			require.NotEmpty(t, region.Error)
		}
	})

	t.Run("should contain a panicking pipeline to its own region", func(t *testing.T) {
		b := newBoard()

		primary := pipelineMock(t, model.RegionPrimary)
		primary.EXPECT().Run(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, uuid.UUID) (*model.Report, error) {
			panic("boom")
		})

		secondary := pipelineMock(t, model.RegionSecondary)
		secondary.EXPECT().Run(mock.Anything, mock.Anything).Return(&model.Report{Source: goldapi.Source}, nil)

		require.True(t, usecases.NewCycleUseCase(st.Logger, b, primary, secondary).RunCycle(ctx))

		snapshot := b.Snapshot()
		require.False(t, snapshot.Busy)

		first, _ := snapshot.Region(model.RegionPrimary)
		require.Equal(t, board.StatusError, first.Status)
		require.Contains(t, first.Error, usecases.ErrPipelinePanic.Error())

		second, _ := snapshot.Region(model.RegionSecondary)
		require.Equal(t, board.StatusOK, second.Status)
	})

	t.Run("should survive a board listener that panics", func(t *testing.T) {
		b := newBoard()
		b.OnChange(func(board.Snapshot) {
			panic("listener failed")
		})

		primary := pipelineMock(t, model.RegionPrimary)
		primary.EXPECT().Run(mock.Anything, mock.Anything).Return(&model.Report{Source: goldprice.Source}, nil)

		secondary := pipelineMock(t, model.RegionSecondary)
		secondary.EXPECT().Run(mock.Anything, mock.Anything).Return(nil, errors.New("secondary down"))

		// When: Every board update panics in a listener
		require.True(t, usecases.NewCycleUseCase(st.Logger, b, primary, secondary).RunCycle(ctx))

		// Then: The board still holds the outcome and busy is cleared
		snapshot := b.Snapshot()
		require.False(t, snapshot.Busy)

		first, _ := snapshot.Region(model.RegionPrimary)
		require.Equal(t, board.StatusOK, first.Status)

		second, _ := snapshot.Region(model.RegionSecondary)
		require.Equal(t, board.StatusError, second.Status)
	})

	t.Run("should skip a cycle requested while one is in flight", func(t *testing.T) {
		b := newBoard()
		started := make(chan struct{})
		release := make(chan struct{})

		primary := pipelineMock(t, model.RegionPrimary)
		primary.EXPECT().Run(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, uuid.UUID) (*model.Report, error) {
			close(started)
			<-release
			return &model.Report{}, nil
		}).Once()

		cycle := usecases.NewCycleUseCase(st.Logger, b, primary)

		done := make(chan bool)
		go func() { done <- cycle.RunCycle(ctx) }()

		<-started
		require.True(t, cycle.Busy())

		// When: A second cycle is requested
		require.False(t, cycle.RunCycle(ctx))

		close(release)
		select {
		case ran := <-done:
			require.True(t, ran)
		case <-time.After(5 * time.Second):
			t.Fatal("cycle did not finish")
		}

		require.False(t, cycle.Busy())
		require.False(t, b.Busy())
	})

	t.Run("should archive successful reports only", func(t *testing.T) {
		b := newBoard()
		report := &model.Report{Source: goldprice.Source}

		primary := pipelineMock(t, model.RegionPrimary)
		primary.EXPECT().Run(mock.Anything, mock.Anything).Return(report, nil)

		secondary := pipelineMock(t, model.RegionSecondary)
		secondary.EXPECT().Run(mock.Anything, mock.Anything).Return(nil, errors.New("secondary down"))

		archive := usecasesMock.NewMockArchive(t)
		archive.EXPECT().SaveReport(mock.Anything, report).Return(errors.New("db down")).Once()

		require.True(t, usecases.NewCycleUseCase(st.Logger, b, primary, secondary).WithArchive(archive).RunCycle(ctx))

		// Then: An archive error does not change the board
		first, _ := b.Snapshot().Region(model.RegionPrimary)
		require.Equal(t, board.StatusOK, first.Status)
	})

	t.Run("should fail only the secondary region when its gold price fails", func(t *testing.T) {
		b := newBoard()

		rates := usecasesMock.NewMockRatesInteraction(t)
		rates.EXPECT().GetRates(mock.Anything, "USD").Return(usdTable(2000), nil)
		rates.EXPECT().GetRates(mock.Anything, "EGP").Return(egpTable(98000), nil)

		spot := usecasesMock.NewMockSpotInteraction(t)
		spot.EXPECT().GetPrice(mock.Anything, "XAU").Return(nil, errors.New("unavailable"))
		spot.EXPECT().GetPrice(mock.Anything, "XAG").Return(spotPrice("XAG", 25), nil).Maybe()

		fx := usecasesMock.NewMockFXInteraction(t)
		fx.EXPECT().GetLatest(mock.Anything, "USD").Return(&fxrates.Rates{Rates: map[string]float64{"EGP": 50}}, nil).Maybe()

		cycle := usecases.NewCycleUseCase(st.Logger, b,
			usecases.NewPrimaryPipeline(st.Logger, rates),
			usecases.NewSecondaryPipeline(st.Logger, spot, fx),
		)
		require.True(t, cycle.RunCycle(ctx))

		first, _ := b.Snapshot().Region(model.RegionPrimary)
		require.Equal(t, board.StatusOK, first.Status)
		rate, ok := first.Report.Prices.Rate(model.USD, model.EGP)
		require.True(t, ok)
		require.Equal(t, 49.0, rate)

		second, _ := b.Snapshot().Region(model.RegionSecondary)
		require.Equal(t, board.StatusError, second.Status)
		require.Contains(t, second.Error, "unavailable")
	})
}

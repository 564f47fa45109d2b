package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"bullion/internal/model"
)

type Board interface {
	SetBusy(busy bool)
	Publish(region model.Region, report *model.Report)
	Fail(region model.Region, err error)
}

type Archive interface {
	SaveReport(ctx context.Context, report *model.Report) error
}

// CycleUseCase runs all pipelines concurrently and paints their outcome on the board.
// Cycles are single-flight: a cycle requested while another runs is skipped.
type CycleUseCase struct {
	logger    *slog.Logger
	board     Board
	pipelines []Pipeline
	archive   Archive
	inFlight  *atomic.Bool
}

func NewCycleUseCase(logger *slog.Logger, board Board, pipelines ...Pipeline) *CycleUseCase {
	return &CycleUseCase{logger: logger.With("component", "cycle"), board: board, pipelines: pipelines, inFlight: atomic.NewBool(false)}
}

// WithArchive stores every successful report in the archive.
func (that *CycleUseCase) WithArchive(archive Archive) *CycleUseCase {
	that.archive = archive
	return that
}

// Busy reports whether a cycle is running.
func (that *CycleUseCase) Busy() bool {
	return that.inFlight.Load()
}

// RunCycle runs one refresh cycle and reports whether it ran.
// Pipeline failures never escape; they are painted on the pipeline's region.
func (that *CycleUseCase) RunCycle(ctx context.Context) bool {
	log := that.logger.With("method", "RunCycle")

	if that.inFlight.Swap(true) {
		log.Debug("cycle already in flight, skipping")
		return false
	}
	defer that.inFlight.Store(false)

	that.paint(log, func() { that.board.SetBusy(true) })
	defer that.paint(log, func() { that.board.SetBusy(false) })

	cycleID := uuid.New()
	log.Debug("cycle started", "cycle_id", cycleID)

	var group errgroup.Group
	for _, pipeline := range that.pipelines {
		group.Go(func() error {
			that.runPipeline(ctx, cycleID, pipeline)
			return nil
		})
	}

	// Wait for both pipelines to settle
	_ = group.Wait()

	log.Debug("cycle complete", "cycle_id", cycleID)
	return true
}

func (that *CycleUseCase) runPipeline(ctx context.Context, cycleID uuid.UUID, pipeline Pipeline) {
	log := that.logger.With("method", "runPipeline", "cycle_id", cycleID, "pipeline", pipeline.Region())

	report, err := safeRun(ctx, cycleID, pipeline)
	if err != nil {
		log.Error("pipeline failed", "error", err)
		that.paint(log, func() { that.board.Fail(pipeline.Region(), err) })
		return
	}

	that.paint(log, func() { that.board.Publish(pipeline.Region(), report) })

	if that.archive == nil {
		return
	}

	if err = that.archive.SaveReport(ctx, report); err != nil {
		log.Error("failed to archive report", "error", err)
	}
}

// paint applies a board update. Board listeners run inside the update, so their panics stop here.
func (that *CycleUseCase) paint(log *slog.Logger, update func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("board update panicked", "panic", r)
		}
	}()

	update()
}

func safeRun(ctx context.Context, cycleID uuid.UUID, pipeline Pipeline) (report *model.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			report, err = nil, fmt.Errorf("%w: %v", ErrPipelinePanic, r)
		}
	}()

	return pipeline.Run(ctx, cycleID)
}

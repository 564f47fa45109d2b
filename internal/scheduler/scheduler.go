package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

type JobFunc func(ctx context.Context)

// Scheduler runs jobs until its context is done. A job never overlaps itself.
type Scheduler struct {
	logger *slog.Logger
	s      *gocron.Scheduler
	ctx    context.Context
}

func New(ctx context.Context, logger *slog.Logger, loc *time.Location) *Scheduler {
	return &Scheduler{logger: logger.With("component", "scheduler"), s: gocron.NewScheduler(loc), ctx: ctx}
}

// Every runs fn now and then on every interval.
func (sch *Scheduler) Every(name string, interval time.Duration, fn JobFunc) error {
	if _, err := sch.s.Every(interval).SingletonMode().Do(sch.run, name, fn); err != nil {
		return fmt.Errorf("schedule %s every %s: %w", name, interval, err)
	}

	return nil
}

// Add runs fn on a cron spec.
func (sch *Scheduler) Add(name string, spec string, fn JobFunc) error {
	if _, err := sch.s.Cron(spec).SingletonMode().Do(sch.run, name, fn); err != nil {
		return fmt.Errorf("schedule %s at %q: %w", name, spec, err)
	}

	return nil
}

// Start blocks until the context is done, then stops the scheduler.
func (sch *Scheduler) Start() {
	sch.logger.With("method", "Start").Info("starting scheduler", "jobs", len(sch.s.Jobs()))
	sch.s.StartAsync()

	<-sch.ctx.Done()
	sch.s.Stop()
}

func (sch *Scheduler) run(name string, fn JobFunc) {
	select {
	case <-sch.ctx.Done():
		return
	default:
	}

	sch.logger.With("method", "run").Debug("running job", "job", name)
	fn(sch.ctx)
}

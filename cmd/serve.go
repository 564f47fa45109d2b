package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bullion/internal/interaction/telegram"
	"bullion/internal/interaction/web"
	"bullion/internal/repository/snapshots"
	"bullion/internal/scheduler"
	"bullion/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Refresh prices on a ticker and serve the board",
	Run: func(cmd *cobra.Command, _ []string) {
		log := logger.With("package", "cmd")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c := newCore()
		group, groupCtx := errgroup.WithContext(ctx)

		// Initialize scheduler
		sched := scheduler.New(groupCtx, logger, time.UTC)

		webInteractor := web.NewInteraction(logger, cnf.HTTP.Addr, cnf.Ticker.Interval, c.renderer, c.board, c.cycle)

		if cnf.Archive.Enabled {
			// Initialize database connection
			postgresConnection := storage.MustNewPostgresConnection(logger, cnf.Archive.Database.ConnString(), cnf.Logger.ParsedGORMLevel)
			defer postgresConnection.MustClose()

			postgresConnection.MustMigration()

			snapshotsRepository := snapshots.NewRepository(postgresConnection.DB)
			c.cycle.WithArchive(snapshotsRepository)
			webInteractor.WithArchive(snapshotsRepository)

			cobra.CheckErr(sched.Add("prune", cnf.Archive.PruneCron, func(ctx context.Context) {
				deleted, err := snapshotsRepository.Prune(ctx, time.Now().Add(-cnf.Archive.Retention))
				if err != nil {
					log.Error("failed to prune snapshots", "error", err)
					return
				}
				log.Info("pruned snapshots", "deleted", deleted)
			}))
		}

		cobra.CheckErr(sched.Every("refresh", cnf.Ticker.Interval, func(ctx context.Context) {
			c.cycle.RunCycle(ctx)
		}))

		group.Go(func() error {
			sched.Start()
			return nil
		})
		group.Go(func() error {
			return webInteractor.Start(groupCtx)
		})

		if cnf.Telegram.Enabled() {
			telegramClient := &http.Client{Timeout: time.Minute}
			telegramInteractor := telegram.NewInteraction(logger, cnf.Telegram.Token, telegramClient, c.renderer, c.board, c.cycle)

			group.Go(func() error {
				log.Info("starting telegram bot")
				telegramInteractor.Start(groupCtx)
				return nil
			})
		}

		if err := group.Wait(); err != nil {
			log.Error("server stopped", "error", err)
			cobra.CheckErr(err)
		}

		log.Info("server stopped")
	},
}

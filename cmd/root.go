package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bullion/internal/config"
)

const defaultConfigPath = "./config.yml"

var (
	rootCmd = &cobra.Command{
		Use:   "bullion",
		Short: "Gold and silver price board in USD, AED and EGP",
	}

	cnf    *config.Config
	logger *slog.Logger
)

func Execute() {
	initConfig()
	initLogger()

	rootCmd.AddCommand(serveCmd, onceCmd)
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() {
	path := os.Getenv("BULLION_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}

	cnf = config.MustLoad(path)
}

func initLogger() {
	opts := &slog.HandlerOptions{Level: cnf.Logger.ParsedSlogLevel}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

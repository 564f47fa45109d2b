package config_test

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bullion/internal/config"
)

func Test_Load(t *testing.T) {
	t.Run("should read values and fill defaults", func(t *testing.T) {
		cnf, err := config.Load(filepath.Join("testdata", "config.yml"))
		require.NoError(t, err)

		require.Equal(t, "http://primary.test", cnf.Providers.Primary)
		require.Equal(t, "http://secondary.test", cnf.Providers.Secondary)
		require.Equal(t, "http://fx.test/v4", cnf.Providers.FX)
		require.Equal(t, time.Minute, cnf.Providers.Timeout)
		require.Equal(t, 5*time.Second, cnf.Ticker.Interval)
		require.Equal(t, ":8080", cnf.HTTP.Addr)
		require.False(t, cnf.Telegram.Enabled())
		require.False(t, cnf.Archive.Enabled)
		require.Equal(t, 720*time.Hour, cnf.Archive.Retention)
		require.Equal(t, slog.LevelDebug, cnf.Logger.ParsedSlogLevel)
		require.Equal(t, slog.LevelDebug, cnf.Logger.ParsedGORMLevel)
	})

	t.Run("should reject a negative interval", func(t *testing.T) {
		_, err := config.Load(filepath.Join("testdata", "negative_interval.yml"))
		require.Error(t, err)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		require.Panics(t, func() { config.MustLoad(filepath.Join("testdata", "missing.yml")) })
	})
}

func Test_DatabaseConnString(t *testing.T) {
	db := config.Database{Host: "db", Port: 5433, User: "u", Password: "p", Name: "prices", SSLMode: "disable"}

	require.Equal(t, "host=db port=5433 user=u password=p dbname=prices sslmode=disable", db.ConnString())
}

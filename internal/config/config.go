package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultLanguageCode = "en"

type Config struct {
	Providers Providers `yaml:"providers"`
	Ticker    Ticker    `yaml:"ticker"`
	HTTP      HTTP      `yaml:"http"`
	Telegram  Telegram  `yaml:"telegram"`
	Archive   Archive   `yaml:"archive"`
	Logger    Logger    `yaml:"logger"`
}

// Providers holds the base URLs of the upstream market-data APIs.
type Providers struct {
	Primary   string        `env:"BULLION_PRIMARY_URL" env-default:"https://data-asg.goldprice.org" yaml:"primary"`
	Secondary string        `env:"BULLION_SECONDARY_URL" env-default:"https://api.gold-api.com" yaml:"secondary"`
	FX        string        `env:"BULLION_FX_URL" env-default:"https://api.exchangerate-api.com/v4" yaml:"fx"`
	Timeout   time.Duration `env-default:"1m" yaml:"timeout"`
}

type Ticker struct {
	Interval time.Duration `env:"BULLION_INTERVAL" env-default:"3s" yaml:"interval"`
}

type HTTP struct {
	Addr string `env:"BULLION_HTTP_ADDR" env-default:":8080" yaml:"addr"`
}

type Telegram struct {
	Token string `env:"BULLION_TELEGRAM_TOKEN" env-default:"" yaml:"token"`
}

// Enabled reports whether the Telegram bot should be started.
func (t *Telegram) Enabled() bool {
	return t.Token != ""
}

type Archive struct {
	Enabled   bool          `env-default:"false" yaml:"enabled"`
	Retention time.Duration `env-default:"720h" yaml:"retention"`
	PruneCron string        `env-default:"0 3 * * *" yaml:"prune-cron"`
	Database  Database      `yaml:"database"`
}

type Database struct {
	Host     string `env-default:"localhost" yaml:"host"`
	Port     int    `env-default:"5432" yaml:"port"`
	User     string `env-default:"postgres" yaml:"user"`
	Password string `env:"BULLION_DB_PASSWORD" env-default:"postgres" yaml:"password"`
	Name     string `env-default:"postgres" yaml:"name"`
	SSLMode  string `env-default:"disable" yaml:"ssl-mode"`
}

func (d *Database) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type Logger struct {
	Level           string     `env-default:"info" yaml:"level"`
	ParsedSlogLevel slog.Level `yaml:"-"`
	GORMLevel       string     `env-default:"info" yaml:"gorm_level"`
	ParsedGORMLevel slog.Level `yaml:"-"`
}

// MustLoad loads config from a file.
func MustLoad(configPath string) *Config {
	cnf, err := Load(configPath)
	if err != nil {
		panic(err)
	}

	return cnf
}

// Load reads the config file, applies env overrides and parses the log levels.
func Load(configPath string) (*Config, error) {
	cnf := &Config{}

	if err := cleanenv.ReadConfig(configPath, cnf); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if cnf.Ticker.Interval <= 0 {
		return nil, fmt.Errorf("ticker interval must be positive, got %s", cnf.Ticker.Interval)
	}

	cnf.Logger.ParsedGORMLevel = parseLevel(cnf.Logger.GORMLevel)
	if cnf.Logger.GORMLevel == "silent" {
		cnf.Logger.ParsedGORMLevel = slog.LevelDebug
	}
	cnf.Logger.ParsedSlogLevel = parseLevel(cnf.Logger.Level)

	return cnf, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

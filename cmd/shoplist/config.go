package main

import (
	"log/slog"

	"github.com/dmitrymomot/shoplist/pkg/clientip"
	"github.com/dmitrymomot/shoplist/pkg/config"
	"github.com/dmitrymomot/shoplist/pkg/environment"
	"github.com/dmitrymomot/shoplist/pkg/httpserver"
	"github.com/dmitrymomot/shoplist/pkg/logger"
	"github.com/dmitrymomot/shoplist/pkg/requestid"
	"github.com/dmitrymomot/shoplist/pkg/shoplist"
	"github.com/dmitrymomot/shoplist/pkg/visitor"
)

// AppConfig is the process configuration, read from the environment and an
// optional .env file.
type AppConfig struct {
	Env            string `env:"APP_ENV" envDefault:"development"`
	ServiceName    string `env:"SERVICE_NAME" envDefault:"shoplist"`
	LogLevel       string `env:"LOG_LEVEL"`
	Title          string `env:"APP_TITLE" envDefault:"Lista de compras"`
	MaxLists       int    `env:"MAX_LISTS" envDefault:"1024"`
	DatastarScript string `env:"DATASTAR_SCRIPT" envDefault:"https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"`
	CookieSecure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	TrustProxy     bool   `env:"TRUST_PROXY" envDefault:"false"`

	HTTP httpserver.Config
}

func loadConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := config.Load(&cfg); err != nil {
		return AppConfig{}, err
	}
	if cfg.MaxLists <= 0 {
		cfg.MaxLists = shoplist.DefaultMaxLists
	}
	return cfg, nil
}

func newLogger(cfg AppConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
			visitor.LoggerExtractor(),
		),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	return logger.New(opts...)
}

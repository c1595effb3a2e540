package main

import (
	"github.com/lukasz-zimnoch/chartist"
	"github.com/sherifabdlnaby/configuro"
)

// Config values can be set using either environment variables with
// `CONFIG_` prefix or a config.yml file placed in the working directory.
// See https://github.com/sherifabdlnaby/configuro.
type Config struct {
	Logging  Logging
	Trading  chartist.TradingConfig
	TA       chartist.TAParams
	Backtest chartist.BacktestParams
	Binance  Binance
	Database Database
	PubSub   PubSub
}

type Logging struct {
	Level  string
	Format string
}

type Binance struct {
	ApiKey    string
	SecretKey string
	Pairs     []string
}

type Database struct {
	Address      string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MigrationDir string
}

type PubSub struct {
	ProjectID      string
	SignalsTopicID string
}

func readConfig() (*Config, error) {
	loader, err := configuro.NewConfig()
	if err != nil {
		return nil, err
	}

	// Default config values.
	config := &Config{
		Logging: Logging{
			Level: "info",
		},
		Trading:  chartist.DefaultTradingConfig(),
		TA:       chartist.DefaultTAParams(),
		Backtest: chartist.DefaultBacktestParams(),
		Database: Database{
			Address:  "localhost:5432",
			User:     "postgres",
			Password: "postgres",
			Name:     "postgres",
			SSLMode:  "disable",
		},
		PubSub: PubSub{
			SignalsTopicID: "signals",
		},
	}

	err = loader.Load(config)
	if err != nil {
		return nil, err
	}

	err = loader.Validate(config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lukasz-zimnoch/chartist"
	"github.com/lukasz-zimnoch/chartist/binance"
	"github.com/lukasz-zimnoch/chartist/daemon"
	"github.com/lukasz-zimnoch/chartist/inmem"
	"github.com/lukasz-zimnoch/chartist/logrus"
	"github.com/lukasz-zimnoch/chartist/postgres"
	"github.com/lukasz-zimnoch/chartist/pubsub"
	"github.com/lukasz-zimnoch/chartist/strategy"
	"github.com/lukasz-zimnoch/chartist/uuid"
)

func main() {
	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
		<-signals
		cancelCtx()
	}()

	config, err := readConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not read config: [%v]", err)
		os.Exit(1)
	}

	logger := logrus.ConfigureStandardLogger(
		config.Logging.Format,
		config.Logging.Level,
	)

	if err := config.Trading.Validate(); err != nil {
		logger.Fatalf("invalid trading config: [%v]", err)
	}

	if err := config.TA.Validate(); err != nil {
		logger.Fatalf("invalid technical analysis params: [%v]", err)
	}

	postgresClient, err := connectPostgres(ctx, logger, &config.Database)
	if err != nil {
		logger.Fatalf("could not connect postgres: [%v]", err)
	}

	binanceExchangeService, err := binance.NewExchangeService(
		ctx,
		config.Binance.ApiKey,
		config.Binance.SecretKey,
	)
	if err != nil {
		logger.Fatalf("could not create binance handle: [%v]", err)
	}

	pubsubClient, err := pubsub.NewClient(
		ctx,
		config.PubSub.ProjectID,
		config.PubSub.SignalsTopicID,
	)
	if err != nil {
		logger.Fatalf("could not create pubsub client: [%v]", err)
	}

	analysisController, err := daemon.RunAnalysisController(
		ctx,
		logger,
		&uuid.IDService{},
		binanceExchangeService,
		func(windowSize int) chartist.BarRepository {
			return inmem.NewBarRepository(windowSize)
		},
		func(
			workerLogger chartist.Logger,
			pair chartist.Pair,
		) chartist.SignalGenerator {
			return strategy.NewEngine(workerLogger, pair, &config.TA)
		},
		postgres.NewBarRepository(postgresClient),
		pubsub.NewEventService(pubsubClient, logger),
		&config.Trading,
	)
	if err != nil {
		logger.Fatalf("could not run analysis controller: [%v]", err)
	}

	for _, pairSymbol := range config.Binance.Pairs {
		pair, err := chartist.ParsePair(pairSymbol)
		if err != nil {
			logger.Errorf("could not parse configured pair: [%v]", err)
			continue
		}

		analysisController.ActivateWorker(ctx, pair)
	}

	<-ctx.Done()
}

func connectPostgres(
	ctx context.Context,
	logger chartist.Logger,
	config *Database,
) (*postgres.Client, error) {
	if err := postgres.RunMigration(
		logger,
		(*postgres.Config)(config),
	); err != nil {
		return nil, fmt.Errorf(
			"could not run postgres migration: [%v]",
			err,
		)
	}

	client, err := postgres.NewClient(
		ctx,
		(*postgres.Config)(config),
	)
	if err != nil {
		return nil, fmt.Errorf(
			"could not create postgres client: [%v]",
			err,
		)
	}

	return client, nil
}

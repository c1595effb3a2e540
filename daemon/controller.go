package daemon

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/lukasz-zimnoch/chartist"
)

const workerRestartBackoff = 10 * time.Second

type BarRepositoryFactoryFn func(windowSize int) chartist.BarRepository

type SignalGeneratorFactoryFn func(
	logger chartist.Logger,
	pair chartist.Pair,
) chartist.SignalGenerator

type AnalysisController struct {
	logger                 chartist.Logger
	idService              chartist.IDService
	exchange               chartist.ExchangeService
	barRepositoryFactory   BarRepositoryFactoryFn
	signalGeneratorFactory SignalGeneratorFactoryFn
	archiver               BarArchiver
	eventService           chartist.EventService
	tradingConfig          *chartist.TradingConfig

	exchangePairs map[string]bool

	workersMutex sync.Mutex
	workers      map[chartist.Pair]bool
}

func RunAnalysisController(
	ctx context.Context,
	logger chartist.Logger,
	idService chartist.IDService,
	exchange chartist.ExchangeService,
	barRepositoryFactory BarRepositoryFactoryFn,
	signalGeneratorFactory SignalGeneratorFactoryFn,
	archiver BarArchiver,
	eventService chartist.EventService,
	tradingConfig *chartist.TradingConfig,
) (*AnalysisController, error) {
	pairs, err := exchange.Pairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get exchange pairs: [%v]", err)
	}

	exchangePairs := make(map[string]bool)
	for _, pair := range pairs {
		exchangePairs[pair] = true
	}

	return &AnalysisController{
		logger:                 logger,
		idService:              idService,
		exchange:               exchange,
		barRepositoryFactory:   barRepositoryFactory,
		signalGeneratorFactory: signalGeneratorFactory,
		archiver:               archiver,
		eventService:           eventService,
		tradingConfig:          tradingConfig,
		exchangePairs:          exchangePairs,
		workers:                make(map[chartist.Pair]bool),
	}, nil
}

func (ac *AnalysisController) ActivateWorker(
	ctx context.Context,
	pair chartist.Pair,
) {
	ac.workersMutex.Lock()
	defer ac.workersMutex.Unlock()

	workerLogger := ac.logger.WithFields(
		map[string]interface{}{
			"exchange": ac.exchange.ExchangeName(),
			"pair":     pair.String(),
			"interval": ac.tradingConfig.Timeframe,
		},
	)

	if !ac.exchangePairs[pair.String()] {
		workerLogger.Errorf("pair is not tradeable on the exchange")
		return
	}

	if _, exists := ac.workers[pair]; exists {
		workerLogger.Warningf("worker is already active")
		return
	}

	workerLogger.Infof("activating worker")

	ac.workers[pair] = true

	go func() {
		defer func() {
			ac.workersMutex.Lock()
			defer ac.workersMutex.Unlock()

			workerLogger.Infof("deactivating worker")

			delete(ac.workers, pair)
		}()

		for {
			if ctx.Err() != nil {
				return
			}

			ac.runWorker(ctx, workerLogger, pair)

			time.Sleep(workerRestartBackoff)
		}
	}()
}

func (ac *AnalysisController) ActiveWorkers() int {
	ac.workersMutex.Lock()
	defer ac.workersMutex.Unlock()

	return len(ac.workers)
}

func (ac *AnalysisController) runWorker(
	ctx context.Context,
	workerLogger chartist.Logger,
	pair chartist.Pair,
) {
	workerLogger.Infof("running worker")
	defer workerLogger.Infof("terminating worker")

	workerCtx, cancelWorkerCtx := context.WithCancel(ctx)
	defer cancelWorkerCtx()

	interval, err := intervalDuration(ac.tradingConfig.Timeframe)
	if err != nil {
		workerLogger.Errorf("could not parse timeframe: [%v]", err)
		return
	}

	now := time.Now()

	filter := &chartist.BarFilter{
		Pair:      pair.String(),
		Interval:  ac.tradingConfig.Timeframe,
		StartTime: now.Add(-time.Duration(ac.tradingConfig.BarLimit) * interval),
		EndTime:   now,
	}

	workerLogger.Infof(
		"creating bar repository with window size [%v]",
		ac.tradingConfig.BarLimit,
	)

	barRepository := ac.barRepositoryFactory(ac.tradingConfig.BarLimit)

	workerLogger.Infof("running bar monitor")

	barMonitor := RunBarMonitor(
		workerCtx,
		workerLogger,
		ac.exchange,
		filter,
		barRepository,
		ac.archiver,
	)

	workerLogger.Infof("running analysis worker")

	analysisWorker := RunAnalysisWorker(
		workerCtx,
		workerLogger,
		ac.idService,
		pair,
		ac.exchange.ExchangeName(),
		barRepository,
		ac.signalGeneratorFactory(workerLogger, pair),
		ac.eventService,
		ac.tradingConfig,
	)

	for {
		select {
		case err := <-barMonitor.ErrChan():
			workerLogger.Errorf("bar monitor error: [%v]", err)
			return
		case err := <-analysisWorker.ErrChan():
			workerLogger.Errorf("analysis worker error: [%v]", err)
			return
		case <-workerCtx.Done():
			workerLogger.Infof("worker context is done")
			return
		}
	}
}

// intervalDuration resolves an exchange interval symbol like 1m, 4h or 1d
// into its wall-clock duration.
func intervalDuration(interval string) (time.Duration, error) {
	if len(interval) < 2 {
		return 0, fmt.Errorf("malformed interval: [%v]", interval)
	}

	count, err := strconv.Atoi(interval[:len(interval)-1])
	if err != nil {
		return 0, fmt.Errorf("malformed interval: [%v]", interval)
	}

	var unit time.Duration
	switch interval[len(interval)-1:] {
	case "m":
		unit = time.Minute
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	case "w":
		unit = 7 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("unknown interval unit: [%v]", interval)
	}

	return time.Duration(count) * unit, nil
}

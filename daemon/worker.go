package daemon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lukasz-zimnoch/chartist"
)

const (
	analysisTick    = 1 * time.Minute
	signalPauseTime = 5 * time.Minute
)

// AnalysisWorker periodically evaluates the signal engine over the
// current bar window of a single pair. Each pass works on its own series
// snapshot, so concurrent workers never share mutable state.
type AnalysisWorker struct {
	logger          chartist.Logger
	idService       chartist.IDService
	pair            chartist.Pair
	exchangeName    string
	repository      chartist.BarRepository
	signalGenerator chartist.SignalGenerator
	eventService    chartist.EventService
	tradingConfig   *chartist.TradingConfig

	lastSignalTime time.Time

	errChan chan error
}

func RunAnalysisWorker(
	ctx context.Context,
	logger chartist.Logger,
	idService chartist.IDService,
	pair chartist.Pair,
	exchangeName string,
	repository chartist.BarRepository,
	signalGenerator chartist.SignalGenerator,
	eventService chartist.EventService,
	tradingConfig *chartist.TradingConfig,
) *AnalysisWorker {
	worker := &AnalysisWorker{
		logger:          logger,
		idService:       idService,
		pair:            pair,
		exchangeName:    exchangeName,
		repository:      repository,
		signalGenerator: signalGenerator,
		eventService:    eventService,
		tradingConfig:   tradingConfig,
		errChan:         make(chan error, 1),
	}

	go worker.loop(ctx)

	return worker
}

func (aw *AnalysisWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(analysisTick)

	for {
		select {
		case <-ticker.C:
			if err := aw.runAnalysisPass(); err != nil {
				aw.errChan <- fmt.Errorf(
					"error during analysis pass: [%v]",
					err,
				)
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (aw *AnalysisWorker) runAnalysisPass() error {
	bars := aw.repository.Bars(aw.pair.String())

	series, signal, err := aw.signalGenerator.Evaluate(bars)
	if err != nil {
		// Both conditions clear up as more bars arrive.
		if errors.Is(err, chartist.ErrEmptySeries) ||
			errors.Is(err, chartist.ErrInsufficientHistory) {
			aw.logger.Debugf("skipping analysis pass: [%v]", err)
			return nil
		}

		return err
	}

	aw.logger.Debugf(
		"analysis pass evaluated [%v] columns over [%v] bars",
		len(series.ColumnNames()),
		series.Len(),
	)

	if signal.Action == chartist.HOLD {
		return nil
	}

	if time.Now().Before(aw.lastSignalTime.Add(signalPauseTime)) {
		aw.logger.Debugf(
			"muting signal [%v] emitted shortly after the previous one",
			signal,
		)
		return nil
	}

	lastClose, err := series.Last(chartist.ColumnClose)
	if err != nil {
		return err
	}

	targets, ok := chartist.ComputePriceTargets(
		signal,
		lastClose,
		aw.tradingConfig,
	)
	if !ok {
		return nil
	}

	analysisID := aw.idService.NewID()

	aw.logger.Infof(
		"analysis [%v] produced signal [%v] with targets [%v]",
		analysisID,
		signal,
		targets,
	)

	aw.eventService.Publish(chartist.NewSignalEvent(
		analysisID,
		aw.exchangeName,
		signal,
		targets,
	))

	aw.lastSignalTime = time.Now()

	return nil
}

func (aw *AnalysisWorker) ErrChan() <-chan error {
	return aw.errChan
}

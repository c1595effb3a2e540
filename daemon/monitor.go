// Package daemon runs the per-pair analysis workers: it keeps a sliding
// bar window current, periodically evaluates the signal engine over it
// and publishes actionable outcomes.
package daemon

import (
	"context"
	"fmt"
	"time"

	"github.com/lukasz-zimnoch/chartist"
)

const (
	barTickTimeout       = 120 * time.Second
	archiveQueueCapacity = 64
)

// BarArchiver persists fetched bars. Archiving is best effort: a failed
// write must not stall the live analysis window.
type BarArchiver interface {
	ArchiveBars(pair, interval string, bars ...*chartist.Bar) error
}

type BarMonitor struct {
	logger     chartist.Logger
	exchange   chartist.ExchangeService
	filter     *chartist.BarFilter
	repository chartist.BarRepository
	archiver   BarArchiver

	archiveChan chan []*chartist.Bar
	errChan     chan error
}

func RunBarMonitor(
	ctx context.Context,
	logger chartist.Logger,
	exchange chartist.ExchangeService,
	filter *chartist.BarFilter,
	repository chartist.BarRepository,
	archiver BarArchiver,
) *BarMonitor {
	monitor := &BarMonitor{
		logger:      logger,
		exchange:    exchange,
		filter:      filter,
		repository:  repository,
		archiver:    archiver,
		archiveChan: make(chan []*chartist.Bar, archiveQueueCapacity),
		errChan:     make(chan error, 1),
	}

	go monitor.archiveLoop(ctx)
	go monitor.loop(ctx)

	return monitor
}

func (bm *BarMonitor) loop(ctx context.Context) {
	bars, err := bm.exchange.Bars(ctx, bm.filter)
	if err != nil {
		bm.errChan <- fmt.Errorf("failed to get bars: [%v]", err)
		return
	}

	bm.logger.Debugf("fetched [%v] historical bars", len(bars))

	bm.repository.SaveBars(bm.filter.Pair, bars...)
	bm.archiveBars(bars...)

	tickTimeoutTimer := time.NewTimer(barTickTimeout)
	ticker, tickerErrorChannel := bm.exchange.BarsTicker(ctx, bm.filter)

	for {
		select {
		case tick := <-ticker:
			bm.logger.Debugf("received bar tick [%v]", tick)

			bm.repository.SaveBars(bm.filter.Pair, tick.Bar)
			bm.archiveBars(tick.Bar)

			if !tickTimeoutTimer.Stop() {
				<-tickTimeoutTimer.C
			}
			tickTimeoutTimer.Reset(barTickTimeout)
		case <-tickTimeoutTimer.C:
			bm.errChan <- fmt.Errorf("tick timeout expiration")
			return
		case err := <-tickerErrorChannel:
			bm.errChan <- fmt.Errorf("ticker error: [%v]", err)
			return
		case <-ctx.Done():
			return
		}
	}
}

// archiveBars enqueues bars for the archive loop without ever blocking
// the tick consumption. A full queue drops the batch; a missed write is
// recovered by the upsert of the next fetch covering the same interval.
func (bm *BarMonitor) archiveBars(bars ...*chartist.Bar) {
	select {
	case bm.archiveChan <- bars:
	default:
		bm.logger.Warningf(
			"dropping [%v] bars from the full archiving queue",
			len(bars),
		)
	}
}

func (bm *BarMonitor) archiveLoop(ctx context.Context) {
	for {
		select {
		case bars := <-bm.archiveChan:
			err := bm.archiver.ArchiveBars(
				bm.filter.Pair,
				bm.filter.Interval,
				bars...,
			)
			if err != nil {
				bm.logger.Warningf("could not archive bars: [%v]", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (bm *BarMonitor) ErrChan() <-chan error {
	return bm.errChan
}

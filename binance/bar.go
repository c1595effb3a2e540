package binance

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adshao/go-binance"
	"github.com/lukasz-zimnoch/chartist"
)

func (es *ExchangeService) Bars(
	ctx context.Context,
	filter *chartist.BarFilter,
) ([]*chartist.Bar, error) {
	requestCtx, cancelRequestCtx := context.WithTimeout(ctx, requestTimeout)
	defer cancelRequestCtx()

	klines, err := es.client.
		NewKlinesService().
		Symbol(filter.Pair).
		Interval(filter.Interval).
		StartTime(filter.StartTime.UnixNano() / 1e6).
		EndTime(filter.EndTime.UnixNano() / 1e6).
		Limit(1000).
		Do(requestCtx)
	if err != nil {
		return nil, err
	}

	bars := make([]*chartist.Bar, len(klines))
	for index := range bars {
		kline := klines[index]

		bar, err := parseKline(
			kline.OpenTime,
			kline.Open,
			kline.High,
			kline.Low,
			kline.Close,
			kline.Volume,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"could not parse kline for pair [%v]: [%v]",
				filter.Pair,
				err,
			)
		}

		bars[index] = bar
	}

	return bars, nil
}

func (es *ExchangeService) BarsTicker(
	ctx context.Context,
	filter *chartist.BarFilter,
) (<-chan *chartist.BarTick, <-chan error) {
	tickChannel := make(chan *chartist.BarTick)
	errorChannel := make(chan error)

	go func() {
		_, stopChannel, err := binance.WsKlineServe(
			filter.Pair,
			filter.Interval,
			func(event *binance.WsKlineEvent) {
				tick, err := parseKlineEvent(event)
				if err != nil {
					errorChannel <- err
					return
				}

				tickChannel <- tick
			},
			func(err error) {
				errorChannel <- err
			},
		)
		if err != nil {
			errorChannel <- err
			return
		}

		<-ctx.Done()
		close(stopChannel)
	}()

	return tickChannel, errorChannel
}

func parseKlineEvent(
	event *binance.WsKlineEvent,
) (*chartist.BarTick, error) {
	bar, err := parseKline(
		event.Kline.StartTime,
		event.Kline.Open,
		event.Kline.High,
		event.Kline.Low,
		event.Kline.Close,
		event.Kline.Volume,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse kline event for pair [%v]: [%v]",
			event.Symbol,
			err,
		)
	}

	return &chartist.BarTick{
		Bar:      bar,
		TickTime: parseMilliseconds(event.Time),
	}, nil
}

func parseKline(
	openTime int64,
	open, high, low, closePrice, volume string,
) (*chartist.Bar, error) {
	bar := &chartist.Bar{
		Timestamp: parseMilliseconds(openTime),
	}

	fields := []struct {
		name   string
		raw    string
		target *float64
	}{
		{"open", open, &bar.Open},
		{"high", high, &bar.High},
		{"low", low, &bar.Low},
		{"close", closePrice, &bar.Close},
		{"volume", volume, &bar.Volume},
	}

	for _, field := range fields {
		value, err := strconv.ParseFloat(field.raw, 64)
		if err != nil {
			return nil, fmt.Errorf(
				"could not parse %v value [%v]: [%v]",
				field.name,
				field.raw,
				err,
			)
		}

		*field.target = value
	}

	return bar, nil
}

// Package binance implements the chartist.ExchangeService against the
// Binance API.
package binance

import (
	"context"
	"time"

	"github.com/adshao/go-binance"
)

const requestTimeout = 1 * time.Minute

type ExchangeService struct {
	client       *binance.Client
	exchangeInfo *binance.ExchangeInfo
}

func NewExchangeService(
	ctx context.Context,
	apiKey, secretKey string,
) (*ExchangeService, error) {
	client := binance.NewClient(apiKey, secretKey)

	requestCtx, cancelRequestCtx := context.WithTimeout(ctx, requestTimeout)
	defer cancelRequestCtx()

	exchangeInfo, err := client.NewExchangeInfoService().Do(requestCtx)
	if err != nil {
		return nil, err
	}

	return &ExchangeService{
		client:       client,
		exchangeInfo: exchangeInfo,
	}, nil
}

func (es *ExchangeService) ExchangeName() string {
	return "binance"
}

// Pairs returns the symbols tradeable on the exchange, as reported by the
// exchange info endpoint fetched at construction time.
func (es *ExchangeService) Pairs(_ context.Context) ([]string, error) {
	pairs := make([]string, len(es.exchangeInfo.Symbols))

	for index, symbol := range es.exchangeInfo.Symbols {
		pairs[index] = symbol.Symbol
	}

	return pairs, nil
}

func parseMilliseconds(milliseconds int64) time.Time {
	return time.Unix(0, milliseconds*int64(time.Millisecond))
}

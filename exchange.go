package chartist

import "context"

// ExchangeService is the market-data boundary. The core treats fetched
// bars as fully materialized input; retries and cancellation belong to
// the implementation, not to the analysis itself.
type ExchangeService interface {
	ExchangeName() string

	// Bars returns historical bars matching the filter, ordered ascending
	// by timestamp.
	Bars(ctx context.Context, filter *BarFilter) ([]*Bar, error)

	// BarsTicker streams live bar updates for the filter's pair and
	// interval until the context is done.
	BarsTicker(
		ctx context.Context,
		filter *BarFilter,
	) (<-chan *BarTick, <-chan error)

	// Pairs returns all pairs tradeable on the exchange.
	Pairs(ctx context.Context) ([]string, error)
}

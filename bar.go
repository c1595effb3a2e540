package chartist

import (
	"fmt"
	"time"
)

// Bar represents a single OHLCV interval of market data.
type Bar struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// Equal considers two bars equal when they describe the same interval,
// regardless of their price values.
func (b *Bar) Equal(other *Bar) bool {
	return b.Timestamp.Equal(other.Timestamp)
}

func (b *Bar) String() string {
	return fmt.Sprintf(
		"time: %v, close: %v",
		b.Timestamp.Format(time.RFC3339),
		b.Close,
	)
}

type BarTick struct {
	*Bar
	TickTime time.Time
}

func (bt *BarTick) String() string {
	return bt.Bar.String()
}

type BarFilter struct {
	Pair      string
	Interval  string
	StartTime time.Time
	EndTime   time.Time
}

type BarRepository interface {
	SaveBars(key string, bars ...*Bar)

	Bars(key string) []*Bar

	DeleteBars(key string)
}

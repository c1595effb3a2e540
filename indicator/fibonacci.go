package indicator

import (
	"fmt"

	"github.com/lukasz-zimnoch/chartist"
)

var fibonacciLevels = []struct {
	column   string
	fraction float64
}{
	{ColumnFib0, 0},
	{ColumnFib236, 0.236},
	{ColumnFib382, 0.382},
	{ColumnFib500, 0.5},
	{ColumnFib618, 0.618},
	{ColumnFib100, 1},
}

// FibonacciLevels appends the six retracement level columns, each at its
// fraction of the trailing [rolling min(low), rolling max(high)] range.
// All six columns share the undefined prefix of the rolling extrema.
func FibonacciLevels(series *chartist.Series, period int) error {
	if period <= 0 {
		return fmt.Errorf(
			"%w: fibonacci period must be positive, got [%v]",
			chartist.ErrInvalidParameter,
			period,
		)
	}

	highs, err := series.Column(chartist.ColumnHigh)
	if err != nil {
		return err
	}

	lows, err := series.Column(chartist.ColumnLow)
	if err != nil {
		return err
	}

	highMax := rollingMax(highs, period)
	lowMin := rollingMin(lows, period)

	for _, level := range fibonacciLevels {
		values := make([]float64, len(highs))

		for index := range values {
			rangeWidth := highMax[index] - lowMin[index]
			values[index] = lowMin[index] + rangeWidth*level.fraction
		}

		if err := series.AddColumn(level.column, values); err != nil {
			return err
		}
	}

	return nil
}

package indicator

import (
	"fmt"

	"github.com/lukasz-zimnoch/chartist"
)

// MACD appends the MACD and Signal_Line columns. The MACD line is the
// difference of the fast and slow exponential moving averages of the
// close; the signal line smooths the MACD line with the signal span.
// Both columns are defined from the first bar onward because the averages
// seed at the first input value.
func MACD(series *chartist.Series, fast, slow, signal int) error {
	for name, span := range map[string]int{
		"macd fast span":   fast,
		"macd slow span":   slow,
		"macd signal span": signal,
	} {
		if span <= 0 {
			return fmt.Errorf(
				"%w: %v must be positive, got [%v]",
				chartist.ErrInvalidParameter,
				name,
				span,
			)
		}
	}

	closes, err := series.Column(chartist.ColumnClose)
	if err != nil {
		return err
	}

	fastEMA := ema(closes, fast)
	slowEMA := ema(closes, slow)

	macd := make([]float64, len(closes))
	for index := range macd {
		macd[index] = fastEMA[index] - slowEMA[index]
	}

	signalLine := ema(macd, signal)

	if err := series.AddColumn(ColumnMACD, macd); err != nil {
		return err
	}

	return series.AddColumn(ColumnSignalLine, signalLine)
}

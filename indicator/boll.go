package indicator

import (
	"fmt"

	"github.com/lukasz-zimnoch/chartist"
)

// BollingerBands appends the BB_middle, BB_upper and BB_lower columns.
// The middle band is the rolling simple mean of the close; the band
// offset is the rolling sample standard deviation scaled by stdDev. The
// first period-1 positions stay undefined.
func BollingerBands(series *chartist.Series, period int, stdDev float64) error {
	if period <= 0 {
		return fmt.Errorf(
			"%w: bollinger period must be positive, got [%v]",
			chartist.ErrInvalidParameter,
			period,
		)
	}

	if stdDev < 0 {
		return fmt.Errorf(
			"%w: bollinger standard deviation multiplier "+
				"must not be negative, got [%v]",
			chartist.ErrInvalidParameter,
			stdDev,
		)
	}

	closes, err := series.Column(chartist.ColumnClose)
	if err != nil {
		return err
	}

	middle := rollingMean(closes, period)
	deviation := rollingStd(closes, period)

	upper := make([]float64, len(closes))
	lower := make([]float64, len(closes))

	for index := range closes {
		offset := deviation[index] * stdDev

		upper[index] = middle[index] + offset
		lower[index] = middle[index] - offset
	}

	if err := series.AddColumn(ColumnBBMiddle, middle); err != nil {
		return err
	}

	if err := series.AddColumn(ColumnBBUpper, upper); err != nil {
		return err
	}

	return series.AddColumn(ColumnBBLower, lower)
}

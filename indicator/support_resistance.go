package indicator

import (
	"fmt"

	"github.com/lukasz-zimnoch/chartist"
)

// SupportResistance appends the Support and Resistance columns: the
// rolling minimum of the low and the rolling maximum of the high over the
// trailing window.
func SupportResistance(series *chartist.Series, window int) error {
	if window <= 0 {
		return fmt.Errorf(
			"%w: support/resistance window must be positive, got [%v]",
			chartist.ErrInvalidParameter,
			window,
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

	if err := series.AddColumn(
		ColumnSupport,
		rollingMin(lows, window),
	); err != nil {
		return err
	}

	return series.AddColumn(ColumnResistance, rollingMax(highs, window))
}

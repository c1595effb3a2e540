package indicator

import (
	"fmt"

	"github.com/lukasz-zimnoch/chartist"
)

// Momentum appends the Momentum column: the close-to-close change over
// period bars. The first period positions stay undefined.
func Momentum(series *chartist.Series, period int) error {
	if period <= 0 {
		return fmt.Errorf(
			"%w: momentum period must be positive, got [%v]",
			chartist.ErrInvalidParameter,
			period,
		)
	}

	closes, err := series.Column(chartist.ColumnClose)
	if err != nil {
		return err
	}

	momentum := nans(len(closes))

	for index := period; index < len(closes); index++ {
		momentum[index] = closes[index] - closes[index-period]
	}

	return series.AddColumn(ColumnMomentum, momentum)
}

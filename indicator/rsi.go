package indicator

import (
	"fmt"
	"math"

	"github.com/lukasz-zimnoch/chartist"
)

// RSI appends the Relative Strength Index column. Gains and losses are
// simple rolling means over the last period close-to-close deltas, so the
// first defined position is index period (the first bar contributes no
// delta). A window with no losses and at least one gain evaluates to 100;
// a window with neither gains nor losses evaluates to the neutral 50
// instead of propagating a division by zero.
func RSI(series *chartist.Series, period int) error {
	if period <= 0 {
		return fmt.Errorf(
			"%w: rsi period must be positive, got [%v]",
			chartist.ErrInvalidParameter,
			period,
		)
	}

	closes, err := series.Column(chartist.ColumnClose)
	if err != nil {
		return err
	}

	gains := nans(len(closes))
	losses := nans(len(closes))

	for index := 1; index < len(closes); index++ {
		delta := closes[index] - closes[index-1]

		gains[index] = math.Max(delta, 0)
		losses[index] = -math.Min(delta, 0)
	}

	averageGains := rollingMean(gains, period)
	averageLosses := rollingMean(losses, period)

	rsi := nans(len(closes))

	for index := range rsi {
		gain := averageGains[index]
		loss := averageLosses[index]

		if math.IsNaN(gain) || math.IsNaN(loss) {
			continue
		}

		switch {
		case loss == 0 && gain == 0:
			rsi[index] = 50
		case loss == 0:
			rsi[index] = 100
		default:
			rs := gain / loss
			rsi[index] = 100 - 100/(1+rs)
		}
	}

	return series.AddColumn(ColumnRSI, rsi)
}

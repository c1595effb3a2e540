package indicator

import "github.com/lukasz-zimnoch/chartist"

// Apply runs the full indicator pipeline over the series, in the order
// the columns are documented: RSI, MACD, Bollinger Bands, Fibonacci
// levels, support/resistance, momentum and pivot points. Only the MACD
// signal line depends on another column (the MACD line itself); all other
// indicators read the base columns exclusively.
func Apply(series *chartist.Series, params *chartist.TAParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if err := RSI(series, params.RSIPeriod); err != nil {
		return err
	}

	if err := MACD(
		series,
		params.MACDFast,
		params.MACDSlow,
		params.MACDSignal,
	); err != nil {
		return err
	}

	if err := BollingerBands(
		series,
		params.BBPeriod,
		params.BBStdDev,
	); err != nil {
		return err
	}

	if err := FibonacciLevels(series, params.FibonacciPeriod); err != nil {
		return err
	}

	if err := SupportResistance(
		series,
		params.SupportResistanceWindow,
	); err != nil {
		return err
	}

	if err := Momentum(series, params.MomentumPeriod); err != nil {
		return err
	}

	return PivotPoints(series)
}

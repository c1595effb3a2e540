package chartist

import "fmt"

// TradingConfig groups the trading defaults consumed by the analysis
// workers. All values are immutable for the duration of a run.
type TradingConfig struct {
	Timeframe            string
	BarLimit             int
	RiskPercentage       float64
	StopLossMultiplier   float64
	TakeProfitMultiplier float64
}

func DefaultTradingConfig() TradingConfig {
	return TradingConfig{
		Timeframe:            "1d",
		BarLimit:             365,
		RiskPercentage:       2,
		StopLossMultiplier:   2,
		TakeProfitMultiplier: 3,
	}
}

func (tc *TradingConfig) Validate() error {
	if tc.BarLimit <= 0 {
		return fmt.Errorf(
			"%w: bar limit must be positive, got [%v]",
			ErrInvalidParameter,
			tc.BarLimit,
		)
	}

	if tc.RiskPercentage < 0 {
		return fmt.Errorf(
			"%w: risk percentage must not be negative, got [%v]",
			ErrInvalidParameter,
			tc.RiskPercentage,
		)
	}

	return nil
}

// TAParams groups the indicator periods and signal thresholds read by
// both the indicator library and the signal engine.
type TAParams struct {
	RSIPeriod     int
	RSIOverbought float64
	RSIOversold   float64

	MACDFast   int
	MACDSlow   int
	MACDSignal int

	BBPeriod int
	BBStdDev float64

	FibonacciPeriod         int
	SupportResistanceWindow int
	MomentumPeriod          int
}

func DefaultTAParams() TAParams {
	return TAParams{
		RSIPeriod:               14,
		RSIOverbought:           70,
		RSIOversold:             30,
		MACDFast:                12,
		MACDSlow:                26,
		MACDSignal:              9,
		BBPeriod:                20,
		BBStdDev:                2,
		FibonacciPeriod:         14,
		SupportResistanceWindow: 20,
		MomentumPeriod:          14,
	}
}

func (tp *TAParams) Validate() error {
	periods := map[string]int{
		"rsi period":                tp.RSIPeriod,
		"macd fast span":            tp.MACDFast,
		"macd slow span":            tp.MACDSlow,
		"macd signal span":          tp.MACDSignal,
		"bollinger period":          tp.BBPeriod,
		"fibonacci period":          tp.FibonacciPeriod,
		"support/resistance window": tp.SupportResistanceWindow,
		"momentum period":           tp.MomentumPeriod,
	}

	for name, period := range periods {
		if period <= 0 {
			return fmt.Errorf(
				"%w: %v must be positive, got [%v]",
				ErrInvalidParameter,
				name,
				period,
			)
		}
	}

	if tp.BBStdDev < 0 {
		return fmt.Errorf(
			"%w: bollinger standard deviation multiplier "+
				"must not be negative, got [%v]",
			ErrInvalidParameter,
			tp.BBStdDev,
		)
	}

	return nil
}

// BacktestParams groups the backtesting defaults. They are part of the
// configuration boundary only; no backtesting happens in this service.
type BacktestParams struct {
	InitialBalance float64
	Commission     float64
	Slippage       float64
}

func DefaultBacktestParams() BacktestParams {
	return BacktestParams{
		InitialBalance: 10000,
		Commission:     0.001,
		Slippage:       0.0005,
	}
}

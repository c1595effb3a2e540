package chartist

import "fmt"

// PriceTargets describes the entry, stop-loss and take-profit prices
// derived from an actionable signal.
type PriceTargets struct {
	Entry      float64
	StopLoss   float64
	TakeProfit float64
}

func (pt *PriceTargets) String() string {
	return fmt.Sprintf(
		"entry: %.2f, tp: %.2f, sl: %.2f",
		pt.Entry,
		pt.TakeProfit,
		pt.StopLoss,
	)
}

// ComputePriceTargets derives price targets from the last close and the
// trading config. The risk unit is the configured percentage of the entry
// price; stop-loss and take-profit sit at their respective multiples of
// that unit, on opposite sides for BUY and SELL. A HOLD signal yields no
// targets.
func ComputePriceTargets(
	signal *Signal,
	lastClose float64,
	config *TradingConfig,
) (*PriceTargets, bool) {
	if signal.Action == HOLD {
		return nil, false
	}

	riskUnit := lastClose * config.RiskPercentage / 100

	direction := 1.0
	if signal.Action == SELL {
		direction = -1.0
	}

	return &PriceTargets{
		Entry:      lastClose,
		StopLoss:   lastClose - direction*config.StopLossMultiplier*riskUnit,
		TakeProfit: lastClose + direction*config.TakeProfitMultiplier*riskUnit,
	}, true
}

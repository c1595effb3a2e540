package chartist

import (
	"math"
	"testing"
)

func TestComputePriceTargets(t *testing.T) {
	config := DefaultTradingConfig()

	tests := map[string]struct {
		action             Action
		expectedTargets    bool
		expectedStopLoss   float64
		expectedTakeProfit float64
	}{
		"buy signal": {
			action:             BUY,
			expectedTargets:    true,
			expectedStopLoss:   96,
			expectedTakeProfit: 106,
		},
		"sell signal": {
			action:             SELL,
			expectedTargets:    true,
			expectedStopLoss:   104,
			expectedTakeProfit: 94,
		},
		"hold signal": {
			action:          HOLD,
			expectedTargets: false,
		},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			pair, err := ParsePair("ETH/USDT")
			if err != nil {
				t.Fatalf("unexpected error: [%v]", err)
			}

			signal := &Signal{
				Pair:   pair,
				Action: test.action,
			}

			targets, ok := ComputePriceTargets(signal, 100, &config)

			if ok != test.expectedTargets {
				t.Fatalf(
					"unexpected targets existence\n"+
						"expected: [%v]\nactual:   [%v]",
					test.expectedTargets,
					ok,
				)
			}

			if !ok {
				return
			}

			if targets.Entry != 100 {
				t.Errorf(
					"unexpected entry\nexpected: [%v]\nactual:   [%v]",
					100.0,
					targets.Entry,
				)
			}

			if math.Abs(targets.StopLoss-test.expectedStopLoss) > 1e-9 {
				t.Errorf(
					"unexpected stop loss\nexpected: [%v]\nactual:   [%v]",
					test.expectedStopLoss,
					targets.StopLoss,
				)
			}

			if math.Abs(targets.TakeProfit-test.expectedTakeProfit) > 1e-9 {
				t.Errorf(
					"unexpected take profit\nexpected: [%v]\nactual:   [%v]",
					test.expectedTakeProfit,
					targets.TakeProfit,
				)
			}
		})
	}
}

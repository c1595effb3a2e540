package chartist

import (
	"fmt"
	"strings"
)

type Action int

const (
	HOLD Action = iota
	BUY
	SELL
)

func ParseAction(value string) (Action, error) {
	switch value {
	case "HOLD":
		return HOLD, nil
	case "BUY":
		return BUY, nil
	case "SELL":
		return SELL, nil
	}

	return -1, fmt.Errorf("unknown action: [%v]", value)
}

func (a Action) String() string {
	switch a {
	case HOLD:
		return "HOLD"
	case BUY:
		return "BUY"
	case SELL:
		return "SELL"
	default:
		panic("unknown action")
	}
}

// Signal is the transient outcome of a single rule evaluation pass.
// Confidence is an additive, unnormalized score: each triggered rule
// contributes its own weight and no scaling is applied afterwards.
// Reasons holds one human-readable entry per triggered rule, in rule
// evaluation order.
type Signal struct {
	Pair       Pair
	Action     Action
	Confidence float64
	Reasons    []string
}

func (s *Signal) String() string {
	return fmt.Sprintf(
		"%v %v (confidence %.2f): %v",
		s.Pair.String(),
		s.Action.String(),
		s.Confidence,
		strings.Join(s.Reasons, "; "),
	)
}

// SignalGenerator turns a raw bar sequence into an indicator-enriched
// series and a trading signal. Implementations must reject an empty input
// with ErrEmptySeries and refuse to evaluate rules over undefined
// indicator values with ErrInsufficientHistory.
type SignalGenerator interface {
	Evaluate(bars []*Bar) (*Series, *Signal, error)
}

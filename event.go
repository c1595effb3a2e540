package chartist

import (
	"fmt"
	"strings"
)

type Event struct {
	Pair    string
	Payload string
}

func NewSignalEvent(
	analysisID ID,
	exchange string,
	signal *Signal,
	targets *PriceTargets,
) *Event {
	return &Event{
		Pair: signal.Pair.String(),
		Payload: fmt.Sprintf(
			"New trading signal:\n"+
				"- Analysis ID: %v\n"+
				"- Exchange: %v\n"+
				"- Pair: %v\n"+
				"- Action: %v\n"+
				"- Confidence: %.2f\n"+
				"- Reasons: %v\n"+
				"- Entry price: %.2f\n"+
				"- Take profit price: %.2f\n"+
				"- Stop loss price: %.2f",
			analysisID.String(),
			exchange,
			signal.Pair.String(),
			signal.Action.String(),
			signal.Confidence,
			strings.Join(signal.Reasons, "; "),
			targets.Entry,
			targets.TakeProfit,
			targets.StopLoss,
		),
	}
}

type EventService interface {
	Publish(event *Event)
}

// Package strategy implements the rule-based signal engine on top of the
// indicator library.
package strategy

import (
	"fmt"

	"github.com/lukasz-zimnoch/chartist"
	"github.com/lukasz-zimnoch/chartist/indicator"
)

// requiredColumns must all carry defined values at the evaluation point
// before any rule may fire.
var requiredColumns = []string{
	indicator.ColumnRSI,
	indicator.ColumnMACD,
	indicator.ColumnSignalLine,
	indicator.ColumnBBUpper,
	indicator.ColumnBBLower,
}

// Engine evaluates a fixed rule set over the latest row of an enriched
// series. The three rule groups run in a fixed order (RSI, MACD,
// Bollinger); each contributes its weight to a shared confidence
// accumulator and the last rule to fire decides the action. The
// evaluation is stateless and deterministic for the same series tail.
type Engine struct {
	logger chartist.Logger
	pair   chartist.Pair
	params *chartist.TAParams
}

func NewEngine(
	logger chartist.Logger,
	pair chartist.Pair,
	params *chartist.TAParams,
) *Engine {
	return &Engine{
		logger: logger,
		pair:   pair,
		params: params,
	}
}

// Evaluate builds a series from the raw bars, applies the full indicator
// pipeline and runs the rule set over the latest row. An empty input
// fails with chartist.ErrEmptySeries before any indicator is attempted.
func (e *Engine) Evaluate(
	bars []*chartist.Bar,
) (*chartist.Series, *chartist.Signal, error) {
	series, err := chartist.NewSeries(bars)
	if err != nil {
		return nil, nil, err
	}

	if err := indicator.Apply(series, e.params); err != nil {
		return nil, nil, fmt.Errorf(
			"could not apply indicators: [%v]",
			err,
		)
	}

	signal, err := e.EvaluateSeries(series)
	if err != nil {
		return nil, nil, err
	}

	return series, signal, nil
}

// EvaluateSeries runs the rule set over the latest row of an already
// enriched series. It refuses to treat an undefined indicator value as a
// number: any required column without a value at the evaluation point
// fails with chartist.ErrInsufficientHistory.
func (e *Engine) EvaluateSeries(
	series *chartist.Series,
) (*chartist.Signal, error) {
	for _, column := range requiredColumns {
		value, err := series.Last(column)
		if err != nil {
			return nil, err
		}

		if !chartist.Defined(value) {
			return nil, fmt.Errorf(
				"%w: column [%v] has no value at the evaluation point",
				chartist.ErrInsufficientHistory,
				column,
			)
		}
	}

	signal := &chartist.Signal{
		Pair:    e.pair,
		Action:  chartist.HOLD,
		Reasons: make([]string, 0),
	}

	if err := e.applyRSIRule(series, signal); err != nil {
		return nil, err
	}

	if err := e.applyMACDRule(series, signal); err != nil {
		return nil, err
	}

	if err := e.applyBollingerRule(series, signal); err != nil {
		return nil, err
	}

	e.logger.Debugf("rule evaluation produced signal [%v]", signal)

	return signal, nil
}

func (e *Engine) applyRSIRule(
	series *chartist.Series,
	signal *chartist.Signal,
) error {
	rsi, err := series.Last(indicator.ColumnRSI)
	if err != nil {
		return err
	}

	if rsi < e.params.RSIOversold {
		signal.Action = chartist.BUY
		signal.Confidence += 0.3
		signal.Reasons = append(
			signal.Reasons,
			fmt.Sprintf("RSI oversold (%.2f)", rsi),
		)
	} else if rsi > e.params.RSIOverbought {
		signal.Action = chartist.SELL
		signal.Confidence += 0.3
		signal.Reasons = append(
			signal.Reasons,
			fmt.Sprintf("RSI overbought (%.2f)", rsi),
		)
	}

	return nil
}

func (e *Engine) applyMACDRule(
	series *chartist.Series,
	signal *chartist.Signal,
) error {
	macd, err := series.Last(indicator.ColumnMACD)
	if err != nil {
		return err
	}

	signalLine, err := series.Last(indicator.ColumnSignalLine)
	if err != nil {
		return err
	}

	// Equal lines fire no rule.
	if macd > signalLine {
		signal.Action = chartist.BUY
		signal.Confidence += 0.3
		signal.Reasons = append(
			signal.Reasons,
			"MACD crossed above signal line",
		)
	} else if macd < signalLine {
		signal.Action = chartist.SELL
		signal.Confidence += 0.3
		signal.Reasons = append(
			signal.Reasons,
			"MACD crossed below signal line",
		)
	}

	return nil
}

func (e *Engine) applyBollingerRule(
	series *chartist.Series,
	signal *chartist.Signal,
) error {
	closePrice, err := series.Last(chartist.ColumnClose)
	if err != nil {
		return err
	}

	lower, err := series.Last(indicator.ColumnBBLower)
	if err != nil {
		return err
	}

	upper, err := series.Last(indicator.ColumnBBUpper)
	if err != nil {
		return err
	}

	if closePrice < lower {
		signal.Action = chartist.BUY
		signal.Confidence += 0.2
		signal.Reasons = append(
			signal.Reasons,
			"Price below lower Bollinger Band",
		)
	} else if closePrice > upper {
		signal.Action = chartist.SELL
		signal.Confidence += 0.2
		signal.Reasons = append(
			signal.Reasons,
			"Price above upper Bollinger Band",
		)
	}

	return nil
}

package strategy

import (
	"errors"
	"testing"
	"time"

	"github.com/lukasz-zimnoch/chartist"
	"github.com/lukasz-zimnoch/chartist/indicator"
)

func TestEvaluateSeries(t *testing.T) {
	var tests = map[string]struct {
		rsi                float64
		macd               float64
		signalLine         float64
		bbUpper            float64
		bbLower            float64
		closePrice         float64
		expectedAction     chartist.Action
		expectedConfidence float64
		expectedReasons    []string
	}{
		"all rules vote buy": {
			rsi:                25,
			macd:               1,
			signalLine:         0.5,
			bbUpper:            12,
			bbLower:            11,
			closePrice:         10,
			expectedAction:     chartist.BUY,
			expectedConfidence: 0.8,
			expectedReasons: []string{
				"RSI oversold (25.00)",
				"MACD crossed above signal line",
				"Price below lower Bollinger Band",
			},
		},
		"all rules vote sell": {
			rsi:                75,
			macd:               -1,
			signalLine:         0,
			bbUpper:            9,
			bbLower:            8,
			closePrice:         10,
			expectedAction:     chartist.SELL,
			expectedConfidence: 0.8,
			expectedReasons: []string{
				"RSI overbought (75.00)",
				"MACD crossed below signal line",
				"Price above upper Bollinger Band",
			},
		},
		"later rule overrides earlier action": {
			rsi:                25,
			macd:               1,
			signalLine:         2,
			bbUpper:            15,
			bbLower:            5,
			closePrice:         10,
			expectedAction:     chartist.SELL,
			expectedConfidence: 0.6,
			expectedReasons: []string{
				"RSI oversold (25.00)",
				"MACD crossed below signal line",
			},
		},
		"equal macd and signal line fire no rule": {
			rsi:                50,
			macd:               1,
			signalLine:         1,
			bbUpper:            15,
			bbLower:            5,
			closePrice:         10,
			expectedAction:     chartist.HOLD,
			expectedConfidence: 0,
			expectedReasons:    []string{},
		},
		"single rule triggered": {
			rsi:                50,
			macd:               1,
			signalLine:         2,
			bbUpper:            15,
			bbLower:            5,
			closePrice:         10,
			expectedAction:     chartist.SELL,
			expectedConfidence: 0.3,
			expectedReasons: []string{
				"MACD crossed below signal line",
			},
		},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			series := newEnrichedSeries(
				t,
				test.closePrice,
				map[string]float64{
					indicator.ColumnRSI:        test.rsi,
					indicator.ColumnMACD:       test.macd,
					indicator.ColumnSignalLine: test.signalLine,
					indicator.ColumnBBUpper:    test.bbUpper,
					indicator.ColumnBBLower:    test.bbLower,
				},
			)

			engine := newTestEngine(t)

			signal, err := engine.EvaluateSeries(series)
			if err != nil {
				t.Fatalf("unexpected error: [%v]", err)
			}

			if test.expectedAction != signal.Action {
				t.Errorf(
					"unexpected action\nexpected: [%v]\nactual:   [%v]",
					test.expectedAction,
					signal.Action,
				)
			}

			if test.expectedConfidence != signal.Confidence {
				t.Errorf(
					"unexpected confidence\nexpected: [%v]\nactual:   [%v]",
					test.expectedConfidence,
					signal.Confidence,
				)
			}

			if len(test.expectedReasons) != len(signal.Reasons) {
				t.Fatalf(
					"unexpected reasons count\nexpected: [%v]\nactual:   [%v]",
					len(test.expectedReasons),
					len(signal.Reasons),
				)
			}

			for index, expectedReason := range test.expectedReasons {
				if expectedReason != signal.Reasons[index] {
					t.Errorf(
						"unexpected reason at [%v]\n"+
							"expected: [%v]\nactual:   [%v]",
						index,
						expectedReason,
						signal.Reasons[index],
					)
				}
			}
		})
	}
}

func TestEvaluateSeries_UndefinedIndicator(t *testing.T) {
	series := newEnrichedSeries(
		t,
		10,
		map[string]float64{
			indicator.ColumnRSI:        chartist.Undefined(),
			indicator.ColumnMACD:       1,
			indicator.ColumnSignalLine: 0.5,
			indicator.ColumnBBUpper:    12,
			indicator.ColumnBBLower:    8,
		},
	)

	engine := newTestEngine(t)

	_, err := engine.EvaluateSeries(series)

	if !errors.Is(err, chartist.ErrInsufficientHistory) {
		t.Errorf(
			"unexpected error\nexpected: [%v]\nactual:   [%v]",
			chartist.ErrInsufficientHistory,
			err,
		)
	}
}

func TestEvaluate_EmptyInput(t *testing.T) {
	engine := newTestEngine(t)

	_, _, err := engine.Evaluate(nil)

	if !errors.Is(err, chartist.ErrEmptySeries) {
		t.Errorf(
			"unexpected error\nexpected: [%v]\nactual:   [%v]",
			chartist.ErrEmptySeries,
			err,
		)
	}
}

func TestEvaluate_ShortHistory(t *testing.T) {
	bars := []*chartist.Bar{
		{
			Timestamp: time.Date(2021, 6, 11, 0, 0, 0, 0, time.UTC),
			Open:      100,
			High:      101,
			Low:       99,
			Close:     100,
			Volume:    1000,
		},
	}

	engine := newTestEngine(t)

	_, _, err := engine.Evaluate(bars)

	if !errors.Is(err, chartist.ErrInsufficientHistory) {
		t.Errorf(
			"unexpected error\nexpected: [%v]\nactual:   [%v]",
			chartist.ErrInsufficientHistory,
			err,
		)
	}
}

func TestEvaluate_FullHistory(t *testing.T) {
	bars := make([]*chartist.Bar, 60)
	for index := range bars {
		closePrice := 100 + float64(index%7)

		bars[index] = &chartist.Bar{
			Timestamp: time.Date(2021, 6, 11, 0, 0, 0, 0, time.UTC).
				Add(time.Duration(index) * 24 * time.Hour),
			Open:      closePrice,
			High:      closePrice + 1,
			Low:       closePrice - 1,
			Close:     closePrice,
			Volume:    1000,
		}
	}

	engine := newTestEngine(t)

	series, signal, err := engine.Evaluate(bars)
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	if series.Len() != len(bars) {
		t.Errorf(
			"unexpected series length\nexpected: [%v]\nactual:   [%v]",
			len(bars),
			series.Len(),
		)
	}

	if signal == nil {
		t.Fatal("expected a signal")
	}

	if signal.Reasons == nil {
		t.Error("reasons should never be nil")
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	pair, err := chartist.ParsePair("BTC/USDT")
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	params := chartist.DefaultTAParams()

	return NewEngine(&noopLogger{}, pair, &params)
}

func newEnrichedSeries(
	t *testing.T,
	closePrice float64,
	columns map[string]float64,
) *chartist.Series {
	t.Helper()

	bars := []*chartist.Bar{
		{
			Timestamp: time.Date(2021, 6, 11, 0, 0, 0, 0, time.UTC),
			Open:      closePrice,
			High:      closePrice + 1,
			Low:       closePrice - 1,
			Close:     closePrice,
			Volume:    1000,
		},
	}

	series, err := chartist.NewSeries(bars)
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	for name, value := range columns {
		if err := series.AddColumn(name, []float64{value}); err != nil {
			t.Fatalf("unexpected error: [%v]", err)
		}
	}

	return series
}

type noopLogger struct{}

func (nl *noopLogger) Debugf(format string, args ...interface{})   {}
func (nl *noopLogger) Infof(format string, args ...interface{})    {}
func (nl *noopLogger) Warningf(format string, args ...interface{}) {}
func (nl *noopLogger) Errorf(format string, args ...interface{})   {}
func (nl *noopLogger) Fatalf(format string, args ...interface{})   {}

func (nl *noopLogger) WithField(
	key string,
	value interface{},
) chartist.Logger {
	return nl
}

func (nl *noopLogger) WithFields(
	fields map[string]interface{},
) chartist.Logger {
	return nl
}

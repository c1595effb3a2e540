package indicator

import (
	"testing"
	"time"

	"github.com/lukasz-zimnoch/chartist"
)

const delta = 1e-6

func barsFromCloses(closes ...float64) []*chartist.Bar {
	bars := make([]*chartist.Bar, len(closes))

	for index, closePrice := range closes {
		bars[index] = &chartist.Bar{
			Timestamp: testTimestamp(index),
			Open:      closePrice,
			High:      closePrice + 1,
			Low:       closePrice - 1,
			Close:     closePrice,
			Volume:    100,
		}
	}

	return bars
}

func barsFromHighLow(highs, lows []float64) []*chartist.Bar {
	bars := make([]*chartist.Bar, len(highs))

	for index := range highs {
		closePrice := (highs[index] + lows[index]) / 2

		bars[index] = &chartist.Bar{
			Timestamp: testTimestamp(index),
			Open:      closePrice,
			High:      highs[index],
			Low:       lows[index],
			Close:     closePrice,
			Volume:    100,
		}
	}

	return bars
}

func newTestSeries(t *testing.T, bars []*chartist.Bar) *chartist.Series {
	t.Helper()

	series, err := chartist.NewSeries(bars)
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	return series
}

func column(
	t *testing.T,
	series *chartist.Series,
	name string,
) []float64 {
	t.Helper()

	values, err := series.Column(name)
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	return values
}

func assertUndefinedPrefix(
	t *testing.T,
	values []float64,
	definedFrom int,
) {
	t.Helper()

	for index, value := range values {
		if index < definedFrom && chartist.Defined(value) {
			t.Errorf(
				"position [%v] should be undefined, got [%v]",
				index,
				value,
			)
		}

		if index >= definedFrom && !chartist.Defined(value) {
			t.Errorf("position [%v] should be defined", index)
		}
	}
}

func testTimestamp(index int) time.Time {
	base := time.Date(2021, 6, 11, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(index) * 24 * time.Hour)
}

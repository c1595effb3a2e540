package indicator

import (
	"errors"
	"testing"

	"github.com/lukasz-zimnoch/chartist"
	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	closes := make([]float64, 60)
	for index := range closes {
		closes[index] = 100 + float64(index%7)
	}

	series := newTestSeries(t, barsFromCloses(closes...))

	params := chartist.DefaultTAParams()

	err := Apply(series, &params)
	assert.NoError(t, err)

	expectedColumns := []string{
		ColumnRSI,
		ColumnMACD,
		ColumnSignalLine,
		ColumnBBMiddle,
		ColumnBBUpper,
		ColumnBBLower,
		ColumnFib0,
		ColumnFib236,
		ColumnFib382,
		ColumnFib500,
		ColumnFib618,
		ColumnFib100,
		ColumnSupport,
		ColumnResistance,
		ColumnMomentum,
		ColumnPP,
		ColumnR1,
		ColumnS1,
		ColumnR2,
		ColumnS2,
	}

	for _, name := range expectedColumns {
		assert.True(
			t,
			series.HasColumn(name),
			"column [%v] should be present",
			name,
		)
	}

	// 5 base columns plus 20 indicator columns.
	assert.Equal(t, 25, len(series.ColumnNames()))
}

func TestApply_Repeatable(t *testing.T) {
	series := newTestSeries(t, barsFromCloses(1, 2, 3, 4, 5))

	params := chartist.DefaultTAParams()

	// A second pass replaces the indicator columns in place instead of
	// duplicating them.
	err := Apply(series, &params)
	assert.NoError(t, err)
	err = Apply(series, &params)
	assert.NoError(t, err)

	assert.Equal(t, 25, len(series.ColumnNames()))
}

func TestApply_InvalidParams(t *testing.T) {
	series := newTestSeries(t, barsFromCloses(1, 2, 3))

	params := chartist.DefaultTAParams()
	params.RSIPeriod = 0

	err := Apply(series, &params)

	assert.True(t, errors.Is(err, chartist.ErrInvalidParameter))
}

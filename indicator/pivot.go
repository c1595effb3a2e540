package indicator

import "github.com/lukasz-zimnoch/chartist"

// PivotPoints appends the PP, R1, S1, R2 and S2 columns. The computation
// is stateless per bar, so every position is defined with no lookback.
func PivotPoints(series *chartist.Series) error {
	highs, err := series.Column(chartist.ColumnHigh)
	if err != nil {
		return err
	}

	lows, err := series.Column(chartist.ColumnLow)
	if err != nil {
		return err
	}

	closes, err := series.Column(chartist.ColumnClose)
	if err != nil {
		return err
	}

	pp := make([]float64, len(closes))
	r1 := make([]float64, len(closes))
	s1 := make([]float64, len(closes))
	r2 := make([]float64, len(closes))
	s2 := make([]float64, len(closes))

	for index := range closes {
		pivot := (highs[index] + lows[index] + closes[index]) / 3
		priceRange := highs[index] - lows[index]

		pp[index] = pivot
		r1[index] = 2*pivot - lows[index]
		s1[index] = 2*pivot - highs[index]
		r2[index] = pivot + priceRange
		s2[index] = pivot - priceRange
	}

	columns := []struct {
		name   string
		values []float64
	}{
		{ColumnPP, pp},
		{ColumnR1, r1},
		{ColumnS1, s1},
		{ColumnR2, r2},
		{ColumnS2, s2},
	}

	for _, column := range columns {
		if err := series.AddColumn(column.name, column.values); err != nil {
			return err
		}
	}

	return nil
}

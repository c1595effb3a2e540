// Package indicator implements the technical indicators computed over a
// chartist.Series. Each indicator validates its own parameters and appends
// one or more named columns to the series, using math.NaN for positions
// where the rolling or smoothing window has insufficient history.
package indicator

import "math"

func nans(length int) []float64 {
	values := make([]float64, length)
	for index := range values {
		values[index] = math.NaN()
	}

	return values
}

// rollingMean computes the simple moving average over a fully populated
// trailing window. Positions with fewer than window values, or with an
// undefined value inside the window, stay undefined.
func rollingMean(values []float64, window int) []float64 {
	result := nans(len(values))

	for index := window - 1; index < len(values); index++ {
		sum := 0.0
		for cursor := index - window + 1; cursor <= index; cursor++ {
			sum += values[cursor]
		}

		result[index] = sum / float64(window)
	}

	return result
}

// rollingStd computes the sample standard deviation (divisor window-1)
// over a fully populated trailing window. A window of 1 has no sample
// deviation, so every position stays undefined in that case.
func rollingStd(values []float64, window int) []float64 {
	result := nans(len(values))

	if window < 2 {
		return result
	}

	means := rollingMean(values, window)

	for index := window - 1; index < len(values); index++ {
		mean := means[index]

		sumOfSquares := 0.0
		for cursor := index - window + 1; cursor <= index; cursor++ {
			deviation := values[cursor] - mean
			sumOfSquares += deviation * deviation
		}

		result[index] = math.Sqrt(sumOfSquares / float64(window-1))
	}

	return result
}

// rollingMax computes the maximum over a fully populated trailing window.
func rollingMax(values []float64, window int) []float64 {
	return rollingExtremum(values, window, func(a, b float64) bool {
		return a > b
	})
}

// rollingMin computes the minimum over a fully populated trailing window.
func rollingMin(values []float64, window int) []float64 {
	return rollingExtremum(values, window, func(a, b float64) bool {
		return a < b
	})
}

func rollingExtremum(
	values []float64,
	window int,
	better func(a, b float64) bool,
) []float64 {
	result := nans(len(values))

	for index := window - 1; index < len(values); index++ {
		extremum := values[index-window+1]

		for cursor := index - window + 2; cursor <= index; cursor++ {
			value := values[cursor]

			if math.IsNaN(value) || math.IsNaN(extremum) {
				extremum = math.NaN()
				continue
			}

			if better(value, extremum) {
				extremum = value
			}
		}

		result[index] = extremum
	}

	return result
}

// ema computes the exponential moving average with decay 2/(span+1). The
// recurrence seeds at the first input value and never produces undefined
// values after the seed.
func ema(values []float64, span int) []float64 {
	result := make([]float64, len(values))

	alpha := 2.0 / (float64(span) + 1.0)

	for index, value := range values {
		if index == 0 {
			result[index] = value
			continue
		}

		result[index] = result[index-1]*(1-alpha) + value*alpha
	}

	return result
}

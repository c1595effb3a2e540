package indicator

import (
	"fmt"
	"math"

	"github.com/lukasz-zimnoch/chartist"
)

// VolumeProfile buckets the traded volume into bins equal price buckets
// spanning [min(low), max(high)] over the whole series, assigning each
// bar's volume to the bucket its close falls into. It returns the bin
// price levels (bins values) and the per-bucket volumes (bins-1 values).
// The profile is a whole-series aggregate, not a per-bar column.
func VolumeProfile(
	series *chartist.Series,
	bins int,
) ([]float64, []float64, error) {
	if bins < 2 {
		return nil, nil, fmt.Errorf(
			"%w: volume profile needs at least 2 bins, got [%v]",
			chartist.ErrInvalidParameter,
			bins,
		)
	}

	highs, err := series.Column(chartist.ColumnHigh)
	if err != nil {
		return nil, nil, err
	}

	lows, err := series.Column(chartist.ColumnLow)
	if err != nil {
		return nil, nil, err
	}

	closes, err := series.Column(chartist.ColumnClose)
	if err != nil {
		return nil, nil, err
	}

	volumes, err := series.Column(chartist.ColumnVolume)
	if err != nil {
		return nil, nil, err
	}

	lowest := math.Inf(1)
	highest := math.Inf(-1)

	for index := range highs {
		lowest = math.Min(lowest, lows[index])
		highest = math.Max(highest, highs[index])
	}

	levels := make([]float64, bins)
	step := (highest - lowest) / float64(bins-1)

	for index := range levels {
		levels[index] = lowest + step*float64(index)
	}

	profile := make([]float64, bins-1)

	for bucket := 0; bucket < bins-1; bucket++ {
		for index, closePrice := range closes {
			if closePrice >= levels[bucket] &&
				closePrice < levels[bucket+1] {
				profile[bucket] += volumes[index]
			}
		}
	}

	return levels, profile, nil
}

package chartist

import (
	"fmt"
	"math"
)

// Base column names exposed by every series.
const (
	ColumnOpen   = "open"
	ColumnHigh   = "high"
	ColumnLow    = "low"
	ColumnClose  = "close"
	ColumnVolume = "volume"
)

// Undefined is the sentinel used for positions where a rolling or
// smoothing window has insufficient history.
func Undefined() float64 {
	return math.NaN()
}

// Defined tells whether the given column value carries an actual number.
// Consumers must call it before comparing column values.
func Defined(value float64) bool {
	return !math.IsNaN(value)
}

// Series is an ordered sequence of bars sorted ascending by timestamp,
// extended in place by indicator columns. A column, once added, has one
// value per bar and is never removed or reordered. A single analysis pass
// owns its series exclusively, so Series carries no locking.
type Series struct {
	bars    []*Bar
	order   []string
	columns map[string][]float64
}

// NewSeries wraps the given bars into a fresh series exposing the base
// open/high/low/close/volume columns. It rejects an empty input with
// ErrEmptySeries before any indicator gets a chance to run.
func NewSeries(bars []*Bar) (*Series, error) {
	if len(bars) == 0 {
		return nil, ErrEmptySeries
	}

	barsCopy := make([]*Bar, len(bars))
	copy(barsCopy, bars)

	series := &Series{
		bars:    barsCopy,
		order:   make([]string, 0),
		columns: make(map[string][]float64),
	}

	open := make([]float64, len(barsCopy))
	high := make([]float64, len(barsCopy))
	low := make([]float64, len(barsCopy))
	closePrice := make([]float64, len(barsCopy))
	volume := make([]float64, len(barsCopy))

	for index, bar := range barsCopy {
		open[index] = bar.Open
		high[index] = bar.High
		low[index] = bar.Low
		closePrice[index] = bar.Close
		volume[index] = bar.Volume
	}

	series.addColumn(ColumnOpen, open)
	series.addColumn(ColumnHigh, high)
	series.addColumn(ColumnLow, low)
	series.addColumn(ColumnClose, closePrice)
	series.addColumn(ColumnVolume, volume)

	return series, nil
}

func (s *Series) Len() int {
	return len(s.bars)
}

// Bars returns a snapshot of the underlying bars.
func (s *Series) Bars() []*Bar {
	snapshot := make([]*Bar, len(s.bars))
	copy(snapshot, s.bars)

	return snapshot
}

// ColumnNames returns all column names in the order they were added,
// base columns first.
func (s *Series) ColumnNames() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)

	return names
}

func (s *Series) HasColumn(name string) bool {
	_, exists := s.columns[name]
	return exists
}

// AddColumn appends a named column to the series. The column must hold
// exactly one value per bar. Re-adding an existing name replaces the
// values but keeps the original position in the column order.
func (s *Series) AddColumn(name string, values []float64) error {
	if len(values) != len(s.bars) {
		return fmt.Errorf(
			"column [%v] has [%v] values while series holds [%v] bars",
			name,
			len(values),
			len(s.bars),
		)
	}

	s.addColumn(name, values)

	return nil
}

func (s *Series) addColumn(name string, values []float64) {
	if _, exists := s.columns[name]; !exists {
		s.order = append(s.order, name)
	}

	s.columns[name] = values
}

// Column returns a copy of the named column.
func (s *Series) Column(name string) ([]float64, error) {
	values, exists := s.columns[name]
	if !exists {
		return nil, fmt.Errorf("unknown column: [%v]", name)
	}

	snapshot := make([]float64, len(values))
	copy(snapshot, values)

	return snapshot, nil
}

// Value returns the named column's value at the given position.
func (s *Series) Value(name string, index int) (float64, error) {
	values, exists := s.columns[name]
	if !exists {
		return 0, fmt.Errorf("unknown column: [%v]", name)
	}

	if index < 0 || index >= len(values) {
		return 0, fmt.Errorf(
			"index [%v] out of range for column [%v] of length [%v]",
			index,
			name,
			len(values),
		)
	}

	return values[index], nil
}

// Last returns the named column's value at the most recent position.
func (s *Series) Last(name string) (float64, error) {
	return s.Value(name, len(s.bars)-1)
}

package postgres

import (
	"fmt"
	"time"

	"github.com/jackc/pgtype"
	"github.com/lukasz-zimnoch/chartist"
)

// BarRepository archives fetched bars so historical windows can be
// rebuilt without refetching the exchange. Archived signals are out of
// scope; only raw market data lands here.
type BarRepository struct {
	client *Client
}

func NewBarRepository(client *Client) *BarRepository {
	return &BarRepository{client}
}

func (br *BarRepository) ArchiveBars(
	pair, interval string,
	bars ...*chartist.Bar,
) error {
	query := `INSERT INTO
		bar (pair, interval, timestamp, open, high, low, close, volume)
		VALUES (:pair, :interval, :timestamp, :open, :high, :low,
		        :close, :volume)
		ON CONFLICT (pair, interval, timestamp) DO UPDATE SET
		open = EXCLUDED.open, high = EXCLUDED.high, low = EXCLUDED.low,
		close = EXCLUDED.close, volume = EXCLUDED.volume`

	for _, bar := range bars {
		row, err := new(barRow).wrap(pair, interval, bar)
		if err != nil {
			return fmt.Errorf(
				"could not convert bar [%v] to pg row: [%v]",
				bar,
				err,
			)
		}

		if _, err := br.client.instance().NamedExec(query, row); err != nil {
			return fmt.Errorf(
				"could not execute command for bar [%v]: [%v]",
				bar,
				err,
			)
		}
	}

	return nil
}

func (br *BarRepository) Bars(
	pair, interval string,
	startTime, endTime time.Time,
) ([]*chartist.Bar, error) {
	query := `SELECT timestamp, open, high, low, close, volume FROM bar
		WHERE pair = $1 AND interval = $2
		AND timestamp >= $3 AND timestamp <= $4
		ORDER BY timestamp ASC`

	var rows []barRow
	err := br.client.instance().Select(
		&rows,
		query,
		pair,
		interval,
		startTime,
		endTime,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"could not execute query for pair [%v]: [%v]",
			pair,
			err,
		)
	}

	bars := make([]*chartist.Bar, len(rows))
	for index := range rows {
		bar, err := rows[index].unwrap()
		if err != nil {
			return nil, fmt.Errorf(
				"could not convert pg row to bar: [%v]",
				err,
			)
		}

		bars[index] = bar
	}

	return bars, nil
}

type barRow struct {
	Pair      string
	Interval  string
	Timestamp time.Time
	Open      pgtype.Numeric
	High      pgtype.Numeric
	Low       pgtype.Numeric
	Close     pgtype.Numeric
	Volume    pgtype.Numeric
}

func (br *barRow) wrap(
	pair, interval string,
	bar *chartist.Bar,
) (*barRow, error) {
	fields := []struct {
		value  float64
		target *pgtype.Numeric
	}{
		{bar.Open, &br.Open},
		{bar.High, &br.High},
		{bar.Low, &br.Low},
		{bar.Close, &br.Close},
		{bar.Volume, &br.Volume},
	}

	for _, field := range fields {
		numeric, err := floatToNumeric(field.value)
		if err != nil {
			return nil, err
		}

		*field.target = numeric
	}

	br.Pair = pair
	br.Interval = interval
	br.Timestamp = bar.Timestamp

	return br, nil
}

func (br *barRow) unwrap() (*chartist.Bar, error) {
	bar := &chartist.Bar{Timestamp: br.Timestamp}

	fields := []struct {
		value  pgtype.Numeric
		target *float64
	}{
		{br.Open, &bar.Open},
		{br.High, &bar.High},
		{br.Low, &bar.Low},
		{br.Close, &bar.Close},
		{br.Volume, &bar.Volume},
	}

	for _, field := range fields {
		value, err := numericToFloat(field.value)
		if err != nil {
			return nil, err
		}

		*field.target = value
	}

	return bar, nil
}

package inmem

import (
	"sync"
	"testing"
	"time"

	"github.com/lukasz-zimnoch/chartist"
)

func TestBarRepository_SaveBars(t *testing.T) {
	windowSize := 5
	repository := NewBarRepository(windowSize)

	bars := []*chartist.Bar{
		bar(t, "2021-06-11T15:00:00Z", 100),
		bar(t, "2021-06-11T15:00:00Z", 101),
		bar(t, "2021-06-11T15:01:00Z", 102),
		bar(t, "2021-06-11T15:02:00Z", 103),
		bar(t, "2021-06-11T15:03:00Z", 104),
		bar(t, "2021-06-11T15:04:00Z", 105),
		bar(t, "2021-06-11T15:04:00Z", 106),
		bar(t, "2021-06-11T15:05:00Z", 107),
		bar(t, "2021-06-11T15:06:00Z", 108),
		bar(t, "2021-06-11T15:07:00Z", 109),
	}

	repository.SaveBars("key", bars...)

	actualBars := repository.Bars("key")

	if len(actualBars) != windowSize {
		t.Errorf(
			"unexpected bars count\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			windowSize,
			len(actualBars),
		)
	}

	assertBarsEqual(
		t,
		bar(t, "2021-06-11T15:03:00Z", 104),
		actualBars[0],
	)
	assertBarsEqual(
		t,
		bar(t, "2021-06-11T15:04:00Z", 106),
		actualBars[1],
	)
	assertBarsEqual(
		t,
		bar(t, "2021-06-11T15:05:00Z", 107),
		actualBars[2],
	)
	assertBarsEqual(
		t,
		bar(t, "2021-06-11T15:06:00Z", 108),
		actualBars[3],
	)
	assertBarsEqual(
		t,
		bar(t, "2021-06-11T15:07:00Z", 109),
		actualBars[4],
	)
}

func TestBarRepository_SaveBars_RefreshesFormingBar(t *testing.T) {
	repository := NewBarRepository(5)

	repository.SaveBars("key", bar(t, "2021-06-11T15:00:00Z", 100))
	repository.SaveBars("key", bar(t, "2021-06-11T15:00:00Z", 105))

	actualBars := repository.Bars("key")

	if len(actualBars) != 1 {
		t.Fatalf(
			"unexpected bars count\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			1,
			len(actualBars),
		)
	}

	expectedClose := 105.0
	actualClose := actualBars[0].Close

	if actualClose != expectedClose {
		t.Errorf(
			"unexpected close price\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			expectedClose,
			actualClose,
		)
	}
}

func TestBarRepository_SnapshotIsolation(t *testing.T) {
	repository := NewBarRepository(5)

	input := bar(t, "2021-06-11T15:00:00Z", 100)
	repository.SaveBars("key", input)

	// Mutating the saved bar afterwards must not reach the repository.
	input.Close = 0

	snapshot := repository.Bars("key")

	expectedClose := 100.0
	if snapshot[0].Close != expectedClose {
		t.Errorf(
			"unexpected close price\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			expectedClose,
			snapshot[0].Close,
		)
	}

	// Refreshing the forming bar must not reach earlier snapshots.
	repository.SaveBars("key", bar(t, "2021-06-11T15:00:00Z", 105))

	if snapshot[0].Close != expectedClose {
		t.Errorf(
			"unexpected close price\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			expectedClose,
			snapshot[0].Close,
		)
	}
}

func TestBarRepository_ConcurrentSaveAndRead(t *testing.T) {
	repository := NewBarRepository(5)

	repository.SaveBars("key", bar(t, "2021-06-11T15:00:00Z", 100))

	var waitGroup sync.WaitGroup
	waitGroup.Add(2)

	go func() {
		defer waitGroup.Done()

		for index := 0; index < 1000; index++ {
			repository.SaveBars(
				"key",
				bar(t, "2021-06-11T15:00:00Z", 100+float64(index)),
			)
		}
	}()

	go func() {
		defer waitGroup.Done()

		for index := 0; index < 1000; index++ {
			bars := repository.Bars("key")

			if bars[len(bars)-1].Close < 100 {
				t.Error("unexpected close price")
				return
			}
		}
	}()

	waitGroup.Wait()
}

func TestBarRepository_DeleteBars(t *testing.T) {
	repository := NewBarRepository(5)

	bars := []*chartist.Bar{
		bar(t, "2021-06-11T15:00:00Z", 100),
		bar(t, "2021-06-11T15:01:00Z", 101),
	}

	repository.SaveBars("key", bars...)

	repository.DeleteBars("key")

	expectedBarsCount := 0
	actualBarsCount := len(repository.Bars("key"))

	if actualBarsCount != expectedBarsCount {
		t.Errorf(
			"unexpected bars count\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			expectedBarsCount,
			actualBarsCount,
		)
	}
}

func assertBarsEqual(
	t *testing.T,
	expected *chartist.Bar,
	actual *chartist.Bar,
) {
	if !expected.Equal(actual) || expected.Close != actual.Close {
		t.Errorf(
			"unexpected bar\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			expected.String(),
			actual.String(),
		)
	}
}

func bar(t *testing.T, timestamp string, closePrice float64) *chartist.Bar {
	return &chartist.Bar{
		Timestamp: parseTime(t, timestamp),
		Open:      closePrice - 1,
		High:      closePrice + 1,
		Low:       closePrice - 2,
		Close:     closePrice,
		Volume:    1000,
	}
}

func parseTime(t *testing.T, value string) time.Time {
	time, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatal(err)
	}

	return time
}

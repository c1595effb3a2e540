// Package inmem provides in-memory repository implementations.
package inmem

import (
	"sync"

	"github.com/lukasz-zimnoch/chartist"
)

// BarRepository keeps a sliding window of bars per key. A bar carrying an
// already known timestamp replaces the stored one instead of creating a
// duplicate, so live ticks can refresh the forming bar in place. Stored
// bars never alias caller memory: saves copy their input and reads return
// deep snapshots, so a tick refreshing the forming bar cannot race an
// analysis pass reading an earlier snapshot.
type BarRepository struct {
	barsMutex sync.RWMutex
	bars      map[string][]*chartist.Bar

	windowSize int
}

func NewBarRepository(windowSize int) *BarRepository {
	return &BarRepository{
		bars:       make(map[string][]*chartist.Bar),
		windowSize: windowSize,
	}
}

func (br *BarRepository) SaveBars(key string, bars ...*chartist.Bar) {
	br.barsMutex.Lock()
	defer br.barsMutex.Unlock()

	for _, bar := range bars {
		keyBars := br.bars[key]

		var lastBar *chartist.Bar
		if len(keyBars) > 0 {
			lastBar = keyBars[len(keyBars)-1]
		}

		if lastBar != nil && lastBar.Equal(bar) {
			*lastBar = *bar
		} else {
			barCopy := *bar
			keyBars = append(keyBars, &barCopy)

			// remove oldest bar if the window size has been exceeded
			if len(keyBars) > br.windowSize {
				copy(keyBars, keyBars[1:])
				keyBars[len(keyBars)-1] = nil
				keyBars = keyBars[:len(keyBars)-1]
			}

			br.bars[key] = keyBars
		}
	}
}

func (br *BarRepository) Bars(key string) []*chartist.Bar {
	br.barsMutex.RLock()
	defer br.barsMutex.RUnlock()

	snapshot := make([]*chartist.Bar, len(br.bars[key]))
	for index, bar := range br.bars[key] {
		barCopy := *bar
		snapshot[index] = &barCopy
	}

	return snapshot
}

func (br *BarRepository) DeleteBars(key string) {
	br.barsMutex.Lock()
	defer br.barsMutex.Unlock()

	delete(br.bars, key)
}

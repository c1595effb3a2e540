package chartist

import (
	"fmt"
	"strings"
)

type Asset string

type Pair struct {
	Base, Quote Asset
}

// ParsePair parses a slash-separated symbol like BTC/USDT. Both sides of
// the slash must be non-empty.
func ParsePair(pair string) (Pair, error) {
	symbols := strings.Split(pair, "/")

	if len(symbols) != 2 || len(symbols[0]) == 0 || len(symbols[1]) == 0 {
		return Pair{}, fmt.Errorf("malformed pair: [%v]", pair)
	}

	return Pair{
		Base:  Asset(symbols[0]),
		Quote: Asset(symbols[1]),
	}, nil
}

func (p Pair) String() string {
	return string(p.Base + p.Quote)
}

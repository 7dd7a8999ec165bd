package shoplist

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned by ParseAmount for anything but a
// non-negative number.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount reads a money amount such as "4.5" or "$4.50", rounded to cents.
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if err != nil || d.IsNegative() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d.Round(2).InexactFloat64(), nil
}

// HistorySummary aggregates the saved lists.
type HistorySummary struct {
	Lists  int
	Items  int
	Spent  decimal.Decimal
	Latest time.Time
}

// Summary adds up every saved total as decimals, rounded to cents.
func (s *Store) Summary() HistorySummary {
	sum := HistorySummary{Lists: len(s.history), Spent: decimal.Zero}
	for _, l := range s.history {
		sum.Items += len(l.Items)
		sum.Spent = sum.Spent.Add(decimal.NewFromFloat(l.Total))
		if l.Date.After(sum.Latest) {
			sum.Latest = l.Date
		}
	}
	sum.Spent = sum.Spent.Round(2)
	return sum
}

package budget

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TrendPoint is one month of the equity trend: the derived actual equity
// against the planned equity target.
type TrendPoint struct {
	Month        Month
	ActualEquity decimal.Decimal
	PlanEquity   decimal.Decimal
}

// BuildTrend returns the chronological equity series over the inclusive
// month range. Months without a balance-sheet record are omitted, not
// zero-filled. The series is a fresh snapshot of the current store, not a
// live view.
//
// Both bounds must be well-formed "YYYY-MM" strings; anything else fails
// with ErrInvalidRange.
func (s *Service) BuildTrend(fromStr, toStr string) ([]TrendPoint, error) {
	from, err := ParseMonth(fromStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	to, err := ParseMonth(toStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	var series []TrendPoint
	for m := range from.Months(to) {
		bs, ok := s.state.BalanceSheets[m]
		if !ok {
			continue
		}
		series = append(series, TrendPoint{
			Month:        m,
			ActualEquity: bs.Equity(),
			PlanEquity:   bs.Plan.Equity,
		})
	}
	return series, nil
}

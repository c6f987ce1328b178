package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// dec is a test shorthand for exact decimal literals.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// stubProvider serves canned daily rates, keyed by day then currency.
type stubProvider struct {
	daily map[Date]map[string]float64
	err   error
}

func (p *stubProvider) DailyRates(_ context.Context, day Date, currencies []string) (map[string]float64, error) {
	if p.err != nil {
		return nil, p.err
	}
	rates, ok := p.daily[day]
	if !ok {
		return nil, fmt.Errorf("no rates on %s", day)
	}
	out := make(map[string]float64, len(currencies))
	for _, cur := range currencies {
		v, ok := rates[cur]
		if !ok {
			return nil, fmt.Errorf("no %s rate on %s", cur, day)
		}
		out[cur] = v
	}
	return out, nil
}

func (p *stubProvider) RangeRates(_ context.Context, from, to Date, currencies []string) (map[Date]map[string]float64, error) {
	if p.err != nil {
		return nil, p.err
	}
	out := make(map[Date]map[string]float64)
	for day, rates := range p.daily {
		if day.Before(from) || day.After(to) {
			continue
		}
		out[day] = rates
	}
	return out, nil
}

var _ RateProvider = (*stubProvider)(nil)

package budget

import (
	"context"
	"errors"
	"fmt"
)

// RateProvider supplies raw daily FX rates on demand. Rates follow the
// "1 base unit = rate units of currency" convention, for non-base currencies
// only; the base currency is never requested.
//
// Providers are the only asynchronous boundary of the core: they are
// fallible and latency-bearing, and the core treats "no response" the same
// as a provider error.
type RateProvider interface {
	// DailyRates returns the rates for every requested currency on the
	// given day, or an error if the day cannot be served.
	DailyRates(ctx context.Context, day Date, currencies []string) (map[string]float64, error)

	// RangeRates returns, for each day of the inclusive range that the
	// provider knows about, the rates of the requested currencies. Days
	// with no data may be missing from the result entirely.
	RangeRates(ctx context.Context, from, to Date, currencies []string) (map[Date]map[string]float64, error)
}

// ChainProvider tries each provider in order and returns the first answer.
// It models the graceful degradation between rate services: the historical
// service first, the latest-only service as a backstop.
type ChainProvider []RateProvider

// DailyRates implements RateProvider.
func (c ChainProvider) DailyRates(ctx context.Context, day Date, currencies []string) (map[string]float64, error) {
	var errs []error
	for _, p := range c {
		rates, err := p.DailyRates(ctx, day, currencies)
		if err == nil {
			return rates, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("no rate provider configured")
	}
	return nil, errors.Join(errs...)
}

// RangeRates implements RateProvider.
func (c ChainProvider) RangeRates(ctx context.Context, from, to Date, currencies []string) (map[Date]map[string]float64, error) {
	var errs []error
	for _, p := range c {
		rates, err := p.RangeRates(ctx, from, to, currencies)
		if err == nil {
			return rates, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("no rate provider configured")
	}
	return nil, errors.Join(errs...)
}

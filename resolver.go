package budget

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/shopspring/decimal"
)

// RateResolver turns a (currency, month) or (currency, day) question into
// the authoritative "1 base unit = rate units of currency" answer.
//
// Monthly resolution walks a strict precedence chain: manual override,
// computed monthly average, static fallback table. Daily resolution asks the
// provider for the exact day first and then degrades into the monthly chain.
// The first positive finite value wins; when every tier is exhausted the
// resolution fails with ErrRateUnavailable.
type RateResolver struct {
	base     string
	tracked  []string
	fallback map[string]decimal.Decimal
	records  map[Month]*RateRecord
	provider RateProvider
}

// NewRateResolver builds a resolver over the state's rate records. The
// provider may be nil, in which case only overrides, previously cached
// averages and the fallback table can answer.
func NewRateResolver(state *State, provider RateProvider) *RateResolver {
	return &RateResolver{
		base:     state.BaseCurrency,
		tracked:  state.TrackedCurrencies(),
		fallback: state.Fallback,
		records:  state.Rates,
		provider: provider,
	}
}

// Base returns the base currency every amount is normalized into.
func (r *RateResolver) Base() string { return r.base }

// record returns the month's rate record, creating it on first write.
func (r *RateResolver) record(m Month) *RateRecord {
	rec, ok := r.records[m]
	if !ok {
		rec = &RateRecord{}
		r.records[m] = rec
	}
	return rec
}

// SetOverride stores a manual per-month rate for the currency. A zero or
// negative rate clears the override.
func (r *RateResolver) SetOverride(m Month, currency string, rate decimal.Decimal) error {
	if currency == r.base {
		return fmt.Errorf("cannot override the base currency %q", currency)
	}
	if err := ValidateCurrency(currency); err != nil {
		return err
	}
	rec := r.record(m)
	if !rate.IsPositive() {
		delete(rec.Override, currency)
		return nil
	}
	if rec.Override == nil {
		rec.Override = make(map[string]decimal.Decimal)
	}
	rec.Override[currency] = rate
	return nil
}

// Resolve returns the monthly rate for the currency, walking the precedence
// chain: override, monthly average, static fallback. The base currency
// always resolves to 1 without any lookup.
func (r *RateResolver) Resolve(ctx context.Context, currency string, m Month) (decimal.Decimal, RateSource, error) {
	if currency == r.base {
		return decimal.NewFromInt(1), RateSourceBase, nil
	}

	if rate, ok := r.records[m].overrideFor(currency); ok {
		return rate, RateSourceOverride, nil
	}
	if rate, ok := r.monthlyAverage(ctx, currency, m); ok {
		return rate, RateSourceAverage, nil
	}
	if rate, ok := r.fallback[currency]; ok && rate.IsPositive() {
		return rate, RateSourceFallback, nil
	}
	return decimal.Zero, 0, fmt.Errorf("no override, average or fallback for %s in %s: %w", currency, m, ErrRateUnavailable)
}

// ResolveForDate returns the transaction-time rate for the currency on the
// exact day: the provider's daily quote first, then the monthly average of
// the day's month, then the static fallback.
func (r *RateResolver) ResolveForDate(ctx context.Context, currency string, day Date) (decimal.Decimal, RateSource, error) {
	if currency == r.base {
		return decimal.NewFromInt(1), RateSourceBase, nil
	}

	if r.provider != nil {
		rates, err := r.provider.DailyRates(ctx, day, []string{currency})
		if err == nil {
			if rate, ok := finitePositive(rates[currency]); ok {
				return rate, RateSourceDaily, nil
			}
			err = fmt.Errorf("unusable %s rate %v", currency, rates[currency])
		}
		log.Printf("daily rate for %s on %s unavailable, degrading: %v", currency, day, err)
	}

	if rate, ok := r.monthlyAverage(ctx, currency, day.Month()); ok {
		return rate, RateSourceAverage, nil
	}
	if rate, ok := r.fallback[currency]; ok && rate.IsPositive() {
		return rate, RateSourceFallback, nil
	}
	return decimal.Zero, 0, fmt.Errorf("no daily rate, average or fallback for %s on %s: %w", currency, day, ErrRateUnavailable)
}

// monthlyAverage returns the cached monthly average for the currency,
// computing and caching it from provider range data when absent.
func (r *RateResolver) monthlyAverage(ctx context.Context, currency string, m Month) (decimal.Decimal, bool) {
	if rate, ok := r.records[m].averageFor(currency); ok {
		return rate, true
	}
	if r.provider == nil {
		return decimal.Zero, false
	}
	if err := r.RefreshMonthlyAverage(ctx, m); err != nil {
		// Degrade to the next precedence tier rather than fail the resolve.
		log.Printf("monthly average for %s unavailable, degrading: %v", m, err)
		return decimal.Zero, false
	}
	return r.records[m].averageFor(currency)
}

// RefreshMonthlyAverage recomputes the month's average rates from the
// provider's daily data and caches them in the month's rate record.
//
// A day qualifies only when it carries a usable value for every tracked
// currency; a day missing any currency is excluded from all currencies'
// averages (consistency over completeness). With zero qualifying days the
// average is recorded as absent.
func (r *RateResolver) RefreshMonthlyAverage(ctx context.Context, m Month) error {
	if r.provider == nil {
		return fmt.Errorf("no rate provider configured")
	}
	daily, err := r.provider.RangeRates(ctx, m.First(), m.Last(), r.tracked)
	if err != nil {
		return fmt.Errorf("range rates for %s: %w", m, err)
	}

	sums := make(map[string]decimal.Decimal, len(r.tracked))
	count := 0
	for day := range m.Days() {
		rates, ok := daily[day]
		if !ok {
			continue
		}
		values := make(map[string]decimal.Decimal, len(r.tracked))
		complete := true
		for _, cur := range r.tracked {
			v, ok := finitePositive(rates[cur])
			if !ok {
				complete = false
				break
			}
			values[cur] = v
		}
		if !complete {
			continue
		}
		for cur, v := range values {
			sums[cur] = sums[cur].Add(v)
		}
		count++
	}

	rec := r.record(m)
	rec.SampleDayCount = count
	rec.MonthlyAverage = nil
	if count == 0 {
		return nil
	}
	n := decimal.NewFromInt(int64(count))
	rec.MonthlyAverage = make(map[string]decimal.Decimal, len(sums))
	for cur, sum := range sums {
		rec.MonthlyAverage[cur] = sum.Div(n)
	}
	return nil
}

// finitePositive converts a raw provider value into a decimal, rejecting
// zero, negative and non-finite values.
func finitePositive(v float64) (decimal.Decimal, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(v), true
}

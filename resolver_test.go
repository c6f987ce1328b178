package budget

import (
	"context"
	"errors"
	"testing"
)

func TestResolvePrecedence(t *testing.T) {
	ctx := context.Background()
	state := NewState()
	r := NewRateResolver(state, nil)
	m := MustParseMonth("2026-02")

	// The base currency always resolves to 1 without any lookup.
	rate, source, err := r.Resolve(ctx, "USD", m)
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(dec("1")) || source != RateSourceBase {
		t.Errorf("base resolve = %s (%s), want 1 (base)", rate, source)
	}

	// With no override and no average, the static fallback answers.
	rate, source, err = r.Resolve(ctx, "TRY", m)
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(dec("38.5")) || source != RateSourceFallback {
		t.Errorf("resolve = %s (%s), want 38.5 (fallback)", rate, source)
	}

	// An override beats everything.
	if err := r.SetOverride(m, "TRY", dec("40")); err != nil {
		t.Fatal(err)
	}
	rate, source, err = r.Resolve(ctx, "TRY", m)
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(dec("40")) || source != RateSourceOverride {
		t.Errorf("resolve = %s (%s), want 40 (override)", rate, source)
	}

	// A non-positive rate clears the override and the chain falls through.
	if err := r.SetOverride(m, "TRY", dec("0")); err != nil {
		t.Fatal(err)
	}
	rate, source, err = r.Resolve(ctx, "TRY", m)
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(dec("38.5")) || source != RateSourceFallback {
		t.Errorf("after clear, resolve = %s (%s), want 38.5 (fallback)", rate, source)
	}

	// Overrides are scoped to their month.
	if err := r.SetOverride(m, "TRY", dec("41")); err != nil {
		t.Fatal(err)
	}
	rate, source, err = r.Resolve(ctx, "TRY", m.Add(1))
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(dec("38.5")) || source != RateSourceFallback {
		t.Errorf("next month resolve = %s (%s), want 38.5 (fallback)", rate, source)
	}

	// A currency with no tier at all fails with ErrRateUnavailable.
	if _, _, err := r.Resolve(ctx, "EUR", m); !errors.Is(err, ErrRateUnavailable) {
		t.Errorf("resolve EUR err = %v, want ErrRateUnavailable", err)
	}
}

func TestSetOverrideValidation(t *testing.T) {
	r := NewRateResolver(NewState(), nil)
	m := MustParseMonth("2026-02")

	if err := r.SetOverride(m, "USD", dec("40")); err == nil {
		t.Error("overriding the base currency should fail")
	}
	if err := r.SetOverride(m, "ZZZ", dec("40")); err == nil {
		t.Error("overriding an unknown currency code should fail")
	}
}

func TestRefreshMonthlyAverage(t *testing.T) {
	ctx := context.Background()
	m := MustParseMonth("2026-01")

	// Three days of data. The third day is missing RUB, so it must be
	// excluded from both currencies' averages, not just RUB's.
	provider := &stubProvider{daily: map[Date]map[string]float64{
		m.First():        {"TRY": 38, "RUB": 95},
		m.First().Add(1): {"TRY": 40, "RUB": 97},
		m.First().Add(2): {"TRY": 42},
	}}

	state := NewState()
	r := NewRateResolver(state, provider)

	if err := r.RefreshMonthlyAverage(ctx, m); err != nil {
		t.Fatal(err)
	}

	rec := state.Rates[m]
	if rec == nil {
		t.Fatal("no rate record cached")
	}
	if rec.SampleDayCount != 2 {
		t.Errorf("SampleDayCount = %d, want 2", rec.SampleDayCount)
	}
	if got := rec.MonthlyAverage["TRY"]; !got.Equal(dec("39")) {
		t.Errorf("TRY average = %s, want 39", got)
	}
	if got := rec.MonthlyAverage["RUB"]; !got.Equal(dec("96")) {
		t.Errorf("RUB average = %s, want 96", got)
	}

	rate, source, err := r.Resolve(ctx, "TRY", m)
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(dec("39")) || source != RateSourceAverage {
		t.Errorf("resolve = %s (%s), want 39 (monthly-average)", rate, source)
	}
}

func TestMonthlyAverageIsCached(t *testing.T) {
	ctx := context.Background()
	m := MustParseMonth("2026-01")

	provider := &stubProvider{daily: map[Date]map[string]float64{
		m.First(): {"TRY": 38, "RUB": 95},
	}}
	state := NewState()
	r := NewRateResolver(state, provider)

	if _, _, err := r.Resolve(ctx, "TRY", m); err != nil {
		t.Fatal(err)
	}

	// New provider data must not leak into the cached average until an
	// explicit refresh.
	provider.daily[m.First()] = map[string]float64{"TRY": 80, "RUB": 95}
	rate, source, err := r.Resolve(ctx, "TRY", m)
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(dec("38")) || source != RateSourceAverage {
		t.Errorf("resolve = %s (%s), want cached 38 (monthly-average)", rate, source)
	}

	if err := r.RefreshMonthlyAverage(ctx, m); err != nil {
		t.Fatal(err)
	}
	if rate, _, _ := r.Resolve(ctx, "TRY", m); !rate.Equal(dec("80")) {
		t.Errorf("after refresh, resolve = %s, want 80", rate)
	}
}

func TestRefreshMonthlyAverageNoCompleteDays(t *testing.T) {
	ctx := context.Background()
	m := MustParseMonth("2026-01")

	// Every day is missing at least one tracked currency.
	provider := &stubProvider{daily: map[Date]map[string]float64{
		m.First():        {"TRY": 38},
		m.First().Add(1): {"RUB": 95},
	}}
	state := NewState()
	r := NewRateResolver(state, provider)

	if err := r.RefreshMonthlyAverage(ctx, m); err != nil {
		t.Fatal(err)
	}
	if rec := state.Rates[m]; rec.SampleDayCount != 0 || rec.MonthlyAverage != nil {
		t.Errorf("record = %+v, want absent average", rec)
	}

	// The chain degrades to the fallback.
	rate, source, err := r.Resolve(ctx, "TRY", m)
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(dec("38.5")) || source != RateSourceFallback {
		t.Errorf("resolve = %s (%s), want 38.5 (fallback)", rate, source)
	}
}

func TestRefreshMonthlyAverageRejectsBadValues(t *testing.T) {
	ctx := context.Background()
	m := MustParseMonth("2026-01")

	provider := &stubProvider{daily: map[Date]map[string]float64{
		m.First():        {"TRY": -1, "RUB": 95}, // negative disqualifies the day
		m.First().Add(1): {"TRY": 40, "RUB": 96},
	}}
	state := NewState()
	r := NewRateResolver(state, provider)

	if err := r.RefreshMonthlyAverage(ctx, m); err != nil {
		t.Fatal(err)
	}
	rec := state.Rates[m]
	if rec.SampleDayCount != 1 {
		t.Errorf("SampleDayCount = %d, want 1", rec.SampleDayCount)
	}
	if got := rec.MonthlyAverage["TRY"]; !got.Equal(dec("40")) {
		t.Errorf("TRY average = %s, want 40", got)
	}
}

func TestResolveForDate(t *testing.T) {
	ctx := context.Background()
	day := MustParseDate("2026-01-15")

	provider := &stubProvider{daily: map[Date]map[string]float64{
		day: {"TRY": 40, "RUB": 96},
	}}
	state := NewState()
	r := NewRateResolver(state, provider)

	// The provider's exact-day quote wins.
	rate, source, err := r.ResolveForDate(ctx, "TRY", day)
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(dec("40")) || source != RateSourceDaily {
		t.Errorf("resolve = %s (%s), want 40 (daily)", rate, source)
	}

	// A day the provider cannot serve degrades to the month's average,
	// computed from the one day it does have.
	rate, source, err = r.ResolveForDate(ctx, "TRY", day.Add(1))
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(dec("40")) || source != RateSourceAverage {
		t.Errorf("resolve = %s (%s), want 40 (monthly-average)", rate, source)
	}
}

func TestResolveForDateFallback(t *testing.T) {
	ctx := context.Background()
	state := NewState()

	// No provider at all: only the fallback can answer.
	r := NewRateResolver(state, nil)
	rate, source, err := r.ResolveForDate(ctx, "RUB", MustParseDate("2026-01-15"))
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(dec("96.0")) || source != RateSourceFallback {
		t.Errorf("resolve = %s (%s), want 96 (fallback)", rate, source)
	}

	if _, _, err := r.ResolveForDate(ctx, "EUR", MustParseDate("2026-01-15")); !errors.Is(err, ErrRateUnavailable) {
		t.Errorf("resolve EUR err = %v, want ErrRateUnavailable", err)
	}
}

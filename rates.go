package budget

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateSource identifies which precedence tier supplied a conversion rate.
// It is stored on every transaction snapshot for auditing.
type RateSource int

const (
	// RateSourceBase means the amount was already in the base currency (rate 1).
	RateSourceBase RateSource = iota
	// RateSourceDaily means the rate came from the provider for the exact day.
	RateSourceDaily
	// RateSourceOverride means a manual per-month override supplied the rate.
	RateSourceOverride
	// RateSourceAverage means the computed monthly average supplied the rate.
	RateSourceAverage
	// RateSourceFallback means the static fallback table supplied the rate.
	RateSourceFallback
)

func (s RateSource) String() string {
	switch s {
	case RateSourceBase:
		return "base"
	case RateSourceDaily:
		return "daily"
	case RateSourceOverride:
		return "override"
	case RateSourceAverage:
		return "average"
	case RateSourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// ParseRateSource parses a string into a RateSource.
func ParseRateSource(s string) (RateSource, error) {
	switch s {
	case "base":
		return RateSourceBase, nil
	case "daily":
		return RateSourceDaily, nil
	case "override":
		return RateSourceOverride, nil
	case "average":
		return RateSourceAverage, nil
	case "fallback":
		return RateSourceFallback, nil
	default:
		return 0, fmt.Errorf("unknown rate source: %q", s)
	}
}

// MarshalText persists the source under its symbolic name.
func (s RateSource) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses the symbolic name back.
func (s *RateSource) UnmarshalText(text []byte) error {
	parsed, err := ParseRateSource(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// RateRecord holds the per-month rate state for all tracked currencies:
// manual overrides entered by the user and the cached monthly average
// computed from provider data.
//
// Rates follow the "1 base unit = rate units of currency" convention.
type RateRecord struct {
	// Override maps currency to a manually entered rate. An override, when
	// present and positive, always wins over any computed value.
	Override map[string]decimal.Decimal `json:"override,omitempty"`

	// MonthlyAverage maps currency to the average of provider daily rates
	// over the month's qualifying days.
	MonthlyAverage map[string]decimal.Decimal `json:"monthlyAverage,omitempty"`

	// SampleDayCount is the number of qualifying days the average was
	// computed from. An average with zero qualifying days is absent.
	SampleDayCount int `json:"sampleDayCount,omitempty"`
}

// overrideFor returns the override rate for the currency, if usable.
func (r *RateRecord) overrideFor(currency string) (decimal.Decimal, bool) {
	if r == nil {
		return decimal.Zero, false
	}
	rate, ok := r.Override[currency]
	return rate, ok && rate.IsPositive()
}

// averageFor returns the cached monthly average for the currency, if it was
// computed from at least one qualifying day.
func (r *RateRecord) averageFor(currency string) (decimal.Decimal, bool) {
	if r == nil || r.SampleDayCount < 1 {
		return decimal.Zero, false
	}
	rate, ok := r.MonthlyAverage[currency]
	return rate, ok && rate.IsPositive()
}

package budget

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRateSourceRoundTrip(t *testing.T) {
	for _, s := range []RateSource{RateSourceBase, RateSourceDaily, RateSourceOverride, RateSourceAverage, RateSourceFallback} {
		got, err := ParseRateSource(s.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Errorf("round trip %s = %s", s, got)
		}
	}
	if _, err := ParseRateSource("guess"); err == nil {
		t.Error("unknown source should fail")
	}
}

func TestRateRecordNilSafety(t *testing.T) {
	var rec *RateRecord
	if _, ok := rec.overrideFor("TRY"); ok {
		t.Error("nil record answered an override")
	}
	if _, ok := rec.averageFor("TRY"); ok {
		t.Error("nil record answered an average")
	}

	// A cached average with zero qualifying days is absent.
	rec = &RateRecord{MonthlyAverage: map[string]decimal.Decimal{"TRY": dec("40")}}
	if _, ok := rec.averageFor("TRY"); ok {
		t.Error("zero-sample average should be absent")
	}
	rec.SampleDayCount = 1
	if rate, ok := rec.averageFor("TRY"); !ok || !rate.Equal(dec("40")) {
		t.Errorf("average = %s (%v), want 40", rate, ok)
	}
}

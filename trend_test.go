package budget

import (
	"errors"
	"testing"
)

func TestBuildTrend(t *testing.T) {
	svc := NewService(NewState(), nil)
	seedSheet(svc, "2026-01", "1000")
	// February has no record and must be omitted, not zero-filled.
	seedSheet(svc, "2026-03", "1500")

	series, err := svc.BuildTrend("2026-01", "2026-04")
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 2 {
		t.Fatalf("series length = %d, want 2: %+v", len(series), series)
	}
	if series[0].Month != MustParseMonth("2026-01") || !series[0].ActualEquity.Equal(dec("1000")) {
		t.Errorf("series[0] = %+v", series[0])
	}
	if series[1].Month != MustParseMonth("2026-03") || !series[1].ActualEquity.Equal(dec("1500")) {
		t.Errorf("series[1] = %+v", series[1])
	}
	if !series[0].PlanEquity.Equal(dec("2000")) {
		t.Errorf("plan equity = %s, want 2000", series[0].PlanEquity)
	}
}

func TestBuildTrendEmptyAndInverted(t *testing.T) {
	svc := NewService(NewState(), nil)

	series, err := svc.BuildTrend("2026-01", "2026-04")
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 0 {
		t.Errorf("series over empty store = %+v, want none", series)
	}

	// An inverted range is a valid, empty query.
	series, err = svc.BuildTrend("2026-04", "2026-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 0 {
		t.Errorf("inverted range = %+v, want none", series)
	}
}

func TestBuildTrendRejectsMalformedBounds(t *testing.T) {
	svc := NewService(NewState(), nil)

	for _, bounds := range [][2]string{
		{"2026-1", "2026-04"},
		{"2026-01", "garbage"},
		{"", "2026-04"},
	} {
		if _, err := svc.BuildTrend(bounds[0], bounds[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("BuildTrend(%q, %q) err = %v, want ErrInvalidRange", bounds[0], bounds[1], err)
		}
	}
}

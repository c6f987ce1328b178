package budget

import (
	"context"
	"errors"
	"testing"
)

func TestChainProvider(t *testing.T) {
	ctx := context.Background()
	day := MustParseDate("2026-01-15")

	broken := &stubProvider{err: errors.New("service down")}
	working := &stubProvider{daily: map[Date]map[string]float64{
		day: {"TRY": 40},
	}}

	// The first provider that answers wins.
	chain := ChainProvider{broken, working}
	rates, err := chain.DailyRates(ctx, day, []string{"TRY"})
	if err != nil {
		t.Fatal(err)
	}
	if rates["TRY"] != 40 {
		t.Errorf("rates = %v, want TRY 40", rates)
	}

	// All providers failing joins the errors.
	chain = ChainProvider{broken, broken}
	if _, err := chain.DailyRates(ctx, day, []string{"TRY"}); err == nil {
		t.Fatal("want an error when every provider fails")
	}

	// An empty chain fails too, without panicking.
	if _, err := ChainProvider(nil).DailyRates(ctx, day, []string{"TRY"}); err == nil {
		t.Fatal("want an error from an empty chain")
	}
}

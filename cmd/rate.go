package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct {
	month    string
	currency string
	rate     string
	clear    bool
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show or override a month's exchange rates" }
func (*rateCmd) Usage() string {
	return `bp rate [-m <month>] [-c <currency> -r <rate> | -c <currency> -clear]

  Without -c, shows the resolved rate of every tracked currency for the
  month, with its source. With -c and -r, stores a manual override that
  takes precedence over averages and fallbacks. With -clear, removes the
  override. Transactions already recorded keep their snapshot.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
	f.StringVar(&c.currency, "c", "", "Currency code to override.")
	f.StringVar(&c.rate, "r", "", "Units of the currency per one base unit.")
	f.BoolVar(&c.clear, "clear", false, "Remove the override for the currency.")
}

func (c *rateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, store, err := OpenService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	m, err := monthFlag(svc, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.currency == "" {
		base := svc.Resolver().Base()
		for _, cur := range svc.State().TrackedCurrencies() {
			rate, source, err := svc.Resolver().Resolve(ctx, cur, m)
			if err != nil {
				fmt.Printf("%s %s: unavailable (%v)\n", m, cur, err)
				continue
			}
			fmt.Printf("%s 1 %s = %s %s (%s)\n", m, base, rate, cur, source)
		}
		return subcommands.ExitSuccess
	}

	rate := decimal.Zero
	if !c.clear {
		rate, err = decimal.NewFromString(c.rate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing rate %q: %v\n", c.rate, err)
			return subcommands.ExitUsageError
		}
	}
	if err := svc.SetOverride(m, c.currency, rate); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting override: %v\n", err)
		return subcommands.ExitFailure
	}
	return save(store, svc)
}

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	month string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "fetch daily rates and refresh the monthly averages" }
func (*updateCmd) Usage() string {
	return `bp update [-m <month>]

  Fetches the month's daily rates from the providers and caches the
  recomputed monthly averages in the state file.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, store, err := OpenService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	m, err := monthFlag(svc, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := svc.RefreshMonthlyAverage(ctx, m); err != nil {
		fmt.Fprintf(os.Stderr, "Error refreshing averages: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := svc.State().Rates[m]
	if rec == nil || rec.SampleDayCount == 0 {
		fmt.Printf("No complete daily samples for %s yet.\n", m)
	} else {
		fmt.Printf("Averaged %d days for %s.\n", rec.SampleDayCount, m)
	}
	return save(store, svc)
}

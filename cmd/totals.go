package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fkey7/budget/renderer"
	"github.com/google/subcommands"
)

// totalsCmd holds the flags for the 'totals' subcommand.
type totalsCmd struct {
	month string
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "display a month's balance sheet with momentum" }
func (*totalsCmd) Usage() string {
	return `bp totals [-m <month>]

  Displays the month's balance sheet by group, equity, the plan deltas,
  and the month-over-month and year-to-date changes.
`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
}

func (c *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, _, err := OpenService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	m, err := monthFlag(svc, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	totals := svc.Totals(m)
	mom := svc.MonthOverMonth(m)
	ytd := svc.YearToDate(m)

	printMarkdown(renderer.TotalsMarkdown(totals, mom, ytd, svc.State().BaseCurrency))
	return subcommands.ExitSuccess
}

// trendCmd holds the flags for the 'trend' subcommand.
type trendCmd struct {
	from string
	to   string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display the equity trend over a month range" }
func (*trendCmd) Usage() string {
	return `bp trend -s <month> -e <month>

  Displays actual versus planned equity for every month in the range
  that has a balance-sheet record.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "s", "", "Start month (YYYY-MM).")
	f.StringVar(&c.to, "e", "", "End month (YYYY-MM).")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, _, err := OpenService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	series, err := svc.BuildTrend(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.TrendMarkdown(series, svc.State().BaseCurrency))
	return subcommands.ExitSuccess
}

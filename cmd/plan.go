package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fkey7/budget"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// planCmd holds the flags for the 'plan' subcommand.
type planCmd struct {
	month       string
	assets      string
	liabilities string
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "set a month's balance-sheet targets" }
func (*planCmd) Usage() string {
	return `bp plan -assets <amount> -liabilities <amount> [-m <month>]

  Sets the planned assets and liabilities for a month, in the base
  currency. Planned equity is their difference.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
	f.StringVar(&c.assets, "assets", "0", "Planned total assets.")
	f.StringVar(&c.liabilities, "liabilities", "0", "Planned total liabilities.")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	assets, err := decimal.NewFromString(c.assets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing assets %q: %v\n", c.assets, err)
		return subcommands.ExitUsageError
	}
	liabilities, err := decimal.NewFromString(c.liabilities)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing liabilities %q: %v\n", c.liabilities, err)
		return subcommands.ExitUsageError
	}

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

	svc.SetBalancePlan(m, budget.Plan{
		Assets:      assets,
		Liabilities: liabilities,
		Equity:      assets.Sub(liabilities),
	})
	return save(store, svc)
}

// copyCmd holds the flags for the 'copy' subcommand.
type copyCmd struct {
	from  string
	month string
	force bool
}

func (*copyCmd) Name() string     { return "copy" }
func (*copyCmd) Synopsis() string { return "copy another month's balance sheet into a month" }
func (*copyCmd) Usage() string {
	return `bp copy -from <month> [-m <month>] [-force]

  Clones the source month's items and plan into the target month,
  replacing its contents. Refuses to overwrite a month that already has
  items unless -force is given.
`
}

func (c *copyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source month (YYYY-MM).")
	f.StringVar(&c.month, "m", "", "Target month (YYYY-MM). Defaults to the selected month.")
	f.BoolVar(&c.force, "force", false, "Overwrite a non-empty target month.")
}

func (c *copyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	source, err := budget.ParseMonth(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing source month: %v\n", err)
		return subcommands.ExitUsageError
	}

	svc, store, err := OpenService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	target, err := monthFlag(svc, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	if svc.HasAnyItems(target) && !c.force {
		fmt.Fprintf(os.Stderr, "Error: %s already has items, use -force to overwrite.\n", target)
		return subcommands.ExitFailure
	}

	if err := svc.CopyFromMonth(source, target); err != nil {
		fmt.Fprintf(os.Stderr, "Error copying: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Copied balance sheet of %s into %s\n", source, target)
	return save(store, svc)
}

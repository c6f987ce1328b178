package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fkey7/budget"
	"github.com/fkey7/budget/renderer"
	"github.com/google/subcommands"
)

// transactionsCmd holds the flags for the 'transactions' subcommand.
type transactionsCmd struct {
	month string
	all   bool
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list transactions" }
func (*transactionsCmd) Usage() string {
	return `bp transactions [-m <month>] [-all]

  Lists the selected month's transactions, newest first. With -all, lists
  the whole ledger.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to list (YYYY-MM). Defaults to the selected month.")
	f.BoolVar(&c.all, "all", false, "List the whole ledger instead of one month.")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, _, err := OpenService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var txs []budget.Transaction
	if c.all {
		for tx := range svc.State().Transactions.All() {
			txs = append(txs, tx)
		}
	} else {
		m, err := monthFlag(svc, c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
		for tx := range svc.State().Transactions.InMonth(m) {
			txs = append(txs, tx)
		}
	}

	printMarkdown(renderer.TransactionsMarkdown(txs, svc.State().BaseCurrency))
	return subcommands.ExitSuccess
}

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

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	kind     string
	date     string
	amount   string
	currency string
	category string
	note     string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record an income or expense transaction" }
func (*txCmd) Usage() string {
	return `bp tx -t <income|expense> -a <amount> [-c <currency>] [-d <date>] [-cat <category>] [-n <note>]

  Records a transaction. The exchange rate in effect on the transaction
  date is resolved once and stored with the transaction for good.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "expense", "Transaction type (income, expense).")
	f.StringVar(&c.date, "d", budget.Today().String(), "Transaction date. See the user manual for supported date formats.")
	f.StringVar(&c.amount, "a", "", "Amount, in the transaction currency.")
	f.StringVar(&c.currency, "c", "", "Transaction currency. Defaults to the base currency.")
	f.StringVar(&c.category, "cat", "", "Category name, the join key for automation.")
	f.StringVar(&c.note, "n", "", "Free-form note.")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	day, err := budget.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	svc, store, err := OpenService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	currency := c.currency
	if currency == "" {
		currency = svc.State().BaseCurrency
	}

	tx, err := svc.RecordTransaction(ctx, budget.Kind(c.kind), day, amount, currency, c.category, c.note)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording transaction: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s %s on %s (rate source: %s)\n", tx.Kind, tx.Amount, tx.Currency, tx.Date, tx.Source)
	return save(store, svc)
}

// rmTxCmd holds the flags for the 'rm-tx' subcommand.
type rmTxCmd struct{}

func (*rmTxCmd) Name() string     { return "rm-tx" }
func (*rmTxCmd) Synopsis() string { return "delete a transaction from the ledger" }
func (*rmTxCmd) Usage() string {
	return `bp rm-tx <id>

  Deletes a transaction. Balance-sheet movements the transaction caused
  through automation are not reversed.
`
}

func (c *rmTxCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id.")
		return subcommands.ExitUsageError
	}

	svc, store, err := OpenService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := svc.DeleteTransaction(f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	return save(store, svc)
}

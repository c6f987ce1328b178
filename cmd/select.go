package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fkey7/budget"
	"github.com/google/subcommands"
)

// selectCmd holds the flags for the 'select' subcommand.
type selectCmd struct{}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "show or change the selected month" }
func (*selectCmd) Usage() string {
	return `bp select [<month>]

  Without an argument, prints the selected month. With one, makes it the
  default month for every command that takes -m.
`
}

func (c *selectCmd) SetFlags(f *flag.FlagSet) {}

func (c *selectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, store, err := OpenService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		fmt.Println(svc.Selected())
		return subcommands.ExitSuccess
	}

	m, err := budget.ParseMonth(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	svc.SelectMonth(m)
	return save(store, svc)
}

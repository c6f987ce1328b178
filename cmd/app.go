// Package cmd implements the CLI application to manage a personal budget.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/fkey7/budget"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&selectCmd{}, "app")
	c.Register(&topicCmd{}, "app")

	c.Register(&txCmd{}, "transactions")
	c.Register(&transactionsCmd{}, "transactions")
	c.Register(&rmTxCmd{}, "transactions")

	c.Register(&addCategoryCmd{}, "categories")
	c.Register(&renameCategoryCmd{}, "categories")
	c.Register(&rmCategoryCmd{}, "categories")
	c.Register(&categoryPlanCmd{}, "categories")

	c.Register(&addItemCmd{}, "balance")
	c.Register(&updateItemCmd{}, "balance")
	c.Register(&rmItemCmd{}, "balance")
	c.Register(&planCmd{}, "balance")
	c.Register(&copyCmd{}, "balance")

	c.Register(&rateCmd{}, "rates")
	c.Register(&updateCmd{}, "rates")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&totalsCmd{}, "reports")
	c.Register(&trendCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateFile = flag.String("f", "budget.json", "Path to the budget state file (JSON format)")

// OpenService loads the state file and wraps it in a service backed by the
// default rate providers. It returns the store so the caller can save back.
func OpenService() (*budget.Service, budget.StateStore, error) {
	store := budget.NewFileStore(*stateFile)
	state, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	state.EnsureDefaultCategories()
	svc := budget.NewService(state, budget.DefaultProviders(state.BaseCurrency))
	return svc, store, nil
}

// monthFlag resolves a -m flag value: empty means the selected month.
func monthFlag(svc *budget.Service, value string) (budget.Month, error) {
	if value == "" {
		return svc.Selected(), nil
	}
	return budget.ParseMonth(value)
}

// save persists the state, reporting the exit status for Execute.
func save(store budget.StateStore, svc *budget.Service) subcommands.ExitStatus {
	if err := store.Save(svc.State()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving state: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

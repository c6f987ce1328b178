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

// addItemCmd holds the flags for the 'add-item' subcommand.
type addItemCmd struct {
	month  string
	group  string
	name   string
	amount string
	note   string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add a balance-sheet item to a month" }
func (*addItemCmd) Usage() string {
	return `bp add-item -g <group> -n <name> -a <amount> [-m <month>] [-note <note>]

  Adds an item to one of the fixed groups (cash, investments,
  receivables, credits, cards, debts). Amounts are in the base currency.
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
	f.StringVar(&c.group, "g", "", "Group, bare or qualified (cash or assets.cash).")
	f.StringVar(&c.name, "n", "", "Item name.")
	f.StringVar(&c.amount, "a", "", "Amount, in the base currency.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := budget.ParseGroup(c.group)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing group: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
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

	item, err := svc.AddBalanceItem(m, g, c.name, amount, c.note)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding item: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %q to %s of %s (id %s)\n", item.Name, g, m, item.ID)
	return save(store, svc)
}

// updateItemCmd holds the flags for the 'update-item' subcommand.
type updateItemCmd struct {
	month  string
	group  string
	id     string
	name   string
	amount string
	note   string
}

func (*updateItemCmd) Name() string     { return "update-item" }
func (*updateItemCmd) Synopsis() string { return "update a balance-sheet item" }
func (*updateItemCmd) Usage() string {
	return `bp update-item -g <group> -id <id> [-n <name>] [-a <amount>] [-note <note>] [-m <month>]

  Updates the given fields of an item; omitted fields are left alone.
`
}

func (c *updateItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
	f.StringVar(&c.group, "g", "", "Group holding the item.")
	f.StringVar(&c.id, "id", "", "Item id.")
	f.StringVar(&c.name, "n", "", "New item name.")
	f.StringVar(&c.amount, "a", "", "New amount, in the base currency.")
	f.StringVar(&c.note, "note", "", "New note.")
}

func (c *updateItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := budget.ParseGroup(c.group)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing group: %v\n", err)
		return subcommands.ExitUsageError
	}

	// Only flags the user actually set become part of the patch.
	var patch budget.ItemPatch
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "n":
			patch.Name = &c.name
		case "a":
			amount, err := decimal.NewFromString(c.amount)
			if err == nil {
				patch.BaseAmount = &amount
			}
		case "note":
			patch.Note = &c.note
		}
	})
	if c.amount != "" && patch.BaseAmount == nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q\n", c.amount)
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

	if err := svc.UpdateBalanceItem(m, g, c.id, patch); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating item: %v\n", err)
		return subcommands.ExitFailure
	}
	return save(store, svc)
}

// rmItemCmd holds the flags for the 'rm-item' subcommand.
type rmItemCmd struct {
	month string
	group string
	id    string
}

func (*rmItemCmd) Name() string     { return "rm-item" }
func (*rmItemCmd) Synopsis() string { return "delete a balance-sheet item" }
func (*rmItemCmd) Usage() string {
	return `bp rm-item -g <group> -id <id> [-m <month>]

  Deletes an item from its group. Other months are unaffected.
`
}

func (c *rmItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
	f.StringVar(&c.group, "g", "", "Group holding the item.")
	f.StringVar(&c.id, "id", "", "Item id.")
}

func (c *rmItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := budget.ParseGroup(c.group)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing group: %v\n", err)
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

	if err := svc.DeleteBalanceItem(m, g, c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting item: %v\n", err)
		return subcommands.ExitFailure
	}
	return save(store, svc)
}

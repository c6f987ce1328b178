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

// addCategoryCmd holds the flags for the 'add-category' subcommand.
type addCategoryCmd struct {
	kind     string
	name     string
	currency string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "add an income or expense plan category" }
func (*addCategoryCmd) Usage() string {
	return `bp add-category -t <income|expense> -n <name> [-c <currency>]

  Adds a plan category. Its name doubles as the automation join key
  against same-named balance items.
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "expense", "Category type (income, expense).")
	f.StringVar(&c.name, "n", "", "Category name.")
	f.StringVar(&c.currency, "c", "", "Plan currency. Defaults to the base currency.")
}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n is required.")
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

	cat, err := svc.AddCategory(budget.Kind(c.kind), c.name, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding category: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s category %q (id %s)\n", cat.Kind, cat.Name, cat.ID)
	return save(store, svc)
}

// renameCategoryCmd holds the flags for the 'rename-category' subcommand.
type renameCategoryCmd struct {
	id   string
	name string
}

func (*renameCategoryCmd) Name() string     { return "rename-category" }
func (*renameCategoryCmd) Synopsis() string { return "rename a plan category" }
func (*renameCategoryCmd) Usage() string {
	return `bp rename-category -id <id> -n <name>

  Renames a category. Past transactions keep the old name, so the
  automation join moves to the new name from here on.
`
}

func (c *renameCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Category id.")
	f.StringVar(&c.name, "n", "", "New category name.")
}

func (c *renameCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -id and -n are required.")
		return subcommands.ExitUsageError
	}

	svc, store, err := OpenService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := svc.RenameCategory(c.id, c.name); err != nil {
		fmt.Fprintf(os.Stderr, "Error renaming category: %v\n", err)
		return subcommands.ExitFailure
	}
	return save(store, svc)
}

// rmCategoryCmd holds the flags for the 'rm-category' subcommand.
type rmCategoryCmd struct {
	id string
}

func (*rmCategoryCmd) Name() string     { return "rm-category" }
func (*rmCategoryCmd) Synopsis() string { return "delete a plan category" }
func (*rmCategoryCmd) Usage() string {
	return `bp rm-category -id <id>

  Deletes a category. Transactions that referenced it keep their
  category name.
`
}

func (c *rmCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Category id.")
}

func (c *rmCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	svc, store, err := OpenService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := svc.DeleteCategory(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting category: %v\n", err)
		return subcommands.ExitFailure
	}
	return save(store, svc)
}

// categoryPlanCmd holds the flags for the 'category-plan' subcommand.
type categoryPlanCmd struct {
	id     string
	month  string
	amount string
	yearly bool
}

func (*categoryPlanCmd) Name() string     { return "category-plan" }
func (*categoryPlanCmd) Synopsis() string { return "set a category's planned amount for a month or year" }
func (*categoryPlanCmd) Usage() string {
	return `bp category-plan -id <id> -a <amount> [-m <month> | -yearly]

  Sets the planned amount, in the category's own currency. With -yearly
  the amount covers the whole year; months without their own plan use
  one twelfth of it. Plans are forecasts: reports convert them with the
  month's floating rate.
`
}

func (c *categoryPlanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Category id.")
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
	f.StringVar(&c.amount, "a", "", "Planned amount, in the category currency.")
	f.BoolVar(&c.yearly, "yearly", false, "Set the plan for the whole year instead of a month.")
}

func (c *categoryPlanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
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

	if c.yearly {
		if c.month != "" {
			fmt.Fprintln(os.Stderr, "Error: -m and -yearly are mutually exclusive.")
			return subcommands.ExitUsageError
		}
		if err := svc.SetCategoryYearlyPlan(c.id, amount); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting yearly plan: %v\n", err)
			return subcommands.ExitFailure
		}
		return save(store, svc)
	}

	m, err := monthFlag(svc, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := svc.SetCategoryPlan(c.id, m, amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting plan: %v\n", err)
		return subcommands.ExitFailure
	}
	return save(store, svc)
}

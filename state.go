package budget

import (
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// SchemaVersion is the current version of the persisted state schema.
// Version 1 is the loose export schema of the original web app; migration
// happens once at the StateStore boundary, never inside core logic.
const SchemaVersion = 2

// State is the whole application state as one explicit value: plan
// categories, the transaction ledger, per-month balance sheets, and rate
// records. Every core operation receives it through the owning Service;
// there is no module-level state anywhere.
type State struct {
	Version      int      `json:"version"`
	App          AppState `json:"app"`
	BaseCurrency string   `json:"baseCurrency"`

	Categories     []Category `json:"categories"`
	NextCategoryID int        `json:"nextCategoryId"`

	Transactions Ledger `json:"transactions"`

	// Rates holds per-month overrides and cached averages.
	Rates map[Month]*RateRecord `json:"rates"`
	// Fallback is the static last-resort rate table. Its keys define the
	// set of tracked non-base currencies.
	Fallback map[string]decimal.Decimal `json:"fallback"`

	BalanceSheets BalanceBook `json:"balanceSheets"`
}

// AppState carries the user's current month selection, used as the default
// month by the CLI boundary.
type AppState struct {
	Selected Month `json:"selected"`
}

// NewState returns an empty state with the original app's defaults: USD
// base, TRY and RUB tracked, and the starter plan categories.
func NewState() *State {
	s := &State{
		Version:        SchemaVersion,
		App:            AppState{Selected: ThisMonth()},
		BaseCurrency:   "USD",
		NextCategoryID: 1,
		Rates:          make(map[Month]*RateRecord),
		Fallback: map[string]decimal.Decimal{
			"TRY": decimal.RequireFromString("38.5"),
			"RUB": decimal.RequireFromString("96.0"),
		},
		BalanceSheets: make(BalanceBook),
	}
	s.EnsureDefaultCategories()
	return s
}

// EnsureDefaultCategories seeds the starter categories when the plan is
// completely empty.
func (s *State) EnsureDefaultCategories() {
	if len(s.Categories) > 0 {
		return
	}
	s.AddCategory(Income, "Maaş", s.BaseCurrency)
	s.AddCategory(Expense, "Kira", s.BaseCurrency)
	s.AddCategory(Expense, "Market", s.BaseCurrency)
}

// TrackedCurrencies returns the sorted set of non-base currencies the rate
// engine follows, defined by the fallback table's keys.
func (s *State) TrackedCurrencies() []string {
	currencies := make([]string, 0, len(s.Fallback))
	for cur := range s.Fallback {
		if cur != s.BaseCurrency {
			currencies = append(currencies, cur)
		}
	}
	sort.Strings(currencies)
	return currencies
}

// AddCategory appends a plan category and returns it.
func (s *State) AddCategory(kind Kind, name, currency string) Category {
	cat := Category{
		ID:       strconv.Itoa(s.NextCategoryID),
		Kind:     kind,
		Name:     name,
		Currency: currency,
	}
	s.NextCategoryID++
	s.Categories = append(s.Categories, cat)
	return cat
}

// CategoryByID returns a pointer to the category with the given id.
func (s *State) CategoryByID(id string) (*Category, error) {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
}

// DeleteCategory removes the category with the given id. Transactions keep
// referencing the category by name only, so history is unaffected.
func (s *State) DeleteCategory(id string) error {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			s.Categories = slices.Delete(s.Categories, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, id)
}

// CategoriesOf returns the categories of one kind, in plan order.
func (s *State) CategoriesOf(kind Kind) []Category {
	var out []Category
	for _, c := range s.Categories {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

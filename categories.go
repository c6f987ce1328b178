package budget

import (
	"github.com/shopspring/decimal"
)

// Kind discriminates money coming in from money going out, for categories
// and transactions alike.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Valid reports whether the kind is one of the two known values.
func (k Kind) Valid() bool { return k == Income || k == Expense }

// Category is a named income or expense bucket of the plan. Transactions
// reference categories by name, not by id: the name is the loose join key
// the reconciliation automation matches balance items against.
type Category struct {
	ID       string `json:"id"`
	Kind     Kind   `json:"kind"`
	Name     string `json:"name"`
	Currency string `json:"currency"`

	// YearlyPlan is the planned amount for a whole year, in the category's
	// currency. Months without their own figure plan one twelfth of it.
	YearlyPlan decimal.Decimal `json:"yearlyPlan"`

	// MonthlyPlans is keyed by two-digit month ("01".."12"), in the
	// category's currency. Plan figures are forecasts: they are converted
	// with the floating monthly rate, never snapshotted.
	MonthlyPlans map[string]decimal.Decimal `json:"monthlyPlans,omitempty"`
}

// PlanFor returns the planned amount for the given month: the month's own
// figure when one is stored, even zero, otherwise one twelfth of the yearly
// plan.
func (c *Category) PlanFor(m Month) decimal.Decimal {
	if plan, ok := c.MonthlyPlans[m.Key()]; ok {
		return plan
	}
	if c.YearlyPlan.IsPositive() {
		return c.YearlyPlan.Div(decimal.NewFromInt(12))
	}
	return decimal.Zero
}

// SetPlanFor stores the planned amount for the given month.
func (c *Category) SetPlanFor(m Month, amount decimal.Decimal) {
	if c.MonthlyPlans == nil {
		c.MonthlyPlans = make(map[string]decimal.Decimal)
	}
	c.MonthlyPlans[m.Key()] = amount
}

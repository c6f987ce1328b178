package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Totals is the per-month balance-sheet report: actual figures, the
// manually entered plan, and actual-minus-plan deltas. Equity is derived,
// never read from storage.
type Totals struct {
	Month Month

	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Equity      decimal.Decimal

	Groups map[Group]decimal.Decimal

	PlanAssets      decimal.Decimal
	PlanLiabilities decimal.Decimal
	PlanEquity      decimal.Decimal

	DeltaAssets      decimal.Decimal
	DeltaLiabilities decimal.Decimal
	DeltaEquity      decimal.Decimal
}

// Deltas carries the three figure differences between two months.
type Deltas struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Equity      decimal.Decimal
}

// YearToDate is the delta report against the year's base month.
type YearToDate struct {
	Deltas

	// BaseMonth is January of the report's year, or the earliest month of
	// that year holding any balance-sheet record. HasBase is false when no
	// month of the year has data; the deltas are then all zero.
	BaseMonth Month
	HasBase   bool
}

// MonthlySummary compares the month's plan against recorded actuals, all in
// the base currency. Plan figures are converted with the floating monthly
// rate; actuals sum the transactions' locked snapshots. The two moving
// differently is intentional: forecasts follow revised rate estimates,
// history does not.
type MonthlySummary struct {
	Month Month

	PlanIncome  decimal.Decimal
	PlanExpense decimal.Decimal

	ActualIncome  decimal.Decimal
	ActualExpense decimal.Decimal

	NetPlan   decimal.Decimal
	NetActual decimal.Decimal
}

// Totals computes the month's balance-sheet report. A month with no record
// reports all zeros; it is not materialized by reading.
func (s *Service) Totals(m Month) Totals {
	t := Totals{Month: m, Groups: make(map[Group]decimal.Decimal)}
	bs, ok := s.state.BalanceSheets[m]
	if !ok {
		return t
	}
	for _, g := range append(append([]Group{}, AssetGroupOrder...), LiabilityGroupOrder...) {
		t.Groups[g] = bs.SumGroup(g)
	}
	t.Assets = bs.SumSide(Assets)
	t.Liabilities = bs.SumSide(Liabilities)
	t.Equity = t.Assets.Sub(t.Liabilities)
	t.PlanAssets = bs.Plan.Assets
	t.PlanLiabilities = bs.Plan.Liabilities
	t.PlanEquity = bs.Plan.Equity
	t.DeltaAssets = t.Assets.Sub(t.PlanAssets)
	t.DeltaLiabilities = t.Liabilities.Sub(t.PlanLiabilities)
	t.DeltaEquity = t.Equity.Sub(t.PlanEquity)
	return t
}

// MonthOverMonth reports the figure changes against the calendar-previous
// month. A previous month with no data yields zero deltas, never an error.
func (s *Service) MonthOverMonth(m Month) Deltas {
	prev := m.Prev()
	if !s.state.BalanceSheets.Has(prev) {
		return Deltas{}
	}
	cur, old := s.Totals(m), s.Totals(prev)
	return Deltas{
		Assets:      cur.Assets.Sub(old.Assets),
		Liabilities: cur.Liabilities.Sub(old.Liabilities),
		Equity:      cur.Equity.Sub(old.Equity),
	}
}

// YearToDate reports the figure changes against the year's base month:
// January when it has data, otherwise the earliest month of the year with
// any record. With no data anywhere in the year the deltas are zero and
// the base month is reported absent.
func (s *Service) YearToDate(m Month) YearToDate {
	var ytd YearToDate
	for base := range m.January().Months(NewMonth(m.Year(), 12)) {
		if s.state.BalanceSheets.Has(base) {
			ytd.BaseMonth, ytd.HasBase = base, true
			break
		}
	}
	if !ytd.HasBase {
		return ytd
	}
	cur, old := s.Totals(m), s.Totals(ytd.BaseMonth)
	ytd.Assets = cur.Assets.Sub(old.Assets)
	ytd.Liabilities = cur.Liabilities.Sub(old.Liabilities)
	ytd.Equity = cur.Equity.Sub(old.Equity)
	return ytd
}

// MonthlySummary computes the plan-versus-actual report for the month. It
// fails only when a plan category's currency cannot be resolved through any
// precedence tier.
func (s *Service) MonthlySummary(ctx context.Context, m Month) (MonthlySummary, error) {
	sum := MonthlySummary{Month: m}

	planSum := func(kind Kind) (decimal.Decimal, error) {
		total := decimal.Zero
		for _, cat := range s.state.CategoriesOf(kind) {
			plan := cat.PlanFor(m)
			if !plan.IsPositive() {
				continue
			}
			rate, _, err := s.resolver.Resolve(ctx, cat.Currency, m)
			if err != nil {
				return decimal.Zero, fmt.Errorf("plan for category %q: %w", cat.Name, err)
			}
			total = total.Add(plan.Div(rate))
		}
		return total, nil
	}

	var err error
	if sum.PlanIncome, err = planSum(Income); err != nil {
		return MonthlySummary{}, err
	}
	if sum.PlanExpense, err = planSum(Expense); err != nil {
		return MonthlySummary{}, err
	}

	sum.ActualIncome = s.state.Transactions.SumInMonth(m, Income)
	sum.ActualExpense = s.state.Transactions.SumInMonth(m, Expense)
	sum.NetPlan = sum.PlanIncome.Sub(sum.PlanExpense)
	sum.NetActual = sum.ActualIncome.Sub(sum.ActualExpense)
	return sum, nil
}

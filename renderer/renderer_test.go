package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fkey7/budget"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSummaryMarkdown(t *testing.T) {
	out := SummaryMarkdown(budget.MonthlySummary{
		Month:         budget.MustParseMonth("2026-01"),
		PlanIncome:    d("3000"),
		PlanExpense:   d("2000"),
		ActualIncome:  d("2900"),
		ActualExpense: d("1950"),
		NetPlan:       d("1000"),
		NetActual:     d("950"),
	}, "USD")

	for _, want := range []string{"# Monthly Summary 2026-01", "Income", "Expense", "$3,000.00", "+$950.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestTransactionsMarkdownNewestFirst(t *testing.T) {
	txs := []budget.Transaction{
		{Date: budget.MustParseDate("2026-01-05"), Kind: budget.Income, CategoryName: "Maaş", Amount: d("3000"), Currency: "USD", BaseAmount: d("3000")},
		{Date: budget.MustParseDate("2026-01-10"), Kind: budget.Expense, CategoryName: "Kira", Amount: d("4000"), Currency: "TRY", BaseAmount: d("100")},
	}
	out := TransactionsMarkdown(txs, "USD")

	if !strings.Contains(out, "-4000 TRY") || !strings.Contains(out, "+3000 USD") {
		t.Errorf("output is missing signed amounts:\n%s", out)
	}
	if strings.Index(out, "2026-01-10") > strings.Index(out, "2026-01-05") {
		t.Errorf("transactions are not newest first:\n%s", out)
	}

	empty := TransactionsMarkdown(nil, "USD")
	if !strings.Contains(empty, "(no transactions)") {
		t.Errorf("empty ledger output:\n%s", empty)
	}
}

func TestTotalsMarkdown(t *testing.T) {
	totals := budget.Totals{
		Month:       budget.MustParseMonth("2026-01"),
		Assets:      d("1500"),
		Liabilities: d("500"),
		Equity:      d("1000"),
		Groups: map[budget.Group]decimal.Decimal{
			budget.GroupCash:  d("1200"),
			budget.GroupCards: d("500"),
		},
		PlanEquity:  d("1600"),
		DeltaEquity: d("-600"),
	}
	out := TotalsMarkdown(totals, budget.Deltas{Equity: d("300")}, budget.YearToDate{}, "USD")

	for _, want := range []string{"# Balance Sheet 2026-01", "## Assets", "## Liabilities", "## Equity", "Credit Cards", "-$600.00", "+$300.00", "n/a"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}

	// Labels keep left separators, amounts right ones.
	if !strings.Contains(out, ":---") || !strings.Contains(out, "---:") {
		t.Errorf("tables are not aligned:\n%s", out)
	}
}

func TestTrendMarkdown(t *testing.T) {
	series := []budget.TrendPoint{
		{Month: budget.MustParseMonth("2026-01"), ActualEquity: d("1000"), PlanEquity: d("1500")},
		{Month: budget.MustParseMonth("2026-03"), ActualEquity: d("1500"), PlanEquity: d("1500")},
	}
	out := TrendMarkdown(series, "USD")

	for _, want := range []string{"# Equity Trend", "2026-01", "2026-03", "-$500.00", "2 months with data"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}

	empty := TrendMarkdown(nil, "USD")
	if !strings.Contains(empty, "(no months with data in range)") {
		t.Errorf("empty series output:\n%s", empty)
	}
}

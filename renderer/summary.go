package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/fkey7/budget"
)

// SummaryMarkdown renders the month's plan-versus-actual report.
func SummaryMarkdown(s budget.MonthlySummary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monthly Summary %s", s.Month))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"", md.Bold("Plan"), md.Bold("Actual")},
		Rows: [][]string{
			{"Income", money(s.PlanIncome, currency), money(s.ActualIncome, currency)},
			{"Expense", money(s.PlanExpense, currency), money(s.ActualExpense, currency)},
			{"Net", signed(s.NetPlan, currency), signed(s.NetActual, currency)},
		},
	})

	return doc.String()
}

// TransactionsMarkdown renders the latest transactions, newest first.
func TransactionsMarkdown(txs []budget.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("(no transactions)")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Date", "Kind", "Category", "Amount", "Base", "Rate Source"},
	}
	for i := len(txs) - 1; i >= 0; i-- {
		tx := txs[i]
		sign := "+"
		if tx.Kind == budget.Expense {
			sign = "-"
		}
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			string(tx.Kind),
			tx.CategoryName,
			fmt.Sprintf("%s%s %s", sign, tx.Amount, tx.Currency),
			money(tx.BaseAmount, currency),
			tx.Source.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

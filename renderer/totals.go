package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/fkey7/budget"
)

// groupLabels are the display names of the six balance buckets.
var groupLabels = map[budget.Group]string{
	budget.GroupCash:        "Cash",
	budget.GroupInvestments: "Investments",
	budget.GroupReceivables: "Receivables",
	budget.GroupCredits:     "Credits",
	budget.GroupCards:       "Credit Cards",
	budget.GroupDebts:       "Other Debts",
}

// TotalsMarkdown renders the month's balance-sheet report, with the
// month-over-month and year-to-date deltas when present.
func TotalsMarkdown(t budget.Totals, mom budget.Deltas, ytd budget.YearToDate, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Balance Sheet %s", t.Month))

	sideTable := func(title string, total string, order []budget.Group) {
		doc.H2(title)
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{md.Bold(title), md.Bold(total)},
		}
		for _, g := range order {
			table.Rows = append(table.Rows, []string{groupLabels[g], money(t.Groups[g], currency)})
		}
		doc.Table(table)
	}
	sideTable("Assets", money(t.Assets, currency), budget.AssetGroupOrder)
	sideTable("Liabilities", money(t.Liabilities, currency), budget.LiabilityGroupOrder)

	doc.H2("Equity")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"", md.Bold("Actual"), md.Bold("Plan"), md.Bold("Delta")},
		Rows: [][]string{
			{"Assets", money(t.Assets, currency), money(t.PlanAssets, currency), signed(t.DeltaAssets, currency)},
			{"Liabilities", money(t.Liabilities, currency), money(t.PlanLiabilities, currency), signed(t.DeltaLiabilities, currency)},
			{"Equity", money(t.Equity, currency), money(t.PlanEquity, currency), signed(t.DeltaEquity, currency)},
		},
	})

	doc.H2("Momentum")
	ytdLabel := "n/a"
	ytdEquity := "-"
	if ytd.HasBase {
		ytdLabel = fmt.Sprintf("since %s", ytd.BaseMonth)
		ytdEquity = signed(ytd.Equity, currency)
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Equity Change"), ""},
		Rows: [][]string{
			{"vs previous month", signed(mom.Equity, currency)},
			{"year to date (" + ytdLabel + ")", ytdEquity},
		},
	})

	return doc.String()
}

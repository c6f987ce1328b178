package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/fkey7/budget"
)

// TrendMarkdown renders the equity trend series as a table, one line per
// month with data, exactly in series order.
func TrendMarkdown(series []budget.TrendPoint, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Equity Trend")
	if len(series) == 0 {
		doc.PlainText("(no months with data in range)")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Month", md.Bold("Actual Equity"), md.Bold("Plan Equity"), "Gap"},
	}
	for _, p := range series {
		table.Rows = append(table.Rows, []string{
			p.Month.String(),
			money(p.ActualEquity, currency),
			money(p.PlanEquity, currency),
			signed(p.ActualEquity.Sub(p.PlanEquity), currency),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d months with data", len(series)))

	return doc.String()
}

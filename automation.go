package budget

import (
	"github.com/shopspring/decimal"
)

// applyAutomation propagates an expense transaction onto the balance sheet
// of its month, keyed purely by normalized name equality between the
// transaction's category and a balance item.
//
// Paying down a named debt reduces that liability (clamped at zero) and, if
// an asset item of the same name already exists, grows it by the same
// amount; a liability match never fabricates an asset entry. When no
// liability matches, a same-named asset alone is grown. No match at all is
// the common case and has no effect.
//
// Income never triggers automation. That is an explicit rule, not a gap.
func applyAutomation(book BalanceBook, tx Transaction) {
	if tx.Kind != Expense {
		return
	}
	name := normalizeName(tx.CategoryName)
	if name == "" {
		return
	}

	bs := book.Sheet(tx.Date.Month())

	if liab := firstMatch(bs, LiabilityGroupOrder, name); liab != nil {
		liab.BaseAmount = liab.BaseAmount.Sub(tx.BaseAmount)
		if liab.BaseAmount.IsNegative() {
			liab.BaseAmount = decimal.Zero // a debt cannot go below zero
		}
		if asset := firstMatch(bs, AssetGroupOrder, name); asset != nil {
			asset.BaseAmount = asset.BaseAmount.Add(tx.BaseAmount)
		}
		return
	}

	if asset := firstMatch(bs, AssetGroupOrder, name); asset != nil {
		asset.BaseAmount = asset.BaseAmount.Add(tx.BaseAmount)
	}
}

// firstMatch returns the first item across the ordered groups whose
// normalized name equals the given key, or nil.
func firstMatch(bs *BalanceSheet, order []Group, name string) *BalanceItem {
	for _, g := range order {
		items, err := bs.group(g)
		if err != nil {
			continue
		}
		for i := range *items {
			if normalizeName((*items)[i].Name) == name {
				return &(*items)[i]
			}
		}
	}
	return nil
}

package budget

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side of the balance sheet an item lives on.
type Side string

const (
	Assets      Side = "assets"
	Liabilities Side = "liabilities"
)

// Group is one of the six fixed buckets of a balance sheet. Group names are
// unique across sides, so a group alone addresses a bucket.
type Group string

const (
	GroupCash        Group = "cash"
	GroupInvestments Group = "investments"
	GroupReceivables Group = "receivables"
	GroupCredits     Group = "credits"
	GroupCards       Group = "cards"
	GroupDebts       Group = "debts"
)

// AssetGroupOrder and LiabilityGroupOrder fix the enumeration order used by
// reporting and by the reconciliation automation's first-match rule.
var (
	AssetGroupOrder     = []Group{GroupCash, GroupInvestments, GroupReceivables}
	LiabilityGroupOrder = []Group{GroupCredits, GroupCards, GroupDebts}
)

// ParseGroup parses a group name, accepting the bare name ("cash") or the
// dotted form ("assets.cash").
func ParseGroup(s string) (Group, error) {
	for _, g := range append(append([]Group{}, AssetGroupOrder...), LiabilityGroupOrder...) {
		if s == string(g) || s == string(g.Side())+"."+string(g) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGroup, s)
}

// Side returns the balance-sheet side the group belongs to.
func (g Group) Side() Side {
	switch g {
	case GroupCash, GroupInvestments, GroupReceivables:
		return Assets
	default:
		return Liabilities
	}
}

// BalanceItem is a single named line of a balance sheet, held in the base
// currency. It is mutated by direct user edit or by the reconciliation
// automation, and belongs to exactly one (month, group) bucket.
type BalanceItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	BaseAmount decimal.Decimal `json:"baseAmount"`
	Note       string          `json:"note,omitempty"`
}

// Plan is the manually entered target figures of a month's balance sheet.
type Plan struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
}

// BalanceSheet holds one month's items, grouped into the six fixed buckets,
// plus the month's plan. Equity is never stored: it is always derived as
// assets minus liabilities.
type BalanceSheet struct {
	Plan        Plan            `json:"plan"`
	Assets      AssetGroups     `json:"assets"`
	Liabilities LiabilityGroups `json:"liabilities"`
}

// AssetGroups are the three fixed asset buckets.
type AssetGroups struct {
	Cash        []BalanceItem `json:"cash"`
	Investments []BalanceItem `json:"investments"`
	Receivables []BalanceItem `json:"receivables"`
}

// LiabilityGroups are the three fixed liability buckets.
type LiabilityGroups struct {
	Credits []BalanceItem `json:"credits"`
	Cards   []BalanceItem `json:"cards"`
	Debts   []BalanceItem `json:"debts"`
}

// group returns the addressed bucket's slice.
func (bs *BalanceSheet) group(g Group) (*[]BalanceItem, error) {
	switch g {
	case GroupCash:
		return &bs.Assets.Cash, nil
	case GroupInvestments:
		return &bs.Assets.Investments, nil
	case GroupReceivables:
		return &bs.Assets.Receivables, nil
	case GroupCredits:
		return &bs.Liabilities.Credits, nil
	case GroupCards:
		return &bs.Liabilities.Cards, nil
	case GroupDebts:
		return &bs.Liabilities.Debts, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, g)
	}
}

// find returns a pointer into the addressed bucket for the item id.
func (bs *BalanceSheet) find(g Group, id string) (*BalanceItem, error) {
	items, err := bs.group(g)
	if err != nil {
		return nil, err
	}
	for i := range *items {
		if (*items)[i].ID == id {
			return &(*items)[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q in group %q", ErrUnknownItem, id, g)
}

// SumGroup returns the sum of the bucket's item amounts.
func (bs *BalanceSheet) SumGroup(g Group) decimal.Decimal {
	items, err := bs.group(g)
	if err != nil {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, it := range *items {
		sum = sum.Add(it.BaseAmount)
	}
	return sum
}

// SumSide returns the sum of all item amounts on a side.
func (bs *BalanceSheet) SumSide(side Side) decimal.Decimal {
	order := AssetGroupOrder
	if side == Liabilities {
		order = LiabilityGroupOrder
	}
	sum := decimal.Zero
	for _, g := range order {
		sum = sum.Add(bs.SumGroup(g))
	}
	return sum
}

// Equity derives the month's equity, assets minus liabilities.
func (bs *BalanceSheet) Equity() decimal.Decimal {
	return bs.SumSide(Assets).Sub(bs.SumSide(Liabilities))
}

// hasAnyItems reports whether any bucket holds at least one item.
func (bs *BalanceSheet) hasAnyItems() bool {
	for _, g := range append(append([]Group{}, AssetGroupOrder...), LiabilityGroupOrder...) {
		items, _ := bs.group(g)
		if len(*items) > 0 {
			return true
		}
	}
	return false
}

// BalanceBook holds the balance sheets of all months. Months materialize
// lazily on first touch and are never auto-deleted.
type BalanceBook map[Month]*BalanceSheet

// Sheet returns the month's balance sheet, materializing an empty one with
// a zeroed plan on first access.
func (b BalanceBook) Sheet(m Month) *BalanceSheet {
	bs, ok := b[m]
	if !ok {
		bs = &BalanceSheet{}
		b[m] = bs
	}
	return bs
}

// Has reports whether the month already has a balance-sheet record, without
// materializing one.
func (b BalanceBook) Has(m Month) bool {
	_, ok := b[m]
	return ok
}

// HasAnyItems reports whether the month holds any balance item. Callers use
// it to decide whether a copy should require an overwrite confirmation.
func (b BalanceBook) HasAnyItems(m Month) bool {
	bs, ok := b[m]
	return ok && bs.hasAnyItems()
}

// ItemPatch is a partial update of a balance item; nil fields are left
// untouched.
type ItemPatch struct {
	Name       *string
	BaseAmount *decimal.Decimal
	Note       *string
}

// AddItem appends a new item to the month's bucket and returns a copy of it.
func (b BalanceBook) AddItem(m Month, g Group, name string, amount decimal.Decimal, note string) (BalanceItem, error) {
	bs := b.Sheet(m)
	items, err := bs.group(g)
	if err != nil {
		return BalanceItem{}, err
	}
	it := BalanceItem{ID: uuid.NewString(), Name: name, BaseAmount: amount, Note: note}
	*items = append(*items, it)
	return it, nil
}

// UpdateItem applies a partial update to the addressed item.
func (b BalanceBook) UpdateItem(m Month, g Group, id string, patch ItemPatch) error {
	if !b.Has(m) {
		return fmt.Errorf("%w: %q in month %s", ErrUnknownItem, id, m)
	}
	it, err := b[m].find(g, id)
	if err != nil {
		return err
	}
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.BaseAmount != nil {
		it.BaseAmount = *patch.BaseAmount
	}
	if patch.Note != nil {
		it.Note = *patch.Note
	}
	return nil
}

// DeleteItem removes the addressed item from its bucket.
func (b BalanceBook) DeleteItem(m Month, g Group, id string) error {
	if !b.Has(m) {
		return fmt.Errorf("%w: %q in month %s", ErrUnknownItem, id, m)
	}
	items, err := b[m].group(g)
	if err != nil {
		return err
	}
	for i := range *items {
		if (*items)[i].ID == id {
			*items = append((*items)[:i], (*items)[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q in group %q", ErrUnknownItem, id, g)
}

// CopyFrom deep-clones the source month's items and plan into the target
// month. Every cloned item gets a fresh identity so the two months never
// share state. The caller is responsible for confirming an overwrite when
// HasAnyItems reports the target as non-empty.
func (b BalanceBook) CopyFrom(source, target Month) error {
	src, ok := b[source]
	if !ok {
		return fmt.Errorf("no balance sheet for %s", source)
	}
	clone := func(items []BalanceItem) []BalanceItem {
		out := make([]BalanceItem, 0, len(items))
		for _, it := range items {
			it.ID = uuid.NewString()
			out = append(out, it)
		}
		return out
	}
	b[target] = &BalanceSheet{
		Plan: src.Plan,
		Assets: AssetGroups{
			Cash:        clone(src.Assets.Cash),
			Investments: clone(src.Assets.Investments),
			Receivables: clone(src.Assets.Receivables),
		},
		Liabilities: LiabilityGroups{
			Credits: clone(src.Liabilities.Credits),
			Cards:   clone(src.Liabilities.Cards),
			Debts:   clone(src.Liabilities.Debts),
		},
	}
	return nil
}

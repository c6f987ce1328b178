package budget

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
)

// Service owns one State value and is the single entry point for every
// command and query of the core. All mutation runs through its methods and
// completes before the next one starts; the only suspension point is the
// provider I/O inside rate resolution.
type Service struct {
	state    *State
	resolver *RateResolver
}

// NewService wraps a state with a resolver over the given provider. A nil
// provider limits rate resolution to overrides, cached averages and the
// fallback table.
func NewService(state *State, provider RateProvider) *Service {
	return &Service{state: state, resolver: NewRateResolver(state, provider)}
}

// State exposes the owned state for persistence through a StateStore.
func (s *Service) State() *State { return s.state }

// Resolver exposes the rate resolver for direct rate queries.
func (s *Service) Resolver() *RateResolver { return s.resolver }

// Selected returns the user's current month selection.
func (s *Service) Selected() Month { return s.state.App.Selected }

// SelectMonth stores the user's month selection.
func (s *Service) SelectMonth(m Month) { s.state.App.Selected = m }

// RecordTransaction validates, snapshots and appends a transaction, then
// lets the reconciliation automation propagate it onto the balance sheet.
//
// The transaction is the ledger of record: once it is stored, an automation
// failure is logged and skipped, never fatal and never rolled back.
func (s *Service) RecordTransaction(ctx context.Context, kind Kind, day Date, amount decimal.Decimal, currency, categoryName, note string) (Transaction, error) {
	tx, err := newTransaction(ctx, s.resolver, kind, day, amount, currency, categoryName, note)
	if err != nil {
		return Transaction{}, err
	}
	s.state.Transactions.Append(tx)

	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("automation skipped for transaction %s: %v", tx.ID, r)
			}
		}()
		applyAutomation(s.state.BalanceSheets, tx)
	}()

	return tx, nil
}

// DeleteTransaction removes a transaction from the ledger. It deliberately
// does not reverse the automation effect the transaction may have had.
func (s *Service) DeleteTransaction(id string) error {
	return s.state.Transactions.Delete(id)
}

// SetOverride stores a manual monthly rate; a non-positive rate clears it.
func (s *Service) SetOverride(m Month, currency string, rate decimal.Decimal) error {
	return s.resolver.SetOverride(m, currency, rate)
}

// RefreshMonthlyAverage recomputes and caches the month's average rates.
func (s *Service) RefreshMonthlyAverage(ctx context.Context, m Month) error {
	return s.resolver.RefreshMonthlyAverage(ctx, m)
}

// AddCategory appends a plan category.
func (s *Service) AddCategory(kind Kind, name, currency string) (Category, error) {
	if err := ValidateCurrency(currency); err != nil {
		return Category{}, err
	}
	return s.state.AddCategory(kind, name, currency), nil
}

// RenameCategory changes a category's name. Past transactions keep the old
// name: the name is a loose join key, not a reference.
func (s *Service) RenameCategory(id, name string) error {
	cat, err := s.state.CategoryByID(id)
	if err != nil {
		return err
	}
	cat.Name = name
	return nil
}

// DeleteCategory removes a plan category.
func (s *Service) DeleteCategory(id string) error {
	return s.state.DeleteCategory(id)
}

// SetCategoryPlan stores a category's planned amount for a month.
func (s *Service) SetCategoryPlan(id string, m Month, amount decimal.Decimal) error {
	cat, err := s.state.CategoryByID(id)
	if err != nil {
		return err
	}
	cat.SetPlanFor(m, amount)
	return nil
}

// SetCategoryYearlyPlan stores a category's planned amount for a whole
// year. Months without their own plan figure default to one twelfth of it.
func (s *Service) SetCategoryYearlyPlan(id string, amount decimal.Decimal) error {
	cat, err := s.state.CategoryByID(id)
	if err != nil {
		return err
	}
	cat.YearlyPlan = amount
	return nil
}

// SetBalancePlan stores the month's balance-sheet targets.
func (s *Service) SetBalancePlan(m Month, plan Plan) {
	s.state.BalanceSheets.Sheet(m).Plan = plan
}

// AddBalanceItem appends an item to a month's bucket.
func (s *Service) AddBalanceItem(m Month, g Group, name string, amount decimal.Decimal, note string) (BalanceItem, error) {
	return s.state.BalanceSheets.AddItem(m, g, name, amount, note)
}

// UpdateBalanceItem applies a partial update to an item.
func (s *Service) UpdateBalanceItem(m Month, g Group, id string, patch ItemPatch) error {
	return s.state.BalanceSheets.UpdateItem(m, g, id, patch)
}

// DeleteBalanceItem removes an item from its bucket.
func (s *Service) DeleteBalanceItem(m Month, g Group, id string) error {
	return s.state.BalanceSheets.DeleteItem(m, g, id)
}

// HasAnyItems reports whether the month holds any balance item, so the
// caller can ask for an overwrite confirmation before a copy.
func (s *Service) HasAnyItems(m Month) bool {
	return s.state.BalanceSheets.HasAnyItems(m)
}

// CopyFromMonth deep-clones a month's balance sheet into another month.
func (s *Service) CopyFromMonth(source, target Month) error {
	return s.state.BalanceSheets.CopyFrom(source, target)
}

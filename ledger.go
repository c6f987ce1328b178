package budget

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the record of all income and expense events.
//
// In a Ledger transactions are always in chronological order; same-day
// transactions keep their recording order.
type Ledger []Transaction

// newTransaction validates the inputs and takes the one-time rate snapshot.
// It is the only place a BaseAmount is ever computed.
func newTransaction(ctx context.Context, resolver *RateResolver, kind Kind, day Date, amount decimal.Decimal, currency, categoryName, note string) (Transaction, error) {
	if !kind.Valid() {
		return Transaction{}, fmt.Errorf("unknown transaction kind %q", kind)
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("amount must be positive, got %s: %w", amount, ErrInvalidAmount)
	}
	if err := ValidateCurrency(currency); err != nil {
		return Transaction{}, err
	}

	rate, source, err := resolver.ResolveForDate(ctx, currency, day)
	if err != nil {
		return Transaction{}, err
	}
	// The resolver quotes "1 base unit = rate units of currency"; the
	// snapshot stores the multiplier actually applied, base units per one
	// unit of the transaction currency.
	rateUsed := decimal.NewFromInt(1).Div(rate)
	if currency == resolver.Base() {
		rateUsed = decimal.NewFromInt(1)
	}

	return Transaction{
		ID:           uuid.NewString(),
		Kind:         kind,
		Date:         day,
		Amount:       amount,
		Currency:     currency,
		Note:         note,
		CategoryName: categoryName,
		BaseAmount:   amount.Mul(rateUsed),
		RateUsed:     rateUsed,
		Source:       source,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Append inserts the transaction keeping the ledger chronological.
func (l *Ledger) Append(tx Transaction) {
	i := len(*l)
	for i > 0 && (*l)[i-1].Date.After(tx.Date) {
		i--
	}
	*l = slices.Insert(*l, i, tx)
}

// Delete removes the transaction with the given id. It does not reverse any
// automation effect the transaction previously had on a balance sheet.
func (l *Ledger) Delete(id string) error {
	for i := range *l {
		if (*l)[i].ID == id {
			*l = slices.Delete(*l, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTransaction, id)
}

// Get returns the transaction with the given id.
func (l Ledger) Get(id string) (Transaction, error) {
	for _, tx := range l {
		if tx.ID == id {
			return tx, nil
		}
	}
	return Transaction{}, fmt.Errorf("%w: %q", ErrUnknownTransaction, id)
}

// All returns an iterator over all transactions in chronological order.
func (l Ledger) All() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l {
			if !yield(tx) {
				return
			}
		}
	}
}

// InMonth returns an iterator over the month's transactions.
func (l Ledger) InMonth(m Month) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l {
			if tx.Date.Month() != m {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// SumInMonth returns the month's total base amount for a kind.
func (l Ledger) SumInMonth(m Month, kind Kind) decimal.Decimal {
	sum := decimal.Zero
	for tx := range l.InMonth(m) {
		if tx.Kind == kind {
			sum = sum.Add(tx.BaseAmount)
		}
	}
	return sum
}

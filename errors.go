package budget

import "errors"

// Sentinel errors returned by core operations. Callers are expected to test
// them with errors.Is; the wrapped message carries the specifics.
var (
	// ErrInvalidAmount reports a non-positive or non-finite amount. It is
	// returned before any rate lookup takes place.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrRateUnavailable reports that every precedence tier (override,
	// monthly average, static fallback) was exhausted for a currency.
	ErrRateUnavailable = errors.New("rate unavailable")

	// ErrInvalidRange reports malformed month bounds in a trend query.
	ErrInvalidRange = errors.New("invalid month range")

	// ErrUnknownGroup reports an operation referencing a balance-sheet
	// group that does not exist.
	ErrUnknownGroup = errors.New("unknown balance group")

	// ErrUnknownItem reports an operation referencing a balance-sheet item
	// id that does not exist in the addressed group.
	ErrUnknownItem = errors.New("unknown balance item")

	// ErrUnknownCategory reports an operation referencing a category id
	// that is not part of the plan.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownTransaction reports a deletion of a transaction id that is
	// not in the ledger.
	ErrUnknownTransaction = errors.New("unknown transaction")
)

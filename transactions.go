package budget

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense event. Amount and Currency are
// what the user entered; BaseAmount, RateUsed and Source are the one-time
// conversion snapshot taken when the transaction was recorded.
//
// The snapshot is the central invariant of the ledger: once stored it is
// never recomputed, even if the override, average or fallback rate for that
// month later changes. Historical actuals stay stable while plan forecasts
// keep floating.
type Transaction struct {
	ID       string          `json:"id"`
	Kind     Kind            `json:"kind"`
	Date     Date            `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Note     string          `json:"note,omitempty"`

	// CategoryName is the plan category this event belongs to, referenced
	// by name. Renaming a balance item to match (or stop matching) a
	// category name is how users start and stop the automation.
	CategoryName string `json:"categoryName"`

	// BaseAmount is Amount converted into the base currency at RateUsed.
	BaseAmount decimal.Decimal `json:"baseAmount"`
	// RateUsed is the locked multiplier, base units per one unit of
	// Currency (the reciprocal of the resolver's quote).
	RateUsed decimal.Decimal `json:"rateUsed"`
	// Source records which precedence tier supplied RateUsed.
	Source RateSource `json:"rateSource"`

	CreatedAt time.Time `json:"createdAt"`
}

// normalizeName is the join key of the reconciliation automation: trimmed,
// case-folded name equality. Deliberately fragile but simple.
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

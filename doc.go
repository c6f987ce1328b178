// Package budget provides the core logic of a personal, multi-currency
// budget and balance-sheet ledger. It is designed to be local-first and
// auditable: all amounts are normalized once into a single base currency
// and the conversion rate is locked to the originating event forever.
//
// The core functionalities include:
//   - Rate Resolution: converting any tracked currency into the base
//     currency through a strict precedence chain (manual override, computed
//     monthly average, static fallback), backed by pluggable remote rate
//     providers.
//   - Transaction Ledger: an append-mostly, chronological record of income
//     and expense events, each carrying an immutable rate snapshot.
//   - Balance Sheets: per-month asset and liability items grouped into
//     fixed buckets, with a manually entered plan.
//   - Reconciliation: a name-matching rule that propagates expense
//     transactions onto same-named balance-sheet items (debt paydown,
//     asset growth).
//   - Reporting: per-month totals, plan deltas, month-over-month and
//     year-to-date deltas, and an equity trend series.
//
// This package serves as the foundational logic for the `bp` command-line
// tool; it returns plain values and never formats, renders, or persists
// anything beyond the opaque StateStore contract.
package budget

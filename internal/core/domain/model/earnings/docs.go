// Package earnings holds the writer earnings ledger.
//
// Every approved order accrues one Record to the writer who produced it.
// Records move Pending -> Approved -> Paid; unpaid records can be
// cancelled when the underlying order is refunded, paid records cannot.
// The ledger is append-only: reversals are expressed as cancellations,
// never as deletions.
package earnings

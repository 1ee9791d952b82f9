// Package order provides the central aggregate of the fulfillment engine:
// the order lifecycle state machine and the writer claim/release protocol.
//
// The package contains:
//   - Order: the aggregate root owning status, writer assignment, line items,
//     draft reference, decline history, and the optimistic-concurrency version
//   - Status: a value object implementing the lifecycle state machine with
//     validated transitions
//   - LineItem: an (inventory item, quantity) pair, immutable once paid
//   - Decline: an append-only record excluding a writer from future offers
//
// All transitions are expressed as aggregate methods that delegate legality
// checks to Status. Side effects mandated by a transition (stock reservation,
// earnings accrual, audit entries) are performed by the application layer in
// the same unit of work, never by the aggregate itself.
package order

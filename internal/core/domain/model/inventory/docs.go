// Package inventory provides the stock reservation aggregate.
//
// Each Item tracks a physical stock count and the portion reserved for paid,
// not-yet-shipped orders. The application layer reserves, releases, and
// consumes stock inside the same unit of work as the order transition that
// mandates it, so the reservation ledger can never drift from the order
// lifecycle.
package inventory

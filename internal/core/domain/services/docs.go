// Package services provides domain services that operate across
// aggregates. Pricing lives here because a writer's pay depends on the
// order's contents and rework history but belongs to neither the order
// nor the earnings ledger alone.
package services

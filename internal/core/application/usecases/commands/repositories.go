// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: role check, transaction management,
// aggregate mutation, audit entry, persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// EarningsRepoFactory provides access to the earnings ledger within a transaction.
	EarningsRepoFactory interface {
		EarningsRepository() ports.EarningsRepository
	}

	// QCRepoFactory provides access to the review records within a transaction.
	QCRepoFactory interface {
		QCRepository() ports.QCRepository
	}

	// AuditRepoFactory provides access to the audit trail within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// OrderUoW manages transactions for commands that touch only the
	// order and its audit trail: claim, decline, draft upload, hold,
	// resume, and the offer jobs.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AuditRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReviewUoW manages transactions for the QC verdict commands, which
	// write review records and move the earnings ledger alongside the order.
	ReviewUoW interface {
		TxManager
		OrderRepoFactory
		QCRepoFactory
		EarningsRepoFactory
		AuditRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// StockUoW manages transactions for commands that move stock
	// reservations or reverse earnings: payment confirmation, fulfillment
	// advancement, cancellation, and refunds.
	StockUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
		EarningsRepoFactory
		AuditRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}
)

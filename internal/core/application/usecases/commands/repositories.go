// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
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

	// RosterRepoFactory provides access to the roster repository within a transaction.
	RosterRepoFactory interface {
		RosterRepository() ports.RosterRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// InventoryUoW manages transactions for inventory-only operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// RosterUoW manages transactions for roster-only operations.
	RosterUoW interface {
		TxManager
		RosterRepoFactory
	}

	// RosterUoWFactory creates new roster unit of work instances.
	RosterUoWFactory interface {
		Create() RosterUoW
	}

	// OrderInventoryUoW manages transactions spanning order and inventory
	// aggregates. Used when a reservation and an order write must commit or
	// roll back together.
	OrderInventoryUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
	}

	// OrderInventoryUoWFactory creates new order/inventory unit of work instances.
	OrderInventoryUoWFactory interface {
		Create() OrderInventoryUoW
	}

	// OrderRosterUoW manages transactions that change an order under roster
	// authorization.
	OrderRosterUoW interface {
		TxManager
		OrderRepoFactory
		RosterRepoFactory
	}

	// OrderRosterUoWFactory creates new order/roster unit of work instances.
	OrderRosterUoWFactory interface {
		Create() OrderRosterUoW
	}
)

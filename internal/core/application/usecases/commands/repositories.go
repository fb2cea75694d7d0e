// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fabrication/internal/core/ports"
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

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by creation and lifecycle transition commands, whose
	// read-check-write sequence must be atomic per order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across the order and its item set.
	// Used by the replace-items command so the delete-then-insert of the
	// item set commits or rolls back as a single unit.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   itemRepo := uow.ItemRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
	}

	// UoWFactory creates new unit of work instances for order+item operations.
	UoWFactory interface {
		Create() UoW
	}
)

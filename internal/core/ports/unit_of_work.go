package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Transition commands rely on this boundary for their read-check-write
// atomicity: loading an order, validating its status, and writing the new
// status happen inside one transaction, and OrderRepository.Get locks the
// row, so two concurrent transitions on the same order cannot both succeed
// from the same precondition state.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction. Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// ItemRepository returns an ItemRepository bound to the current
	// transaction. Repository will use the transaction started by Begin().
	ItemRepository() ItemRepository
}

package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary across the
// relational records. It provides transaction control and hands out
// repositories bound to the current transaction. Client code must
// explicitly manage the transaction lifecycle.
//
// Repositories obtained before Begin operate directly on the main
// connection; the read-only dispatch path uses them that way, without a
// transaction.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// AutomationSettingRepository returns a repository bound to the current
	// transaction, if one is active.
	AutomationSettingRepository() AutomationSettingRepository

	// ResumeRepository returns a repository bound to the current
	// transaction, if one is active.
	ResumeRepository() ResumeRepository

	// ContactProfileRepository returns a repository bound to the current
	// transaction, if one is active.
	ContactProfileRepository() ContactProfileRepository

	// FeedSourceRepository returns a repository bound to the current
	// transaction, if one is active.
	FeedSourceRepository() FeedSourceRepository
}

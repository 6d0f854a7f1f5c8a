// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work wraps one business transaction across the
// relational records and hands out repositories bound to that transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ResumeRepository().Add(ctx, r); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets a fresh instance; concurrent goroutines must
// not share one. Repositories obtained before Begin run directly on the main
// connection, which is how the read-only dispatch path uses them.
package postgres

import (
	"context"

	"resumeflow/internal/adapters/out/postgres/automationrepo"
	"resumeflow/internal/adapters/out/postgres/contactrepo"
	"resumeflow/internal/adapters/out/postgres/feedrepo"
	"resumeflow/internal/adapters/out/postgres/resumerepo"
	"resumeflow/internal/core/domain/model/kernel"
	"resumeflow/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Kept for post-commit processing such as an outbox or domain event publishing.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. The factory ensures every business operation gets its own
// isolated transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin again on an
// instance with an active transaction is a no-op rather than a nested
// transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active, which is
// the expected outcome of the deferred rollback after a successful commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// AutomationSettingRepository returns a setting repository bound to the
// current transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) AutomationSettingRepository() ports.AutomationSettingRepository {
	return automationrepo.NewGormSettingRepository(uow.conn(), uow)
}

// ResumeRepository returns a resume repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) ResumeRepository() ports.ResumeRepository {
	return resumerepo.NewGormResumeRepository(uow.conn(), uow)
}

// ContactProfileRepository returns a contact profile repository bound to the
// current transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) ContactProfileRepository() ports.ContactProfileRepository {
	return contactrepo.NewGormContactRepository(uow.conn(), uow)
}

// FeedSourceRepository returns a feed source repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) FeedSourceRepository() ports.FeedSourceRepository {
	return feedrepo.NewGormFeedRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it on every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

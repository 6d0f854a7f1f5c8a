// Package commands contains business operations that modify system state or
// drive the dispatch cycle. All commands follow a consistent pattern:
// constructor validation, transaction management where writes occur, and
// explicit dependencies instead of ambient client handles.
package commands

import (
	"context"

	"resumeflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each command depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SettingRepoFactory provides access to the automation setting
	// repository within a transaction.
	SettingRepoFactory interface {
		AutomationSettingRepository() ports.AutomationSettingRepository
	}

	// ResumeRepoFactory provides access to the resume repository within a
	// transaction.
	ResumeRepoFactory interface {
		ResumeRepository() ports.ResumeRepository
	}

	// ContactRepoFactory provides access to the contact profile repository
	// within a transaction.
	ContactRepoFactory interface {
		ContactProfileRepository() ports.ContactProfileRepository
	}

	// FeedRepoFactory provides access to the feed source repository within
	// a transaction.
	FeedRepoFactory interface {
		FeedSourceRepository() ports.FeedSourceRepository
	}

	// ResumeUoW manages transactions for resume-only operations.
	ResumeUoW interface {
		TxManager
		ResumeRepoFactory
	}

	// ResumeUoWFactory creates resume unit of work instances.
	ResumeUoWFactory interface {
		Create() ResumeUoW
	}

	// SettingUoW manages transactions for commands that write automation
	// settings and verify resume references.
	SettingUoW interface {
		TxManager
		SettingRepoFactory
		ResumeRepoFactory
	}

	// SettingUoWFactory creates setting unit of work instances.
	SettingUoWFactory interface {
		Create() SettingUoW
	}

	// ContactUoW manages transactions for contact profile upserts.
	ContactUoW interface {
		TxManager
		ContactRepoFactory
	}

	// ContactUoWFactory creates contact unit of work instances.
	ContactUoWFactory interface {
		Create() ContactUoW
	}

	// FeedUoW manages transactions for feed source writes.
	FeedUoW interface {
		TxManager
		FeedRepoFactory
	}

	// FeedUoWFactory creates feed unit of work instances.
	FeedUoWFactory interface {
		Create() FeedUoW
	}
)

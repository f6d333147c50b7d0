// Package migrations evolves the database schema with forward-only,
// individually transactional steps recorded in the schema_migrations ledger.
//
// Every migration is identified by a stable string id and applied at most
// once. The ledger is the only source of truth for what has run. MySQL commits
// DDL implicitly, so there a failed step may leave part of its schema behind;
// the step bodies guard every object with HasTable/HasIndex so a rerun
// completes it.
package migrations

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migration is one forward schema step.
type Migration struct {
	ID string
	Up func(tx *gorm.DB) error
}

// SchemaMigration is a ledger row. Rows are only ever inserted.
type SchemaMigration struct {
	ID        string    `gorm:"primaryKey;size:191"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's pluralization.
func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

// State reports which migrations have run. Applied is sorted by id, Pending
// keeps the declared order.
type State struct {
	Applied []string `json:"applied"`
	Pending []string `json:"pending"`
}

// Engine applies a declared list of migrations against one database.
type Engine struct {
	db         *gorm.DB
	migrations []Migration
	log        *zap.Logger
	now        func() time.Time
}

// NewEngine creates an engine for the given migrations, applied in slice order.
func NewEngine(db *gorm.DB, migrations []Migration, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		db:         db,
		migrations: migrations,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ApplyPending runs every migration missing from the ledger, in declared
// order, each in its own transaction together with its ledger row. It stops
// at the first failure and returns the ids applied before it.
func (e *Engine) ApplyPending(ctx context.Context) ([]string, error) {
	if err := e.checkDeclared(); err != nil {
		return nil, err
	}
	if err := e.ensureLedger(ctx); err != nil {
		return nil, err
	}

	ids, err := e.appliedIDs(ctx)
	if err != nil {
		return nil, err
	}
	done := toSet(ids)

	var applied []string
	for _, m := range e.migrations {
		if done[m.ID] {
			continue
		}

		started := time.Now()
		err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{ID: m.ID, AppliedAt: e.now()}).Error
		})
		if err != nil {
			e.log.Error("migration_failed", zap.String("id", m.ID), zap.Error(err))
			return applied, fmt.Errorf("migration %s: %w", m.ID, err)
		}

		e.log.Info("migration_applied",
			zap.String("id", m.ID),
			zap.Duration("took", time.Since(started)),
		)
		applied = append(applied, m.ID)
	}

	return applied, nil
}

// State reads the ledger and compares it with the declared migrations.
func (e *Engine) State(ctx context.Context) (State, error) {
	if err := e.ensureLedger(ctx); err != nil {
		return State{}, err
	}

	ids, err := e.appliedIDs(ctx)
	if err != nil {
		return State{}, err
	}
	sort.Strings(ids)
	done := toSet(ids)

	state := State{Applied: ids, Pending: []string{}}
	for _, m := range e.migrations {
		if !done[m.ID] {
			state.Pending = append(state.Pending, m.ID)
		}
	}

	return state, nil
}

func (e *Engine) ensureLedger(ctx context.Context) error {
	migrator := e.db.WithContext(ctx).Migrator()
	if migrator.HasTable(&SchemaMigration{}) {
		return nil
	}
	if err := migrator.CreateTable(&SchemaMigration{}); err != nil {
		return fmt.Errorf("create migration ledger: %w", err)
	}
	return nil
}

func (e *Engine) appliedIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	if err := e.db.WithContext(ctx).Model(&SchemaMigration{}).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("read migration ledger: %w", err)
	}
	return ids, nil
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func (e *Engine) checkDeclared() error {
	seen := make(map[string]bool, len(e.migrations))
	for _, m := range e.migrations {
		if m.ID == "" || m.Up == nil {
			return fmt.Errorf("migration %q is incomplete", m.ID)
		}
		if seen[m.ID] {
			return fmt.Errorf("migration %s is declared twice", m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}

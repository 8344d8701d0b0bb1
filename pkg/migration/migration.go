// Package migration provides a batch-tracked database migration runner.
//
// Each migration file registers itself from init():
//
//	func init() {
//	    migration.Register("20260201000000_create_products_table", &CreateProductsTable{})
//	}
//
// Run from the CLI:
//
//	productos migrate             // run all pending
//	productos migrate:rollback    // rollback last batch
//	productos migrate:status      // show status
package migration

import (
	"fmt"
	"sort"
	"time"

	"github.com/shashiranjanraj/productos/pkg/logger"
	"gorm.io/gorm"
)

// Migration is the interface every migration must implement.
type Migration interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

// migrationRecord is the GORM model stored in the tracking table.
type migrationRecord struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (migrationRecord) TableName() string { return "productos_migrations" }

type registeredMigration struct {
	name string
	m    Migration
}

var registry []registeredMigration

// Register adds a migration to the global registry. name should be a
// timestamp-prefixed string so names sort chronologically.
func Register(name string, m Migration) {
	registry = append(registry, registeredMigration{name: name, m: m})
}

// Runner executes and tracks migrations.
type Runner struct {
	db *gorm.DB
}

// New creates a Runner backed by the provided gorm.DB.
func New(db *gorm.DB) *Runner {
	return &Runner{db: db}
}

// EnsureTable creates the tracking table if it does not exist.
func (r *Runner) EnsureTable() error {
	return r.db.AutoMigrate(&migrationRecord{})
}

// Pending returns the migrations that have not yet been run, in name order.
func (r *Runner) Pending() ([]registeredMigration, error) {
	var ran []migrationRecord
	if err := r.db.Find(&ran).Error; err != nil {
		return nil, err
	}

	ranSet := make(map[string]bool, len(ran))
	for _, rec := range ran {
		ranSet[rec.Name] = true
	}

	var pending []registeredMigration
	for _, reg := range registry {
		if !ranSet[reg.name] {
			pending = append(pending, reg)
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].name < pending[j].name
	})

	return pending, nil
}

// Run executes all pending migrations in a single batch.
func (r *Runner) Run() error {
	if err := r.EnsureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	pending, err := r.Pending()
	if err != nil {
		return fmt.Errorf("migration: pending: %w", err)
	}
	if len(pending) == 0 {
		logger.Info("migrations up to date")
		return nil
	}

	batch, err := r.nextBatch()
	if err != nil {
		return err
	}

	for _, reg := range pending {
		if err := reg.m.Up(r.db); err != nil {
			return fmt.Errorf("migration %q: %w", reg.name, err)
		}
		rec := migrationRecord{Name: reg.name, Batch: batch}
		if err := r.db.Create(&rec).Error; err != nil {
			return fmt.Errorf("migration: record %q: %w", reg.name, err)
		}
		logger.Info("migrated", "name", reg.name, "batch", batch)
	}

	return nil
}

// Rollback reverses the most recent batch, newest migration first.
func (r *Runner) Rollback() error {
	if err := r.EnsureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	var last migrationRecord
	err := r.db.Order("batch DESC").First(&last).Error
	if err == gorm.ErrRecordNotFound {
		logger.Info("nothing to rollback")
		return nil
	}
	if err != nil {
		return err
	}

	var records []migrationRecord
	if err := r.db.Where("batch = ?", last.Batch).Order("name DESC").Find(&records).Error; err != nil {
		return err
	}

	byName := make(map[string]Migration, len(registry))
	for _, reg := range registry {
		byName[reg.name] = reg.m
	}

	for _, rec := range records {
		m, ok := byName[rec.Name]
		if !ok {
			return fmt.Errorf("migration %q recorded but not registered", rec.Name)
		}
		if err := m.Down(r.db); err != nil {
			return fmt.Errorf("rollback %q: %w", rec.Name, err)
		}
		if err := r.db.Delete(&migrationRecord{}, rec.ID).Error; err != nil {
			return err
		}
		logger.Info("rolled back", "name", rec.Name)
	}

	return nil
}

// Status prints each registered migration with its run state.
func (r *Runner) Status() error {
	if err := r.EnsureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	var ran []migrationRecord
	if err := r.db.Find(&ran).Error; err != nil {
		return err
	}

	ranBatch := make(map[string]int, len(ran))
	for _, rec := range ran {
		ranBatch[rec.Name] = rec.Batch
	}

	for _, reg := range registry {
		if batch, ok := ranBatch[reg.name]; ok {
			fmt.Printf("  [ran, batch %d] %s\n", batch, reg.name)
		} else {
			fmt.Printf("  [pending]      %s\n", reg.name)
		}
	}

	return nil
}

func (r *Runner) nextBatch() (int, error) {
	var max int64
	row := r.db.Model(&migrationRecord{}).Select("COALESCE(MAX(batch), 0)").Row()
	if err := row.Scan(&max); err != nil {
		return 0, fmt.Errorf("migration: max batch: %w", err)
	}
	return int(max) + 1, nil
}

package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var migrationFileRe = regexp.MustCompile(`^(\d+)_(.+)\.(up|down)\.sql$`)

const createMigrationsTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version     INTEGER PRIMARY KEY,
    description TEXT,
    applied_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Migration represents a database migration.
type Migration struct {
	Version     int
	Description string
	UpSQL       string
	DownSQL     string
}

// MigrationRecord represents a record in the schema_migrations table.
type MigrationRecord struct {
	Version     int
	AppliedAt   time.Time
	Description string
}

// Migrator handles database migrations.
type Migrator struct {
	db *sql.DB
}

// NewMigrator creates a new migration handler.
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

// LoadMigrations loads all migrations from the embedded filesystem.
func (m *Migrator) LoadMigrations() ([]Migration, error) {
	migrations := make(map[int]*Migration)

	err := fs.WalkDir(migrationsFS, "migrations", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		// Parse filename: 001_description.up.sql or 001_description.down.sql
		matches := migrationFileRe.FindStringSubmatch(filepath.Base(path))
		if len(matches) != 4 {
			return nil
		}

		version, _ := strconv.Atoi(matches[1])
		description := strings.ReplaceAll(matches[2], "_", " ")
		direction := matches[3]

		content, err := migrationsFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", path, err)
		}

		if _, exists := migrations[version]; !exists {
			migrations[version] = &Migration{
				Version:     version,
				Description: description,
			}
		}

		if direction == "up" {
			migrations[version].UpSQL = string(content)
		} else {
			migrations[version].DownSQL = string(content)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking migrations: %w", err)
	}

	result := make([]Migration, 0, len(migrations))
	for _, mig := range migrations {
		result = append(result, *mig)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Version < result[j].Version
	})

	return result, nil
}

// CurrentVersion returns the current schema version.
func (m *Migrator) CurrentVersion() (int, error) {
	if _, err := m.db.Exec(createMigrationsTableSQL); err != nil {
		return 0, fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var version int

	err := m.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("getting current version: %w", err)
	}

	return version, nil
}

// AppliedMigrations returns all applied migrations.
func (m *Migrator) AppliedMigrations() ([]MigrationRecord, error) {
	if _, err := m.CurrentVersion(); err != nil {
		return nil, err
	}

	rows, err := m.db.Query(`
		SELECT version, applied_at, COALESCE(description, '') AS description
		FROM schema_migrations
		ORDER BY version ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying applied migrations: %w", err)
	}
	defer rows.Close()

	var records []MigrationRecord

	for rows.Next() {
		var rec MigrationRecord
		if err := rows.Scan(&rec.Version, &rec.AppliedAt, &rec.Description); err != nil {
			return nil, fmt.Errorf("scanning migration record: %w", err)
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

// MigrateUp applies all pending migrations.
func (m *Migrator) MigrateUp() error {
	migrations, err := m.LoadMigrations()
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	currentVersion, err := m.CurrentVersion()
	if err != nil {
		return err
	}

	for _, mig := range migrations {
		if mig.Version <= currentVersion {
			continue
		}

		if mig.UpSQL == "" {
			return fmt.Errorf("migration %d has no up SQL", mig.Version)
		}

		record := func(tx *sql.Tx) error {
			_, err := tx.Exec(`INSERT INTO schema_migrations (version, description) VALUES (?, ?)`,
				mig.Version, mig.Description)

			return err
		}

		if err := m.runMigration(mig.UpSQL, record); err != nil {
			return fmt.Errorf("applying migration %d (%s): %w", mig.Version, mig.Description, err)
		}
	}

	return nil
}

// MigrateDown rolls back the last migration.
func (m *Migrator) MigrateDown() error {
	migrations, err := m.LoadMigrations()
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	currentVersion, err := m.CurrentVersion()
	if err != nil {
		return err
	}

	if currentVersion == 0 {
		return errors.New("no migrations to rollback")
	}

	var current *Migration

	for i := range migrations {
		if migrations[i].Version == currentVersion {
			current = &migrations[i]

			break
		}
	}

	if current == nil {
		return fmt.Errorf("migration %d not found", currentVersion)
	}

	if current.DownSQL == "" {
		return fmt.Errorf("migration %d has no down SQL", currentVersion)
	}

	forget := func(tx *sql.Tx) error {
		_, err := tx.Exec(`DELETE FROM schema_migrations WHERE version = ?`, currentVersion)

		return err
	}

	if err := m.runMigration(current.DownSQL, forget); err != nil {
		return fmt.Errorf("rolling back migration %d (%s): %w", currentVersion, current.Description, err)
	}

	return nil
}

// runMigration executes a migration script and its bookkeeping in one transaction.
func (m *Migrator) runMigration(sqlScript string, bookkeeping func(*sql.Tx) error) (err error) {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(sqlScript); err != nil {
		return fmt.Errorf("executing migration: %w", err)
	}

	if err = bookkeeping(tx); err != nil {
		return fmt.Errorf("recording migration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

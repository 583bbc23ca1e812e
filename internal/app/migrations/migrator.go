package migrations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// DB is the part of *pgxpool.Pool the migrator needs
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Migrator applies ordered SQL files once each, tracking them in schema_migrations
type Migrator struct {
	db     DB
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db DB, logger zerolog.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// migrationVersion extracts the version prefix, "001_init.sql" => "001"
func migrationVersion(filename string) string {
	return strings.SplitN(filepath.Base(filename), "_", 2)[0]
}

// MigrateFromFile executes one SQL file and records its version in the same transaction
func (m *Migrator) MigrateFromFile(ctx context.Context, filePath string) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	filename := filepath.Base(filePath)
	version := migrationVersion(filename)

	applied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return err
	}
	if applied {
		m.logger.Debug().Str("file", filename).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("error occurred during SQL migration %s: %w", filename, err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
		version, time.Now()); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.logger.Info().Str("file", filename).Str("version", version).Msg("Migration applied")
	return nil
}

// ListMigrationFiles returns the .sql files of dirPath in execution order
func ListMigrationFiles(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, filepath.Join(dirPath, entry.Name()))
		}
	}
	sort.Strings(sqlFiles)

	return sqlFiles, nil
}

// MigrateFromDirectory finds and executes all SQL files in a directory
func (m *Migrator) MigrateFromDirectory(ctx context.Context, dirPath string) error {
	files, err := ListMigrationFiles(dirPath)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := m.MigrateFromFile(ctx, file); err != nil {
			return err
		}
	}

	m.logger.Info().Int("files", len(files)).Str("dir", dirPath).Msg("Migrations up to date")
	return nil
}

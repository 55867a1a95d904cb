package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sijms/go-ora/v2/network"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

// ORA-00955: name is already used by an existing object
const oraNameInUse = 955

const createMigrationsTable = `CREATE TABLE SCHEMA_MIGRATIONS (
    VERSION    VARCHAR2(200) NOT NULL,
    APPLIED_AT TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL,
    CONSTRAINT SCHEMA_MIGRATIONS_PK PRIMARY KEY (VERSION)
)`

// Migrator applies the SQL files under migrations/ in name order and
// records each applied version in SCHEMA_MIGRATIONS.
type Migrator struct {
	db    *sqlx.DB
	files fs.FS
	log   *zap.Logger
}

// NewMigrator returns a Migrator over the embedded migration files.
func NewMigrator(db *sqlx.DB, log *zap.Logger) *Migrator {
	sub, _ := fs.Sub(migrationFiles, "migrations")
	return newMigrator(db, sub, log)
}

func newMigrator(db *sqlx.DB, files fs.FS, log *zap.Logger) *Migrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Migrator{db: db, files: files, log: log}
}

// Up applies every pending migration and returns how many ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}
	versions, err := m.versions(upSuffix)
	if err != nil {
		return 0, err
	}

	done := make(map[string]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	count := 0
	for _, version := range versions {
		if done[version] {
			continue
		}
		if err := m.run(ctx, version+upSuffix); err != nil {
			return count, err
		}
		if _, err := m.db.ExecContext(ctx, `INSERT INTO SCHEMA_MIGRATIONS (VERSION) VALUES (:1)`, version); err != nil {
			return count, fmt.Errorf("failed to record migration %s: %w", version, err)
		}
		m.log.Info("Applied migration", zap.String("version", version))
		count++
	}
	return count, nil
}

// Down reverts the latest applied migrations, newest first. steps <= 0 reverts all.
func (m *Migrator) Down(ctx context.Context, steps int) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}
	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(applied)))
	if steps > 0 && steps < len(applied) {
		applied = applied[:steps]
	}

	count := 0
	for _, version := range applied {
		if err := m.run(ctx, version+downSuffix); err != nil {
			return count, err
		}
		if _, err := m.db.ExecContext(ctx, `DELETE FROM SCHEMA_MIGRATIONS WHERE VERSION = :1`, version); err != nil {
			return count, fmt.Errorf("failed to unrecord migration %s: %w", version, err)
		}
		m.log.Info("Reverted migration", zap.String("version", version))
		count++
	}
	return count, nil
}

// ensureTable creates SCHEMA_MIGRATIONS unless it already exists.
func (m *Migrator) ensureTable(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, createMigrationsTable); err != nil && !isNameInUse(err) {
		return fmt.Errorf("failed to create SCHEMA_MIGRATIONS: %w", err)
	}
	return nil
}

func isNameInUse(err error) bool {
	var oraErr *network.OracleError
	return errors.As(err, &oraErr) && oraErr.ErrCode == oraNameInUse
}

func (m *Migrator) appliedVersions(ctx context.Context) ([]string, error) {
	var versions []string
	if err := m.db.SelectContext(ctx, &versions, `SELECT VERSION FROM SCHEMA_MIGRATIONS ORDER BY VERSION`); err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	return versions, nil
}

// versions lists migration versions that have a file with suffix, in ascending order.
func (m *Migrator) versions(suffix string) ([]string, error) {
	entries, err := fs.ReadDir(m.files, ".")
	if err != nil {
		return nil, fmt.Errorf("could not read migrations: %w", err)
	}
	var versions []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			versions = append(versions, strings.TrimSuffix(e.Name(), suffix))
		}
	}
	sort.Strings(versions)
	return versions, nil
}

func (m *Migrator) run(ctx context.Context, name string) error {
	content, err := fs.ReadFile(m.files, name)
	if err != nil {
		return fmt.Errorf("could not read migration file %s: %w", name, err)
	}
	for _, stmt := range splitStatements(string(content)) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not execute migration %s: %w", name, err)
		}
	}
	return nil
}

// splitStatements splits a file on terminating semicolons. go-ora executes a
// single statement per call and rejects the trailing semicolon.
func splitStatements(content string) []string {
	var stmts []string
	for _, part := range strings.Split(content, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

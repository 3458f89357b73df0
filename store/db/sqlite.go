package db

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

func NewDB(path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("database path is required")
	}

	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open journal database")
	}

	return &DB{d}, nil
}

func (d *DB) Close() error {
	return d.DB.Close()
}

//go:embed migration
var migrationFS embed.FS

const latestSchemaFileName = "migration/LATEST_SCHEMA.sql"

// Migrate applies the journal schema on first start. The schema has a single
// version, an existing table is left untouched.
func (d *DB) Migrate(ctx context.Context) error {
	exists, err := d.CheckTableExists(ctx, "submissions")
	if err != nil {
		return errors.Wrap(err, "failed to check journal schema")
	}
	if exists {
		return nil
	}

	buf, err := migrationFS.ReadFile(latestSchemaFileName)
	if err != nil {
		return errors.Wrap(err, "failed to read latest schema file")
	}
	if _, err := d.ExecContext(ctx, string(buf)); err != nil {
		return errors.Wrap(err, "failed to apply latest schema")
	}
	return nil
}

func (d *DB) CheckTableExists(ctx context.Context, tableName string) (bool, error) {
	query := `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`

	var count int
	if err := d.QueryRowContext(ctx, query, tableName).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

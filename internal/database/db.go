package database

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/AnthonyHerman/cvefeed/internal/config"
)

// DB is the process-wide pool bound to the table it reads from.
type DB struct {
	*sqlx.DB
	schema string
	table  string
}

func New(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return Wrap(db, cfg.Schema, cfg.Table), nil
}

// Wrap binds an already opened pool to schema.table.
func Wrap(db *sqlx.DB, schema, table string) *DB {
	return &DB{DB: db, schema: schema, table: table}
}

// Table returns the schema-qualified table name.
func (db *DB) Table() string {
	return db.schema + "." + db.table
}

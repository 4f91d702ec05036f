package store

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	// Drivers for every supported dialect.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect describes how the tasks table is created and addressed on one
// SQL engine.
type Dialect struct {
	Name       string
	DriverName string
	BindType   int

	// CreateTable bootstraps the tasks table; it must be idempotent.
	CreateTable string

	// Init statements run once after the pool is opened.
	Init []string

	// ReturningID selects INSERT ... RETURNING id over LastInsertId.
	ReturningID bool

	// SingleConn pins the pool to one connection. Required for in-memory
	// sqlite, where every connection would otherwise see its own database.
	SingleConn bool
}

var (
	SQLite = Dialect{
		Name:       "sqlite",
		DriverName: "sqlite",
		BindType:   sqlx.QUESTION,
		CreateTable: `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT NOT NULL CHECK (description <> ''),
		priority INTEGER
	)`,
		Init:       []string{"PRAGMA busy_timeout = 5000"},
		SingleConn: true,
	}

	MySQL = Dialect{
		Name:       "mysql",
		DriverName: "mysql",
		BindType:   sqlx.QUESTION,
		CreateTable: `
	CREATE TABLE IF NOT EXISTS tasks (
		id BIGINT PRIMARY KEY AUTO_INCREMENT,
		description TEXT NOT NULL,
		priority INT NULL,
		CHECK (description <> '')
	)`,
	}

	Postgres = Dialect{
		Name:       "postgres",
		DriverName: "pgx",
		BindType:   sqlx.DOLLAR,
		CreateTable: `
	CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		description TEXT NOT NULL CHECK (description <> ''),
		priority INTEGER
	)`,
		ReturningID: true,
	}
)

// LookupDialect returns the dialect registered under name.
func LookupDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "mysql":
		return MySQL, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", name)
	}
}

// Rebind rewrites ?-style placeholders for this dialect.
func (d Dialect) Rebind(query string) string {
	return sqlx.Rebind(d.BindType, query)
}

// Package store owns the persistent tasks table. Every operation is a single
// statement against the backing SQL engine; failures are returned to the
// caller untouched apart from the operation name.
package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Store defines the physical operations on the tasks table
type Store interface {
	// CreateTask inserts a row and returns the id assigned by the engine.
	CreateTask(ctx context.Context, description string, priority int64) (int64, error)

	// UpdateTask replaces description and priority. An unknown id affects 0 rows.
	UpdateTask(ctx context.Context, id int64, description string, priority int64) (int64, error)

	// DeleteTask removes the row. An unknown id affects 0 rows.
	DeleteTask(ctx context.Context, id int64) (int64, error)

	// ListTasks returns every row ordered by priority, then id.
	ListTasks(ctx context.Context) ([]TaskRow, error)

	Close() error
}

// Options configures how a SQLStore opens its pool
type Options struct {
	Dialect      Dialect
	DSN          string
	MaxOpenConns int
}

// SQLStore implements Store on top of database/sql via sqlx
type SQLStore struct {
	db      *sqlx.DB
	dialect Dialect
}

// New opens a store for the named driver ("sqlite", "mysql", "postgres")
func New(driver string, dsn string) (*SQLStore, error) {
	dialect, err := LookupDialect(driver)
	if err != nil {
		return nil, err
	}
	return Open(context.Background(), Options{Dialect: dialect, DSN: dsn})
}

// Open opens the pool, applies dialect init statements and bootstraps the
// tasks table.
func Open(ctx context.Context, opts Options) (*SQLStore, error) {
	db, err := sqlx.Open(opts.Dialect.DriverName, opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if opts.Dialect.SingleConn {
		db.SetMaxOpenConns(1)
	} else if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &SQLStore{db: db, dialect: opts.Dialect}
	if err := s.bootstrap(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// CreateTask creates a new task
func (s *SQLStore) CreateTask(ctx context.Context, description string, priority int64) (int64, error) {
	if s.dialect.ReturningID {
		query := s.dialect.Rebind(`INSERT INTO tasks (description, priority) VALUES (?, ?) RETURNING id`)
		return QueryReturningID(ctx, s.db, "insert task", query, description, priority)
	}

	query := s.dialect.Rebind(`INSERT INTO tasks (description, priority) VALUES (?, ?)`)
	return ExecuteWithLastInsertID(ctx, s.db, "insert task", query, description, priority)
}

// UpdateTask updates an existing task
func (s *SQLStore) UpdateTask(ctx context.Context, id int64, description string, priority int64) (int64, error) {
	query := s.dialect.Rebind(`UPDATE tasks SET description = ?, priority = ? WHERE id = ?`)
	return ExecuteWithRowsAffected(ctx, s.db, "update task", query, description, priority, id)
}

// DeleteTask deletes a task by ID
func (s *SQLStore) DeleteTask(ctx context.Context, id int64) (int64, error) {
	query := s.dialect.Rebind(`DELETE FROM tasks WHERE id = ?`)
	return ExecuteWithRowsAffected(ctx, s.db, "delete task", query, id)
}

// ListTasks retrieves all tasks in listing order
func (s *SQLStore) ListTasks(ctx context.Context) ([]TaskRow, error) {
	query := `
	SELECT id, description, COALESCE(priority, 0) AS priority
	FROM tasks
	ORDER BY COALESCE(priority, 0) ASC, id ASC`

	return QueryMultiple[TaskRow](ctx, s.db, "list tasks", query)
}

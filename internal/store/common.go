package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// RowsAffected reads the affected row count of a statement result.
// Zero is a valid outcome, not an error.
func RowsAffected(result sql.Result, operation string) (int64, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: rows affected: %w", operation, err)
	}
	return rows, nil
}

// ExecuteWithLastInsertID executes a query and returns the last insert ID
func ExecuteWithLastInsertID(ctx context.Context, db sqlx.ExecerContext, operation string, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", operation, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", operation, err)
	}

	return id, nil
}

// QueryReturningID executes an INSERT ... RETURNING id query
func QueryReturningID(ctx context.Context, db sqlx.QueryerContext, operation string, query string, args ...interface{}) (int64, error) {
	var id int64
	if err := db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", operation, err)
	}
	return id, nil
}

// ExecuteWithRowsAffected executes a query and returns how many rows it touched
func ExecuteWithRowsAffected(ctx context.Context, db sqlx.ExecerContext, operation string, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", operation, err)
	}

	return RowsAffected(result, operation)
}

// QueryMultiple executes a query that returns multiple rows and scans them
// into T by column name. An empty result is an empty, non-nil slice.
func QueryMultiple[T any](ctx context.Context, db sqlx.QueryerContext, operation string, query string, args ...interface{}) ([]T, error) {
	results := []T{}
	if err := sqlx.SelectContext(ctx, db, &results, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return results, nil
}

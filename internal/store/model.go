package store

// TaskRow is a row of the tasks table as returned by the listing query.
// A NULL priority is read back as 0.
type TaskRow struct {
	ID          int64  `db:"id"`
	Description string `db:"description"`
	Priority    int64  `db:"priority"`
}

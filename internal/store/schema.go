package store

import (
	"context"
	"fmt"
)

// bootstrap runs the dialect init statements and creates the tasks table
// when it does not exist yet. There is no versioned migration history: the
// table has a single fixed layout.
func (s *SQLStore) bootstrap(ctx context.Context) error {
	for _, stmt := range s.dialect.Init {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init %s: %w", s.dialect.Name, err)
		}
	}

	if _, err := s.db.ExecContext(ctx, s.dialect.CreateTable); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

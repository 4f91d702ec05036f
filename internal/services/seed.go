package services

import (
	"context"

	"taskboard/internal/domain"
)

// SampleTasks are inserted by Seed into an empty board
var SampleTasks = []domain.Add{
	{Description: "Task 1", Priority: 1},
	{Description: "Task 2", Priority: 2},
	{Description: "Task 3", Priority: 3},
}

// Seed adds SampleTasks through the dispatcher when the board is empty. It
// returns the number of tasks inserted.
func Seed(ctx context.Context, listing ListingQuery, dispatcher Dispatcher) (int, error) {
	tasks, err := listing.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(tasks) > 0 {
		return 0, nil
	}

	for i, sample := range SampleTasks {
		if _, err := dispatcher.Execute(ctx, sample); err != nil {
			return i, err
		}
	}
	return len(SampleTasks), nil
}

package services

import (
	"context"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// listingQueryImpl implements the ListingQuery interface
type listingQueryImpl struct {
	repo repository.Repository
}

// NewListingQuery creates a new ListingQuery
func NewListingQuery(repo repository.Repository) ListingQuery {
	return &listingQueryImpl{repo: repo}
}

// List returns every task in listing order, unmodified
func (l *listingQueryImpl) List(ctx context.Context) ([]*domain.Task, error) {
	return l.repo.ListOrdered(ctx)
}

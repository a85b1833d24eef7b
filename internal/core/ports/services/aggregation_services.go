package services

import (
	"context"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
)

// AggregationSvcFacade groups flat budget entries into the subject tree with
// bottom-up current and baseline totals.
type AggregationSvcFacade interface {
	// AggregateEntries loads the subject forest of a category plus the
	// entries of a scope and returns the grouped, summed display tree.
	AggregateEntries(ctx context.Context, category domain.Category, scope portsrepo.EntryScope) (*domain.AggregateResult, error)

	// ListEntries returns the raw entries of a scope.
	ListEntries(ctx context.Context, scope portsrepo.EntryScope) ([]domain.BudgetEntry, error)
}

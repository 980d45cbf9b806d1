package repositories

import (
	"context"

	"github.com/splitit-app/splitit_backend/internal/core/domain"
)

// CheckReader defines read operations for check aggregates.
type CheckReader interface {
	// FindCheckByID retrieves a fully populated check aggregate by its ID.
	// Returns apperrors.ErrNotFound if no such check exists.
	FindCheckByID(ctx context.Context, checkID string) (*domain.Check, error)

	// ListChecks retrieves all stored check aggregates, in no particular order.
	ListChecks(ctx context.Context) ([]domain.Check, error)
}

// CheckWriter defines write operations for check aggregates.
type CheckWriter interface {
	// SaveCheck persists the full aggregate, overwriting any previous state.
	SaveCheck(ctx context.Context, check domain.Check) error

	// DeleteCheck removes a check aggregate.
	// Returns apperrors.ErrNotFound if no such check exists.
	DeleteCheck(ctx context.Context, checkID string) error
}

// CheckRepositoryFacade combines all check repository interfaces.
// This is a facade for clients that need access to all operations.
type CheckRepositoryFacade interface {
	CheckReader
	CheckWriter
}

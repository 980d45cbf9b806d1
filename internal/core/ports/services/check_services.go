package services

import (
	"context"

	"github.com/splitit-app/splitit_backend/internal/core/domain"
	"github.com/splitit-app/splitit_backend/internal/dto"
)

// CheckReaderSvc defines read operations over checks.
type CheckReaderSvc interface {
	// GetCheckByID retrieves a fully populated check aggregate.
	GetCheckByID(ctx context.Context, checkID string) (*domain.Check, error)

	// ListChecks pages through check summaries in ascending check ID order.
	// The marker is an opaque cursor from a previous call; empty means start
	// from the beginning. The returned marker is empty once the listing is
	// exhausted.
	ListChecks(ctx context.Context, limit int, marker string) ([]domain.CheckSummary, string, error)

	// GroupCheckByOwner computes per-owner totals in cents, with each
	// location's tax and tip pools distributed proportionally over its
	// line items.
	GroupCheckByOwner(ctx context.Context, checkID string) (map[string]int64, error)
}

// CheckWriterSvc defines mutations of the check itself.
type CheckWriterSvc interface {
	// CreateCheck creates a new check seeded with the default location.
	CreateCheck(ctx context.Context, req dto.CreateCheckRequest) (*domain.Check, error)

	// UpdateCheck overwrites the date and/or description. Saving is skipped
	// when neither field changes.
	UpdateCheck(ctx context.Context, checkID string, req dto.UpdateCheckRequest) (*domain.Check, error)

	// DeleteCheck removes the check and returns its last state.
	DeleteCheck(ctx context.Context, checkID string) (*domain.Check, error)
}

// LocationWriterSvc defines mutations of a check's locations.
type LocationWriterSvc interface {
	AddLocation(ctx context.Context, checkID string, req dto.CreateLocationRequest) (*domain.Location, error)

	// UpdateLocation overwrites the named fields. Tax and tip are a full
	// replace: omitting one clears it.
	UpdateLocation(ctx context.Context, checkID, locationID string, req dto.UpdateLocationRequest) (*domain.Location, error)

	// DeleteLocation removes a location that has no line items and is not the
	// check's last location.
	DeleteLocation(ctx context.Context, checkID, locationID string) (*domain.Location, error)
}

// LineItemWriterSvc defines mutations of a check's line items.
type LineItemWriterSvc interface {
	AddLineItem(ctx context.Context, checkID string, req dto.CreateLineItemRequest) (*domain.LineItem, error)

	// UpdateLineItem replaces the line item. Name and location are required;
	// owners and amount are cleared when omitted.
	UpdateLineItem(ctx context.Context, checkID, lineItemID string, req dto.UpdateLineItemRequest) (*domain.LineItem, error)

	// SplitLineItem divides a line item's amount over splitCount items,
	// cloning the original for each additional share.
	SplitLineItem(ctx context.Context, checkID, lineItemID string, req dto.SplitLineItemRequest) ([]domain.LineItem, error)

	DeleteLineItem(ctx context.Context, checkID, lineItemID string) (*domain.LineItem, error)
}

// CheckSvcFacade combines all check-related service interfaces.
type CheckSvcFacade interface {
	CheckReaderSvc
	CheckWriterSvc
	LocationWriterSvc
	LineItemWriterSvc
}

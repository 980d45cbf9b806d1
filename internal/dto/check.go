package dto

import (
	"time"

	"github.com/splitit-app/splitit_backend/internal/core/domain"
)

// CreateCheckRequest defines the data needed to create a new check.
type CreateCheckRequest struct {
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Description string `json:"description" binding:"required"`
}

// UpdateCheckRequest defines the data allowed for updating a check.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCheckRequest struct {
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

// CreateLocationRequest defines the data needed to add a location to a check.
type CreateLocationRequest struct {
	Name       string `json:"name" binding:"required"`
	TaxInCents *int64 `json:"taxInCents" binding:"omitempty,gte=0"`
	TipInCents *int64 `json:"tipInCents" binding:"omitempty,gte=0"`
}

// UpdateLocationRequest defines the data for updating a location.
// Tax and tip are a full replace, not a sparse patch: a field left out of the
// request clears the stored value.
type UpdateLocationRequest struct {
	Name       *string `json:"name"`
	TaxInCents *int64  `json:"taxInCents" binding:"omitempty,gte=0"`
	TipInCents *int64  `json:"tipInCents" binding:"omitempty,gte=0"`
}

// CreateLineItemRequest defines the data needed to add a line item.
// LocationID may be omitted; the service then resolves the target location
// (sole location, or the one with the default name).
type CreateLineItemRequest struct {
	Name          string   `json:"name" binding:"required"`
	LocationID    string   `json:"locationId"`
	Owners        []string `json:"owners"`
	AmountInCents *int64   `json:"amountInCents" binding:"omitempty,gte=0"`
}

// UpdateLineItemRequest defines the data for replacing a line item.
// Name and LocationID are required on every update; Owners and AmountInCents
// are cleared when omitted.
type UpdateLineItemRequest struct {
	Name          string   `json:"name" binding:"required"`
	LocationID    string   `json:"locationId" binding:"required"`
	Owners        []string `json:"owners"`
	AmountInCents *int64   `json:"amountInCents" binding:"omitempty,gte=0"`
}

// SplitLineItemRequest defines the split operation input.
type SplitLineItemRequest struct {
	SplitCount int `json:"splitCount" binding:"required"`
}

// ListChecksParams defines query parameters for listing checks.
type ListChecksParams struct {
	Limit  int    `form:"limit"`
	Marker string `form:"marker"`
}

// LocationResponse defines the data returned for a location.
type LocationResponse struct {
	LocationID    string `json:"locationId"`
	Name          string `json:"name"`
	TaxInCents    *int64 `json:"taxInCents,omitempty"`
	TipInCents    *int64 `json:"tipInCents,omitempty"`
	LineItemCount int    `json:"lineItemCount"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	LineItemID    string   `json:"lineItemId"`
	LocationID    string   `json:"locationId"`
	Name          string   `json:"name"`
	AmountInCents *int64   `json:"amountInCents,omitempty"`
	Owners        []string `json:"owners,omitempty"`
}

// CheckResponse defines the data returned for a full check aggregate.
type CheckResponse struct {
	CheckID         string             `json:"checkId"`
	Date            string             `json:"date"`
	Description     string             `json:"description"`
	CreateTimestamp time.Time          `json:"createTimestamp"`
	Locations       []LocationResponse `json:"locations"`
	LineItems       []LineItemResponse `json:"lineItems"`
}

// CheckSummaryResponse defines the listing projection of a check.
type CheckSummaryResponse struct {
	CheckID     string `json:"checkId"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// ListChecksResponse wraps a page of check summaries. Marker is present only
// when more results remain.
type ListChecksResponse struct {
	Checks []CheckSummaryResponse `json:"checks"`
	Marker string                 `json:"marker,omitempty"`
}

// ByOwnerResponse wraps per-owner totals in cents.
type ByOwnerResponse struct {
	ByOwner map[string]int64 `json:"byOwner"`
}

// ToLocationResponse converts a domain.Location to LocationResponse DTO.
func ToLocationResponse(loc *domain.Location) LocationResponse {
	return LocationResponse{
		LocationID:    loc.LocationID,
		Name:          loc.Name,
		TaxInCents:    loc.TaxInCents,
		TipInCents:    loc.TipInCents,
		LineItemCount: loc.LineItemCount,
	}
}

// ToLineItemResponse converts a domain.LineItem to LineItemResponse DTO.
func ToLineItemResponse(li *domain.LineItem) LineItemResponse {
	return LineItemResponse{
		LineItemID:    li.LineItemID,
		LocationID:    li.LocationID,
		Name:          li.Name,
		AmountInCents: li.AmountInCents,
		Owners:        li.Owners,
	}
}

// ToLineItemResponses converts a slice of domain.LineItem to DTOs.
func ToLineItemResponses(items []domain.LineItem) []LineItemResponse {
	res := make([]LineItemResponse, len(items))
	for i, li := range items {
		res[i] = ToLineItemResponse(&li)
	}
	return res
}

// ToCheckResponse converts a domain.Check to CheckResponse DTO.
func ToCheckResponse(check *domain.Check) CheckResponse {
	locations := make([]LocationResponse, len(check.Locations))
	for i, loc := range check.Locations {
		locations[i] = ToLocationResponse(&loc)
	}
	return CheckResponse{
		CheckID:         check.CheckID,
		Date:            check.Date,
		Description:     check.Description,
		CreateTimestamp: check.CreateTimestamp,
		Locations:       locations,
		LineItems:       ToLineItemResponses(check.LineItems),
	}
}

// ToListChecksResponse converts summaries and a marker to the listing DTO.
func ToListChecksResponse(summaries []domain.CheckSummary, marker string) ListChecksResponse {
	checks := make([]CheckSummaryResponse, len(summaries))
	for i, s := range summaries {
		checks[i] = CheckSummaryResponse{
			CheckID:     s.CheckID,
			Description: s.Description,
			Date:        s.Date,
		}
	}
	return ListChecksResponse{Checks: checks, Marker: marker}
}

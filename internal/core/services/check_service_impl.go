package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/splitit-app/splitit_backend/internal/apperrors"
	"github.com/splitit-app/splitit_backend/internal/core/domain"
	portsrepo "github.com/splitit-app/splitit_backend/internal/core/ports/repositories"
	portssvc "github.com/splitit-app/splitit_backend/internal/core/ports/services"
	"github.com/splitit-app/splitit_backend/internal/dto"
	"github.com/splitit-app/splitit_backend/internal/utils/allocation"
	"github.com/splitit-app/splitit_backend/internal/utils/pagination"
)

// dateRE is the only accepted check date shape. Stricter or looser parsing
// would change which dates existing clients can send.
var dateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// defaultQueryLimit is the page size used when a listing request does not
// specify one.
const defaultQueryLimit = 25

// checkServiceImpl implements the CheckSvcFacade interface.
type checkServiceImpl struct {
	BaseService
	checkRepo portsrepo.CheckRepositoryFacade
}

// NewCheckServiceImpl creates a new check service backed by the given repository.
func NewCheckServiceImpl(repo portsrepo.CheckRepositoryFacade) portssvc.CheckSvcFacade {
	return &checkServiceImpl{checkRepo: repo}
}

// Ensure checkServiceImpl implements the CheckSvcFacade interface
var _ portssvc.CheckSvcFacade = (*checkServiceImpl)(nil)

func validateDate(date string) error {
	if !dateRE.MatchString(date) {
		return fmt.Errorf("invalid date %q: %w", date, apperrors.ErrValidation)
	}
	return nil
}

func validateCents(field string, v *int64) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("invalid %s %d: %w", field, *v, apperrors.ErrValidation)
	}
	return nil
}

func validateOwners(owners []string) error {
	seen := make(map[string]struct{}, len(owners))
	for _, owner := range owners {
		if _, ok := seen[owner]; ok {
			return fmt.Errorf("duplicate owner %q: %w", owner, apperrors.ErrValidation)
		}
		seen[owner] = struct{}{}
	}
	return nil
}

func (s *checkServiceImpl) loadCheck(ctx context.Context, checkID string) (*domain.Check, error) {
	check, err := s.checkRepo.FindCheckByID(ctx, checkID)
	if err != nil {
		return nil, err
	}
	return check, nil
}

func (s *checkServiceImpl) CreateCheck(ctx context.Context, req dto.CreateCheckRequest) (*domain.Check, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if req.Description == "" {
		return nil, fmt.Errorf("missing check description: %w", apperrors.ErrValidation)
	}

	check := domain.Check{
		CheckID:         uuid.NewString(),
		Date:            req.Date,
		Description:     req.Description,
		CreateTimestamp: time.Now().UTC(),
		Locations: []domain.Location{
			{
				LocationID: uuid.NewString(),
				Name:       domain.DefaultLocationName,
			},
		},
	}

	if err := s.checkRepo.SaveCheck(ctx, check); err != nil {
		s.LogError(ctx, err, "Failed to save new check",
			slog.String("check_id", check.CheckID))
		return nil, err
	}

	s.LogInfo(ctx, "Check created successfully",
		slog.String("check_id", check.CheckID),
		slog.String("date", check.Date))
	return &check, nil
}

func (s *checkServiceImpl) GetCheckByID(ctx context.Context, checkID string) (*domain.Check, error) {
	return s.loadCheck(ctx, checkID)
}

func (s *checkServiceImpl) UpdateCheck(ctx context.Context, checkID string, req dto.UpdateCheckRequest) (*domain.Check, error) {
	if req.Date != nil && *req.Date != "" {
		if err := validateDate(*req.Date); err != nil {
			return nil, err
		}
	}

	check, err := s.loadCheck(ctx, checkID)
	if err != nil {
		return nil, err
	}

	modified := false
	if req.Date != nil && *req.Date != "" && *req.Date != check.Date {
		check.Date = *req.Date
		modified = true
	}
	if req.Description != nil && *req.Description != "" && *req.Description != check.Description {
		check.Description = *req.Description
		modified = true
	}

	if !modified {
		s.LogDebug(ctx, "No fields changed for check update",
			slog.String("check_id", checkID))
		return check, nil
	}

	if err := s.checkRepo.SaveCheck(ctx, *check); err != nil {
		s.LogError(ctx, err, "Failed to save updated check",
			slog.String("check_id", checkID))
		return nil, err
	}
	return check, nil
}

func (s *checkServiceImpl) DeleteCheck(ctx context.Context, checkID string) (*domain.Check, error) {
	check, err := s.loadCheck(ctx, checkID)
	if err != nil {
		return nil, err
	}

	if err := s.checkRepo.DeleteCheck(ctx, checkID); err != nil {
		s.LogError(ctx, err, "Failed to delete check",
			slog.String("check_id", checkID))
		return nil, err
	}

	s.LogInfo(ctx, "Check deleted", slog.String("check_id", checkID))
	return check, nil
}

func (s *checkServiceImpl) ListChecks(ctx context.Context, limit int, marker string) ([]domain.CheckSummary, string, error) {
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	afterID := ""
	if marker != "" {
		decoded, err := pagination.DecodeIDToken(marker)
		if err != nil {
			return nil, "", fmt.Errorf("invalid marker: %w", apperrors.ErrValidation)
		}
		afterID = decoded
	}

	checks, err := s.checkRepo.ListChecks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list checks")
		return nil, "", err
	}

	// Pagination is anchored on raw check IDs: sort ascending, then treat the
	// marker as an exclusive lower bound.
	slices.SortFunc(checks, func(a, b domain.Check) int {
		return strings.Compare(a.CheckID, b.CheckID)
	})

	summaries := make([]domain.CheckSummary, 0, limit)
	nextMarker := ""
	for i := range checks {
		if checks[i].CheckID <= afterID {
			continue
		}
		if len(summaries) == limit {
			// More remained after the full page, so hand back a cursor.
			nextMarker = pagination.EncodeIDToken(summaries[limit-1].CheckID)
			break
		}
		summaries = append(summaries, checks[i].Summary())
	}

	s.LogDebug(ctx, "Checks listed",
		slog.Int("count", len(summaries)),
		slog.Bool("has_more", nextMarker != ""))
	return summaries, nextMarker, nil
}

func (s *checkServiceImpl) GroupCheckByOwner(ctx context.Context, checkID string) (map[string]int64, error) {
	check, err := s.loadCheck(ctx, checkID)
	if err != nil {
		return nil, err
	}

	totals, err := allocation.GroupByOwner(check)
	if err != nil {
		s.LogError(ctx, err, "Failed to group check by owner",
			slog.String("check_id", checkID))
		return nil, err
	}
	return totals, nil
}

func (s *checkServiceImpl) AddLocation(ctx context.Context, checkID string, req dto.CreateLocationRequest) (*domain.Location, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("missing location name: %w", apperrors.ErrValidation)
	}
	if err := validateCents("tax", req.TaxInCents); err != nil {
		return nil, err
	}
	if err := validateCents("tip", req.TipInCents); err != nil {
		return nil, err
	}

	check, err := s.loadCheck(ctx, checkID)
	if err != nil {
		return nil, err
	}

	if check.LocationByName(req.Name) != nil {
		return nil, fmt.Errorf("a location with the name %q already exists: %w", req.Name, apperrors.ErrDuplicate)
	}

	location := domain.Location{
		LocationID: uuid.NewString(),
		Name:       req.Name,
		TaxInCents: req.TaxInCents,
		TipInCents: req.TipInCents,
	}
	check.Locations = append(check.Locations, location)

	if err := s.checkRepo.SaveCheck(ctx, *check); err != nil {
		s.LogError(ctx, err, "Failed to save check after adding location",
			slog.String("check_id", checkID),
			slog.String("location_id", location.LocationID))
		return nil, err
	}

	s.LogInfo(ctx, "Location added",
		slog.String("check_id", checkID),
		slog.String("location_id", location.LocationID),
		slog.String("location_name", location.Name))
	return &location, nil
}

func centsChanged(current, next *int64) bool {
	if (current == nil) != (next == nil) {
		return true
	}
	return current != nil && *current != *next
}

func (s *checkServiceImpl) UpdateLocation(ctx context.Context, checkID, locationID string, req dto.UpdateLocationRequest) (*domain.Location, error) {
	if err := validateCents("tax", req.TaxInCents); err != nil {
		return nil, err
	}
	if err := validateCents("tip", req.TipInCents); err != nil {
		return nil, err
	}

	check, err := s.loadCheck(ctx, checkID)
	if err != nil {
		return nil, err
	}

	location := check.LocationByID(locationID)
	if location == nil {
		return nil, fmt.Errorf("no location found for ID %s: %w", locationID, apperrors.ErrNotFound)
	}

	modified := false
	if req.Name != nil && *req.Name != "" && *req.Name != location.Name {
		if existing := check.LocationByName(*req.Name); existing != nil {
			return nil, fmt.Errorf("a location with the name %q already exists: %w", *req.Name, apperrors.ErrDuplicate)
		}
		location.Name = *req.Name
		modified = true
	}

	// Tax and tip are replaced wholesale: leaving one out of the request
	// clears the stored value.
	if centsChanged(location.TaxInCents, req.TaxInCents) {
		location.TaxInCents = req.TaxInCents
		modified = true
	}
	if centsChanged(location.TipInCents, req.TipInCents) {
		location.TipInCents = req.TipInCents
		modified = true
	}

	if !modified {
		s.LogDebug(ctx, "No fields changed for location update",
			slog.String("check_id", checkID),
			slog.String("location_id", locationID))
		return location, nil
	}

	if err := s.checkRepo.SaveCheck(ctx, *check); err != nil {
		s.LogError(ctx, err, "Failed to save check after updating location",
			slog.String("check_id", checkID),
			slog.String("location_id", locationID))
		return nil, err
	}
	return location, nil
}

func (s *checkServiceImpl) DeleteLocation(ctx context.Context, checkID, locationID string) (*domain.Location, error) {
	check, err := s.loadCheck(ctx, checkID)
	if err != nil {
		return nil, err
	}

	location := check.LocationByID(locationID)
	if location == nil {
		return nil, fmt.Errorf("no location found for ID %s: %w", locationID, apperrors.ErrNotFound)
	}
	if location.LineItemCount != 0 {
		return nil, fmt.Errorf("cannot remove location with line items: %w", apperrors.ErrValidation)
	}
	if len(check.Locations) == 1 {
		return nil, fmt.Errorf("cannot remove all locations from check %s: %w", checkID, apperrors.ErrValidation)
	}

	removed := *location
	check.Locations = slices.DeleteFunc(check.Locations, func(loc domain.Location) bool {
		return loc.LocationID == locationID
	})

	if err := s.checkRepo.SaveCheck(ctx, *check); err != nil {
		s.LogError(ctx, err, "Failed to save check after deleting location",
			slog.String("check_id", checkID),
			slog.String("location_id", locationID))
		return nil, err
	}

	s.LogInfo(ctx, "Location deleted",
		slog.String("check_id", checkID),
		slog.String("location_id", locationID))
	return &removed, nil
}

// resolveLocation finds the target location for a line item. An explicit ID
// must match; without one, a sole location or the default-named location is
// used. Anything else is rejected rather than guessed.
func resolveLocation(check *domain.Check, locationID string) (*domain.Location, error) {
	if locationID != "" {
		location := check.LocationByID(locationID)
		if location == nil {
			return nil, fmt.Errorf("no location found for ID %s: %w", locationID, apperrors.ErrNotFound)
		}
		return location, nil
	}

	if len(check.Locations) == 1 {
		return &check.Locations[0], nil
	}
	if location := check.LocationByName(domain.DefaultLocationName); location != nil {
		return location, nil
	}
	return nil, fmt.Errorf("could not determine location: %w", apperrors.ErrValidation)
}

func (s *checkServiceImpl) AddLineItem(ctx context.Context, checkID string, req dto.CreateLineItemRequest) (*domain.LineItem, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("missing line item name: %w", apperrors.ErrValidation)
	}
	if err := validateCents("amount", req.AmountInCents); err != nil {
		return nil, err
	}
	if err := validateOwners(req.Owners); err != nil {
		return nil, err
	}

	check, err := s.loadCheck(ctx, checkID)
	if err != nil {
		return nil, err
	}

	location, err := resolveLocation(check, req.LocationID)
	if err != nil {
		return nil, err
	}

	lineItem := domain.LineItem{
		LineItemID:    uuid.NewString(),
		LocationID:    location.LocationID,
		Name:          req.Name,
		AmountInCents: req.AmountInCents,
		Owners:        slices.Clone(req.Owners),
	}
	location.LineItemCount++
	check.LineItems = append(check.LineItems, lineItem)

	if err := s.checkRepo.SaveCheck(ctx, *check); err != nil {
		s.LogError(ctx, err, "Failed to save check after adding line item",
			slog.String("check_id", checkID),
			slog.String("line_item_id", lineItem.LineItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Line item added",
		slog.String("check_id", checkID),
		slog.String("line_item_id", lineItem.LineItemID),
		slog.String("location_id", location.LocationID))
	return &lineItem, nil
}

func (s *checkServiceImpl) UpdateLineItem(ctx context.Context, checkID, lineItemID string, req dto.UpdateLineItemRequest) (*domain.LineItem, error) {
	// Updates are a strict replace: name and location are mandatory, owners
	// and amount are cleared when omitted.
	if req.Name == "" {
		return nil, fmt.Errorf("missing line item name: %w", apperrors.ErrValidation)
	}
	if req.LocationID == "" {
		return nil, fmt.Errorf("missing line item location: %w", apperrors.ErrValidation)
	}
	if err := validateCents("amount", req.AmountInCents); err != nil {
		return nil, err
	}
	if err := validateOwners(req.Owners); err != nil {
		return nil, err
	}

	check, err := s.loadCheck(ctx, checkID)
	if err != nil {
		return nil, err
	}

	lineItem := check.LineItemByID(lineItemID)
	if lineItem == nil {
		return nil, fmt.Errorf("no line item found for ID %s: %w", lineItemID, apperrors.ErrNotFound)
	}

	newLocation := check.LocationByID(req.LocationID)
	if newLocation == nil {
		return nil, fmt.Errorf("no location found for ID %s: %w", req.LocationID, apperrors.ErrNotFound)
	}

	if lineItem.LocationID != newLocation.LocationID {
		if oldLocation := check.LocationByID(lineItem.LocationID); oldLocation != nil {
			oldLocation.LineItemCount--
		}
		newLocation.LineItemCount++
		lineItem.LocationID = newLocation.LocationID
	}

	lineItem.Name = req.Name
	lineItem.AmountInCents = req.AmountInCents
	lineItem.Owners = slices.Clone(req.Owners)

	if err := s.checkRepo.SaveCheck(ctx, *check); err != nil {
		s.LogError(ctx, err, "Failed to save check after updating line item",
			slog.String("check_id", checkID),
			slog.String("line_item_id", lineItemID))
		return nil, err
	}
	return lineItem, nil
}

func (s *checkServiceImpl) SplitLineItem(ctx context.Context, checkID, lineItemID string, req dto.SplitLineItemRequest) ([]domain.LineItem, error) {
	if req.SplitCount < 1 {
		return nil, fmt.Errorf("invalid split count %d: %w", req.SplitCount, apperrors.ErrValidation)
	}

	check, err := s.loadCheck(ctx, checkID)
	if err != nil {
		return nil, err
	}

	lineItem := check.LineItemByID(lineItemID)
	if lineItem == nil {
		return nil, fmt.Errorf("no line item found for ID %s: %w", lineItemID, apperrors.ErrNotFound)
	}

	location := check.LocationByID(lineItem.LocationID)

	// Floor division: the remainder (at most splitCount-1 cents) is dropped
	// from the check rather than redistributed.
	newAmount := lineItem.Amount() / int64(req.SplitCount)
	lineItem.AmountInCents = &newAmount

	result := []domain.LineItem{*lineItem}
	for n := 1; n < req.SplitCount; n++ {
		amount := newAmount
		clone := domain.LineItem{
			LineItemID:    uuid.NewString(),
			LocationID:    lineItem.LocationID,
			Name:          lineItem.Name,
			AmountInCents: &amount,
			Owners:        slices.Clone(lineItem.Owners),
		}
		if location != nil {
			location.LineItemCount++
		}
		check.LineItems = append(check.LineItems, clone)
		result = append(result, clone)
	}

	if err := s.checkRepo.SaveCheck(ctx, *check); err != nil {
		s.LogError(ctx, err, "Failed to save check after splitting line item",
			slog.String("check_id", checkID),
			slog.String("line_item_id", lineItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Line item split",
		slog.String("check_id", checkID),
		slog.String("line_item_id", lineItemID),
		slog.Int("split_count", req.SplitCount))
	return result, nil
}

func (s *checkServiceImpl) DeleteLineItem(ctx context.Context, checkID, lineItemID string) (*domain.LineItem, error) {
	check, err := s.loadCheck(ctx, checkID)
	if err != nil {
		return nil, err
	}

	lineItem := check.LineItemByID(lineItemID)
	if lineItem == nil {
		return nil, fmt.Errorf("no line item found for ID %s: %w", lineItemID, apperrors.ErrNotFound)
	}

	removed := *lineItem
	if location := check.LocationByID(lineItem.LocationID); location != nil {
		location.LineItemCount--
	}
	check.LineItems = slices.DeleteFunc(check.LineItems, func(li domain.LineItem) bool {
		return li.LineItemID == lineItemID
	})

	if err := s.checkRepo.SaveCheck(ctx, *check); err != nil {
		s.LogError(ctx, err, "Failed to save check after deleting line item",
			slog.String("check_id", checkID),
			slog.String("line_item_id", lineItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Line item deleted",
		slog.String("check_id", checkID),
		slog.String("line_item_id", lineItemID))
	return &removed, nil
}

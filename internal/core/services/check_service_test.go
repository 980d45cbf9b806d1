package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/splitit-app/splitit_backend/internal/apperrors"
	"github.com/splitit-app/splitit_backend/internal/core/domain"
	portssvc "github.com/splitit-app/splitit_backend/internal/core/ports/services"
	"github.com/splitit-app/splitit_backend/internal/core/services"
	"github.com/splitit-app/splitit_backend/internal/dto"
)

// MockCheckRepository is a mock type for the CheckRepositoryFacade interface
type MockCheckRepository struct {
	mock.Mock
}

func (m *MockCheckRepository) FindCheckByID(ctx context.Context, checkID string) (*domain.Check, error) {
	args := m.Called(ctx, checkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Check), args.Error(1)
}

func (m *MockCheckRepository) ListChecks(ctx context.Context) ([]domain.Check, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Check), args.Error(1)
}

func (m *MockCheckRepository) SaveCheck(ctx context.Context, check domain.Check) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

func (m *MockCheckRepository) DeleteCheck(ctx context.Context, checkID string) error {
	args := m.Called(ctx, checkID)
	return args.Error(0)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}

// --- Test Suite Setup ---

type CheckServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCheckRepository
	service  portssvc.CheckSvcFacade
}

func (suite *CheckServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCheckRepository)
	suite.service = services.NewCheckServiceImpl(suite.mockRepo)
}

// newTestCheck builds a freshly created check: one default location, no line items.
func newTestCheck() *domain.Check {
	return &domain.Check{
		CheckID:         uuid.NewString(),
		Date:            "2024-05-01",
		Description:     "team dinner",
		CreateTimestamp: time.Now().UTC(),
		Locations: []domain.Location{
			{LocationID: uuid.NewString(), Name: domain.DefaultLocationName},
		},
	}
}

// --- CreateCheck ---

func (suite *CheckServiceTestSuite) TestCreateCheck_Success() {
	ctx := context.Background()
	req := dto.CreateCheckRequest{Date: "2024-05-01", Description: "team dinner"}

	suite.mockRepo.On("SaveCheck", ctx, mock.AnythingOfType("domain.Check")).Return(nil).Once()

	check, err := suite.service.CreateCheck(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(check)
	suite.NotEmpty(check.CheckID)
	suite.Equal(req.Date, check.Date)
	suite.Equal(req.Description, check.Description)
	suite.WithinDuration(time.Now().UTC(), check.CreateTimestamp, time.Second)

	// Every new check is seeded with exactly one location, the default one.
	suite.Require().Len(check.Locations, 1)
	suite.Equal(domain.DefaultLocationName, check.Locations[0].Name)
	suite.NotEmpty(check.Locations[0].LocationID)
	suite.Zero(check.Locations[0].LineItemCount)
	suite.Empty(check.LineItems)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestCreateCheck_InvalidDate() {
	ctx := context.Background()

	badDates := []string{"", "2024/05/01", "05-01-2024", "2024-5-1", "2024-05-01T12:00", "yesterday"}
	for _, date := range badDates {
		req := dto.CreateCheckRequest{Date: date, Description: "dinner"}

		check, err := suite.service.CreateCheck(ctx, req)

		suite.Require().Error(err, "date %q should be rejected", date)
		suite.Nil(check)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCheck", mock.Anything, mock.Anything)
}

func (suite *CheckServiceTestSuite) TestCreateCheck_MissingDescription() {
	ctx := context.Background()
	req := dto.CreateCheckRequest{Date: "2024-05-01"}

	check, err := suite.service.CreateCheck(ctx, req)

	suite.Require().Error(err)
	suite.Nil(check)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCheck", mock.Anything, mock.Anything)
}

func (suite *CheckServiceTestSuite) TestCreateCheck_SaveError() {
	ctx := context.Background()
	req := dto.CreateCheckRequest{Date: "2024-05-01", Description: "dinner"}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveCheck", ctx, mock.AnythingOfType("domain.Check")).Return(expectedErr).Once()

	check, err := suite.service.CreateCheck(ctx, req)

	suite.Require().Error(err)
	suite.Nil(check)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- GetCheckByID ---

func (suite *CheckServiceTestSuite) TestGetCheckByID_Success() {
	ctx := context.Background()
	expected := newTestCheck()

	suite.mockRepo.On("FindCheckByID", ctx, expected.CheckID).Return(expected, nil).Once()

	check, err := suite.service.GetCheckByID(ctx, expected.CheckID)

	suite.Require().NoError(err)
	suite.Equal(expected, check)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestGetCheckByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindCheckByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	check, err := suite.service.GetCheckByID(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(check)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- UpdateCheck ---

func (suite *CheckServiceTestSuite) TestUpdateCheck_Success() {
	ctx := context.Background()
	existing := newTestCheck()
	req := dto.UpdateCheckRequest{
		Date:        strPtr("2024-06-15"),
		Description: strPtr("birthday drinks"),
	}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveCheck", ctx, mock.MatchedBy(func(c domain.Check) bool {
		return c.CheckID == existing.CheckID &&
			c.Date == "2024-06-15" &&
			c.Description == "birthday drinks"
	})).Return(nil).Once()

	check, err := suite.service.UpdateCheck(ctx, existing.CheckID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(check)
	suite.Equal("2024-06-15", check.Date)
	suite.Equal("birthday drinks", check.Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestUpdateCheck_NoChanges() {
	ctx := context.Background()
	existing := newTestCheck()
	req := dto.UpdateCheckRequest{
		Date:        strPtr(existing.Date),
		Description: strPtr(existing.Description),
	}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()

	check, err := suite.service.UpdateCheck(ctx, existing.CheckID, req)

	suite.Require().NoError(err)
	suite.Equal(existing, check)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCheck", mock.Anything, mock.Anything)
}

func (suite *CheckServiceTestSuite) TestUpdateCheck_InvalidDate() {
	ctx := context.Background()
	req := dto.UpdateCheckRequest{Date: strPtr("June 15th")}

	check, err := suite.service.UpdateCheck(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(check)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCheckByID", mock.Anything, mock.Anything)
}

// --- DeleteCheck ---

func (suite *CheckServiceTestSuite) TestDeleteCheck_Success() {
	ctx := context.Background()
	existing := newTestCheck()

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteCheck", ctx, existing.CheckID).Return(nil).Once()

	check, err := suite.service.DeleteCheck(ctx, existing.CheckID)

	suite.Require().NoError(err)
	// The last persisted state comes back to the caller.
	suite.Equal(existing, check)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestDeleteCheck_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindCheckByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	check, err := suite.service.DeleteCheck(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(check)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCheck", mock.Anything, mock.Anything)
}

// --- ListChecks ---

func (suite *CheckServiceTestSuite) TestListChecks_PagesThroughEverything() {
	ctx := context.Background()

	// Stored unsorted on purpose; listing must order by ID.
	stored := []domain.Check{
		{CheckID: "check-c", Date: "2024-01-03", Description: "third"},
		{CheckID: "check-a", Date: "2024-01-01", Description: "first"},
		{CheckID: "check-b", Date: "2024-01-02", Description: "second"},
	}

	suite.mockRepo.On("ListChecks", ctx).Return(stored, nil).Twice()

	page1, marker, err := suite.service.ListChecks(ctx, 2, "")
	suite.Require().NoError(err)
	suite.Require().Len(page1, 2)
	suite.Equal("check-a", page1[0].CheckID)
	suite.Equal("check-b", page1[1].CheckID)
	suite.Require().NotEmpty(marker)

	page2, marker2, err := suite.service.ListChecks(ctx, 2, marker)
	suite.Require().NoError(err)
	suite.Require().Len(page2, 1)
	suite.Equal("check-c", page2[0].CheckID)
	suite.Empty(marker2)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestListChecks_ExactPageHasNoMarker() {
	ctx := context.Background()
	stored := []domain.Check{
		{CheckID: "check-a", Date: "2024-01-01", Description: "first"},
		{CheckID: "check-b", Date: "2024-01-02", Description: "second"},
	}

	suite.mockRepo.On("ListChecks", ctx).Return(stored, nil).Once()

	summaries, marker, err := suite.service.ListChecks(ctx, 2, "")

	suite.Require().NoError(err)
	suite.Len(summaries, 2)
	// The page holds everything, so no cursor is handed back.
	suite.Empty(marker)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestListChecks_InvalidMarker() {
	ctx := context.Background()

	summaries, marker, err := suite.service.ListChecks(ctx, 10, "!!!not-base64!!!")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(summaries)
	suite.Empty(marker)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListChecks", mock.Anything)
}

func (suite *CheckServiceTestSuite) TestListChecks_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListChecks", ctx).Return(nil, expectedErr).Once()

	summaries, marker, err := suite.service.ListChecks(ctx, 0, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Nil(summaries)
	suite.Empty(marker)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- AddLocation ---

func (suite *CheckServiceTestSuite) TestAddLocation_Success() {
	ctx := context.Background()
	existing := newTestCheck()
	req := dto.CreateLocationRequest{
		Name:       "bar",
		TaxInCents: int64Ptr(250),
		TipInCents: int64Ptr(400),
	}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveCheck", ctx, mock.MatchedBy(func(c domain.Check) bool {
		return len(c.Locations) == 2 && c.Locations[1].Name == "bar"
	})).Return(nil).Once()

	location, err := suite.service.AddLocation(ctx, existing.CheckID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(location)
	suite.NotEmpty(location.LocationID)
	suite.Equal("bar", location.Name)
	suite.Equal(int64(250), *location.TaxInCents)
	suite.Equal(int64(400), *location.TipInCents)
	suite.Zero(location.LineItemCount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestAddLocation_DuplicateName() {
	ctx := context.Background()
	existing := newTestCheck()
	req := dto.CreateLocationRequest{Name: domain.DefaultLocationName}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()

	location, err := suite.service.AddLocation(ctx, existing.CheckID, req)

	suite.Require().Error(err)
	suite.Nil(location)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCheck", mock.Anything, mock.Anything)
}

func (suite *CheckServiceTestSuite) TestAddLocation_NegativeTax() {
	ctx := context.Background()
	req := dto.CreateLocationRequest{Name: "bar", TaxInCents: int64Ptr(-1)}

	location, err := suite.service.AddLocation(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(location)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCheckByID", mock.Anything, mock.Anything)
}

// --- UpdateLocation ---

func (suite *CheckServiceTestSuite) TestUpdateLocation_ClearsOmittedTaxAndTip() {
	ctx := context.Background()
	existing := newTestCheck()
	existing.Locations[0].TaxInCents = int64Ptr(300)
	existing.Locations[0].TipInCents = int64Ptr(500)
	locationID := existing.Locations[0].LocationID

	// Only tip is supplied, so tax must be cleared.
	req := dto.UpdateLocationRequest{TipInCents: int64Ptr(600)}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveCheck", ctx, mock.MatchedBy(func(c domain.Check) bool {
		loc := c.LocationByID(locationID)
		return loc != nil && loc.TaxInCents == nil && loc.TipInCents != nil && *loc.TipInCents == 600
	})).Return(nil).Once()

	location, err := suite.service.UpdateLocation(ctx, existing.CheckID, locationID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(location)
	suite.Nil(location.TaxInCents)
	suite.Equal(int64(600), *location.TipInCents)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestUpdateLocation_RenameConflict() {
	ctx := context.Background()
	existing := newTestCheck()
	existing.Locations = append(existing.Locations, domain.Location{
		LocationID: uuid.NewString(),
		Name:       "bar",
	})
	barID := existing.Locations[1].LocationID

	req := dto.UpdateLocationRequest{Name: strPtr(domain.DefaultLocationName)}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()

	location, err := suite.service.UpdateLocation(ctx, existing.CheckID, barID, req)

	suite.Require().Error(err)
	suite.Nil(location)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCheck", mock.Anything, mock.Anything)
}

func (suite *CheckServiceTestSuite) TestUpdateLocation_NoChanges() {
	ctx := context.Background()
	existing := newTestCheck()
	existing.Locations[0].TipInCents = int64Ptr(500)
	locationID := existing.Locations[0].LocationID

	req := dto.UpdateLocationRequest{
		Name:       strPtr(domain.DefaultLocationName),
		TipInCents: int64Ptr(500),
	}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()

	location, err := suite.service.UpdateLocation(ctx, existing.CheckID, locationID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(location)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCheck", mock.Anything, mock.Anything)
}

func (suite *CheckServiceTestSuite) TestUpdateLocation_NotFound() {
	ctx := context.Background()
	existing := newTestCheck()

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()

	location, err := suite.service.UpdateLocation(ctx, existing.CheckID, uuid.NewString(), dto.UpdateLocationRequest{})

	suite.Require().Error(err)
	suite.Nil(location)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteLocation ---

func (suite *CheckServiceTestSuite) TestDeleteLocation_Success() {
	ctx := context.Background()
	existing := newTestCheck()
	existing.Locations = append(existing.Locations, domain.Location{
		LocationID: uuid.NewString(),
		Name:       "bar",
	})
	barID := existing.Locations[1].LocationID

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveCheck", ctx, mock.MatchedBy(func(c domain.Check) bool {
		return len(c.Locations) == 1 && c.LocationByID(barID) == nil
	})).Return(nil).Once()

	location, err := suite.service.DeleteLocation(ctx, existing.CheckID, barID)

	suite.Require().NoError(err)
	suite.Require().NotNil(location)
	suite.Equal(barID, location.LocationID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestDeleteLocation_StillReferenced() {
	ctx := context.Background()
	existing := newTestCheck()
	existing.Locations = append(existing.Locations, domain.Location{
		LocationID:    uuid.NewString(),
		Name:          "bar",
		LineItemCount: 1,
	})
	barID := existing.Locations[1].LocationID

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()

	location, err := suite.service.DeleteLocation(ctx, existing.CheckID, barID)

	suite.Require().Error(err)
	suite.Nil(location)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCheck", mock.Anything, mock.Anything)
}

func (suite *CheckServiceTestSuite) TestDeleteLocation_LastLocation() {
	ctx := context.Background()
	existing := newTestCheck()
	locationID := existing.Locations[0].LocationID

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()

	location, err := suite.service.DeleteLocation(ctx, existing.CheckID, locationID)

	suite.Require().Error(err)
	suite.Nil(location)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCheck", mock.Anything, mock.Anything)
}

// --- AddLineItem ---

func (suite *CheckServiceTestSuite) TestAddLineItem_ResolvesSoleLocation() {
	ctx := context.Background()
	existing := newTestCheck()
	locationID := existing.Locations[0].LocationID
	req := dto.CreateLineItemRequest{
		Name:          "nachos",
		Owners:        []string{"alice", "bob"},
		AmountInCents: int64Ptr(1250),
	}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveCheck", ctx, mock.MatchedBy(func(c domain.Check) bool {
		return len(c.LineItems) == 1 &&
			c.LineItems[0].LocationID == locationID &&
			c.LocationByID(locationID).LineItemCount == 1
	})).Return(nil).Once()

	lineItem, err := suite.service.AddLineItem(ctx, existing.CheckID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(lineItem)
	suite.NotEmpty(lineItem.LineItemID)
	suite.Equal(locationID, lineItem.LocationID)
	suite.Equal("nachos", lineItem.Name)
	suite.Equal(int64(1250), *lineItem.AmountInCents)
	suite.Equal([]string{"alice", "bob"}, lineItem.Owners)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestAddLineItem_ResolvesDefaultLocation() {
	ctx := context.Background()
	existing := newTestCheck()
	existing.Locations = append(existing.Locations, domain.Location{
		LocationID: uuid.NewString(),
		Name:       "bar",
	})
	defaultID := existing.Locations[0].LocationID
	req := dto.CreateLineItemRequest{Name: "water"}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveCheck", ctx, mock.AnythingOfType("domain.Check")).Return(nil).Once()

	lineItem, err := suite.service.AddLineItem(ctx, existing.CheckID, req)

	suite.Require().NoError(err)
	suite.Equal(defaultID, lineItem.LocationID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestAddLineItem_AmbiguousLocation() {
	ctx := context.Background()
	existing := newTestCheck()
	existing.Locations[0].Name = "bar"
	existing.Locations = append(existing.Locations, domain.Location{
		LocationID: uuid.NewString(),
		Name:       "patio",
	})
	req := dto.CreateLineItemRequest{Name: "water"}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()

	lineItem, err := suite.service.AddLineItem(ctx, existing.CheckID, req)

	suite.Require().Error(err)
	suite.Nil(lineItem)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCheck", mock.Anything, mock.Anything)
}

func (suite *CheckServiceTestSuite) TestAddLineItem_UnknownLocation() {
	ctx := context.Background()
	existing := newTestCheck()
	req := dto.CreateLineItemRequest{Name: "water", LocationID: uuid.NewString()}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()

	lineItem, err := suite.service.AddLineItem(ctx, existing.CheckID, req)

	suite.Require().Error(err)
	suite.Nil(lineItem)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CheckServiceTestSuite) TestAddLineItem_DuplicateOwners() {
	ctx := context.Background()
	req := dto.CreateLineItemRequest{Name: "water", Owners: []string{"alice", "alice"}}

	lineItem, err := suite.service.AddLineItem(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(lineItem)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCheckByID", mock.Anything, mock.Anything)
}

// --- UpdateLineItem ---

func (suite *CheckServiceTestSuite) TestUpdateLineItem_MovesBetweenLocations() {
	ctx := context.Background()
	existing := newTestCheck()
	existing.Locations[0].LineItemCount = 1
	existing.Locations = append(existing.Locations, domain.Location{
		LocationID: uuid.NewString(),
		Name:       "bar",
	})
	oldID := existing.Locations[0].LocationID
	newID := existing.Locations[1].LocationID
	existing.LineItems = []domain.LineItem{{
		LineItemID:    uuid.NewString(),
		LocationID:    oldID,
		Name:          "wings",
		AmountInCents: int64Ptr(900),
		Owners:        []string{"alice"},
	}}
	lineItemID := existing.LineItems[0].LineItemID

	req := dto.UpdateLineItemRequest{
		Name:          "wings",
		LocationID:    newID,
		AmountInCents: int64Ptr(900),
	}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveCheck", ctx, mock.MatchedBy(func(c domain.Check) bool {
		return c.LocationByID(oldID).LineItemCount == 0 &&
			c.LocationByID(newID).LineItemCount == 1
	})).Return(nil).Once()

	lineItem, err := suite.service.UpdateLineItem(ctx, existing.CheckID, lineItemID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(lineItem)
	suite.Equal(newID, lineItem.LocationID)
	// Owners were omitted from the replacement, so they are gone.
	suite.Empty(lineItem.Owners)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestUpdateLineItem_MissingName() {
	ctx := context.Background()
	req := dto.UpdateLineItemRequest{LocationID: uuid.NewString()}

	lineItem, err := suite.service.UpdateLineItem(ctx, uuid.NewString(), uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(lineItem)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCheckByID", mock.Anything, mock.Anything)
}

func (suite *CheckServiceTestSuite) TestUpdateLineItem_UnknownLocation() {
	ctx := context.Background()
	existing := newTestCheck()
	existing.LineItems = []domain.LineItem{{
		LineItemID: uuid.NewString(),
		LocationID: existing.Locations[0].LocationID,
		Name:       "wings",
	}}
	lineItemID := existing.LineItems[0].LineItemID

	req := dto.UpdateLineItemRequest{Name: "wings", LocationID: uuid.NewString()}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()

	lineItem, err := suite.service.UpdateLineItem(ctx, existing.CheckID, lineItemID, req)

	suite.Require().Error(err)
	suite.Nil(lineItem)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCheck", mock.Anything, mock.Anything)
}

// --- SplitLineItem ---

func (suite *CheckServiceTestSuite) TestSplitLineItem_ThreeWays() {
	ctx := context.Background()
	existing := newTestCheck()
	locationID := existing.Locations[0].LocationID
	existing.Locations[0].LineItemCount = 1
	existing.LineItems = []domain.LineItem{{
		LineItemID:    uuid.NewString(),
		LocationID:    locationID,
		Name:          "pitcher",
		AmountInCents: int64Ptr(1000),
		Owners:        []string{"alice"},
	}}
	lineItemID := existing.LineItems[0].LineItemID

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveCheck", ctx, mock.MatchedBy(func(c domain.Check) bool {
		return len(c.LineItems) == 3 && c.LocationByID(locationID).LineItemCount == 3
	})).Return(nil).Once()

	lineItems, err := suite.service.SplitLineItem(ctx, existing.CheckID, lineItemID, dto.SplitLineItemRequest{SplitCount: 3})

	suite.Require().NoError(err)
	suite.Require().Len(lineItems, 3)

	// 1000 / 3 floors to 333; the 1 cent remainder is dropped from the check.
	var total int64
	for _, li := range lineItems {
		suite.Equal(int64(333), *li.AmountInCents)
		suite.Equal("pitcher", li.Name)
		suite.Equal(locationID, li.LocationID)
		suite.Equal([]string{"alice"}, li.Owners)
		total += *li.AmountInCents
	}
	suite.LessOrEqual(int64(1000)-total, int64(2))
	suite.Equal(lineItemID, lineItems[0].LineItemID)
	suite.NotEqual(lineItems[0].LineItemID, lineItems[1].LineItemID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestSplitLineItem_CountOfOneIsIdentity() {
	ctx := context.Background()
	existing := newTestCheck()
	existing.Locations[0].LineItemCount = 1
	existing.LineItems = []domain.LineItem{{
		LineItemID:    uuid.NewString(),
		LocationID:    existing.Locations[0].LocationID,
		Name:          "pitcher",
		AmountInCents: int64Ptr(999),
	}}
	lineItemID := existing.LineItems[0].LineItemID

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveCheck", ctx, mock.MatchedBy(func(c domain.Check) bool {
		return len(c.LineItems) == 1 && c.Locations[0].LineItemCount == 1
	})).Return(nil).Once()

	lineItems, err := suite.service.SplitLineItem(ctx, existing.CheckID, lineItemID, dto.SplitLineItemRequest{SplitCount: 1})

	suite.Require().NoError(err)
	suite.Require().Len(lineItems, 1)
	suite.Equal(int64(999), *lineItems[0].AmountInCents)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestSplitLineItem_InvalidCount() {
	ctx := context.Background()

	lineItems, err := suite.service.SplitLineItem(ctx, uuid.NewString(), uuid.NewString(), dto.SplitLineItemRequest{SplitCount: 0})

	suite.Require().Error(err)
	suite.Nil(lineItems)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCheckByID", mock.Anything, mock.Anything)
}

func (suite *CheckServiceTestSuite) TestSplitLineItem_NotFound() {
	ctx := context.Background()
	existing := newTestCheck()

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()

	lineItems, err := suite.service.SplitLineItem(ctx, existing.CheckID, uuid.NewString(), dto.SplitLineItemRequest{SplitCount: 2})

	suite.Require().Error(err)
	suite.Nil(lineItems)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteLineItem ---

func (suite *CheckServiceTestSuite) TestDeleteLineItem_Success() {
	ctx := context.Background()
	existing := newTestCheck()
	locationID := existing.Locations[0].LocationID
	existing.Locations[0].LineItemCount = 1
	existing.LineItems = []domain.LineItem{{
		LineItemID:    uuid.NewString(),
		LocationID:    locationID,
		Name:          "wings",
		AmountInCents: int64Ptr(900),
	}}
	lineItemID := existing.LineItems[0].LineItemID

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveCheck", ctx, mock.MatchedBy(func(c domain.Check) bool {
		return len(c.LineItems) == 0 && c.LocationByID(locationID).LineItemCount == 0
	})).Return(nil).Once()

	lineItem, err := suite.service.DeleteLineItem(ctx, existing.CheckID, lineItemID)

	suite.Require().NoError(err)
	suite.Require().NotNil(lineItem)
	suite.Equal(lineItemID, lineItem.LineItemID)
	suite.Equal("wings", lineItem.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestDeleteLineItem_NotFound() {
	ctx := context.Background()
	existing := newTestCheck()

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()

	lineItem, err := suite.service.DeleteLineItem(ctx, existing.CheckID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(lineItem)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCheck", mock.Anything, mock.Anything)
}

// --- GroupCheckByOwner ---

func (suite *CheckServiceTestSuite) TestGroupCheckByOwner_Success() {
	ctx := context.Background()
	existing := newTestCheck()
	locationID := existing.Locations[0].LocationID
	existing.Locations[0].TipInCents = int64Ptr(2500)
	existing.Locations[0].LineItemCount = 2
	existing.LineItems = []domain.LineItem{
		{LineItemID: uuid.NewString(), LocationID: locationID, Name: "a", AmountInCents: int64Ptr(4000), Owners: []string{"alice"}},
		{LineItemID: uuid.NewString(), LocationID: locationID, Name: "b", AmountInCents: int64Ptr(6000), Owners: []string{"bob"}},
	}

	suite.mockRepo.On("FindCheckByID", ctx, existing.CheckID).Return(existing, nil).Once()

	totals, err := suite.service.GroupCheckByOwner(ctx, existing.CheckID)

	suite.Require().NoError(err)
	// 2500 tip over 10000 spend: every amount is scaled by 1.25.
	suite.Equal(map[string]int64{"alice": 5000, "bob": 7500}, totals)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestGroupCheckByOwner_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindCheckByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	totals, err := suite.service.GroupCheckByOwner(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(totals)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Test Suite ---

func TestCheckService(t *testing.T) {
	suite.Run(t, new(CheckServiceTestSuite))
}

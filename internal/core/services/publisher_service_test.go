package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/internal/core/domain"
	portssvc "github.com/opusregistry/catalog_backend/internal/core/ports/services"
	"github.com/opusregistry/catalog_backend/internal/core/services"
	"github.com/opusregistry/catalog_backend/internal/dto"
	"github.com/opusregistry/catalog_backend/pkg/tenantctx"
)

// --- Mock PublisherRepository ---
type MockPublisherRepository struct {
	mock.Mock
}

func (m *MockPublisherRepository) FindPublisherByID(ctx context.Context, publisherID string) (*domain.Publisher, error) {
	args := m.Called(ctx, publisherID)
	var p *domain.Publisher
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Publisher)
	}
	return p, args.Error(1)
}

func (m *MockPublisherRepository) FindPublisherBySubdomain(ctx context.Context, subdomain string) (*domain.Publisher, error) {
	args := m.Called(ctx, subdomain)
	var p *domain.Publisher
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Publisher)
	}
	return p, args.Error(1)
}

func (m *MockPublisherRepository) SavePublisher(ctx context.Context, publisher domain.Publisher) error {
	args := m.Called(ctx, publisher)
	return args.Error(0)
}

func (m *MockPublisherRepository) UpdatePublisher(ctx context.Context, publisher domain.Publisher) error {
	args := m.Called(ctx, publisher)
	return args.Error(0)
}

// --- Test Suite ---
type PublisherServiceTestSuite struct {
	suite.Suite
	mockPublisherRepo *MockPublisherRepository
	service           portssvc.PublisherSvcFacade
}

func (suite *PublisherServiceTestSuite) SetupTest() {
	suite.mockPublisherRepo = new(MockPublisherRepository)
	suite.service = services.NewPublisherService(suite.mockPublisherRepo)
}

// --- CreatePublisher Tests ---
func (suite *PublisherServiceTestSuite) TestCreatePublisher_AppliesDefaults() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreatePublisherRequest{
		Name:      "Riverbend Music",
		Subdomain: "RiverBend",
	}

	suite.mockPublisherRepo.On("SavePublisher", ctx, mock.MatchedBy(func(p domain.Publisher) bool {
		return p.Subdomain == "riverbend" &&
			p.Status == domain.PublisherTrial &&
			p.PlanType == domain.PlanFree &&
			p.Settings != nil && len(p.Settings) == 0
	})).Return(nil).Once()

	publisher, err := suite.service.CreatePublisher(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(publisher)
	suite.Equal("riverbend", publisher.Subdomain)
	suite.Equal(domain.PublisherTrial, publisher.Status)
	suite.Equal(creatorID, publisher.CreatedBy)
	suite.mockPublisherRepo.AssertExpectations(suite.T())
}

func (suite *PublisherServiceTestSuite) TestCreatePublisher_ExplicitStatusAndPlan() {
	ctx := context.Background()
	req := dto.CreatePublisherRequest{
		Name:      "Riverbend Music",
		Subdomain: "riverbend",
		Status:    domain.PublisherActive,
		PlanType:  domain.PlanProfessional,
	}

	suite.mockPublisherRepo.On("SavePublisher", ctx, mock.MatchedBy(func(p domain.Publisher) bool {
		return p.Status == domain.PublisherActive && p.PlanType == domain.PlanProfessional
	})).Return(nil).Once()

	publisher, err := suite.service.CreatePublisher(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.PlanProfessional, publisher.PlanType)
	suite.mockPublisherRepo.AssertExpectations(suite.T())
}

func (suite *PublisherServiceTestSuite) TestCreatePublisher_SaveError() {
	ctx := context.Background()
	req := dto.CreatePublisherRequest{Name: "Riverbend Music", Subdomain: "riverbend"}

	suite.mockPublisherRepo.On("SavePublisher", ctx, mock.AnythingOfType("domain.Publisher")).
		Return(apperrors.NewConflictError("subdomain already taken")).Once()

	publisher, err := suite.service.CreatePublisher(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(publisher)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- GetPublisherByID Tests ---
func (suite *PublisherServiceTestSuite) TestGetPublisherByID_Success() {
	ctx := context.Background()
	publisherID := uuid.NewString()
	publisher := &domain.Publisher{PublisherID: publisherID, Name: "Riverbend Music"}

	suite.mockPublisherRepo.On("FindPublisherByID", ctx, publisherID).Return(publisher, nil).Once()

	got, err := suite.service.GetPublisherByID(ctx, publisherID)

	suite.Require().NoError(err)
	suite.Equal(publisher, got)
	suite.mockPublisherRepo.AssertExpectations(suite.T())
}

func (suite *PublisherServiceTestSuite) TestGetPublisherByID_NotFound() {
	ctx := context.Background()
	publisherID := uuid.NewString()

	suite.mockPublisherRepo.On("FindPublisherByID", ctx, publisherID).
		Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetPublisherByID(ctx, publisherID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdatePublisher Tests ---
func (suite *PublisherServiceTestSuite) TestUpdatePublisher_Success() {
	publisherID := uuid.NewString()
	ctx := tenantctx.WithPublisherID(context.Background(), publisherID)
	updaterID := uuid.NewString()
	publisher := &domain.Publisher{
		PublisherID: publisherID,
		Name:        "Riverbend Music",
		Status:      domain.PublisherTrial,
	}
	newName := "Riverbend Music Group"

	suite.mockPublisherRepo.On("FindPublisherByID", ctx, publisherID).Return(publisher, nil).Once()
	suite.mockPublisherRepo.On("UpdatePublisher", ctx, mock.MatchedBy(func(p domain.Publisher) bool {
		return p.Name == "Riverbend Music Group" && p.UpdatedBy == updaterID
	})).Return(nil).Once()

	updated, err := suite.service.UpdatePublisher(ctx, publisherID, dto.UpdatePublisherRequest{Name: &newName}, updaterID)

	suite.Require().NoError(err)
	suite.Equal("Riverbend Music Group", updated.Name)
	suite.mockPublisherRepo.AssertExpectations(suite.T())
}

func (suite *PublisherServiceTestSuite) TestUpdatePublisher_NoTenantContext() {
	ctx := context.Background()
	publisherID := uuid.NewString()
	newName := "Riverbend Music Group"

	updated, err := suite.service.UpdatePublisher(ctx, publisherID, dto.UpdatePublisherRequest{Name: &newName}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPublisherRepo.AssertNotCalled(suite.T(), "UpdatePublisher", mock.Anything, mock.Anything)
}

func (suite *PublisherServiceTestSuite) TestUpdatePublisher_ForeignTenantContext() {
	publisherID := uuid.NewString()
	ctx := tenantctx.WithPublisherID(context.Background(), uuid.NewString())
	newName := "Riverbend Music Group"

	updated, err := suite.service.UpdatePublisher(ctx, publisherID, dto.UpdatePublisherRequest{Name: &newName}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPublisherRepo.AssertNotCalled(suite.T(), "FindPublisherByID", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestPublisherService(t *testing.T) {
	suite.Run(t, new(PublisherServiceTestSuite))
}

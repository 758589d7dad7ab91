package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/internal/core/domain"
	portsrepo "github.com/opusregistry/catalog_backend/internal/core/ports/repositories"
	portssvc "github.com/opusregistry/catalog_backend/internal/core/ports/services"
	"github.com/opusregistry/catalog_backend/internal/core/services"
	"github.com/opusregistry/catalog_backend/internal/dto"
)

// --- Mock SongwriterRepository ---
type MockSongwriterRepository struct {
	mock.Mock
}

func (m *MockSongwriterRepository) FindSongwriterByID(ctx context.Context, songwriterID string) (*domain.Songwriter, error) {
	args := m.Called(ctx, songwriterID)
	var sw *domain.Songwriter
	if args.Get(0) != nil {
		sw = args.Get(0).(*domain.Songwriter)
	}
	return sw, args.Error(1)
}

func (m *MockSongwriterRepository) FindSongwriters(ctx context.Context, filter portsrepo.SongwriterListFilter) ([]domain.Songwriter, int, error) {
	args := m.Called(ctx, filter)
	var sws []domain.Songwriter
	if args.Get(0) != nil {
		sws = args.Get(0).([]domain.Songwriter)
	}
	return sws, args.Int(1), args.Error(2)
}

func (m *MockSongwriterRepository) FindSongwriterByIPI(ctx context.Context, ipi string) (*domain.Songwriter, error) {
	args := m.Called(ctx, ipi)
	var sw *domain.Songwriter
	if args.Get(0) != nil {
		sw = args.Get(0).(*domain.Songwriter)
	}
	return sw, args.Error(1)
}

func (m *MockSongwriterRepository) FindSongwriterByEmail(ctx context.Context, email string) (*domain.Songwriter, error) {
	args := m.Called(ctx, email)
	var sw *domain.Songwriter
	if args.Get(0) != nil {
		sw = args.Get(0).(*domain.Songwriter)
	}
	return sw, args.Error(1)
}

func (m *MockSongwriterRepository) SearchSongwriters(ctx context.Context, query string, limit int) ([]domain.Songwriter, error) {
	args := m.Called(ctx, query, limit)
	var sws []domain.Songwriter
	if args.Get(0) != nil {
		sws = args.Get(0).([]domain.Songwriter)
	}
	return sws, args.Error(1)
}

func (m *MockSongwriterRepository) SaveSongwriter(ctx context.Context, songwriter domain.Songwriter) error {
	args := m.Called(ctx, songwriter)
	return args.Error(0)
}

func (m *MockSongwriterRepository) UpdateSongwriter(ctx context.Context, songwriter domain.Songwriter) error {
	args := m.Called(ctx, songwriter)
	return args.Error(0)
}

func (m *MockSongwriterRepository) DeleteSongwriter(ctx context.Context, songwriterID string) error {
	args := m.Called(ctx, songwriterID)
	return args.Error(0)
}

func (m *MockSongwriterRepository) SwapSongwriterIPIs(ctx context.Context, songwriterIDA, songwriterIDB string) error {
	args := m.Called(ctx, songwriterIDA, songwriterIDB)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

// --- Test Suite ---
type SongwriterServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSongwriterRepository
	service  portssvc.SongwriterSvcFacade
}

func (suite *SongwriterServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSongwriterRepository)
	suite.service = services.NewSongwriterService(suite.mockRepo)
}

// --- CreateSongwriter Tests ---
func (suite *SongwriterServiceTestSuite) TestCreateSongwriter_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateSongwriterRequest{
		FirstName: "Maria",
		LastName:  "Santos",
		IPI:       strPtr("00014107338"),
		Email:     strPtr("maria@example.com"),
	}

	suite.mockRepo.On("SaveSongwriter", ctx, mock.MatchedBy(func(sw domain.Songwriter) bool {
		return sw.FirstName == "Maria" && sw.LastName == "Santos" &&
			sw.IPI != nil && *sw.IPI == "00014107338" &&
			sw.Status == domain.SongwriterActive &&
			sw.CreatedBy == creatorID
	})).Return(nil).Once()

	created, err := suite.service.CreateSongwriter(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.SongwriterID)
	suite.Equal(domain.SongwriterActive, created.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SongwriterServiceTestSuite) TestCreateSongwriter_NormalizesIPISeparators() {
	ctx := context.Background()
	req := dto.CreateSongwriterRequest{
		FirstName: "Maria",
		LastName:  "Santos",
		IPI:       strPtr("000-14.10 7338"),
	}

	suite.mockRepo.On("SaveSongwriter", ctx, mock.MatchedBy(func(sw domain.Songwriter) bool {
		return sw.IPI != nil && *sw.IPI == "00014107338"
	})).Return(nil).Once()

	created, err := suite.service.CreateSongwriter(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("00014107338", *created.IPI)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SongwriterServiceTestSuite) TestCreateSongwriter_InvalidIPI() {
	ctx := context.Background()
	req := dto.CreateSongwriterRequest{
		FirstName: "Maria",
		LastName:  "Santos",
		IPI:       strPtr("12AB34"),
	}

	created, err := suite.service.CreateSongwriter(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	var ruleErr *services.RuleError
	suite.Require().ErrorAs(err, &ruleErr)
	suite.Len(ruleErr.Findings, 1)
	suite.Equal("INVALID_IPI_FORMAT", ruleErr.Findings[0].Code)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSongwriter", mock.Anything, mock.Anything)
}

func (suite *SongwriterServiceTestSuite) TestCreateSongwriter_CollectsAllFindings() {
	ctx := context.Background()
	deceased := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateSongwriterRequest{
		FirstName:    "Maria",
		LastName:     "Santos",
		IPI:          strPtr("123"),
		ISNI:         strPtr("not-an-isni"),
		Status:       domain.SongwriterActive,
		DeceasedDate: &deceased,
	}

	created, err := suite.service.CreateSongwriter(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	var ruleErr *services.RuleError
	suite.Require().ErrorAs(err, &ruleErr)
	codes := make([]string, len(ruleErr.Findings))
	for i, f := range ruleErr.Findings {
		codes[i] = f.Code
	}
	suite.Contains(codes, "INVALID_IPI_FORMAT")
	suite.Contains(codes, "INVALID_ISNI_FORMAT")
	suite.Contains(codes, "DECEASED_DATE_WITHOUT_STATUS")
}

func (suite *SongwriterServiceTestSuite) TestCreateSongwriter_DeceasedDateWithDeceasedStatus() {
	ctx := context.Background()
	deceased := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateSongwriterRequest{
		FirstName:    "Maria",
		LastName:     "Santos",
		Status:       domain.SongwriterDeceased,
		DeceasedDate: &deceased,
	}

	suite.mockRepo.On("SaveSongwriter", ctx, mock.AnythingOfType("domain.Songwriter")).Return(nil).Once()

	created, err := suite.service.CreateSongwriter(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.SongwriterDeceased, created.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SongwriterServiceTestSuite) TestCreateSongwriter_SaveError() {
	ctx := context.Background()
	req := dto.CreateSongwriterRequest{FirstName: "Maria", LastName: "Santos"}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveSongwriter", ctx, mock.AnythingOfType("domain.Songwriter")).Return(expectedErr).Once()

	created, err := suite.service.CreateSongwriter(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- GetSongwriterByID Tests ---
func (suite *SongwriterServiceTestSuite) TestGetSongwriterByID_Success() {
	ctx := context.Background()
	songwriterID := uuid.NewString()
	expected := &domain.Songwriter{SongwriterID: songwriterID, FirstName: "Maria", LastName: "Santos"}

	suite.mockRepo.On("FindSongwriterByID", ctx, songwriterID).Return(expected, nil).Once()

	sw, err := suite.service.GetSongwriterByID(ctx, songwriterID)

	suite.Require().NoError(err)
	suite.Equal(expected, sw)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SongwriterServiceTestSuite) TestGetSongwriterByID_NotFound() {
	ctx := context.Background()
	songwriterID := uuid.NewString()

	suite.mockRepo.On("FindSongwriterByID", ctx, songwriterID).Return(nil, apperrors.ErrNotFound).Once()

	sw, err := suite.service.GetSongwriterByID(ctx, songwriterID)

	suite.Require().Error(err)
	suite.Nil(sw)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- UpdateSongwriter Tests ---
func (suite *SongwriterServiceTestSuite) TestUpdateSongwriter_Success() {
	ctx := context.Background()
	songwriterID := uuid.NewString()
	updaterID := uuid.NewString()
	original := &domain.Songwriter{
		SongwriterID: songwriterID,
		FirstName:    "Maria",
		LastName:     "Santos",
		Status:       domain.SongwriterActive,
	}
	req := dto.UpdateSongwriterRequest{StageName: strPtr("M. Santos")}

	suite.mockRepo.On("FindSongwriterByID", ctx, songwriterID).Return(original, nil).Once()
	suite.mockRepo.On("UpdateSongwriter", ctx, mock.MatchedBy(func(sw domain.Songwriter) bool {
		return sw.StageName != nil && *sw.StageName == "M. Santos" && sw.UpdatedBy == updaterID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateSongwriter(ctx, songwriterID, req, updaterID)

	suite.Require().NoError(err)
	suite.Equal("M. Santos", *updated.StageName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SongwriterServiceTestSuite) TestUpdateSongwriter_InvalidISNI() {
	ctx := context.Background()
	songwriterID := uuid.NewString()
	original := &domain.Songwriter{SongwriterID: songwriterID, FirstName: "Maria", LastName: "Santos"}
	req := dto.UpdateSongwriterRequest{ISNI: strPtr("123")}

	suite.mockRepo.On("FindSongwriterByID", ctx, songwriterID).Return(original, nil).Once()

	updated, err := suite.service.UpdateSongwriter(ctx, songwriterID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSongwriter", mock.Anything, mock.Anything)
}

// --- SwapSongwriterIPIs Tests ---
func (suite *SongwriterServiceTestSuite) TestSwapSongwriterIPIs_Success() {
	ctx := context.Background()
	idA := uuid.NewString()
	idB := uuid.NewString()

	suite.mockRepo.On("SwapSongwriterIPIs", ctx, idA, idB).Return(nil).Once()

	err := suite.service.SwapSongwriterIPIs(ctx, idA, idB, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SongwriterServiceTestSuite) TestSwapSongwriterIPIs_SelfSwap() {
	ctx := context.Background()
	id := uuid.NewString()

	err := suite.service.SwapSongwriterIPIs(ctx, id, id, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SwapSongwriterIPIs", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SongwriterServiceTestSuite) TestSwapSongwriterIPIs_NotFound() {
	ctx := context.Background()
	idA := uuid.NewString()
	idB := uuid.NewString()

	suite.mockRepo.On("SwapSongwriterIPIs", ctx, idA, idB).Return(apperrors.ErrNotFound).Once()

	err := suite.service.SwapSongwriterIPIs(ctx, idA, idB, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- CheckSongwriterDuplicates Tests ---
func (suite *SongwriterServiceTestSuite) TestCheckSongwriterDuplicates_ExactIPIMatch() {
	ctx := context.Background()
	existing := &domain.Songwriter{
		SongwriterID: uuid.NewString(),
		FirstName:    "Maria",
		LastName:     "Santos",
		IPI:          strPtr("00014107338"),
	}
	req := dto.CreateSongwriterRequest{
		FirstName: "Mariana",
		LastName:  "Santoz",
		IPI:       strPtr("00014107338"),
	}

	suite.mockRepo.On("FindSongwriterByIPI", ctx, "00014107338").Return(existing, nil).Once()
	suite.mockRepo.On("FindSongwriters", ctx, mock.AnythingOfType("repositories.SongwriterListFilter")).
		Return([]domain.Songwriter{*existing}, 1, nil).Once()

	matches, err := suite.service.CheckSongwriterDuplicates(ctx, req, 0.85)

	suite.Require().NoError(err)
	suite.Require().Len(matches, 1)
	suite.Equal(existing.SongwriterID, matches[0].EntityID)
	suite.Equal(1.0, matches[0].Score)
	suite.Equal(domain.MatchIPI, matches[0].MatchType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SongwriterServiceTestSuite) TestCheckSongwriterDuplicates_FuzzyNameMatch() {
	ctx := context.Background()
	existing := domain.Songwriter{
		SongwriterID: uuid.NewString(),
		FirstName:    "Maria",
		LastName:     "Santos",
	}
	req := dto.CreateSongwriterRequest{FirstName: "Maria", LastName: "Santoz"}

	suite.mockRepo.On("FindSongwriters", ctx, mock.AnythingOfType("repositories.SongwriterListFilter")).
		Return([]domain.Songwriter{existing}, 1, nil).Once()

	matches, err := suite.service.CheckSongwriterDuplicates(ctx, req, 0.85)

	suite.Require().NoError(err)
	suite.Require().Len(matches, 1)
	suite.Equal(domain.MatchName, matches[0].MatchType)
	suite.GreaterOrEqual(matches[0].Score, 0.85)
	suite.Less(matches[0].Score, 1.0)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SongwriterServiceTestSuite) TestCheckSongwriterDuplicates_NoMatches() {
	ctx := context.Background()
	existing := domain.Songwriter{
		SongwriterID: uuid.NewString(),
		FirstName:    "Johann",
		LastName:     "Bachmann",
	}
	req := dto.CreateSongwriterRequest{FirstName: "Maria", LastName: "Santos"}

	suite.mockRepo.On("FindSongwriters", ctx, mock.AnythingOfType("repositories.SongwriterListFilter")).
		Return([]domain.Songwriter{existing}, 1, nil).Once()

	matches, err := suite.service.CheckSongwriterDuplicates(ctx, req, 0.85)

	suite.Require().NoError(err)
	suite.Empty(matches)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- DeleteSongwriter Tests ---
func (suite *SongwriterServiceTestSuite) TestDeleteSongwriter_Success() {
	ctx := context.Background()
	songwriterID := uuid.NewString()

	suite.mockRepo.On("DeleteSongwriter", ctx, songwriterID).Return(nil).Once()

	err := suite.service.DeleteSongwriter(ctx, songwriterID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SongwriterServiceTestSuite) TestDeleteSongwriter_NotFound() {
	ctx := context.Background()
	songwriterID := uuid.NewString()

	suite.mockRepo.On("DeleteSongwriter", ctx, songwriterID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteSongwriter(ctx, songwriterID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestSongwriterService(t *testing.T) {
	suite.Run(t, new(SongwriterServiceTestSuite))
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/internal/core/domain"
	portssvc "github.com/opusregistry/catalog_backend/internal/core/ports/services"
	"github.com/opusregistry/catalog_backend/internal/dto"
	"github.com/opusregistry/catalog_backend/internal/handlers"
	"github.com/opusregistry/catalog_backend/internal/middleware"
)

// --- Mock SongwriterService ---
type MockSongwriterService struct {
	mock.Mock
}

func (m *MockSongwriterService) GetSongwriterByID(ctx context.Context, songwriterID string) (*domain.Songwriter, error) {
	args := m.Called(ctx, songwriterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Songwriter), args.Error(1)
}

func (m *MockSongwriterService) ListSongwriters(ctx context.Context, params dto.ListSongwritersParams) ([]domain.Songwriter, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Songwriter), args.Int(1), args.Error(2)
}

func (m *MockSongwriterService) CreateSongwriter(ctx context.Context, req dto.CreateSongwriterRequest, creatorUserID string) (*domain.Songwriter, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Songwriter), args.Error(1)
}

func (m *MockSongwriterService) UpdateSongwriter(ctx context.Context, songwriterID string, req dto.UpdateSongwriterRequest, requestingUserID string) (*domain.Songwriter, error) {
	args := m.Called(ctx, songwriterID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Songwriter), args.Error(1)
}

func (m *MockSongwriterService) DeleteSongwriter(ctx context.Context, songwriterID string, requestingUserID string) error {
	args := m.Called(ctx, songwriterID, requestingUserID)
	return args.Error(0)
}

func (m *MockSongwriterService) SwapSongwriterIPIs(ctx context.Context, songwriterIDA, songwriterIDB string, requestingUserID string) error {
	args := m.Called(ctx, songwriterIDA, songwriterIDB, requestingUserID)
	return args.Error(0)
}

func (m *MockSongwriterService) CheckSongwriterDuplicates(ctx context.Context, req dto.CreateSongwriterRequest, threshold float64) ([]domain.DuplicateMatch, error) {
	args := m.Called(ctx, req, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DuplicateMatch), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SongwriterSvcFacade = (*MockSongwriterService)(nil)

// --- Test Suite ---
type SongwriterHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockSongwriterService *MockSongwriterService
	jwtSecret             string
	publisherID           string
}

// generateTestToken creates a signed JWT for test requests.
func (suite *SongwriterHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "catalog-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *SongwriterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.publisherID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockSongwriterService = new(MockSongwriterService)

	// Mimic the tenant grouping from route registration.
	tenant := suite.router.Group("/api/v1", middleware.PublisherContextMiddleware())
	handlers.RegisterSongwriterRoutes(tenant, suite.mockSongwriterService)
}

// newAuthedRequest builds a request carrying both the bearer token and the
// tenant header.
func (suite *SongwriterHandlerTestSuite) newAuthedRequest(method, url string, body []byte, userID string) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set(middleware.PublisherHeader, suite.publisherID)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// --- Test Cases ---

func (suite *SongwriterHandlerTestSuite) TestCreateSongwriter_Success() {
	userID := uuid.NewString()
	songwriterID := uuid.NewString()
	ipi := "00014107338"
	expected := &domain.Songwriter{
		SongwriterID: songwriterID,
		FirstName:    "Maria",
		LastName:     "Santos",
		IPI:          &ipi,
		Status:       domain.SongwriterActive,
	}

	suite.mockSongwriterService.On("CreateSongwriter",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateSongwriterRequest) bool {
			return req.FirstName == "Maria" && req.LastName == "Santos"
		}),
		userID,
	).Return(expected, nil).Once()

	body, _ := json.Marshal(map[string]any{
		"firstName": "Maria",
		"lastName":  "Santos",
		"ipi":       "00014107338",
	})
	req := suite.newAuthedRequest(http.MethodPost, "/api/v1/songwriters", body, userID)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SongwriterResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(songwriterID, resp.SongwriterID)
	suite.Equal("Maria", resp.FirstName)
	suite.mockSongwriterService.AssertExpectations(suite.T())
}

func (suite *SongwriterHandlerTestSuite) TestCreateSongwriter_MissingPublisherHeader() {
	userID := uuid.NewString()
	body, _ := json.Marshal(map[string]any{
		"firstName": "Maria",
		"lastName":  "Santos",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/songwriters", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSongwriterService.AssertNotCalled(suite.T(), "CreateSongwriter", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SongwriterHandlerTestSuite) TestCreateSongwriter_NoToken() {
	body, _ := json.Marshal(map[string]any{
		"firstName": "Maria",
		"lastName":  "Santos",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/songwriters", bytes.NewReader(body))
	req.Header.Set(middleware.PublisherHeader, suite.publisherID)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSongwriterService.AssertNotCalled(suite.T(), "CreateSongwriter", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SongwriterHandlerTestSuite) TestGetSongwriter_NotFound() {
	userID := uuid.NewString()
	songwriterID := uuid.NewString()

	suite.mockSongwriterService.On("GetSongwriterByID", mock.Anything, songwriterID).
		Return(nil, apperrors.NewNotFoundError("songwriter not found")).Once()

	req := suite.newAuthedRequest(http.MethodGet, "/api/v1/songwriters/"+songwriterID, nil, userID)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockSongwriterService.AssertExpectations(suite.T())
}

func (suite *SongwriterHandlerTestSuite) TestListSongwriters_Success() {
	userID := uuid.NewString()
	songwriters := []domain.Songwriter{
		{SongwriterID: uuid.NewString(), FirstName: "Maria", LastName: "Santos", Status: domain.SongwriterActive},
		{SongwriterID: uuid.NewString(), FirstName: "Joana", LastName: "Leite", Status: domain.SongwriterActive},
	}

	suite.mockSongwriterService.On("ListSongwriters",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListSongwritersParams) bool {
			return p.Limit == 10 && p.Offset == 0
		}),
	).Return(songwriters, 2, nil).Once()

	req := suite.newAuthedRequest(http.MethodGet, "/api/v1/songwriters?limit=10", nil, userID)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListSongwritersResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Songwriters, 2)
	suite.Equal(2, resp.Total)
	suite.mockSongwriterService.AssertExpectations(suite.T())
}

func (suite *SongwriterHandlerTestSuite) TestCheckDuplicates_Success() {
	userID := uuid.NewString()
	matches := []domain.DuplicateMatch{
		{EntityID: uuid.NewString(), Display: "Maria Santos", Score: 0.92, MatchType: domain.MatchName},
	}

	suite.mockSongwriterService.On("CheckSongwriterDuplicates",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateSongwriterRequest) bool {
			return req.FirstName == "Maria" && req.LastName == "Santoz"
		}),
		0.85,
	).Return(matches, nil).Once()

	body, _ := json.Marshal(map[string]any{
		"firstName": "Maria",
		"lastName":  "Santoz",
	})
	req := suite.newAuthedRequest(http.MethodPost, "/api/v1/songwriters/check-duplicates", body, userID)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DuplicateScanResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Candidates, 1)
	suite.Equal("name", resp.Candidates[0].MatchType)
	suite.mockSongwriterService.AssertExpectations(suite.T())
}

func (suite *SongwriterHandlerTestSuite) TestSwapIPIs_Success() {
	userID := uuid.NewString()
	idA := uuid.NewString()
	idB := uuid.NewString()

	suite.mockSongwriterService.On("SwapSongwriterIPIs", mock.Anything, idA, idB, userID).
		Return(nil).Once()

	body, _ := json.Marshal(map[string]any{
		"songwriterIDA": idA,
		"songwriterIDB": idB,
	})
	req := suite.newAuthedRequest(http.MethodPost, "/api/v1/songwriters/swap-ipis", body, userID)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockSongwriterService.AssertExpectations(suite.T())
}

func (suite *SongwriterHandlerTestSuite) TestDeleteSongwriter_Success() {
	userID := uuid.NewString()
	songwriterID := uuid.NewString()

	suite.mockSongwriterService.On("DeleteSongwriter", mock.Anything, songwriterID, userID).
		Return(nil).Once()

	req := suite.newAuthedRequest(http.MethodDelete, "/api/v1/songwriters/"+songwriterID, nil, userID)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockSongwriterService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestSongwriterHandler(t *testing.T) {
	suite.Run(t, new(SongwriterHandlerTestSuite))
}

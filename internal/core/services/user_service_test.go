package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/internal/core/domain"
	portssvc "github.com/opusregistry/catalog_backend/internal/core/ports/services"
	"github.com/opusregistry/catalog_backend/internal/core/services"
	"github.com/opusregistry/catalog_backend/internal/dto"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var us []domain.User
	if args.Get(0) != nil {
		us = args.Get(0).([]domain.User)
	}
	return us, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func hashFor(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "maria.santos",
		Password: "correct horse battery staple",
		Name:     "Maria Santos",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "maria.santos" &&
			u.PasswordHash != req.Password &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) == nil
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "maria.santos",
		Password: "pw123456",
		Name:     "Maria Santos",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.NewConflictError("username already taken")).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "maria.santos",
		PasswordHash: hashFor("pw123456"),
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "maria.santos").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "maria.santos", "pw123456")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "maria.santos",
		PasswordHash: hashFor("pw123456"),
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "maria.santos").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "maria.santos", "wrong-password")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// Unknown usernames and wrong passwords must be indistinguishable to the caller.
func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUserSameError() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "maria.santos",
		PasswordHash: hashFor("pw123456"),
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "maria.santos").Return(user, nil).Once()

	_, errUnknown := suite.service.AuthenticateUser(ctx, "nobody", "pw123456")
	_, errBadPassword := suite.service.AuthenticateUser(ctx, "maria.santos", "wrong-password")

	suite.Require().Error(errUnknown)
	suite.Require().Error(errBadPassword)
	suite.Equal(errUnknown.Error(), errBadPassword.Error())
	suite.ErrorIs(errUnknown, apperrors.ErrForbidden)
	suite.ErrorIs(errBadPassword, apperrors.ErrForbidden)
}

// --- GetUserByID Tests ---
func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "maria.santos"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	got, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(user, got)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdateUser Tests ---
func (suite *UserServiceTestSuite) TestUpdateUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "maria.santos", Name: "Maria Santos"}
	newName := "Maria Santos-Oliveira"

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == newName && u.UpdatedBy == userID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Name: &newName}, userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_OtherUserForbidden() {
	ctx := context.Background()
	newName := "Maria Santos-Oliveira"

	updated, err := suite.service.UpdateUser(ctx, uuid.NewString(), dto.UpdateUserRequest{Name: &newName}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

// --- DeleteUser Tests ---
func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), userID).
		Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_OtherUserForbidden() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, uuid.NewString(), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- ListUsers Tests ---
func (suite *UserServiceTestSuite) TestListUsers_EmptyResultIsNotNil() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUsers", ctx, 20, 0).Return(nil, nil).Once()

	users, err := suite.service.ListUsers(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(users)
	suite.Empty(users)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

package services_test

import (
	"io"
	"log"
	"os"
	"testing"
	"time"

	"snakegame/internal/models"
	"snakegame/internal/repositories"
	"snakegame/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockLoginLogRepository is a mock implementation of repositories.LoginLogRepository
type MockLoginLogRepository struct {
	mock.Mock
}

func (m *MockLoginLogRepository) Create(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockLoginLogRepository) ListByUser(userID uint, limit int) ([]models.LoginRecord, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LoginRecord), args.Error(1)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func newAuthService(userRepo repositories.UserRepository, loginRepo repositories.LoginLogRepository) *services.AuthService {
	return services.NewAuthService(userRepo, loginRepo, "test_jwt_secret", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockLogins := new(MockLoginLogRepository)
	authService := newAuthService(mockUsers, mockLogins)

	// Successful registration
	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	err := authService.Register("player1", "secret")
	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)

	// The stored user carries a bcrypt hash, never the plain password
	created := mockUsers.Calls[0].Arguments.Get(0).(*models.User)
	assert.NotEqual(t, "secret", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret")))

	// Username already taken
	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Return(repositories.ErrDuplicateUsername).Once()
	err = authService.Register("player1", "secret")
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_Register_Validation(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockLogins := new(MockLoginLogRepository)
	authService := newAuthService(mockUsers, mockLogins)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "secret"},
		{"whitespace-only username", "   ", "secret"},
		{"username too short", "a", "secret"},
		{"username too long", "abcdefghijklmnopqrstu", "secret"},
		{"empty password", "player1", ""},
		{"whitespace-only password", "player1", "    "},
		{"password too short", "player1", "123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := authService.Register(tc.username, tc.password)
			var validationErr *services.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}

	// No store access for invalid input
	mockUsers.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Register_TrimsWhitespace(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockLogins := new(MockLoginLogRepository)
	authService := newAuthService(mockUsers, mockLogins)

	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	err := authService.Register("  player1  ", " 1234 ")
	assert.NoError(t, err)

	created := mockUsers.Calls[0].Arguments.Get(0).(*models.User)
	assert.Equal(t, "player1", created.Username)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockLogins := new(MockLoginLogRepository)
	authService := newAuthService(mockUsers, mockLogins)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           7,
		Username:     "player1",
		PasswordHash: string(hashedPassword),
	}

	// Successful login issues a token and records the login
	mockUsers.On("GetByUsername", "player1").Return(user, nil).Once()
	mockLogins.On("Create", uint(7)).Return(nil).Once()

	token, loggedIn, err := authService.Login("player1", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "player1", loggedIn.Username)
	mockUsers.AssertExpectations(t)
	mockLogins.AssertExpectations(t)

	// The token carries the user id, username and an expiry
	userID, username, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, "player1", username)

	// Wrong password
	mockUsers.On("GetByUsername", "player1").Return(user, nil).Once()
	_, _, err = authService.Login("player1", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown user gets the same error as a wrong password
	mockUsers.On("GetByUsername", "nobody").Return(nil, nil).Once()
	_, _, err = authService.Login("nobody", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Empty fields after trimming never reach the store
	_, _, err = authService.Login("   ", "password123")
	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	_, _, err = authService.Login("player1", "   ")
	assert.ErrorAs(t, err, &validationErr)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockLogins := new(MockLoginLogRepository)
	authService := newAuthService(mockUsers, mockLogins)

	// Garbage token
	_, _, err := authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)

	// Expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  float64(7),
		"username": "player1",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte("test_jwt_secret"))
	_, _, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)

	// Token signed with a different secret
	forgedToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  float64(7),
		"username": "player1",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	forgedTokenString, _ := forgedToken.SignedString([]byte("other_secret"))
	_, _, err = authService.ValidateToken(forgedTokenString)
	assert.Error(t, err)
}

func TestAuthService_CurrentUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockLogins := new(MockLoginLogRepository)
	authService := newAuthService(mockUsers, mockLogins)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: 7, Username: "player1", PasswordHash: string(hashedPassword)}

	mockUsers.On("GetByUsername", "player1").Return(user, nil).Once()
	mockLogins.On("Create", uint(7)).Return(nil).Once()
	token, _, err := authService.Login("player1", "password123")
	assert.NoError(t, err)

	// Valid session resolves to the user
	mockUsers.On("GetByID", uint(7)).Return(user, nil).Once()
	current, err := authService.CurrentUser(token)
	assert.NoError(t, err)
	assert.Equal(t, "player1", current.Username)

	// Session referencing a vanished user reads as anonymous, not an error
	mockUsers.On("GetByID", uint(7)).Return(nil, nil).Once()
	current, err = authService.CurrentUser(token)
	assert.NoError(t, err)
	assert.Nil(t, current)

	// Missing or invalid token reads as anonymous
	current, err = authService.CurrentUser("")
	assert.NoError(t, err)
	assert.Nil(t, current)
	current, err = authService.CurrentUser("not-a-token")
	assert.NoError(t, err)
	assert.Nil(t, current)
	mockUsers.AssertExpectations(t)
}

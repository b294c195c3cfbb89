package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"snakegame/internal/models"
	"snakegame/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username does not exist, so the
// missing-user and wrong-password paths cost the same bcrypt work.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// credentials is the validated shape of a registration request after
// whitespace trimming.
type credentials struct {
	Username string `validate:"required,min=2,max=20"`
	Password string `validate:"required,min=4"`
}

// AuthService handles registration, login and session token verification.
type AuthService struct {
	userRepo   repositories.UserRepository
	loginRepo  repositories.LoginLogRepository
	validate   *validator.Validate
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService. Session tokens issued by Login
// are valid for tokenDuration.
func NewAuthService(userRepo repositories.UserRepository, loginRepo repositories.LoginLogRepository, jwtSecret string, tokenDuration time.Duration) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		loginRepo:  loginRepo,
		validate:   validator.New(),
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: tokenDuration,
	}
}

// Register validates the credentials, hashes the password and creates the
// user. Returns *ValidationError for bad input and ErrUsernameTaken when the
// store's unique index rejects the username.
func (s *AuthService) Register(username, password string) error {
	creds := credentials{
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
	}
	if err := s.validate.Struct(creds); err != nil {
		return &ValidationError{Message: validationMessage(err)}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     creds.Username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Login authenticates the user and returns a signed session token together
// with the user record. A successful login is recorded in the login log.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return "", nil, &ValidationError{Message: "username and password must not be empty"}
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Both failure paths run a bcrypt comparison so the response shape does
	// not reveal whether the username exists.
	storedHash := dummyHash
	if user != nil {
		storedHash = user.PasswordHash
	}
	if compareErr := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); compareErr != nil || user == nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	// Login history is best-effort: the session is already established, so
	// a failed insert must not undo a correct authentication.
	if err := s.loginRepo.Create(user.ID); err != nil {
		log.Printf("Failed to record login for user %d: %v", user.ID, err)
	}

	return token, user, nil
}

// issueToken signs an HS256 token carrying the user id, username and expiry.
func (s *AuthService) issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  float64(user.ID),
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenDurat).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a session token, returning the user id
// and username it carries.
func (s *AuthService) ValidateToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid token")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("invalid token: missing user_id claim")
	}
	username, _ := claims["username"].(string)

	return uint(userID), username, nil
}

// CurrentUser resolves a session token to its user record. Returns nil
// without error when the token is invalid, expired, or references a user
// that no longer exists.
func (s *AuthService) CurrentUser(tokenString string) (*models.User, error) {
	if tokenString == "" {
		return nil, nil
	}
	userID, _, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, nil
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session user: %w", err)
	}
	return user, nil
}

// validationMessage turns the first validator failure into a message safe to
// return to the client.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "invalid input"
	}
	e := validationErrors[0]
	switch e.StructField() {
	case "Username":
		if e.Tag() == "required" {
			return "username and password must not be empty"
		}
		return "username must be between 2 and 20 characters"
	case "Password":
		if e.Tag() == "required" {
			return "username and password must not be empty"
		}
		return "password must be at least 4 characters"
	}
	return "invalid input"
}

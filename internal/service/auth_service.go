package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"article_board/internal/models"
	"article_board/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = time.Hour // 1 hour

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidPassword    = errors.New("password must not be empty")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login and token parsing.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(users repository.Users, cfg AuthConfig) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		users:      users,
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   ttl,
	}
}

// Register hashes the password and creates a new user. The returned
// user carries the same created_at that was written to the store.
func (s *AuthService) Register(email, password string) (models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid password: %w", err)
	}

	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if existing != nil {
		return models.User{}, ErrEmailTaken
	}

	now := time.Now().UTC().Truncate(time.Second)
	id, err := s.users.Create(email, hash, now)
	if err != nil {
		// the pre-check above races with concurrent registrations; the
		// UNIQUE constraint is the authoritative duplicate signal
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	return models.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
	}, nil
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// Login validates credentials and returns a signed JWT plus the user.
// A lookup miss and a hash mismatch are deliberately the same error so
// callers cannot probe which emails exist.
func (s *AuthService) Login(email, password string) (string, models.User, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		return "", models.User{}, err
	}
	if u == nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return "", models.User{}, err
	}
	return token, *u, nil
}

// ParseToken parses a JWT and returns the userID it was issued for.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}

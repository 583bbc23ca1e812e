package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yigit/unitutor/internal/app/models"
	"github.com/yigit/unitutor/internal/pkg/apperrors"
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey      string
	AccessTokenExp time.Duration
	TokenIssuer    string
}

// JWTService issues and validates access tokens
type JWTService struct {
	config JWTConfig
	now    func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
		now:    time.Now,
	}
}

// Claims defines JWT token content. Email is the identity the API trusts.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an access token for the user and returns it with its lifetime in seconds
func (s *JWTService) GenerateAccessToken(user *models.User) (string, int64, error) {
	now := s.now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTokenExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create access token: %w", err)
	}

	return signed, int64(s.config.AccessTokenExp.Seconds()), nil
}

// ValidateToken parses and verifies a token
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	}, jwt.WithIssuer(s.config.TokenIssuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, apperrors.ErrInvalidFormat
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrTokenInvalid
}

// ValidateAndExtractClaims validates the token and requires an email claim
func (s *JWTService) ValidateAndExtractClaims(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(claims.Email) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", apperrors.ErrInvalidFormat
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			return "", apperrors.ErrInvalidFormat
		}
		return token, nil
	}

	// A bare JWT is accepted for Swagger UI convenience
	if strings.Count(authHeader, ".") == 2 {
		return authHeader, nil
	}

	return "", apperrors.ErrInvalidFormat
}

package jwt

import (
	"errors"
	"time"

	"pos-engine/internal/domain/actor"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
}

func NewService(secretKey string) *Service {
	return &Service{
		secretKey: []byte(secretKey),
	}
}

// GenerateToken exists for test fixtures and operational token minting;
// session issuance itself lives outside this service.
func (s *Service) GenerateToken(a actor.Actor, duration time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: a.ID,
		Email:  a.Email,
		Role:   a.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken resolves the acting user from a bearer token.
func (s *Service) ValidateToken(tokenString string) (actor.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return actor.Actor{}, ErrExpiredToken
		}
		return actor.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return actor.Actor{}, ErrInvalidToken
	}

	return actor.Actor{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  actor.Role(claims.Role),
	}, nil
}

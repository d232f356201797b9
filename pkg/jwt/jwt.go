package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager handles JWT token generation and verification.
type Manager struct {
	secretKey []byte
	issuer    string
	audience  []string
	ttl       time.Duration
}

// Claims represents the JWT claims structure. Groups carry the caller's
// access-control tags so visibility filtering needs no extra lookup.
type Claims struct {
	Username string `json:"username"`
	Groups   []int  `json:"groups,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken generates a new JWT token with HS256 algorithm.
func (m *Manager) GenerateToken(userID, username string, groups []int) (string, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	// Unique JTI for token tracking and revocation
	jti := uuid.New().String()

	claims := Claims{
		Username: username,
		Groups:   groups,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			Audience:  m.audience,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jti,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken verifies and parses a JWT token.
func (m *Manager) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid claims type")
	}

	return claims, nil
}

// TTL returns the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

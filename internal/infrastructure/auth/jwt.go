package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"casefile/internal/shared/biztime"
)

// Claims carries the identity embedded in a session token. Validity is
// determined purely by signature and expiry; the server keeps no session
// table, so revocation before natural expiry is not possible.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret        []byte
	tokenExpHours int
}

func NewJWTService(secret string, tokenExpHours int) *JWTService {
	return &JWTService{
		secret:        []byte(secret),
		tokenExpHours: tokenExpHours,
	}
}

// Generate mints a signed bearer token for the authenticated identity.
func (s *JWTService) Generate(userID uint, email string) (string, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.tokenExpHours) * time.Hour)

	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a bearer token, returning the embedded claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// TokenExpHours returns the configured token lifetime in hours.
func (s *JWTService) TokenExpHours() int {
	return s.tokenExpHours
}

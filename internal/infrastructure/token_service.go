package infrastructure

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ResetTokenService issues and verifies stateless password-reset tokens.
// The token carries its subject and expiry in signed claims, so no
// server-side token store exists to invalidate or leak.
type ResetTokenService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewResetTokenService(secret string, ttl time.Duration) *ResetTokenService {
	return &ResetTokenService{secretKey: []byte(secret), ttl: ttl}
}

func (s *ResetTokenService) Issue(userId uint) (string, error) {
	claims := jwt.MapClaims{
		"reset_password": userId,
		"exp":            time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Verify returns the user id the token was issued for. Bad signature,
// wrong algorithm, malformed claims and expiry all collapse to ok=false;
// callers never learn which check failed.
func (s *ResetTokenService) Verify(tokenString string) (uint, bool) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	subject, ok := claims["reset_password"].(float64)
	if !ok || subject <= 0 {
		return 0, false
	}

	return uint(subject), true
}

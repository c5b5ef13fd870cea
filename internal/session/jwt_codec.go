package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// claims is the JWT claims layout for a session token.
type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTCodec signs session records as HS256 JWTs. The expiry claim mirrors the
// seven-day window so standard JWT tooling rejects stale tokens too.
type JWTCodec struct {
	secret []byte
}

// NewJWTCodec creates a codec with the given signing secret.
func NewJWTCodec(secret string) *JWTCodec {
	return &JWTCodec{secret: []byte(secret)}
}

// Encode signs the record into a token string.
func (c *JWTCodec) Encode(rec Record) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Username: rec.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(rec.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(rec.IssuedAt.Add(TTL)),
			Issuer:    "fitness-admin-backend",
		},
	})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Decode verifies the token and returns the embedded record.
func (c *JWTCodec) Decode(tokenString string) (Record, error) {
	parsed := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return Record{}, fmt.Errorf("session token validation failed: %w", err)
	}
	if !token.Valid || parsed.Username == "" || parsed.IssuedAt == nil {
		return Record{}, fmt.Errorf("invalid session token")
	}
	return Record{Username: parsed.Username, IssuedAt: parsed.IssuedAt.Time}, nil
}

var _ Codec = (*JWTCodec)(nil)

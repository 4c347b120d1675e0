package ghostadmin

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenAudience = "/admin/"
	tokenLifetime = 5 * time.Minute
)

// ErrMalformedKey is returned when an admin key is not of the form id:secret
// with a hex encoded secret.
var ErrMalformedKey = errors.New("ghostadmin: admin key must be <id>:<hex secret>")

// Key is a parsed Admin API key.
type Key struct {
	ID     string
	secret []byte
}

// ParseKey splits key on its first colon and decodes the hex secret.
func ParseKey(key string) (Key, error) {
	id, secret, ok := strings.Cut(strings.TrimSpace(key), ":")
	if !ok || id == "" || secret == "" {
		return Key{}, ErrMalformedKey
	}
	decoded, err := hex.DecodeString(secret)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	return Key{ID: id, secret: decoded}, nil
}

// Token mints a short-lived HS256 token accepted by the Admin API.
func (k Key) Token(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Audience:  jwt.ClaimStrings{tokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = k.ID
	return token.SignedString(k.secret)
}

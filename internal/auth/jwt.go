package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yeasin-dev/shopmate/internal/models"
)

var (
	jwtSecret = []byte("super-secret-key")
	tokenTTL  = 15 * time.Minute
)

// Configure overrides the signing secret and access token lifetime.
// Called once at startup before any token is issued.
func Configure(secret string, ttl time.Duration) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if ttl > 0 {
		tokenTTL = ttl
	}
}

func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
}

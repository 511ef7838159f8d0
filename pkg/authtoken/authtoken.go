package authtoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrInvalidToken возвращается при невалидном или просроченном токене
	ErrInvalidToken = errors.New("authtoken: invalid token")
)

// Claims полезная нагрузка токена доступа
// role и district_id дублируются в токене, чтобы не ходить в БД на каждый запрос
type Claims struct {
	UserID     int64  `json:"user_id"`
	Role       string `json:"role"`
	DistrictID *int64 `json:"district_id,omitempty"`
	jwt.RegisteredClaims
}

// Generate выпускает подписанный HS256 токен доступа
func Generate(secret string, ttl time.Duration, userID int64, role string, districtID *int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     userID,
		Role:       role,
		DistrictID: districtID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("authtoken: failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse проверяет подпись и срок действия токена и возвращает claims
func Parse(secret string, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

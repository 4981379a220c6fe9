package utils

import (
	"errors"
	"time"

	"github.com/globopersona/marketing-dashboard/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT generates a session token for a logged-in user
func GenerateJWT(userID int64, email string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(time.Second * time.Duration(cfg.JWT.ExpiresIn)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateJWT validates a session token and returns its claims
func ValidateJWT(tokenString string, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// UserIDFromClaims extracts the subject user ID from validated claims.
func UserIDFromClaims(claims jwt.MapClaims) (int64, bool) {
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, false
	}
	return int64(sub), true
}

package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// AccessTokenValidity is the period an access token stays valid
	AccessTokenValidity = time.Hour * 24
	// RefreshTokenValidity is the period a refresh token stays valid
	RefreshTokenValidity = time.Hour * 24 * 7
)

// GenerateTokenPair returns a signed access and refresh token for a user
func GenerateTokenPair(email string, secret string, userID uint) (string, string, error) {
	if secret == "" {
		return "", "", errors.New("JWT secret key is missing")
	}

	accessClaims := jwt.MapClaims{
		"id":    float64(userID),
		"email": email,
		"type":  "access",
		"exp":   time.Now().Add(AccessTokenValidity).Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"id":   float64(userID),
		"type": "refresh",
		"exp":  time.Now().Add(RefreshTokenValidity).Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateAndGetClaims parses a signed token and returns its claims
func ValidateAndGetClaims(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// GeneratePasswordResetToken generates a short-lived reset token for a user
func GeneratePasswordResetToken(userID uint, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret key is missing")
	}

	resetTokenClaims := jwt.MapClaims{
		"id":   float64(userID),
		"type": "password_reset_token",
		"exp":  time.Now().Add(time.Hour * 1).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, resetTokenClaims).SignedString([]byte(secret))
}

// ValidatePasswordResetToken returns the user id a reset token was issued for
func ValidatePasswordResetToken(tokenString string, secret string) (uint, error) {
	claims, err := ValidateAndGetClaims(tokenString, secret)
	if err != nil {
		return 0, err
	}
	if claims["type"] != "password_reset_token" {
		return 0, errors.New("not a password reset token")
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, errors.New("invalid userID format")
	}
	return uint(id), nil
}

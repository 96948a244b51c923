package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/brightops/campaign-backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT generates a JWT token for an operator
func GenerateJWT(userID string, role string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Second * time.Duration(cfg.JWT.ExpiresIn)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateJWT validates a JWT token and returns its claims
func ValidateJWT(tokenString string, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
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

// GenerateRandomString generates a random string of the specified length
func GenerateRandomString(length int) (string, error) {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b)[:length], nil
}

// ParseUserAgent derives a coarse device type and mail client from a
// User-Agent header. Unknown or empty input falls back to "desktop"/"Unknown".
func ParseUserAgent(ua string) (deviceType, client string) {
	deviceType = "desktop"
	client = "Unknown"
	if ua == "" {
		return deviceType, client
	}

	lower := strings.ToLower(ua)

	switch {
	case strings.Contains(lower, "ipad") || strings.Contains(lower, "tablet"):
		deviceType = "tablet"
	case strings.Contains(lower, "mobile") || strings.Contains(lower, "iphone") || strings.Contains(lower, "android"):
		deviceType = "mobile"
	}

	switch {
	case strings.Contains(lower, "thunderbird"):
		client = "Thunderbird"
	case strings.Contains(lower, "outlook"):
		client = "Outlook"
	case strings.Contains(lower, "edg"):
		client = "Edge"
	case strings.Contains(lower, "firefox"):
		client = "Firefox"
	case strings.Contains(lower, "chrome"):
		client = "Chrome"
	case strings.Contains(lower, "safari"):
		client = "Safari"
	}

	return deviceType, client
}

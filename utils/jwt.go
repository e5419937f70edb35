package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"glowspa/config"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "glowspa-dev-secret"
	}
	return []byte(secret)
}

// AuthClaims is the claim set carried by every access token.
type AuthClaims struct {
	UserID  string
	Email   string
	Role    string
	SubRole string
}

// GenerateToken creates a signed JWT for the given user with role claims.
// The token expires after the specified duration.
func GenerateToken(claims AuthClaims, duration time.Duration) (string, error) {
	mapClaims := jwt.MapClaims{
		"sub":     claims.UserID,
		"email":   claims.Email,
		"role":    claims.Role,
		"subRole": claims.SubRole,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ClaimsFromToken extracts the auth claims from a valid JWT token string.
func ClaimsFromToken(tokenString string) (*AuthClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}

	claims := &AuthClaims{UserID: sub}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if subRole, ok := mapClaims["subRole"].(string); ok {
		claims.SubRole = subRole
	}
	return claims, nil
}

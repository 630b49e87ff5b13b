package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

// Claims is the identity carried by a session token.
type Claims struct {
	UserID    uint
	Email     string
	FirstName string
	LastName  string
	Roles     []string
}

// Manager signs and verifies session tokens with a symmetric key.
type Manager struct {
	secret []byte
}

// NewManager creates a Manager for the given signing secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// GenerateToken creates a new signed JWT for the given identity and returns
// it with its expiration time.
func (m *Manager) GenerateToken(c Claims) (string, time.Time, error) {
	now := time.Now()
	expiration := now.Add(TokenTTL)

	claims := jwt.MapClaims{
		"sub":       c.UserID,
		"email":     c.Email,
		"name":      c.FirstName + " " + c.LastName,
		"firstName": c.FirstName,
		"lastName":  c.LastName,
		"roles":     c.Roles,
		"iat":       now.Unix(),
		"exp":       expiration.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiration, nil
}

// ParseToken verifies a token string and extracts its claims.
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	userID, ok := mapClaims["sub"].(float64)
	if !ok {
		return nil, errors.New("missing subject claim")
	}

	claims := &Claims{UserID: uint(userID)}
	claims.Email, _ = mapClaims["email"].(string)
	claims.FirstName, _ = mapClaims["firstName"].(string)
	claims.LastName, _ = mapClaims["lastName"].(string)

	if rawRoles, ok := mapClaims["roles"].([]interface{}); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				claims.Roles = append(claims.Roles, role)
			}
		}
	}

	return claims, nil
}

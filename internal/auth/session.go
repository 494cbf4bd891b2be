package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"procommunity/internal/domain"
)

// SessionCookie is the cookie name under which browser clients carry the
// session token.
const SessionCookie = "procommunity_session"

// SessionClaims is the signed state tracked per logged-in browser: the user
// id, the display name, and the admin flag.
type SessionClaims struct {
	UserID   int64  `json:"uid"`
	UserName string `json:"name"`
	IsAdmin  bool   `json:"admin"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates signed session tokens.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewSessionManager(secret, issuer string, ttl time.Duration) (*SessionManager, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return nil, errors.New("session secret must not be empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if strings.TrimSpace(issuer) == "" {
		issuer = "procommunity"
	}
	return &SessionManager{
		secret: []byte(trimmed),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// TTL returns the configured session lifetime.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a session token for the given user and returns it with its
// expiry time.
func (m *SessionManager) Issue(user *domain.User) (string, time.Time, error) {
	if user == nil || user.ID == 0 {
		return "", time.Time{}, errors.New("invalid user for session")
	}
	now := time.Now().UTC()
	expiry := now.Add(m.ttl)

	claims := SessionClaims{
		UserID:   user.ID,
		UserName: user.Name,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("%d", user.ID),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiry, nil
}

// Parse validates a session token and returns its claims.
func (m *SessionManager) Parse(tokenString string) (*SessionClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session claims")
	}
	return claims, nil
}

package app

import (
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// TokenService mints and verifies signed rejoin tokens. A token binds a
// user to a match so a reconnecting client can prove it belongs in that
// session.
type TokenService struct {
	secret string
	issuer string
	ttl    time.Duration
}

// RejoinClaims is the verified content of a rejoin token.
type RejoinClaims struct {
	UserID  string
	MatchID string
}

func NewTokenService(secret, issuer string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: secret, issuer: issuer, ttl: ttl}
}

// GenerateRejoinToken signs a token tying userID to matchID.
func (s *TokenService) GenerateRejoinToken(userID, matchID string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("token service is nil")
	}
	if userID == "" || matchID == "" {
		return "", fmt.Errorf("user and match are required")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("token config is incomplete")
	}

	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": userID,
		"mid": matchID,
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ParseRejoinToken verifies the signature, issuer, and expiry, and
// returns the bound identity.
func (s *TokenService) ParseRejoinToken(tokenString string) (RejoinClaims, error) {
	if s == nil || s.secret == "" {
		return RejoinClaims{}, fmt.Errorf("token config is incomplete")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return RejoinClaims{}, fmt.Errorf("invalid rejoin token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return RejoinClaims{}, fmt.Errorf("invalid rejoin token claims")
	}
	if iss, _ := claims["iss"].(string); iss != s.issuer {
		return RejoinClaims{}, fmt.Errorf("unexpected token issuer")
	}

	userID, _ := claims["sub"].(string)
	matchID, _ := claims["mid"].(string)
	if userID == "" || matchID == "" {
		return RejoinClaims{}, fmt.Errorf("rejoin token missing identity")
	}
	return RejoinClaims{UserID: userID, MatchID: matchID}, nil
}

// Package auth issues portal session tokens and exposes the session to gin handlers.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Session is what a handler knows about the caller.
type Session struct {
	UserID    string `json:"user_id"`
	EmpresaID string `json:"empresa_id,omitempty"`
	Papel     string `json:"papel"`
	Nome      string `json:"nome"`
}

type Claims struct {
	jwt.RegisteredClaims
	EmpresaID string `json:"empresa_id,omitempty"`
	Papel     string `json:"papel"`
	Nome      string `json:"nome"`
}

type JWTService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration, issuer string) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: ttl, issuer: issuer, now: time.Now}
}

// Issue signs a token for the session and returns it with its expiry.
func (s *JWTService) Issue(sess Session) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   sess.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		EmpresaID: sess.EmpresaID,
		Papel:     sess.Papel,
		Nome:      sess.Nome,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

func (s *JWTService) Parse(token string) (*Session, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &Session{
		UserID:    claims.Subject,
		EmpresaID: claims.EmpresaID,
		Papel:     claims.Papel,
		Nome:      claims.Nome,
	}, nil
}

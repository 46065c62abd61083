// Package apitoken issues and resolves the bearer tokens used by the edge API.
package apitoken

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const (
	tokenPrefix = "vw_"
	tokenBytes  = 32
	prefixLen   = 8
)

type Token struct {
	ID        string     `json:"id"`
	EmpresaID string     `json:"empresa_id"`
	Nome      string     `json:"nome"`
	Prefixo   string     `json:"prefixo"`
	Hash      string     `json:"-"`
	Ativo     bool       `json:"ativo"`
	UltimoUso *time.Time `json:"ultimo_uso,omitempty"`
	ExpiraEm  *time.Time `json:"expira_em,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Usable reports whether the token may authenticate at t.
func (t *Token) Usable(at time.Time) bool {
	return t.Ativo && (t.ExpiraEm == nil || at.Before(*t.ExpiraEm))
}

// CreateRequest payload de creación de token.
// swagger:model CreateTokenRequest
type CreateRequest struct {
	Nome     string     `json:"nome" binding:"required" example:"integração n8n"`
	ExpiraEm *time.Time `json:"expira_em,omitempty"`
}

// Created carries the plaintext, shown only once.
// swagger:model CreatedToken
type Created struct {
	Token
	Plaintext string `json:"token"`
}

// Generate returns a new plaintext token.
func Generate() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return tokenPrefix + hex.EncodeToString(b), nil
}

// Hash is the stored form of a plaintext token.
func Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func displayPrefix(plaintext string) string {
	if len(plaintext) <= prefixLen {
		return plaintext
	}
	return plaintext[:prefixLen]
}

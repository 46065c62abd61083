// Package payment keeps the per-company gateway credentials.
package payment

import (
	"crypto/subtle"
	"strings"
	"time"
)

const (
	ProviderMercadoPago = "mercadopago"
	ProviderPagSeguro   = "pagseguro"
	ProviderStripe      = "stripe"
	ProviderAsaas       = "asaas"
	ProviderPixManual   = "pix_manual"
)

var Providers = []string{ProviderMercadoPago, ProviderPagSeguro, ProviderStripe, ProviderAsaas, ProviderPixManual}

func ValidProvider(p string) bool {
	for _, v := range Providers {
		if v == p {
			return true
		}
	}
	return false
}

type Config struct {
	ID            string    `json:"id"`
	EmpresaID     string    `json:"empresa_id"`
	Provedor      string    `json:"provedor"`
	ChavePublica  string    `json:"chave_publica"`
	ChaveSecreta  string    `json:"chave_secreta"`
	WebhookSecret string    `json:"webhook_secret"`
	Ativo         bool      `json:"ativo"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Masked returns a copy safe to show on the dashboard.
func (c Config) Masked() Config {
	c.ChaveSecreta = Mask(c.ChaveSecreta)
	c.WebhookSecret = Mask(c.WebhookSecret)
	return c
}

// Mask keeps the last four characters of a secret.
func Mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", 8) + s[len(s)-4:]
}

// VerifySecret compares a webhook header against the stored secret.
// A config without a secret accepts any caller.
func (c Config) VerifySecret(got string) bool {
	if c.WebhookSecret == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(c.WebhookSecret), []byte(got)) == 1
}

// UpsertRequest payload de configuración de pasarela. Empty secrets keep the
// stored value so a masked form can be resubmitted.
// swagger:model PaymentConfigRequest
type UpsertRequest struct {
	ChavePublica  string `json:"chave_publica"`
	ChaveSecreta  string `json:"chave_secreta"`
	WebhookSecret string `json:"webhook_secret"`
	Ativo         *bool  `json:"ativo"`
}

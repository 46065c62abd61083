package company

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

type Company struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Documento string    `json:"documento"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	WhatsApp  string    `json:"whatsapp"`
	Plano     string    `json:"plano"`
	Ativo     bool      `json:"ativo"`
	LogoURL   string    `json:"logo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var Plans = []string{"basico", "profissional", "enterprise"}

func ValidPlan(p string) bool {
	for _, v := range Plans {
		if v == p {
			return true
		}
	}
	return false
}

func (c *Company) Validate() error {
	if strings.TrimSpace(c.Nome) == "" {
		return fmt.Errorf("%w: nome is required", ErrInvalid)
	}
	if !ValidPlan(c.Plano) {
		return fmt.Errorf("%w: plano must be one of %s", ErrInvalid, strings.Join(Plans, ", "))
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return fmt.Errorf("%w: invalid email", ErrInvalid)
		}
	}
	return nil
}

// New builds an active company from the creation payload; plano defaults to basico.
func (r CreateCompanyRequest) New(id string) *Company {
	c := &Company{
		ID:        id,
		Nome:      strings.TrimSpace(r.Nome),
		Documento: strings.TrimSpace(r.Documento),
		Email:     strings.ToLower(strings.TrimSpace(r.Email)),
		Telefone:  strings.TrimSpace(r.Telefone),
		WhatsApp:  strings.TrimSpace(r.WhatsApp),
		Plano:     strings.TrimSpace(r.Plano),
		LogoURL:   strings.TrimSpace(r.LogoURL),
		Ativo:     true,
	}
	if c.Plano == "" {
		c.Plano = "basico"
	}
	return c
}

// CreateCompanyRequest payload of creation.
// swagger:model CreateCompanyRequest
type CreateCompanyRequest struct {
	Nome      string `json:"nome"      example:"Doces da Vó"`
	Documento string `json:"documento" example:"12.345.678/0001-90"`
	Email     string `json:"email"     example:"contato@docesdavo.com.br"`
	Telefone  string `json:"telefone"  example:"1133334444"`
	WhatsApp  string `json:"whatsapp"  example:"5511999998888"`
	Plano     string `json:"plano"     example:"basico"`
	LogoURL   string `json:"logo_url"`
}

// UpdateCompanyRequest payload of partial update. Nil fields are left untouched.
// swagger:model UpdateCompanyRequest
type UpdateCompanyRequest struct {
	Nome      *string `json:"nome"`
	Documento *string `json:"documento"`
	Email     *string `json:"email"`
	Telefone  *string `json:"telefone"`
	WhatsApp  *string `json:"whatsapp"`
	Plano     *string `json:"plano"`
	Ativo     *bool   `json:"ativo"`
	LogoURL   *string `json:"logo_url"`
}

// Apply copies the non-nil fields onto c.
func (u UpdateCompanyRequest) Apply(c *Company) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&c.Nome, u.Nome)
	set(&c.Documento, u.Documento)
	set(&c.Email, u.Email)
	set(&c.Telefone, u.Telefone)
	set(&c.WhatsApp, u.WhatsApp)
	set(&c.Plano, u.Plano)
	set(&c.LogoURL, u.LogoURL)
	if u.Ativo != nil {
		c.Ativo = *u.Ativo
	}
}

// Stats is the admin-master dashboard summary.
type Stats struct {
	Empresas       int    `json:"empresas"`
	EmpresasAtivas int    `json:"empresas_ativas"`
	Pedidos        int    `json:"pedidos"`
	Faturamento    string `json:"faturamento"`
	PedidosHoje    int    `json:"pedidos_hoje"`
}

// ListResponse represents the paginated response of companies.
// swagger:model CompanyListResponse
type ListResponse struct {
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
	Total  int       `json:"total"`
	Items  []Company `json:"items"`
}

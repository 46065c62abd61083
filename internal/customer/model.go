package customer

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"
)

// Customer is a "pessoa": a contact that talks to the company over WhatsApp.
type Customer struct {
	ID          string    `json:"id"`
	EmpresaID   string    `json:"empresa_id"`
	Nome        string    `json:"nome"`
	Telefone    string    `json:"telefone"`
	Email       string    `json:"email,omitempty"`
	Documento   string    `json:"documento,omitempty"`
	Endereco    string    `json:"endereco,omitempty"`
	Cidade      string    `json:"cidade,omitempty"`
	Estado      string    `json:"estado,omitempty"`
	CEP         string    `json:"cep,omitempty"`
	Observacoes string    `json:"observacoes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NormalizePhone keeps only digits, so "+55 (11) 99999-8888" and "5511999998888" match.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Nome) == "" {
		return fmt.Errorf("%w: nome is required", ErrInvalid)
	}
	if n := len(c.Telefone); n < 10 || n > 15 {
		return fmt.Errorf("%w: telefone must have between 10 and 15 digits", ErrInvalid)
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return fmt.Errorf("%w: invalid email", ErrInvalid)
		}
	}
	if c.Estado != "" && len(c.Estado) != 2 {
		return fmt.Errorf("%w: estado must be a 2-letter UF", ErrInvalid)
	}
	return nil
}

// Input is the write payload; nil fields are left untouched on update.
// swagger:model CustomerInput
type Input struct {
	ID          *string `json:"id,omitempty"`
	Nome        *string `json:"nome"        example:"João da Silva"`
	Telefone    *string `json:"telefone"    example:"+55 11 99999-8888"`
	Email       *string `json:"email"       example:"joao@email.com"`
	Documento   *string `json:"documento"   example:"123.456.789-09"`
	Endereco    *string `json:"endereco"    example:"Rua das Flores, 10"`
	Cidade      *string `json:"cidade"      example:"São Paulo"`
	Estado      *string `json:"estado"      example:"SP"`
	CEP         *string `json:"cep"         example:"01001-000"`
	Observacoes *string `json:"observacoes"`
}

func (in Input) Apply(c *Customer) {
	str := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	str(&c.Nome, in.Nome)
	str(&c.Email, in.Email)
	str(&c.Documento, in.Documento)
	str(&c.Endereco, in.Endereco)
	str(&c.Cidade, in.Cidade)
	str(&c.CEP, in.CEP)
	str(&c.Observacoes, in.Observacoes)
	if in.Telefone != nil {
		c.Telefone = NormalizePhone(*in.Telefone)
	}
	if in.Estado != nil {
		c.Estado = strings.ToUpper(strings.TrimSpace(*in.Estado))
	}
	c.Email = strings.ToLower(c.Email)
}

// ListResponse represents the paginated response of customers.
// swagger:model CustomerListResponse
type ListResponse struct {
	Q      string     `json:"q,omitempty"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
	Total  int        `json:"total"`
	Items  []Customer `json:"items"`
}

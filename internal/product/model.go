package product

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        string `json:"id"`
	EmpresaID string `json:"empresa_id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
	// NUMERIC(12,2) in Postgres; serialized as a JSON string to avoid float rounding
	Preco     decimal.Decimal `json:"preco"`
	Estoque   int             `json:"estoque"`
	SKU       string          `json:"sku,omitempty"`
	Categoria string          `json:"categoria,omitempty"`
	ImagemURL string          `json:"imagem_url,omitempty"`
	Ativo     bool            `json:"ativo"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// LowStockThreshold is the stock level at or below which the company is warned.
const LowStockThreshold = 5

func (p *Product) Validate() error {
	if strings.TrimSpace(p.Nome) == "" {
		return fmt.Errorf("%w: nome is required", ErrInvalid)
	}
	if !p.Preco.IsPositive() {
		return fmt.Errorf("%w: preco must be greater than zero", ErrInvalid)
	}
	if !p.Preco.Equal(p.Preco.Round(2)) {
		return fmt.Errorf("%w: preco supports at most 2 decimal places", ErrInvalid)
	}
	if p.Estoque < 0 {
		return fmt.Errorf("%w: estoque must be non-negative", ErrInvalid)
	}
	return nil
}

// Input is the write payload shared by the portal, the edge API and the importer.
// Nil fields are left untouched on update.
// swagger:model ProductInput
type Input struct {
	ID        *string          `json:"id,omitempty"`
	Nome      *string          `json:"nome"       example:"Bolo de cenoura"`
	Descricao *string          `json:"descricao"  example:"Com cobertura de chocolate"`
	Preco     *decimal.Decimal `json:"preco"      swaggertype:"string" example:"39.90"`
	Estoque   *int             `json:"estoque"    example:"10"`
	SKU       *string          `json:"sku"        example:"BOLO-CEN-01"`
	Categoria *string          `json:"categoria"  example:"bolos"`
	ImagemURL *string          `json:"imagem_url"`
	Ativo     *bool            `json:"ativo"`
}

func (in Input) Apply(p *Product) {
	str := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	str(&p.Nome, in.Nome)
	str(&p.Descricao, in.Descricao)
	str(&p.SKU, in.SKU)
	str(&p.Categoria, in.Categoria)
	str(&p.ImagemURL, in.ImagemURL)
	if in.Preco != nil {
		p.Preco = *in.Preco
	}
	if in.Estoque != nil {
		p.Estoque = *in.Estoque
	}
	if in.Ativo != nil {
		p.Ativo = *in.Ativo
	}
}

// ListResponse represents the paginated response of products.
// swagger:model
type ListResponse struct {
	// search query applied
	Q string `json:"q,omitempty"`
	// limit applied
	Limit int `json:"limit"`
	// offset applied
	Offset int `json:"offset"`
	// total rows matching the filters
	Total int       `json:"total"`
	Items []Product `json:"items"`
}

package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              string          `json:"id"`
	EmpresaID       string          `json:"empresa_id"`
	PessoaID        string          `json:"pessoa_id"`
	ClienteNome     string          `json:"cliente_nome,omitempty"`
	ClienteTelefone string          `json:"cliente_telefone,omitempty"`
	Numero          int64           `json:"numero"`
	Status          string          `json:"status"`
	StatusPagamento string          `json:"status_pagamento"`
	Total           decimal.Decimal `json:"total"` // NUMERIC(12,2)
	FormaPagamento  string          `json:"forma_pagamento,omitempty"`
	Origem          string          `json:"origem"`
	Observacoes     string          `json:"observacoes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Itens           []Item          `json:"itens,omitempty"`
}

type Item struct {
	ID            string          `json:"id"`
	PedidoID      string          `json:"pedido_id"`
	ProdutoID     string          `json:"produto_id"`
	ProdutoNome   string          `json:"produto_nome,omitempty"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

const (
	OrigemPortal   = "portal"
	OrigemAPI      = "api"
	OrigemWhatsApp = "whatsapp"
)

// ListResponse represents the paginated response of orders.
// swagger:model OrderListResponse
type ListResponse struct {
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
	Total  int     `json:"total"`
	Items  []Order `json:"items"`
}

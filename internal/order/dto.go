package order

// CreateOrderItem payload de ítem. Either produto_id or sku identifies the product.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ProdutoID  string `json:"produto_id" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	SKU        string `json:"sku,omitempty" example:"BOLO-CEN-01"`
	Quantidade int    `json:"quantidade" example:"2"`
}

// CreateOrderRequest payload de creación de pedido.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	PessoaID       string            `json:"pessoa_id" example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	Itens          []CreateOrderItem `json:"itens"`
	FormaPagamento string            `json:"forma_pagamento" example:"pix"`
	Observacoes    string            `json:"observacoes"`
	Origem         string            `json:"-"`
}

// UpdateStatusRequest payload de cambio de estado.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"confirmado"`
}

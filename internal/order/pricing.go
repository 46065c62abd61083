package order

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoItems           = errors.New("order needs at least one item")
	ErrInvalidQuantity   = errors.New("quantidade must be greater than zero")
	ErrProductNotFound   = errors.New("product not found")
	ErrProductInactive   = errors.New("product is inactive")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// StockRow is the product state read (and locked) while an order is priced.
type StockRow struct {
	ID      string
	SKU     string
	Nome    string
	Preco   decimal.Decimal
	Estoque int
	Ativo   bool
}

// CheckLines validates the request shape before any product is read.
func CheckLines(lines []CreateOrderItem) error {
	if len(lines) == 0 {
		return ErrNoItems
	}
	for i, l := range lines {
		if l.ProdutoID == "" && l.SKU == "" {
			return fmt.Errorf("%w: item %d has no produto_id or sku", ErrProductNotFound, i)
		}
		if l.Quantidade <= 0 {
			return fmt.Errorf("%w: item %d", ErrInvalidQuantity, i)
		}
	}
	return nil
}

// Price turns request lines into order items using the current product rows.
// Lines pointing at the same product are merged so the stock check sees the
// full requested quantity. Unit prices are snapshotted from the catalog.
func Price(orderID string, lines []CreateOrderItem, products []StockRow) ([]Item, decimal.Decimal, error) {
	if err := CheckLines(lines); err != nil {
		return nil, decimal.Zero, err
	}

	byID := make(map[string]StockRow, len(products))
	bySKU := make(map[string]StockRow, len(products))
	for _, p := range products {
		byID[p.ID] = p
		if p.SKU != "" {
			bySKU[p.SKU] = p
		}
	}

	var items []Item
	index := map[string]int{}
	for _, l := range lines {
		p, ok := byID[l.ProdutoID]
		if !ok && l.SKU != "" {
			p, ok = bySKU[l.SKU]
		}
		if !ok {
			ref := l.ProdutoID
			if ref == "" {
				ref = l.SKU
			}
			return nil, decimal.Zero, fmt.Errorf("%w: %s", ErrProductNotFound, ref)
		}
		if !p.Ativo {
			return nil, decimal.Zero, fmt.Errorf("%w: %s", ErrProductInactive, p.Nome)
		}
		if i, seen := index[p.ID]; seen {
			items[i].Quantidade += l.Quantidade
			continue
		}
		index[p.ID] = len(items)
		items = append(items, Item{
			ID:            uuid.NewString(),
			PedidoID:      orderID,
			ProdutoID:     p.ID,
			ProdutoNome:   p.Nome,
			Quantidade:    l.Quantidade,
			PrecoUnitario: p.Preco,
		})
	}

	total := decimal.Zero
	for i := range items {
		p := byID[items[i].ProdutoID]
		if items[i].Quantidade > p.Estoque {
			return nil, decimal.Zero, fmt.Errorf("%w: %s (disponível %d, pedido %d)", ErrInsufficientStock, p.Nome, p.Estoque, items[i].Quantidade)
		}
		items[i].Subtotal = items[i].PrecoUnitario.Mul(decimal.NewFromInt(int64(items[i].Quantidade))).Round(2)
		total = total.Add(items[i].Subtotal)
	}
	return items, total, nil
}

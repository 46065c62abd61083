package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

type Query struct {
	EmpresaID string
	Status    string
	PessoaID  string
	Telefone  string
	From, To  *time.Time
	Limit     int
	Offset    int
}

// CreateResult carries the stored order and the products whose stock fell to
// the low-stock threshold because of it.
type CreateResult struct {
	Order    *Order
	LowStock []StockRow
}

type Repository interface {
	Create(ctx context.Context, o *Order, lines []CreateOrderItem, lowStock int) (*CreateResult, error)
	GetByID(ctx context.Context, empresaID, id string) (*Order, error)
	GetByNumero(ctx context.Context, empresaID string, numero int64) (*Order, error)
	GetItems(ctx context.Context, empresaID, orderID string) ([]Item, error)
	List(ctx context.Context, q Query) ([]Order, int, error)
	UpdateStatus(ctx context.Context, empresaID, id, status string) (*Order, bool, error)
	UpdatePayment(ctx context.Context, empresaID, id, status string) (*Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const orderSelect = `
	SELECT o.id, o.empresa_id, o.pessoa_id, p.nome, p.telefone, o.numero, o.status, o.status_pagamento,
	       o.total::text, o.forma_pagamento, o.origem, o.observacoes, o.created_at, o.updated_at
	FROM pedidos o
	JOIN pessoas p ON p.id = o.pessoa_id`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var total string
	err := row.Scan(&o.ID, &o.EmpresaID, &o.PessoaID, &o.ClienteNome, &o.ClienteTelefone, &o.Numero, &o.Status, &o.StatusPagamento,
		&total, &o.FormaPagamento, &o.Origem, &o.Observacoes, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if o.Total, err = decimal.NewFromString(total); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PGRepo) Create(ctx context.Context, o *Order, lines []CreateOrderItem, lowStock int) (*CreateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var one int
	err = tx.QueryRow(ctx, `SELECT 1 FROM pessoas WHERE empresa_id=$1 AND id=$2`, o.EmpresaID, o.PessoaID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(lines))
	skus := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.ProdutoID != "" {
			ids = append(ids, l.ProdutoID)
		}
		if l.SKU != "" {
			skus = append(skus, l.SKU)
		}
	}
	products, err := lockProducts(ctx, tx, o.EmpresaID, ids, skus)
	if err != nil {
		return nil, err
	}

	items, total, err := Price(o.ID, lines, products)
	if err != nil {
		return nil, err
	}
	o.Total = total
	o.Itens = items

	// per-company order numbers; the advisory lock serializes concurrent creations
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "pedidos:"+o.EmpresaID); err != nil {
		return nil, err
	}
	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(numero), 0) + 1 FROM pedidos WHERE empresa_id=$1`, o.EmpresaID).Scan(&o.Numero); err != nil {
		return nil, err
	}

	if err := tx.QueryRow(ctx, `
		INSERT INTO pedidos (id, empresa_id, pessoa_id, numero, status, status_pagamento, total, forma_pagamento, origem, observacoes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW(),NOW())
		RETURNING created_at, updated_at
	`, o.ID, o.EmpresaID, o.PessoaID, o.Numero, o.Status, o.StatusPagamento, o.Total.String(), o.FormaPagamento, o.Origem, o.Observacoes).
		Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}

	res := &CreateResult{Order: o}
	for _, it := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO pedido_itens (id, pedido_id, produto_id, quantidade, preco_unitario, subtotal)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, it.ID, o.ID, it.ProdutoID, it.Quantidade, it.PrecoUnitario.String(), it.Subtotal.String()); err != nil {
			return nil, err
		}
		var left int
		if err := tx.QueryRow(ctx, `
			UPDATE produtos SET estoque = estoque - $2, updated_at = NOW()
			WHERE id = $1
			RETURNING estoque
		`, it.ProdutoID, it.Quantidade).Scan(&left); err != nil {
			return nil, err
		}
		if left <= lowStock {
			res.LowStock = append(res.LowStock, StockRow{ID: it.ProdutoID, Nome: it.ProdutoNome, Estoque: left})
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

func lockProducts(ctx context.Context, tx pgx.Tx, empresaID string, ids, skus []string) ([]StockRow, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, sku, nome, preco::text, estoque, ativo
		FROM produtos
		WHERE empresa_id = $1 AND (id::text = ANY($2) OR (sku <> '' AND sku = ANY($3)))
		ORDER BY id
		FOR UPDATE
	`, empresaID, ids, skus)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StockRow
	for rows.Next() {
		var p StockRow
		var preco string
		if err := rows.Scan(&p.ID, &p.SKU, &p.Nome, &preco, &p.Estoque, &p.Ativo); err != nil {
			return nil, err
		}
		if p.Preco, err = decimal.NewFromString(preco); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, empresaID, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, orderSelect+` WHERE o.empresa_id=$1 AND o.id=$2`, empresaID, id))
	if err != nil {
		return nil, err
	}
	if o.Itens, err = r.items(ctx, r.db, o.ID); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PGRepo) GetByNumero(ctx context.Context, empresaID string, numero int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, orderSelect+` WHERE o.empresa_id=$1 AND o.numero=$2`, empresaID, numero))
	if err != nil {
		return nil, err
	}
	if o.Itens, err = r.items(ctx, r.db, o.ID); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PGRepo) GetItems(ctx context.Context, empresaID, orderID string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var one int
	err := r.db.QueryRow(ctx, `SELECT 1 FROM pedidos WHERE empresa_id=$1 AND id=$2`, empresaID, orderID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.items(ctx, r.db, orderID)
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PGRepo) items(ctx context.Context, q querier, orderID string) ([]Item, error) {
	rows, err := q.Query(ctx, `
		SELECT i.id, i.pedido_id, i.produto_id, pr.nome, i.quantidade, i.preco_unitario::text, i.subtotal::text
		FROM pedido_itens i
		JOIN produtos pr ON pr.id = i.produto_id
		WHERE i.pedido_id = $1
		ORDER BY pr.nome
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		var preco, sub string
		if err := rows.Scan(&it.ID, &it.PedidoID, &it.ProdutoID, &it.ProdutoNome, &it.Quantidade, &preco, &sub); err != nil {
			return nil, err
		}
		if it.PrecoUnitario, err = decimal.NewFromString(preco); err != nil {
			return nil, err
		}
		if it.Subtotal, err = decimal.NewFromString(sub); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Order, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	const where = `
		WHERE o.empresa_id = $1
		  AND ($2 = '' OR o.status = $2)
		  AND ($3 = '' OR o.pessoa_id::text = $3)
		  AND ($4 = '' OR p.telefone = $4)
		  AND ($5::timestamptz IS NULL OR o.created_at >= $5)
		  AND ($6::timestamptz IS NULL OR o.created_at < $6)`
	args := []any{q.EmpresaID, q.Status, q.PessoaID, q.Telefone, q.From, q.To}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM pedidos o JOIN pessoas p ON p.id = o.pessoa_id`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, orderSelect+where+`
		ORDER BY o.created_at DESC
		LIMIT $7 OFFSET $8`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *o)
	}
	return out, total, rows.Err()
}

// UpdateStatus moves the order along its flow. Cancelling puts every item
// back in stock. The bool reports whether the status actually changed.
func (r *PGRepo) UpdateStatus(ctx context.Context, empresaID, id, status string) (*Order, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var cur string
	err = tx.QueryRow(ctx, `SELECT status FROM pedidos WHERE empresa_id=$1 AND id=$2 FOR UPDATE`, empresaID, id).Scan(&cur)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, ErrNotFound
	}
	if err != nil {
		return nil, false, err
	}
	if err := CheckTransition(cur, status); err != nil {
		return nil, false, err
	}

	changed := cur != status
	if changed {
		if status == StatusCancelado {
			if _, err := tx.Exec(ctx, `
				UPDATE produtos pr
				SET estoque = pr.estoque + i.quantidade, updated_at = NOW()
				FROM pedido_itens i
				WHERE i.pedido_id = $1 AND pr.id = i.produto_id
			`, id); err != nil {
				return nil, false, fmt.Errorf("restock: %w", err)
			}
		}
		if _, err := tx.Exec(ctx, `UPDATE pedidos SET status=$2, updated_at=NOW() WHERE id=$1`, id, status); err != nil {
			return nil, false, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}

	o, err := r.GetByID(ctx, empresaID, id)
	return o, changed, err
}

// UpdatePayment records the payment status; a paid pending order is confirmed.
func (r *PGRepo) UpdatePayment(ctx context.Context, empresaID, id, status string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE pedidos
		SET status_pagamento = $3,
		    status = CASE WHEN $3 = 'pago' AND status = 'pendente' THEN 'confirmado' ELSE status END,
		    updated_at = NOW()
		WHERE empresa_id = $1 AND id = $2
	`, empresaID, id, status)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, empresaID, id)
}

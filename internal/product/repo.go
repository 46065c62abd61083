// Package product provides the repository and write rules for a company's catalog.
package product

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("product not found")
	ErrConflict = errors.New("sku already used by another product")
	ErrInvalid  = errors.New("invalid product")
	ErrInUse    = errors.New("product is referenced by orders")
)

type Query struct {
	EmpresaID string
	Q         string
	SKU       string
	Categoria string
	Ativo     *bool
	Limit     int
	Offset    int
}

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, empresaID, id string) (*Product, error)
	GetBySKU(ctx context.Context, empresaID, sku string) (*Product, error)
	List(ctx context.Context, q Query) ([]Product, int, error)
	// Update writes p. Stock is only written when estoque is non-nil; the
	// stored value is read back into p either way.
	Update(ctx context.Context, p *Product, estoque *int) error
	Delete(ctx context.Context, empresaID, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const productCols = `id, empresa_id, nome, descricao, preco::text, estoque, sku, categoria, imagem_url, ativo, created_at, updated_at`

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	var preco string
	err := row.Scan(&p.ID, &p.EmpresaID, &p.Nome, &p.Descricao, &preco, &p.Estoque, &p.SKU, &p.Categoria, &p.ImagemURL, &p.Ativo, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Preco, err = decimal.NewFromString(preco); err != nil {
		return nil, err
	}
	return &p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO produtos (id, empresa_id, nome, descricao, preco, estoque, sku, categoria, imagem_url, ativo, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW(),NOW())
		RETURNING created_at, updated_at
	`, p.ID, p.EmpresaID, p.Nome, p.Descricao, p.Preco.String(), p.Estoque, p.SKU, p.Categoria, p.ImagemURL, p.Ativo).Scan(&p.CreatedAt, &p.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, empresaID, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanProduct(r.db.QueryRow(ctx, `SELECT `+productCols+` FROM produtos WHERE empresa_id=$1 AND id=$2`, empresaID, id))
}

func (r *PGRepo) GetBySKU(ctx context.Context, empresaID, sku string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanProduct(r.db.QueryRow(ctx, `SELECT `+productCols+` FROM produtos WHERE empresa_id=$1 AND sku=$2 AND sku <> ''`, empresaID, sku))
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Product, int, error) {
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

	search := strings.TrimSpace(q.Q)
	const where = `
		WHERE empresa_id = $1
		  AND ($2 = '' OR nome ILIKE '%'||$2||'%' OR descricao ILIKE '%'||$2||'%')
		  AND ($3 = '' OR sku = $3)
		  AND ($4 = '' OR categoria ILIKE $4)
		  AND ($5::boolean IS NULL OR ativo = $5)`
	args := []any{q.EmpresaID, search, strings.TrimSpace(q.SKU), strings.TrimSpace(q.Categoria), q.Ativo}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM produtos`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+productCols+` FROM produtos`+where+`
		ORDER BY created_at DESC
		LIMIT $6 OFFSET $7`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *p)
	}
	return out, total, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, p *Product, estoque *int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// order creation moves estoque under a row lock; a write that did not send
	// it must keep whatever value is stored now
	err := r.db.QueryRow(ctx, `
		UPDATE produtos
		SET nome = $3,
		    descricao = $4,
		    preco = $5,
		    estoque = COALESCE($6::int, estoque),
		    sku = $7,
		    categoria = $8,
		    imagem_url = $9,
		    ativo = $10,
		    updated_at = NOW()
		WHERE empresa_id = $1 AND id = $2
		RETURNING estoque, updated_at
	`, p.EmpresaID, p.ID, p.Nome, p.Descricao, p.Preco.String(), estoque, p.SKU, p.Categoria, p.ImagemURL, p.Ativo).Scan(&p.Estoque, &p.UpdatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return ErrNotFound
	case isUniqueViolation(err):
		return ErrConflict
	}
	return err
}

func (r *PGRepo) Delete(ctx context.Context, empresaID, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM produtos WHERE empresa_id=$1 AND id=$2`, empresaID, id)
	if isForeignKeyViolation(err) {
		return false, ErrInUse
	}
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

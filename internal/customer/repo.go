// Package customer stores the contacts ("pessoas") of each company.
package customer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("customer not found")
	ErrConflict = errors.New("telefone already used by another customer")
	ErrInUse    = errors.New("customer has orders")
	ErrInvalid  = errors.New("invalid customer")
)

type Query struct {
	EmpresaID string
	Q         string
	Telefone  string
	Email     string
	Limit     int
	Offset    int
}

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, empresaID, id string) (*Customer, error)
	GetByPhone(ctx context.Context, empresaID, telefone string) (*Customer, error)
	List(ctx context.Context, q Query) ([]Customer, int, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, empresaID, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const customerCols = `id, empresa_id, nome, telefone, email, documento, endereco, cidade, estado, cep, observacoes, created_at, updated_at`

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	err := row.Scan(&c.ID, &c.EmpresaID, &c.Nome, &c.Telefone, &c.Email, &c.Documento, &c.Endereco, &c.Cidade, &c.Estado, &c.CEP, &c.Observacoes, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func (r *PGRepo) Create(ctx context.Context, c *Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO pessoas (id, empresa_id, nome, telefone, email, documento, endereco, cidade, estado, cep, observacoes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,NOW(),NOW())
		RETURNING created_at, updated_at
	`, c.ID, c.EmpresaID, c.Nome, c.Telefone, c.Email, c.Documento, c.Endereco, c.Cidade, c.Estado, c.CEP, c.Observacoes).Scan(&c.CreatedAt, &c.UpdatedAt)
	if pgCode(err) == "23505" {
		return ErrConflict
	}
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, empresaID, id string) (*Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanCustomer(r.db.QueryRow(ctx, `SELECT `+customerCols+` FROM pessoas WHERE empresa_id=$1 AND id=$2`, empresaID, id))
}

func (r *PGRepo) GetByPhone(ctx context.Context, empresaID, telefone string) (*Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanCustomer(r.db.QueryRow(ctx, `SELECT `+customerCols+` FROM pessoas WHERE empresa_id=$1 AND telefone=$2`, empresaID, telefone))
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Customer, int, error) {
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
		WHERE empresa_id = $1
		  AND ($2 = '' OR nome ILIKE '%'||$2||'%' OR telefone LIKE '%'||$2||'%' OR email ILIKE '%'||$2||'%')
		  AND ($3 = '' OR telefone = $3)
		  AND ($4 = '' OR lower(email) = lower($4))`
	args := []any{q.EmpresaID, strings.TrimSpace(q.Q), NormalizePhone(q.Telefone), strings.TrimSpace(q.Email)}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM pessoas`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+customerCols+` FROM pessoas`+where+`
		ORDER BY nome
		LIMIT $5 OFFSET $6`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *c)
	}
	return out, total, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, c *Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		UPDATE pessoas
		SET nome=$3, telefone=$4, email=$5, documento=$6, endereco=$7, cidade=$8, estado=$9, cep=$10, observacoes=$11, updated_at=NOW()
		WHERE empresa_id=$1 AND id=$2
		RETURNING updated_at
	`, c.EmpresaID, c.ID, c.Nome, c.Telefone, c.Email, c.Documento, c.Endereco, c.Cidade, c.Estado, c.CEP, c.Observacoes).Scan(&c.UpdatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return ErrNotFound
	case pgCode(err) == "23505":
		return ErrConflict
	}
	return err
}

func (r *PGRepo) Delete(ctx context.Context, empresaID, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM pessoas WHERE empresa_id=$1 AND id=$2`, empresaID, id)
	if pgCode(err) == "23503" {
		return false, ErrInUse
	}
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

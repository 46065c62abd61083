package company

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("company not found")
	ErrInvalid  = errors.New("invalid company")
)

type Query struct {
	Q      string
	Ativo  *bool
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	List(ctx context.Context, q Query) ([]Company, int, error)
	Update(ctx context.Context, c *Company) error
	Deactivate(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (*Stats, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const companyCols = `id, nome, documento, email, telefone, whatsapp, plano, ativo, logo_url, created_at, updated_at`

func scanCompany(row pgx.Row) (*Company, error) {
	var c Company
	err := row.Scan(&c.ID, &c.Nome, &c.Documento, &c.Email, &c.Telefone, &c.WhatsApp, &c.Plano, &c.Ativo, &c.LogoURL, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PGRepo) Create(ctx context.Context, c *Company) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO empresas (id, nome, documento, email, telefone, whatsapp, plano, ativo, logo_url, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
		RETURNING created_at, updated_at
	`, c.ID, c.Nome, c.Documento, c.Email, c.Telefone, c.WhatsApp, c.Plano, c.Ativo, c.LogoURL).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanCompany(r.db.QueryRow(ctx, `SELECT `+companyCols+` FROM empresas WHERE id=$1`, id))
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Company, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	search := strings.TrimSpace(q.Q)
	const where = `
		WHERE ($1 = '' OR nome ILIKE '%'||$1||'%' OR documento ILIKE '%'||$1||'%' OR email ILIKE '%'||$1||'%')
		  AND ($2::boolean IS NULL OR ativo = $2)`

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM empresas`+where, search, q.Ativo).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+companyCols+` FROM empresas`+where+`
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`, search, q.Ativo, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *c)
	}
	return out, total, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, c *Company) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		UPDATE empresas
		SET nome=$2, documento=$3, email=$4, telefone=$5, whatsapp=$6, plano=$7, ativo=$8, logo_url=$9, updated_at=NOW()
		WHERE id=$1
		RETURNING updated_at
	`, c.ID, c.Nome, c.Documento, c.Email, c.Telefone, c.WhatsApp, c.Plano, c.Ativo, c.LogoURL).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Deactivate soft-deletes a company; its rows stay for reporting.
func (r *PGRepo) Deactivate(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `UPDATE empresas SET ativo=FALSE, updated_at=NOW() WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGRepo) Stats(ctx context.Context) (*Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Stats
	err := r.db.QueryRow(ctx, `
		SELECT
		  (SELECT COUNT(*) FROM empresas),
		  (SELECT COUNT(*) FROM empresas WHERE ativo),
		  (SELECT COUNT(*) FROM pedidos),
		  (SELECT COALESCE(SUM(total), 0)::text FROM pedidos WHERE status <> 'cancelado'),
		  (SELECT COUNT(*) FROM pedidos WHERE created_at >= date_trunc('day', NOW()))
	`).Scan(&s.Empresas, &s.EmpresasAtivas, &s.Pedidos, &s.Faturamento, &s.PedidosHoje)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

package apitoken

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("api token not found")

type Repository interface {
	Create(ctx context.Context, t *Token) error
	// GetByHash only finds tokens of active companies.
	GetByHash(ctx context.Context, hash string) (*Token, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]Token, error)
	// Revoke deactivates the token and returns its hash.
	Revoke(ctx context.Context, empresaID, id string) (string, error)
	Touch(ctx context.Context, id string, at time.Time) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const tokenColumns = `id, empresa_id, nome, prefixo, token_hash, ativo, ultimo_uso, expira_em, created_at`

func scanToken(row pgx.Row) (*Token, error) {
	var t Token
	err := row.Scan(&t.ID, &t.EmpresaID, &t.Nome, &t.Prefixo, &t.Hash, &t.Ativo, &t.UltimoUso, &t.ExpiraEm, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PGRepo) Create(ctx context.Context, t *Token) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO api_tokens (id, empresa_id, nome, prefixo, token_hash, ativo, expira_em, created_at)
		VALUES ($1,$2,$3,$4,$5,TRUE,$6,NOW())
		RETURNING created_at
	`, t.ID, t.EmpresaID, t.Nome, t.Prefixo, t.Hash, t.ExpiraEm).Scan(&t.CreatedAt)
}

func (r *PGRepo) GetByHash(ctx context.Context, hash string) (*Token, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanToken(r.db.QueryRow(ctx, `
		SELECT t.id, t.empresa_id, t.nome, t.prefixo, t.token_hash, t.ativo, t.ultimo_uso, t.expira_em, t.created_at
		FROM api_tokens t
		JOIN empresas e ON e.id = t.empresa_id AND e.ativo
		WHERE t.token_hash=$1`, hash))
}

func (r *PGRepo) ListByEmpresa(ctx context.Context, empresaID string) ([]Token, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+tokenColumns+` FROM api_tokens WHERE empresa_id=$1 ORDER BY created_at DESC`, empresaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Token{}
	for rows.Next() {
		t, err := scanToken(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *PGRepo) Revoke(ctx context.Context, empresaID, id string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var hash string
	err := r.db.QueryRow(ctx, `
		UPDATE api_tokens SET ativo = FALSE
		WHERE empresa_id=$1 AND id::text=$2
		RETURNING token_hash
	`, empresaID, id).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return hash, err
}

func (r *PGRepo) Touch(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `UPDATE api_tokens SET ultimo_uso=$2 WHERE id=$1`, id, at)
	return err
}

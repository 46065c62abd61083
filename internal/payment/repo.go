package payment

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("payment config not found")

type Repository interface {
	List(ctx context.Context, empresaID string) ([]Config, error)
	Get(ctx context.Context, empresaID, provedor string) (*Config, error)
	Upsert(ctx context.Context, c *Config) error
	Delete(ctx context.Context, empresaID, provedor string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const configColumns = `id, empresa_id, provedor, chave_publica, chave_secreta, webhook_secret, ativo, updated_at`

func scanConfig(row pgx.Row) (*Config, error) {
	var c Config
	err := row.Scan(&c.ID, &c.EmpresaID, &c.Provedor, &c.ChavePublica, &c.ChaveSecreta, &c.WebhookSecret, &c.Ativo, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PGRepo) List(ctx context.Context, empresaID string) ([]Config, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+configColumns+` FROM pagamento_configs WHERE empresa_id=$1 ORDER BY provedor`, empresaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Config{}
	for rows.Next() {
		c, err := scanConfig(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *PGRepo) Get(ctx context.Context, empresaID, provedor string) (*Config, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanConfig(r.db.QueryRow(ctx,
		`SELECT `+configColumns+` FROM pagamento_configs WHERE empresa_id=$1 AND provedor=$2`, empresaID, provedor))
}

func (r *PGRepo) Upsert(ctx context.Context, c *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO pagamento_configs (id, empresa_id, provedor, chave_publica, chave_secreta, webhook_secret, ativo, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
		ON CONFLICT (empresa_id, provedor) DO UPDATE SET
			chave_publica = EXCLUDED.chave_publica,
			chave_secreta = EXCLUDED.chave_secreta,
			webhook_secret = EXCLUDED.webhook_secret,
			ativo = EXCLUDED.ativo,
			updated_at = NOW()
		RETURNING id, updated_at
	`, c.ID, c.EmpresaID, c.Provedor, c.ChavePublica, c.ChaveSecreta, c.WebhookSecret, c.Ativo).Scan(&c.ID, &c.UpdatedAt)
}

func (r *PGRepo) Delete(ctx context.Context, empresaID, provedor string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM pagamento_configs WHERE empresa_id=$1 AND provedor=$2`, empresaID, provedor)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

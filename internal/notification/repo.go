package notification

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("notification not found")

type Query struct {
	EmpresaID  string
	SomenteNao bool // unread only
	Limit      int
}

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	List(ctx context.Context, q Query) ([]Notification, error)
	CountUnread(ctx context.Context, empresaID string) (int, error)
	MarkRead(ctx context.Context, empresaID, id string) error
	MarkAllRead(ctx context.Context, empresaID string) (int64, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, n *Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO notificacoes (id, empresa_id, tipo, titulo, mensagem, referencia_id, lida, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,FALSE,NOW())
		RETURNING created_at
	`, n.ID, n.EmpresaID, n.Tipo, n.Titulo, n.Mensagem, n.ReferenciaID).Scan(&n.CreatedAt)
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, empresa_id, tipo, titulo, mensagem, referencia_id, lida, created_at
		FROM notificacoes
		WHERE empresa_id = $1 AND (NOT $2 OR lida = FALSE)
		ORDER BY created_at DESC
		LIMIT $3
	`, q.EmpresaID, q.SomenteNao, q.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Notification{}
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.EmpresaID, &n.Tipo, &n.Titulo, &n.Mensagem, &n.ReferenciaID, &n.Lida, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *PGRepo) CountUnread(ctx context.Context, empresaID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notificacoes WHERE empresa_id=$1 AND lida=FALSE`, empresaID).Scan(&n)
	return n, err
}

func (r *PGRepo) MarkRead(ctx context.Context, empresaID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var got string
	err := r.db.QueryRow(ctx, `
		UPDATE notificacoes SET lida = TRUE
		WHERE empresa_id=$1 AND id::text=$2
		RETURNING id
	`, empresaID, id).Scan(&got)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PGRepo) MarkAllRead(ctx context.Context, empresaID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `UPDATE notificacoes SET lida = TRUE WHERE empresa_id=$1 AND lida=FALSE`, empresaID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

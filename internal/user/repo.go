package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrAlreadyExist = errors.New("user already exists")
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]User, error)
	Update(ctx context.Context, u *User, updatePassword bool) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const userCols = `id, empresa_id, nome, email, senha_hash, papel, ativo, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.EmpresaID, &u.Nome, &u.Email, &u.SenhaHash, &u.Papel, &u.Ativo, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGRepo) Create(ctx context.Context, u *User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO usuarios (id, empresa_id, nome, email, senha_hash, papel, ativo, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NOW(),NOW())
		RETURNING created_at, updated_at
	`, u.ID, u.EmpresaID, u.Nome, u.Email, u.SenhaHash, u.Papel, u.Ativo).Scan(&u.CreatedAt, &u.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExist
	}
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanUser(r.db.QueryRow(ctx, `SELECT `+userCols+` FROM usuarios WHERE id=$1`, id))
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return scanUser(r.db.QueryRow(ctx, `SELECT `+userCols+` FROM usuarios WHERE lower(email)=lower($1)`, email))
}

func (r *PGRepo) ListByEmpresa(ctx context.Context, empresaID string) ([]User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+userCols+` FROM usuarios WHERE empresa_id=$1 ORDER BY created_at`, empresaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, u *User, updatePassword bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if updatePassword {
		_, err := r.db.Exec(ctx, `
			UPDATE usuarios
			SET nome = COALESCE(NULLIF($2, ''), nome),
			    email = COALESCE(NULLIF($3, ''), email),
			    senha_hash = $4,
			    ativo = $5,
			    updated_at = NOW()
			WHERE id = $1
		`, u.ID, u.Nome, u.Email, u.SenhaHash, u.Ativo)
		return err
	}

	_, err := r.db.Exec(ctx, `
		UPDATE usuarios
		SET nome = COALESCE(NULLIF($2, ''), nome),
		    email = COALESCE(NULLIF($3, ''), email),
		    ativo = $4,
		    updated_at = NOW()
		WHERE id = $1
	`, u.ID, u.Nome, u.Email, u.Ativo)
	return err
}

package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalid = errors.New("invalid user")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a portal user. empresaID is nil only for the admin master.
func (s *Service) Create(ctx context.Context, empresaID *string, papel string, in CreateUserRequest) (*User, error) {
	nome := strings.TrimSpace(in.Nome)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if nome == "" || email == "" || in.Senha == "" {
		return nil, fmt.Errorf("%w: nome, email and senha are required", ErrInvalid)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalid)
	}
	if len(in.Senha) < MinPasswordLen {
		return nil, fmt.Errorf("%w: senha must have at least %d characters", ErrInvalid, MinPasswordLen)
	}
	switch papel {
	case RoleAdminMaster:
		empresaID = nil
	case RoleEmpresa:
		if empresaID == nil || *empresaID == "" {
			return nil, fmt.Errorf("%w: empresa_id is required", ErrInvalid)
		}
	default:
		return nil, fmt.Errorf("%w: unknown papel %q", ErrInvalid, papel)
	}

	hash, err := HashPassword(in.Senha)
	if err != nil {
		return nil, fmt.Errorf("hash error: %w", err)
	}
	u := &User{
		ID:        uuid.NewString(),
		EmpresaID: empresaID,
		Nome:      nome,
		Email:     email,
		SenhaHash: hash,
		Papel:     papel,
		Ativo:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate returns the user when the credentials match an active account.
func (s *Service) Authenticate(ctx context.Context, email, senha string) (*User, bool, error) {
	if email == "" || senha == "" {
		return nil, false, nil
	}
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if !u.Ativo || !CheckPassword(u.SenhaHash, senha) {
		return nil, false, nil
	}
	return u, true, nil
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByEmpresa(ctx context.Context, empresaID string) ([]User, error) {
	return s.repo.ListByEmpresa(ctx, empresaID)
}

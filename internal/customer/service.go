package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) Get(ctx context.Context, empresaID, id string) (*Customer, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, empresaID, id)
}

func (s *Service) GetByPhone(ctx context.Context, empresaID, telefone string) (*Customer, error) {
	return s.repo.GetByPhone(ctx, empresaID, NormalizePhone(telefone))
}

func (s *Service) List(ctx context.Context, q Query) ([]Customer, int, error) {
	return s.repo.List(ctx, q)
}

func (s *Service) Delete(ctx context.Context, empresaID, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	return s.repo.Delete(ctx, empresaID, id)
}

func (s *Service) Create(ctx context.Context, empresaID string, in Input) (*Customer, error) {
	if in.Nome == nil || in.Telefone == nil {
		return nil, fmt.Errorf("%w: nome and telefone are required", ErrInvalid)
	}
	c := &Customer{ID: uuid.NewString(), EmpresaID: empresaID}
	in.Apply(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, empresaID, id string, in Input) (*Customer, error) {
	c, err := s.Get(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}
	in.Apply(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Upsert matches by id, then by normalized phone, and creates otherwise.
func (s *Service) Upsert(ctx context.Context, empresaID string, in Input) (*Customer, bool, error) {
	if in.ID != nil && *in.ID != "" {
		c, err := s.Update(ctx, empresaID, *in.ID, in)
		return c, false, err
	}
	if in.Telefone != nil {
		if tel := NormalizePhone(*in.Telefone); tel != "" {
			cur, err := s.repo.GetByPhone(ctx, empresaID, tel)
			switch {
			case err == nil:
				c, err := s.Update(ctx, empresaID, cur.ID, in)
				return c, false, err
			case !errors.Is(err, ErrNotFound):
				return nil, false, err
			}
		}
	}
	c, err := s.Create(ctx, empresaID, in)
	return c, err == nil, err
}

package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MikeMC777/vendas-whatsapp/internal/notification"
)

// Notifier receives low-stock alerts.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification)
}

type Service struct {
	repo   Repository
	notify Notifier
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// WithNotifier enables estoque_baixo alerts on writes.
func (s *Service) WithNotifier(n Notifier) *Service {
	s.notify = n
	return s
}

// warnLowStock fires when a write leaves the product at or under the
// threshold and its stock went down (or it was just created).
func (s *Service) warnLowStock(ctx context.Context, p *Product, before int, created bool) {
	if s.notify == nil || !p.Ativo || p.Estoque > LowStockThreshold {
		return
	}
	if !created && p.Estoque >= before {
		return
	}
	s.notify.Notify(ctx, notification.Notification{
		EmpresaID:    p.EmpresaID,
		Tipo:         notification.TipoEstoqueBaixo,
		Titulo:       "Estoque baixo: " + p.Nome,
		Mensagem:     fmt.Sprintf("Restam %d unidades", p.Estoque),
		ReferenciaID: p.ID,
	})
}

func (s *Service) Get(ctx context.Context, empresaID, id string) (*Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, empresaID, id)
}

func (s *Service) GetBySKU(ctx context.Context, empresaID, sku string) (*Product, error) {
	return s.repo.GetBySKU(ctx, empresaID, sku)
}

func (s *Service) List(ctx context.Context, q Query) ([]Product, int, error) {
	return s.repo.List(ctx, q)
}

func (s *Service) Delete(ctx context.Context, empresaID, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	return s.repo.Delete(ctx, empresaID, id)
}

func (s *Service) Create(ctx context.Context, empresaID string, in Input) (*Product, error) {
	if in.Nome == nil || in.Preco == nil {
		return nil, fmt.Errorf("%w: nome and preco are required", ErrInvalid)
	}
	p := &Product{ID: uuid.NewString(), EmpresaID: empresaID, Ativo: true}
	in.Apply(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.warnLowStock(ctx, p, 0, true)
	return p, nil
}

// Update applies a partial change; price and stock are only touched when sent.
func (s *Service) Update(ctx context.Context, empresaID, id string, in Input) (*Product, error) {
	p, err := s.Get(ctx, empresaID, id)
	if err != nil {
		return nil, err
	}
	before := p.Estoque
	in.Apply(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p, in.Estoque); err != nil {
		return nil, err
	}
	s.warnLowStock(ctx, p, before, false)
	return p, nil
}

// Upsert matches an existing product by id, then by sku, and creates it otherwise.
// The bool reports whether a new row was created.
func (s *Service) Upsert(ctx context.Context, empresaID string, in Input) (*Product, bool, error) {
	if in.ID != nil && *in.ID != "" {
		p, err := s.Update(ctx, empresaID, *in.ID, in)
		return p, false, err
	}
	if in.SKU != nil && *in.SKU != "" {
		cur, err := s.repo.GetBySKU(ctx, empresaID, *in.SKU)
		switch {
		case err == nil:
			p, err := s.Update(ctx, empresaID, cur.ID, in)
			return p, false, err
		case !errors.Is(err, ErrNotFound):
			return nil, false, err
		}
	}
	p, err := s.Create(ctx, empresaID, in)
	return p, err == nil, err
}

package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrUnknownProvider = errors.New("unknown payment provider")
	ErrBadSecret       = errors.New("webhook secret mismatch")
	ErrInactive        = errors.New("payment provider is inactive")
)

type Service struct{ repo Repository }

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// List returns the company's configs with secrets masked.
func (s *Service) List(ctx context.Context, empresaID string) ([]Config, error) {
	cfgs, err := s.repo.List(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	for i := range cfgs {
		cfgs[i] = cfgs[i].Masked()
	}
	return cfgs, nil
}

func (s *Service) Upsert(ctx context.Context, empresaID, provedor string, req UpsertRequest) (*Config, error) {
	if !ValidProvider(provedor) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provedor)
	}
	c, err := s.repo.Get(ctx, empresaID, provedor)
	switch {
	case errors.Is(err, ErrNotFound):
		c = &Config{ID: uuid.NewString(), EmpresaID: empresaID, Provedor: provedor, Ativo: true}
	case err != nil:
		return nil, err
	}

	c.ChavePublica = req.ChavePublica
	if req.ChaveSecreta != "" {
		c.ChaveSecreta = req.ChaveSecreta
	}
	if req.WebhookSecret != "" {
		c.WebhookSecret = req.WebhookSecret
	}
	if req.Ativo != nil {
		c.Ativo = *req.Ativo
	}
	if err := s.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	m := c.Masked()
	return &m, nil
}

func (s *Service) Delete(ctx context.Context, empresaID, provedor string) (bool, error) {
	if !ValidProvider(provedor) {
		return false, fmt.Errorf("%w: %q", ErrUnknownProvider, provedor)
	}
	return s.repo.Delete(ctx, empresaID, provedor)
}

// CheckWebhook validates an incoming payment webhook for a company. Without
// a stored config the call is accepted, matching manual pix flows.
func (s *Service) CheckWebhook(ctx context.Context, empresaID, provedor, secret string) error {
	if !ValidProvider(provedor) {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, provedor)
	}
	c, err := s.repo.Get(ctx, empresaID, provedor)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !c.Ativo {
		return ErrInactive
	}
	if !c.VerifySecret(secret) {
		return ErrBadSecret
	}
	return nil
}

package apitoken

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalid      = errors.New("invalid api token request")
	ErrUnauthorized = errors.New("invalid or expired api token")
)

type Service struct {
	repo  Repository
	cache Cache
	ttl   time.Duration
	log   *zap.Logger
	now   func() time.Time
}

func NewService(repo Repository, cache Cache, ttl time.Duration, log *zap.Logger) *Service {
	return &Service{repo: repo, cache: cache, ttl: ttl, log: log, now: time.Now}
}

func (s *Service) Create(ctx context.Context, empresaID string, req CreateRequest) (*Created, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, fmt.Errorf("%w: nome is required", ErrInvalid)
	}
	if req.ExpiraEm != nil && !req.ExpiraEm.After(s.now()) {
		return nil, fmt.Errorf("%w: expira_em must be in the future", ErrInvalid)
	}
	plain, err := Generate()
	if err != nil {
		return nil, err
	}
	t := Token{
		ID:        uuid.NewString(),
		EmpresaID: empresaID,
		Nome:      nome,
		Prefixo:   displayPrefix(plain),
		Hash:      Hash(plain),
		Ativo:     true,
		ExpiraEm:  req.ExpiraEm,
	}
	if err := s.repo.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &Created{Token: t, Plaintext: plain}, nil
}

func (s *Service) List(ctx context.Context, empresaID string) ([]Token, error) {
	return s.repo.ListByEmpresa(ctx, empresaID)
}

// Revoke deactivates the token and drops it from the cache right away.
func (s *Service) Revoke(ctx context.Context, empresaID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	hash, err := s.repo.Revoke(ctx, empresaID, id)
	if err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, hash); err != nil {
		s.log.Warn("token cache invalidation failed", zap.String("token_id", id), zap.Error(err))
	}
	return nil
}

// ForgetCompany drops every cached token of a company, so a deactivated
// company stops resolving before the cache TTL runs out.
func (s *Service) ForgetCompany(ctx context.Context, empresaID string) error {
	tokens, err := s.repo.ListByEmpresa(ctx, empresaID)
	if err != nil {
		return err
	}
	var errs []error
	for _, t := range tokens {
		if err := s.cache.Delete(ctx, t.Hash); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Resolve returns the company a plaintext token belongs to.
func (s *Service) Resolve(ctx context.Context, plaintext string) (string, error) {
	if !strings.HasPrefix(plaintext, tokenPrefix) {
		return "", ErrUnauthorized
	}
	hash := Hash(plaintext)
	now := s.now()

	e, err := s.cache.Get(ctx, hash)
	if err != nil {
		s.log.Warn("token cache read failed", zap.Error(err))
	}
	if e != nil {
		if e.ExpiraEm != nil && !now.Before(*e.ExpiraEm) {
			_ = s.cache.Delete(ctx, hash)
			return "", ErrUnauthorized
		}
		return e.EmpresaID, nil
	}

	t, err := s.repo.GetByHash(ctx, hash)
	if errors.Is(err, ErrNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	if !t.Usable(now) {
		return "", ErrUnauthorized
	}

	ttl := s.ttl
	if t.ExpiraEm != nil && t.ExpiraEm.Sub(now) < ttl {
		ttl = t.ExpiraEm.Sub(now)
	}
	if err := s.cache.Set(ctx, hash, Entry{TokenID: t.ID, EmpresaID: t.EmpresaID, ExpiraEm: t.ExpiraEm}, ttl); err != nil {
		s.log.Warn("token cache write failed", zap.Error(err))
	}
	// ultimo_uso is refreshed on cache misses only
	if err := s.repo.Touch(ctx, t.ID, now); err != nil {
		s.log.Warn("token last use not recorded", zap.String("token_id", t.ID), zap.Error(err))
	}
	return t.EmpresaID, nil
}

package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Service struct {
	repo Repository
	bus  Bus
	log  *zap.Logger
	poll time.Duration
}

func NewService(repo Repository, bus Bus, log *zap.Logger, poll time.Duration) *Service {
	return &Service{repo: repo, bus: bus, log: log, poll: poll}
}

// Notify stores the notification and publishes it. Errors are logged and
// swallowed: an alert must never fail the operation that raised it.
func (s *Service) Notify(ctx context.Context, n Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if err := s.repo.Create(ctx, &n); err != nil {
		s.log.Error("notification not stored",
			zap.String("empresa_id", n.EmpresaID), zap.String("tipo", n.Tipo), zap.Error(err))
		return
	}
	if err := s.bus.Publish(ctx, n); err != nil {
		s.log.Warn("notification not published",
			zap.String("empresa_id", n.EmpresaID), zap.String("id", n.ID), zap.Error(err))
	}
}

func (s *Service) List(ctx context.Context, empresaID string, unreadOnly bool, limit int) (*ListResponse, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	items, err := s.repo.List(ctx, Query{EmpresaID: empresaID, SomenteNao: unreadOnly, Limit: limit})
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnread(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	return &ListResponse{Items: items, NaoLidas: unread, PollIntervalSeconds: int(s.poll / time.Second)}, nil
}

func (s *Service) CountUnread(ctx context.Context, empresaID string) (int, error) {
	return s.repo.CountUnread(ctx, empresaID)
}

func (s *Service) MarkRead(ctx context.Context, empresaID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	return s.repo.MarkRead(ctx, empresaID, id)
}

func (s *Service) MarkAllRead(ctx context.Context, empresaID string) (int64, error) {
	return s.repo.MarkAllRead(ctx, empresaID)
}

func (s *Service) Subscribe(ctx context.Context, empresaID string) (<-chan Notification, func(), error) {
	return s.bus.Subscribe(ctx, empresaID)
}

package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MikeMC777/vendas-whatsapp/internal/notification"
	"github.com/MikeMC777/vendas-whatsapp/internal/product"
)

// Notifier receives the alerts raised by order changes.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification)
}

type Service struct {
	repo   Repository
	notify Notifier
}

func NewService(repo Repository, notify Notifier) *Service {
	return &Service{repo: repo, notify: notify}
}

// Create prices the order against the live catalog, decrements stock and
// raises novo_pedido plus one estoque_baixo per product left at or under
// the threshold.
func (s *Service) Create(ctx context.Context, empresaID string, req CreateOrderRequest) (*Order, error) {
	if _, err := uuid.Parse(req.PessoaID); err != nil {
		return nil, ErrCustomerNotFound
	}
	if err := CheckLines(req.Itens); err != nil {
		return nil, err
	}
	origem := req.Origem
	if origem == "" {
		origem = OrigemPortal
	}

	o := &Order{
		ID:              uuid.NewString(),
		EmpresaID:       empresaID,
		PessoaID:        req.PessoaID,
		Status:          StatusPendente,
		StatusPagamento: PagamentoPendente,
		FormaPagamento:  req.FormaPagamento,
		Origem:          origem,
		Observacoes:     req.Observacoes,
	}
	res, err := s.repo.Create(ctx, o, req.Itens, product.LowStockThreshold)
	if err != nil {
		return nil, err
	}

	s.notify.Notify(ctx, notification.Notification{
		EmpresaID:    empresaID,
		Tipo:         notification.TipoNovoPedido,
		Titulo:       fmt.Sprintf("Novo pedido #%d", res.Order.Numero),
		Mensagem:     fmt.Sprintf("Total R$ %s (%s)", res.Order.Total.StringFixed(2), res.Order.Origem),
		ReferenciaID: res.Order.ID,
	})
	for _, p := range res.LowStock {
		s.notify.Notify(ctx, notification.Notification{
			EmpresaID:    empresaID,
			Tipo:         notification.TipoEstoqueBaixo,
			Titulo:       "Estoque baixo: " + p.Nome,
			Mensagem:     fmt.Sprintf("Restam %d unidades", p.Estoque),
			ReferenciaID: p.ID,
		})
	}
	return res.Order, nil
}

func (s *Service) Get(ctx context.Context, empresaID, id string) (*Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, empresaID, id)
}

func (s *Service) GetByNumero(ctx context.Context, empresaID string, numero int64) (*Order, error) {
	return s.repo.GetByNumero(ctx, empresaID, numero)
}

func (s *Service) Items(ctx context.Context, empresaID, id string) ([]Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	return s.repo.GetItems(ctx, empresaID, id)
}

func (s *Service) List(ctx context.Context, q Query) ([]Order, int, error) {
	if q.Status != "" && !ValidStatus(q.Status) {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidStatus, q.Status)
	}
	return s.repo.List(ctx, q)
}

func (s *Service) UpdateStatus(ctx context.Context, empresaID, id, status string) (*Order, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	o, changed, err := s.repo.UpdateStatus(ctx, empresaID, id, status)
	if err != nil {
		return nil, err
	}
	if changed {
		s.notify.Notify(ctx, notification.Notification{
			EmpresaID:    empresaID,
			Tipo:         notification.TipoPedidoStatus,
			Titulo:       fmt.Sprintf("Pedido #%d: %s", o.Numero, o.Status),
			ReferenciaID: o.ID,
		})
	}
	return o, nil
}

func (s *Service) UpdatePayment(ctx context.Context, empresaID, id, status string) (*Order, error) {
	if !ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: status_pagamento %q", ErrInvalidStatus, status)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	o, err := s.repo.UpdatePayment(ctx, empresaID, id, status)
	if err != nil {
		return nil, err
	}
	s.notify.Notify(ctx, notification.Notification{
		EmpresaID:    empresaID,
		Tipo:         notification.TipoPagamento,
		Titulo:       fmt.Sprintf("Pagamento do pedido #%d: %s", o.Numero, o.StatusPagamento),
		ReferenciaID: o.ID,
	})
	return o, nil
}

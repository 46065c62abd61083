package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type memRepo struct {
	items     []Notification
	createErr error
	lastQuery Query
}

func (m *memRepo) Create(ctx context.Context, n *Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	n.CreatedAt = time.Now()
	m.items = append(m.items, *n)
	return nil
}

func (m *memRepo) List(ctx context.Context, q Query) ([]Notification, error) {
	m.lastQuery = q
	var out []Notification
	for _, n := range m.items {
		if n.EmpresaID == q.EmpresaID && (!q.SomenteNao || !n.Lida) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memRepo) CountUnread(ctx context.Context, empresaID string) (int, error) {
	c := 0
	for _, n := range m.items {
		if n.EmpresaID == empresaID && !n.Lida {
			c++
		}
	}
	return c, nil
}

func (m *memRepo) MarkRead(ctx context.Context, empresaID, id string) error {
	for i := range m.items {
		if m.items[i].EmpresaID == empresaID && m.items[i].ID == id {
			m.items[i].Lida = true
			return nil
		}
	}
	return ErrNotFound
}

func (m *memRepo) MarkAllRead(ctx context.Context, empresaID string) (int64, error) {
	var c int64
	for i := range m.items {
		if m.items[i].EmpresaID == empresaID && !m.items[i].Lida {
			m.items[i].Lida = true
			c++
		}
	}
	return c, nil
}

type failingBus struct{ *Hub }

func (failingBus) Publish(context.Context, Notification) error { return errors.New("redis down") }

func TestNotify_StoresAndPublishes(t *testing.T) {
	repo := &memRepo{}
	hub := NewHub()
	defer hub.Close()
	svc := NewService(repo, hub, zaptest.NewLogger(t), 30*time.Second)

	ch, cancel, err := svc.Subscribe(context.Background(), "emp")
	require.NoError(t, err)
	defer cancel()

	svc.Notify(context.Background(), Notification{EmpresaID: "emp", Tipo: TipoNovoPedido, Titulo: "Novo pedido #7"})

	require.Len(t, repo.items, 1)
	assert.NotEmpty(t, repo.items[0].ID)
	got := recv(t, ch)
	assert.Equal(t, repo.items[0].ID, got.ID)
}

func TestNotify_StoreFailureIsLoggedNotPublished(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	hub := NewHub()
	defer hub.Close()
	svc := NewService(&memRepo{createErr: errors.New("db down")}, hub, zap.New(core), time.Second)

	ch, cancel, _ := svc.Subscribe(context.Background(), "emp")
	defer cancel()
	svc.Notify(context.Background(), Notification{EmpresaID: "emp"})

	assert.Equal(t, 1, logs.FilterMessage("notification not stored").Len())
	assert.Len(t, ch, 0)
}

func TestNotify_PublishFailureKeepsRow(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	hub := NewHub()
	defer hub.Close()
	repo := &memRepo{}
	svc := NewService(repo, failingBus{hub}, zap.New(core), time.Second)

	svc.Notify(context.Background(), Notification{EmpresaID: "emp"})
	assert.Len(t, repo.items, 1)
	assert.Equal(t, 1, logs.FilterMessage("notification not published").Len())
}

func TestList_ClampsLimitAndReportsPoll(t *testing.T) {
	repo := &memRepo{items: []Notification{
		{ID: "1", EmpresaID: "emp"},
		{ID: "2", EmpresaID: "emp", Lida: true},
		{ID: "3", EmpresaID: "other"},
	}}
	hub := NewHub()
	defer hub.Close()
	svc := NewService(repo, hub, zaptest.NewLogger(t), 30*time.Second)

	res, err := svc.List(context.Background(), "emp", false, 1000)
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, repo.lastQuery.Limit)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 1, res.NaoLidas)
	assert.Equal(t, 30, res.PollIntervalSeconds)

	res, err = svc.List(context.Background(), "emp", true, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, repo.lastQuery.Limit)
	assert.Len(t, res.Items, 1)
}

func TestMarkRead(t *testing.T) {
	id := "0b8f3b8e-3a55-4b8e-9a57-2f9f8d9b2c11"
	repo := &memRepo{items: []Notification{{ID: id, EmpresaID: "emp"}, {ID: "x", EmpresaID: "emp"}}}
	hub := NewHub()
	defer hub.Close()
	svc := NewService(repo, hub, zaptest.NewLogger(t), time.Second)

	assert.ErrorIs(t, svc.MarkRead(context.Background(), "emp", "not-a-uuid"), ErrNotFound)
	assert.ErrorIs(t, svc.MarkRead(context.Background(), "other", id), ErrNotFound)
	require.NoError(t, svc.MarkRead(context.Background(), "emp", id))

	n, err := svc.MarkAllRead(context.Background(), "emp")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	c, _ := svc.CountUnread(context.Background(), "emp")
	assert.Zero(t, c)
}

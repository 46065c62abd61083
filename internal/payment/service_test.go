package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct{ m map[string]*Config }

func newMemRepo() *memRepo { return &memRepo{m: map[string]*Config{}} }

func key(e, p string) string { return e + "/" + p }

func (r *memRepo) List(ctx context.Context, empresaID string) ([]Config, error) {
	var out []Config
	for _, c := range r.m {
		if c.EmpresaID == empresaID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memRepo) Get(ctx context.Context, empresaID, provedor string) (*Config, error) {
	c, ok := r.m[key(empresaID, provedor)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memRepo) Upsert(ctx context.Context, c *Config) error {
	cp := *c
	r.m[key(c.EmpresaID, c.Provedor)] = &cp
	return nil
}

func (r *memRepo) Delete(ctx context.Context, empresaID, provedor string) (bool, error) {
	if _, ok := r.m[key(empresaID, provedor)]; !ok {
		return false, nil
	}
	delete(r.m, key(empresaID, provedor))
	return true, nil
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "***", Mask("abc"))
	assert.Equal(t, "********7890", Mask("sk_live_1234567890"))
}

func TestUpsert_MasksAndKeepsSecretsWhenBlank(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	ctx := context.Background()

	got, err := svc.Upsert(ctx, "emp", ProviderStripe, UpsertRequest{ChavePublica: "pk_1", ChaveSecreta: "sk_live_abcdef", WebhookSecret: "whsec_123456"})
	require.NoError(t, err)
	assert.Equal(t, "********cdef", got.ChaveSecreta)
	assert.True(t, got.Ativo)

	off := false
	_, err = svc.Upsert(ctx, "emp", ProviderStripe, UpsertRequest{ChavePublica: "pk_2", Ativo: &off})
	require.NoError(t, err)
	stored := repo.m[key("emp", ProviderStripe)]
	assert.Equal(t, "sk_live_abcdef", stored.ChaveSecreta)
	assert.Equal(t, "pk_2", stored.ChavePublica)
	assert.False(t, stored.Ativo)

	list, err := svc.List(ctx, "emp")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotContains(t, list[0].WebhookSecret, "whsec")

	_, err = svc.Upsert(ctx, "emp", "paypal", UpsertRequest{})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestCheckWebhook(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	ctx := context.Background()

	assert.NoError(t, svc.CheckWebhook(ctx, "emp", ProviderPixManual, ""))
	assert.ErrorIs(t, svc.CheckWebhook(ctx, "emp", "nope", ""), ErrUnknownProvider)

	_, err := svc.Upsert(ctx, "emp", ProviderAsaas, UpsertRequest{WebhookSecret: "s3cret"})
	require.NoError(t, err)
	assert.NoError(t, svc.CheckWebhook(ctx, "emp", ProviderAsaas, "s3cret"))
	assert.ErrorIs(t, svc.CheckWebhook(ctx, "emp", ProviderAsaas, "wrong"), ErrBadSecret)

	off := false
	_, err = svc.Upsert(ctx, "emp", ProviderAsaas, UpsertRequest{Ativo: &off})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.CheckWebhook(ctx, "emp", ProviderAsaas, "s3cret"), ErrInactive)

	ok, err := svc.Delete(ctx, "emp", ProviderAsaas)
	require.NoError(t, err)
	assert.True(t, ok)
}

package apitoken

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type memRepo struct {
	byHash  map[string]*Token
	lookups int
	touched int
	// inactive companies, hidden from GetByHash
	inactive map[string]bool
}

func newMemRepo() *memRepo { return &memRepo{byHash: map[string]*Token{}} }

func (m *memRepo) Create(ctx context.Context, t *Token) error {
	t.CreatedAt = time.Now()
	cp := *t
	m.byHash[t.Hash] = &cp
	return nil
}

func (m *memRepo) GetByHash(ctx context.Context, hash string) (*Token, error) {
	m.lookups++
	t, ok := m.byHash[hash]
	if !ok || m.inactive[t.EmpresaID] {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memRepo) ListByEmpresa(ctx context.Context, empresaID string) ([]Token, error) {
	var out []Token
	for _, t := range m.byHash {
		if t.EmpresaID == empresaID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *memRepo) Revoke(ctx context.Context, empresaID, id string) (string, error) {
	for h, t := range m.byHash {
		if t.ID == id && t.EmpresaID == empresaID {
			t.Ativo = false
			return h, nil
		}
	}
	return "", ErrNotFound
}

func (m *memRepo) Touch(ctx context.Context, id string, at time.Time) error {
	m.touched++
	return nil
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (*Entry, error) { return nil, errors.New("down") }
func (brokenCache) Set(context.Context, string, Entry, time.Duration) error {
	return errors.New("down")
}
func (brokenCache) Delete(context.Context, string) error { return errors.New("down") }

func TestGenerateAndHash(t *testing.T) {
	a, err := Generate()
	require.NoError(t, err)
	b, err := Generate()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, "vw_"))
	assert.Len(t, a, 3+64)
	assert.NotEqual(t, a, b)
	assert.Len(t, Hash(a), 64)
	assert.Equal(t, Hash(a), Hash(a))
	assert.Equal(t, a[:8], displayPrefix(a))
}

func TestCreate_ReturnsPlaintextOnce(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, NewMemoryCache(), time.Minute, zaptest.NewLogger(t))

	c, err := svc.Create(context.Background(), "emp", CreateRequest{Nome: "n8n"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.Plaintext)
	stored := repo.byHash[Hash(c.Plaintext)]
	require.NotNil(t, stored)
	assert.Equal(t, c.Plaintext[:8], stored.Prefixo)
	assert.NotContains(t, stored.Hash, c.Plaintext)

	_, err = svc.Create(context.Background(), "emp", CreateRequest{Nome: " "})
	assert.ErrorIs(t, err, ErrInvalid)
	past := time.Now().Add(-time.Hour)
	_, err = svc.Create(context.Background(), "emp", CreateRequest{Nome: "x", ExpiraEm: &past})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestResolve_CachesAndRevokeInvalidates(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, NewMemoryCache(), time.Minute, zaptest.NewLogger(t))
	ctx := context.Background()

	c, err := svc.Create(ctx, "emp", CreateRequest{Nome: "bot"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		emp, err := svc.Resolve(ctx, c.Plaintext)
		require.NoError(t, err)
		assert.Equal(t, "emp", emp)
	}
	assert.Equal(t, 1, repo.lookups, "subsequent lookups must hit the cache")
	assert.Equal(t, 1, repo.touched)

	require.NoError(t, svc.Revoke(ctx, "emp", c.ID))
	_, err = svc.Resolve(ctx, c.Plaintext)
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.ErrorIs(t, svc.Revoke(ctx, "emp", "nope"), ErrNotFound)
}

func TestForgetCompany_StopsCachedTokens(t *testing.T) {
	repo := newMemRepo()
	cache := NewMemoryCache()
	svc := NewService(repo, cache, time.Hour, zaptest.NewLogger(t))
	ctx := context.Background()

	a, err := svc.Create(ctx, "emp", CreateRequest{Nome: "bot"})
	require.NoError(t, err)
	other, err := svc.Create(ctx, "outra", CreateRequest{Nome: "bot"})
	require.NoError(t, err)
	for _, p := range []string{a.Plaintext, other.Plaintext} {
		_, err := svc.Resolve(ctx, p)
		require.NoError(t, err)
	}

	repo.inactive = map[string]bool{"emp": true}
	require.NoError(t, svc.ForgetCompany(ctx, "emp"))

	_, err = svc.Resolve(ctx, a.Plaintext)
	assert.ErrorIs(t, err, ErrUnauthorized)
	e, err := cache.Get(ctx, Hash(other.Plaintext))
	require.NoError(t, err)
	assert.NotNil(t, e, "other companies keep their cache entries")

	assert.Error(t, NewService(repo, brokenCache{}, time.Hour, zaptest.NewLogger(t)).ForgetCompany(ctx, "outra"))
}

func TestResolve_Rejections(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, NewMemoryCache(), time.Minute, zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := svc.Resolve(ctx, "garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Resolve(ctx, "vw_unknown")
	assert.ErrorIs(t, err, ErrUnauthorized)

	soon := time.Now().Add(time.Hour)
	c, err := svc.Create(ctx, "emp", CreateRequest{Nome: "tmp", ExpiraEm: &soon})
	require.NoError(t, err)
	emp, err := svc.Resolve(ctx, c.Plaintext)
	require.NoError(t, err)
	assert.Equal(t, "emp", emp)

	svc.now = func() time.Time { return soon.Add(time.Second) }
	_, err = svc.Resolve(ctx, c.Plaintext)
	assert.ErrorIs(t, err, ErrUnauthorized, "cached entry must honour expira_em")
}

func TestResolve_CacheOutageFallsBackToDB(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, brokenCache{}, time.Minute, zaptest.NewLogger(t))
	ctx := context.Background()

	c, err := svc.Create(ctx, "emp", CreateRequest{Nome: "bot"})
	require.NoError(t, err)
	emp, err := svc.Resolve(ctx, c.Plaintext)
	require.NoError(t, err)
	assert.Equal(t, "emp", emp)
	require.NoError(t, svc.Revoke(ctx, "emp", c.ID))
}

func TestMemoryCache_Expires(t *testing.T) {
	c := NewMemoryCache()
	now := time.Now()
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "h", Entry{EmpresaID: "emp"}, time.Second))
	e, err := c.Get(ctx, "h")
	require.NoError(t, err)
	require.NotNil(t, e)

	now = now.Add(2 * time.Second)
	e, err = c.Get(ctx, "h")
	require.NoError(t, err)
	assert.Nil(t, e)
}

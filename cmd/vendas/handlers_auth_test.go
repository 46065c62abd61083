package main

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/vendas-whatsapp/internal/auth"
	"github.com/MikeMC777/vendas-whatsapp/internal/company"
	"github.com/MikeMC777/vendas-whatsapp/internal/user"
)

func adminSession() auth.Session {
	return auth.Session{UserID: uuid.NewString(), Papel: user.RoleAdminMaster, Nome: "root"}
}

func (w *world) companyUser(t *testing.T, email string) *user.User {
	t.Helper()
	u, err := w.app.users.Create(context.Background(), &w.empresaID, user.RoleEmpresa,
		user.CreateUserRequest{Nome: "Maria", Email: email, Senha: "s3nh4-f0rt3"})
	require.NoError(t, err)
	return u
}

func TestLogin(t *testing.T) {
	w := newWorld(t)
	u := w.companyUser(t, "maria@loja.com.br")
	r := newRouter(w.app)

	rec := do(r, http.MethodPost, "/auth/login", "", `{"email":"Maria@Loja.com.br","senha":"s3nh4-f0rt3"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, u.ID, got.Usuario.ID)
	assert.NotContains(t, rec.Body.String(), "senha_hash")

	sess, err := w.app.jwt.Parse(got.Token)
	require.NoError(t, err)
	assert.Equal(t, w.empresaID, sess.EmpresaID)
	assert.Equal(t, user.RoleEmpresa, sess.Papel)

	rec = do(r, http.MethodPost, "/auth/login", "", `{"email":"maria@loja.com.br","senha":"errada"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, rec.Body.String())

	rec = do(r, http.MethodPost, "/auth/login", "", `{"email":"ninguem@loja.com.br","senha":"s3nh4-f0rt3"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_InactiveCompany(t *testing.T) {
	w := newWorld(t)
	w.companyUser(t, "maria@loja.com.br")
	w.companies.items[w.empresaID].Ativo = false
	r := newRouter(w.app)

	rec := do(r, http.MethodPost, "/auth/login", "", `{"email":"maria@loja.com.br","senha":"s3nh4-f0rt3"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"company inactive"}`, rec.Body.String())
}

func TestMe(t *testing.T) {
	w := newWorld(t)
	u := w.companyUser(t, "maria@loja.com.br")
	r := newRouter(w.app)
	tok, _, err := w.app.jwt.Issue(auth.Session{UserID: u.ID, EmpresaID: w.empresaID, Papel: user.RoleEmpresa})
	require.NoError(t, err)

	rec := do(r, http.MethodGet, "/auth/me", tok, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got MeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, u.Email, got.Usuario.Email)
	require.NotNil(t, got.Empresa)
	assert.Equal(t, "Doces da Vó", got.Empresa.Nome)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/auth/me", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/auth/me", "lixo", "").Code)

	// usuário apagado
	ghost, _, _ := w.app.jwt.Issue(auth.Session{UserID: uuid.NewString(), Papel: user.RoleAdminMaster})
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/auth/me", ghost, "").Code)
}

func TestAdmin_Companies(t *testing.T) {
	w := newWorld(t)
	r := newRouter(w.app)
	admin, _, err := w.app.jwt.Issue(adminSession())
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/admin/empresas", w.session(t), "").Code)

	rec := do(r, http.MethodPost, "/admin/empresas", admin, `{"nome":" Pastelaria ","email":"Contato@Pastel.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var emp company.Company
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &emp))
	assert.Equal(t, "Pastelaria", emp.Nome)
	assert.Equal(t, "contato@pastel.com", emp.Email)
	assert.Equal(t, "basico", emp.Plano)
	assert.True(t, emp.Ativo)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/admin/empresas", admin, `{"nome":""}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/admin/empresas", admin, `{"nome":"X","plano":"ouro"}`).Code)

	rec = do(r, http.MethodPut, "/admin/empresas/"+emp.ID, admin, `{"plano":"premium"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "premium", w.companies.items[emp.ID].Plano)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/admin/empresas/nao-e-uuid", admin, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/admin/empresas/"+uuid.NewString(), admin, "").Code)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/admin/empresas/"+emp.ID, admin, "").Code)
	assert.False(t, w.companies.items[emp.ID].Ativo)

	rec = do(r, http.MethodGet, "/admin/empresas?ativo=true", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list company.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)

	rec = do(r, http.MethodGet, "/admin/stats", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var st company.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 2, st.Empresas)
	assert.Equal(t, 1, st.EmpresasAtivas)
}

func TestAdmin_DeactivateCutsSessionsAndTokens(t *testing.T) {
	w := newWorld(t)
	r := newRouter(w.app)
	admin, _, err := w.app.jwt.Issue(adminSession())
	require.NoError(t, err)
	tok, sess := w.apiToken(t), w.session(t)

	// the first call leaves the token in the cache
	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api-v1-produtos", tok, "").Code)
	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/portal/produtos", sess, "").Code)

	require.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/admin/empresas/"+w.empresaID, admin, "").Code)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api-v1-produtos", tok, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/portal/produtos", sess, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/portal/produtos", sess, `{"nome":"X","preco":"1.00"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/auth/me", sess, "").Code)
	assert.Empty(t, w.products.items)
	// admin sessions carry no company
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/admin/empresas", admin, "").Code)
}

func TestAdmin_CompanyUsers(t *testing.T) {
	w := newWorld(t)
	r := newRouter(w.app)
	admin, _, err := w.app.jwt.Issue(adminSession())
	require.NoError(t, err)
	path := "/admin/empresas/" + w.empresaID + "/usuarios"

	rec := do(r, http.MethodPost, path, admin, `{"nome":"Ana","email":"ana@loja.com","senha":"12345678"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var u user.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, user.RoleEmpresa, u.Papel)
	require.NotNil(t, u.EmpresaID)
	assert.Equal(t, w.empresaID, *u.EmpresaID)

	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, path, admin, `{"nome":"Ana","email":"ana@loja.com","senha":"12345678"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, path, admin, `{"nome":"Ana","email":"b@loja.com","senha":"curta"}`).Code)
	assert.Equal(t, http.StatusNotFound,
		do(r, http.MethodPost, "/admin/empresas/"+uuid.NewString()+"/usuarios", admin, `{"nome":"A","email":"c@l.com","senha":"12345678"}`).Code)

	rec = do(r, http.MethodGet, path, admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var users []user.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 1)
}

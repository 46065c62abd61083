package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/vendas-whatsapp/internal/apitoken"
	"github.com/MikeMC777/vendas-whatsapp/internal/payment"
)

func TestAPITokens_CreateListRevoke(t *testing.T) {
	w := newWorld(t)
	r := newRouter(w.app)
	tok := w.session(t)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/portal/api-tokens", tok, `{"nome":""}`).Code)

	rec := do(r, http.MethodPost, "/portal/api-tokens", tok, `{"nome":"n8n"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created apitoken.Created
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Plaintext)
	assert.True(t, created.Ativo)

	// o token criado abre a API de integração
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api-v1-pessoas", created.Plaintext, "").Code)

	rec = do(r, http.MethodGet, "/portal/api-tokens", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), created.Plaintext)
	var list []apitoken.Token
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/portal/api-tokens/"+created.ID, tok, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/portal/api-tokens/"+created.ID+"x", tok, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api-v1-pessoas", created.Plaintext, "").Code)
}

func TestPaymentConfigs(t *testing.T) {
	w := newWorld(t)
	r := newRouter(w.app)
	tok := w.session(t)

	rec := do(r, http.MethodPut, "/portal/pagamentos/configs/mercadopago", tok,
		`{"chave_publica":"APP_USR-123","chave_secreta":"TEST-9876543210","webhook_secret":"whsec_abcdef","ativo":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "TEST-9876543210")
	assert.Equal(t, "TEST-9876543210", w.payments.items[w.empresaID+"/mercadopago"].ChaveSecreta)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/portal/pagamentos/configs/paypal", tok, `{}`).Code)

	rec = do(r, http.MethodGet, "/portal/pagamentos/configs", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []payment.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.NotEqual(t, "whsec_abcdef", list[0].WebhookSecret)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/portal/pagamentos/configs/mercadopago", tok, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/portal/pagamentos/configs/mercadopago", tok, "").Code)
}

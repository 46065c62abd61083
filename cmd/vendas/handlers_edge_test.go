package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/vendas-whatsapp/internal/customer"
	"github.com/MikeMC777/vendas-whatsapp/internal/edge"
	ord "github.com/MikeMC777/vendas-whatsapp/internal/order"
	"github.com/MikeMC777/vendas-whatsapp/internal/payment"
)

func envelopeOf(t *testing.T, rec *httptest.ResponseRecorder) edge.Envelope {
	t.Helper()
	var env edge.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestEdge_TokenAndMethods(t *testing.T) {
	w := newWorld(t)
	r := newRouter(w.app)

	rec := do(r, http.MethodGet, "/api-v1-produtos", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"missing api token"}`, rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api-v1-produtos", "vw_invalido", "").Code)

	// o 405 não depende do token
	for _, path := range []string{"/api-v1-produtos", "/api-v1-pessoas", "/api-v1-pedidos"} {
		assert.Equal(t, http.StatusMethodNotAllowed, do(r, http.MethodDelete, path, "", "").Code, path)
		assert.Equal(t, http.StatusMethodNotAllowed, do(r, http.MethodPatch, path, "", "").Code, path)
		assert.Equal(t, http.StatusMethodNotAllowed, do(r, http.MethodHead, path, "", "").Code, path)
	}
	assert.Equal(t, http.StatusMethodNotAllowed, do(r, http.MethodGet, "/webhook-pedidos", "", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(r, http.MethodPut, "/webhook-pagamentos", "", "").Code)

	// X-API-Key também autentica
	req := httptest.NewRequest(http.MethodGet, "/api-v1-produtos", nil)
	req.Header.Set("X-API-Key", w.apiToken(t))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	// token revogado deixa de valer
	created, err := w.app.tokens.Create(req.Context(), w.empresaID, apitokenReq("revogar"))
	require.NoError(t, err)
	require.NoError(t, w.app.tokens.Revoke(req.Context(), w.empresaID, created.ID))
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api-v1-produtos", created.Plaintext, "").Code)
}

func TestEdge_ProductsBatch(t *testing.T) {
	w := newWorld(t)
	r := newRouter(w.app)
	tok := w.apiToken(t)

	// misto: uma linha válida e uma inválida ⇒ 200 com falhas
	rec := do(r, http.MethodPost, "/api-v1-produtos", tok,
		`[{"nome":"Bolo","preco":"35.00","estoque":10,"sku":"BOLO"},{"nome":"Sem preço"}]`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := envelopeOf(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, 2, env.Total)
	assert.Equal(t, 1, env.Processados)
	assert.Equal(t, 1, env.Erros)
	require.Len(t, env.Falhas, 1)
	assert.Equal(t, 1, env.Falhas[0].Indice)
	assert.Contains(t, env.Falhas[0].Erro, "invalid product")

	// tudo inválido ⇒ 400
	rec = do(r, http.MethodPost, "/api-v1-produtos", tok, `{"dados":[{"nome":""},{"preco":"x"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 2, envelopeOf(t, rec).Erros)

	// corpo que não é objeto nem array ⇒ 400 com corpo de erro
	rec = do(r, http.MethodPost, "/api-v1-produtos", tok, `"texto"`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)

	// PUT faz upsert pelo sku
	rec = do(r, http.MethodPut, "/api-v1-produtos", tok, `{"sku":"BOLO","preco":"40.00"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, w.products.items, 1)
	for _, p := range w.products.items {
		assert.Equal(t, "40.00", p.Preco.StringFixed(2))
		assert.Equal(t, 10, p.Estoque)
	}

	// GET lista e GET por id
	rec = do(r, http.MethodGet, "/api-v1-produtos?sku=BOLO&limit=9999", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		edge.Page
		Dados []map[string]any `json:"dados"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, edge.MaxLimit, page.Limit)
	require.Len(t, page.Dados, 1)
	id := page.Dados[0]["id"].(string)

	rec = do(r, http.MethodGet, "/api-v1-produtos?id="+id, tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var one struct {
		Total int            `json:"total"`
		Dados map[string]any `json:"dados"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &one))
	assert.Equal(t, 1, one.Total)
	assert.Equal(t, "Bolo", one.Dados["nome"])

	rec = do(r, http.MethodGet, "/api-v1-produtos?id="+uuid.NewString(), tok, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestEdge_ProductsInfraErrorIsHidden(t *testing.T) {
	w := newWorld(t)
	r := newRouter(w.app)
	tok := w.apiToken(t)
	w.products.failWith(errBoom)

	rec := do(r, http.MethodPost, "/api-v1-produtos", tok, `{"nome":"Bolo","preco":"35.00"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := envelopeOf(t, rec)
	require.Len(t, env.Falhas, 1)
	assert.Equal(t, "internal error", env.Falhas[0].Erro)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestEdge_CustomersBatch(t *testing.T) {
	w := newWorld(t)
	r := newRouter(w.app)
	tok := w.apiToken(t)

	rec := do(r, http.MethodPost, "/api-v1-pessoas", tok,
		`[{"nome":"João","telefone":"+55 (11) 99999-8888"},{"nome":"Repetido","telefone":"5511999998888"}]`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := envelopeOf(t, rec)
	assert.Equal(t, 1, env.Processados)
	require.Len(t, env.Falhas, 1)
	assert.Contains(t, env.Falhas[0].Erro, "telefone already used")

	// upsert pelo telefone atualiza em vez de duplicar
	rec = do(r, http.MethodPut, "/api-v1-pessoas", tok, `{"telefone":"5511999998888","cidade":"Campinas"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, w.customers.items, 1)
	for _, c := range w.customers.items {
		assert.Equal(t, "João", c.Nome)
		assert.Equal(t, "Campinas", c.Cidade)
	}

	rec = do(r, http.MethodGet, "/api-v1-pessoas?telefone=5511999998888", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestEdge_OrdersBatch(t *testing.T) {
	w := newWorld(t)
	p := seedProduct(w, "Brigadeiro", "2.50", 100)
	pessoa := w.customer(t, "Ana", "11988887777")
	r := newRouter(w.app)
	tok := w.apiToken(t)

	body := fmt.Sprintf(`[
		{"telefone":"(11) 98888-7777","itens":[{"produto_id":%q,"quantidade":10}]},
		{"telefone":"11000000000","itens":[{"produto_id":%q,"quantidade":1}]}
	]`, p.ID, p.ID)
	rec := do(r, http.MethodPost, "/api-v1-pedidos", tok, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := envelopeOf(t, rec)
	assert.Equal(t, 1, env.Processados)
	require.Len(t, env.Falhas, 1)
	assert.Equal(t, customer.ErrNotFound.Error(), env.Falhas[0].Erro)

	var o *ord.Order
	for _, v := range w.orders.items {
		o = v
	}
	require.NotNil(t, o)
	assert.Equal(t, pessoa.ID, o.PessoaID)
	assert.Equal(t, ord.OrigemAPI, o.Origem)
	assert.Equal(t, "25.00", o.Total.StringFixed(2))

	// atualização por número
	rec = do(r, http.MethodPut, "/api-v1-pedidos", tok, `{"numero":1,"status":"confirmado","status_pagamento":"pago"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, ord.StatusConfirmado, w.orders.items[o.ID].Status)
	assert.Equal(t, ord.PagamentoPago, w.orders.items[o.ID].StatusPagamento)

	// status_pagamento inválido não deixa o status aplicado pela metade
	rec = do(r, http.MethodPut, "/api-v1-pedidos", tok, `{"numero":1,"status":"enviado","status_pagamento":"quitado"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, ord.StatusConfirmado, w.orders.items[o.ID].Status)

	// sem id nem numero, ou sem mudança ⇒ 400
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/api-v1-pedidos", tok, `{"status":"enviado"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/api-v1-pedidos", tok, `{"numero":1}`).Code)

	rec = do(r, http.MethodGet, "/api-v1-pedidos?numero=1", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), o.ID)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api-v1-pedidos?numero=99", tok, "").Code)
}

func TestWebhook_WhatsAppOrder(t *testing.T) {
	w := newWorld(t)
	p := seedProduct(w, "Coxinha", "6.00", 20)
	r := newRouter(w.app)
	tok := w.apiToken(t)

	body := fmt.Sprintf(`{"cliente":{"nome":"Carla","telefone":"+55 21 97777-6666"},"itens":[{"produto_id":%q,"quantidade":2}],"forma_pagamento":"pix"}`, p.ID)
	rec := do(r, http.MethodPost, "/webhook-pedidos", tok, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	c, err := w.customers.GetByPhone(context.Background(), w.empresaID, "5521977776666")
	require.NoError(t, err)
	assert.Equal(t, "Carla", c.Nome)
	require.Len(t, w.orders.items, 1)
	for _, o := range w.orders.items {
		assert.Equal(t, ord.OrigemWhatsApp, o.Origem)
		assert.Equal(t, c.ID, o.PessoaID)
	}

	// segundo pedido do mesmo contato reaproveita a pessoa
	rec = do(r, http.MethodPost, "/webhook-pedidos", tok, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, w.customers.items, 1)
	assert.Len(t, w.orders.items, 2)

	rec = do(r, http.MethodPost, "/webhook-pedidos", tok, `{"cliente":{"nome":"Sem fone"},"itens":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhook_Payment(t *testing.T) {
	w := newWorld(t)
	p := seedProduct(w, "Coxinha", "6.00", 20)
	pessoa := w.customer(t, "Ana", "11988887777")
	o := placeOrder(t, w, w.session(t), pessoa.ID, p.ID, 1)
	r := newRouter(w.app)
	tok := w.apiToken(t)

	_, err := w.app.payments.Upsert(context.Background(), w.empresaID, payment.ProviderMercadoPago,
		payment.UpsertRequest{WebhookSecret: "segredo", Ativo: boolp(true)})
	require.NoError(t, err)

	send := func(secret, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/webhook-pagamentos", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+tok)
		req.Header.Set(webhookSecretHeader, secret)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}
	event := fmt.Sprintf(`{"provedor":"mercadopago","pedido_id":%q,"status_pagamento":"pago"}`, o.ID)

	rec := send("errado", event)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), payment.ErrBadSecret.Error())
	assert.Equal(t, ord.PagamentoPendente, w.orders.items[o.ID].StatusPagamento)

	rec = send("segredo", event)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, ord.PagamentoPago, w.orders.items[o.ID].StatusPagamento)
	assert.Equal(t, ord.StatusConfirmado, w.orders.items[o.ID].Status)

	// provedor sem configuração é aceito
	rec = send("", `{"provedor":"pix_manual","numero":1,"status_pagamento":"estornado"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = send("", `{"provedor":"paypal","numero":1,"status_pagamento":"pago"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

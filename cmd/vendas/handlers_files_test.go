package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MikeMC777/vendas-whatsapp/internal/storage"
)

// pngHeader is enough for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func multipartBody(t *testing.T, field, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func upload(r http.Handler, tok, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUpload_StoresAndServes(t *testing.T) {
	w := newWorld(t)
	r := newRouter(w.app)
	tok := w.session(t)

	body, ct := multipartBody(t, formField, "foto.png", pngHeader)
	rec := upload(r, tok, "/portal/uploads", body, ct)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var obj storage.Object
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &obj))
	assert.True(t, strings.HasPrefix(obj.Key, w.empresaID+"/"), obj.Key)
	assert.Equal(t, "image/png", obj.ContentType)

	get := httptest.NewRecorder()
	r.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/arquivos/"+obj.Key, nil))
	require.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, pngHeader, get.Body.Bytes())

	get = httptest.NewRecorder()
	r.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/arquivos/nao/existe.png", nil))
	assert.Equal(t, http.StatusNotFound, get.Code)
}

func TestUpload_Rejections(t *testing.T) {
	w := newWorld(t)
	r := newRouter(w.app)
	tok := w.session(t)

	body, ct := multipartBody(t, "outro", "foto.png", pngHeader)
	assert.Equal(t, http.StatusBadRequest, upload(r, tok, "/portal/uploads", body, ct).Code)

	body, ct = multipartBody(t, formField, "script.sh", []byte("#!/bin/sh\necho oi\n"))
	assert.Equal(t, http.StatusBadRequest, upload(r, tok, "/portal/uploads", body, ct).Code)

	w.app.maxUpload = 8
	r = newRouter(w.app)
	body, ct = multipartBody(t, formField, "foto.png", pngHeader)
	assert.Equal(t, http.StatusRequestEntityTooLarge, upload(r, tok, "/portal/uploads", body, ct).Code)
}

func TestImportProducts_CSV(t *testing.T) {
	w := newWorld(t)
	r := newRouter(w.app)
	tok := w.session(t)
	csv := "Nome,Preço,Estoque,SKU\nBolo de fubá,\"18,50\",12,FUBA\nSem preço,,1,X\n"

	// dry run não grava
	body, ct := multipartBody(t, formField, "produtos.csv", []byte(csv))
	rec := upload(r, tok, "/portal/produtos/importar?dry_run=true", body, ct)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := envelopeOf(t, rec)
	assert.Equal(t, 1, env.Processados)
	assert.Equal(t, 1, env.Erros)
	assert.Empty(t, w.products.items)

	body, ct = multipartBody(t, formField, "produtos.csv", []byte(csv))
	rec = upload(r, tok, "/portal/produtos/importar", body, ct)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, w.products.items, 1)
	for _, p := range w.products.items {
		assert.Equal(t, "18.50", p.Preco.StringFixed(2))
		assert.Equal(t, "FUBA", p.SKU)
	}
	assert.Contains(t, w.notifications.tipos(w.empresaID), "importacao")

	body, ct = multipartBody(t, formField, "produtos.txt", []byte(csv))
	assert.Equal(t, http.StatusBadRequest, upload(r, tok, "/portal/produtos/importar", body, ct).Code)
}

func TestExport_Spreadsheets(t *testing.T) {
	w := newWorld(t)
	seedProduct(w, "Bolo", "35.00", 10)
	w.customer(t, "Ana", "11988887777")
	r := newRouter(w.app)
	tok := w.session(t)

	for _, tc := range []struct{ path, file string }{
		{"/portal/produtos/exportar", "produtos-"},
		{"/portal/pessoas/exportar", "pessoas-"},
		{"/portal/pedidos/exportar", "pedidos-"},
	} {
		rec := do(r, http.MethodGet, tc.path, tok, "")
		require.Equal(t, http.StatusOK, rec.Code, tc.path)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), tc.file, tc.path)

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err, tc.path)
		rows, err := f.GetRows(f.GetSheetName(0))
		require.NoError(t, err, tc.path)
		assert.NotEmpty(t, rows, tc.path)
		_ = f.Close()
	}
}

package storage

import (
	"archive/zip"
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func zipBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, _ = w.Write([]byte("<Types/>"))
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestSniff(t *testing.T) {
	ct, err := Sniff("foto.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)

	ct, err = Sniff("doc.pdf", []byte("%PDF-1.4\n"))
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", ct)

	ct, err = Sniff("planilha.xlsx", zipBytes(t))
	require.NoError(t, err)
	assert.Equal(t, xlsxType, ct)

	_, err = Sniff("arquivo.zip", zipBytes(t))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = Sniff("script.sh", []byte("#!/bin/sh\necho hi\n"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestKey(t *testing.T) {
	k := Key("emp-1", "image/png", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))
	assert.Regexp(t, regexp.MustCompile(`^emp-1/2026/03/[0-9a-f-]{36}\.png$`), k)
}

func TestUpload(t *testing.T) {
	mem := NewMemory("http://localhost:8080/files/")
	up := NewUploader(mem, 64)
	ctx := context.Background()

	obj, err := up.Upload(ctx, "emp", "foto.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(obj.Key, "emp/"))
	assert.Equal(t, "http://localhost:8080/files/"+obj.Key, obj.URL)
	body, ct, ok := mem.Get(obj.Key)
	require.True(t, ok)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, pngHeader, body)

	_, err = up.Upload(ctx, "emp", "grande.png", bytes.NewReader(append(pngHeader, make([]byte, 64)...)))
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = up.Upload(ctx, "emp", "vazio.png", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, mem.Delete(ctx, obj.Key))
	_, _, ok = mem.Get(obj.Key)
	assert.False(t, ok)
}

// Package storage keeps uploaded files (product images, receipts,
// spreadsheets) in an S3-compatible bucket.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrEmpty           = errors.New("empty file")
)

// Store is an object store.
type Store interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	URL(key string) string
	Delete(ctx context.Context, key string) error
}

// Object describes a stored upload.
// swagger:model UploadedObject
type Object struct {
	Key         string `json:"chave"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// allowed maps sniffed content types to the extension the object gets.
var allowed = map[string]string{
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
	xlsxType:          ".xlsx",
}

// Sniff detects the content type from the first bytes. Spreadsheets are zip
// archives, so the file name decides between xlsx and a rejected zip.
func Sniff(name string, head []byte) (string, error) {
	ct := http.DetectContentType(head)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	if ct == "application/zip" && strings.EqualFold(path.Ext(name), ".xlsx") {
		ct = xlsxType
	}
	if _, ok := allowed[ct]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ct)
	}
	return ct, nil
}

// Key builds <empresa_id>/<yyyy>/<mm>/<uuid><ext>.
func Key(empresaID, contentType string, at time.Time) string {
	return fmt.Sprintf("%s/%04d/%02d/%s%s", empresaID, at.Year(), int(at.Month()), uuid.NewString(), allowed[contentType])
}

type Uploader struct {
	store   Store
	maxSize int64
	now     func() time.Time
}

func NewUploader(store Store, maxSize int64) *Uploader {
	return &Uploader{store: store, maxSize: maxSize, now: time.Now}
}

// Upload validates and stores r under the company's prefix.
func (u *Uploader) Upload(ctx context.Context, empresaID, name string, r io.Reader) (*Object, error) {
	body, err := io.ReadAll(io.LimitReader(r, u.maxSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, ErrEmpty
	}
	if int64(len(body)) > u.maxSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrTooLarge, u.maxSize)
	}
	ct, err := Sniff(name, body)
	if err != nil {
		return nil, err
	}
	key := Key(empresaID, ct, u.now().UTC())
	if err := u.store.Put(ctx, key, ct, body); err != nil {
		return nil, err
	}
	return &Object{Key: key, URL: u.store.URL(key), ContentType: ct, Size: int64(len(body))}, nil
}

// Memory is a Store for development and tests.
type Memory struct {
	mu      sync.RWMutex
	objects map[string]memObject
	base    string
}

type memObject struct {
	contentType string
	body        []byte
}

func NewMemory(baseURL string) *Memory {
	return &Memory{objects: map[string]memObject{}, base: strings.TrimRight(baseURL, "/")}
}

func (m *Memory) Put(_ context.Context, key, contentType string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = memObject{contentType: contentType, body: bytes.Clone(body)}
	return nil
}

func (m *Memory) Get(key string) ([]byte, string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.objects[key]
	return o.body, o.contentType, ok
}

func (m *Memory) URL(key string) string { return m.base + "/" + key }

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	"github.com/MikeMC777/vendas-whatsapp/internal/apitoken"
	"github.com/MikeMC777/vendas-whatsapp/internal/auth"
	"github.com/MikeMC777/vendas-whatsapp/internal/company"
	"github.com/MikeMC777/vendas-whatsapp/internal/customer"
	"github.com/MikeMC777/vendas-whatsapp/internal/importer"
	"github.com/MikeMC777/vendas-whatsapp/internal/notification"
	ord "github.com/MikeMC777/vendas-whatsapp/internal/order"
	"github.com/MikeMC777/vendas-whatsapp/internal/payment"
	prod "github.com/MikeMC777/vendas-whatsapp/internal/product"
	"github.com/MikeMC777/vendas-whatsapp/internal/storage"
	"github.com/MikeMC777/vendas-whatsapp/internal/user"
)

func init() { gin.SetMode(gin.TestMode) }

//
// ===== STUB REPOS EN MEMORIA =====
//

// stubRepo implementa prod.Repository.
type stubRepo struct {
	mu        sync.Mutex
	items     map[string]*prod.Product
	lastQuery prod.Query
	err       error           // devuelto por Create/Update cuando no es nil
	pedidos   map[string]bool // productos referenciados por algún pedido (FK)
}

func (s *stubRepo) failWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func newStubRepo() *stubRepo {
	return &stubRepo{items: make(map[string]*prod.Product), pedidos: make(map[string]bool)}
}

func (s *stubRepo) put(p prod.Product) *prod.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Ativo = true
	p.CreatedAt = time.Now().UTC()
	s.items[p.ID] = &p
	return &p
}

func (s *stubRepo) Create(ctx context.Context, p *prod.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, cur := range s.items {
		if p.SKU != "" && cur.EmpresaID == p.EmpresaID && cur.SKU == p.SKU {
			return prod.ErrConflict
		}
	}
	cp := *p
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	s.items[p.ID] = &cp
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, empresaID, id string) (*prod.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[id]
	if !ok || p.EmpresaID != empresaID {
		return nil, prod.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubRepo) GetBySKU(ctx context.Context, empresaID, sku string) (*prod.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items {
		if p.EmpresaID == empresaID && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, prod.ErrNotFound
}

func (s *stubRepo) List(ctx context.Context, q prod.Query) ([]prod.Product, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastQuery = q
	out := make([]prod.Product, 0, len(s.items))
	for _, v := range s.items {
		if v.EmpresaID != q.EmpresaID {
			continue
		}
		// filtro mínimo por nombre/descr cuando Q viene con search
		if q.Q != "" && !containsFold(v.Nome, q.Q) && !containsFold(v.Descricao, q.Q) {
			continue
		}
		if q.SKU != "" && v.SKU != q.SKU {
			continue
		}
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	total := len(out)
	// paginación simple
	start := q.Offset
	if start > len(out) {
		return []prod.Product{}, total, nil
	}
	end := start + q.Limit
	if end > len(out) || q.Limit <= 0 {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (s *stubRepo) Update(ctx context.Context, p *prod.Product, estoque *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	cur, ok := s.items[p.ID]
	if !ok {
		return prod.ErrNotFound
	}
	// igual que el COALESCE del repo real: sin estoque se conserva el guardado
	p.Estoque = cur.Estoque
	if estoque != nil {
		p.Estoque = *estoque
	}
	cp := *p
	cp.UpdatedAt = time.Now().UTC()
	s.items[p.ID] = &cp
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, empresaID, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[id]
	if !ok || p.EmpresaID != empresaID {
		return false, nil
	}
	if s.pedidos[id] {
		return false, prod.ErrInUse
	}
	delete(s.items, id)
	return true, nil
}

func containsFold(s, sub string) bool {
	return bytes.Contains(bytes.ToLower([]byte(s)), bytes.ToLower([]byte(sub)))
}

// stubCustomers implementa customer.Repository.
type stubCustomers struct {
	mu    sync.Mutex
	items map[string]*customer.Customer
}

func newStubCustomers() *stubCustomers {
	return &stubCustomers{items: map[string]*customer.Customer{}}
}

func (s *stubCustomers) Create(ctx context.Context, c *customer.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cur := range s.items {
		if cur.EmpresaID == c.EmpresaID && cur.Telefone == c.Telefone {
			return customer.ErrConflict
		}
	}
	cp := *c
	s.items[c.ID] = &cp
	return nil
}

func (s *stubCustomers) GetByID(ctx context.Context, empresaID, id string) (*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.items[id]
	if !ok || c.EmpresaID != empresaID {
		return nil, customer.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *stubCustomers) GetByPhone(ctx context.Context, empresaID, telefone string) (*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.items {
		if c.EmpresaID == empresaID && c.Telefone == telefone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, customer.ErrNotFound
}

func (s *stubCustomers) List(ctx context.Context, q customer.Query) ([]customer.Customer, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []customer.Customer{}
	for _, c := range s.items {
		if c.EmpresaID != q.EmpresaID || (q.Q != "" && !containsFold(c.Nome, q.Q)) {
			continue
		}
		if q.Telefone != "" && c.Telefone != q.Telefone {
			continue
		}
		out = append(out, *c)
	}
	return out, len(out), nil
}

func (s *stubCustomers) Update(ctx context.Context, c *customer.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.items[c.ID] = &cp
	return nil
}

func (s *stubCustomers) Delete(ctx context.Context, empresaID, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.items[id]; !ok || c.EmpresaID != empresaID {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// stubOrders implementa ord.Repository sobre el catálogo y las pessoas de
// los otros stubs, descontando y devolviendo stock como PGRepo.
type stubOrders struct {
	mu        sync.Mutex
	products  *stubRepo
	customers *stubCustomers
	items     map[string]*ord.Order
	seq       int64
}

func (s *stubOrders) Create(ctx context.Context, o *ord.Order, lines []ord.CreateOrderItem, lowStock int) (*ord.CreateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.customers.GetByID(ctx, o.EmpresaID, o.PessoaID); err != nil {
		return nil, ord.ErrCustomerNotFound
	}
	s.products.mu.Lock()
	defer s.products.mu.Unlock()
	var rows []ord.StockRow
	for _, p := range s.products.items {
		if p.EmpresaID == o.EmpresaID {
			rows = append(rows, ord.StockRow{ID: p.ID, SKU: p.SKU, Nome: p.Nome, Preco: p.Preco, Estoque: p.Estoque, Ativo: p.Ativo})
		}
	}
	items, total, err := ord.Price(o.ID, lines, rows)
	if err != nil {
		return nil, err
	}
	res := &ord.CreateResult{Order: o}
	for _, it := range items {
		p := s.products.items[it.ProdutoID]
		s.products.pedidos[p.ID] = true
		p.Estoque -= it.Quantidade
		if p.Estoque <= lowStock {
			res.LowStock = append(res.LowStock, ord.StockRow{ID: p.ID, Nome: p.Nome, Estoque: p.Estoque})
		}
	}
	s.seq++
	o.Numero, o.Itens, o.Total = s.seq, items, total
	o.CreatedAt = time.Now().UTC()
	cp := *o
	s.items[o.ID] = &cp
	return res, nil
}

func (s *stubOrders) GetByID(ctx context.Context, empresaID, id string) (*ord.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.items[id]
	if !ok || o.EmpresaID != empresaID {
		return nil, ord.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *stubOrders) GetByNumero(ctx context.Context, empresaID string, numero int64) (*ord.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.items {
		if o.EmpresaID == empresaID && o.Numero == numero {
			cp := *o
			return &cp, nil
		}
	}
	return nil, ord.ErrNotFound
}

func (s *stubOrders) GetItems(ctx context.Context, empresaID, orderID string) ([]ord.Item, error) {
	o, err := s.GetByID(ctx, empresaID, orderID)
	if err != nil {
		return nil, err
	}
	return o.Itens, nil
}

func (s *stubOrders) List(ctx context.Context, q ord.Query) ([]ord.Order, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []ord.Order{}
	for _, o := range s.items {
		if o.EmpresaID != q.EmpresaID || (q.Status != "" && o.Status != q.Status) {
			continue
		}
		if q.PessoaID != "" && o.PessoaID != q.PessoaID {
			continue
		}
		out = append(out, *o)
	}
	return out, len(out), nil
}

func (s *stubOrders) UpdateStatus(ctx context.Context, empresaID, id, status string) (*ord.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.items[id]
	if !ok || o.EmpresaID != empresaID {
		return nil, false, ord.ErrNotFound
	}
	if o.Status == status {
		cp := *o
		return &cp, false, nil
	}
	if err := ord.CheckTransition(o.Status, status); err != nil {
		return nil, false, err
	}
	if status == ord.StatusCancelado {
		s.products.mu.Lock()
		for _, it := range o.Itens {
			if p, ok := s.products.items[it.ProdutoID]; ok {
				p.Estoque += it.Quantidade
			}
		}
		s.products.mu.Unlock()
	}
	o.Status = status
	cp := *o
	return &cp, true, nil
}

func (s *stubOrders) UpdatePayment(ctx context.Context, empresaID, id, status string) (*ord.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.items[id]
	if !ok || o.EmpresaID != empresaID {
		return nil, ord.ErrNotFound
	}
	o.StatusPagamento = status
	if status == ord.PagamentoPago && o.Status == ord.StatusPendente {
		o.Status = ord.StatusConfirmado
	}
	cp := *o
	return &cp, nil
}

// stubCompanies implementa company.Repository.
type stubCompanies struct {
	mu    sync.Mutex
	items map[string]*company.Company
}

func (s *stubCompanies) Create(ctx context.Context, c *company.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.items[c.ID] = &cp
	return nil
}

func (s *stubCompanies) GetByID(ctx context.Context, id string) (*company.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.items[id]
	if !ok {
		return nil, company.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *stubCompanies) List(ctx context.Context, q company.Query) ([]company.Company, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []company.Company{}
	for _, c := range s.items {
		if q.Ativo != nil && c.Ativo != *q.Ativo {
			continue
		}
		out = append(out, *c)
	}
	return out, len(out), nil
}

func (s *stubCompanies) Update(ctx context.Context, c *company.Company) error {
	return s.Create(ctx, c)
}

func (s *stubCompanies) Deactivate(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.items[id]
	if !ok {
		return false, nil
	}
	c.Ativo = false
	return true, nil
}

func (s *stubCompanies) Stats(ctx context.Context) (*company.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := &company.Stats{Faturamento: "0.00"}
	for _, c := range s.items {
		st.Empresas++
		if c.Ativo {
			st.EmpresasAtivas++
		}
	}
	return st, nil
}

// stubUsers implementa user.Repository.
type stubUsers struct {
	mu    sync.Mutex
	items map[string]*user.User
}

func (s *stubUsers) Create(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cur := range s.items {
		if cur.Email == u.Email {
			return user.ErrAlreadyExist
		}
	}
	cp := *u
	s.items[u.ID] = &cp
	return nil
}

func (s *stubUsers) GetByID(ctx context.Context, id string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.items[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.items {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (s *stubUsers) ListByEmpresa(ctx context.Context, empresaID string) ([]user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []user.User{}
	for _, u := range s.items {
		if u.EmpresaID != nil && *u.EmpresaID == empresaID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *stubUsers) Update(ctx context.Context, u *user.User, updatePassword bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.items[u.ID] = &cp
	return nil
}

// stubNotifications implementa notification.Repository.
type stubNotifications struct {
	mu    sync.Mutex
	items []notification.Notification
}

func (s *stubNotifications) Create(ctx context.Context, n *notification.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.CreatedAt = time.Now().UTC()
	s.items = append(s.items, *n)
	return nil
}

func (s *stubNotifications) List(ctx context.Context, q notification.Query) ([]notification.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []notification.Notification{}
	for i := len(s.items) - 1; i >= 0 && len(out) < q.Limit; i-- {
		n := s.items[i]
		if n.EmpresaID == q.EmpresaID && (!q.SomenteNao || !n.Lida) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *stubNotifications) CountUnread(ctx context.Context, empresaID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		if it.EmpresaID == empresaID && !it.Lida {
			n++
		}
	}
	return n, nil
}

func (s *stubNotifications) MarkRead(ctx context.Context, empresaID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id && s.items[i].EmpresaID == empresaID {
			s.items[i].Lida = true
			return nil
		}
	}
	return notification.ErrNotFound
}

func (s *stubNotifications) MarkAllRead(ctx context.Context, empresaID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for i := range s.items {
		if s.items[i].EmpresaID == empresaID && !s.items[i].Lida {
			s.items[i].Lida = true
			n++
		}
	}
	return n, nil
}

func (s *stubNotifications) tipos(empresaID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, n := range s.items {
		if n.EmpresaID == empresaID {
			out = append(out, n.Tipo)
		}
	}
	return out
}

// stubTokens implementa apitoken.Repository.
type stubTokens struct {
	mu        sync.Mutex
	items     map[string]*apitoken.Token
	companies *stubCompanies // GetByHash ignora empresas inativas, como o JOIN do PGRepo
}

func (s *stubTokens) Create(ctx context.Context, t *apitoken.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *t
	s.items[t.ID] = &cp
	return nil
}

func (s *stubTokens) GetByHash(ctx context.Context, hash string) (*apitoken.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.Hash != hash {
			continue
		}
		if emp, err := s.companies.GetByID(ctx, t.EmpresaID); err != nil || !emp.Ativo {
			return nil, apitoken.ErrNotFound
		}
		cp := *t
		return &cp, nil
	}
	return nil, apitoken.ErrNotFound
}

func (s *stubTokens) ListByEmpresa(ctx context.Context, empresaID string) ([]apitoken.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []apitoken.Token{}
	for _, t := range s.items {
		if t.EmpresaID == empresaID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *stubTokens) Revoke(ctx context.Context, empresaID, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.items[id]
	if !ok || t.EmpresaID != empresaID {
		return "", apitoken.ErrNotFound
	}
	t.Ativo = false
	return t.Hash, nil
}

func (s *stubTokens) Touch(ctx context.Context, id string, at time.Time) error { return nil }

// stubPayments implementa payment.Repository.
type stubPayments struct {
	mu    sync.Mutex
	items map[string]*payment.Config
}

func (s *stubPayments) List(ctx context.Context, empresaID string) ([]payment.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []payment.Config{}
	for _, c := range s.items {
		if c.EmpresaID == empresaID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *stubPayments) Get(ctx context.Context, empresaID, provedor string) (*payment.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.items[empresaID+"/"+provedor]
	if !ok {
		return nil, payment.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *stubPayments) Upsert(ctx context.Context, c *payment.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.items[c.EmpresaID+"/"+c.Provedor] = &cp
	return nil
}

func (s *stubPayments) Delete(ctx context.Context, empresaID, provedor string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := empresaID + "/" + provedor
	_, ok := s.items[k]
	delete(s.items, k)
	return ok, nil
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

//
// ===== FIXTURE =====
//

// world reúne el app con todos los stubs para inspeccionarlos en los tests.
type world struct {
	app           *app
	empresaID     string
	products      *stubRepo
	customers     *stubCustomers
	orders        *stubOrders
	companies     *stubCompanies
	users         *stubUsers
	notifications *stubNotifications
	tokens        *stubTokens
	payments      *stubPayments
	hub           *notification.Hub
	files         *storage.Memory
}

func newWorld(t *testing.T) *world {
	t.Helper()
	log := zaptest.NewLogger(t)
	w := &world{
		empresaID:     uuid.NewString(),
		products:      newStubRepo(),
		customers:     newStubCustomers(),
		companies:     &stubCompanies{items: map[string]*company.Company{}},
		users:         &stubUsers{items: map[string]*user.User{}},
		notifications: &stubNotifications{},
		tokens:        &stubTokens{items: map[string]*apitoken.Token{}},
		payments:      &stubPayments{items: map[string]*payment.Config{}},
		hub:           notification.NewHub(),
		files:         storage.NewMemory("/arquivos"),
	}
	w.tokens.companies = w.companies
	w.orders = &stubOrders{products: w.products, customers: w.customers, items: map[string]*ord.Order{}}
	w.companies.items[w.empresaID] = &company.Company{ID: w.empresaID, Nome: "Doces da Vó", Plano: "basico", Ativo: true}
	t.Cleanup(func() { _ = w.hub.Close() })

	notifications := notification.NewService(w.notifications, w.hub, log, 30*time.Second)
	products := prod.NewService(w.products).WithNotifier(notifications)
	customers := customer.NewService(w.customers)
	w.app = &app{
		log:           log,
		db:            pingFunc(func(context.Context) error { return nil }),
		maxUpload:     1 << 20,
		heartbeat:     time.Hour,
		jwt:           auth.NewJWTService("test-secret", time.Hour, "vendas-test"),
		users:         user.NewService(w.users),
		companies:     w.companies,
		products:      products,
		customers:     customers,
		orders:        ord.NewService(w.orders, notifications),
		notifications: notifications,
		tokens:        apitoken.NewService(w.tokens, apitoken.NewMemoryCache(), time.Minute, log),
		payments:      payment.NewService(w.payments),
		importer:      importer.NewService(products, customers, notifications, log),
		uploader:      storage.NewUploader(w.files, 1<<20),
		files:         w.files,
	}
	return w
}

// session devuelve un token de portal para la empresa del world.
func (w *world) session(t *testing.T) string {
	t.Helper()
	tok, _, err := w.app.jwt.Issue(auth.Session{UserID: uuid.NewString(), EmpresaID: w.empresaID, Papel: user.RoleEmpresa})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return tok
}

// apiToken emite un token de integración para la empresa del world.
func (w *world) apiToken(t *testing.T) string {
	t.Helper()
	created, err := w.app.tokens.Create(context.Background(), w.empresaID, apitokenReq("tests"))
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return created.Plaintext
}

func (w *world) customer(t *testing.T, nome, telefone string) *customer.Customer {
	t.Helper()
	c, err := w.app.customers.Create(context.Background(), w.empresaID, customer.Input{Nome: &nome, Telefone: &telefone})
	if err != nil {
		t.Fatalf("customer: %v", err)
	}
	return c
}

// do ejecuta una request contra r con el bearer indicado (vacío = sin auth).
func do(r http.Handler, method, path, bearer, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	r.ServeHTTP(w, req)
	return w
}

var errBoom = errors.New("boom")

func apitokenReq(nome string) apitoken.CreateRequest { return apitoken.CreateRequest{Nome: nome} }

func boolp(b bool) *bool { return &b }

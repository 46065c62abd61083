package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/MikeMC777/vendas-whatsapp/internal/customer"
	"github.com/MikeMC777/vendas-whatsapp/internal/edge"
	"github.com/MikeMC777/vendas-whatsapp/internal/notification"
	"github.com/MikeMC777/vendas-whatsapp/internal/product"
)

// MaxRows bounds a single import.
const MaxRows = 5000

var ErrTooManyRows = fmt.Errorf("a planilha excede %d linhas", MaxRows)

type ProductUpserter interface {
	Upsert(ctx context.Context, empresaID string, in product.Input) (*product.Product, bool, error)
}

type CustomerUpserter interface {
	Upsert(ctx context.Context, empresaID string, in customer.Input) (*customer.Customer, bool, error)
}

type Notifier interface {
	Notify(ctx context.Context, n notification.Notification)
}

type Service struct {
	products  ProductUpserter
	customers CustomerUpserter
	notify    Notifier
	log       *zap.Logger
}

func NewService(p ProductUpserter, c CustomerUpserter, n Notifier, log *zap.Logger) *Service {
	return &Service{products: p, customers: c, notify: n, log: log}
}

func rowError(linha int, errs []string) error {
	return fmt.Errorf("%w: linha %d: %s", edge.ErrBadRow, linha, strings.Join(errs, "; "))
}

// upsertFailed records a row the database refused. Only client errors are
// shown to the caller.
func (s *Service) upsertFailed(env *edge.Envelope, i, linha int, err error, dados any) {
	if !edge.IsClientError(err) {
		s.log.Error("import upsert failed", zap.Int("linha", linha), zap.Error(err))
		err = edge.ErrInternal
	}
	env.Fail(i, fmt.Errorf("linha %d: %w", linha, err), dados)
}

func load(name string, r io.Reader, required ...string) ([]Record, error) {
	sheet, err := Read(name, r)
	if err != nil {
		return nil, err
	}
	if err := sheet.Has(required...); err != nil {
		return nil, err
	}
	if len(sheet.Rows) > MaxRows {
		return nil, ErrTooManyRows
	}
	return sheet.Records(), nil
}

// IsFileError reports whether err is about the uploaded file itself.
func IsFileError(err error) bool {
	return errors.Is(err, ErrEmptyFile) || errors.Is(err, ErrMissingHeader) ||
		errors.Is(err, ErrFormat) || errors.Is(err, ErrTooManyRows)
}

// Products validates every row and, unless dryRun, upserts the valid ones
// (matched by sku when present).
func (s *Service) Products(ctx context.Context, empresaID, name string, r io.Reader, dryRun bool) (*edge.Envelope, error) {
	recs, err := load(name, r, "nome", "preco")
	if err != nil {
		return nil, err
	}
	env := edge.NewEnvelope(len(recs))
	for i, rec := range recs {
		row := ParseProduct(rec)
		if !row.Valid() {
			env.Fail(i, rowError(row.Linha, row.Erros), rec.Fields)
			continue
		}
		if dryRun {
			env.Ok(row)
			continue
		}
		p, _, err := s.products.Upsert(ctx, empresaID, row.Input)
		if err != nil {
			s.upsertFailed(env, i, row.Linha, err, rec.Fields)
			continue
		}
		env.Ok(p)
	}
	if !dryRun {
		s.report(ctx, empresaID, "produtos", env)
	}
	return env, nil
}

// Customers validates every row and, unless dryRun, upserts the valid ones
// by phone.
func (s *Service) Customers(ctx context.Context, empresaID, name string, r io.Reader, dryRun bool) (*edge.Envelope, error) {
	recs, err := load(name, r, "nome", "telefone")
	if err != nil {
		return nil, err
	}
	env := edge.NewEnvelope(len(recs))
	for i, rec := range recs {
		row := ParseCustomer(rec)
		if !row.Valid() {
			env.Fail(i, rowError(row.Linha, row.Erros), rec.Fields)
			continue
		}
		if dryRun {
			env.Ok(row)
			continue
		}
		c, _, err := s.customers.Upsert(ctx, empresaID, row.Input)
		if err != nil {
			s.upsertFailed(env, i, row.Linha, err, rec.Fields)
			continue
		}
		env.Ok(c)
	}
	if !dryRun {
		s.report(ctx, empresaID, "pessoas", env)
	}
	return env, nil
}

func (s *Service) report(ctx context.Context, empresaID, what string, env *edge.Envelope) {
	s.notify.Notify(ctx, notification.Notification{
		EmpresaID: empresaID,
		Tipo:      notification.TipoImportacao,
		Titulo:    "Importação de " + what + " concluída",
		Mensagem:  fmt.Sprintf("%d de %d linhas importadas, %d com erro", env.Processados, env.Total, env.Erros),
	})
}

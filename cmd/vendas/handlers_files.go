package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vendas-whatsapp/internal/customer"
	"github.com/MikeMC777/vendas-whatsapp/internal/edge"
	"github.com/MikeMC777/vendas-whatsapp/internal/export"
	"github.com/MikeMC777/vendas-whatsapp/internal/httpx"
	"github.com/MikeMC777/vendas-whatsapp/internal/importer"
	ord "github.com/MikeMC777/vendas-whatsapp/internal/order"
	prod "github.com/MikeMC777/vendas-whatsapp/internal/product"
	"github.com/MikeMC777/vendas-whatsapp/internal/storage"
)

// exportLimit caps the rows written to a spreadsheet.
const exportLimit = 10000

const formField = "arquivo"

// formFile opens the multipart file, rejecting it early when it is bigger
// than max.
func formFile(c *gin.Context, max int64) (string, io.ReadCloser, bool) {
	fh, err := c.FormFile(formField)
	if err != nil {
		httpx.Fail(c, http.StatusBadRequest, fmt.Sprintf("multipart field %q is required", formField))
		return "", nil, false
	}
	if fh.Size > max {
		httpx.Fail(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("%s: max %d bytes", storage.ErrTooLarge, max))
		return "", nil, false
	}
	f, err := fh.Open()
	if err != nil {
		_ = c.Error(err)
		httpx.Fail(c, http.StatusInternalServerError, "internal error")
		return "", nil, false
	}
	return fh.Filename, f, true
}

// uploadHandler godoc
//
//	@Summary		Upload a file
//	@Description	png, jpeg, webp, pdf or xlsx. Stored under the company prefix.
//	@Tags			arquivos
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			arquivo	formData	file	true	"file"
//	@Success		201		{object}	storage.Object
//	@Failure		400		{object}	httpx.HTTPError
//	@Failure		413		{object}	httpx.HTTPError
//	@Security		BearerAuth
//	@Router			/portal/uploads [post]
func uploadHandler(up *storage.Uploader, max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, f, ok := formFile(c, max)
		if !ok {
			return
		}
		defer f.Close()
		obj, err := up.Upload(c.Request.Context(), empresaOf(c), name, f)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, obj)
	}
}

// memoryFileHandler serves objects of the in-process store when S3 is off.
func memoryFileHandler(m *storage.Memory) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ct, ok := m.Get(strings.TrimPrefix(c.Param("key"), "/"))
		if !ok {
			httpx.Fail(c, http.StatusNotFound, "file not found")
			return
		}
		c.Data(http.StatusOK, ct, body)
	}
}

type importFunc func(c *gin.Context, empresaID, name string, r io.Reader, dryRun bool) (*edge.Envelope, error)

func importHandler(max int64, run importFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, f, ok := formFile(c, max)
		if !ok {
			return
		}
		defer f.Close()
		env, err := run(c, empresaOf(c), name, f, c.Query("dry_run") == "true")
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(env.Status(), env)
	}
}

// importProductsHandler godoc
//
//	@Summary		Import products from a spreadsheet
//	@Description	Columns: nome, preco, estoque, sku, categoria, descricao. Rows with a known sku are updated.
//	@Tags			produtos
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			arquivo	formData	file	true	"xlsx or csv"
//	@Param			dry_run	query		bool	false	"validate only"
//	@Success		200		{object}	edge.Envelope
//	@Failure		400		{object}	edge.Envelope
//	@Security		BearerAuth
//	@Router			/portal/produtos/importar [post]
func importProductsHandler(svc *importer.Service, max int64) gin.HandlerFunc {
	return importHandler(max, func(c *gin.Context, empresaID, name string, r io.Reader, dryRun bool) (*edge.Envelope, error) {
		return svc.Products(c.Request.Context(), empresaID, name, r, dryRun)
	})
}

// importCustomersHandler godoc
//
//	@Summary		Import customers from a spreadsheet
//	@Description	Columns: nome, telefone, email, documento, endereco, cidade, estado, cep. Rows with a known phone are updated.
//	@Tags			pessoas
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			arquivo	formData	file	true	"xlsx or csv"
//	@Param			dry_run	query		bool	false	"validate only"
//	@Success		200		{object}	edge.Envelope
//	@Failure		400		{object}	edge.Envelope
//	@Security		BearerAuth
//	@Router			/portal/pessoas/importar [post]
func importCustomersHandler(svc *importer.Service, max int64) gin.HandlerFunc {
	return importHandler(max, func(c *gin.Context, empresaID, name string, r io.Reader, dryRun bool) (*edge.Envelope, error) {
		return svc.Customers(c.Request.Context(), empresaID, name, r, dryRun)
	})
}

func attachment(c *gin.Context, what string) {
	name := fmt.Sprintf("%s-%s.xlsx", what, time.Now().Format("20060102"))
	c.Header("Content-Type", export.XLSXContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Status(http.StatusOK)
}

// exportProductsHandler godoc
//
//	@Summary	Export the catalog as xlsx
//	@Tags		produtos
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success	200	{file}	binary
//	@Security	BearerAuth
//	@Router		/portal/produtos/exportar [get]
func exportProductsHandler(svc *prod.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, _, err := svc.List(c.Request.Context(), prod.Query{EmpresaID: empresaOf(c), Limit: exportLimit})
		if err != nil {
			fail(c, err)
			return
		}
		attachment(c, "produtos")
		if err := export.Products(c.Writer, items); err != nil {
			_ = c.Error(err)
		}
	}
}

// exportCustomersHandler godoc
//
//	@Summary	Export customers as xlsx
//	@Tags		pessoas
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success	200	{file}	binary
//	@Security	BearerAuth
//	@Router		/portal/pessoas/exportar [get]
func exportCustomersHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, _, err := svc.List(c.Request.Context(), customer.Query{EmpresaID: empresaOf(c), Limit: exportLimit})
		if err != nil {
			fail(c, err)
			return
		}
		attachment(c, "pessoas")
		if err := export.Customers(c.Writer, items); err != nil {
			_ = c.Error(err)
		}
	}
}

// exportOrdersHandler godoc
//
//	@Summary	Export orders as xlsx
//	@Tags		pedidos
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param		status	query	string	false	"order status"
//	@Param		from	query	string	false	"from date (YYYY-MM-DD)"
//	@Param		to		query	string	false	"to date (YYYY-MM-DD, inclusive)"
//	@Success	200		{file}	binary
//	@Security	BearerAuth
//	@Router		/portal/pedidos/exportar [get]
func exportOrdersHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := orderQuery(c)
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		q.Limit = exportLimit
		items, _, err := svc.List(c.Request.Context(), q)
		if err != nil {
			fail(c, err)
			return
		}
		attachment(c, "pedidos")
		if err := export.Orders(c.Writer, items); err != nil {
			_ = c.Error(err)
		}
	}
}

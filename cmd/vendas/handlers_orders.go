package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vendas-whatsapp/internal/company"
	"github.com/MikeMC777/vendas-whatsapp/internal/export"
	"github.com/MikeMC777/vendas-whatsapp/internal/httpx"
	ord "github.com/MikeMC777/vendas-whatsapp/internal/order"
)

// parseDay accepts a date (2006-01-02) or an RFC 3339 timestamp. endOfDay
// moves a bare date to the last instant of that day.
func parseDay(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", s)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func orderQuery(c *gin.Context) (ord.Query, error) {
	from, err := parseDay(c.Query("from"), false)
	if err != nil {
		return ord.Query{}, err
	}
	to, err := parseDay(c.Query("to"), true)
	if err != nil {
		return ord.Query{}, err
	}
	return ord.Query{
		EmpresaID: empresaOf(c),
		Status:    c.Query("status"),
		PessoaID:  c.Query("pessoa_id"),
		From:      from,
		To:        to,
	}, nil
}

// listOrdersHandler godoc
//
//	@Summary	List orders
//	@Tags		pedidos
//	@Produce	json
//	@Param		status		query		string	false	"order status"
//	@Param		pessoa_id	query		string	false	"customer id"
//	@Param		from		query		string	false	"from date (YYYY-MM-DD)"
//	@Param		to			query		string	false	"to date (YYYY-MM-DD, inclusive)"
//	@Param		limit		query		int		false	"page size"
//	@Param		offset		query		int		false	"offset"
//	@Success	200			{object}	ord.ListResponse
//	@Failure	400			{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/pedidos [get]
func listOrdersHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := orderQuery(c)
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		q.Limit, q.Offset = httpx.Paging(c, 20, 100)
		items, total, err := svc.List(c.Request.Context(), q)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, ord.ListResponse{Limit: q.Limit, Offset: q.Offset, Total: total, Items: items})
	}
}

// getOrderHandler godoc
//
//	@Summary	Get an order with its items
//	@Tags		pedidos
//	@Produce	json
//	@Param		id	path		string	true	"order id"
//	@Success	200	{object}	ord.Order
//	@Failure	404	{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/pedidos/{id} [get]
func getOrderHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), empresaOf(c), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// getOrderItemsHandler godoc
//
//	@Summary	List the items of an order
//	@Tags		pedidos
//	@Produce	json
//	@Param		id	path	string	true	"order id"
//	@Success	200	{array}	ord.Item
//	@Failure	404	{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/pedidos/{id}/items [get]
func getOrderItemsHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Items(c.Request.Context(), empresaOf(c), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// createOrderHandler godoc
//
//	@Summary		Create an order
//	@Description	Prices every item from the catalog and decrements stock atomically.
//	@Tags			pedidos
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ord.CreateOrderRequest	true	"order"
//	@Success		201		{object}	ord.Order
//	@Failure		400		{object}	httpx.HTTPError
//	@Failure		404		{object}	httpx.HTTPError
//	@Failure		409		{object}	httpx.HTTPError
//	@Security		BearerAuth
//	@Router			/portal/pedidos [post]
func createOrderHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ord.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		req.Origem = ord.OrigemPortal
		o, err := svc.Create(c.Request.Context(), empresaOf(c), req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

// updateOrderStatusHandler godoc
//
//	@Summary		Change the status of an order
//	@Description	Cancelling restocks every item. Closed orders answer 409.
//	@Tags			pedidos
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"order id"
//	@Param			body	body		ord.UpdateStatusRequest	true	"new status"
//	@Success		200		{object}	ord.Order
//	@Failure		400		{object}	httpx.HTTPError
//	@Failure		404		{object}	httpx.HTTPError
//	@Failure		409		{object}	httpx.HTTPError
//	@Security		BearerAuth
//	@Router			/portal/pedidos/{id}/status [put]
func updateOrderStatusHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ord.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		o, err := svc.UpdateStatus(c.Request.Context(), empresaOf(c), c.Param("id"), req.Status)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// orderPDFHandler godoc
//
//	@Summary	Download an order receipt
//	@Tags		pedidos
//	@Produce	application/pdf
//	@Param		id	path	string	true	"order id"
//	@Success	200	{file}	binary
//	@Failure	404	{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/pedidos/{id}/pdf [get]
func orderPDFHandler(svc *ord.Service, companies company.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		o, err := svc.Get(ctx, empresaOf(c), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		emp, err := companies.GetByID(ctx, o.EmpresaID)
		if err != nil {
			fail(c, err)
			return
		}
		c.Header("Content-Type", export.PDFContentType)
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="pedido-%d.pdf"`, o.Numero))
		c.Status(http.StatusOK)
		if err := export.OrderPDF(c.Writer, export.Company{Nome: emp.Nome, Telefone: emp.Telefone, Email: emp.Email}, o); err != nil {
			_ = c.Error(err)
		}
	}
}

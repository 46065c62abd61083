package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vendas-whatsapp/internal/customer"
	"github.com/MikeMC777/vendas-whatsapp/internal/edge"
	ord "github.com/MikeMC777/vendas-whatsapp/internal/order"
	prod "github.com/MikeMC777/vendas-whatsapp/internal/product"
)

type rowFunc func(ctx context.Context, empresaID string, row json.RawMessage) (any, error)

// batch runs fn over every row of the body and answers the envelope.
// Infrastructure errors are logged through c.Error and hidden from the caller.
func batch(fn rowFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			edge.Fail(c, http.StatusBadRequest, "cannot read body")
			return
		}
		rows, err := edge.SplitBody(raw)
		if err != nil {
			edge.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		ctx, empresaID := c.Request.Context(), edge.EmpresaID(c)
		env := edge.NewEnvelope(len(rows))
		for i, row := range rows {
			res, err := fn(ctx, empresaID, row)
			if err != nil {
				if !edge.IsClientError(err) {
					_ = c.Error(fmt.Errorf("row %d: %w", i, err))
					err = edge.ErrInternal
				}
				env.Fail(i, err, edge.Echo(row))
				continue
			}
			env.Ok(res)
		}
		c.JSON(env.Status(), env)
	}
}

// edgeError answers a read failure with the edge error body.
func edgeError(c *gin.Context, err error) {
	status := edge.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		edge.Fail(c, status, "internal error")
		return
	}
	edge.Fail(c, status, err.Error())
}

func offsetOf(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("offset"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ----- produtos -----

// edgeListProductsHandler godoc
//
//	@Summary	Read products
//	@Tags		api-v1
//	@Produce	json
//	@Param		id			query		string	false	"product id"
//	@Param		sku			query		string	false	"exact sku"
//	@Param		nome		query		string	false	"name fragment"
//	@Param		categoria	query		string	false	"category"
//	@Param		ativo		query		bool	false	"active filter"
//	@Param		limit		query		int		false	"page size"	default(50)
//	@Param		offset		query		int		false	"offset"
//	@Success	200			{object}	edge.Page
//	@Failure	401			{object}	edge.ErrorBody
//	@Failure	404			{object}	edge.ErrorBody
//	@Security	ApiToken
//	@Router		/api-v1-produtos [get]
func edgeListProductsHandler(svc *prod.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, empresaID := c.Request.Context(), edge.EmpresaID(c)
		if id := c.Query("id"); id != "" {
			p, err := svc.Get(ctx, empresaID, id)
			if err != nil {
				edgeError(c, err)
				return
			}
			c.JSON(http.StatusOK, edge.One(p))
			return
		}
		q := prod.Query{
			EmpresaID: empresaID,
			Q:         strings.TrimSpace(c.Query("nome")),
			SKU:       strings.TrimSpace(c.Query("sku")),
			Categoria: strings.TrimSpace(c.Query("categoria")),
			Limit:     edge.Limit(c),
			Offset:    offsetOf(c),
		}
		if v, err := strconv.ParseBool(c.Query("ativo")); err == nil {
			q.Ativo = &v
		}
		items, total, err := svc.List(ctx, q)
		if err != nil {
			edgeError(c, err)
			return
		}
		c.JSON(http.StatusOK, edge.Page{Success: true, Total: total, Limit: q.Limit, Offset: q.Offset, Dados: items})
	}
}

// edgeCreateProductsHandler godoc
//
//	@Summary		Create products
//	@Description	Body: one object, an array, or {"dados": [...]}. Each row succeeds or fails on its own.
//	@Tags			api-v1
//	@Accept			json
//	@Produce		json
//	@Param			body	body		[]prod.Input	true	"rows"
//	@Success		200		{object}	edge.Envelope
//	@Failure		400		{object}	edge.Envelope
//	@Security		ApiToken
//	@Router			/api-v1-produtos [post]
func edgeCreateProductsHandler(svc *prod.Service) gin.HandlerFunc {
	return batch(func(ctx context.Context, empresaID string, row json.RawMessage) (any, error) {
		var in prod.Input
		if err := edge.Decode(row, &in); err != nil {
			return nil, err
		}
		in.ID = nil
		return svc.Create(ctx, empresaID, in)
	})
}

// edgeUpsertProductsHandler godoc
//
//	@Summary		Upsert products
//	@Description	Rows match by id, then by sku; unmatched rows are created.
//	@Tags			api-v1
//	@Accept			json
//	@Produce		json
//	@Param			body	body		[]prod.Input	true	"rows"
//	@Success		200		{object}	edge.Envelope
//	@Failure		400		{object}	edge.Envelope
//	@Security		ApiToken
//	@Router			/api-v1-produtos [put]
func edgeUpsertProductsHandler(svc *prod.Service) gin.HandlerFunc {
	return batch(func(ctx context.Context, empresaID string, row json.RawMessage) (any, error) {
		var in prod.Input
		if err := edge.Decode(row, &in); err != nil {
			return nil, err
		}
		p, _, err := svc.Upsert(ctx, empresaID, in)
		return p, err
	})
}

// ----- pessoas -----

// edgeListCustomersHandler godoc
//
//	@Summary	Read customers
//	@Tags		api-v1
//	@Produce	json
//	@Param		id			query		string	false	"customer id"
//	@Param		telefone	query		string	false	"phone, any formatting"
//	@Param		nome		query		string	false	"name fragment"
//	@Param		email		query		string	false	"exact email"
//	@Param		limit		query		int		false	"page size"	default(50)
//	@Param		offset		query		int		false	"offset"
//	@Success	200			{object}	edge.Page
//	@Failure	401			{object}	edge.ErrorBody
//	@Failure	404			{object}	edge.ErrorBody
//	@Security	ApiToken
//	@Router		/api-v1-pessoas [get]
func edgeListCustomersHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, empresaID := c.Request.Context(), edge.EmpresaID(c)
		if id := c.Query("id"); id != "" {
			p, err := svc.Get(ctx, empresaID, id)
			if err != nil {
				edgeError(c, err)
				return
			}
			c.JSON(http.StatusOK, edge.One(p))
			return
		}
		q := customer.Query{
			EmpresaID: empresaID,
			Q:         strings.TrimSpace(c.Query("nome")),
			Telefone:  customer.NormalizePhone(c.Query("telefone")),
			Email:     strings.ToLower(strings.TrimSpace(c.Query("email"))),
			Limit:     edge.Limit(c),
			Offset:    offsetOf(c),
		}
		items, total, err := svc.List(ctx, q)
		if err != nil {
			edgeError(c, err)
			return
		}
		c.JSON(http.StatusOK, edge.Page{Success: true, Total: total, Limit: q.Limit, Offset: q.Offset, Dados: items})
	}
}

// edgeCreateCustomersHandler godoc
//
//	@Summary	Create customers
//	@Tags		api-v1
//	@Accept		json
//	@Produce	json
//	@Param		body	body		[]customer.Input	true	"rows"
//	@Success	200		{object}	edge.Envelope
//	@Failure	400		{object}	edge.Envelope
//	@Security	ApiToken
//	@Router		/api-v1-pessoas [post]
func edgeCreateCustomersHandler(svc *customer.Service) gin.HandlerFunc {
	return batch(func(ctx context.Context, empresaID string, row json.RawMessage) (any, error) {
		var in customer.Input
		if err := edge.Decode(row, &in); err != nil {
			return nil, err
		}
		in.ID = nil
		return svc.Create(ctx, empresaID, in)
	})
}

// edgeUpsertCustomersHandler godoc
//
//	@Summary		Upsert customers
//	@Description	Rows match by id, then by phone; unmatched rows are created.
//	@Tags			api-v1
//	@Accept			json
//	@Produce		json
//	@Param			body	body		[]customer.Input	true	"rows"
//	@Success		200		{object}	edge.Envelope
//	@Failure		400		{object}	edge.Envelope
//	@Security		ApiToken
//	@Router			/api-v1-pessoas [put]
func edgeUpsertCustomersHandler(svc *customer.Service) gin.HandlerFunc {
	return batch(func(ctx context.Context, empresaID string, row json.RawMessage) (any, error) {
		var in customer.Input
		if err := edge.Decode(row, &in); err != nil {
			return nil, err
		}
		p, _, err := svc.Upsert(ctx, empresaID, in)
		return p, err
	})
}

// ----- pedidos -----

// EdgeOrderRow creates an order for a known customer, given by id or phone.
// swagger:model EdgeOrderRow
type EdgeOrderRow struct {
	PessoaID       string                `json:"pessoa_id"`
	Telefone       string                `json:"telefone"`
	Itens          []ord.CreateOrderItem `json:"itens"`
	FormaPagamento string                `json:"forma_pagamento"`
	Observacoes    string                `json:"observacoes"`
}

// EdgeOrderUpdate changes the status and/or payment status of an order
// found by id or numero.
// swagger:model EdgeOrderUpdate
type EdgeOrderUpdate struct {
	ID              string `json:"id"`
	Numero          int64  `json:"numero"`
	Status          string `json:"status"`
	StatusPagamento string `json:"status_pagamento"`
}

func findOrder(ctx context.Context, svc *ord.Service, empresaID, id string, numero int64) (*ord.Order, error) {
	switch {
	case id != "":
		return svc.Get(ctx, empresaID, id)
	case numero > 0:
		return svc.GetByNumero(ctx, empresaID, numero)
	default:
		return nil, fmt.Errorf("%w: id or numero is required", edge.ErrBadRow)
	}
}

// edgeListOrdersHandler godoc
//
//	@Summary	Read orders
//	@Tags		api-v1
//	@Produce	json
//	@Param		id			query		string	false	"order id"
//	@Param		numero		query		int		false	"order number"
//	@Param		status		query		string	false	"order status"
//	@Param		pessoa_id	query		string	false	"customer id"
//	@Param		telefone	query		string	false	"customer phone"
//	@Param		limit		query		int		false	"page size"	default(50)
//	@Param		offset		query		int		false	"offset"
//	@Success	200			{object}	edge.Page
//	@Failure	401			{object}	edge.ErrorBody
//	@Failure	404			{object}	edge.ErrorBody
//	@Security	ApiToken
//	@Router		/api-v1-pedidos [get]
func edgeListOrdersHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, empresaID := c.Request.Context(), edge.EmpresaID(c)
		id := c.Query("id")
		numero, _ := strconv.ParseInt(c.Query("numero"), 10, 64)
		if id != "" || numero > 0 {
			o, err := findOrder(ctx, svc, empresaID, id, numero)
			if err != nil {
				edgeError(c, err)
				return
			}
			c.JSON(http.StatusOK, edge.One(o))
			return
		}
		q := ord.Query{
			EmpresaID: empresaID,
			Status:    c.Query("status"),
			PessoaID:  c.Query("pessoa_id"),
			Telefone:  customer.NormalizePhone(c.Query("telefone")),
			Limit:     edge.Limit(c),
			Offset:    offsetOf(c),
		}
		items, total, err := svc.List(ctx, q)
		if err != nil {
			edgeError(c, err)
			return
		}
		c.JSON(http.StatusOK, edge.Page{Success: true, Total: total, Limit: q.Limit, Offset: q.Offset, Dados: items})
	}
}

// edgeCreateOrdersHandler godoc
//
//	@Summary	Create orders
//	@Tags		api-v1
//	@Accept		json
//	@Produce	json
//	@Param		body	body		[]EdgeOrderRow	true	"rows"
//	@Success	200		{object}	edge.Envelope
//	@Failure	400		{object}	edge.Envelope
//	@Security	ApiToken
//	@Router		/api-v1-pedidos [post]
func edgeCreateOrdersHandler(orders *ord.Service, customers *customer.Service) gin.HandlerFunc {
	return batch(func(ctx context.Context, empresaID string, row json.RawMessage) (any, error) {
		var in EdgeOrderRow
		if err := edge.Decode(row, &in); err != nil {
			return nil, err
		}
		pessoaID := in.PessoaID
		if pessoaID == "" && in.Telefone != "" {
			p, err := customers.GetByPhone(ctx, empresaID, in.Telefone)
			if err != nil {
				return nil, err
			}
			pessoaID = p.ID
		}
		return orders.Create(ctx, empresaID, ord.CreateOrderRequest{
			PessoaID:       pessoaID,
			Itens:          in.Itens,
			FormaPagamento: in.FormaPagamento,
			Observacoes:    in.Observacoes,
			Origem:         ord.OrigemAPI,
		})
	})
}

// edgeUpdateOrdersHandler godoc
//
//	@Summary		Update order status
//	@Description	Each row names an order by id or numero and sets status and/or status_pagamento.
//	@Tags			api-v1
//	@Accept			json
//	@Produce		json
//	@Param			body	body		[]EdgeOrderUpdate	true	"rows"
//	@Success		200		{object}	edge.Envelope
//	@Failure		400		{object}	edge.Envelope
//	@Security		ApiToken
//	@Router			/api-v1-pedidos [put]
func edgeUpdateOrdersHandler(svc *ord.Service) gin.HandlerFunc {
	return batch(func(ctx context.Context, empresaID string, row json.RawMessage) (any, error) {
		var in EdgeOrderUpdate
		if err := edge.Decode(row, &in); err != nil {
			return nil, err
		}
		if in.Status == "" && in.StatusPagamento == "" {
			return nil, fmt.Errorf("%w: status or status_pagamento is required", edge.ErrBadRow)
		}
		// both values are checked before either is written
		if in.Status != "" && !ord.ValidStatus(in.Status) {
			return nil, fmt.Errorf("%w: status %q", ord.ErrInvalidStatus, in.Status)
		}
		if in.StatusPagamento != "" && !ord.ValidPaymentStatus(in.StatusPagamento) {
			return nil, fmt.Errorf("%w: status_pagamento %q", ord.ErrInvalidStatus, in.StatusPagamento)
		}
		o, err := findOrder(ctx, svc, empresaID, in.ID, in.Numero)
		if err != nil {
			return nil, err
		}
		if in.Status != "" {
			if o, err = svc.UpdateStatus(ctx, empresaID, o.ID, in.Status); err != nil {
				return nil, err
			}
		}
		if in.StatusPagamento != "" {
			if o, err = svc.UpdatePayment(ctx, empresaID, o.ID, in.StatusPagamento); err != nil {
				return nil, err
			}
		}
		return o, nil
	})
}

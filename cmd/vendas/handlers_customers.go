package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vendas-whatsapp/internal/customer"
	"github.com/MikeMC777/vendas-whatsapp/internal/httpx"
)

// listCustomersHandler godoc
//
//	@Summary	List or search customers
//	@Tags		pessoas
//	@Produce	json
//	@Param		q			query		string	false	"name, phone or email fragment"
//	@Param		telefone	query		string	false	"exact phone, any formatting"
//	@Param		email		query		string	false	"exact email"
//	@Param		limit		query		int		false	"page size"
//	@Param		offset		query		int		false	"offset"
//	@Success	200			{object}	customer.ListResponse
//	@Security	BearerAuth
//	@Router		/portal/pessoas [get]
func listCustomersHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := httpx.Paging(c, 20, 100)
		q := strings.TrimSpace(c.Query("q"))
		items, total, err := svc.List(c.Request.Context(), customer.Query{
			EmpresaID: empresaOf(c),
			Q:         q,
			Telefone:  customer.NormalizePhone(c.Query("telefone")),
			Email:     strings.ToLower(strings.TrimSpace(c.Query("email"))),
			Limit:     limit,
			Offset:    offset,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, customer.ListResponse{Q: q, Limit: limit, Offset: offset, Total: total, Items: items})
	}
}

// getCustomerHandler godoc
//
//	@Summary	Get a customer
//	@Tags		pessoas
//	@Produce	json
//	@Param		id	path		string	true	"customer id"
//	@Success	200	{object}	customer.Customer
//	@Failure	404	{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/pessoas/{id} [get]
func getCustomerHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), empresaOf(c), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createCustomerHandler godoc
//
//	@Summary	Create a customer
//	@Tags		pessoas
//	@Accept		json
//	@Produce	json
//	@Param		body	body		customer.Input	true	"customer"
//	@Success	201		{object}	customer.Customer
//	@Failure	400		{object}	httpx.HTTPError
//	@Failure	409		{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/pessoas [post]
func createCustomerHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customer.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		in.ID = nil
		p, err := svc.Create(c.Request.Context(), empresaOf(c), in)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// updateCustomerHandler godoc
//
//	@Summary	Update a customer
//	@Tags		pessoas
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"customer id"
//	@Param		body	body		customer.Input	true	"fields to change"
//	@Success	200		{object}	customer.Customer
//	@Failure	400		{object}	httpx.HTTPError
//	@Failure	404		{object}	httpx.HTTPError
//	@Failure	409		{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/pessoas/{id} [put]
func updateCustomerHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customer.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		in.ID = nil
		p, err := svc.Update(c.Request.Context(), empresaOf(c), c.Param("id"), in)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// deleteCustomerHandler godoc
//
//	@Summary		Delete a customer
//	@Description	Customers with orders cannot be deleted (409).
//	@Tags			pessoas
//	@Param			id	path	string	true	"customer id"
//	@Success		204
//	@Failure		404	{object}	httpx.HTTPError
//	@Failure		409	{object}	httpx.HTTPError
//	@Security		BearerAuth
//	@Router			/portal/pessoas/{id} [delete]
func deleteCustomerHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := svc.Delete(c.Request.Context(), empresaOf(c), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		if !ok {
			httpx.Fail(c, http.StatusNotFound, customer.ErrNotFound.Error())
			return
		}
		c.Status(http.StatusNoContent)
	}
}

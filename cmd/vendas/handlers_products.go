package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vendas-whatsapp/internal/httpx"
	prod "github.com/MikeMC777/vendas-whatsapp/internal/product"
)

// listOnlyHandler godoc
//
//	@Summary	List products (pagination only)
//	@Tags		produtos
//	@Produce	json
//	@Param		limit	query		int	false	"page size"	default(20)
//	@Param		offset	query		int	false	"offset"	default(0)
//	@Success	200		{object}	prod.ListResponse
//	@Security	BearerAuth
//	@Router		/portal/produtos [get]
func listOnlyHandler(svc *prod.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := httpx.Paging(c, 20, 100)
		items, total, err := svc.List(c.Request.Context(), prod.Query{EmpresaID: empresaOf(c), Limit: limit, Offset: offset})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, prod.ListResponse{Limit: limit, Offset: offset, Total: total, Items: items})
	}
}

// searchHandler godoc
//
//	@Summary	Search products by name or description
//	@Tags		produtos
//	@Produce	json
//	@Param		q		query		string	true	"at least 2 characters"
//	@Param		limit	query		int		false	"page size"
//	@Param		offset	query		int		false	"offset"
//	@Success	200		{object}	prod.ListResponse
//	@Failure	400		{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/produtos/search [get]
func searchHandler(svc *prod.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))
		if len([]rune(q)) < 2 {
			httpx.Fail(c, http.StatusBadRequest, "q must have at least 2 characters")
			return
		}
		limit, offset := httpx.Paging(c, 20, 100)
		items, total, err := svc.List(c.Request.Context(), prod.Query{
			EmpresaID: empresaOf(c),
			Q:         q,
			Categoria: c.Query("categoria"),
			Limit:     limit,
			Offset:    offset,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, prod.ListResponse{Q: q, Limit: limit, Offset: offset, Total: total, Items: items})
	}
}

// getProductHandler godoc
//
//	@Summary	Get a product
//	@Tags		produtos
//	@Produce	json
//	@Param		id	path		string	true	"product id"
//	@Success	200	{object}	prod.Product
//	@Failure	404	{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/produtos/{id} [get]
func getProductHandler(svc *prod.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), empresaOf(c), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
//
//	@Summary	Create a product
//	@Tags		produtos
//	@Accept		json
//	@Produce	json
//	@Param		body	body		prod.Input	true	"product"
//	@Success	201		{object}	prod.Product
//	@Failure	400		{object}	httpx.HTTPError
//	@Failure	409		{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/produtos [post]
func createProductHandler(svc *prod.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in prod.Input
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

// updateProductHandler godoc
//
//	@Summary		Update a product
//	@Description	Partial update: omitted fields (price included) keep their value.
//	@Tags			produtos
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"product id"
//	@Param			body	body		prod.Input	true	"fields to change"
//	@Success		200		{object}	prod.Product
//	@Failure		400		{object}	httpx.HTTPError
//	@Failure		404		{object}	httpx.HTTPError
//	@Security		BearerAuth
//	@Router			/portal/produtos/{id} [put]
func updateProductHandler(svc *prod.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in prod.Input
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

// deleteProductHandler godoc
//
//	@Summary	Delete a product
//	@Tags		produtos
//	@Param		id	path	string	true	"product id"
//	@Success	204
//	@Failure	404	{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/produtos/{id} [delete]
func deleteProductHandler(svc *prod.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := svc.Delete(c.Request.Context(), empresaOf(c), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		if !ok {
			httpx.Fail(c, http.StatusNotFound, prod.ErrNotFound.Error())
			return
		}
		c.Status(http.StatusNoContent)
	}
}

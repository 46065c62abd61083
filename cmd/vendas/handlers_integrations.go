package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vendas-whatsapp/internal/apitoken"
	"github.com/MikeMC777/vendas-whatsapp/internal/httpx"
	"github.com/MikeMC777/vendas-whatsapp/internal/payment"
)

// listTokensHandler godoc
//
//	@Summary	List API tokens
//	@Tags		integracoes
//	@Produce	json
//	@Success	200	{array}	apitoken.Token
//	@Security	BearerAuth
//	@Router		/portal/api-tokens [get]
func listTokensHandler(svc *apitoken.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), empresaOf(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// createTokenHandler godoc
//
//	@Summary		Issue an API token
//	@Description	The plaintext token is returned only in this response.
//	@Tags			integracoes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		apitoken.CreateRequest	true	"token"
//	@Success		201		{object}	apitoken.Created
//	@Failure		400		{object}	httpx.HTTPError
//	@Security		BearerAuth
//	@Router			/portal/api-tokens [post]
func createTokenHandler(svc *apitoken.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req apitoken.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		tok, err := svc.Create(c.Request.Context(), empresaOf(c), req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, tok)
	}
}

// revokeTokenHandler godoc
//
//	@Summary	Revoke an API token
//	@Tags		integracoes
//	@Param		id	path	string	true	"token id"
//	@Success	204
//	@Failure	404	{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/api-tokens/{id} [delete]
func revokeTokenHandler(svc *apitoken.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Revoke(c.Request.Context(), empresaOf(c), c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// listPaymentConfigsHandler godoc
//
//	@Summary	List payment gateway settings
//	@Tags		integracoes
//	@Produce	json
//	@Success	200	{array}	payment.Config
//	@Security	BearerAuth
//	@Router		/portal/pagamentos/configs [get]
func listPaymentConfigsHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), empresaOf(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// upsertPaymentConfigHandler godoc
//
//	@Summary		Save payment gateway settings
//	@Description	Blank secrets keep the stored value.
//	@Tags			integracoes
//	@Accept			json
//	@Produce		json
//	@Param			provedor	path		string					true	"mercadopago, pagseguro, stripe, asaas or pix_manual"
//	@Param			body		body		payment.UpsertRequest	true	"settings"
//	@Success		200			{object}	payment.Config
//	@Failure		400			{object}	httpx.HTTPError
//	@Security		BearerAuth
//	@Router			/portal/pagamentos/configs/{provedor} [put]
func upsertPaymentConfigHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.UpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		cfg, err := svc.Upsert(c.Request.Context(), empresaOf(c), c.Param("provedor"), req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// deletePaymentConfigHandler godoc
//
//	@Summary	Remove payment gateway settings
//	@Tags		integracoes
//	@Param		provedor	path	string	true	"provider"
//	@Success	204
//	@Failure	404	{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/portal/pagamentos/configs/{provedor} [delete]
func deletePaymentConfigHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := svc.Delete(c.Request.Context(), empresaOf(c), c.Param("provedor"))
		if err != nil {
			fail(c, err)
			return
		}
		if !ok {
			httpx.Fail(c, http.StatusNotFound, payment.ErrNotFound.Error())
			return
		}
		c.Status(http.StatusNoContent)
	}
}

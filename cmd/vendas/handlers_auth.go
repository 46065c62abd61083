package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vendas-whatsapp/internal/auth"
	"github.com/MikeMC777/vendas-whatsapp/internal/company"
	"github.com/MikeMC777/vendas-whatsapp/internal/httpx"
	"github.com/MikeMC777/vendas-whatsapp/internal/user"
)

// LoginRequest payload de login.
// swagger:model LoginRequest
type LoginRequest struct {
	Email string `json:"email" example:"maria@loja.com.br"`
	Senha string `json:"senha" example:"s3nh4-f0rt3"`
}

// LoginResponse carries the session token.
// swagger:model LoginResponse
type LoginResponse struct {
	Token    string     `json:"token"`
	ExpiraEm time.Time  `json:"expira_em"`
	Usuario  *user.User `json:"usuario"`
}

// MeResponse is the caller's account and, for company users, their company.
// swagger:model MeResponse
type MeResponse struct {
	Usuario *user.User       `json:"usuario"`
	Empresa *company.Company `json:"empresa,omitempty"`
}

// loginHandler godoc
//
//	@Summary		Log into the dashboard
//	@Description	Inactive users and users of inactive companies are refused.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		LoginRequest	true	"credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		401		{object}	httpx.HTTPError
//	@Router			/auth/login [post]
func loginHandler(users *user.Service, companies company.Repository, jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		ctx := c.Request.Context()
		u, ok, err := users.Authenticate(ctx, req.Email, req.Senha)
		if err != nil {
			fail(c, err)
			return
		}
		if !ok {
			httpx.Fail(c, http.StatusUnauthorized, "invalid credentials")
			return
		}

		sess := auth.Session{UserID: u.ID, Papel: u.Papel, Nome: u.Nome}
		if u.EmpresaID != nil {
			emp, err := companies.GetByID(ctx, *u.EmpresaID)
			if err != nil && !errors.Is(err, company.ErrNotFound) {
				fail(c, err)
				return
			}
			if emp == nil || !emp.Ativo {
				httpx.Fail(c, http.StatusUnauthorized, "company inactive")
				return
			}
			sess.EmpresaID = emp.ID
		}

		tok, exp, err := jwtSvc.Issue(sess)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, LoginResponse{Token: tok, ExpiraEm: exp, Usuario: u})
	}
}

// meHandler godoc
//
//	@Summary	Current session
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	MeResponse
//	@Failure	401	{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/auth/me [get]
func meHandler(users *user.Service, companies company.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := auth.SessionFrom(c)
		ctx := c.Request.Context()
		u, err := users.Get(ctx, sess.UserID)
		if errors.Is(err, user.ErrNotFound) {
			httpx.Fail(c, http.StatusUnauthorized, "user no longer exists")
			return
		}
		if err != nil {
			fail(c, err)
			return
		}
		res := MeResponse{Usuario: u}
		if sess.EmpresaID != "" {
			if res.Empresa, err = companies.GetByID(ctx, sess.EmpresaID); err != nil {
				fail(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, res)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MikeMC777/vendas-whatsapp/internal/apitoken"
	"github.com/MikeMC777/vendas-whatsapp/internal/auth"
	"github.com/MikeMC777/vendas-whatsapp/internal/company"
	"github.com/MikeMC777/vendas-whatsapp/internal/httpx"
	"github.com/MikeMC777/vendas-whatsapp/internal/user"
)

// validCompanyID keeps malformed ids away from the uuid column.
func validCompanyID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.Fail(c, http.StatusNotFound, company.ErrNotFound.Error())
		return "", false
	}
	return id, true
}

// companyActive backs auth.RequireActiveCompany with the companies table.
func companyActive(repo company.Repository) auth.ActiveFunc {
	return func(ctx context.Context, empresaID string) (bool, error) {
		emp, err := repo.GetByID(ctx, empresaID)
		if errors.Is(err, company.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return emp.Ativo, nil
	}
}

// listCompaniesHandler godoc
//
//	@Summary	List companies
//	@Tags		admin
//	@Produce	json
//	@Param		q		query		string	false	"name, document or email fragment"
//	@Param		ativo	query		bool	false	"active filter"
//	@Param		limit	query		int		false	"page size"
//	@Param		offset	query		int		false	"offset"
//	@Success	200		{object}	company.ListResponse
//	@Security	BearerAuth
//	@Router		/admin/empresas [get]
func listCompaniesHandler(repo company.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := httpx.Paging(c, 20, 100)
		q := company.Query{Q: c.Query("q"), Limit: limit, Offset: offset}
		if v, err := strconv.ParseBool(c.Query("ativo")); err == nil {
			q.Ativo = &v
		}
		items, total, err := repo.List(c.Request.Context(), q)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, company.ListResponse{Limit: limit, Offset: offset, Total: total, Items: items})
	}
}

// createCompanyHandler godoc
//
//	@Summary	Create a company
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		body	body		company.CreateCompanyRequest	true	"company"
//	@Success	201		{object}	company.Company
//	@Failure	400		{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/admin/empresas [post]
func createCompanyHandler(repo company.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req company.CreateCompanyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		emp := req.New(uuid.NewString())
		if err := emp.Validate(); err != nil {
			fail(c, err)
			return
		}
		if err := repo.Create(c.Request.Context(), emp); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, emp)
	}
}

// getCompanyHandler godoc
//
//	@Summary	Get a company
//	@Tags		admin
//	@Produce	json
//	@Param		id	path		string	true	"company id"
//	@Success	200	{object}	company.Company
//	@Failure	404	{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/admin/empresas/{id} [get]
func getCompanyHandler(repo company.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := validCompanyID(c)
		if !ok {
			return
		}
		emp, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, emp)
	}
}

// updateCompanyHandler godoc
//
//	@Summary	Update a company
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"company id"
//	@Param		body	body		company.UpdateCompanyRequest	true	"fields to change"
//	@Success	200		{object}	company.Company
//	@Failure	400		{object}	httpx.HTTPError
//	@Failure	404		{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/admin/empresas/{id} [put]
func updateCompanyHandler(repo company.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := validCompanyID(c)
		if !ok {
			return
		}
		var req company.UpdateCompanyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		ctx := c.Request.Context()
		emp, err := repo.GetByID(ctx, id)
		if err != nil {
			fail(c, err)
			return
		}
		req.Apply(emp)
		if err := emp.Validate(); err != nil {
			fail(c, err)
			return
		}
		if err := repo.Update(ctx, emp); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, emp)
	}
}

// deactivateCompanyHandler godoc
//
//	@Summary		Deactivate a company
//	@Description	Soft delete: the company and its data stay. Its users can no longer log in, open sessions and API tokens stop working.
//	@Tags			admin
//	@Param			id	path	string	true	"company id"
//	@Success		204
//	@Failure		404	{object}	httpx.HTTPError
//	@Security		BearerAuth
//	@Router			/admin/empresas/{id} [delete]
func deactivateCompanyHandler(repo company.Repository, tokens *apitoken.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := validCompanyID(c)
		if !ok {
			return
		}
		found, err := repo.Deactivate(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		if !found {
			httpx.Fail(c, http.StatusNotFound, company.ErrNotFound.Error())
			return
		}
		// lookups already skip inactive companies; cached entries would last until their TTL
		if err := tokens.ForgetCompany(c.Request.Context(), id); err != nil {
			_ = c.Error(fmt.Errorf("forget tokens of %s: %w", id, err))
		}
		c.Status(http.StatusNoContent)
	}
}

// createCompanyUserHandler godoc
//
//	@Summary	Create a portal user for a company
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"company id"
//	@Param		body	body		user.CreateUserRequest	true	"user"
//	@Success	201		{object}	user.User
//	@Failure	400		{object}	httpx.HTTPError
//	@Failure	404		{object}	httpx.HTTPError
//	@Failure	409		{object}	httpx.HTTPError
//	@Security	BearerAuth
//	@Router		/admin/empresas/{id}/usuarios [post]
func createCompanyUserHandler(repo company.Repository, users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := validCompanyID(c)
		if !ok {
			return
		}
		var req user.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		ctx := c.Request.Context()
		if _, err := repo.GetByID(ctx, id); err != nil {
			fail(c, err)
			return
		}
		u, err := users.Create(ctx, &id, user.RoleEmpresa, req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// listCompanyUsersHandler godoc
//
//	@Summary	List the portal users of a company
//	@Tags		admin
//	@Produce	json
//	@Param		id	path	string	true	"company id"
//	@Success	200	{array}	user.User
//	@Security	BearerAuth
//	@Router		/admin/empresas/{id}/usuarios [get]
func listCompanyUsersHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := validCompanyID(c)
		if !ok {
			return
		}
		items, err := users.ListByEmpresa(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// statsHandler godoc
//
//	@Summary	Platform totals for the admin dashboard
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	company.Stats
//	@Security	BearerAuth
//	@Router		/admin/stats [get]
func statsHandler(repo company.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := repo.Stats(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

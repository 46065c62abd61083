package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vendas-whatsapp/internal/apitoken"
	"github.com/MikeMC777/vendas-whatsapp/internal/auth"
	"github.com/MikeMC777/vendas-whatsapp/internal/company"
	"github.com/MikeMC777/vendas-whatsapp/internal/edge"
	"github.com/MikeMC777/vendas-whatsapp/internal/httpx"
	"github.com/MikeMC777/vendas-whatsapp/internal/importer"
	"github.com/MikeMC777/vendas-whatsapp/internal/notification"
	"github.com/MikeMC777/vendas-whatsapp/internal/payment"
	"github.com/MikeMC777/vendas-whatsapp/internal/storage"
	"github.com/MikeMC777/vendas-whatsapp/internal/user"
)

// statusOf maps domain errors to HTTP codes for the portal routes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, company.ErrNotFound), errors.Is(err, user.ErrNotFound),
		errors.Is(err, notification.ErrNotFound), errors.Is(err, apitoken.ErrNotFound),
		errors.Is(err, payment.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, user.ErrAlreadyExist):
		return http.StatusConflict
	case errors.Is(err, company.ErrInvalid), errors.Is(err, user.ErrInvalid),
		errors.Is(err, apitoken.ErrInvalid), importer.IsFileError(err),
		errors.Is(err, storage.ErrUnsupportedType), errors.Is(err, storage.ErrEmpty):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	}
	return edge.HTTPStatus(err)
}

// fail writes the error body; 5xx details stay in the request log.
func fail(c *gin.Context, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		httpx.Fail(c, status, "internal error")
		return
	}
	httpx.Fail(c, status, err.Error())
}

// empresaOf is the tenant of the portal session.
func empresaOf(c *gin.Context) string {
	if s := auth.SessionFrom(c); s != nil {
		return s.EmpresaID
	}
	return ""
}

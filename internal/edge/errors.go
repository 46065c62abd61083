package edge

import (
	"errors"
	"net/http"

	"github.com/MikeMC777/vendas-whatsapp/internal/customer"
	"github.com/MikeMC777/vendas-whatsapp/internal/order"
	"github.com/MikeMC777/vendas-whatsapp/internal/payment"
	"github.com/MikeMC777/vendas-whatsapp/internal/product"
)

// ErrBadRow flags a row rejected before reaching a service.
var ErrBadRow = errors.New("invalid row")

// ErrInternal replaces infrastructure errors in row failures; the original is logged.
var ErrInternal = errors.New("internal error")

var unauthorized = []error{payment.ErrBadSecret, payment.ErrInactive}

var notFound = []error{
	product.ErrNotFound, customer.ErrNotFound, order.ErrNotFound,
	order.ErrCustomerNotFound, order.ErrProductNotFound,
}

var conflict = []error{
	product.ErrConflict, product.ErrInUse, customer.ErrConflict, customer.ErrInUse,
	order.ErrInvalidTransition, order.ErrFinalStatus, order.ErrInsufficientStock,
}

var invalid = []error{
	ErrBadRow, ErrBadBody,
	product.ErrInvalid, customer.ErrInvalid,
	order.ErrInvalidStatus, order.ErrNoItems, order.ErrInvalidQuantity, order.ErrProductInactive,
	payment.ErrUnknownProvider,
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// IsClientError reports whether err comes from the request content rather
// than from the database or another dependency.
func IsClientError(err error) bool {
	return isAny(err, unauthorized) || isAny(err, notFound) || isAny(err, conflict) || isAny(err, invalid)
}

// HTTPStatus maps a domain error to the status a single-item call returns.
func HTTPStatus(err error) int {
	switch {
	case isAny(err, unauthorized):
		return http.StatusUnauthorized
	case isAny(err, notFound):
		return http.StatusNotFound
	case isAny(err, conflict):
		return http.StatusConflict
	case isAny(err, invalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

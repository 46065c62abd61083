package order

import (
	"errors"
	"fmt"
)

const (
	StatusPendente   = "pendente"
	StatusConfirmado = "confirmado"
	StatusEmPreparo  = "em_preparo"
	StatusEnviado    = "enviado"
	StatusEntregue   = "entregue"
	StatusCancelado  = "cancelado"
)

const (
	PagamentoPendente  = "pendente"
	PagamentoPago      = "pago"
	PagamentoFalhou    = "falhou"
	PagamentoEstornado = "estornado"
)

var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrFinalStatus       = errors.New("order is already closed")
)

// flow is the forward path of an order; cancelado sits outside it.
var flow = []string{StatusPendente, StatusConfirmado, StatusEmPreparo, StatusEnviado, StatusEntregue}

func rank(s string) int {
	for i, v := range flow {
		if v == s {
			return i
		}
	}
	return -1
}

func ValidStatus(s string) bool {
	return s == StatusCancelado || rank(s) >= 0
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PagamentoPendente, PagamentoPago, PagamentoFalhou, PagamentoEstornado:
		return true
	}
	return false
}

func IsFinal(s string) bool {
	return s == StatusEntregue || s == StatusCancelado
}

// CheckTransition reports whether an order in cur may move to next.
// Moving to the same status is allowed and is a no-op for callers.
func CheckTransition(cur, next string) error {
	if !ValidStatus(next) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}
	if cur == next {
		return nil
	}
	if IsFinal(cur) {
		return fmt.Errorf("%w: %s", ErrFinalStatus, cur)
	}
	if next == StatusCancelado {
		return nil
	}
	if rank(next) <= rank(cur) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cur, next)
	}
	return nil
}

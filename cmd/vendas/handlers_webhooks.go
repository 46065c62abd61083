package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/vendas-whatsapp/internal/customer"
	"github.com/MikeMC777/vendas-whatsapp/internal/edge"
	ord "github.com/MikeMC777/vendas-whatsapp/internal/order"
	"github.com/MikeMC777/vendas-whatsapp/internal/payment"
)

// webhookSecretHeader carries the shared secret of a payment provider.
const webhookSecretHeader = "X-Webhook-Secret"

// WhatsAppOrder is what the WhatsApp bot sends: the contact as seen in the
// chat plus the cart.
// swagger:model WhatsAppOrder
type WhatsAppOrder struct {
	Cliente        customer.Input        `json:"cliente"`
	Itens          []ord.CreateOrderItem `json:"itens"`
	FormaPagamento string                `json:"forma_pagamento"`
	Observacoes    string                `json:"observacoes"`
}

// PaymentEvent is a payment status change reported by a gateway.
// swagger:model PaymentEvent
type PaymentEvent struct {
	Provedor        string `json:"provedor" example:"mercadopago"`
	PedidoID        string `json:"pedido_id"`
	Numero          int64  `json:"numero"`
	StatusPagamento string `json:"status_pagamento" example:"pago"`
}

// whatsappOrderHandler godoc
//
//	@Summary		Order from the WhatsApp bot
//	@Description	Upserts the contact by phone and creates the order with origem=whatsapp.
//	@Tags			webhooks
//	@Accept			json
//	@Produce		json
//	@Param			body	body		[]WhatsAppOrder	true	"orders"
//	@Success		200		{object}	edge.Envelope
//	@Failure		400		{object}	edge.Envelope
//	@Security		ApiToken
//	@Router			/webhook-pedidos [post]
func whatsappOrderHandler(orders *ord.Service, customers *customer.Service) gin.HandlerFunc {
	return batch(func(ctx context.Context, empresaID string, row json.RawMessage) (any, error) {
		var in WhatsAppOrder
		if err := edge.Decode(row, &in); err != nil {
			return nil, err
		}
		if in.Cliente.Telefone == nil || *in.Cliente.Telefone == "" {
			return nil, fmt.Errorf("%w: cliente.telefone is required", edge.ErrBadRow)
		}
		in.Cliente.ID = nil
		p, _, err := customers.Upsert(ctx, empresaID, in.Cliente)
		if err != nil {
			return nil, err
		}
		return orders.Create(ctx, empresaID, ord.CreateOrderRequest{
			PessoaID:       p.ID,
			Itens:          in.Itens,
			FormaPagamento: in.FormaPagamento,
			Observacoes:    in.Observacoes,
			Origem:         ord.OrigemWhatsApp,
		})
	})
}

// paymentWebhookHandler godoc
//
//	@Summary		Payment status from a gateway
//	@Description	X-Webhook-Secret is checked against the provider settings. "pago" also confirms a pending order.
//	@Tags			webhooks
//	@Accept			json
//	@Produce		json
//	@Param			X-Webhook-Secret	header		string			false	"provider secret"
//	@Param			body				body		[]PaymentEvent	true	"events"
//	@Success		200					{object}	edge.Envelope
//	@Failure		400					{object}	edge.Envelope
//	@Security		ApiToken
//	@Router			/webhook-pagamentos [post]
func paymentWebhookHandler(orders *ord.Service, payments *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := c.GetHeader(webhookSecretHeader)
		batch(func(ctx context.Context, empresaID string, row json.RawMessage) (any, error) {
			var in PaymentEvent
			if err := edge.Decode(row, &in); err != nil {
				return nil, err
			}
			if in.StatusPagamento == "" {
				return nil, fmt.Errorf("%w: status_pagamento is required", edge.ErrBadRow)
			}
			if err := payments.CheckWebhook(ctx, empresaID, in.Provedor, secret); err != nil {
				return nil, err
			}
			o, err := findOrder(ctx, orders, empresaID, in.PedidoID, in.Numero)
			if err != nil {
				return nil, err
			}
			return orders.UpdatePayment(ctx, empresaID, o.ID, in.StatusPagamento)
		})(c)
	}
}

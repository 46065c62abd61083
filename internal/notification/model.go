// Package notification stores per-company alerts and fans them out to
// connected dashboards.
package notification

import "time"

const (
	TipoNovoPedido   = "novo_pedido"
	TipoEstoqueBaixo = "estoque_baixo"
	TipoPagamento    = "pagamento"
	TipoPedidoStatus = "pedido_status"
	TipoImportacao   = "importacao"
)

type Notification struct {
	ID           string    `json:"id"`
	EmpresaID    string    `json:"empresa_id"`
	Tipo         string    `json:"tipo"`
	Titulo       string    `json:"titulo"`
	Mensagem     string    `json:"mensagem"`
	ReferenciaID string    `json:"referencia_id,omitempty"`
	Lida         bool      `json:"lida"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListResponse is the poll payload. PollIntervalSeconds tells the client
// when to ask again.
// swagger:model NotificationListResponse
type ListResponse struct {
	Items               []Notification `json:"items"`
	NaoLidas            int            `json:"nao_lidas"`
	PollIntervalSeconds int            `json:"poll_interval_seconds"`
}

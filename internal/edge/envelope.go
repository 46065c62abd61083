// Package edge holds the batch plumbing shared by the token-authenticated
// integration API and the spreadsheet importer.
package edge

import "net/http"

// Falha describes one rejected row.
type Falha struct {
	Indice int    `json:"indice"`
	Erro   string `json:"erro"`
	Dados  any    `json:"dados,omitempty"`
}

// Envelope is the response of every edge write.
// swagger:model EdgeEnvelope
type Envelope struct {
	Success     bool    `json:"success"`
	Total       int     `json:"total"`
	Processados int     `json:"processados"`
	Erros       int     `json:"erros"`
	Resultados  []any   `json:"resultados"`
	Falhas      []Falha `json:"falhas,omitempty"`

	infra bool
}

// Page is the response of every edge read. Dados is a single object when
// the caller asked for one id and an array otherwise.
// swagger:model EdgePage
type Page struct {
	Success bool `json:"success"`
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Dados   any  `json:"dados"`
}

// One wraps a single row.
func One(v any) Page { return Page{Success: true, Total: 1, Limit: 1, Dados: v} }

// NewEnvelope starts an envelope for total rows.
func NewEnvelope(total int) *Envelope {
	return &Envelope{Success: true, Total: total, Resultados: []any{}}
}

func (e *Envelope) Ok(result any) {
	e.Processados++
	e.Resultados = append(e.Resultados, result)
}

// Fail records a rejected row. Errors that are not the caller's fault mark
// the batch as an infrastructure failure.
func (e *Envelope) Fail(i int, err error, dados any) {
	e.Erros++
	e.Success = false
	e.Falhas = append(e.Falhas, Falha{Indice: i, Erro: err.Error(), Dados: dados})
	if !IsClientError(err) {
		e.infra = true
	}
}

// Status maps the outcome to an HTTP code: 200 when at least one row went
// through (or there was nothing to do), 500 when nothing did and the
// database or another dependency failed, 400 otherwise.
func (e *Envelope) Status() int {
	switch {
	case e.Processados > 0 || e.Erros == 0:
		return http.StatusOK
	case e.infra:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

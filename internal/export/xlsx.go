// Package export renders catalog, customer and order data as spreadsheets
// and printable order receipts.
package export

import (
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/MikeMC777/vendas-whatsapp/internal/customer"
	"github.com/MikeMC777/vendas-whatsapp/internal/order"
	"github.com/MikeMC777/vendas-whatsapp/internal/product"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	dateLayout      = "02/01/2006 15:04"
)

// table writes a header row plus data rows into a single styled sheet.
func table(w io.Writer, sheet string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9EAD3"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	head := make([]any, len(header))
	for i, h := range header {
		head[i] = excelize.Cell{StyleID: bold, Value: h}
	}
	if err := sw.SetRow("A1", head); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}

func localTime(t time.Time) string { return t.Local().Format(dateLayout) }

// Products headers match the importer columns so a file can round-trip.
func Products(w io.Writer, items []product.Product) error {
	rows := make([][]any, 0, len(items))
	for _, p := range items {
		preco, _ := p.Preco.Float64()
		ativo := "sim"
		if !p.Ativo {
			ativo = "não"
		}
		rows = append(rows, []any{p.Nome, preco, p.Estoque, p.SKU, p.Categoria, p.Descricao, ativo, localTime(p.CreatedAt)})
	}
	return table(w, "produtos",
		[]string{"nome", "preco", "estoque", "sku", "categoria", "descricao", "ativo", "criado_em"}, rows)
}

func Customers(w io.Writer, items []customer.Customer) error {
	rows := make([][]any, 0, len(items))
	for _, c := range items {
		rows = append(rows, []any{c.Nome, c.Telefone, c.Email, c.Documento, c.Endereco, c.Cidade, c.Estado, c.CEP, localTime(c.CreatedAt)})
	}
	return table(w, "pessoas",
		[]string{"nome", "telefone", "email", "documento", "endereco", "cidade", "estado", "cep", "criado_em"}, rows)
}

func Orders(w io.Writer, items []order.Order) error {
	rows := make([][]any, 0, len(items))
	for _, o := range items {
		total, _ := o.Total.Float64()
		rows = append(rows, []any{o.Numero, localTime(o.CreatedAt), o.ClienteNome, o.ClienteTelefone,
			o.Status, o.StatusPagamento, o.FormaPagamento, o.Origem, total})
	}
	return table(w, "pedidos",
		[]string{"numero", "data", "cliente", "telefone", "status", "status_pagamento", "forma_pagamento", "origem", "total"}, rows)
}

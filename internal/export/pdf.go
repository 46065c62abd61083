package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/MikeMC777/vendas-whatsapp/internal/order"
)

const (
	PDFContentType = "application/pdf"

	pageBottom = 277.0 // A4 height minus the bottom margin, in mm
	lineHeight = 6.0
)

// Company is the letterhead printed on receipts.
type Company struct {
	Nome     string
	Telefone string
	Email    string
}

type receipt struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	o   *order.Order
}

// OrderPDF renders a receipt: header, customer block, item table and total.
// The item table breaks onto new pages, repeating its header.
func OrderPDF(w io.Writer, emp Company, o *order.Order) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 20)
	pdf.SetTitle(fmt.Sprintf("Pedido %d", o.Numero), true)

	r := &receipt{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), o: o}
	r.page(emp)
	r.customer()
	r.itemHeader()
	for _, it := range o.Itens {
		if pdf.GetY()+lineHeight > pageBottom {
			r.page(emp)
			r.itemHeader()
		}
		r.itemRow(it)
	}
	if pdf.GetY()+3*lineHeight > pageBottom {
		r.page(emp)
	}
	r.totals()

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func (r *receipt) page(emp Company) {
	p := r.pdf
	p.AddPage()

	p.SetFont("Helvetica", "", 8)
	p.SetY(287)
	p.CellFormat(0, 5, r.tr(fmt.Sprintf("Página %d", p.PageNo())), "", 0, "R", false, 0, "")
	p.SetY(15)

	p.SetFont("Helvetica", "B", 16)
	p.CellFormat(0, 8, r.tr(emp.Nome), "", 1, "L", false, 0, "")
	var contact []string
	for _, v := range []string{emp.Telefone, emp.Email} {
		if v != "" {
			contact = append(contact, v)
		}
	}
	if len(contact) > 0 {
		p.SetFont("Helvetica", "", 9)
		p.CellFormat(0, 5, r.tr(strings.Join(contact, " | ")), "", 1, "L", false, 0, "")
	}
	p.SetFont("Helvetica", "B", 12)
	p.CellFormat(0, 8, r.tr(fmt.Sprintf("Pedido #%d", r.o.Numero)), "B", 1, "L", false, 0, "")
	p.Ln(2)
}

func (r *receipt) customer() {
	p := r.pdf
	o := r.o
	p.SetFont("Helvetica", "", 10)
	lines := []string{
		"Cliente: " + o.ClienteNome,
		"Telefone: " + o.ClienteTelefone,
		"Data: " + localTime(o.CreatedAt),
		"Status: " + o.Status + "   Pagamento: " + o.StatusPagamento,
	}
	if o.FormaPagamento != "" {
		lines = append(lines, "Forma de pagamento: "+o.FormaPagamento)
	}
	for _, l := range lines {
		p.CellFormat(0, lineHeight, r.tr(l), "", 1, "L", false, 0, "")
	}
	if o.Observacoes != "" {
		p.MultiCell(0, lineHeight, r.tr("Observações: "+o.Observacoes), "", "L", false)
	}
	p.Ln(3)
}

var colWidths = []float64{95, 20, 32, 33}

func (r *receipt) itemHeader() {
	p := r.pdf
	p.SetFont("Helvetica", "B", 10)
	p.SetFillColor(230, 230, 230)
	for i, h := range []string{"Produto", "Qtd", "Unitário", "Subtotal"} {
		align := "R"
		if i == 0 {
			align = "L"
		}
		p.CellFormat(colWidths[i], lineHeight+1, r.tr(h), "1", 0, align, true, 0, "")
	}
	p.Ln(-1)
	p.SetFont("Helvetica", "", 10)
}

func (r *receipt) itemRow(it order.Item) {
	p := r.pdf
	name := it.ProdutoNome
	if p.GetStringWidth(r.tr(name)) > colWidths[0]-2 {
		rs := []rune(name)
		for len(rs) > 1 && p.GetStringWidth(r.tr(string(rs)+"...")) > colWidths[0]-2 {
			rs = rs[:len(rs)-1]
		}
		name = string(rs) + "..."
	}
	p.CellFormat(colWidths[0], lineHeight, r.tr(name), "1", 0, "L", false, 0, "")
	p.CellFormat(colWidths[1], lineHeight, fmt.Sprintf("%d", it.Quantidade), "1", 0, "R", false, 0, "")
	p.CellFormat(colWidths[2], lineHeight, Money(it.PrecoUnitario.StringFixed(2)), "1", 0, "R", false, 0, "")
	p.CellFormat(colWidths[3], lineHeight, Money(it.Subtotal.StringFixed(2)), "1", 1, "R", false, 0, "")
}

func (r *receipt) totals() {
	p := r.pdf
	p.Ln(2)
	p.SetFont("Helvetica", "B", 12)
	p.CellFormat(colWidths[0]+colWidths[1]+colWidths[2], lineHeight+2, "Total", "", 0, "R", false, 0, "")
	p.CellFormat(colWidths[3], lineHeight+2, Money(r.o.Total.StringFixed(2)), "", 1, "R", false, 0, "")
}

// Money formats "1234.50" as "R$ 1.234,50".
func Money(fixed string) string {
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")
	intPart, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	out := "R$ " + b.String()
	if frac != "" {
		out += "," + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/vendas-whatsapp/internal/customer"
	"github.com/MikeMC777/vendas-whatsapp/internal/product"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "numeric" lets "2.5" and "1.000" through; stock must be a whole number
	_ = v.RegisterValidation("inteiro", func(fl validator.FieldLevel) bool {
		_, err := strconv.Atoi(fl.Field().String())
		return err == nil
	})
	return v
}

type productRecord struct {
	Nome      string `validate:"required,max=200"`
	Preco     string `validate:"required"`
	Estoque   string `validate:"omitempty,inteiro"`
	SKU       string `validate:"max=64"`
	Categoria string `validate:"max=100"`
	Descricao string `validate:"max=2000"`
	ImagemURL string `validate:"omitempty,url"`
}

type customerRecord struct {
	Nome      string `validate:"required,max=200"`
	Telefone  string `validate:"required,min=10,max=15"`
	Email     string `validate:"omitempty,email"`
	Documento string `validate:"max=20"`
	Estado    string `validate:"omitempty,len=2,alpha"`
	CEP       string `validate:"omitempty,max=9"`
}

// column names used in messages
var fieldColumn = map[string]string{
	"Nome": "nome", "Preco": "preco", "Estoque": "estoque", "SKU": "sku",
	"Categoria": "categoria", "Descricao": "descricao", "ImagemURL": "imagem_url",
	"Telefone": "telefone", "Email": "email", "Documento": "documento",
	"Estado": "estado", "CEP": "cep",
}

func messages(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	var out []string
	for _, fe := range verrs {
		col := fieldColumn[fe.Field()]
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("%s é obrigatório", col))
		case "email":
			out = append(out, fmt.Sprintf("%s inválido", col))
		case "url":
			out = append(out, fmt.Sprintf("%s deve ser uma URL", col))
		case "inteiro":
			out = append(out, fmt.Sprintf("%s deve ser um número inteiro", col))
		case "min":
			out = append(out, fmt.Sprintf("%s deve ter no mínimo %s dígitos", col, fe.Param()))
		case "max":
			out = append(out, fmt.Sprintf("%s deve ter no máximo %s caracteres", col, fe.Param()))
		case "len", "alpha":
			out = append(out, fmt.Sprintf("%s deve ter 2 letras", col))
		default:
			out = append(out, fmt.Sprintf("%s inválido (%s)", col, fe.Tag()))
		}
	}
	return out
}

// ParseMoney accepts "39.90", "39,90", "R$ 1.234,56" and "1,234.56".
// Without a comma, dots followed by groups of three digits are thousands
// separators, so "1.234" is 1234 and "0.125" stays 0.125.
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	s = strings.ReplaceAll(s, " ", "")
	lastComma, lastDot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case lastComma < 0 && lastDot >= 0 && thousandsOnly(s):
		s = strings.ReplaceAll(s, ".", "")
	case lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastDot > lastComma && lastComma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	}
	return decimal.NewFromString(s)
}

// thousandsOnly reports whether every dot in s starts a group of exactly
// three digits and the leading group is 1 to 3 digits without a leading zero.
func thousandsOnly(s string) bool {
	groups := strings.Split(strings.TrimPrefix(s, "-"), ".")
	head := groups[0]
	if head == "" || len(head) > 3 || head[0] == '0' {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return false
		}
	}
	return true
}

// ProductRow is a parsed product line and what is wrong with it.
type ProductRow struct {
	Linha int           `json:"linha"`
	Input product.Input `json:"dados"`
	Erros []string      `json:"erros,omitempty"`
}

func (r ProductRow) Valid() bool { return len(r.Erros) == 0 }

func ParseProduct(rec Record) ProductRow {
	f := rec.Fields
	pr := productRecord{
		Nome: f["nome"], Preco: f["preco"], Estoque: f["estoque"], SKU: f["sku"],
		Categoria: f["categoria"], Descricao: f["descricao"], ImagemURL: f["imagem_url"],
	}
	row := ProductRow{Linha: rec.Linha}
	if err := validate.Struct(pr); err != nil {
		row.Erros = messages(err)
	}

	in := product.Input{}
	if pr.Nome != "" {
		in.Nome = &pr.Nome
	}
	if pr.Preco != "" {
		p, err := ParseMoney(pr.Preco)
		switch {
		case err != nil:
			row.Erros = append(row.Erros, "preco inválido: "+pr.Preco)
		case !p.IsPositive():
			row.Erros = append(row.Erros, "preco deve ser maior que zero")
		case !p.Equal(p.Round(2)):
			row.Erros = append(row.Erros, "preco deve ter no máximo 2 casas decimais")
		default:
			in.Preco = &p
		}
	}
	if pr.Estoque != "" {
		n, err := strconv.Atoi(pr.Estoque)
		switch {
		case err != nil:
			// already reported by the inteiro rule
		case n < 0:
			row.Erros = append(row.Erros, "estoque não pode ser negativo")
		default:
			in.Estoque = &n
		}
	}
	set := func(dst **string, v string) {
		if v != "" {
			*dst = &v
		}
	}
	set(&in.SKU, pr.SKU)
	set(&in.Categoria, pr.Categoria)
	set(&in.Descricao, pr.Descricao)
	set(&in.ImagemURL, pr.ImagemURL)
	row.Input = in
	return row
}

// CustomerRow is a parsed customer line and what is wrong with it.
type CustomerRow struct {
	Linha int            `json:"linha"`
	Input customer.Input `json:"dados"`
	Erros []string       `json:"erros,omitempty"`
}

func (r CustomerRow) Valid() bool { return len(r.Erros) == 0 }

func ParseCustomer(rec Record) CustomerRow {
	f := rec.Fields
	cr := customerRecord{
		Nome:      f["nome"],
		Telefone:  customer.NormalizePhone(f["telefone"]),
		Email:     strings.ToLower(f["email"]),
		Documento: f["documento"],
		Estado:    strings.ToUpper(f["estado"]),
		CEP:       f["cep"],
	}
	row := CustomerRow{Linha: rec.Linha}
	if err := validate.Struct(cr); err != nil {
		row.Erros = messages(err)
	}

	in := customer.Input{}
	set := func(dst **string, v string) {
		if v != "" {
			*dst = &v
		}
	}
	set(&in.Nome, cr.Nome)
	set(&in.Telefone, cr.Telefone)
	set(&in.Email, cr.Email)
	set(&in.Documento, cr.Documento)
	set(&in.Estado, cr.Estado)
	set(&in.CEP, cr.CEP)
	set(&in.Endereco, f["endereco"])
	set(&in.Cidade, f["cidade"])
	set(&in.Observacoes, f["observacoes"])
	row.Input = in
	return row
}

// Package importer turns uploaded spreadsheets into product and customer
// upserts, reporting every rejected row.
package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrEmptyFile     = errors.New("planilha vazia")
	ErrMissingHeader = errors.New("planilha sem cabeçalho")
	ErrFormat        = errors.New("formato não suportado (use .xlsx ou .csv)")
)

// Sheet is the first worksheet of an upload with normalized headers.
type Sheet struct {
	Headers []string
	Rows    [][]string
}

// Read parses an .xlsx or .csv upload; the extension decides the parser.
func Read(name string, r io.Reader) (*Sheet, error) {
	var rows [][]string
	var err error
	switch strings.ToLower(path.Ext(name)) {
	case ".xlsx":
		rows, err = readXLSX(r)
	case ".csv":
		rows, err = readCSV(r)
	default:
		return nil, ErrFormat
	}
	if err != nil {
		return nil, err
	}

	// drop fully blank rows
	var kept [][]string
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				kept = append(kept, row)
				break
			}
		}
	}
	if len(kept) == 0 {
		return nil, ErrEmptyFile
	}

	s := &Sheet{Rows: kept[1:]}
	for _, h := range kept[0] {
		s.Headers = append(s.Headers, NormalizeHeader(h))
	}
	return s, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	return f.GetRows(sheets[0])
}

func readCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	if bom, _ := br.Peek(3); bytes.Equal(bom, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
	}
	// sniff ; (Brazilian Excel exports) vs ,
	first, _ := br.Peek(4096)
	line, _, _ := bytes.Cut(first, []byte("\n"))

	cr := csv.NewReader(br)
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return rows, nil
}

// NormalizeHeader lowercases, strips accents and maps common synonyms, so
// "Preço (R$)" and "preco" land on the same column.
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	if i := strings.IndexAny(h, "(["); i > 0 {
		h = strings.TrimSpace(h[:i])
	}
	var b strings.Builder
	for _, r := range norm.NFD.String(h) {
		switch {
		case r >= 0x300 && r <= 0x36f:
			// combining accent
		case r == ' ' || r == '-':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	h = b.String()
	if alias, ok := aliases[h]; ok {
		return alias
	}
	return h
}

var aliases = map[string]string{
	"produto":      "nome",
	"nome_produto": "nome",
	"cliente":      "nome",
	"valor":        "preco",
	"preco_venda":  "preco",
	"quantidade":   "estoque",
	"qtd":          "estoque",
	"codigo":       "sku",
	"cod":          "sku",
	"celular":      "telefone",
	"whatsapp":     "telefone",
	"fone":         "telefone",
	"e_mail":       "email",
	"cpf":          "documento",
	"cnpj":         "documento",
	"cpf_cnpj":     "documento",
	"uf":           "estado",
	"descricao":    "descricao",
	"imagem":       "imagem_url",
}

// Record is one data row keyed by normalized header.
type Record struct {
	Linha  int // 1-based spreadsheet line, header included
	Fields map[string]string
}

func (s *Sheet) Records() []Record {
	out := make([]Record, 0, len(s.Rows))
	for i, row := range s.Rows {
		rec := Record{Linha: i + 2, Fields: map[string]string{}}
		for j, h := range s.Headers {
			if h == "" || j >= len(row) {
				continue
			}
			rec.Fields[h] = strings.TrimSpace(row[j])
		}
		out = append(out, rec)
	}
	return out
}

// Has reports whether the header row contains every column.
func (s *Sheet) Has(cols ...string) error {
	var missing []string
	for _, c := range cols {
		found := false
		for _, h := range s.Headers {
			if h == c {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: faltam as colunas %s", ErrMissingHeader, strings.Join(missing, ", "))
	}
	return nil
}

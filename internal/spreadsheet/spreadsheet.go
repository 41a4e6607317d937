// Package spreadsheet reads and writes the tabular files the back office
// exchanges with other systems: XLSX for imports and exports, CSV for the
// transparency downloads.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"institute-portal-backend/internal/validation"
)

// MaxImportRows caps the data rows accepted from a single upload
const MaxImportRows = 5000

var (
	ErrNoData      = errors.New("spreadsheet has no data rows (the first row is the header)")
	ErrTooManyRows = fmt.Errorf("spreadsheet has more than %d data rows", MaxImportRows)
)

// MissingColumnsError lists required header columns that were not found
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "spreadsheet header is missing columns: " + strings.Join(e.Columns, ", ")
}

// Table is a single sheet: a header row followed by data rows
type Table struct {
	Sheet   string
	Headers []string
	Widths  []float64
	Rows    [][]interface{}
}

// Row is one data row of an uploaded sheet keyed by normalized header
type Row struct {
	Line   int
	Values map[string]string
}

// Get returns the trimmed value for a normalized column key
func (r Row) Get(key string) string {
	return strings.TrimSpace(r.Values[key])
}

// HeaderKey normalizes a header cell: "Matrícula" -> "matricula",
// "Nome da Escola" -> "nome-da-escola"
func HeaderKey(h string) string {
	return validation.Slugify(h)
}

// WriteXLSX renders t as a workbook with a styled, frozen header row
func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("delete default sheet: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F4E79"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for col, header := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set header %s: %w", header, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("style header %s: %w", header, err)
		}
	}

	for i, width := range t.Widths {
		if width <= 0 {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	for r, row := range t.Rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(value)); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// excelize has no notion of decimal.Decimal; money goes in as float so the
// cell stays numeric
func cellValue(v interface{}) interface{} {
	switch x := v.(type) {
	case decimal.Decimal:
		f, _ := x.Float64()
		return f
	case decimal.NullDecimal:
		if !x.Valid {
			return ""
		}
		f, _ := x.Decimal.Float64()
		return f
	case *time.Time:
		if x == nil {
			return ""
		}
		return *x
	default:
		return v
	}
}

// ReadFirstSheet parses the first sheet of an XLSX upload. required lists the
// normalized header keys that must be present. Blank rows are skipped; line
// numbers are 1-based as shown by spreadsheet programs. Cells are read as
// stored, without the number format, so 1500 shown as "1,500" reads "1500".
func ReadFirstSheet(r io.Reader, required ...string) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse spreadsheet: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(raw) < 2 {
		return nil, ErrNoData
	}

	keys := make([]string, len(raw[0]))
	present := make(map[string]bool, len(raw[0]))
	for i, h := range raw[0] {
		keys[i] = HeaderKey(h)
		present[keys[i]] = true
	}
	var missing []string
	for _, k := range required {
		if !present[k] {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var rows []Row
	for i := 1; i < len(raw); i++ {
		values := make(map[string]string, len(keys))
		blank := true
		for c, cell := range raw[i] {
			if c >= len(keys) || keys[c] == "" {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell != "" {
				blank = false
			}
			values[keys[c]] = cell
		}
		if blank {
			continue
		}
		rows = append(rows, Row{Line: i + 1, Values: values})
	}

	if len(rows) == 0 {
		return nil, ErrNoData
	}
	if len(rows) > MaxImportRows {
		return nil, ErrTooManyRows
	}
	return rows, nil
}

// ParseDecimal accepts amounts typed the Brazilian way ("1.234,56"), the
// plain way ("1234.56") and with an optional "R$" prefix. Empty means zero.
// A lone separator followed by exactly three digits ("1.500", "1,500") is a
// thousands group, never a decimal point.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, nil
	}

	sign := ""
	body := s
	if strings.HasPrefix(body, "-") {
		sign, body = "-", body[1:]
	}

	lastComma := strings.LastIndex(body, ",")
	lastDot := strings.LastIndex(body, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		// comma is the decimal separator, dots group thousands
		body = strings.ReplaceAll(body, ".", "")
		body = strings.Replace(body, ",", ".", 1)
	case lastComma >= 0 && lastDot >= 0:
		// 1,234.56
		body = strings.ReplaceAll(body, ",", "")
	case lastComma >= 0:
		body = singleSeparator(body, ",")
	case lastDot >= 0:
		body = singleSeparator(body, ".")
	}

	d, err := decimal.NewFromString(sign + body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// singleSeparator resolves a number written with only one kind of separator:
// thousand groups are dropped, otherwise a single occurrence is the decimal
// point. Anything else is returned unchanged and fails to parse.
func singleSeparator(body, sep string) string {
	if thousandGroups(strings.Split(body, sep)) {
		return strings.ReplaceAll(body, sep, "")
	}
	if strings.Count(body, sep) == 1 {
		return strings.Replace(body, sep, ".", 1)
	}
	return body
}

func thousandGroups(parts []string) bool {
	if len(parts) < 2 {
		return false
	}
	head := parts[0]
	if len(head) == 0 || len(head) > 3 || head[0] == '0' || !allDigits(head) {
		return false
	}
	for _, p := range parts[1:] {
		if len(p) != 3 || !allDigits(p) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

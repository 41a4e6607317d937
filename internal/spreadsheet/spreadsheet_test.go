package spreadsheet

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSXThenRead(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, Table{
		Sheet:   "Escolas",
		Headers: []string{"INEP", "Nome da Escola", "Município", "UF"},
		Widths:  []float64{12, 40, 20, 6},
		Rows: [][]interface{}{
			{"53012345", "CEF 01 do Gama", "Brasília", "DF"},
			{"", "", "", ""},
			{"53012346", "CEM 02 de Ceilândia", "Brasília", "DF"},
		},
	})
	require.NoError(t, err)

	rows, err := ReadFirstSheet(bytes.NewReader(buf.Bytes()), "inep", "nome-da-escola")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "53012345", rows[0].Get("inep"))
	assert.Equal(t, "Brasília", rows[0].Get("municipio"))
	// blank row 3 is skipped but line numbers follow the sheet
	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "CEM 02 de Ceilândia", rows[1].Get("nome-da-escola"))
}

func TestWriteXLSXStylesAndFreezesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, Table{
		Sheet:   "Folha",
		Headers: []string{"Matrícula", "Bruto"},
		Rows:    [][]interface{}{{"1001", decimal.RequireFromString("1234.50")}},
	}))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Folha"}, f.GetSheetList())
	v, err := f.GetCellValue("Folha", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1234.5", v)

	panes, err := f.GetPanes("Folha")
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 1, panes.YSplit)
}

func TestReadFirstSheetErrors(t *testing.T) {
	t.Run("missing columns", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteXLSX(&buf, Table{Headers: []string{"Nome"}, Rows: [][]interface{}{{"x"}}}))

		_, err := ReadFirstSheet(&buf, "inep", "nome")
		var missing *MissingColumnsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"inep"}, missing.Columns)
	})

	t.Run("header only", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteXLSX(&buf, Table{Headers: []string{"INEP"}}))

		_, err := ReadFirstSheet(&buf, "inep")
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("not a workbook", func(t *testing.T) {
		_, err := ReadFirstSheet(strings.NewReader("inep;nome"))
		assert.Error(t, err)
	})
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.234,56", "1234.56"},
		{"1234,56", "1234.56"},
		{"1234.56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"R$ 7.500,00", "7500"},
		{"", "0"},
		{"850", "850"},
		{"1,500", "1500"},
		{"1.500", "1500"},
		{"1.234.567", "1234567"},
		{"1,234,567", "1234567"},
		{"1,5", "1.5"},
		{"1.5", "1.5"},
		{"0.500", "0.5"},
		{"12345.678", "12345.678"},
		{"-1.500", "-1500"},
		{"-12,50", "-12.5"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDecimal(tt.in)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}

	for _, bad := range []string{"doze reais", "1,2,3", "1.23.4"} {
		_, err := ParseDecimal(bad)
		assert.Error(t, err, bad)
	}
}

func TestReadFirstSheetIgnoresNumberFormat(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Matrícula", "Bruto", "INEP"}))
	require.NoError(t, f.SetCellValue(sheet, "A2", "1001"))
	require.NoError(t, f.SetCellValue(sheet, "B2", 1500))
	require.NoError(t, f.SetCellValue(sheet, "C2", 53012345))
	grouped, err := f.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "B2", "C2", grouped))

	shown, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	require.Equal(t, "1,500", shown)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	rows, err := ReadFirstSheet(&buf, "matricula", "bruto")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1500", rows[0].Get("bruto"))
	assert.Equal(t, "53012345", rows[0].Get("inep"))

	gross, err := ParseDecimal(rows[0].Get("bruto"))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(gross), "got %s", gross)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	published := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	err := WriteCSV(&buf, Table{
		Headers: []string{"Número", "Assunto", "Publicada em", "Valor"},
		Rows: [][]interface{}{
			{12, "Nomeia; servidor", published, decimal.NewFromInt(10)},
			{13, "Revoga", nil, decimal.NullDecimal{}},
		},
	})
	require.NoError(t, err)

	out := strings.TrimPrefix(buf.String(), "\ufeff")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Número;Assunto;Publicada em;Valor", lines[0])
	assert.Equal(t, `12;"Nomeia; servidor";2024-03-05;10.00`, lines[1])
	assert.Equal(t, "13;Revoga;;", lines[2])
}

package tabular

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoad_CSV(t *testing.T) {
	csvData := "ASIN,Ordered Product Sales\nB0ABC,\"₹1,180.00\"\nB0DEF,₹590.00\n"

	table := Load(UploadSource{Filename: "vendas.csv", Reader: strings.NewReader(csvData)}, Options{})

	require.Equal(t, 2, table.Len())
	assert.Equal(t, "B0ABC", table.Value(0, "asin"))
	assert.Equal(t, "₹1,180.00", table.Value(0, "orderedproductsales"))
}

func TestLoad_CSVComBannerAntesDoCabecalho(t *testing.T) {
	csvData := "Relatório de vendas do vendor central\nASIN,Ordered Revenue\nB0ABC,350.00\n"

	table := Load(UploadSource{Filename: "vendor.csv", Reader: strings.NewReader(csvData)}, Options{HeaderSkip: 1})

	require.Equal(t, 1, table.Len())
	assert.Equal(t, "350.00", table.Value(0, "orderedrevenue"))
}

func TestLoad_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"ASIN", "Ordered Product Sales"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"B0ABC", "₹472.00"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	table := Load(UploadSource{Filename: "vendas.xlsx", Reader: &buf}, Options{})

	require.Equal(t, 1, table.Len())
	assert.Equal(t, "₹472.00", table.Value(0, "orderedproductsales"))
}

func TestLoad_XLSXAbaNomeada(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("Main")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Main", "A1", &[]any{"ASIN", "Category"}))
	require.NoError(t, f.SetSheetRow("Main", "A2", &[]any{"b0abc", "Audio"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	data := buf.Bytes()

	table := Load(UploadSource{Filename: "plan.xlsx", Reader: bytes.NewReader(data)}, Options{Sheet: "Main"})
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Audio", table.Value(0, "category"))

	// Aba inexistente degrada para tabela vazia
	missing := Load(UploadSource{Filename: "plan.xlsx", Reader: bytes.NewReader(data)}, Options{Sheet: "Inexistente"})
	assert.True(t, missing.IsEmpty())
}

func TestLoad_Degradacoes(t *testing.T) {
	tests := []struct {
		name string
		load func() *Table
	}{
		{
			name: "arquivo inexistente",
			load: func() *Table {
				return Load(FileSource{Path: filepath.Join(t.TempDir(), "nao_existe.xlsx")}, Options{})
			},
		},
		{
			name: "extensão não suportada",
			load: func() *Table {
				return Load(UploadSource{Filename: "vendas.pdf", Reader: strings.NewReader("x")}, Options{})
			},
		},
		{
			name: "só cabeçalho, sem linhas de dados",
			load: func() *Table {
				return Load(UploadSource{Filename: "vendas.csv", Reader: strings.NewReader("ASIN,Sales\n")}, Options{})
			},
		},
		{
			name: "header skip maior que o arquivo",
			load: func() *Table {
				return Load(UploadSource{Filename: "vendas.csv", Reader: strings.NewReader("ASIN\nB0ABC\n")}, Options{HeaderSkip: 5})
			},
		},
		{
			name: "xlsx corrompido",
			load: func() *Table {
				return Load(UploadSource{Filename: "vendas.xlsx", Reader: strings.NewReader("não é um xlsx")}, Options{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.load().IsEmpty())
		})
	}
}

package exporter

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func testReport() *domain.DashboardReport {
	return &domain.DashboardReport{
		Filters: &domain.FilterSelection{},
		MonthlyTotals: []domain.MonthlyTotalRow{
			{Month: "2023-01", Sales: 150.456},
			{Month: "2023-02", Sales: 30},
		},
		MonthlyByRegion: []domain.MonthlyRegionRow{
			{Month: "2023-01", Region: "East", Sales: 100},
			{Month: "2023-01", Region: "West", Sales: 50.456},
			{Month: "2023-02", Region: "East", Sales: 30},
		},
		MonthlyBySubCategory: []domain.MonthlySubCategoryRow{
			{Month: "2023-01", SubCategory: "Phones", Sales: 150.456},
			{Month: "2023-02", SubCategory: "Copiers", Sales: 30},
		},
		SubCategoryTotals: []domain.SubCategoryTotalRow{
			{SubCategory: "Copiers", Sales: 30},
			{SubCategory: "Phones", Sales: 150.456},
		},
		RegionMonthMatrix: &domain.RegionMonthMatrix{
			Regions: []string{"East", "West"},
			Months:  []string{"2023-01", "2023-02"},
			Cells:   [][]float64{{100, 30}, {50.456, 0}},
		},
		TopProducts: []domain.ProductRankingItem{
			{Position: 1, ProductName: "WidgetA", Sales: 130},
			{Position: 2, ProductName: "WidgetB", Sales: 50.456},
		},
		RecordCount: 4,
		GrandTotal:  180.456,
		GeneratedAt: time.Now(),
	}
}

func TestExporter_WriteCSV(t *testing.T) {
	exp := New(config.Export{})

	var buf bytes.Buffer
	err := exp.Write(testReport(), FormatCSV, &buf)
	require.NoError(t, err)

	content := buf.String()

	t.Run("Arquivo começa com BOM UTF-8 para o Excel", func(t *testing.T) {
		assert.True(t, bytes.HasPrefix(buf.Bytes(), utf8BOM))
	})

	t.Run("Uma seção por tabela agregada", func(t *testing.T) {
		for _, name := range []string{
			"Vendas por mês",
			"Vendas por mês e região",
			"Vendas por mês e subcategoria",
			"Vendas por subcategoria",
			"Região por mês",
			"Top produtos",
		} {
			assert.Contains(t, content, name)
		}
	})

	t.Run("Valores arredondados para duas casas só na exportação", func(t *testing.T) {
		assert.Contains(t, content, "2023-01,150.46")
		assert.Contains(t, content, "2023-02,30.00")
	})

	t.Run("Matriz exporta o zero explícito", func(t *testing.T) {
		assert.Contains(t, content, "West,50.46,0.00")
	})

	t.Run("Ranking exporta posição, produto e total", func(t *testing.T) {
		assert.Contains(t, content, "1,WidgetA,130.00")
	})
}

func TestExporter_WriteXLSX(t *testing.T) {
	exp := New(config.Export{})

	var buf bytes.Buffer
	err := exp.Write(testReport(), FormatXLSX, &buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	t.Run("Uma planilha por tabela na ordem dos gráficos", func(t *testing.T) {
		assert.Equal(t, []string{
			"Vendas por mês",
			"Vendas por mês e região",
			"Vendas por mês e subcategoria",
			"Vendas por subcategoria",
			"Região por mês",
			"Top produtos",
		}, f.GetSheetList())
	})

	t.Run("Cabeçalho e valores gravados nas células", func(t *testing.T) {
		header, err := f.GetCellValue("Vendas por mês", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Mês", header)

		month, err := f.GetCellValue("Vendas por mês", "A2")
		require.NoError(t, err)
		assert.Equal(t, "2023-01", month)

		sales, err := f.GetCellValue("Vendas por mês", "B2")
		require.NoError(t, err)
		assert.Equal(t, "150.46", sales)
	})
}

func TestExporter_WriteFormatoInvalido(t *testing.T) {
	exp := New(config.Export{})

	err := exp.Write(testReport(), "pdf", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestExporter_SaveSnapshot(t *testing.T) {
	outputDir := t.TempDir()

	exp := New(config.Export{
		OutputDir:     outputDir,
		DefaultFormat: FormatCSV,
	})

	path, err := exp.SaveSnapshot(testReport())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, outputDir))
	assert.True(t, strings.HasSuffix(path, ".csv"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Vendas por mês")
}

package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func record(day time.Time, region, category, subCategory, product string, sales float64) domain.SalesRecord {
	return domain.SalesRecord{
		OrderDate:   day,
		Region:      region,
		Category:    category,
		SubCategory: subCategory,
		ProductName: product,
		Sales:       sales,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Cenário de referência: WidgetA em janeiro e fevereiro, WidgetB filtrado fora
func scenarioRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		record(date(2023, 1, 5), "East", "Tech", "Phones", "WidgetA", 100),
		record(date(2023, 2, 1), "East", "Tech", "Phones", "WidgetA", 30),
	}
}

func TestMonthlyTotals(t *testing.T) {
	t.Run("Soma por mês em ordem crescente, meses sem vendas ausentes", func(t *testing.T) {
		rows := MonthlyTotals(scenarioRecords())

		assert.Equal(t, []domain.MonthlyTotalRow{
			{Month: "2023-01", Sales: 100},
			{Month: "2023-02", Sales: 30},
		}, rows)
	})

	t.Run("Lei de conservação: a soma dos meses é o total filtrado", func(t *testing.T) {
		records := []domain.SalesRecord{
			record(date(2023, 1, 5), "East", "Tech", "Phones", "WidgetA", 100.5),
			record(date(2023, 1, 20), "West", "Tech", "Phones", "WidgetB", 49.5),
			record(date(2023, 3, 1), "South", "Furniture", "Chairs", "ChairX", 200),
		}

		rows := MonthlyTotals(records)

		var monthsSum float64
		for _, row := range rows {
			monthsSum += row.Sales
		}

		assert.InDelta(t, GrandTotal(records), monthsSum, 1e-9)
	})

	t.Run("Sem registros produz tabela vazia sem erro", func(t *testing.T) {
		rows := MonthlyTotals(nil)
		assert.Empty(t, rows)
		assert.NotNil(t, rows)
	})
}

func TestMonthlyByRegion(t *testing.T) {
	records := []domain.SalesRecord{
		record(date(2023, 1, 5), "East", "Tech", "Phones", "WidgetA", 100),
		record(date(2023, 1, 20), "West", "Tech", "Phones", "WidgetB", 50),
		record(date(2023, 1, 25), "East", "Tech", "Copiers", "WidgetC", 20),
		record(date(2023, 2, 1), "East", "Tech", "Phones", "WidgetA", 30),
	}

	rows := MonthlyByRegion(records)

	// Uma linha por par (mês, região) presente, mês depois região
	assert.Equal(t, []domain.MonthlyRegionRow{
		{Month: "2023-01", Region: "East", Sales: 120},
		{Month: "2023-01", Region: "West", Sales: 50},
		{Month: "2023-02", Region: "East", Sales: 30},
	}, rows)
}

func TestMonthlyBySubCategory(t *testing.T) {
	records := []domain.SalesRecord{
		record(date(2023, 2, 1), "East", "Tech", "Phones", "WidgetA", 30),
		record(date(2023, 1, 5), "East", "Tech", "Phones", "WidgetA", 100),
		record(date(2023, 1, 7), "East", "Tech", "Copiers", "WidgetC", 40),
	}

	rows := MonthlyBySubCategory(records)

	// Ordenação por mês define os quadros do gráfico animado
	assert.Equal(t, []domain.MonthlySubCategoryRow{
		{Month: "2023-01", SubCategory: "Copiers", Sales: 40},
		{Month: "2023-01", SubCategory: "Phones", Sales: 100},
		{Month: "2023-02", SubCategory: "Phones", Sales: 30},
	}, rows)
}

func TestSubCategoryTotals(t *testing.T) {
	records := []domain.SalesRecord{
		record(date(2023, 1, 5), "East", "Tech", "Phones", "WidgetA", 100),
		record(date(2023, 2, 1), "East", "Tech", "Phones", "WidgetA", 30),
		record(date(2023, 1, 7), "East", "Tech", "Copiers", "WidgetC", 40),
	}

	rows := SubCategoryTotals(records)

	assert.Equal(t, []domain.SubCategoryTotalRow{
		{SubCategory: "Copiers", Sales: 40},
		{SubCategory: "Phones", Sales: 130},
	}, rows)
}

func TestRegionMonthMatrix(t *testing.T) {
	t.Run("Combinações ausentes são preenchidas com zero", func(t *testing.T) {
		records := []domain.SalesRecord{
			record(date(2023, 1, 5), "East", "Tech", "Phones", "WidgetA", 100),
			record(date(2023, 2, 1), "East", "Tech", "Phones", "WidgetA", 30),
			record(date(2023, 1, 20), "West", "Tech", "Phones", "WidgetB", 50),
		}

		matrix := RegionMonthMatrix(records)

		assert.Equal(t, []string{"East", "West"}, matrix.Regions)
		assert.Equal(t, []string{"2023-01", "2023-02"}, matrix.Months)
		assert.Equal(t, [][]float64{
			{100, 30},
			{50, 0}, // West não vendeu em fevereiro
		}, matrix.Cells)

		assert.Equal(t, 30.0, matrix.Cell("East", "2023-02"))
		assert.Equal(t, 0.0, matrix.Cell("West", "2023-02"))
	})

	t.Run("Sem registros a matriz continua bem formada com eixos vazios", func(t *testing.T) {
		matrix := RegionMonthMatrix(nil)

		assert.Empty(t, matrix.Regions)
		assert.Empty(t, matrix.Months)
		assert.Empty(t, matrix.Cells)
		assert.Equal(t, 0.0, matrix.Cell("East", "2023-01"))
	})
}

func TestTopProducts(t *testing.T) {
	t.Run("Cenário de referência: WidgetA soma 130", func(t *testing.T) {
		items := TopProducts(scenarioRecords(), 10)

		assert.Equal(t, []domain.ProductRankingItem{
			{Position: 1, ProductName: "WidgetA", Sales: 130},
		}, items)
	})

	t.Run("Ordena decrescente e trunca no limite", func(t *testing.T) {
		records := make([]domain.SalesRecord, 0)
		products := []string{"P01", "P02", "P03", "P04", "P05", "P06", "P07", "P08", "P09", "P10", "P11", "P12"}
		for i, product := range products {
			records = append(records, record(date(2023, 1, i+1), "East", "Tech", "Phones", product, float64((i+1)*10)))
		}

		items := TopProducts(records, 10)

		assert.Len(t, items, 10)
		assert.Equal(t, "P12", items[0].ProductName)
		assert.Equal(t, 1, items[0].Position)

		// Todo produto do ranking vendeu pelo menos tanto quanto qualquer excluído
		excludedMax := 20.0 // P01 e P02 ficam de fora
		for i, item := range items {
			assert.GreaterOrEqual(t, item.Sales, excludedMax)
			assert.Equal(t, i+1, item.Position)
			if i > 0 {
				assert.LessOrEqual(t, item.Sales, items[i-1].Sales)
			}
		}
	})

	t.Run("Empates preservam a ordem de primeira aparição", func(t *testing.T) {
		records := []domain.SalesRecord{
			record(date(2023, 1, 2), "East", "Tech", "Phones", "Beta", 50),
			record(date(2023, 1, 3), "East", "Tech", "Phones", "Alpha", 50),
			record(date(2023, 1, 4), "East", "Tech", "Phones", "Gamma", 80),
		}

		items := TopProducts(records, 10)

		assert.Equal(t, "Gamma", items[0].ProductName)
		assert.Equal(t, "Beta", items[1].ProductName)
		assert.Equal(t, "Alpha", items[2].ProductName)
	})

	t.Run("Sem registros produz ranking vazio", func(t *testing.T) {
		items := TopProducts(nil, 10)
		assert.Empty(t, items)
		assert.NotNil(t, items)
	})
}

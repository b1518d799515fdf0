// Package aggregating implementa as seis agregações do dashboard sobre o
// conjunto filtrado de vendas. Todas são funções puras: agrupam por mês
// calendário e/ou por uma dimensão categórica e somam a coluna de vendas,
// sem arredondamento (o arredondamento de duas casas é só de exibição).
package aggregating

import (
	"sort"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// DefaultTopProductsLimit é o tamanho padrão do ranking de produtos
const DefaultTopProductsLimit = 10

// MonthlyTotals soma as vendas por mês, em ordem crescente de mês.
// Meses sem nenhum registro ficam ausentes da tabela.
func MonthlyTotals(records []domain.SalesRecord) []domain.MonthlyTotalRow {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[monthKey(record)] += record.Sales
	}

	rows := make([]domain.MonthlyTotalRow, 0, len(totals))
	for month, sales := range totals {
		rows = append(rows, domain.MonthlyTotalRow{Month: month, Sales: sales})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Month < rows[j].Month
	})

	return rows
}

// MonthlyByRegion soma as vendas por par (mês, região) presente nos dados,
// em formato longo ordenado por mês e depois por região
func MonthlyByRegion(records []domain.SalesRecord) []domain.MonthlyRegionRow {
	type key struct {
		month  string
		region string
	}

	totals := make(map[key]float64)
	for _, record := range records {
		totals[key{month: monthKey(record), region: record.Region}] += record.Sales
	}

	rows := make([]domain.MonthlyRegionRow, 0, len(totals))
	for k, sales := range totals {
		rows = append(rows, domain.MonthlyRegionRow{Month: k.month, Region: k.region, Sales: sales})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		return rows[i].Region < rows[j].Region
	})

	return rows
}

// MonthlyBySubCategory soma as vendas por par (mês, subcategoria) em formato
// longo. A ordenação por mês define a sequência de quadros do gráfico animado.
func MonthlyBySubCategory(records []domain.SalesRecord) []domain.MonthlySubCategoryRow {
	type key struct {
		month       string
		subCategory string
	}

	totals := make(map[key]float64)
	for _, record := range records {
		totals[key{month: monthKey(record), subCategory: record.SubCategory}] += record.Sales
	}

	rows := make([]domain.MonthlySubCategoryRow, 0, len(totals))
	for k, sales := range totals {
		rows = append(rows, domain.MonthlySubCategoryRow{
			Month:       k.month,
			SubCategory: k.subCategory,
			Sales:       sales,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		return rows[i].SubCategory < rows[j].SubCategory
	})

	return rows
}

// SubCategoryTotals soma as vendas por subcategoria, uma linha por
// subcategoria em ordem alfabética (fatias do gráfico de pizza)
func SubCategoryTotals(records []domain.SalesRecord) []domain.SubCategoryTotalRow {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[record.SubCategory] += record.Sales
	}

	rows := make([]domain.SubCategoryTotalRow, 0, len(totals))
	for subCategory, sales := range totals {
		rows = append(rows, domain.SubCategoryTotalRow{SubCategory: subCategory, Sales: sales})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].SubCategory < rows[j].SubCategory
	})

	return rows
}

// RegionMonthMatrix monta a matriz região × mês do heatmap. Os eixos são as
// regiões e os meses presentes nos dados, ordenados; combinações sem vendas
// recebem zero explícito. Com zero registros os eixos ficam vazios, mas a
// matriz continua bem formada.
func RegionMonthMatrix(records []domain.SalesRecord) *domain.RegionMonthMatrix {
	type key struct {
		region string
		month  string
	}

	totals := make(map[key]float64)
	regionSet := make(map[string]bool)
	monthSet := make(map[string]bool)

	for _, record := range records {
		month := monthKey(record)
		totals[key{region: record.Region, month: month}] += record.Sales
		regionSet[record.Region] = true
		monthSet[month] = true
	}

	regions := sortedKeys(regionSet)
	months := sortedKeys(monthSet)

	cells := make([][]float64, len(regions))
	for i, region := range regions {
		cells[i] = make([]float64, len(months))
		for j, month := range months {
			cells[i][j] = totals[key{region: region, month: month}]
		}
	}

	return &domain.RegionMonthMatrix{
		Regions: regions,
		Months:  months,
		Cells:   cells,
	}
}

// TopProducts soma as vendas por produto e retorna os primeiros limit em
// ordem decrescente de total. Empates preservam a ordem de primeira aparição
// do produto nos registros filtrados (ordenação estável).
func TopProducts(records []domain.SalesRecord, limit int) []domain.ProductRankingItem {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, record := range records {
		if _, seen := totals[record.ProductName]; !seen {
			order = append(order, record.ProductName)
		}
		totals[record.ProductName] += record.Sales
	}

	items := make([]domain.ProductRankingItem, 0, len(order))
	for _, product := range order {
		items = append(items, domain.ProductRankingItem{
			ProductName: product,
			Sales:       totals[product],
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Sales > items[j].Sales
	})

	if len(items) > limit {
		items = items[:limit]
	}

	for i := range items {
		items[i].Position = i + 1
	}

	return items
}

// GrandTotal soma as vendas de todos os registros filtrados. Por construção é
// igual à soma da tabela de totais mensais (lei de conservação do relatório).
func GrandTotal(records []domain.SalesRecord) float64 {
	var total float64
	for _, record := range records {
		total += record.Sales
	}
	return total
}

func monthKey(record domain.SalesRecord) string {
	return record.OrderDate.Format(domain.MonthKeyLayout)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

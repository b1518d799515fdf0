package domain

// MonthKeyLayout é o formato de serialização da chave de mês (ano-mês)
const MonthKeyLayout = "2006-01"

// MonthlyTotalRow é uma linha da agregação de vendas totais por mês
type MonthlyTotalRow struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

// MonthlyRegionRow é uma linha da tabela longa (mês, região) -> soma de vendas
type MonthlyRegionRow struct {
	Month  string  `json:"month"`
	Region string  `json:"region"`
	Sales  float64 `json:"sales"`
}

// MonthlySubCategoryRow é uma linha da tabela longa (mês, subcategoria),
// ordenada por mês para o gráfico animado de barras
type MonthlySubCategoryRow struct {
	Month       string  `json:"month"`
	SubCategory string  `json:"sub_category"`
	Sales       float64 `json:"sales"`
}

// SubCategoryTotalRow é uma linha da agregação por subcategoria (gráfico de pizza)
type SubCategoryTotalRow struct {
	SubCategory string  `json:"sub_category"`
	Sales       float64 `json:"sales"`
}

// RegionMonthMatrix é a matriz região (linhas) × mês (colunas) do heatmap.
// Combinações sem vendas são preenchidas explicitamente com zero.
type RegionMonthMatrix struct {
	Regions []string    `json:"regions"`
	Months  []string    `json:"months"`
	Cells   [][]float64 `json:"cells"`
}

// Cell retorna o valor da célula (região, mês) ou zero quando os eixos não contêm a combinação
func (m *RegionMonthMatrix) Cell(region, month string) float64 {
	if m == nil {
		return 0
	}
	for i, r := range m.Regions {
		if r != region {
			continue
		}
		for j, c := range m.Months {
			if c == month {
				return m.Cells[i][j]
			}
		}
	}
	return 0
}

// ProductRankingItem é uma posição do ranking de produtos por total vendido
type ProductRankingItem struct {
	Position    int     `json:"position"`
	ProductName string  `json:"product_name"`
	Sales       float64 `json:"sales"`
}

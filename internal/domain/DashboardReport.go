package domain

import "time"

// DashboardReport é o modelo de renderização completo de uma interação do
// dashboard: a seleção efetivamente aplicada, a prévia dos primeiros registros
// filtrados e as seis tabelas agregadas que alimentam os gráficos.
//
// O relatório é efêmero: recalculado do zero a cada requisição e descartado
// depois da resposta.
type DashboardReport struct {
	Filters              *FilterSelection        `json:"filters"`
	Preview              []SalesRecord           `json:"preview"`
	MonthlyTotals        []MonthlyTotalRow       `json:"monthly_totals"`
	MonthlyByRegion      []MonthlyRegionRow      `json:"monthly_by_region"`
	MonthlyBySubCategory []MonthlySubCategoryRow `json:"monthly_by_sub_category"`
	SubCategoryTotals    []SubCategoryTotalRow   `json:"sub_category_totals"`
	RegionMonthMatrix    *RegionMonthMatrix      `json:"region_month_matrix"`
	TopProducts          []ProductRankingItem    `json:"top_products"`
	RecordCount          int                     `json:"record_count"`
	GrandTotal           float64                 `json:"grand_total"`
	GeneratedAt          time.Time               `json:"generated_at"`
}

// DatasetStats resume o dataset carregado para o healthcheck
type DatasetStats struct {
	Rows     int       `json:"rows"`
	MinDate  time.Time `json:"min_date"`
	MaxDate  time.Time `json:"max_date"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
}

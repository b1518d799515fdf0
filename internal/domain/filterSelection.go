package domain

import "time"

// FilterSelection representa a seleção de filtros do dashboard: intervalo de
// datas mais os conjuntos de regiões e categorias selecionados pelo usuário.
//
// Semântica dos conjuntos: um slice nil significa "sem restrição" (o padrão da
// UI com todos os valores selecionados); um slice vazio significa que o usuário
// desmarcou tudo e o resultado deve ser vazio.
type FilterSelection struct {
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Regions    []string   `json:"regions,omitempty"`
	Categories []string   `json:"categories,omitempty"`
}

// HasRegionConstraint indica se o usuário restringiu o conjunto de regiões
func (f *FilterSelection) HasRegionConstraint() bool {
	return f != nil && f.Regions != nil
}

// HasCategoryConstraint indica se o usuário restringiu o conjunto de categorias
func (f *FilterSelection) HasCategoryConstraint() bool {
	return f != nil && f.Categories != nil
}

// FilterOptions são as opções válidas de filtro derivadas do dataset depois do
// recorte por data. A UI usa esses valores para repopular os multiselects.
type FilterOptions struct {
	Regions    []string  `json:"regions"`
	Categories []string  `json:"categories"`
	MinDate    time.Time `json:"min_date"`
	MaxDate    time.Time `json:"max_date"`
}

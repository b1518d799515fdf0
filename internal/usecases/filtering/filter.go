// Package filtering implementa o pipeline de filtros do dashboard: predicado
// de intervalo de datas e predicados de pertencimento a conjunto (região e
// categoria), todos combinados com AND.
package filtering

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Apply aplica a seleção de filtros ao dataset e retorna os registros que
// satisfazem os três predicados. Função pura: determinística, sem efeitos
// colaterais e idempotente sob reaplicação com a mesma seleção.
//
// Datas nulas caem para o mínimo/máximo do dataset. Início depois do fim não é
// erro: o resultado é definido como vazio.
func Apply(ds *domain.Dataset, selection *domain.FilterSelection) []domain.SalesRecord {
	if ds == nil || ds.Len() == 0 {
		return []domain.SalesRecord{}
	}

	if selection == nil {
		selection = &domain.FilterSelection{}
	}

	start, end := bounds(ds, selection)

	// Conjunto explicitamente vazio seleciona nada: não existe fallback
	// implícito para "todos os valores".
	if selection.HasRegionConstraint() && len(selection.Regions) == 0 {
		return []domain.SalesRecord{}
	}
	if selection.HasCategoryConstraint() && len(selection.Categories) == 0 {
		return []domain.SalesRecord{}
	}

	regions := toSet(selection.Regions)
	categories := toSet(selection.Categories)

	filtered := make([]domain.SalesRecord, 0, ds.Len())
	for _, record := range ds.Records {
		if !withinRange(record.OrderDate, start, end) {
			continue
		}
		if selection.HasRegionConstraint() && !regions[record.Region] {
			continue
		}
		if selection.HasCategoryConstraint() && !categories[record.Category] {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}

// Options deriva as opções válidas de filtro: regiões e categorias distintas
// presentes nos dados já recortados pelo intervalo de datas (a UI recalcula os
// multiselects depois de cada mudança de data), mais o intervalo completo do
// dataset para limitar o seletor de datas.
func Options(ds *domain.Dataset, startDate, endDate *time.Time) *domain.FilterOptions {
	options := &domain.FilterOptions{
		Regions:    []string{},
		Categories: []string{},
	}

	if ds == nil || ds.Len() == 0 {
		return options
	}

	options.MinDate = ds.MinDate
	options.MaxDate = ds.MaxDate

	start, end := bounds(ds, &domain.FilterSelection{StartDate: startDate, EndDate: endDate})

	regions := make(map[string]bool)
	categories := make(map[string]bool)
	for _, record := range ds.Records {
		if !withinRange(record.OrderDate, start, end) {
			continue
		}
		regions[record.Region] = true
		categories[record.Category] = true
	}

	options.Regions = sortedKeys(regions)
	options.Categories = sortedKeys(categories)

	return options
}

// bounds resolve as datas efetivas da seleção, caindo para o intervalo
// completo do dataset quando o usuário não informou limites
func bounds(ds *domain.Dataset, selection *domain.FilterSelection) (time.Time, time.Time) {
	start := ds.MinDate
	if selection.StartDate != nil {
		start = *selection.StartDate
	}

	end := ds.MaxDate
	if selection.EndDate != nil {
		end = *selection.EndDate
	}

	return truncateToDay(start), truncateToDay(end)
}

// withinRange compara na granularidade de dia, inclusivo nas duas pontas
func withinRange(date, start, end time.Time) bool {
	day := truncateToDay(date)
	return !day.Before(start) && !day.After(end)
}

func truncateToDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, value := range values {
		set[value] = true
	}
	return set
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Package dashboarding orquestra o pipeline do dashboard: dataset em cache →
// filtro → agregações → modelo de renderização. Cada interação do usuário
// dispara uma passada completa e síncrona, sem estado derivado persistido.
package dashboarding

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
)

type Service struct {
	cfg   *config.Config
	store DatasetProvider
}

// NewService cria o serviço do dashboard sobre o dataset em cache
func NewService(cfg *config.Config, store DatasetProvider) Dashboarder {
	return &Service{
		cfg:   cfg,
		store: store,
	}
}

// GetDashboard executa uma passada completa do pipeline para a seleção
// informada. Seleções que não casam com nenhum registro não são erro: todas
// as agregações degradam para saídas vazias bem formadas.
func (s *Service) GetDashboard(selection *domain.FilterSelection) (*domain.DashboardReport, error) {
	ds, err := s.store.Dataset()
	if err != nil {
		return nil, err
	}

	if selection == nil {
		selection = &domain.FilterSelection{}
	}

	filtered := filtering.Apply(ds, selection)

	report := &domain.DashboardReport{
		Filters:              s.normalizeSelection(ds, selection),
		Preview:              preview(filtered, s.previewRows()),
		MonthlyTotals:        aggregating.MonthlyTotals(filtered),
		MonthlyByRegion:      aggregating.MonthlyByRegion(filtered),
		MonthlyBySubCategory: aggregating.MonthlyBySubCategory(filtered),
		SubCategoryTotals:    aggregating.SubCategoryTotals(filtered),
		RegionMonthMatrix:    aggregating.RegionMonthMatrix(filtered),
		TopProducts:          aggregating.TopProducts(filtered, s.topProductsLimit()),
		RecordCount:          len(filtered),
		GrandTotal:           aggregating.GrandTotal(filtered),
		GeneratedAt:          time.Now(),
	}

	logrus.WithFields(logrus.Fields{
		"records":     report.RecordCount,
		"grand_total": report.GrandTotal,
	}).Debug("Relatório do dashboard gerado")

	return report, nil
}

// GetFilterOptions deriva as opções válidas de filtro depois do recorte por data
func (s *Service) GetFilterOptions(startDate, endDate *time.Time) (*domain.FilterOptions, error) {
	ds, err := s.store.Dataset()
	if err != nil {
		return nil, err
	}

	return filtering.Options(ds, startDate, endDate), nil
}

// normalizeSelection materializa a seleção efetivamente aplicada: datas nulas
// viram o intervalo completo do dataset, para o relatório registrar o que foi
// de fato usado no recorte
func (s *Service) normalizeSelection(ds *domain.Dataset, selection *domain.FilterSelection) *domain.FilterSelection {
	applied := &domain.FilterSelection{
		StartDate:  selection.StartDate,
		EndDate:    selection.EndDate,
		Regions:    selection.Regions,
		Categories: selection.Categories,
	}

	if applied.StartDate == nil {
		start := ds.MinDate
		applied.StartDate = &start
	}
	if applied.EndDate == nil {
		end := ds.MaxDate
		applied.EndDate = &end
	}

	return applied
}

func (s *Service) previewRows() int {
	if s.cfg != nil && s.cfg.Dataset.PreviewRows > 0 {
		return s.cfg.Dataset.PreviewRows
	}
	return 5
}

func (s *Service) topProductsLimit() int {
	if s.cfg != nil && s.cfg.Dataset.TopProductsLimit > 0 {
		return s.cfg.Dataset.TopProductsLimit
	}
	return aggregating.DefaultTopProductsLimit
}

// preview retorna os primeiros n registros filtrados, na ordem do dataset
func preview(records []domain.SalesRecord, n int) []domain.SalesRecord {
	if len(records) < n {
		n = len(records)
	}

	rows := make([]domain.SalesRecord, n)
	copy(rows, records[:n])
	return rows
}

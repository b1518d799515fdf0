package dashboarding

import (
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// DatasetProvider define o acesso ao dataset em cache de processo
type DatasetProvider interface {
	// Dataset retorna o dataset imutável carregado do CSV
	Dataset() (*domain.Dataset, error)
}

// Dashboarder define as operações do dashboard consumidas pela camada HTTP e
// pelo agendador de snapshots
type Dashboarder interface {
	// GetDashboard executa o pipeline completo (filtro + seis agregações)
	// para a seleção informada e monta o modelo de renderização
	GetDashboard(selection *domain.FilterSelection) (*domain.DashboardReport, error)

	// GetFilterOptions deriva as opções válidas de filtro depois do recorte por data
	GetFilterOptions(startDate, endDate *time.Time) (*domain.FilterOptions, error)
}

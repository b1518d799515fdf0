package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	exportermocks "github.com/vfg2006/sales-dashboard-api/infrastructure/exporter/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	dashboardingmocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func TestReportSnapshotService_RunSnapshot(t *testing.T) {
	report := &domain.DashboardReport{
		RecordCount: 42,
		GrandTotal:  1234.5,
		GeneratedAt: time.Now(),
	}

	tests := []struct {
		name        string
		setup       func(dashboard *dashboardingmocks.MockDashboarder, exporter *exportermocks.MockReportExporter)
		expectError bool
		validate    func(t *testing.T, service *ReportSnapshotService)
	}{
		{
			name: "Snapshot completo gerado e gravado com sucesso",
			setup: func(dashboard *dashboardingmocks.MockDashboarder, exporter *exportermocks.MockReportExporter) {
				// O snapshot usa a seleção vazia: intervalo completo, todos os valores
				dashboard.EXPECT().
					GetDashboard(&domain.FilterSelection{}).
					Return(report, nil)

				exporter.EXPECT().
					SaveSnapshot(report).
					Return("exports/dashboard_2024-01-15_abc123.xlsx", nil)
			},
			expectError: false,
			validate: func(t *testing.T, service *ReportSnapshotService) {
				status := service.GetStatus()
				assert.Equal(t, "exports/dashboard_2024-01-15_abc123.xlsx", status["last_snapshot_path"])
				assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name: "Erro ao gerar o relatório interrompe o snapshot",
			setup: func(dashboard *dashboardingmocks.MockDashboarder, exporter *exportermocks.MockReportExporter) {
				dashboard.EXPECT().
					GetDashboard(gomock.Any()).
					Return(nil, errors.New("dataset indisponível"))
			},
			expectError: true,
			validate: func(t *testing.T, service *ReportSnapshotService) {
				status := service.GetStatus()
				assert.Empty(t, status["last_snapshot_path"])
			},
		},
		{
			name: "Erro ao gravar o arquivo é propagado",
			setup: func(dashboard *dashboardingmocks.MockDashboarder, exporter *exportermocks.MockReportExporter) {
				dashboard.EXPECT().
					GetDashboard(gomock.Any()).
					Return(report, nil)

				exporter.EXPECT().
					SaveSnapshot(report).
					Return("", errors.New("disco cheio"))
			},
			expectError: true,
			validate: func(t *testing.T, service *ReportSnapshotService) {
				status := service.GetStatus()
				assert.Empty(t, status["last_snapshot_path"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDashboard := dashboardingmocks.NewMockDashboarder(ctrl)
			mockExporter := exportermocks.NewMockReportExporter(ctrl)

			service := &ReportSnapshotService{
				dashboardService: mockDashboard,
				reportExporter:   mockExporter,
			}

			tt.setup(mockDashboard, mockExporter)

			err := service.RunSnapshot()

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			tt.validate(t, service)
		})
	}
}

func TestReportSnapshotService_GetStatus(t *testing.T) {
	service := &ReportSnapshotService{
		config: ReportSnapshotConfig{
			CronSchedule: "0 7 * * *",
			Enabled:      true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["snapshot_enabled"])
	assert.Equal(t, "0 7 * * *", status["snapshot_cron"])
}

// Package scheduler contém o agendamento de snapshots do relatório do dashboard
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/exporter"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type ReportSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
}

// ReportSnapshotService gera periodicamente o relatório completo (intervalo
// inteiro, todas as regiões e categorias) e o grava em disco via exporter.
// O job apenas lê o dataset imutável em cache; nunca o invalida ou recarrega.
type ReportSnapshotService struct {
	scheduler           *gocron.Scheduler
	dashboardService    dashboarding.Dashboarder
	reportExporter      exporter.ReportExporter
	config              ReportSnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotPath    string
}

func NewReportSnapshotService(
	dashboardService dashboarding.Dashboarder,
	reportExporter exporter.ReportExporter,
	cfg *config.Config,
) *ReportSnapshotService {
	snapshotConfig := ReportSnapshotConfig{
		CronSchedule: cfg.ReportSnapshot.CronSchedule, // Default: 7h da manhã todos os dias
		Enabled:      cfg.ReportSnapshot.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
	}).Info("Configuração do agendador de snapshots do relatório carregada")

	return &ReportSnapshotService{
		scheduler:        scheduler,
		dashboardService: dashboardService,
		reportExporter:   reportExporter,
		config:           snapshotConfig,
	}
}

func (s *ReportSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshot do relatório desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot do relatório")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro na geração do snapshot do relatório")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o snapshot do relatório: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot do relatório")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSnapshot gera o relatório sem nenhum filtro (o recorte padrão do
// dashboard) e grava o snapshot em disco
func (s *ReportSnapshotService) RunSnapshot() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Geração de snapshot do relatório já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando geração do snapshot do relatório")

	report, err := s.dashboardService.GetDashboard(&domain.FilterSelection{})
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar o relatório para o snapshot")
		return err
	}

	path, err := s.reportExporter.SaveSnapshot(report)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gravar o snapshot do relatório")
		return err
	}

	s.lastSnapshotPath = path

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"records": report.RecordCount,
	}).Info("Geração do snapshot do relatório concluída")

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug("Tabela mensal do snapshot: ", utils.PrettyJson(report.MonthlyTotals))
	}

	return nil
}

// TriggerManualSync inicia manualmente a geração de um snapshot
func (s *ReportSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de snapshot já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de snapshot do relatório")
	go func() {
		if err := s.RunSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro na geração manual do snapshot do relatório")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ReportSnapshotService) GetStatus() map[string]any {
	return map[string]any{
		"snapshot_enabled":       s.config.Enabled,
		"snapshot_cron":          s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_path":     s.lastSnapshotPath,
	}
}

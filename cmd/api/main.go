package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/exporter"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Carrega o dataset de vendas na inicialização; uma falha aqui é fatal
	datasetStore := loadDataset(cfg.Dataset)

	dashboardService := dashboarding.NewService(cfg, datasetStore)
	reportExporter := exporter.New(cfg.Export)

	// Inicializa o agendador de snapshots do relatório
	snapshotService := scheduler.NewReportSnapshotService(dashboardService, reportExporter, cfg)

	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots do relatório")
	} else {
		logrus.Info("Agendador de snapshots do relatório iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		datasetStore,
		reportExporter,
		snapshotService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// loadDataset carrega o dataset de vendas para o cache de processo
func loadDataset(datasetConfig config.Dataset) *dataset.Store {
	store := dataset.NewStore(datasetConfig)

	ds, err := store.Dataset()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset de vendas")
	}

	logrus.WithFields(logrus.Fields{
		"rows":     ds.Len(),
		"min_date": ds.MinDate.Format(time.DateOnly),
		"max_date": ds.MaxDate.Format(time.DateOnly),
	}).Info("Dataset de vendas pronto para uso")

	return store
}

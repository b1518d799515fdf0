package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// StatsProvider expõe o resumo do dataset em cache para o healthcheck
type StatsProvider interface {
	Stats() (*domain.DatasetStats, error)
}

// HealthcheckHandler responde a liveness junto com o resumo do dataset carregado
func HealthcheckHandler(store StatsProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stats, err := store.Stats()
		if err != nil {
			logger.WithError(err).Error("healthcheck: dataset indisponível")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Dataset de vendas indisponível", nil)
			return
		}

		response := map[string]any{
			"status":  "ok",
			"time":    time.Now(),
			"dataset": stats,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Warn("healthcheck: erro ao codificar resposta")
		}
	})
}

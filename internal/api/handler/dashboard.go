package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/exporter"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetDashboard retorna o modelo de renderização completo para a seleção de
// filtros da query string
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, apiErr := parseFilterSelection(r)
		if apiErr != nil {
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
			return
		}

		report, err := service.GetDashboard(selection)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao gerar o relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Erro ao gerar o relatório do dashboard", nil)
			return
		}

		logger.WithFields(log.Fields{
			"records":     report.RecordCount,
			"grand_total": report.GrandTotal,
		}).Info("dashboard: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
		}
	})
}

// GetDashboardFilters retorna as opções válidas de filtro depois do recorte
// por data, para a UI repopular os multiselects
func GetDashboardFilters(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, endDate, apiErr := parseDateRange(r)
		if apiErr != nil {
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
			return
		}

		options, err := service.GetFilterOptions(startDate, endDate)
		if err != nil {
			logger.WithError(err).Error("dashboard-filters: erro ao derivar as opções de filtro")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Erro ao derivar as opções de filtro", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(options); err != nil {
			logger.WithError(err).Error("dashboard-filters: erro ao codificar resposta")
		}
	})
}

// ExportDashboard gera o relatório para a mesma seleção de filtros e o
// devolve como download em CSV ou XLSX
func ExportDashboard(service dashboarding.Dashboarder, reportExporter exporter.ReportExporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, apiErr := parseFilterSelection(r)
		if apiErr != nil {
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
			return
		}

		format := r.URL.Query().Get("format")
		if format == "" {
			format = cfg.Export.DefaultFormat
		}
		if format != exporter.FormatCSV && format != exporter.FormatXLSX {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de exportação inválido. Valores aceitos: csv, xlsx", nil)
			return
		}

		report, err := service.GetDashboard(selection)
		if err != nil {
			logger.WithError(err).Error("dashboard-export: erro ao gerar o relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Erro ao gerar o relatório do dashboard", nil)
			return
		}

		filename := fmt.Sprintf("dashboard_%s.%s", time.Now().Format("2006-01-02"), format)

		w.Header().Set("Content-Type", exporter.ContentType(format))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		// A resposta já começou a ser transmitida: um erro aqui só pode ser logado
		if err := reportExporter.Write(report, format, w); err != nil {
			logger.WithError(err).Error("dashboard-export: erro ao gravar o arquivo exportado")
			return
		}

		logger.WithFields(log.Fields{
			"format":  format,
			"records": report.RecordCount,
		}).Info("dashboard-export: relatório exportado com sucesso")
	})
}

// parseFilterSelection monta a seleção de filtros a partir da query string.
// Parâmetro ausente significa o padrão (intervalo completo, todos os valores);
// parâmetro presente porém vazio significa conjunto explicitamente vazio.
func parseFilterSelection(r *http.Request) (*domain.FilterSelection, *apiErrors.APIError) {
	startDate, endDate, apiErr := parseDateRange(r)
	if apiErr != nil {
		return nil, apiErr
	}

	selection := &domain.FilterSelection{
		StartDate: startDate,
		EndDate:   endDate,
	}

	query := r.URL.Query()
	if query.Has("regions") {
		selection.Regions = splitListParam(query.Get("regions"))
	}
	if query.Has("categories") {
		selection.Categories = splitListParam(query.Get("categories"))
	}

	return selection, nil
}

func parseDateRange(r *http.Request) (*time.Time, *time.Time, *apiErrors.APIError) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, nil, &apiErrors.APIError{
			Code:    apiErrors.ErrInvalidFormat,
			Message: "Data inicial inválida. Use o formato AAAA-MM-DD",
		}
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, nil, &apiErrors.APIError{
			Code:    apiErrors.ErrInvalidFormat,
			Message: "Data final inválida. Use o formato AAAA-MM-DD",
		}
	}

	return startDate, endDate, nil
}

// splitListParam quebra um parâmetro multi-valor separado por vírgulas.
// Uma string vazia vira um conjunto vazio, não nil.
func splitListParam(value string) []string {
	values := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}
	return values
}

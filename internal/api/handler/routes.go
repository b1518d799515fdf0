package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/exporter"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck(store StatsProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(store),
		},
	}
}

func Dashboard(
	service dashboarding.Dashboarder,
	reportExporter exporter.ReportExporter,
	cfg *config.Config,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/filters",
			Method:  http.MethodGet,
			Handler: GetDashboardFilters(service),
		},
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportDashboard(service, reportExporter, cfg),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

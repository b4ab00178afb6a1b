package handler

import (
	"net/http"

	"github.com/adkpi/kpi-dashboard-api/internal/api/handler/router"
	"github.com/adkpi/kpi-dashboard-api/internal/config"
	"github.com/adkpi/kpi-dashboard-api/internal/usecases/authenticating"
	"github.com/adkpi/kpi-dashboard-api/internal/usecases/exporting"
	"github.com/adkpi/kpi-dashboard-api/internal/usecases/ingesting"
	"github.com/adkpi/kpi-dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Kpis(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/kpis",
			Method:  http.MethodGet,
			Handler: ListKpis(service),
		},
		{
			Path:    "/v1/kpis/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/kpis/date-range",
			Method:  http.MethodGet,
			Handler: GetDateRange(service),
		},
		{
			Path:    "/v1/kpis/metrics",
			Method:  http.MethodGet,
			Handler: GetMetricsSummary(service),
		},
	}
}

func Upload(service ingesting.Ingester, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/kpis/upload",
			Method:  http.MethodPost,
			Handler: UploadKpis(service, cfg),
		},
	}
}

func Export(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/kpis/export",
			Method:  http.MethodGet,
			Handler: ExportKpis(service),
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

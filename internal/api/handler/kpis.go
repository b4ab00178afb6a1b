package handler

import (
	"encoding/json"
	"net/http"

	"github.com/adkpi/kpi-dashboard-api/internal/domain"
	"github.com/adkpi/kpi-dashboard-api/internal/usecases/reporting"
	"github.com/adkpi/kpi-dashboard-api/pkg/apiErrors"
	"github.com/adkpi/kpi-dashboard-api/pkg/log"
	"github.com/adkpi/kpi-dashboard-api/pkg/utils"
)

// kpiFiltersFromQuery monta os filtros opcionais de campanha e intervalo de
// datas a partir da query string. Parâmetros ausentes significam "sem filtro".
func kpiFiltersFromQuery(r *http.Request) (*domain.KpiFilters, string, error) {
	filters := &domain.KpiFilters{}

	if campaign := r.URL.Query().Get("campaign"); campaign != "" {
		filters.Campaign = &campaign
	}

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, "start_date", err
	}
	filters.StartDate = startDate

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, "end_date", err
	}
	filters.EndDate = endDate

	return filters, "", nil
}

func ListKpis(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, param, err := kpiFiltersFromQuery(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"param": param,
				"value": r.URL.Query().Get(param),
				"error": err.Error(),
			}).Warn("kpis: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro de data inválido: "+param, nil)
			return
		}

		records, err := service.ListKpis(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("kpis: failed to query kpi records")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar os dados de KPI", nil)
			return
		}

		logger.WithField("rows", len(records)).Info("kpis: successfully listed kpi records")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logger.WithField("error", err.Error()).Error("kpis: failed to encode response")
		}
	})
}

func ListCampaigns(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaigns, err := service.ListCampaigns()
		if err != nil {
			logger.WithField("error", err.Error()).Error("kpis: failed to list campaigns")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar campanhas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logger.WithField("error", err.Error()).Error("kpis: failed to encode response")
		}
	})
}

func GetDateRange(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dateRange, err := service.GetDateRange()
		if err != nil {
			logger.WithField("error", err.Error()).Error("kpis: failed to get date range")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao obter o intervalo de datas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dateRange); err != nil {
			logger.WithField("error", err.Error()).Error("kpis: failed to encode response")
		}
	})
}

func GetMetricsSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, param, err := kpiFiltersFromQuery(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"param": param,
				"value": r.URL.Query().Get(param),
				"error": err.Error(),
			}).Warn("kpis: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro de data inválido: "+param, nil)
			return
		}

		summary, err := service.GetMetricsSummary(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("kpis: failed to aggregate metrics")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao agregar métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithField("error", err.Error()).Error("kpis: failed to encode response")
		}
	})
}

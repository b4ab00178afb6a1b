package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/adkpi/kpi-dashboard-api/internal/usecases/exporting"
	"github.com/adkpi/kpi-dashboard-api/pkg/apiErrors"
	"github.com/adkpi/kpi-dashboard-api/pkg/log"
)

// ExportKpis devolve as linhas filtradas como um arquivo CSV para download,
// respeitando os mesmos filtros das consultas.
func ExportKpis(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, param, err := kpiFiltersFromQuery(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"param": param,
				"value": r.URL.Query().Get(param),
				"error": err.Error(),
			}).Warn("export: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro de data inválido: "+param, nil)
			return
		}

		filename := fmt.Sprintf("ad_kpi_data_%s.csv", time.Now().Format("20060102"))

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		rows, err := service.ExportCSV(w, filters)
		if err != nil {
			// O cabeçalho já pode ter sido enviado; apenas registrar a falha.
			logger.WithField("error", err.Error()).Error("export: failed to write csv")
			return
		}

		logger.WithFields(log.Fields{
			"rows":     rows,
			"filename": filename,
		}).Info("export: csv export completed")
	})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/adkpi/kpi-dashboard-api/internal/config"
	"github.com/adkpi/kpi-dashboard-api/internal/domain"
	"github.com/adkpi/kpi-dashboard-api/internal/usecases/ingesting"
	"github.com/adkpi/kpi-dashboard-api/pkg/apiErrors"
	"github.com/adkpi/kpi-dashboard-api/pkg/log"
	"github.com/pkg/errors"
)

// UploadKpis recebe um CSV multipart e o entrega à pipeline de ingestão.
// O modo de escrita (append ou replace) vem do parâmetro "mode"; na ausência,
// assume append.
func UploadKpis(service ingesting.Ingester, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		maxUploadSize := cfg.Ingestion.MaxUploadSizeMB << 20
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			logger.WithField("error", err.Error()).Warn("ingest: failed to parse multipart form")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o arquivo enviado", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			logger.WithField("error", err.Error()).Warn("ingest: missing file in upload request")

			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo \"file\" é obrigatório", nil)
			return
		}
		defer file.Close()

		modeParam := r.URL.Query().Get("mode")
		if modeParam == "" {
			modeParam = r.FormValue("mode")
		}

		mode, err := domain.ParseWriteMode(modeParam)
		if err != nil {
			logger.WithField("mode", modeParam).Warn("ingest: invalid write mode")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"filename": header.Filename,
			"size":     header.Size,
			"mode":     string(mode),
		}).Info("ingest: upload received")

		result, err := service.Ingest(r.Context(), file, mode)
		if err != nil {
			handleIngestError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithField("error", err.Error()).Error("ingest: failed to encode response")
		}
	})
}

// handleIngestError converte os erros tipados da pipeline nos códigos de erro
// da API, preservando linha/coluna/valor para o autor do arquivo.
func handleIngestError(w http.ResponseWriter, logger log.Logger, err error) {
	var schemaErr *ingesting.SchemaError
	if errors.As(err, &schemaErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingColumn, schemaErr.Error(), map[string]any{
			"missing_columns": schemaErr.MissingColumns,
		})
		return
	}

	var formatErr *ingesting.FormatError
	if errors.As(err, &formatErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, formatErr.Error(), map[string]any{
			"row":    formatErr.Row,
			"column": formatErr.Column,
			"value":  formatErr.Value,
		})
		return
	}

	var typeErr *ingesting.TypeError
	if errors.As(err, &typeErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidType, typeErr.Error(), map[string]any{
			"row":    typeErr.Row,
			"column": typeErr.Column,
			"value":  typeErr.Value,
		})
		return
	}

	var rangeErr *ingesting.RangeError
	if errors.As(err, &rangeErr) {
		apiErrors.WriteError(w, apiErrors.ErrNegativeValue, rangeErr.Error(), map[string]any{
			"row":    rangeErr.Row,
			"column": rangeErr.Column,
			"value":  rangeErr.Value,
		})
		return
	}

	if errors.Is(err, ingesting.ErrEmptyFile) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, ingesting.ErrEmptyFile.Error(), nil)
		return
	}

	logger.WithField("error", err.Error()).Error("ingest: ingestion failed")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar os dados da ingestão", nil)
}

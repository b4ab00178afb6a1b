package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adkpi/kpi-dashboard-api/infrastructure/repository/mocks"
	"github.com/adkpi/kpi-dashboard-api/internal/config"
	"github.com/adkpi/kpi-dashboard-api/internal/usecases/ingesting"
	"github.com/adkpi/kpi-dashboard-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func uploadRequest(t *testing.T, csv string, mode string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "kpis.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	url := "/v1/kpis/upload"
	if mode != "" {
		url += "?mode=" + mode
	}

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadKpis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)
	service := ingesting.NewService(mockKpiRepo)

	cfg := &config.Config{
		Ingestion: config.Ingestion{MaxUploadSizeMB: 20},
	}

	handler := UploadKpis(service, cfg)

	validCsv := "campaign,date,impressions,clicks,conversions,cost\n" +
		"Busca - Marca,2024-01-15,100,10,2,50\n"

	tests := []struct {
		name     string
		request  func(t *testing.T) *http.Request
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Upload válido em modo replace",
			request: func(t *testing.T) *http.Request {
				return uploadRequest(t, validCsv, "replace")
			},
			setup: func() {
				mockKpiRepo.EXPECT().
					RunInTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(*sql.Tx) error) error {
						return fn(nil)
					})
				mockKpiRepo.EXPECT().ClearAll(gomock.Any()).Return(nil)
				mockKpiRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)

				var result map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
				assert.Equal(t, "replace", result["mode"])
				assert.Equal(t, float64(1), result["rows_written"])
				assert.NotEmpty(t, result["run_id"])
			},
		},
		{
			name: "Sem parâmetro mode - assume append",
			request: func(t *testing.T) *http.Request {
				return uploadRequest(t, validCsv, "")
			},
			setup: func() {
				mockKpiRepo.EXPECT().
					RunInTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(*sql.Tx) error) error {
						return fn(nil)
					})
				mockKpiRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)

				var result map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
				assert.Equal(t, "append", result["mode"])
			},
		},
		{
			name: "Modo inválido",
			request: func(t *testing.T) *http.Request {
				return uploadRequest(t, validCsv, "upsert")
			},
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
			},
		},
		{
			name: "Coluna ausente - 422 com as colunas faltantes",
			request: func(t *testing.T) *http.Request {
				csv := "campaign,date,impressions,clicks,conversions\n" +
					"Busca,2024-01-15,100,10,2\n"
				return uploadRequest(t, csv, "append")
			},
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, apiErrors.ErrMissingColumn, apiErr.Code)

				details := apiErr.Details.(map[string]any)
				assert.Equal(t, []any{"cost"}, details["missing_columns"])
			},
		},
		{
			name: "Valor não numérico - 422 com linha, coluna e valor",
			request: func(t *testing.T) *http.Request {
				csv := "campaign,date,impressions,clicks,conversions,cost\n" +
					"Busca,2024-01-15,abc,10,2,50\n"
				return uploadRequest(t, csv, "append")
			},
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, apiErrors.ErrInvalidType, apiErr.Code)

				details := apiErr.Details.(map[string]any)
				assert.Equal(t, float64(1), details["row"])
				assert.Equal(t, "impressions", details["column"])
				assert.Equal(t, "abc", details["value"])
			},
		},
		{
			name: "Valor negativo - 422",
			request: func(t *testing.T) *http.Request {
				csv := "campaign,date,impressions,clicks,conversions,cost\n" +
					"Busca,2024-01-15,100,-10,2,50\n"
				return uploadRequest(t, csv, "append")
			},
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, apiErrors.ErrNegativeValue, apiErr.Code)
			},
		},
		{
			name: "Requisição sem arquivo",
			request: func(t *testing.T) *http.Request {
				var body bytes.Buffer
				writer := multipart.NewWriter(&body)
				require.NoError(t, writer.WriteField("mode", "append"))
				require.NoError(t, writer.Close())

				req := httptest.NewRequest(http.MethodPost, "/v1/kpis/upload", &body)
				req.Header.Set("Content-Type", writer.FormDataContentType())
				return req
			},
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
			},
		},
		{
			name: "Falha na transação - 500 sem detalhes de validação",
			request: func(t *testing.T) *http.Request {
				return uploadRequest(t, validCsv, "append")
			},
			setup: func() {
				mockKpiRepo.EXPECT().
					RunInTransaction(gomock.Any(), gomock.Any()).
					Return(assert.AnError)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)

				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, tt.request(t))

			tt.validate(t, rec)
		})
	}
}

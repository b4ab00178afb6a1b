package exporting

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/adkpi/kpi-dashboard-api/infrastructure/repository/mocks"
	"github.com/adkpi/kpi-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_ExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)

	service := &Service{
		kpiRepository: mockKpiRepo,
	}

	t.Run("Exporta linhas com cabeçalho e KPIs derivados", func(t *testing.T) {
		mockKpiRepo.EXPECT().
			Query(gomock.Any()).
			Return([]*domain.KpiRecord{
				{
					ID:          1,
					Campaign:    "Busca - Marca",
					Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
					Impressions: 100,
					Clicks:      10,
					Conversions: 2,
					Cost:        50,
					CTR:         0.1,
					CVR:         0.2,
					CPA:         25,
				},
			}, nil)

		var buf bytes.Buffer
		rows, err := service.ExportCSV(&buf, &domain.KpiFilters{})

		assert.NoError(t, err)
		assert.Equal(t, 1, rows)

		parsed, err := csv.NewReader(&buf).ReadAll()
		assert.NoError(t, err)
		assert.Len(t, parsed, 2)
		assert.Equal(t, exportHeader, parsed[0])
		assert.Equal(t, []string{"1", "Busca - Marca", "2024-01-15", "100", "10", "2", "50", "0.1", "0.2", "25"}, parsed[1])
	})

	t.Run("Tabela vazia - só o cabeçalho", func(t *testing.T) {
		mockKpiRepo.EXPECT().
			Query(gomock.Any()).
			Return([]*domain.KpiRecord{}, nil)

		var buf bytes.Buffer
		rows, err := service.ExportCSV(&buf, &domain.KpiFilters{})

		assert.NoError(t, err)
		assert.Equal(t, 0, rows)

		parsed, err := csv.NewReader(&buf).ReadAll()
		assert.NoError(t, err)
		assert.Len(t, parsed, 1)
	})

	t.Run("Erro na consulta não escreve nada", func(t *testing.T) {
		mockKpiRepo.EXPECT().
			Query(gomock.Any()).
			Return(nil, assert.AnError)

		var buf bytes.Buffer
		_, err := service.ExportCSV(&buf, &domain.KpiFilters{})

		assert.Error(t, err)
		assert.Zero(t, buf.Len())
	})
}

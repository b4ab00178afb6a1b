package reporting

import (
	"testing"
	"time"

	"github.com/adkpi/kpi-dashboard-api/infrastructure/repository/mocks"
	"github.com/adkpi/kpi-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestService_ListKpis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)

	service := &Service{
		kpiRepository: mockKpiRepo,
	}

	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filters  *domain.KpiFilters
		setup    func()
		validate func(t *testing.T, records []*domain.KpiRecord, err error)
	}{
		{
			name: "Com filtro de campanha e data inicial",
			filters: &domain.KpiFilters{
				Campaign:  stringPtr("Busca - Marca"),
				StartDate: &startDate,
			},
			setup: func() {
				mockKpiRepo.EXPECT().
					Query(gomock.Any()).
					DoAndReturn(func(filters *domain.KpiFilters) ([]*domain.KpiRecord, error) {
						assert.Equal(t, "Busca - Marca", *filters.Campaign)
						assert.Equal(t, startDate, *filters.StartDate)
						return []*domain.KpiRecord{
							{ID: 1, Campaign: "Busca - Marca"},
						}, nil
					})
			},
			validate: func(t *testing.T, records []*domain.KpiRecord, err error) {
				assert.NoError(t, err)
				assert.Len(t, records, 1)
			},
		},
		{
			name:    "Sem filtros - tabela vazia retorna lista vazia",
			filters: &domain.KpiFilters{},
			setup: func() {
				mockKpiRepo.EXPECT().
					Query(gomock.Any()).
					Return([]*domain.KpiRecord{}, nil)
			},
			validate: func(t *testing.T, records []*domain.KpiRecord, err error) {
				assert.NoError(t, err)
				assert.Empty(t, records)
			},
		},
		{
			name:    "Erro do banco é propagado",
			filters: &domain.KpiFilters{},
			setup: func() {
				mockKpiRepo.EXPECT().
					Query(gomock.Any()).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, records []*domain.KpiRecord, err error) {
				assert.Error(t, err)
				assert.Nil(t, records)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			records, err := service.ListKpis(tt.filters)

			tt.validate(t, records, err)
		})
	}
}

func TestService_ListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)

	service := &Service{
		kpiRepository: mockKpiRepo,
	}

	mockKpiRepo.EXPECT().
		Campaigns().
		Return([]string{"Busca - Marca", "Display"}, nil)

	campaigns, err := service.ListCampaigns()

	assert.NoError(t, err)
	assert.Equal(t, []string{"Busca - Marca", "Display"}, campaigns)
}

func TestService_GetDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)

	service := &Service{
		kpiRepository: mockKpiRepo,
	}

	t.Run("Tabela com dados", func(t *testing.T) {
		mockKpiRepo.EXPECT().
			DateRange().
			Return(&domain.DateRange{
				StartDate: stringPtr("2024-01-01"),
				EndDate:   stringPtr("2024-01-31"),
			}, nil)

		dateRange, err := service.GetDateRange()

		assert.NoError(t, err)
		assert.Equal(t, "2024-01-01", *dateRange.StartDate)
		assert.Equal(t, "2024-01-31", *dateRange.EndDate)
	})

	t.Run("Tabela vazia - limites nil", func(t *testing.T) {
		mockKpiRepo.EXPECT().
			DateRange().
			Return(&domain.DateRange{}, nil)

		dateRange, err := service.GetDateRange()

		assert.NoError(t, err)
		assert.Nil(t, dateRange.StartDate)
		assert.Nil(t, dateRange.EndDate)
	})
}

func TestService_GetMetricsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)

	service := &Service{
		kpiRepository: mockKpiRepo,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, summary *domain.MetricsSummary, err error)
	}{
		{
			name: "KPIs derivados sobre os totais, não média das linhas",
			setup: func() {
				mockKpiRepo.EXPECT().
					MetricsSummary(gomock.Any()).
					Return(&domain.MetricsSummary{
						TotalImpressions: 1000,
						TotalClicks:      100,
						TotalConversions: 10,
						TotalCost:        250,
					}, nil)
			},
			validate: func(t *testing.T, summary *domain.MetricsSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.1, summary.CTR)
				assert.Equal(t, 0.1, summary.CVR)
				assert.Equal(t, 25.0, summary.CPA)
			},
		},
		{
			name: "Totais zerados - KPIs derivados zerados",
			setup: func() {
				mockKpiRepo.EXPECT().
					MetricsSummary(gomock.Any()).
					Return(&domain.MetricsSummary{}, nil)
			},
			validate: func(t *testing.T, summary *domain.MetricsSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, summary.CTR)
				assert.Equal(t, 0.0, summary.CVR)
				assert.Equal(t, 0.0, summary.CPA)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			summary, err := service.GetMetricsSummary(&domain.KpiFilters{})

			tt.validate(t, summary, err)
		})
	}
}

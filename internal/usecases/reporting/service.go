package reporting

import (
	"github.com/adkpi/kpi-dashboard-api/infrastructure/repository"
	"github.com/adkpi/kpi-dashboard-api/internal/domain"
	"github.com/pkg/errors"
)

// Reporter expõe as consultas que o dashboard faz sobre a tabela de KPIs.
type Reporter interface {
	ListKpis(filters *domain.KpiFilters) ([]*domain.KpiRecord, error)
	ListCampaigns() ([]string, error)
	GetDateRange() (*domain.DateRange, error)
	GetMetricsSummary(filters *domain.KpiFilters) (*domain.MetricsSummary, error)
}

type Service struct {
	kpiRepository repository.KpiRepository
}

// NewService cria uma nova instância do serviço de consultas de KPI
func NewService(kpiRepo repository.KpiRepository) Reporter {
	return &Service{
		kpiRepository: kpiRepo,
	}
}

// ListKpis retorna as linhas filtradas por campanha e intervalo de datas.
// Os KPIs derivados vêm armazenados; não são recalculados na leitura.
func (s *Service) ListKpis(filters *domain.KpiFilters) ([]*domain.KpiRecord, error) {
	records, err := s.kpiRepository.Query(filters)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar kpi records")
	}

	return records, nil
}

// ListCampaigns retorna os nomes distintos de campanha presentes na tabela
func (s *Service) ListCampaigns() ([]string, error) {
	campaigns, err := s.kpiRepository.Campaigns()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas")
	}

	return campaigns, nil
}

// GetDateRange retorna o intervalo mínimo/máximo de datas dos dados
func (s *Service) GetDateRange() (*domain.DateRange, error) {
	dateRange, err := s.kpiRepository.DateRange()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao obter intervalo de datas")
	}

	return dateRange, nil
}

// GetMetricsSummary agrega os campos base das linhas filtradas e deriva os
// indicadores sobre os totais.
func (s *Service) GetMetricsSummary(filters *domain.KpiFilters) (*domain.MetricsSummary, error) {
	summary, err := s.kpiRepository.MetricsSummary(filters)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar métricas")
	}

	summary.ComputeDerivedMetrics()

	return summary, nil
}

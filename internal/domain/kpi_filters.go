package domain

import (
	"time"

	"github.com/adkpi/kpi-dashboard-api/pkg/utils"
)

// KpiFilters são os filtros aceitos pelas consultas de KPI.
// Todos os campos são opcionais; nil significa "sem filtro".
type KpiFilters struct {
	Campaign  *string
	StartDate *time.Time
	EndDate   *time.Time
}

// MetricsSummary agrega os campos base de todas as linhas filtradas e deriva
// os indicadores sobre os totais, como o relatório do dashboard exibe.
type MetricsSummary struct {
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	TotalConversions int64   `json:"total_conversions"`
	TotalCost        float64 `json:"total_cost"`
	CTR              float64 `json:"ctr"`
	CVR              float64 `json:"cvr"`
	CPA              float64 `json:"cpa"`
}

// ComputeDerivedMetrics deriva CTR, CVR e CPA a partir dos totais agregados,
// com as mesmas guardas de divisão por zero aplicadas por linha.
func (m *MetricsSummary) ComputeDerivedMetrics() {
	m.CTR = 0
	m.CVR = 0
	m.CPA = 0

	if m.TotalImpressions > 0 {
		m.CTR = utils.RoundWithFourDecimalPlace(float64(m.TotalClicks) / float64(m.TotalImpressions))
	}

	if m.TotalClicks > 0 {
		m.CVR = utils.RoundWithFourDecimalPlace(float64(m.TotalConversions) / float64(m.TotalClicks))
	}

	if m.TotalConversions > 0 {
		m.CPA = utils.RoundWithTwoDecimalPlace(m.TotalCost / float64(m.TotalConversions))
	}
}

// DateRange representa o intervalo de datas coberto pelos dados armazenados.
// Os campos são nil quando a tabela está vazia.
type DateRange struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

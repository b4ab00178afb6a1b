package domain

import (
	"time"

	"github.com/adkpi/kpi-dashboard-api/pkg/utils"
)

// KpiRecord representa uma observação diária de KPI de uma campanha.
// Os campos derivados (CTR, CVR, CPA) são sempre recalculados a partir dos
// campos base durante a ingestão e nunca são alterados individualmente depois.
type KpiRecord struct {
	ID          int64     `json:"id"`
	Campaign    string    `json:"campaign"`
	Date        time.Time `json:"date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	Cost        float64   `json:"cost"`
	CTR         float64   `json:"ctr"`
	CVR         float64   `json:"cvr"`
	CPA         float64   `json:"cpa"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// ComputeDerivedMetrics recalcula CTR, CVR e CPA a partir dos campos base.
// Divisões por zero resultam em 0, nunca em erro.
func (r *KpiRecord) ComputeDerivedMetrics() {
	r.CTR = 0
	r.CVR = 0
	r.CPA = 0

	if r.Impressions > 0 {
		r.CTR = utils.RoundWithFourDecimalPlace(float64(r.Clicks) / float64(r.Impressions))
	}

	if r.Clicks > 0 {
		r.CVR = utils.RoundWithFourDecimalPlace(float64(r.Conversions) / float64(r.Clicks))
	}

	if r.Conversions > 0 {
		r.CPA = utils.RoundWithTwoDecimalPlace(r.Cost / float64(r.Conversions))
	}
}

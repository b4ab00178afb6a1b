package exporting

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/adkpi/kpi-dashboard-api/infrastructure/repository"
	"github.com/adkpi/kpi-dashboard-api/internal/domain"
	"github.com/pkg/errors"
)

var exportHeader = []string{
	"id", "campaign", "date", "impressions", "clicks", "conversions", "cost", "ctr", "cvr", "cpa",
}

// Exporter serializa as linhas filtradas em texto delimitado para download.
type Exporter interface {
	ExportCSV(w io.Writer, filters *domain.KpiFilters) (int, error)
}

type Service struct {
	kpiRepository repository.KpiRepository
}

// NewService cria uma nova instância do serviço de exportação
func NewService(kpiRepo repository.KpiRepository) Exporter {
	return &Service{
		kpiRepository: kpiRepo,
	}
}

// ExportCSV escreve as linhas filtradas como CSV (com cabeçalho) no writer e
// retorna a quantidade de linhas exportadas.
func (s *Service) ExportCSV(w io.Writer, filters *domain.KpiFilters) (int, error) {
	records, err := s.kpiRepository.Query(filters)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao consultar kpi records para exportação")
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return 0, errors.Wrap(err, "erro ao escrever o cabeçalho do CSV")
	}

	for _, record := range records {
		row := []string{
			strconv.FormatInt(record.ID, 10),
			record.Campaign,
			record.Date.Format("2006-01-02"),
			strconv.FormatInt(record.Impressions, 10),
			strconv.FormatInt(record.Clicks, 10),
			strconv.FormatInt(record.Conversions, 10),
			strconv.FormatFloat(record.Cost, 'f', -1, 64),
			strconv.FormatFloat(record.CTR, 'f', -1, 64),
			strconv.FormatFloat(record.CVR, 'f', -1, 64),
			strconv.FormatFloat(record.CPA, 'f', -1, 64),
		}

		if err := writer.Write(row); err != nil {
			return 0, errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, errors.Wrap(err, "erro ao finalizar o CSV")
	}

	return len(records), nil
}

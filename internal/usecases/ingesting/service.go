package ingesting

import (
	"context"
	"database/sql"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/adkpi/kpi-dashboard-api/infrastructure/repository"
	"github.com/adkpi/kpi-dashboard-api/internal/domain"
	"github.com/adkpi/kpi-dashboard-api/pkg/log"
	"github.com/adkpi/kpi-dashboard-api/pkg/utils"
	"github.com/pkg/errors"
)

// Ingester é a porta de entrada da pipeline de ingestão de CSV.
type Ingester interface {
	Ingest(ctx context.Context, file io.Reader, mode domain.WriteMode) (*domain.IngestResult, error)
}

// Service valida e normaliza um CSV de KPIs, deriva CTR/CVR/CPA e grava as
// linhas na tabela kpi_records sob o modo de escrita informado.
//
// A validação é tudo-ou-nada: qualquer linha inválida rejeita o lote inteiro
// antes de qualquer escrita. A escrita acontece dentro de uma única transação,
// de modo que um replace que falhe no meio não deixa a tabela pela metade.
type Service struct {
	kpiRepository repository.KpiRepository
}

// NewService cria uma nova instância da pipeline de ingestão
func NewService(kpiRepo repository.KpiRepository) Ingester {
	return &Service{
		kpiRepository: kpiRepo,
	}
}

// Ingest executa uma rodada completa da pipeline: mapeamento de colunas,
// validação/coerção por linha, derivação de KPIs e escrita transacional.
func (s *Service) Ingest(ctx context.Context, file io.Reader, mode domain.WriteMode) (*domain.IngestResult, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID da rodada de ingestão")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id": runID,
		"mode":   string(mode),
	})
	logger.Info("ingest: starting ingestion run")

	records, err := s.parseAndValidate(file)
	if err != nil {
		logger.WithError(err).Warn("ingest: file rejected during validation")
		return nil, err
	}

	written := 0
	err = s.kpiRepository.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if mode == domain.WriteModeReplace {
			if err := s.kpiRepository.ClearAll(tx); err != nil {
				return err
			}
		}

		n, err := s.kpiRepository.InsertBatch(tx, records)
		if err != nil {
			return err
		}
		written = n

		return nil
	})
	if err != nil {
		logger.WithError(err).Error("ingest: transactional write failed, nothing was committed")
		return nil, errors.Wrap(err, "erro ao gravar as linhas da ingestão")
	}

	logger.WithField("rows_written", written).Info("ingest: ingestion run completed")

	return &domain.IngestResult{
		RunID:       runID,
		Mode:        mode,
		RowsWritten: written,
	}, nil
}

// parseAndValidate lê o arquivo inteiro e devolve as linhas já validadas e
// com os KPIs derivados. Nenhuma linha é gravada se qualquer uma falhar.
func (s *Service) parseAndValidate(file io.Reader) ([]*domain.KpiRecord, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &SchemaError{MissingColumns: requiredColumns}
		}
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho do CSV")
	}

	columnIndex, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.KpiRecord, 0)
	row := 0

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &FormatError{Row: row, Column: "", Value: err.Error()}
		}

		record, err := s.parseRow(fields, columnIndex, row)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	return records, nil
}

func (s *Service) parseRow(fields []string, columnIndex map[string]int, row int) (*domain.KpiRecord, error) {
	record := &domain.KpiRecord{}

	campaign := fieldValue(fields, columnIndex[columnCampaign])
	if campaign == "" {
		return nil, &FormatError{Row: row, Column: columnCampaign, Value: ""}
	}
	record.Campaign = campaign

	date, err := parseRowDate(fieldValue(fields, columnIndex[columnDate]))
	if err != nil {
		return nil, &FormatError{Row: row, Column: columnDate, Value: fieldValue(fields, columnIndex[columnDate])}
	}
	record.Date = date

	record.Impressions, err = parseCount(fields, columnIndex, columnImpressions, row)
	if err != nil {
		return nil, err
	}

	record.Clicks, err = parseCount(fields, columnIndex, columnClicks, row)
	if err != nil {
		return nil, err
	}

	record.Conversions, err = parseCount(fields, columnIndex, columnConversions, row)
	if err != nil {
		return nil, err
	}

	record.Cost, err = parseAmount(fields, columnIndex, columnCost, row)
	if err != nil {
		return nil, err
	}

	record.ComputeDerivedMetrics()

	return record, nil
}

// parseCount coage um campo inteiro não negativo. Valor ausente ou vazio
// conta como zero, seguindo o tratamento de nulos da origem.
func parseCount(fields []string, columnIndex map[string]int, column string, row int) (int64, error) {
	raw := fieldValue(fields, columnIndex[column])
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &TypeError{Row: row, Column: column, Value: raw}
	}

	if value < 0 {
		return 0, &RangeError{Row: row, Column: column, Value: raw}
	}

	return value, nil
}

// parseAmount coage um campo decimal não negativo (custo).
func parseAmount(fields []string, columnIndex map[string]int, column string, row int) (float64, error) {
	raw := fieldValue(fields, columnIndex[column])
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &TypeError{Row: row, Column: column, Value: raw}
	}

	if value < 0 {
		return 0, &RangeError{Row: row, Column: column, Value: raw}
	}

	return value, nil
}

func parseRowDate(raw string) (time.Time, error) {
	for _, format := range acceptedDateFormats {
		if date, err := time.Parse(format, raw); err == nil {
			return date, nil
		}
	}

	return time.Time{}, ErrInvalidFormat
}

func fieldValue(fields []string, index int) string {
	if index >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[index])
}

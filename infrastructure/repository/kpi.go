package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adkpi/kpi-dashboard-api/infrastructure/database/postgres"
	"github.com/adkpi/kpi-dashboard-api/internal/domain"
	"github.com/lib/pq"
)

const (
	kpiRecordsTable = "kpi_records"

	// Limite de linhas por INSERT para não estourar o número máximo de
	// parâmetros do Postgres (10 colunas por linha).
	insertBatchSize = 500
)

const createKpiRecordsTable = `
CREATE TABLE IF NOT EXISTS kpi_records (
	id          BIGSERIAL PRIMARY KEY,
	campaign    TEXT NOT NULL,
	date        DATE NOT NULL,
	impressions BIGINT NOT NULL DEFAULT 0,
	clicks      BIGINT NOT NULL DEFAULT 0,
	conversions BIGINT NOT NULL DEFAULT 0,
	cost        DOUBLE PRECISION NOT NULL DEFAULT 0,
	ctr         DOUBLE PRECISION NOT NULL DEFAULT 0,
	cvr         DOUBLE PRECISION NOT NULL DEFAULT 0,
	cpa         DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_kpi_records_date ON kpi_records (date);
CREATE INDEX IF NOT EXISTS idx_kpi_records_campaign ON kpi_records (campaign);
`

type KpiRepository interface {
	EnsureSchema(ctx context.Context) error
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
	InsertBatch(tx *sql.Tx, records []*domain.KpiRecord) (int, error)
	ClearAll(tx *sql.Tx) error
	Query(filters *domain.KpiFilters) ([]*domain.KpiRecord, error)
	Campaigns() ([]string, error)
	DateRange() (*domain.DateRange, error)
	MetricsSummary(filters *domain.KpiFilters) (*domain.MetricsSummary, error)
	DeleteOlderThan(days int) (int64, error)
}

type kpiRepository struct {
	conn *postgres.Connection
}

func NewKpiRepository(conn *postgres.Connection) KpiRepository {
	return &kpiRepository{
		conn: conn,
	}
}

// EnsureSchema cria a tabela e os índices na inicialização. Não há
// versionamento de migrações além da criação inicial.
func (r *kpiRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, createKpiRecordsTable); err != nil {
		return fmt.Errorf("erro ao criar o schema de kpi_records: %w", err)
	}
	return nil
}

// RunInTransaction delega para a conexão. A pipeline de ingestão usa este
// escopo para garantir que replace (limpar + inserir) seja atômico.
func (r *kpiRepository) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return r.conn.RunInTransaction(ctx, fn)
}

func (r *kpiRepository) InsertBatch(tx *sql.Tx, records []*domain.KpiRecord) (int, error) {
	written := 0

	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}

		builder := squirrel.StatementBuilder.
			Insert(kpiRecordsTable).
			Columns("campaign", "date", "impressions", "clicks", "conversions", "cost", "ctr", "cvr", "cpa").
			PlaceholderFormat(squirrel.Dollar)

		for _, record := range records[start:end] {
			builder = builder.Values(
				record.Campaign,
				record.Date.Format("2006-01-02"),
				record.Impressions,
				record.Clicks,
				record.Conversions,
				record.Cost,
				record.CTR,
				record.CVR,
				record.CPA,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return written, fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := tx.Exec(query, args...)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return written, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return written, fmt.Errorf("erro ao executar a query: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return written, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}
		written += int(rowsAffected)
	}

	return written, nil
}

func (r *kpiRepository) ClearAll(tx *sql.Tx) error {
	query, args, err := squirrel.
		Delete(kpiRecordsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao limpar kpi_records: %w", err)
	}

	return nil
}

func (r *kpiRepository) Query(filters *domain.KpiFilters) ([]*domain.KpiRecord, error) {
	builder := squirrel.
		Select("id, campaign, date, impressions, clicks, conversions, cost, ctr, cvr, cpa, created_at").
		From(kpiRecordsTable).
		OrderBy("date ASC", "campaign ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = applyFilters(builder, filters)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.KpiRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear kpi record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *kpiRepository) Campaigns() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT campaign").
		From(kpiRecordsTable).
		OrderBy("campaign ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]string, 0)
	for rows.Next() {
		var campaign string
		if err := rows.Scan(&campaign); err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *kpiRepository) DateRange() (*domain.DateRange, error) {
	query, args, err := squirrel.
		Select("MIN(date), MAX(date)").
		From(kpiRecordsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var minDate, maxDate sql.NullTime
	if err := r.conn.QueryRow(query, args...).Scan(&minDate, &maxDate); err != nil {
		return nil, fmt.Errorf("erro ao obter intervalo de datas: %w", err)
	}

	dateRange := &domain.DateRange{}
	if minDate.Valid {
		formatted := minDate.Time.Format("2006-01-02")
		dateRange.StartDate = &formatted
	}
	if maxDate.Valid {
		formatted := maxDate.Time.Format("2006-01-02")
		dateRange.EndDate = &formatted
	}

	return dateRange, nil
}

func (r *kpiRepository) MetricsSummary(filters *domain.KpiFilters) (*domain.MetricsSummary, error) {
	builder := squirrel.
		Select(
			"COALESCE(SUM(impressions), 0)",
			"COALESCE(SUM(clicks), 0)",
			"COALESCE(SUM(conversions), 0)",
			"COALESCE(SUM(cost), 0)",
		).
		From(kpiRecordsTable).
		PlaceholderFormat(squirrel.Dollar)

	builder = applyFilters(builder, filters)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.MetricsSummary{}
	err = r.conn.QueryRow(query, args...).Scan(
		&summary.TotalImpressions,
		&summary.TotalClicks,
		&summary.TotalConversions,
		&summary.TotalCost,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar métricas: %w", err)
	}

	return summary, nil
}

func (r *kpiRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete(kpiRecordsTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func applyFilters(builder squirrel.SelectBuilder, filters *domain.KpiFilters) squirrel.SelectBuilder {
	if filters == nil {
		return builder
	}

	if filters.Campaign != nil && *filters.Campaign != "" {
		builder = builder.Where(squirrel.Eq{"campaign": *filters.Campaign})
	}
	if filters.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": filters.StartDate.Format("2006-01-02")})
	}
	if filters.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"date": filters.EndDate.Format("2006-01-02")})
	}

	return builder
}

func (r *kpiRepository) scanRecord(rows *sql.Rows) (*domain.KpiRecord, error) {
	record := &domain.KpiRecord{}

	err := rows.Scan(
		&record.ID,
		&record.Campaign,
		&record.Date,
		&record.Impressions,
		&record.Clicks,
		&record.Conversions,
		&record.Cost,
		&record.CTR,
		&record.CVR,
		&record.CPA,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

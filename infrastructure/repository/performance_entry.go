package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/database/postgres"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
)

const (
	performanceEntriesTable = "performance_entries pe"

	performanceEntryColumns = `pe.id, pe.order_id, pe.campaign_id, pe.publication_id,
		pe.item_path, pe.item_name, pe.channel, pe.date_start, pe.date_end,
		pe.metrics, pe.source, pe.validation_status, pe.created_at, pe.updated_at, pe.deleted_at`
)

type PerformanceEntryRepository interface {
	Insert(entry *domain.PerformanceEntry) error
	GetByID(id string) (*domain.PerformanceEntry, error)
	ListByOrderID(orderID string) ([]*domain.PerformanceEntry, error)
	// ListActiveByOrderIDs busca em uma única query todas as entradas
	// agregáveis (não deletadas, validation ok) dos pedidos informados.
	ListActiveByOrderIDs(orderIDs []string) ([]*domain.PerformanceEntry, error)
	UpdateValidationStatus(id string, status domain.ValidationStatus) error
	SoftDelete(id string) error
	DailyAggregates(campaignID string, startDate, endDate time.Time) ([]*domain.DailyAggregate, error)
	PurgeUnusableOlderThan(days int) (int64, error)
}

type performanceEntryRepository struct {
	conn *postgres.Connection
}

func NewPerformanceEntryRepository(conn *postgres.Connection) PerformanceEntryRepository {
	return &performanceEntryRepository{
		conn: conn,
	}
}

func (r *performanceEntryRepository) Insert(entry *domain.PerformanceEntry) error {
	metricsJSON, err := json.Marshal(entry.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar metrics para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("performance_entries").
		Columns(
			"id", "order_id", "campaign_id", "publication_id",
			"item_path", "item_name", "channel", "date_start", "date_end",
			"metrics", "source", "validation_status",
		).
		Values(
			entry.ID,
			entry.OrderID,
			entry.CampaignID,
			entry.PublicationID,
			entry.ItemPath,
			entry.ItemName,
			entry.Channel,
			entry.DateStart,
			entry.DateEnd,
			metricsJSON,
			entry.Source,
			entry.ValidationStatus,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *performanceEntryRepository) GetByID(id string) (*domain.PerformanceEntry, error) {
	query, args, err := squirrel.
		Select(performanceEntryColumns).
		From(performanceEntriesTable).
		Where(squirrel.Eq{"pe.id": id}).
		Where("pe.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := scanPerformanceEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear performance entry: %w", err)
	}

	return entry, nil
}

func (r *performanceEntryRepository) ListByOrderID(orderID string) ([]*domain.PerformanceEntry, error) {
	query, args, err := squirrel.
		Select(performanceEntryColumns).
		From(performanceEntriesTable).
		Where(squirrel.Eq{"pe.order_id": orderID}).
		Where("pe.deleted_at IS NULL").
		OrderBy("pe.date_start ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args)
}

func (r *performanceEntryRepository) ListActiveByOrderIDs(orderIDs []string) ([]*domain.PerformanceEntry, error) {
	if len(orderIDs) == 0 {
		return []*domain.PerformanceEntry{}, nil
	}

	query, args, err := squirrel.
		Select(performanceEntryColumns).
		From(performanceEntriesTable).
		Where(squirrel.Eq{"pe.order_id": orderIDs}).
		Where(squirrel.Eq{"pe.validation_status": domain.ValidationOK}).
		Where("pe.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args)
}

func (r *performanceEntryRepository) UpdateValidationStatus(id string, status domain.ValidationStatus) error {
	query, args, err := squirrel.
		Update("performance_entries").
		Set("validation_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *performanceEntryRepository) SoftDelete(id string) error {
	query, args, err := squirrel.
		Update("performance_entries").
		Set("deleted_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// DailyAggregates agrega a série diária da campanha direto no banco,
// já excluindo entradas deletadas e com flag de qualidade.
func (r *performanceEntryRepository) DailyAggregates(campaignID string, startDate, endDate time.Time) ([]*domain.DailyAggregate, error) {
	query, args, err := squirrel.
		Select(
			"(pe.date_start AT TIME ZONE 'UTC')::date AS day",
			"COALESCE(SUM((pe.metrics->>'impressions')::bigint), 0) AS impressions",
			"COALESCE(SUM((pe.metrics->>'clicks')::bigint), 0) AS clicks",
			`COALESCE(SUM(
				COALESCE((pe.metrics->>'insertions')::bigint, 0) +
				COALESCE((pe.metrics->>'spots_aired')::bigint, 0) +
				COALESCE((pe.metrics->>'downloads')::bigint, 0)
			), 0) AS units`,
			"COUNT(*) AS entries",
		).
		From(performanceEntriesTable).
		Where(squirrel.Eq{"pe.campaign_id": campaignID, "pe.validation_status": domain.ValidationOK}).
		Where("pe.deleted_at IS NULL").
		Where(squirrel.GtOrEq{"pe.date_start": startDate}).
		Where(squirrel.LtOrEq{"pe.date_start": endDate}).
		GroupBy("day").
		OrderBy("day ASC").
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

	points := make([]*domain.DailyAggregate, 0)
	for rows.Next() {
		point := &domain.DailyAggregate{}
		if err := rows.Scan(&point.Date, &point.Impressions, &point.Clicks, &point.Units, &point.Entries); err != nil {
			return nil, fmt.Errorf("erro ao escanear agregado diário: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

// PurgeUnusableOlderThan remove fisicamente entradas que já não participam de
// nenhuma agregação (soft-deletadas ou com flag de qualidade) mais antigas que
// o corte. Usado apenas pelo job de retenção.
func (r *performanceEntryRepository) PurgeUnusableOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("performance_entries").
		Where(squirrel.Lt{"created_at": cutoff}).
		Where(squirrel.Or{
			squirrel.NotEq{"validation_status": domain.ValidationOK},
			squirrel.Expr("deleted_at IS NOT NULL"),
		}).
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

func (r *performanceEntryRepository) queryEntries(query string, args []interface{}) ([]*domain.PerformanceEntry, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.PerformanceEntry, 0)
	for rows.Next() {
		entry, err := scanPerformanceEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear performance entries: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPerformanceEntry(row rowScanner) (*domain.PerformanceEntry, error) {
	entry := &domain.PerformanceEntry{}
	var metricsJSON []byte

	err := row.Scan(
		&entry.ID,
		&entry.OrderID,
		&entry.CampaignID,
		&entry.PublicationID,
		&entry.ItemPath,
		&entry.ItemName,
		&entry.Channel,
		&entry.DateStart,
		&entry.DateEnd,
		&metricsJSON,
		&entry.Source,
		&entry.ValidationStatus,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&entry.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		if err := json.Unmarshal(metricsJSON, &entry.Metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
	}

	return entry, nil
}

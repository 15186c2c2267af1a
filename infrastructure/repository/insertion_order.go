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
	insertionOrdersTable = "insertion_orders io"

	insertionOrderColumns = `io.id, io.campaign_id, io.publication_id, io.hub_id, io.status,
		io.placement_statuses, io.delivery_goals, io.messages,
		io.last_viewed_by_hub, io.last_viewed_by_publication,
		io.created_at, io.updated_at, io.deleted_at`
)

type InsertionOrderRepository interface {
	Create(order *domain.InsertionOrder) error
	GetByID(id string) (*domain.InsertionOrder, error)
	// GetByCampaignAndPublication resolve o único pedido não deletado do par.
	GetByCampaignAndPublication(campaignID, publicationID string) (*domain.InsertionOrder, error)
	ListByCampaign(campaignID string, statuses []domain.OrderStatus) ([]*domain.InsertionOrder, error)
	ListByPublication(publicationID string, statuses []domain.OrderStatus) ([]*domain.InsertionOrder, error)
	UpdateStatus(id string, status domain.OrderStatus) error
	UpdatePlacementStatuses(id string, statuses map[string]domain.PlacementStatus) error
	UpdateMessages(id string, messages []domain.OrderMessage) error
	MarkViewed(id, side string, viewedAt time.Time) error
	SoftDelete(id string) error
}

type insertionOrderRepository struct {
	conn *postgres.Connection
}

func NewInsertionOrderRepository(conn *postgres.Connection) InsertionOrderRepository {
	return &insertionOrderRepository{
		conn: conn,
	}
}

func (r *insertionOrderRepository) Create(order *domain.InsertionOrder) error {
	placementJSON, err := json.Marshal(order.PlacementStatuses)
	if err != nil {
		return fmt.Errorf("erro ao serializar placement_statuses: %w", err)
	}

	goalsJSON, err := json.Marshal(order.DeliveryGoals)
	if err != nil {
		return fmt.Errorf("erro ao serializar delivery_goals: %w", err)
	}

	messagesJSON, err := json.Marshal(order.Messages)
	if err != nil {
		return fmt.Errorf("erro ao serializar messages: %w", err)
	}

	query, args, err := squirrel.
		Insert("insertion_orders").
		Columns(
			"id", "campaign_id", "publication_id", "hub_id", "status",
			"placement_statuses", "delivery_goals", "messages",
		).
		Values(
			order.ID,
			order.CampaignID,
			order.PublicationID,
			order.HubID,
			order.Status,
			placementJSON,
			goalsJSON,
			messagesJSON,
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

func (r *insertionOrderRepository) GetByID(id string) (*domain.InsertionOrder, error) {
	return r.getOne(squirrel.Eq{"io.id": id})
}

func (r *insertionOrderRepository) GetByCampaignAndPublication(campaignID, publicationID string) (*domain.InsertionOrder, error) {
	return r.getOne(squirrel.Eq{"io.campaign_id": campaignID, "io.publication_id": publicationID})
}

func (r *insertionOrderRepository) getOne(where squirrel.Eq) (*domain.InsertionOrder, error) {
	query, args, err := squirrel.
		Select(insertionOrderColumns).
		From(insertionOrdersTable).
		Where(where).
		Where("io.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	order, err := scanInsertionOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insertion order: %w", err)
	}

	return order, nil
}

func (r *insertionOrderRepository) ListByCampaign(campaignID string, statuses []domain.OrderStatus) ([]*domain.InsertionOrder, error) {
	return r.list(squirrel.Eq{"io.campaign_id": campaignID}, statuses)
}

func (r *insertionOrderRepository) ListByPublication(publicationID string, statuses []domain.OrderStatus) ([]*domain.InsertionOrder, error) {
	return r.list(squirrel.Eq{"io.publication_id": publicationID}, statuses)
}

func (r *insertionOrderRepository) list(where squirrel.Eq, statuses []domain.OrderStatus) ([]*domain.InsertionOrder, error) {
	builder := squirrel.
		Select(insertionOrderColumns).
		From(insertionOrdersTable).
		Where(where).
		Where("io.deleted_at IS NULL")

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"io.status": statuses})
	}

	query, args, err := builder.
		OrderBy("io.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.InsertionOrder, 0)
	for rows.Next() {
		order, err := scanInsertionOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insertion orders: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func (r *insertionOrderRepository) UpdateStatus(id string, status domain.OrderStatus) error {
	return r.update(id, func(builder squirrel.UpdateBuilder) squirrel.UpdateBuilder {
		return builder.Set("status", status)
	})
}

func (r *insertionOrderRepository) UpdatePlacementStatuses(id string, statuses map[string]domain.PlacementStatus) error {
	statusesJSON, err := json.Marshal(statuses)
	if err != nil {
		return fmt.Errorf("erro ao serializar placement_statuses: %w", err)
	}

	return r.update(id, func(builder squirrel.UpdateBuilder) squirrel.UpdateBuilder {
		return builder.Set("placement_statuses", statusesJSON)
	})
}

func (r *insertionOrderRepository) UpdateMessages(id string, messages []domain.OrderMessage) error {
	messagesJSON, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("erro ao serializar messages: %w", err)
	}

	return r.update(id, func(builder squirrel.UpdateBuilder) squirrel.UpdateBuilder {
		return builder.Set("messages", messagesJSON)
	})
}

func (r *insertionOrderRepository) MarkViewed(id, side string, viewedAt time.Time) error {
	column := "last_viewed_by_publication"
	if side == "hub" {
		column = "last_viewed_by_hub"
	}

	return r.update(id, func(builder squirrel.UpdateBuilder) squirrel.UpdateBuilder {
		return builder.Set(column, viewedAt)
	})
}

func (r *insertionOrderRepository) SoftDelete(id string) error {
	return r.update(id, func(builder squirrel.UpdateBuilder) squirrel.UpdateBuilder {
		return builder.Set("deleted_at", squirrel.Expr("NOW()"))
	})
}

func (r *insertionOrderRepository) update(id string, apply func(squirrel.UpdateBuilder) squirrel.UpdateBuilder) error {
	builder := squirrel.
		Update("insertion_orders").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL")

	query, args, err := apply(builder).
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

func scanInsertionOrder(row rowScanner) (*domain.InsertionOrder, error) {
	order := &domain.InsertionOrder{}
	var placementJSON, goalsJSON, messagesJSON []byte

	err := row.Scan(
		&order.ID,
		&order.CampaignID,
		&order.PublicationID,
		&order.HubID,
		&order.Status,
		&placementJSON,
		&goalsJSON,
		&messagesJSON,
		&order.LastViewedByHub,
		&order.LastViewedByPublication,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	order.PlacementStatuses = make(map[string]domain.PlacementStatus)
	if placementJSON != nil {
		if err := json.Unmarshal(placementJSON, &order.PlacementStatuses); err != nil {
			return nil, fmt.Errorf("erro ao deserializar placement_statuses: %w", err)
		}
	}

	order.DeliveryGoals = make(map[string]domain.DeliveryGoal)
	if goalsJSON != nil {
		if err := json.Unmarshal(goalsJSON, &order.DeliveryGoals); err != nil {
			return nil, fmt.Errorf("erro ao deserializar delivery_goals: %w", err)
		}
	}

	order.Messages = make([]domain.OrderMessage, 0)
	if messagesJSON != nil {
		if err := json.Unmarshal(messagesJSON, &order.Messages); err != nil {
			return nil, fmt.Errorf("erro ao deserializar messages: %w", err)
		}
	}

	return order, nil
}

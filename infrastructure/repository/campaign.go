package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/database/postgres"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
)

const campaignsTable = "campaigns c"

// CampaignRepository é somente leitura: o ciclo de vida da campanha é de
// responsabilidade do serviço de campanhas, aqui só consumimos inventário
// selecionado e timeline.
type CampaignRepository interface {
	GetByID(id string) (*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetByID(id string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.id, c.hub_id, c.name, c.start_date, c.end_date, c.selected_inventory, c.created_at").
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign := &domain.Campaign{}
	var inventoryJSON []byte

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&campaign.ID,
		&campaign.HubID,
		&campaign.Name,
		&campaign.Timeline.StartDate,
		&campaign.Timeline.EndDate,
		&inventoryJSON,
		&campaign.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	if inventoryJSON != nil {
		if err := json.Unmarshal(inventoryJSON, &campaign.SelectedInventory); err != nil {
			return nil, fmt.Errorf("erro ao deserializar selected_inventory: %w", err)
		}
	}

	return campaign, nil
}

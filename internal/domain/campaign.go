package domain

import (
	"math"
	"time"
)

// Timeline é o período de veiculação da campanha.
type Timeline struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// DurationMonths retorna a duração da campanha arredondada para o mês mais
// próximo, com mínimo de 1. Usado na derivação de metas digitais.
func (t Timeline) DurationMonths() int {
	days := t.EndDate.Sub(t.StartDate).Hours() / 24
	months := int(math.Round(days / 30.44))
	if months < 1 {
		return 1
	}
	return months
}

// Ended indica se a campanha já passou da data final.
func (t Timeline) Ended(now time.Time) bool {
	return t.EndDate.Before(now)
}

// InventoryItem é um placement selecionado do inventário de uma publicação.
// CurrentFrequency carrega share percentual para canais digitais e contagem
// de veiculações (sends/insertions/spots/episodes) para os demais.
type InventoryItem struct {
	ItemPath           string   `json:"item_path"`
	Name               string   `json:"name"`
	Channel            string   `json:"channel"`
	IsExcluded         bool     `json:"is_excluded"`
	CurrentFrequency   *float64 `json:"current_frequency,omitempty"`
	Quantity           *float64 `json:"quantity,omitempty"`
	MonthlyImpressions *float64 `json:"monthly_impressions,omitempty"`
}

// PublicationInventory agrupa os itens selecionados de uma publicação.
type PublicationInventory struct {
	PublicationID  string          `json:"publication_id"`
	InventoryItems []InventoryItem `json:"inventory_items"`
}

// SelectedInventory é a seleção completa de inventário da campanha.
type SelectedInventory struct {
	Publications []PublicationInventory `json:"publications"`
}

// Campaign é o registro de campanha consumido em modo somente leitura.
type Campaign struct {
	ID                string            `json:"id"`
	HubID             string            `json:"hub_id"`
	Name              string            `json:"name"`
	Timeline          Timeline          `json:"timeline"`
	SelectedInventory SelectedInventory `json:"selected_inventory"`
	CreatedAt         time.Time         `json:"created_at"`
}

// InventoryFor retorna os itens selecionados para uma publicação específica.
func (c *Campaign) InventoryFor(publicationID string) []InventoryItem {
	for _, pub := range c.SelectedInventory.Publications {
		if pub.PublicationID == publicationID {
			return pub.InventoryItems
		}
	}
	return nil
}

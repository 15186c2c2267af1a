package domain

import "time"

// OrderStatus é o estado contratual de um pedido de inserção.
type OrderStatus string

const (
	OrderStatusDraft        OrderStatus = "draft"
	OrderStatusSent         OrderStatus = "sent"
	OrderStatusConfirmed    OrderStatus = "confirmed"
	OrderStatusInProduction OrderStatus = "in_production"
	OrderStatusDelivered    OrderStatus = "delivered"
	OrderStatusRejected     OrderStatus = "rejected"
)

// orderTransitions define a máquina de estados do pedido. Estados terminais
// (delivered, rejected) não têm saída.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusDraft:        {OrderStatusSent},
	OrderStatusSent:         {OrderStatusConfirmed, OrderStatusRejected},
	OrderStatusConfirmed:    {OrderStatusInProduction, OrderStatusRejected},
	OrderStatusInProduction: {OrderStatusDelivered},
}

// CanTransition informa se a transição de status é permitida.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsActive indica se o pedido conta para as visões de pacing ativo.
func (s OrderStatus) IsActive() bool {
	return s == OrderStatusConfirmed || s == OrderStatusInProduction
}

// IsTerminal indica se o pedido chegou a um estado final.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusRejected
}

// ActiveOrderStatuses são os status considerados nas visões de entrega ativa.
var ActiveOrderStatuses = []OrderStatus{OrderStatusConfirmed, OrderStatusInProduction}

// PlacementStatus é o estado de um placement individual dentro do pedido.
type PlacementStatus string

const (
	PlacementStatusPending      PlacementStatus = "pending"
	PlacementStatusAccepted     PlacementStatus = "accepted"
	PlacementStatusRejected     PlacementStatus = "rejected"
	PlacementStatusInProduction PlacementStatus = "in_production"
	PlacementStatusDelivered    PlacementStatus = "delivered"
)

// ValidPlacementStatus valida o valor recebido na borda da API.
func ValidPlacementStatus(s PlacementStatus) bool {
	switch s {
	case PlacementStatusPending, PlacementStatusAccepted, PlacementStatusRejected,
		PlacementStatusInProduction, PlacementStatusDelivered:
		return true
	}
	return false
}

// DeliveryGoal é um override de meta configurado por placement.
type DeliveryGoal struct {
	GoalType  GoalType `json:"goal_type"`
	GoalValue float64  `json:"goal_value"`
}

// OrderMessage é uma mensagem do thread embutido no pedido.
type OrderMessage struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Side      string    `json:"side"` // hub | publication
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// InsertionOrder é a unidade contratual entre uma campanha e uma publicação.
// Existe no máximo um pedido não deletado por par (campanha, publicação).
type InsertionOrder struct {
	ID                      string                             `json:"id"`
	CampaignID              string                             `json:"campaign_id"`
	PublicationID           string                             `json:"publication_id"`
	HubID                   string                             `json:"hub_id"`
	Status                  OrderStatus                        `json:"status"`
	PlacementStatuses       map[string]PlacementStatus         `json:"placement_statuses"`
	DeliveryGoals           map[string]DeliveryGoal            `json:"delivery_goals"`
	Messages                []OrderMessage                     `json:"messages"`
	LastViewedByHub         *time.Time                         `json:"last_viewed_by_hub,omitempty"`
	LastViewedByPublication *time.Time                         `json:"last_viewed_by_publication,omitempty"`
	CreatedAt               time.Time                          `json:"created_at"`
	UpdatedAt               time.Time                          `json:"updated_at"`
	DeletedAt               *time.Time                         `json:"deleted_at,omitempty"`
}

// UnreadBy calcula mensagens não lidas para um dos lados do pedido.
func (o *InsertionOrder) UnreadBy(side string) int {
	var lastViewed *time.Time
	if side == "hub" {
		lastViewed = o.LastViewedByHub
	} else {
		lastViewed = o.LastViewedByPublication
	}

	unread := 0
	for _, m := range o.Messages {
		if m.Side == side {
			continue
		}
		if lastViewed == nil || m.CreatedAt.After(*lastViewed) {
			unread++
		}
	}
	return unread
}

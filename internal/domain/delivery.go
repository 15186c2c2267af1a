package domain

// GoalType diferencia metas contadas em impressões de metas contadas em
// veiculações (frequência).
type GoalType string

const (
	GoalTypeImpressions GoalType = "impressions"
	GoalTypeFrequency   GoalType = "frequency"
)

// PacingStatus são os quatro buckets ordenados de classificação de entrega.
type PacingStatus string

const (
	PacingAhead   PacingStatus = "ahead"
	PacingOnTrack PacingStatus = "on_track"
	PacingBehind  PacingStatus = "behind"
	PacingAtRisk  PacingStatus = "at_risk"
)

// ChannelGoal é a meta derivada para um canal de uma publicação.
type ChannelGoal struct {
	Channel     string   `json:"channel"`
	GoalType    GoalType `json:"goal_type"`
	VolumeLabel string   `json:"volume_label"`
	Goal        float64  `json:"goal"`
}

// ChannelDelivery é o resultado reconciliado de um canal:
// meta vs. entregue, com o percentual derivado (sem clamp — over-delivery
// legítima passa de 100).
type ChannelDelivery struct {
	Channel         string   `json:"channel"`
	GoalType        GoalType `json:"goal_type"`
	VolumeLabel     string   `json:"volume_label"`
	Goal            float64  `json:"goal"`
	Delivered       float64  `json:"delivered"`
	DeliveryPercent int      `json:"delivery_percent"`
}

// OrderDelivery é o resumo de entrega de um pedido.
type OrderDelivery struct {
	OrderID               string            `json:"order_id"`
	CampaignID            string            `json:"campaign_id"`
	PublicationID         string            `json:"publication_id"`
	Status                OrderStatus       `json:"status"`
	ByChannel             []ChannelDelivery `json:"by_channel"`
	OverallPercent        int               `json:"overall_percent"`
	Pacing                PacingStatus      `json:"pacing"`
	TotalExpectedReports  int               `json:"total_expected_reports"`
	TotalReportsSubmitted int64             `json:"total_reports_submitted"`
}

// DeliveryRollup é a soma de metas/entregas de vários pedidos, com os
// percentuais recalculados a partir das somas.
type DeliveryRollup struct {
	ByChannel             []ChannelDelivery `json:"by_channel"`
	OverallPercent        int               `json:"overall_percent"`
	Pacing                PacingStatus      `json:"pacing"`
	TotalExpectedReports  int               `json:"total_expected_reports"`
	TotalReportsSubmitted int64             `json:"total_reports_submitted"`
	Orders                int               `json:"orders"`
}

// PublicationDelivery é o rollup de uma publicação dentro da campanha.
type PublicationDelivery struct {
	PublicationID string `json:"publication_id"`
	DeliveryRollup
}

// CampaignDeliverySummary é a resposta do dashboard de campanha.
type CampaignDeliverySummary struct {
	CampaignID    string                `json:"campaign_id"`
	CampaignName  string                `json:"campaign_name"`
	Totals        DeliveryRollup        `json:"totals"`
	ByPublication []PublicationDelivery `json:"by_publication"`
	Orders        []*OrderDelivery      `json:"orders"`
}

// DailyTrendPoint é um ponto da série diária do dashboard, com CTR derivada.
type DailyTrendPoint struct {
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Units       int64   `json:"units"`
	Entries     int64   `json:"entries"`
}

// PublicationOrdersSummary agrega os pedidos ativos de uma publicação com a
// quebra de status de pacing.
type PublicationOrdersSummary struct {
	PublicationID   string               `json:"publication_id"`
	Rollup          DeliveryRollup       `json:"rollup"`
	Orders          []*OrderDelivery     `json:"orders"`
	StatusBreakdown map[PacingStatus]int `json:"status_breakdown"`
}

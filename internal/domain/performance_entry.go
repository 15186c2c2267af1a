package domain

import "time"

// EntrySource identifica a origem de uma entrada de performance.
type EntrySource string

const (
	SourceAutomated EntrySource = "automated"
	SourceManual    EntrySource = "manual"
)

// ValidationStatus marca a qualidade do dado reportado. Entradas com flag de
// qualidade continuam armazenadas, mas ficam fora de toda a agregação.
type ValidationStatus string

const (
	ValidationOK             ValidationStatus = "ok"
	ValidationBadPixel       ValidationStatus = "bad_pixel"
	ValidationInvalidOrderID ValidationStatus = "invalid_orderId"
	ValidationInvalidTraffic ValidationStatus = "invalid_traffic"
)

// TrackingPixelSentinel é o itemName gravado pelo ingestor de pixel quando o
// heartbeat não carrega um placement real.
const TrackingPixelSentinel = "tracking-pixel"

// EntryMetrics agrupa os contadores opcionais de uma observação.
type EntryMetrics struct {
	Impressions *int64 `json:"impressions,omitempty"`
	Clicks      *int64 `json:"clicks,omitempty"`
	Insertions  *int64 `json:"insertions,omitempty"`
	SpotsAired  *int64 `json:"spots_aired,omitempty"`
	Downloads   *int64 `json:"downloads,omitempty"`
	Circulation *int64 `json:"circulation,omitempty"`
}

// PerformanceEntry é uma observação atômica de entrega, reportada manualmente
// ou ingerida pelo tracking automático.
type PerformanceEntry struct {
	ID               string           `json:"id"`
	OrderID          string           `json:"order_id"`
	CampaignID       string           `json:"campaign_id"`
	PublicationID    string           `json:"publication_id"`
	ItemPath         string           `json:"item_path"`
	ItemName         string           `json:"item_name"`
	Channel          string           `json:"channel"`
	DateStart        time.Time        `json:"date_start"`
	DateEnd          *time.Time       `json:"date_end,omitempty"`
	Metrics          EntryMetrics     `json:"metrics"`
	Source           EntrySource      `json:"source"`
	ValidationStatus ValidationStatus `json:"validation_status"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeletedAt        *time.Time       `json:"deleted_at,omitempty"`
}

// IsQualityFlagged indica se a entrada deve ficar fora da matemática de entrega.
func (e *PerformanceEntry) IsQualityFlagged() bool {
	return e.ValidationStatus != ValidationOK
}

// IsPixelHeartbeat indica se a entrada é um heartbeat automático sem placement
// real. Heartbeats somam impressões mas não contam como report submetido.
func (e *PerformanceEntry) IsPixelHeartbeat() bool {
	return e.Source == SourceAutomated && (e.ItemName == "" || e.ItemName == TrackingPixelSentinel)
}

// ChannelAggregate é o resultado da passada única de agregação por
// (pedido, canal).
type ChannelAggregate struct {
	OrderID     string
	Channel     string
	ReportCount int64
	Impressions int64
	Clicks      int64
}

// DailyAggregate é um ponto da série diária de uma campanha.
type DailyAggregate struct {
	Date        time.Time `json:"date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Units       int64     `json:"units"`
	Entries     int64     `json:"entries"`
}

package delivery

import (
	"time"

	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/channels"
)

// OrderAggregates condensa as entradas de performance de um pedido:
// agregados por canal mais a contagem de sends deduplicada de newsletter.
type OrderAggregates struct {
	ByChannel map[string]*domain.ChannelAggregate
	// NewsletterSends conta datas (UTC) distintas por placement. Cada dia
	// com atividade de newsletter para um placement vale um send, mesmo
	// com várias linhas de opens/clicks rastreadas no mesmo dia.
	NewsletterSends int64
}

// AggregateEntries faz a passada única de agregação sobre as entradas já
// filtradas (não deletadas, validation ok), agrupando por (pedido, canal).
// Heartbeats automáticos de pixel somam impressões mas não contam como
// report submetido.
func AggregateEntries(entries []*domain.PerformanceEntry) map[string]*OrderAggregates {
	byOrder := make(map[string]*OrderAggregates)
	newsletterDays := make(map[string]map[string]struct{})

	for _, entry := range entries {
		if entry.DeletedAt != nil || entry.IsQualityFlagged() {
			// O repositório já filtra; o guard cobre chamadas com
			// entradas vindas de outra origem.
			continue
		}

		agg, ok := byOrder[entry.OrderID]
		if !ok {
			agg = &OrderAggregates{ByChannel: make(map[string]*domain.ChannelAggregate)}
			byOrder[entry.OrderID] = agg
		}

		channel := channels.Normalize(entry.Channel)
		chAgg, ok := agg.ByChannel[channel]
		if !ok {
			chAgg = &domain.ChannelAggregate{OrderID: entry.OrderID, Channel: channel}
			agg.ByChannel[channel] = chAgg
		}

		if !entry.IsPixelHeartbeat() {
			chAgg.ReportCount++
		}
		if entry.Metrics.Impressions != nil {
			chAgg.Impressions += *entry.Metrics.Impressions
		}
		if entry.Metrics.Clicks != nil {
			chAgg.Clicks += *entry.Metrics.Clicks
		}

		if channel == channels.ChannelNewsletter {
			days, ok := newsletterDays[entry.OrderID]
			if !ok {
				days = make(map[string]struct{})
				newsletterDays[entry.OrderID] = days
			}
			days[entry.ItemPath+"|"+entry.DateStart.UTC().Format(time.DateOnly)] = struct{}{}
		}
	}

	for orderID, days := range newsletterDays {
		byOrder[orderID].NewsletterSends = int64(len(days))
	}

	return byOrder
}

package delivery

import (
	"math"
	"sort"

	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/channels"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/pacing"
)

// Percent calcula o percentual arredondado com guarda de divisão por zero.
// Over-delivery passa de 100 de propósito: clamp só acontece na exibição.
func Percent(delivered, goal float64) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(delivered / goal * 100))
}

// ReconcileOrder junta as metas derivadas de um pedido com seus agregados de
// performance e produz o resumo {goal, delivered, deliveryPercent} por canal.
//
// A substituição de unidade por canal segue a tabela de normalização:
// digital entrega impressões somadas, newsletter entrega sends deduplicados
// por data, os demais canais entregam reportCount.
func ReconcileOrder(order *domain.InsertionOrder, goals GoalSet, agg *OrderAggregates) *domain.OrderDelivery {
	result := &domain.OrderDelivery{
		OrderID:              order.ID,
		CampaignID:           order.CampaignID,
		PublicationID:        order.PublicationID,
		Status:               order.Status,
		TotalExpectedReports: goals.TotalExpectedReports,
	}

	channelSet := make(map[string]struct{})
	for channel := range goals.ByChannel {
		channelSet[channel] = struct{}{}
	}
	if agg != nil {
		for channel := range agg.ByChannel {
			channelSet[channel] = struct{}{}
		}
	}

	names := make([]string, 0, len(channelSet))
	for channel := range channelSet {
		names = append(names, channel)
	}
	sort.Strings(names)

	percentSum := 0
	for _, channel := range names {
		cfg := channels.Lookup(channel)

		cd := domain.ChannelDelivery{
			Channel:     channel,
			GoalType:    cfg.GoalType,
			VolumeLabel: cfg.VolumeLabel,
		}

		if goal, ok := goals.ByChannel[channel]; ok {
			cd.Goal = goal.Goal
		}

		if agg != nil {
			if chAgg, ok := agg.ByChannel[channel]; ok {
				cd.Delivered = deliveredAmount(channel, cfg, chAgg, agg)
				// TotalReportsSubmitted soma sempre reportCount,
				// independente da substituição de unidade acima.
				result.TotalReportsSubmitted += chAgg.ReportCount
			}
		}

		cd.DeliveryPercent = Percent(cd.Delivered, cd.Goal)
		percentSum += cd.DeliveryPercent

		result.ByChannel = append(result.ByChannel, cd)
	}

	if len(result.ByChannel) > 0 {
		result.OverallPercent = int(math.Round(float64(percentSum) / float64(len(result.ByChannel))))
	}
	result.Pacing = pacing.Classify(result.OverallPercent)

	return result
}

func deliveredAmount(channel string, cfg channels.Config, chAgg *domain.ChannelAggregate, agg *OrderAggregates) float64 {
	switch {
	case cfg.IsDigital:
		return float64(chAgg.Impressions)
	case channel == channels.ChannelNewsletter:
		return float64(agg.NewsletterSends)
	default:
		return float64(chAgg.ReportCount)
	}
}

// Rollup soma goal e delivered por canal entre pedidos e recalcula os
// percentuais a partir das somas. Nunca é a média dos percentuais por pedido:
// isso dobraria o peso de placements pequenos.
func Rollup(orders []*domain.OrderDelivery) domain.DeliveryRollup {
	type channelSum struct {
		goalType    domain.GoalType
		volumeLabel string
		goal        float64
		delivered   float64
	}

	sums := make(map[string]*channelSum)
	rollup := domain.DeliveryRollup{Orders: len(orders)}

	for _, order := range orders {
		rollup.TotalExpectedReports += order.TotalExpectedReports
		rollup.TotalReportsSubmitted += order.TotalReportsSubmitted

		for _, cd := range order.ByChannel {
			sum, ok := sums[cd.Channel]
			if !ok {
				sum = &channelSum{goalType: cd.GoalType, volumeLabel: cd.VolumeLabel}
				sums[cd.Channel] = sum
			}
			sum.goal += cd.Goal
			sum.delivered += cd.Delivered
		}
	}

	names := make([]string, 0, len(sums))
	for channel := range sums {
		names = append(names, channel)
	}
	sort.Strings(names)

	percentSum := 0
	for _, channel := range names {
		sum := sums[channel]
		percent := Percent(sum.delivered, sum.goal)
		percentSum += percent

		rollup.ByChannel = append(rollup.ByChannel, domain.ChannelDelivery{
			Channel:         channel,
			GoalType:        sum.goalType,
			VolumeLabel:     sum.volumeLabel,
			Goal:            sum.goal,
			Delivered:       sum.delivered,
			DeliveryPercent: percent,
		})
	}

	if len(rollup.ByChannel) > 0 {
		rollup.OverallPercent = int(math.Round(float64(percentSum) / float64(len(rollup.ByChannel))))
	}
	rollup.Pacing = pacing.Classify(rollup.OverallPercent)

	return rollup
}

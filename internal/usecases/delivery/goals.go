package delivery

import (
	"math"

	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/channels"
)

// defaultShare é o share percentual assumido quando o item digital não traz
// currentFrequency nem quantity (modelo de pricing sem share explícito).
const defaultShare = 100

// GoalSet é o resultado da derivação de metas de uma publicação: meta
// acumulada por canal mais o total de placements que devem reportar.
type GoalSet struct {
	ByChannel            map[string]*domain.ChannelGoal
	TotalExpectedReports int
}

// DeriveGoals calcula a meta de entrega por canal a partir do inventário
// selecionado de uma publicação.
//
// Canais digitais: override explícito por placement (goalType impressions e
// valor positivo) vale verbatim; sem override, a meta mensal é
// round(monthlyImpressions × share/100) multiplicada pela duração em meses,
// onde share é currentFrequency ?? quantity ?? 100 (share percentual do
// inventário mensal nos modelos de pricing percentual).
//
// Demais canais: currentFrequency ?? quantity ?? 1, interpretado como
// contagem de veiculações (sends/insertions/spots/episodes).
func DeriveGoals(items []domain.InventoryItem, overrides map[string]domain.DeliveryGoal, durationMonths int) GoalSet {
	set := GoalSet{
		ByChannel: make(map[string]*domain.ChannelGoal),
	}

	for _, item := range items {
		if item.IsExcluded {
			continue
		}

		cfg := channels.Lookup(item.Channel)
		channel := channels.Normalize(item.Channel)

		// Todo placement não excluído conta como um report esperado,
		// mesmo quando contribui 0 para a meta do canal.
		set.TotalExpectedReports++

		goal, ok := set.ByChannel[channel]
		if !ok {
			goal = &domain.ChannelGoal{
				Channel:     channel,
				GoalType:    cfg.GoalType,
				VolumeLabel: cfg.VolumeLabel,
			}
			set.ByChannel[channel] = goal
		}

		if cfg.IsDigital {
			goal.Goal += digitalGoal(item, overrides, durationMonths)
			continue
		}

		goal.Goal += frequencyGoal(item)
	}

	return set
}

func digitalGoal(item domain.InventoryItem, overrides map[string]domain.DeliveryGoal, durationMonths int) float64 {
	if override, ok := overrides[item.ItemPath]; ok {
		if override.GoalType == domain.GoalTypeImpressions && override.GoalValue > 0 {
			return override.GoalValue
		}
	}

	if item.MonthlyImpressions == nil {
		// Sem taxa mensal não há meta derivável; o placement segue
		// contando em TotalExpectedReports.
		return 0
	}

	share := float64(defaultShare)
	if item.CurrentFrequency != nil {
		share = *item.CurrentFrequency
	} else if item.Quantity != nil {
		share = *item.Quantity
	}

	monthly := math.Round(*item.MonthlyImpressions * share / 100)
	return monthly * float64(durationMonths)
}

func frequencyGoal(item domain.InventoryItem) float64 {
	if item.CurrentFrequency != nil {
		return *item.CurrentFrequency
	}
	if item.Quantity != nil {
		return *item.Quantity
	}
	return 1
}

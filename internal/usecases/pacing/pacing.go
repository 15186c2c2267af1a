package pacing

import "github.com/vfg2006/adhub-delivery-api/internal/domain"

// Thresholds fixos de classificação. Centralizados aqui para virarem
// configuração por campanha no futuro sem tocar o reconciliador.
const (
	AheadThreshold   = 110
	OnTrackThreshold = 90
	BehindThreshold  = 70
)

// Classify mapeia um percentual de conclusão para um dos quatro buckets.
// Aplicado de forma idêntica no nível de pedido e de campanha.
func Classify(percent int) domain.PacingStatus {
	switch {
	case percent >= AheadThreshold:
		return domain.PacingAhead
	case percent >= OnTrackThreshold:
		return domain.PacingOnTrack
	case percent >= BehindThreshold:
		return domain.PacingBehind
	default:
		return domain.PacingAtRisk
	}
}

// ClampDisplayPercent limita o percentual para exibição em barras de
// progresso. O valor bruto nunca é clampado na reconciliação.
func ClampDisplayPercent(percent int) int {
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

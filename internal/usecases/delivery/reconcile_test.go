package delivery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name      string
		delivered float64
		goal      float64
		want      int
	}{
		{name: "entrega parcial", delivered: 3, goal: 4, want: 75},
		{name: "meta zero não divide", delivered: 500, goal: 0, want: 0},
		{name: "meta negativa não divide", delivered: 500, goal: -10, want: 0},
		{name: "over-delivery não clampada", delivered: 130, goal: 100, want: 130},
		{name: "arredondamento para cima", delivered: 2, goal: 3, want: 67},
		{name: "entrega completa", delivered: 100, goal: 100, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.delivered, tt.goal))
		})
	}
}

func testOrder() *domain.InsertionOrder {
	return &domain.InsertionOrder{
		ID:            "ORD1",
		CampaignID:    "CMP1",
		PublicationID: "PUB1",
		Status:        domain.OrderStatusInProduction,
	}
}

func TestReconcileOrder_UnitSubstitutionPerChannel(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	goals := GoalSet{
		ByChannel: map[string]*domain.ChannelGoal{
			"website": {Channel: "website", GoalType: domain.GoalTypeImpressions, VolumeLabel: "Impressions", Goal: 30000},
			"print":   {Channel: "print", GoalType: domain.GoalTypeFrequency, VolumeLabel: "Insertions", Goal: 4},
			"newsletter": {Channel: "newsletter", GoalType: domain.GoalTypeFrequency, VolumeLabel: "Sends", Goal: 6},
		},
		TotalExpectedReports: 3,
	}

	entries := []*domain.PerformanceEntry{
		entry("ORD1", "website", "pub1/banner", "Banner", domain.SourceAutomated, day,
			domain.EntryMetrics{Impressions: i64Ptr(27000), Clicks: i64Ptr(120)}),
		entry("ORD1", "print", "pub1/q1", "Anúncio Q1", domain.SourceManual, day,
			domain.EntryMetrics{Insertions: i64Ptr(1)}),
		entry("ORD1", "print", "pub1/q2", "Anúncio Q2", domain.SourceManual, day,
			domain.EntryMetrics{Insertions: i64Ptr(1)}),
		entry("ORD1", "print", "pub1/q3", "Anúncio Q3", domain.SourceManual, day,
			domain.EntryMetrics{Insertions: i64Ptr(1)}),
		entry("ORD1", "newsletter", "pub1/nl", "Envio", domain.SourceAutomated, day, domain.EntryMetrics{}),
		entry("ORD1", "newsletter", "pub1/nl", "Envio", domain.SourceAutomated, day.AddDate(0, 0, 1), domain.EntryMetrics{}),
		entry("ORD1", "newsletter", "pub1/nl", "Envio", domain.SourceAutomated, day.AddDate(0, 0, 2), domain.EntryMetrics{}),
	}

	result := ReconcileOrder(testOrder(), goals, AggregateEntries(entries)["ORD1"])

	byChannel := make(map[string]domain.ChannelDelivery)
	for _, cd := range result.ByChannel {
		byChannel[cd.Channel] = cd
	}

	// Digital entrega impressões somadas
	assert.Equal(t, float64(27000), byChannel["website"].Delivered)
	assert.Equal(t, 90, byChannel["website"].DeliveryPercent)

	// Print entrega contagem de reports
	assert.Equal(t, float64(3), byChannel["print"].Delivered)
	assert.Equal(t, 75, byChannel["print"].DeliveryPercent)

	// Newsletter entrega sends deduplicados por dia
	assert.Equal(t, float64(3), byChannel["newsletter"].Delivered)
	assert.Equal(t, 50, byChannel["newsletter"].DeliveryPercent)

	// Overall é a média dos percentuais por canal: (90+75+50)/3
	assert.Equal(t, 72, result.OverallPercent)
	assert.Equal(t, domain.PacingBehind, result.Pacing)

	// TotalReportsSubmitted soma reportCount de todos os canais
	assert.Equal(t, int64(7), result.TotalReportsSubmitted)
	assert.Equal(t, 3, result.TotalExpectedReports)
}

func TestReconcileOrder_ChannelWithDeliveryButNoGoal(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	goals := GoalSet{
		ByChannel: map[string]*domain.ChannelGoal{
			"print": {Channel: "print", GoalType: domain.GoalTypeFrequency, VolumeLabel: "Insertions", Goal: 2},
		},
		TotalExpectedReports: 1,
	}

	entries := []*domain.PerformanceEntry{
		entry("ORD1", "print", "pub1/q1", "Anúncio", domain.SourceManual, day, domain.EntryMetrics{Insertions: i64Ptr(1)}),
		entry("ORD1", "radio", "pub1/spot", "Spot extra", domain.SourceManual, day, domain.EntryMetrics{SpotsAired: i64Ptr(1)}),
	}

	result := ReconcileOrder(testOrder(), goals, AggregateEntries(entries)["ORD1"])

	// O canal sem meta aparece no resumo com percent 0 (guarda de divisão)
	assert.Len(t, result.ByChannel, 2)

	byChannel := make(map[string]domain.ChannelDelivery)
	for _, cd := range result.ByChannel {
		byChannel[cd.Channel] = cd
	}

	assert.Equal(t, float64(0), byChannel["radio"].Goal)
	assert.Equal(t, float64(1), byChannel["radio"].Delivered)
	assert.Equal(t, 0, byChannel["radio"].DeliveryPercent)
}

func TestReconcileOrder_NoEntries(t *testing.T) {
	goals := GoalSet{
		ByChannel: map[string]*domain.ChannelGoal{
			"website": {Channel: "website", GoalType: domain.GoalTypeImpressions, VolumeLabel: "Impressions", Goal: 10000},
		},
		TotalExpectedReports: 1,
	}

	result := ReconcileOrder(testOrder(), goals, nil)

	assert.Len(t, result.ByChannel, 1)
	assert.Equal(t, float64(0), result.ByChannel[0].Delivered)
	assert.Equal(t, 0, result.OverallPercent)
	assert.Equal(t, domain.PacingAtRisk, result.Pacing)
	assert.Equal(t, int64(0), result.TotalReportsSubmitted)
}

func TestRollup_RecomputesFromSums(t *testing.T) {
	orders := []*domain.OrderDelivery{
		{
			OrderID: "ORD1",
			ByChannel: []domain.ChannelDelivery{
				{Channel: "website", GoalType: domain.GoalTypeImpressions, VolumeLabel: "Impressions",
					Goal: 1000, Delivered: 1000, DeliveryPercent: 100},
			},
			TotalExpectedReports:  1,
			TotalReportsSubmitted: 1,
		},
		{
			OrderID: "ORD2",
			ByChannel: []domain.ChannelDelivery{
				{Channel: "website", GoalType: domain.GoalTypeImpressions, VolumeLabel: "Impressions",
					Goal: 9000, Delivered: 4500, DeliveryPercent: 50},
			},
			TotalExpectedReports:  2,
			TotalReportsSubmitted: 1,
		},
	}

	rollup := Rollup(orders)

	// 5500/10000 = 55%, e nunca a média dos percentuais (75%)
	assert.Len(t, rollup.ByChannel, 1)
	assert.Equal(t, float64(10000), rollup.ByChannel[0].Goal)
	assert.Equal(t, float64(5500), rollup.ByChannel[0].Delivered)
	assert.Equal(t, 55, rollup.ByChannel[0].DeliveryPercent)
	assert.Equal(t, 55, rollup.OverallPercent)
	assert.Equal(t, domain.PacingAtRisk, rollup.Pacing)

	assert.Equal(t, 2, rollup.Orders)
	assert.Equal(t, 3, rollup.TotalExpectedReports)
	assert.Equal(t, int64(2), rollup.TotalReportsSubmitted)
}

func TestRollup_MultiChannel(t *testing.T) {
	orders := []*domain.OrderDelivery{
		{
			OrderID: "ORD1",
			ByChannel: []domain.ChannelDelivery{
				{Channel: "website", GoalType: domain.GoalTypeImpressions, VolumeLabel: "Impressions",
					Goal: 10000, Delivered: 11000},
				{Channel: "print", GoalType: domain.GoalTypeFrequency, VolumeLabel: "Insertions",
					Goal: 4, Delivered: 4},
			},
		},
		{
			OrderID: "ORD2",
			ByChannel: []domain.ChannelDelivery{
				{Channel: "print", GoalType: domain.GoalTypeFrequency, VolumeLabel: "Insertions",
					Goal: 2, Delivered: 1},
			},
		},
	}

	rollup := Rollup(orders)

	byChannel := make(map[string]domain.ChannelDelivery)
	for _, cd := range rollup.ByChannel {
		byChannel[cd.Channel] = cd
	}

	assert.Equal(t, 110, byChannel["website"].DeliveryPercent)
	// Print: 5/6 ≈ 83%
	assert.Equal(t, 83, byChannel["print"].DeliveryPercent)
	// Overall: round((110+83)/2) = 97
	assert.Equal(t, 97, rollup.OverallPercent)
	assert.Equal(t, domain.PacingOnTrack, rollup.Pacing)
}

func TestRollup_Empty(t *testing.T) {
	rollup := Rollup(nil)

	assert.Empty(t, rollup.ByChannel)
	assert.Equal(t, 0, rollup.OverallPercent)
	assert.Equal(t, domain.PacingAtRisk, rollup.Pacing)
	assert.Equal(t, 0, rollup.Orders)
}

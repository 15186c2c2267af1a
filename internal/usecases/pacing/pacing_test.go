package pacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		want    domain.PacingStatus
	}{
		{name: "exatamente no threshold de ahead", percent: 110, want: domain.PacingAhead},
		{name: "um ponto abaixo de ahead ainda é on_track", percent: 109, want: domain.PacingOnTrack},
		{name: "exatamente no threshold de on_track", percent: 90, want: domain.PacingOnTrack},
		{name: "um ponto abaixo de on_track é behind", percent: 89, want: domain.PacingBehind},
		{name: "exatamente no threshold de behind", percent: 70, want: domain.PacingBehind},
		{name: "um ponto abaixo de behind é at_risk", percent: 69, want: domain.PacingAtRisk},
		{name: "zero é at_risk", percent: 0, want: domain.PacingAtRisk},
		{name: "over-delivery extrema segue ahead", percent: 250, want: domain.PacingAhead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.percent))
		})
	}
}

func TestClampDisplayPercent(t *testing.T) {
	assert.Equal(t, 100, ClampDisplayPercent(130))
	assert.Equal(t, 100, ClampDisplayPercent(100))
	assert.Equal(t, 75, ClampDisplayPercent(75))
	assert.Equal(t, 0, ClampDisplayPercent(-5))
}

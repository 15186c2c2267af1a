package channels

import (
	"strings"

	"github.com/vfg2006/adhub-delivery-api/internal/domain"
)

// Config normaliza um canal para a unidade de volume e o tipo de meta usados
// nos dois lados da razão meta/entregue. Derivação de meta e derivação de
// entregue DEVEM consultar a mesma tabela para não misturar unidades.
type Config struct {
	IsDigital   bool
	VolumeLabel string
	GoalType    domain.GoalType
}

const (
	ChannelWebsite    = "website"
	ChannelStreaming  = "streaming"
	ChannelNewsletter = "newsletter"
	ChannelPodcast    = "podcast"
	ChannelRadio      = "radio"
	ChannelPrint      = "print"
)

var table = map[string]Config{
	ChannelWebsite:    {IsDigital: true, VolumeLabel: "Impressions", GoalType: domain.GoalTypeImpressions},
	ChannelStreaming:  {IsDigital: true, VolumeLabel: "Impressions", GoalType: domain.GoalTypeImpressions},
	ChannelNewsletter: {IsDigital: false, VolumeLabel: "Sends", GoalType: domain.GoalTypeFrequency},
	ChannelPodcast:    {IsDigital: false, VolumeLabel: "Episodes", GoalType: domain.GoalTypeFrequency},
	ChannelRadio:      {IsDigital: false, VolumeLabel: "Spots", GoalType: domain.GoalTypeFrequency},
	ChannelPrint:      {IsDigital: false, VolumeLabel: "Insertions", GoalType: domain.GoalTypeFrequency},
}

// Lookup resolve a configuração de um canal. Canais desconhecidos caem no
// rótulo genérico "Units" com meta por frequência.
func Lookup(channel string) Config {
	if cfg, ok := table[Normalize(channel)]; ok {
		return cfg
	}
	return Config{IsDigital: false, VolumeLabel: "Units", GoalType: domain.GoalTypeFrequency}
}

// Normalize padroniza o identificador de canal para agrupamento.
func Normalize(channel string) string {
	return strings.ToLower(strings.TrimSpace(channel))
}

// IsDigital é um atalho para o conjunto digital {website, streaming}.
func IsDigital(channel string) bool {
	return Lookup(channel).IsDigital
}

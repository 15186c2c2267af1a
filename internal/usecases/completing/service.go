package completing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/repository"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/channels"
)

var (
	ErrOrderNotFound    = errors.New("pedido de inserção não encontrado")
	ErrCampaignNotFound = errors.New("campanha não encontrada")
)

// CompletionResult é o retorno da verificação de fim de campanha.
type CompletionResult struct {
	Completed int `json:"completed"`
}

// Completer fecha placements digitais de pedidos cuja campanha já terminou.
// É invocado de forma preguiçosa na leitura do pedido, nunca por scheduler.
type Completer interface {
	CheckDigitalPlacementsForCampaignEnd(orderID string) (*CompletionResult, error)
}

type Service struct {
	orderRepo    repository.InsertionOrderRepository
	campaignRepo repository.CampaignRepository
	now          func() time.Time
}

func NewService(
	orderRepo repository.InsertionOrderRepository,
	campaignRepo repository.CampaignRepository,
) *Service {
	return &Service{
		orderRepo:    orderRepo,
		campaignRepo: campaignRepo,
		now:          time.Now,
	}
}

// CheckDigitalPlacementsForCampaignEnd transiciona para delivered todo
// placement digital não terminal de um pedido cuja campanha já passou da data
// final. Idempotente: com tudo já entregue não há escrita e o retorno é 0.
//
// Invocações concorrentes podem observar o mesmo estado anterior e emitir
// escritas redundantes; o estado alvo é idempotente, então o efeito é o mesmo.
func (s *Service) CheckDigitalPlacementsForCampaignEnd(orderID string) (*CompletionResult, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pedido")
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	campaign, err := s.campaignRepo.GetByID(order.CampaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanha")
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	if !campaign.Timeline.Ended(s.now()) {
		return &CompletionResult{Completed: 0}, nil
	}

	channelByPath := make(map[string]string)
	for _, item := range campaign.InventoryFor(order.PublicationID) {
		channelByPath[item.ItemPath] = item.Channel
	}

	completed := 0
	statuses := make(map[string]domain.PlacementStatus, len(order.PlacementStatuses))
	for placementID, status := range order.PlacementStatuses {
		statuses[placementID] = status

		if !channels.IsDigital(channelByPath[placementID]) {
			continue
		}
		if status != domain.PlacementStatusAccepted && status != domain.PlacementStatusInProduction {
			continue
		}

		statuses[placementID] = domain.PlacementStatusDelivered
		completed++
	}

	if completed == 0 {
		return &CompletionResult{Completed: 0}, nil
	}

	if err := s.orderRepo.UpdatePlacementStatuses(order.ID, statuses); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar placements entregues")
	}

	logrus.WithFields(logrus.Fields{
		"order_id":  order.ID,
		"completed": completed,
	}).Info("completing: digital placements auto-marked as delivered after campaign end")

	return &CompletionResult{Completed: completed}, nil
}

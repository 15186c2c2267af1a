package ordering

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/notifier"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/repository"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"github.com/vfg2006/adhub-delivery-api/pkg/utils"
)

var (
	ErrOrderNotFound     = errors.New("pedido de inserção não encontrado")
	ErrOrderExists       = errors.New("já existe um pedido ativo para esta publicação na campanha")
	ErrCampaignNotFound  = errors.New("campanha não encontrada")
	ErrNoInventory       = errors.New("a campanha não tem inventário selecionado para esta publicação")
	ErrInvalidTransition = errors.New("transição de status não permitida")
	ErrDraftNotVisible   = errors.New("pedidos em draft não aceitam mensagens nem atualização de placement")
)

// PlacementUpdateResult sinaliza quando a mudança de um placement cascateou
// para o status do pedido.
type PlacementUpdateResult struct {
	OrderConfirmed bool `json:"orderConfirmed"`
	OrderRejected  bool `json:"orderRejected"`
}

// OrderService cobre o ciclo de vida do pedido: máquina de estados, updates
// de placement com cascade e o thread de mensagens embutido.
type OrderService interface {
	CreateOrder(campaignID, publicationID string) (*domain.InsertionOrder, error)
	GetOrder(campaignID, publicationID string) (*domain.InsertionOrder, error)
	TransitionStatus(campaignID, publicationID string, to domain.OrderStatus) (*domain.InsertionOrder, error)
	UpdatePlacementStatus(campaignID, publicationID, placementID string, status domain.PlacementStatus, notes string) (*PlacementUpdateResult, error)
	AppendMessage(campaignID, publicationID, senderID, side, body string) (*domain.InsertionOrder, error)
	MarkViewed(campaignID, publicationID, side string) error
	RescindOrder(campaignID, publicationID string) error
}

type Service struct {
	orderRepo    repository.InsertionOrderRepository
	campaignRepo repository.CampaignRepository
	notifier     notifier.Notifier
}

func NewService(
	orderRepo repository.InsertionOrderRepository,
	campaignRepo repository.CampaignRepository,
	notif notifier.Notifier,
) OrderService {
	return &Service{
		orderRepo:    orderRepo,
		campaignRepo: campaignRepo,
		notifier:     notif,
	}
}

// CreateOrder materializa o pedido em draft a partir do inventário selecionado
// da campanha: um placement pendente por item não excluído. Vale o invariante
// de no máximo um pedido não deletado por par (campanha, publicação).
func (s *Service) CreateOrder(campaignID, publicationID string) (*domain.InsertionOrder, error) {
	existing, err := s.orderRepo.GetByCampaignAndPublication(campaignID, publicationID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao verificar pedido existente")
	}
	if existing != nil {
		return nil, ErrOrderExists
	}

	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanha")
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	statuses := make(map[string]domain.PlacementStatus)
	for _, item := range campaign.InventoryFor(publicationID) {
		if item.IsExcluded {
			continue
		}
		statuses[item.ItemPath] = domain.PlacementStatusPending
	}
	if len(statuses) == 0 {
		return nil, ErrNoInventory
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID do pedido")
	}

	now := time.Now().UTC()
	order := &domain.InsertionOrder{
		ID:                id,
		CampaignID:        campaignID,
		PublicationID:     publicationID,
		HubID:             campaign.HubID,
		Status:            domain.OrderStatusDraft,
		PlacementStatuses: statuses,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, errors.Wrap(err, "erro ao criar pedido")
	}

	s.notify(notifier.Event{
		Type:          notifier.EventOrderCreated,
		OrderID:       order.ID,
		CampaignID:    campaignID,
		PublicationID: publicationID,
	})

	return order, nil
}

func (s *Service) GetOrder(campaignID, publicationID string) (*domain.InsertionOrder, error) {
	order, err := s.orderRepo.GetByCampaignAndPublication(campaignID, publicationID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pedido")
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) TransitionStatus(campaignID, publicationID string, to domain.OrderStatus) (*domain.InsertionOrder, error) {
	order, err := s.GetOrder(campaignID, publicationID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransition(to) {
		return nil, errors.Wrapf(ErrInvalidTransition, "%s -> %s", order.Status, to)
	}

	if err := s.orderRepo.UpdateStatus(order.ID, to); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar status do pedido")
	}
	order.Status = to

	s.notify(notifier.Event{
		Type:          notifier.EventOrderStatusChanged,
		OrderID:       order.ID,
		CampaignID:    order.CampaignID,
		PublicationID: order.PublicationID,
		Detail:        string(to),
	})

	return order, nil
}

// UpdatePlacementStatus aplica a transição de um placement e cascateia para o
// pedido quando o resultado é unânime: todos aceitos confirma um pedido sent,
// todos rejeitados rejeita.
func (s *Service) UpdatePlacementStatus(campaignID, publicationID, placementID string, status domain.PlacementStatus, notes string) (*PlacementUpdateResult, error) {
	if !domain.ValidPlacementStatus(status) {
		return nil, errors.Errorf("status de placement inválido: %s", status)
	}

	order, err := s.GetOrder(campaignID, publicationID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderStatusDraft {
		return nil, ErrDraftNotVisible
	}

	statuses := make(map[string]domain.PlacementStatus, len(order.PlacementStatuses))
	for id, st := range order.PlacementStatuses {
		statuses[id] = st
	}
	statuses[placementID] = status

	if err := s.orderRepo.UpdatePlacementStatuses(order.ID, statuses); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar status do placement")
	}

	result := &PlacementUpdateResult{}

	allAccepted := len(statuses) > 0
	allRejected := len(statuses) > 0
	for _, st := range statuses {
		if st != domain.PlacementStatusAccepted {
			allAccepted = false
		}
		if st != domain.PlacementStatusRejected {
			allRejected = false
		}
	}

	switch {
	case allAccepted && order.Status.CanTransition(domain.OrderStatusConfirmed):
		if err := s.orderRepo.UpdateStatus(order.ID, domain.OrderStatusConfirmed); err != nil {
			return nil, errors.Wrap(err, "erro ao confirmar pedido")
		}
		result.OrderConfirmed = true
	case allRejected && order.Status.CanTransition(domain.OrderStatusRejected):
		if err := s.orderRepo.UpdateStatus(order.ID, domain.OrderStatusRejected); err != nil {
			return nil, errors.Wrap(err, "erro ao rejeitar pedido")
		}
		result.OrderRejected = true
	}

	s.notify(notifier.Event{
		Type:          notifier.EventPlacementStatusChanged,
		OrderID:       order.ID,
		CampaignID:    order.CampaignID,
		PublicationID: order.PublicationID,
		Detail:        notes,
	})

	return result, nil
}

func (s *Service) AppendMessage(campaignID, publicationID, senderID, side, body string) (*domain.InsertionOrder, error) {
	order, err := s.GetOrder(campaignID, publicationID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderStatusDraft {
		return nil, ErrDraftNotVisible
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da mensagem")
	}

	order.Messages = append(order.Messages, domain.OrderMessage{
		ID:        id,
		SenderID:  senderID,
		Side:      side,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	})

	if err := s.orderRepo.UpdateMessages(order.ID, order.Messages); err != nil {
		return nil, errors.Wrap(err, "erro ao salvar mensagem")
	}

	s.notify(notifier.Event{
		Type:          notifier.EventOrderMessage,
		OrderID:       order.ID,
		CampaignID:    order.CampaignID,
		PublicationID: order.PublicationID,
	})

	return order, nil
}

func (s *Service) MarkViewed(campaignID, publicationID, side string) error {
	order, err := s.GetOrder(campaignID, publicationID)
	if err != nil {
		return err
	}
	return s.orderRepo.MarkViewed(order.ID, side, time.Now().UTC())
}

func (s *Service) RescindOrder(campaignID, publicationID string) error {
	order, err := s.GetOrder(campaignID, publicationID)
	if err != nil {
		return err
	}
	return s.orderRepo.SoftDelete(order.ID)
}

// notify dispara a notificação em melhor esforço: falha é logada e nunca
// propagada ao chamador.
func (s *Service) notify(event notifier.Event) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(event); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event":    event.Type,
			"order_id": event.OrderID,
		}).Warn("ordering: falha ao enviar notificação")
	}
}

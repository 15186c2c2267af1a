package delivery

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/repository"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/pacing"
)

var (
	ErrCampaignNotFound = errors.New("campanha não encontrada")
	ErrOrderNotFound    = errors.New("pedido de inserção não encontrado")
)

// Reconciler expõe as leituras de entrega consumidas pelos dashboards. Tudo é
// recomputado a cada leitura sobre as entradas armazenadas: não há cache a
// invalidar.
type Reconciler interface {
	OrderSummary(campaignID, publicationID string) (*domain.OrderDelivery, error)
	CampaignSummary(campaignID string) (*domain.CampaignDeliverySummary, error)
	CampaignDailyTrend(campaignID string, startDate, endDate time.Time) ([]*domain.DailyTrendPoint, error)
	PublicationSummary(publicationID string) (*domain.PublicationOrdersSummary, error)
}

type Service struct {
	orderRepo    repository.InsertionOrderRepository
	campaignRepo repository.CampaignRepository
	entryRepo    repository.PerformanceEntryRepository
}

func NewService(
	orderRepo repository.InsertionOrderRepository,
	campaignRepo repository.CampaignRepository,
	entryRepo repository.PerformanceEntryRepository,
) Reconciler {
	return &Service{
		orderRepo:    orderRepo,
		campaignRepo: campaignRepo,
		entryRepo:    entryRepo,
	}
}

// reportingOrderStatuses inclui pedidos entregues: o dashboard de campanha é
// histórico. As visões de pacing ativo usam domain.ActiveOrderStatuses.
var reportingOrderStatuses = []domain.OrderStatus{
	domain.OrderStatusConfirmed,
	domain.OrderStatusInProduction,
	domain.OrderStatusDelivered,
}

func (s *Service) OrderSummary(campaignID, publicationID string) (*domain.OrderDelivery, error) {
	order, err := s.orderRepo.GetByCampaignAndPublication(campaignID, publicationID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pedido")
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanha")
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	entries, err := s.entryRepo.ListActiveByOrderIDs([]string{order.ID})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar entradas de performance")
	}

	goals := DeriveGoals(
		campaign.InventoryFor(order.PublicationID),
		order.DeliveryGoals,
		campaign.Timeline.DurationMonths(),
	)

	return ReconcileOrder(order, goals, AggregateEntries(entries)[order.ID]), nil
}

func (s *Service) CampaignSummary(campaignID string) (*domain.CampaignDeliverySummary, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanha")
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	orders, err := s.orderRepo.ListByCampaign(campaignID, reportingOrderStatuses)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pedidos da campanha")
	}

	deliveries, err := s.reconcileOrders(campaign, orders)
	if err != nil {
		return nil, err
	}

	summary := &domain.CampaignDeliverySummary{
		CampaignID:   campaign.ID,
		CampaignName: campaign.Name,
		Totals:       Rollup(deliveries),
		Orders:       deliveries,
	}

	byPublication := make(map[string][]*domain.OrderDelivery)
	publicationIDs := make([]string, 0)
	for _, d := range deliveries {
		if _, ok := byPublication[d.PublicationID]; !ok {
			publicationIDs = append(publicationIDs, d.PublicationID)
		}
		byPublication[d.PublicationID] = append(byPublication[d.PublicationID], d)
	}

	for _, publicationID := range publicationIDs {
		summary.ByPublication = append(summary.ByPublication, domain.PublicationDelivery{
			PublicationID:  publicationID,
			DeliveryRollup: Rollup(byPublication[publicationID]),
		})
	}

	return summary, nil
}

func (s *Service) CampaignDailyTrend(campaignID string, startDate, endDate time.Time) ([]*domain.DailyTrendPoint, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanha")
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	aggregates, err := s.entryRepo.DailyAggregates(campaignID, startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar série diária")
	}

	points := make([]*domain.DailyTrendPoint, 0, len(aggregates))
	for _, agg := range aggregates {
		point := &domain.DailyTrendPoint{
			Date:        agg.Date.Format(time.DateOnly),
			Impressions: agg.Impressions,
			Clicks:      agg.Clicks,
			Units:       agg.Units,
			Entries:     agg.Entries,
		}
		if agg.Impressions > 0 {
			point.CTR = float64(agg.Clicks) / float64(agg.Impressions)
		}
		points = append(points, point)
	}

	return points, nil
}

func (s *Service) PublicationSummary(publicationID string) (*domain.PublicationOrdersSummary, error) {
	orders, err := s.orderRepo.ListByPublication(publicationID, domain.ActiveOrderStatuses)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pedidos da publicação")
	}

	// Uma busca de campanha por ID distinto e uma única query de entradas
	// para o lote inteiro; pedidos de campanha desconhecida ficam de fora.
	campaigns := make(map[string]*domain.Campaign)
	for _, order := range orders {
		if _, ok := campaigns[order.CampaignID]; ok {
			continue
		}
		campaign, err := s.campaignRepo.GetByID(order.CampaignID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar campanha do pedido")
		}
		campaigns[order.CampaignID] = campaign
	}

	kept := make([]*domain.InsertionOrder, 0, len(orders))
	orderIDs := make([]string, 0, len(orders))
	for _, order := range orders {
		if campaigns[order.CampaignID] == nil {
			continue
		}
		kept = append(kept, order)
		orderIDs = append(orderIDs, order.ID)
	}

	var entries []*domain.PerformanceEntry
	if len(orderIDs) > 0 {
		entries, err = s.entryRepo.ListActiveByOrderIDs(orderIDs)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar entradas de performance")
		}
	}

	aggregates := AggregateEntries(entries)

	deliveries := make([]*domain.OrderDelivery, 0, len(kept))
	for _, order := range kept {
		campaign := campaigns[order.CampaignID]
		goals := DeriveGoals(
			campaign.InventoryFor(order.PublicationID),
			order.DeliveryGoals,
			campaign.Timeline.DurationMonths(),
		)
		deliveries = append(deliveries, ReconcileOrder(order, goals, aggregates[order.ID]))
	}

	summary := &domain.PublicationOrdersSummary{
		PublicationID:   publicationID,
		Rollup:          Rollup(deliveries),
		Orders:          deliveries,
		StatusBreakdown: make(map[domain.PacingStatus]int),
	}

	for _, d := range deliveries {
		summary.StatusBreakdown[pacing.Classify(d.OverallPercent)]++
	}

	return summary, nil
}

// reconcileOrders resolve metas e agregados para um lote de pedidos da mesma
// campanha com uma única query de entradas (sem N+1 por pedido).
func (s *Service) reconcileOrders(campaign *domain.Campaign, orders []*domain.InsertionOrder) ([]*domain.OrderDelivery, error) {
	if len(orders) == 0 {
		return []*domain.OrderDelivery{}, nil
	}

	orderIDs := make([]string, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}

	entries, err := s.entryRepo.ListActiveByOrderIDs(orderIDs)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar entradas de performance")
	}

	aggregates := AggregateEntries(entries)
	months := campaign.Timeline.DurationMonths()

	deliveries := make([]*domain.OrderDelivery, 0, len(orders))
	for _, order := range orders {
		goals := DeriveGoals(campaign.InventoryFor(order.PublicationID), order.DeliveryGoals, months)
		deliveries = append(deliveries, ReconcileOrder(order, goals, aggregates[order.ID]))
	}

	return deliveries, nil
}

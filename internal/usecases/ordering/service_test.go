package ordering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:    "CMP1",
		HubID: "HUB1",
		Timeline: domain.Timeline{
			StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		SelectedInventory: domain.SelectedInventory{
			Publications: []domain.PublicationInventory{
				{
					PublicationID: "PUB1",
					InventoryItems: []domain.InventoryItem{
						{ItemPath: "pub1/homepage", Channel: "website"},
						{ItemPath: "pub1/print-q1", Channel: "print"},
						{ItemPath: "pub1/print-q2", Channel: "print", IsExcluded: true},
					},
				},
			},
		},
	}
}

func testOrder(status domain.OrderStatus, placements map[string]domain.PlacementStatus) *domain.InsertionOrder {
	return &domain.InsertionOrder{
		ID:                "ORD1",
		CampaignID:        "CMP1",
		PublicationID:     "PUB1",
		HubID:             "HUB1",
		Status:            status,
		PlacementStatuses: placements,
	}
}

func TestCreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockOrderRepo, mockCampaignRepo, nil)

	mockOrderRepo.EXPECT().GetByCampaignAndPublication("CMP1", "PUB1").Return(nil, nil)
	mockCampaignRepo.EXPECT().GetByID("CMP1").Return(testCampaign(), nil)
	mockOrderRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(order *domain.InsertionOrder) error {
			assert.NotEmpty(t, order.ID)
			assert.Equal(t, "HUB1", order.HubID)
			assert.Equal(t, domain.OrderStatusDraft, order.Status)
			// Um placement pendente por item não excluído
			assert.Equal(t, map[string]domain.PlacementStatus{
				"pub1/homepage": domain.PlacementStatusPending,
				"pub1/print-q1": domain.PlacementStatusPending,
			}, order.PlacementStatuses)
			return nil
		})

	order, err := service.CreateOrder("CMP1", "PUB1")

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDraft, order.Status)
}

func TestCreateOrder_AlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockOrderRepo, mockCampaignRepo, nil)

	mockOrderRepo.EXPECT().
		GetByCampaignAndPublication("CMP1", "PUB1").
		Return(testOrder(domain.OrderStatusSent, nil), nil)

	order, err := service.CreateOrder("CMP1", "PUB1")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrOrderExists)
}

func TestCreateOrder_CampaignNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockOrderRepo, mockCampaignRepo, nil)

	mockOrderRepo.EXPECT().GetByCampaignAndPublication("CMP-X", "PUB1").Return(nil, nil)
	mockCampaignRepo.EXPECT().GetByID("CMP-X").Return(nil, nil)

	order, err := service.CreateOrder("CMP-X", "PUB1")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestCreateOrder_NoInventoryForPublication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockOrderRepo, mockCampaignRepo, nil)

	mockOrderRepo.EXPECT().GetByCampaignAndPublication("CMP1", "PUB-OUTRA").Return(nil, nil)
	mockCampaignRepo.EXPECT().GetByID("CMP1").Return(testCampaign(), nil)

	order, err := service.CreateOrder("CMP1", "PUB-OUTRA")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrNoInventory)
}

func TestTransitionStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}{
		{name: "sent para confirmed", from: domain.OrderStatusSent, to: domain.OrderStatusConfirmed, allowed: true},
		{name: "confirmed para in_production", from: domain.OrderStatusConfirmed, to: domain.OrderStatusInProduction, allowed: true},
		{name: "in_production para delivered", from: domain.OrderStatusInProduction, to: domain.OrderStatusDelivered, allowed: true},
		{name: "confirmed ainda pode ser rejeitado", from: domain.OrderStatusConfirmed, to: domain.OrderStatusRejected, allowed: true},
		{name: "draft não pula para confirmed", from: domain.OrderStatusDraft, to: domain.OrderStatusConfirmed, allowed: false},
		{name: "delivered é terminal", from: domain.OrderStatusDelivered, to: domain.OrderStatusSent, allowed: false},
		{name: "in_production não pode ser rejeitado", from: domain.OrderStatusInProduction, to: domain.OrderStatusRejected, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
			service := NewService(mockOrderRepo, nil, nil)

			mockOrderRepo.EXPECT().
				GetByCampaignAndPublication("CMP1", "PUB1").
				Return(testOrder(tt.from, nil), nil)

			if tt.allowed {
				mockOrderRepo.EXPECT().UpdateStatus("ORD1", tt.to).Return(nil)
			}

			order, err := service.TransitionStatus("CMP1", "PUB1", tt.to)

			if tt.allowed {
				assert.NoError(t, err)
				assert.Equal(t, tt.to, order.Status)
			} else {
				assert.Nil(t, order)
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestTransitionStatus_OrderNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockOrderRepo, nil, nil)

	mockOrderRepo.EXPECT().GetByCampaignAndPublication("CMP1", "PUB-X").Return(nil, nil)

	order, err := service.TransitionStatus("CMP1", "PUB-X", domain.OrderStatusConfirmed)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdatePlacementStatus_CascadeConfirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockOrderRepo, nil, nil)

	// Último placement pendente sendo aceito
	order := testOrder(domain.OrderStatusSent, map[string]domain.PlacementStatus{
		"pub1/homepage": domain.PlacementStatusAccepted,
		"pub1/print-q1": domain.PlacementStatusPending,
	})

	mockOrderRepo.EXPECT().GetByCampaignAndPublication("CMP1", "PUB1").Return(order, nil)
	mockOrderRepo.EXPECT().
		UpdatePlacementStatuses("ORD1", map[string]domain.PlacementStatus{
			"pub1/homepage": domain.PlacementStatusAccepted,
			"pub1/print-q1": domain.PlacementStatusAccepted,
		}).
		Return(nil)
	mockOrderRepo.EXPECT().UpdateStatus("ORD1", domain.OrderStatusConfirmed).Return(nil)

	result, err := service.UpdatePlacementStatus("CMP1", "PUB1", "pub1/print-q1", domain.PlacementStatusAccepted, "")

	assert.NoError(t, err)
	assert.True(t, result.OrderConfirmed)
	assert.False(t, result.OrderRejected)
}

func TestUpdatePlacementStatus_CascadeReject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockOrderRepo, nil, nil)

	order := testOrder(domain.OrderStatusSent, map[string]domain.PlacementStatus{
		"pub1/homepage": domain.PlacementStatusRejected,
		"pub1/print-q1": domain.PlacementStatusPending,
	})

	mockOrderRepo.EXPECT().GetByCampaignAndPublication("CMP1", "PUB1").Return(order, nil)
	mockOrderRepo.EXPECT().UpdatePlacementStatuses("ORD1", gomock.Any()).Return(nil)
	mockOrderRepo.EXPECT().UpdateStatus("ORD1", domain.OrderStatusRejected).Return(nil)

	result, err := service.UpdatePlacementStatus("CMP1", "PUB1", "pub1/print-q1", domain.PlacementStatusRejected, "sem inventário disponível")

	assert.NoError(t, err)
	assert.False(t, result.OrderConfirmed)
	assert.True(t, result.OrderRejected)
}

func TestUpdatePlacementStatus_PartialNoCascade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockOrderRepo, nil, nil)

	order := testOrder(domain.OrderStatusSent, map[string]domain.PlacementStatus{
		"pub1/homepage": domain.PlacementStatusPending,
		"pub1/print-q1": domain.PlacementStatusPending,
	})

	mockOrderRepo.EXPECT().GetByCampaignAndPublication("CMP1", "PUB1").Return(order, nil)
	mockOrderRepo.EXPECT().UpdatePlacementStatuses("ORD1", gomock.Any()).Return(nil)
	// Nenhum UpdateStatus: o outro placement segue pendente

	result, err := service.UpdatePlacementStatus("CMP1", "PUB1", "pub1/homepage", domain.PlacementStatusAccepted, "")

	assert.NoError(t, err)
	assert.False(t, result.OrderConfirmed)
	assert.False(t, result.OrderRejected)
}

func TestUpdatePlacementStatus_MixedOutcomeNoCascade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockOrderRepo, nil, nil)

	// Um aceito, outro rejeitado: o pedido não cascateia em nenhuma direção
	order := testOrder(domain.OrderStatusSent, map[string]domain.PlacementStatus{
		"pub1/homepage": domain.PlacementStatusAccepted,
		"pub1/print-q1": domain.PlacementStatusPending,
	})

	mockOrderRepo.EXPECT().GetByCampaignAndPublication("CMP1", "PUB1").Return(order, nil)
	mockOrderRepo.EXPECT().UpdatePlacementStatuses("ORD1", gomock.Any()).Return(nil)

	result, err := service.UpdatePlacementStatus("CMP1", "PUB1", "pub1/print-q1", domain.PlacementStatusRejected, "")

	assert.NoError(t, err)
	assert.False(t, result.OrderConfirmed)
	assert.False(t, result.OrderRejected)
}

func TestUpdatePlacementStatus_DraftNotVisible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockOrderRepo, nil, nil)

	mockOrderRepo.EXPECT().
		GetByCampaignAndPublication("CMP1", "PUB1").
		Return(testOrder(domain.OrderStatusDraft, nil), nil)

	result, err := service.UpdatePlacementStatus("CMP1", "PUB1", "pub1/homepage", domain.PlacementStatusAccepted, "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrDraftNotVisible)
}

func TestUpdatePlacementStatus_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockOrderRepo, nil, nil)

	result, err := service.UpdatePlacementStatus("CMP1", "PUB1", "pub1/homepage", domain.PlacementStatus("aprovado"), "")

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestAppendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockOrderRepo, nil, nil)

	order := testOrder(domain.OrderStatusConfirmed, nil)

	mockOrderRepo.EXPECT().GetByCampaignAndPublication("CMP1", "PUB1").Return(order, nil)
	mockOrderRepo.EXPECT().
		UpdateMessages("ORD1", gomock.Any()).
		DoAndReturn(func(_ string, messages []domain.OrderMessage) error {
			assert.Len(t, messages, 1)
			assert.Equal(t, "USR1", messages[0].SenderID)
			assert.Equal(t, "hub", messages[0].Side)
			assert.Equal(t, "Podemos antecipar o preroll?", messages[0].Body)
			assert.NotEmpty(t, messages[0].ID)
			return nil
		})

	updated, err := service.AppendMessage("CMP1", "PUB1", "USR1", "hub", "Podemos antecipar o preroll?")

	assert.NoError(t, err)
	assert.Len(t, updated.Messages, 1)
}

func TestAppendMessage_DraftNotVisible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockOrderRepo, nil, nil)

	mockOrderRepo.EXPECT().
		GetByCampaignAndPublication("CMP1", "PUB1").
		Return(testOrder(domain.OrderStatusDraft, nil), nil)

	updated, err := service.AppendMessage("CMP1", "PUB1", "USR1", "hub", "olá")

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrDraftNotVisible)
}

func TestMarkViewed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockOrderRepo, nil, nil)

	mockOrderRepo.EXPECT().
		GetByCampaignAndPublication("CMP1", "PUB1").
		Return(testOrder(domain.OrderStatusConfirmed, nil), nil)
	mockOrderRepo.EXPECT().MarkViewed("ORD1", "publication", gomock.Any()).Return(nil)

	err := service.MarkViewed("CMP1", "PUB1", "publication")

	assert.NoError(t, err)
}

func TestRescindOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockOrderRepo, nil, nil)

	mockOrderRepo.EXPECT().
		GetByCampaignAndPublication("CMP1", "PUB1").
		Return(testOrder(domain.OrderStatusSent, nil), nil)
	mockOrderRepo.EXPECT().SoftDelete("ORD1").Return(nil)

	err := service.RescindOrder("CMP1", "PUB1")

	assert.NoError(t, err)
}

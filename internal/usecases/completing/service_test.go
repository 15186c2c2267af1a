package completing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID: "CMP1",
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
						{ItemPath: "pub1/preroll", Channel: "streaming"},
						{ItemPath: "pub1/print-q1", Channel: "print"},
					},
				},
			},
		},
	}
}

func testOrder(statuses map[string]domain.PlacementStatus) *domain.InsertionOrder {
	return &domain.InsertionOrder{
		ID:                "ORD1",
		CampaignID:        "CMP1",
		PublicationID:     "PUB1",
		Status:            domain.OrderStatusInProduction,
		PlacementStatuses: statuses,
	}
}

func TestCheckDigitalPlacementsForCampaignEnd_CompletesDigitalOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := NewService(mockOrderRepo, mockCampaignRepo)
	service.now = fixedNow(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)) // após o fim

	order := testOrder(map[string]domain.PlacementStatus{
		"pub1/homepage": domain.PlacementStatusAccepted,
		"pub1/preroll":  domain.PlacementStatusInProduction,
		"pub1/print-q1": domain.PlacementStatusAccepted, // não digital, intocado
	})

	mockOrderRepo.EXPECT().GetByID("ORD1").Return(order, nil)
	mockCampaignRepo.EXPECT().GetByID("CMP1").Return(testCampaign(), nil)
	mockOrderRepo.EXPECT().
		UpdatePlacementStatuses("ORD1", map[string]domain.PlacementStatus{
			"pub1/homepage": domain.PlacementStatusDelivered,
			"pub1/preroll":  domain.PlacementStatusDelivered,
			"pub1/print-q1": domain.PlacementStatusAccepted,
		}).
		Return(nil)

	result, err := service.CheckDigitalPlacementsForCampaignEnd("ORD1")

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Completed)
}

func TestCheckDigitalPlacementsForCampaignEnd_CampaignStillRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := NewService(mockOrderRepo, mockCampaignRepo)
	service.now = fixedNow(time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)) // no meio da campanha

	order := testOrder(map[string]domain.PlacementStatus{
		"pub1/homepage": domain.PlacementStatusAccepted,
	})

	mockOrderRepo.EXPECT().GetByID("ORD1").Return(order, nil)
	mockCampaignRepo.EXPECT().GetByID("CMP1").Return(testCampaign(), nil)
	// Nenhuma escrita esperada

	result, err := service.CheckDigitalPlacementsForCampaignEnd("ORD1")

	assert.NoError(t, err)
	assert.Equal(t, 0, result.Completed)
}

func TestCheckDigitalPlacementsForCampaignEnd_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := NewService(mockOrderRepo, mockCampaignRepo)
	service.now = fixedNow(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC))

	// Segunda passada: tudo digital já entregue, rejeitados ficam como estão
	order := testOrder(map[string]domain.PlacementStatus{
		"pub1/homepage": domain.PlacementStatusDelivered,
		"pub1/preroll":  domain.PlacementStatusRejected,
		"pub1/print-q1": domain.PlacementStatusAccepted,
	})

	mockOrderRepo.EXPECT().GetByID("ORD1").Return(order, nil)
	mockCampaignRepo.EXPECT().GetByID("CMP1").Return(testCampaign(), nil)
	// Nenhuma escrita esperada

	result, err := service.CheckDigitalPlacementsForCampaignEnd("ORD1")

	assert.NoError(t, err)
	assert.Equal(t, 0, result.Completed)
}

func TestCheckDigitalPlacementsForCampaignEnd_OrderNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := NewService(mockOrderRepo, mockCampaignRepo)

	mockOrderRepo.EXPECT().GetByID("ORD-X").Return(nil, nil)

	result, err := service.CheckDigitalPlacementsForCampaignEnd("ORD-X")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCheckDigitalPlacementsForCampaignEnd_CampaignNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := NewService(mockOrderRepo, mockCampaignRepo)

	mockOrderRepo.EXPECT().GetByID("ORD1").Return(testOrder(nil), nil)
	mockCampaignRepo.EXPECT().GetByID("CMP1").Return(nil, nil)

	result, err := service.CheckDigitalPlacementsForCampaignEnd("ORD1")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

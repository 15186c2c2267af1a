package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func i64Ptr(v int64) *int64 { return &v }

func testOrder() *domain.InsertionOrder {
	return &domain.InsertionOrder{
		ID:            "ORD1",
		CampaignID:    "CMP1",
		PublicationID: "PUB1",
		Status:        domain.OrderStatusInProduction,
	}
}

func validInput() NewEntryInput {
	return NewEntryInput{
		OrderID:   "ORD1",
		ItemPath:  "pub1/homepage",
		ItemName:  "Homepage Banner",
		Channel:   " Website ",
		DateStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Metrics:   domain.EntryMetrics{Impressions: i64Ptr(5000)},
	}
}

func TestReportEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockEntryRepo, mockOrderRepo)

	mockOrderRepo.EXPECT().GetByID("ORD1").Return(testOrder(), nil)
	mockEntryRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(e *domain.PerformanceEntry) error {
			assert.NotEmpty(t, e.ID)
			assert.Equal(t, "CMP1", e.CampaignID)
			assert.Equal(t, "PUB1", e.PublicationID)
			assert.Equal(t, "website", e.Channel) // normalizado
			assert.Equal(t, domain.SourceManual, e.Source)
			assert.Equal(t, domain.ValidationOK, e.ValidationStatus)
			return nil
		})

	entry, err := service.ReportEntry(validInput())

	assert.NoError(t, err)
	assert.Equal(t, domain.SourceManual, entry.Source)
}

func TestIngestAutomatedEntry_EmptyItemNameGetsSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockEntryRepo, mockOrderRepo)

	input := validInput()
	input.ItemName = ""

	mockOrderRepo.EXPECT().GetByID("ORD1").Return(testOrder(), nil)
	mockEntryRepo.EXPECT().Insert(gomock.Any()).Return(nil)

	entry, err := service.IngestAutomatedEntry(input)

	assert.NoError(t, err)
	assert.Equal(t, domain.TrackingPixelSentinel, entry.ItemName)
	assert.Equal(t, domain.SourceAutomated, entry.Source)
	assert.True(t, entry.IsPixelHeartbeat())
}

func TestIngestAutomatedEntry_NamedPlacementKeepsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockEntryRepo, mockOrderRepo)

	mockOrderRepo.EXPECT().GetByID("ORD1").Return(testOrder(), nil)
	mockEntryRepo.EXPECT().Insert(gomock.Any()).Return(nil)

	entry, err := service.IngestAutomatedEntry(validInput())

	assert.NoError(t, err)
	assert.Equal(t, "Homepage Banner", entry.ItemName)
	assert.False(t, entry.IsPixelHeartbeat())
}

func TestCreateEntry_MissingDateStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockEntryRepo, mockOrderRepo)

	input := validInput()
	input.DateStart = time.Time{}

	entry, err := service.ReportEntry(input)

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrMissingDates)
}

func TestCreateEntry_OrderNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockEntryRepo, mockOrderRepo)

	mockOrderRepo.EXPECT().GetByID("ORD1").Return(nil, nil)

	entry, err := service.ReportEntry(validInput())

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestFlagEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockEntryRepo, mockOrderRepo)

	mockEntryRepo.EXPECT().GetByID("E1").Return(&domain.PerformanceEntry{ID: "E1"}, nil)
	mockEntryRepo.EXPECT().UpdateValidationStatus("E1", domain.ValidationBadPixel).Return(nil)

	err := service.FlagEntry("E1", domain.ValidationBadPixel)

	assert.NoError(t, err)
}

func TestFlagEntry_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockEntryRepo, mockOrderRepo)

	err := service.FlagEntry("E1", domain.ValidationStatus("suspeito"))

	assert.Error(t, err)
}

func TestFlagEntry_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockEntryRepo, mockOrderRepo)

	mockEntryRepo.EXPECT().GetByID("E-X").Return(nil, nil)

	err := service.FlagEntry("E-X", domain.ValidationBadPixel)

	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestRemoveEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockEntryRepo, mockOrderRepo)

	mockEntryRepo.EXPECT().GetByID("E1").Return(&domain.PerformanceEntry{ID: "E1"}, nil)
	mockEntryRepo.EXPECT().SoftDelete("E1").Return(nil)

	err := service.RemoveEntry("E1")

	assert.NoError(t, err)
}

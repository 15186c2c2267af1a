package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adhub-delivery-api/internal/config"
	"go.uber.org/mock/gomock"
)

func testConfig(enabled bool) *config.Config {
	return &config.Config{
		RetentionSync: config.RetentionSync{
			CronSchedule:  "0 4 * * *",
			RetentionDays: 90,
			Enabled:       enabled,
		},
	}
}

func TestRunRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)
	service := NewRetentionSyncService(mockEntryRepo, testConfig(true))

	mockEntryRepo.EXPECT().PurgeUnusableOlderThan(90).Return(int64(5), nil)

	service.runRetention()

	status := service.Status()
	assert.Equal(t, int64(5), status["last_purged_count"])
	assert.Equal(t, false, status["running"])
}

func TestRunRetention_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)
	service := NewRetentionSyncService(mockEntryRepo, testConfig(true))

	mockEntryRepo.EXPECT().
		PurgeUnusableOlderThan(90).
		Return(int64(0), errors.New("connection refused"))

	service.runRetention()

	// A falha não derruba o serviço; a próxima execução tenta de novo
	status := service.Status()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, int64(0), status["last_purged_count"])
}

func TestStart_DisabledByConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)
	service := NewRetentionSyncService(mockEntryRepo, testConfig(false))

	// Nenhuma chamada ao repositório: o job nem é agendado
	err := service.Start(context.Background())

	assert.NoError(t, err)
}

func TestStatus_ReportsConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)
	service := NewRetentionSyncService(mockEntryRepo, testConfig(true))

	status := service.Status()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 4 * * *", status["cron_schedule"])
	assert.Equal(t, 90, status["retention_days"])
}

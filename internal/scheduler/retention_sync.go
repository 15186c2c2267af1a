package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/repository"
	"github.com/vfg2006/adhub-delivery-api/internal/config"
	"github.com/vfg2006/adhub-delivery-api/internal/metrics"
)

// RetentionSyncConfig é a configuração do job de retenção de entradas de
// performance.
type RetentionSyncConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// RetentionSyncService remove fisicamente entradas que já não participam de
// nenhuma agregação (soft-deletadas ou com flag de qualidade) após o período
// de guarda. A matemática de entrega segue pull-based; este job é apenas
// higiene de armazenamento.
type RetentionSyncService struct {
	scheduler           *gocron.Scheduler
	config              RetentionSyncConfig
	entryRepo           repository.PerformanceEntryRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastPurgedCount     int64
}

func NewRetentionSyncService(
	entryRepo repository.PerformanceEntryRepository,
	appConfig *config.Config,
) *RetentionSyncService {
	syncConfig := RetentionSyncConfig{
		CronSchedule:  appConfig.RetentionSync.CronSchedule,
		RetentionDays: appConfig.RetentionSync.RetentionDays,
		SyncEnabled:   appConfig.RetentionSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuração do job de retenção carregada")

	return &RetentionSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		entryRepo: entryRepo,
	}
}

// Start agenda o job de retenção e o cancela quando o contexto termina.
func (s *RetentionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Job de retenção desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando job de retenção de performance entries")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRetention()
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar job de retenção")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando job de retenção")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a execução fora do agendamento (endpoint de cron).
func (s *RetentionSyncService) TriggerManualSync() {
	go s.runRetention()
}

func (s *RetentionSyncService) runRetention() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Job de retenção já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("retention_days", s.config.RetentionDays).Info("Iniciando purga de entradas não utilizáveis")

	purged, err := s.entryRepo.PurgeUnusableOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar purga de retenção")
		return
	}

	metrics.ObserveRetentionPurge(purged)
	s.lastPurgedCount = purged
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"purged":   purged,
		"duration": time.Since(startTime).String(),
	}).Info("Purga de retenção concluída")
}

// Status reporta o estado do job para o endpoint de cron.
func (s *RetentionSyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.SyncEnabled,
		"cron_schedule":          s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_purged_count":      s.lastPurgedCount,
	}
}

package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/blobstore"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/database/postgres"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/notifier"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/repository"
	"github.com/vfg2006/adhub-delivery-api/internal/api"
	"github.com/vfg2006/adhub-delivery-api/internal/config"
	"github.com/vfg2006/adhub-delivery-api/internal/scheduler"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/completing"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/delivery"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/ordering"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/permitting"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/proofing"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/tracking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	entryRepo := repository.NewPerformanceEntryRepository(pgConn)
	orderRepo := repository.NewInsertionOrderRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	proofRepo := repository.NewProofOfPerformanceRepository(pgConn)
	scopeRepo := repository.NewUserScopeRepository(pgConn)

	blobs := blobstore.NewHMACStore(cfg.Blob)
	notif := notifier.NewLogNotifier()

	reconciler := delivery.NewService(orderRepo, campaignRepo, entryRepo)
	orderService := ordering.NewService(orderRepo, campaignRepo, notif)
	completer := completing.NewService(orderRepo, campaignRepo)
	trackingService := tracking.NewService(entryRepo, orderRepo)
	proofService := proofing.NewService(proofRepo, orderRepo, blobs, notif)
	permissions := permitting.NewService(scopeRepo)

	retentionSyncService := scheduler.NewRetentionSyncService(entryRepo, cfg)
	if err := retentionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o job de retenção de performance entries")
	} else {
		logrus.Info("Job de retenção de performance entries iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reconciler,
		orderService,
		completer,
		trackingService,
		proofService,
		permissions,
		retentionSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

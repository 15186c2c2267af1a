package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adhub-delivery-api/internal/api/handler"
	"github.com/vfg2006/adhub-delivery-api/internal/api/handler/router"
	"github.com/vfg2006/adhub-delivery-api/internal/config"
	"github.com/vfg2006/adhub-delivery-api/internal/metrics"
	"github.com/vfg2006/adhub-delivery-api/internal/scheduler"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/completing"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/delivery"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/ordering"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/permitting"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/proofing"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/tracking"
	"github.com/vfg2006/adhub-delivery-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reconciler delivery.Reconciler,
	orderService ordering.OrderService,
	completer completing.Completer,
	trackingService tracking.TrackingService,
	proofService proofing.ProofService,
	permissions permitting.PermissionService,
	retentionSyncService *scheduler.RetentionSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		RetentionSyncService: retentionSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Reporting(reconciler, orderService, completer, permissions)...),
		router.WithRoutes(handler.Orders(orderService, permissions)...),
		router.WithRoutes(handler.Performance(trackingService)...),
		router.WithRoutes(handler.Proofs(proofService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		metrics.Middleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(config.Auth.Secret),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}

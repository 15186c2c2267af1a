package handler

import (
	"net/http"

	"github.com/vfg2006/adhub-delivery-api/internal/api/handler/router"
	"github.com/vfg2006/adhub-delivery-api/internal/metrics"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/completing"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/delivery"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/ordering"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/permitting"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/proofing"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/tracking"
	"github.com/vfg2006/adhub-delivery-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Reporting(
	reconciler delivery.Reconciler,
	orderService ordering.OrderService,
	completer completing.Completer,
	permissions permitting.PermissionService,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:campaign_id/delivery-summary",
			Method:      http.MethodGet,
			Handler:     GetCampaignDeliverySummary(reconciler),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrHub()},
		},
		{
			Path:        "/v1/campaigns/:campaign_id/delivery-trend",
			Method:      http.MethodGet,
			Handler:     GetCampaignDailyTrend(reconciler),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrHub()},
		},
		{
			Path:        "/v1/campaigns/:campaign_id/orders/:publication_id/delivery",
			Method:      http.MethodGet,
			Handler:     GetOrderDeliverySummary(reconciler, orderService, completer, permissions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/publications/:publication_id/orders-summary",
			Method:      http.MethodGet,
			Handler:     GetPublicationOrdersSummary(reconciler, permissions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Orders(service ordering.OrderService, permissions permitting.PermissionService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:campaign_id/orders",
			Method:      http.MethodPost,
			Handler:     CreateOrder(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrHub()},
		},
		{
			Path:        "/v1/campaigns/:campaign_id/orders/:publication_id",
			Method:      http.MethodGet,
			Handler:     GetOrder(service, permissions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:campaign_id/orders/:publication_id/status",
			Method:      http.MethodPut,
			Handler:     TransitionOrderStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrHub()},
		},
		{
			Path:        "/v1/campaigns/:campaign_id/orders/:publication_id/placements/:placement_id/status",
			Method:      http.MethodPut,
			Handler:     UpdatePlacementStatus(service, permissions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:campaign_id/orders/:publication_id/messages",
			Method:      http.MethodPost,
			Handler:     AppendOrderMessage(service, permissions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:campaign_id/orders/:publication_id/viewed",
			Method:      http.MethodPost,
			Handler:     MarkOrderViewed(service, permissions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:campaign_id/orders/:publication_id",
			Method:      http.MethodDelete,
			Handler:     RescindOrder(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrHub()},
		},
	}
}

func Performance(service tracking.TrackingService) []router.Route {
	return []router.Route{
		{
			// Endpoint público do pixel, sem bearer token
			Path:    "/v1/tracking/pixel",
			Method:  http.MethodPost,
			Handler: IngestPixelEntry(service),
		},
		{
			Path:        "/v1/performance-entries",
			Method:      http.MethodPost,
			Handler:     ReportPerformanceEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/orders/:order_id/performance-entries",
			Method:      http.MethodGet,
			Handler:     ListOrderEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/performance-entries/:entry_id/validation",
			Method:      http.MethodPut,
			Handler:     FlagPerformanceEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/performance-entries/:entry_id",
			Method:      http.MethodDelete,
			Handler:     RemovePerformanceEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrHub()},
		},
	}
}

func Proofs(service proofing.ProofService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/orders/:order_id/proofs",
			Method:      http.MethodPost,
			Handler:     RegisterProof(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/orders/:order_id/proofs",
			Method:      http.MethodGet,
			Handler:     ListProofs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/proofs/:proof_id/verification",
			Method:      http.MethodPut,
			Handler:     UpdateProofVerification(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrHub()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

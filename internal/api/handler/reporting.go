package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/adhub-delivery-api/internal/metrics"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/completing"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/delivery"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/ordering"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/permitting"
	"github.com/vfg2006/adhub-delivery-api/pkg/apiErrors"
	"github.com/vfg2006/adhub-delivery-api/pkg/log"
	"github.com/vfg2006/adhub-delivery-api/pkg/middleware"
	"github.com/vfg2006/adhub-delivery-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetCampaignDeliverySummary retorna o dashboard de entrega da campanha:
// totais, quebra por publicação e o resumo reconciliado de cada pedido.
func GetCampaignDeliverySummary(reconciler delivery.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("campaign_id")
		logger.WithField("campaign_id", campaignID).Info("reporting: fetching campaign delivery summary")

		summary, err := reconciler.CampaignSummary(campaignID)
		if err != nil {
			if errors.Is(err, delivery.ErrCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
				return
			}

			logger.WithError(err).WithField("campaign_id", campaignID).
				Error("reporting: failed to reconcile campaign")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao reconciliar campanha", nil)
			return
		}

		metrics.ObserveReconciliation("campaign")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("reporting: failed to encode campaign summary")
		}
	})
}

// GetCampaignDailyTrend retorna a série diária de impressões, cliques e CTR
// da campanha no intervalo informado.
func GetCampaignDailyTrend(reconciler delivery.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("campaign_id")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithError(err).Warn("reporting: invalid start_date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "start_date inválido, use YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithError(err).Warn("reporting: invalid end_date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "end_date inválido, use YYYY-MM-DD", nil)
			return
		}

		if !startDate.IsZero() && !endDate.IsZero() && endDate.Before(*startDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "end_date anterior a start_date", nil)
			return
		}

		points, err := reconciler.CampaignDailyTrend(campaignID, *startDate, *endDate)
		if err != nil {
			if errors.Is(err, delivery.ErrCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
				return
			}

			logger.WithError(err).WithField("campaign_id", campaignID).
				Error("reporting: failed to build daily trend")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar série diária", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(points); err != nil {
			logger.WithError(err).Error("reporting: failed to encode daily trend")
		}
	})
}

// GetOrderDeliverySummary retorna o resumo reconciliado de um pedido. Antes da
// reconciliação roda a verificação de fim de campanha em melhor esforço, para
// que placements digitais vencidos apareçam já como entregues.
func GetOrderDeliverySummary(
	reconciler delivery.Reconciler,
	orderService ordering.OrderService,
	completer completing.Completer,
	permissions permitting.PermissionService,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		campaignID := params.ByName("campaign_id")
		publicationID := params.ByName("publication_id")

		if !publicationAllowed(w, r, permissions, publicationID) {
			return
		}

		order, err := orderService.GetOrder(campaignID, publicationID)
		if err != nil {
			if errors.Is(err, ordering.ErrOrderNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, "Pedido de inserção não encontrado", nil)
				return
			}

			logger.WithError(err).Error("reporting: failed to load order")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar pedido", nil)
			return
		}

		if _, err := completer.CheckDigitalPlacementsForCampaignEnd(order.ID); err != nil {
			// Leitura segue mesmo sem o fechamento automático
			logger.WithError(err).WithField("order_id", order.ID).
				Warn("reporting: campaign-end completion check failed")
		}

		summary, err := reconciler.OrderSummary(campaignID, publicationID)
		if err != nil {
			if errors.Is(err, delivery.ErrOrderNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, "Pedido de inserção não encontrado", nil)
				return
			}
			if errors.Is(err, delivery.ErrCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
				return
			}

			logger.WithError(err).WithFields(log.Fields{
				"campaign_id":    campaignID,
				"publication_id": publicationID,
			}).Error("reporting: failed to reconcile order")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao reconciliar pedido", nil)
			return
		}

		metrics.ObserveReconciliation("order")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("reporting: failed to encode order summary")
		}
	})
}

// GetPublicationOrdersSummary retorna o rollup dos pedidos ativos de uma
// publicação com a quebra por status de pacing.
func GetPublicationOrdersSummary(
	reconciler delivery.Reconciler,
	permissions permitting.PermissionService,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		publicationID := httprouter.ParamsFromContext(r.Context()).ByName("publication_id")

		if !publicationAllowed(w, r, permissions, publicationID) {
			return
		}

		summary, err := reconciler.PublicationSummary(publicationID)
		if err != nil {
			logger.WithError(err).WithField("publication_id", publicationID).
				Error("reporting: failed to reconcile publication")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao reconciliar publicação", nil)
			return
		}

		metrics.ObserveReconciliation("publication")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("reporting: failed to encode publication summary")
		}
	})
}

// publicationAllowed resolve o escopo do chamador sobre a publicação e já
// escreve a resposta de erro quando negado.
func publicationAllowed(
	w http.ResponseWriter,
	r *http.Request,
	permissions permitting.PermissionService,
	publicationID string,
) bool {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return false
	}

	allowed, err := permissions.CanAccessPublication(claims, publicationID)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).
			Error("reporting: failed to resolve publication scope")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao resolver permissões", nil)
		return false
	}
	if !allowed {
		apiErrors.WriteError(w, apiErrors.ErrPublicationForbidden, "Publicação fora do escopo do usuário", nil)
		return false
	}

	return true
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/ordering"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/permitting"
	"github.com/vfg2006/adhub-delivery-api/pkg/apiErrors"
	"github.com/vfg2006/adhub-delivery-api/pkg/log"
	"github.com/vfg2006/adhub-delivery-api/pkg/middleware"
)

type createOrderRequest struct {
	PublicationID string `json:"publication_id"`
}

// CreateOrder materializa o pedido em draft a partir do inventário selecionado
// da campanha para a publicação informada.
func CreateOrder(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("campaign_id")

		var body createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Body inválido", nil)
			return
		}
		if body.PublicationID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "publication_id é obrigatório", nil)
			return
		}

		order, err := service.CreateOrder(campaignID, body.PublicationID)
		if err != nil {
			switch {
			case errors.Is(err, ordering.ErrOrderExists):
				apiErrors.WriteError(w, apiErrors.ErrOrderConflict, "Já existe um pedido ativo para esta publicação na campanha", nil)
			case errors.Is(err, ordering.ErrCampaignNotFound):
				apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
			case errors.Is(err, ordering.ErrNoInventory):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A campanha não tem inventário selecionado para esta publicação", nil)
			default:
				logger.WithError(err).Error("orders: failed to create order")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar pedido", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id":    campaignID,
			"publication_id": body.PublicationID,
			"order_id":       order.ID,
		}).Info("orders: draft order created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(order); err != nil {
			logger.WithError(err).Error("orders: failed to encode order")
		}
	})
}

// GetOrder retorna o pedido de inserção de uma publicação dentro da campanha,
// com placements, metas e thread de mensagens.
func GetOrder(service ordering.OrderService, permissions permitting.PermissionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		campaignID := params.ByName("campaign_id")
		publicationID := params.ByName("publication_id")

		if !publicationAllowed(w, r, permissions, publicationID) {
			return
		}

		order, err := service.GetOrder(campaignID, publicationID)
		if err != nil {
			if errors.Is(err, ordering.ErrOrderNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, "Pedido de inserção não encontrado", nil)
				return
			}

			logger.WithError(err).Error("orders: failed to load order")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar pedido", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(order); err != nil {
			logger.WithError(err).Error("orders: failed to encode order")
		}
	})
}

type transitionStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// TransitionOrderStatus aplica uma transição da máquina de estados do pedido.
func TransitionOrderStatus(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		campaignID := params.ByName("campaign_id")
		publicationID := params.ByName("publication_id")

		var body transitionStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Body inválido", nil)
			return
		}
		if body.Status == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "status é obrigatório", nil)
			return
		}

		order, err := service.TransitionStatus(campaignID, publicationID, body.Status)
		if err != nil {
			switch {
			case errors.Is(err, ordering.ErrOrderNotFound):
				apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, "Pedido de inserção não encontrado", nil)
			case errors.Is(err, ordering.ErrInvalidTransition):
				apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, err.Error(), nil)
			default:
				logger.WithError(err).Error("orders: failed to transition status")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao atualizar status do pedido", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id":    campaignID,
			"publication_id": publicationID,
			"status":         body.Status,
		}).Info("orders: status transitioned")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(order); err != nil {
			logger.WithError(err).Error("orders: failed to encode order")
		}
	})
}

type placementStatusRequest struct {
	Status domain.PlacementStatus `json:"status"`
	Notes  string                 `json:"notes,omitempty"`
}

// UpdatePlacementStatus atualiza o status de um placement do pedido. A
// resposta sinaliza quando a mudança cascateou para o status do pedido.
func UpdatePlacementStatus(service ordering.OrderService, permissions permitting.PermissionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		campaignID := params.ByName("campaign_id")
		publicationID := params.ByName("publication_id")
		placementID := params.ByName("placement_id")

		if !publicationAllowed(w, r, permissions, publicationID) {
			return
		}

		var body placementStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Body inválido", nil)
			return
		}

		result, err := service.UpdatePlacementStatus(campaignID, publicationID, placementID, body.Status, body.Notes)
		if err != nil {
			switch {
			case errors.Is(err, ordering.ErrOrderNotFound):
				apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, "Pedido de inserção não encontrado", nil)
			case errors.Is(err, ordering.ErrDraftNotVisible):
				apiErrors.WriteError(w, apiErrors.ErrInvalidStatus, "Pedidos em draft não aceitam atualização de placement", nil)
			default:
				logger.WithError(err).Error("orders: failed to update placement status")
				apiErrors.WriteError(w, apiErrors.ErrInvalidStatus, err.Error(), nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id":     campaignID,
			"publication_id":  publicationID,
			"placement_id":    placementID,
			"status":          body.Status,
			"order_confirmed": result.OrderConfirmed,
			"order_rejected":  result.OrderRejected,
		}).Info("orders: placement status updated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("orders: failed to encode placement result")
		}
	})
}

type orderMessageRequest struct {
	Side string `json:"side"`
	Body string `json:"body"`
}

// AppendOrderMessage acrescenta uma mensagem ao thread do pedido.
func AppendOrderMessage(service ordering.OrderService, permissions permitting.PermissionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		campaignID := params.ByName("campaign_id")
		publicationID := params.ByName("publication_id")

		if !publicationAllowed(w, r, permissions, publicationID) {
			return
		}

		claims, _ := middleware.ClaimsFromContext(r.Context())

		var body orderMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Body inválido", nil)
			return
		}
		if body.Body == "" || body.Side == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "side e body são obrigatórios", nil)
			return
		}

		order, err := service.AppendMessage(campaignID, publicationID, claims.UserID, body.Side, body.Body)
		if err != nil {
			switch {
			case errors.Is(err, ordering.ErrOrderNotFound):
				apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, "Pedido de inserção não encontrado", nil)
			case errors.Is(err, ordering.ErrDraftNotVisible):
				apiErrors.WriteError(w, apiErrors.ErrInvalidStatus, "Pedidos em draft não aceitam mensagens", nil)
			default:
				logger.WithError(err).Error("orders: failed to append message")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao salvar mensagem", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(order); err != nil {
			logger.WithError(err).Error("orders: failed to encode order")
		}
	})
}

type markViewedRequest struct {
	Side string `json:"side"`
}

// MarkOrderViewed registra a visualização do thread por um dos lados,
// zerando o contador de não lidas daquele lado.
func MarkOrderViewed(service ordering.OrderService, permissions permitting.PermissionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		campaignID := params.ByName("campaign_id")
		publicationID := params.ByName("publication_id")

		if !publicationAllowed(w, r, permissions, publicationID) {
			return
		}

		var body markViewedRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Body inválido", nil)
			return
		}
		if body.Side == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "side é obrigatório", nil)
			return
		}

		if err := service.MarkViewed(campaignID, publicationID, body.Side); err != nil {
			if errors.Is(err, ordering.ErrOrderNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, "Pedido de inserção não encontrado", nil)
				return
			}

			logger.WithError(err).Error("orders: failed to mark order viewed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar visualização", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// RescindOrder remove o pedido via soft delete. Disponível apenas para o lado
// do hub.
func RescindOrder(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		campaignID := params.ByName("campaign_id")
		publicationID := params.ByName("publication_id")

		if err := service.RescindOrder(campaignID, publicationID); err != nil {
			if errors.Is(err, ordering.ErrOrderNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, "Pedido de inserção não encontrado", nil)
				return
			}

			logger.WithError(err).Error("orders: failed to rescind order")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao remover pedido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id":    campaignID,
			"publication_id": publicationID,
		}).Info("orders: order rescinded")

		w.WriteHeader(http.StatusNoContent)
	})
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/tracking"
	"github.com/vfg2006/adhub-delivery-api/pkg/apiErrors"
	"github.com/vfg2006/adhub-delivery-api/pkg/log"
	"github.com/vfg2006/adhub-delivery-api/pkg/utils"
)

// newEntryRequest é o payload de criação de uma entrada de performance, com
// datas em YYYY-MM-DD.
type newEntryRequest struct {
	OrderID   string              `json:"order_id"`
	ItemPath  string              `json:"item_path"`
	ItemName  string              `json:"item_name"`
	Channel   string              `json:"channel"`
	DateStart string              `json:"date_start"`
	DateEnd   string              `json:"date_end,omitempty"`
	Metrics   domain.EntryMetrics `json:"metrics"`
}

func (req newEntryRequest) toInput() (tracking.NewEntryInput, error) {
	input := tracking.NewEntryInput{
		OrderID:  req.OrderID,
		ItemPath: req.ItemPath,
		ItemName: req.ItemName,
		Channel:  req.Channel,
		Metrics:  req.Metrics,
	}

	dateStart, err := utils.ParseDate(req.DateStart)
	if err != nil {
		return input, errors.Wrap(err, "date_start inválido")
	}
	input.DateStart = *dateStart

	if req.DateEnd != "" {
		dateEnd, err := utils.ParseDate(req.DateEnd)
		if err != nil {
			return input, errors.Wrap(err, "date_end inválido")
		}
		input.DateEnd = dateEnd
	}

	return input, nil
}

// ReportPerformanceEntry registra um self-report manual (print, rádio,
// podcast, newsletter).
func ReportPerformanceEntry(service tracking.TrackingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		createEntry(w, r, service.ReportEntry)
	})
}

// IngestPixelEntry recebe as observações do pixel de tracking. O endpoint é
// público: o pixel dispara de páginas das publicações, sem bearer token.
func IngestPixelEntry(service tracking.TrackingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		createEntry(w, r, service.IngestAutomatedEntry)
	})
}

func createEntry(
	w http.ResponseWriter,
	r *http.Request,
	create func(tracking.NewEntryInput) (*domain.PerformanceEntry, error),
) {
	logger := log.ForContext(r.Context())

	var body newEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Body inválido", nil)
		return
	}

	input, err := body.toInput()
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
		return
	}

	entry, err := create(input)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrOrderNotFound):
			apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, "Pedido de inserção não encontrado", nil)
		case errors.Is(err, tracking.ErrMissingDates):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "date_start é obrigatório", nil)
		default:
			logger.WithError(err).Error("tracking: failed to create performance entry")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar entrada de performance", nil)
		}
		return
	}

	logger.WithFields(log.Fields{
		"entry_id": entry.ID,
		"order_id": entry.OrderID,
		"channel":  entry.Channel,
		"source":   entry.Source,
	}).Info("tracking: performance entry created")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(entry); err != nil {
		logger.WithError(err).Error("tracking: failed to encode entry")
	}
}

// ListOrderEntries lista as entradas de performance de um pedido, incluindo
// as flaggeadas (a exclusão acontece só na agregação).
func ListOrderEntries(service tracking.TrackingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		orderID := httprouter.ParamsFromContext(r.Context()).ByName("order_id")

		entries, err := service.ListOrderEntries(orderID)
		if err != nil {
			logger.WithError(err).WithField("order_id", orderID).
				Error("tracking: failed to list order entries")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar entradas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logger.WithError(err).Error("tracking: failed to encode entries")
		}
	})
}

type flagEntryRequest struct {
	ValidationStatus domain.ValidationStatus `json:"validation_status"`
}

// FlagPerformanceEntry marca a qualidade de uma entrada. Entradas com status
// diferente de ok permanecem armazenadas mas saem de toda a agregação.
func FlagPerformanceEntry(service tracking.TrackingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entryID := httprouter.ParamsFromContext(r.Context()).ByName("entry_id")

		var body flagEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Body inválido", nil)
			return
		}

		if err := service.FlagEntry(entryID, body.ValidationStatus); err != nil {
			if errors.Is(err, tracking.ErrEntryNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrEntryNotFound, "Entrada de performance não encontrada", nil)
				return
			}

			logger.WithError(err).WithField("entry_id", entryID).
				Error("tracking: failed to flag entry")
			apiErrors.WriteError(w, apiErrors.ErrInvalidStatus, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"entry_id":          entryID,
			"validation_status": body.ValidationStatus,
		}).Info("tracking: entry flagged")

		w.WriteHeader(http.StatusNoContent)
	})
}

// RemovePerformanceEntry faz o soft delete de uma entrada.
func RemovePerformanceEntry(service tracking.TrackingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entryID := httprouter.ParamsFromContext(r.Context()).ByName("entry_id")

		if err := service.RemoveEntry(entryID); err != nil {
			if errors.Is(err, tracking.ErrEntryNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrEntryNotFound, "Entrada de performance não encontrada", nil)
				return
			}

			logger.WithError(err).WithField("entry_id", entryID).
				Error("tracking: failed to remove entry")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao remover entrada", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/proofing"
	"github.com/vfg2006/adhub-delivery-api/pkg/apiErrors"
	"github.com/vfg2006/adhub-delivery-api/pkg/log"
	"github.com/vfg2006/adhub-delivery-api/pkg/utils"
)

// registerProofRequest são os metadados registrados após o upload do arquivo
// para o blob storage.
type registerProofRequest struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
	RunDate  string `json:"run_date,omitempty"`
}

// RegisterProof registra uma prova de veiculação para o pedido.
func RegisterProof(service proofing.ProofService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		orderID := httprouter.ParamsFromContext(r.Context()).ByName("order_id")

		var body registerProofRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Body inválido", nil)
			return
		}
		if body.FileName == "" || body.FilePath == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "file_name e file_path são obrigatórios", nil)
			return
		}

		input := proofing.NewProofInput{
			OrderID:  orderID,
			FileName: body.FileName,
			FilePath: body.FilePath,
			FileType: body.FileType,
			FileSize: body.FileSize,
		}

		if body.RunDate != "" {
			runDate, err := utils.ParseDate(body.RunDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "run_date inválido, use YYYY-MM-DD", nil)
				return
			}
			input.RunDate = runDate
		}

		proof, err := service.RegisterProof(input)
		if err != nil {
			if errors.Is(err, proofing.ErrOrderNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, "Pedido de inserção não encontrado", nil)
				return
			}

			logger.WithError(err).WithField("order_id", orderID).
				Error("proofs: failed to register proof")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar prova", nil)
			return
		}

		logger.WithFields(log.Fields{
			"proof_id": proof.ID,
			"order_id": orderID,
		}).Info("proofs: proof registered")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(proof); err != nil {
			logger.WithError(err).Error("proofs: failed to encode proof")
		}
	})
}

// ListProofs lista as provas do pedido com URLs assinadas regeneradas.
func ListProofs(service proofing.ProofService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		orderID := httprouter.ParamsFromContext(r.Context()).ByName("order_id")

		proofs, err := service.ListProofs(orderID)
		if err != nil {
			logger.WithError(err).WithField("order_id", orderID).
				Error("proofs: failed to list proofs")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar provas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(proofs); err != nil {
			logger.WithError(err).Error("proofs: failed to encode proofs")
		}
	})
}

type verificationStatusRequest struct {
	VerificationStatus domain.VerificationStatus `json:"verification_status"`
}

// UpdateProofVerification transiciona o status de verificação da prova.
func UpdateProofVerification(service proofing.ProofService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		proofID := httprouter.ParamsFromContext(r.Context()).ByName("proof_id")

		var body verificationStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Body inválido", nil)
			return
		}

		if err := service.UpdateVerificationStatus(proofID, body.VerificationStatus); err != nil {
			if errors.Is(err, proofing.ErrProofNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProofNotFound, "Prova de veiculação não encontrada", nil)
				return
			}

			logger.WithError(err).WithField("proof_id", proofID).
				Error("proofs: failed to update verification status")
			apiErrors.WriteError(w, apiErrors.ErrInvalidStatus, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"proof_id":            proofID,
			"verification_status": body.VerificationStatus,
		}).Info("proofs: verification status updated")

		w.WriteHeader(http.StatusNoContent)
	})
}

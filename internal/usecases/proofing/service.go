package proofing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/blobstore"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/notifier"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/repository"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"github.com/vfg2006/adhub-delivery-api/pkg/utils"
)

var (
	ErrProofNotFound = errors.New("prova de veiculação não encontrada")
	ErrOrderNotFound = errors.New("pedido de inserção não encontrado")
)

// NewProofInput são os metadados registrados após o upload do arquivo.
type NewProofInput struct {
	OrderID  string     `json:"order_id"`
	FileName string     `json:"file_name"`
	FilePath string     `json:"file_path"`
	FileType string     `json:"file_type"`
	FileSize int64      `json:"file_size"`
	RunDate  *time.Time `json:"run_date,omitempty"`
}

// ProofService cobre o workflow de provas de veiculação: registro, listagem
// com links regenerados e transição do status de verificação.
type ProofService interface {
	RegisterProof(input NewProofInput) (*domain.ProofOfPerformance, error)
	ListProofs(orderID string) ([]*domain.ProofOfPerformance, error)
	UpdateVerificationStatus(proofID string, status domain.VerificationStatus) error
}

type Service struct {
	proofRepo repository.ProofOfPerformanceRepository
	orderRepo repository.InsertionOrderRepository
	blobs     blobstore.Store
	notifier  notifier.Notifier
}

func NewService(
	proofRepo repository.ProofOfPerformanceRepository,
	orderRepo repository.InsertionOrderRepository,
	blobs blobstore.Store,
	notif notifier.Notifier,
) ProofService {
	return &Service{
		proofRepo: proofRepo,
		orderRepo: orderRepo,
		blobs:     blobs,
		notifier:  notif,
	}
}

func (s *Service) RegisterProof(input NewProofInput) (*domain.ProofOfPerformance, error) {
	order, err := s.orderRepo.GetByID(input.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pedido")
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da prova")
	}

	proof := &domain.ProofOfPerformance{
		ID:                 id,
		OrderID:            input.OrderID,
		FileName:           input.FileName,
		FileURL:            input.FilePath,
		FileType:           input.FileType,
		FileSize:           input.FileSize,
		RunDate:            input.RunDate,
		VerificationStatus: domain.VerificationPending,
		UploadedAt:         time.Now().UTC(),
	}

	if err := s.proofRepo.Insert(proof); err != nil {
		return nil, errors.Wrap(err, "erro ao registrar prova")
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(notifier.Event{
			Type:          notifier.EventProofUploaded,
			OrderID:       order.ID,
			CampaignID:    order.CampaignID,
			PublicationID: order.PublicationID,
		}); err != nil {
			logrus.WithError(err).Warn("proofing: falha ao notificar upload de prova")
		}
	}

	return proof, nil
}

// ListProofs retorna as provas do pedido com URLs assinadas regeneradas
// (TTL de 24h).
func (s *Service) ListProofs(orderID string) ([]*domain.ProofOfPerformance, error) {
	proofs, err := s.proofRepo.ListByOrderID(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar provas")
	}

	for _, proof := range proofs {
		signed, err := s.blobs.SignedURL(proof.FileURL, blobstore.SignedURLTTL)
		if err != nil {
			logrus.WithError(err).WithField("proof_id", proof.ID).
				Warn("proofing: falha ao assinar URL da prova")
			continue
		}
		proof.FileURL = signed
	}

	return proofs, nil
}

func (s *Service) UpdateVerificationStatus(proofID string, status domain.VerificationStatus) error {
	if !domain.ValidVerificationStatus(status) {
		return errors.Errorf("status de verificação inválido: %s", status)
	}

	proof, err := s.proofRepo.GetByID(proofID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar prova")
	}
	if proof == nil {
		return ErrProofNotFound
	}

	return errors.Wrap(
		s.proofRepo.UpdateVerificationStatus(proofID, status),
		"erro ao atualizar status de verificação",
	)
}

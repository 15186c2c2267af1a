package tracking

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/repository"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"github.com/vfg2006/adhub-delivery-api/internal/usecases/channels"
	"github.com/vfg2006/adhub-delivery-api/pkg/utils"
)

var (
	ErrOrderNotFound = errors.New("pedido de inserção não encontrado")
	ErrEntryNotFound = errors.New("entrada de performance não encontrada")
	ErrMissingDates  = errors.New("date_start é obrigatório")
)

// NewEntryInput é o payload de criação de uma observação de performance,
// manual ou automática.
type NewEntryInput struct {
	OrderID   string              `json:"order_id"`
	ItemPath  string              `json:"item_path"`
	ItemName  string              `json:"item_name"`
	Channel   string              `json:"channel"`
	DateStart time.Time           `json:"date_start"`
	DateEnd   *time.Time          `json:"date_end,omitempty"`
	Metrics   domain.EntryMetrics `json:"metrics"`
}

// TrackingService cobre a ingestão e o ciclo de vida das entradas de
// performance. Entradas nunca são hard-deletadas: correção acontece via
// validation_status e exclusão via soft delete.
type TrackingService interface {
	ReportEntry(input NewEntryInput) (*domain.PerformanceEntry, error)
	IngestAutomatedEntry(input NewEntryInput) (*domain.PerformanceEntry, error)
	FlagEntry(entryID string, status domain.ValidationStatus) error
	RemoveEntry(entryID string) error
	ListOrderEntries(orderID string) ([]*domain.PerformanceEntry, error)
}

type Service struct {
	entryRepo repository.PerformanceEntryRepository
	orderRepo repository.InsertionOrderRepository
}

func NewService(
	entryRepo repository.PerformanceEntryRepository,
	orderRepo repository.InsertionOrderRepository,
) TrackingService {
	return &Service{
		entryRepo: entryRepo,
		orderRepo: orderRepo,
	}
}

// ReportEntry registra um self-report manual (print, rádio, podcast,
// newsletter).
func (s *Service) ReportEntry(input NewEntryInput) (*domain.PerformanceEntry, error) {
	return s.createEntry(input, domain.SourceManual)
}

// IngestAutomatedEntry registra uma observação vinda do pixel de tracking.
// Heartbeats sem placement real entram com o itemName sentinela e ficam fora
// da contagem de reports na reconciliação.
func (s *Service) IngestAutomatedEntry(input NewEntryInput) (*domain.PerformanceEntry, error) {
	if input.ItemName == "" {
		input.ItemName = domain.TrackingPixelSentinel
	}
	return s.createEntry(input, domain.SourceAutomated)
}

func (s *Service) createEntry(input NewEntryInput, source domain.EntrySource) (*domain.PerformanceEntry, error) {
	if input.DateStart.IsZero() {
		return nil, ErrMissingDates
	}

	order, err := s.orderRepo.GetByID(input.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pedido")
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da entrada")
	}

	now := time.Now().UTC()
	entry := &domain.PerformanceEntry{
		ID:               id,
		OrderID:          order.ID,
		CampaignID:       order.CampaignID,
		PublicationID:    order.PublicationID,
		ItemPath:         input.ItemPath,
		ItemName:         input.ItemName,
		Channel:          channels.Normalize(input.Channel),
		DateStart:        input.DateStart,
		DateEnd:          input.DateEnd,
		Metrics:          input.Metrics,
		Source:           source,
		ValidationStatus: domain.ValidationOK,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.entryRepo.Insert(entry); err != nil {
		return nil, errors.Wrap(err, "erro ao inserir entrada de performance")
	}

	return entry, nil
}

// FlagEntry marca a qualidade do dado. A entrada segue armazenada mas sai de
// toda a agregação quando o status não é ok.
func (s *Service) FlagEntry(entryID string, status domain.ValidationStatus) error {
	switch status {
	case domain.ValidationOK, domain.ValidationBadPixel,
		domain.ValidationInvalidOrderID, domain.ValidationInvalidTraffic:
	default:
		return errors.Errorf("validation status inválido: %s", status)
	}

	entry, err := s.entryRepo.GetByID(entryID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar entrada")
	}
	if entry == nil {
		return ErrEntryNotFound
	}

	return errors.Wrap(
		s.entryRepo.UpdateValidationStatus(entryID, status),
		"erro ao atualizar validation status",
	)
}

func (s *Service) RemoveEntry(entryID string) error {
	entry, err := s.entryRepo.GetByID(entryID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar entrada")
	}
	if entry == nil {
		return ErrEntryNotFound
	}

	return errors.Wrap(s.entryRepo.SoftDelete(entryID), "erro ao remover entrada")
}

func (s *Service) ListOrderEntries(orderID string) ([]*domain.PerformanceEntry, error) {
	return s.entryRepo.ListByOrderID(orderID)
}

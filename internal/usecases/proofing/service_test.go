package proofing

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type stubStore struct {
	err error
}

func (s *stubStore) SignedURL(path string, _ time.Duration) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "https://files.example.com/" + path + "?signature=abc", nil
}

func testOrder() *domain.InsertionOrder {
	return &domain.InsertionOrder{
		ID:            "ORD1",
		CampaignID:    "CMP1",
		PublicationID: "PUB1",
		Status:        domain.OrderStatusInProduction,
	}
}

func TestRegisterProof(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProofRepo := mocks.NewMockProofOfPerformanceRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockProofRepo, mockOrderRepo, &stubStore{}, nil)

	mockOrderRepo.EXPECT().GetByID("ORD1").Return(testOrder(), nil)
	mockProofRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(p *domain.ProofOfPerformance) error {
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, "ORD1", p.OrderID)
			assert.Equal(t, domain.VerificationPending, p.VerificationStatus)
			assert.False(t, p.UploadedAt.IsZero())
			return nil
		})

	proof, err := service.RegisterProof(NewProofInput{
		OrderID:  "ORD1",
		FileName: "tearsheet-q1.pdf",
		FilePath: "proofs/ord1/tearsheet-q1.pdf",
		FileType: "application/pdf",
		FileSize: 204800,
	})

	assert.NoError(t, err)
	assert.Equal(t, "tearsheet-q1.pdf", proof.FileName)
}

func TestRegisterProof_OrderNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProofRepo := mocks.NewMockProofOfPerformanceRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockProofRepo, mockOrderRepo, &stubStore{}, nil)

	mockOrderRepo.EXPECT().GetByID("ORD-X").Return(nil, nil)

	proof, err := service.RegisterProof(NewProofInput{OrderID: "ORD-X", FileName: "x.pdf"})

	assert.Nil(t, proof)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListProofs_RegeneratesSignedURLs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProofRepo := mocks.NewMockProofOfPerformanceRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockProofRepo, mockOrderRepo, &stubStore{}, nil)

	mockProofRepo.EXPECT().ListByOrderID("ORD1").Return([]*domain.ProofOfPerformance{
		{ID: "PRF1", OrderID: "ORD1", FileURL: "proofs/ord1/a.pdf"},
		{ID: "PRF2", OrderID: "ORD1", FileURL: "proofs/ord1/b.jpg"},
	}, nil)

	proofs, err := service.ListProofs("ORD1")

	assert.NoError(t, err)
	assert.Len(t, proofs, 2)
	assert.Equal(t, "https://files.example.com/proofs/ord1/a.pdf?signature=abc", proofs[0].FileURL)
	assert.Equal(t, "https://files.example.com/proofs/ord1/b.jpg?signature=abc", proofs[1].FileURL)
}

func TestListProofs_SignFailureKeepsOriginalPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProofRepo := mocks.NewMockProofOfPerformanceRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockProofRepo, mockOrderRepo, &stubStore{err: errors.New("chave inválida")}, nil)

	mockProofRepo.EXPECT().ListByOrderID("ORD1").Return([]*domain.ProofOfPerformance{
		{ID: "PRF1", OrderID: "ORD1", FileURL: "proofs/ord1/a.pdf"},
	}, nil)

	proofs, err := service.ListProofs("ORD1")

	assert.NoError(t, err)
	assert.Equal(t, "proofs/ord1/a.pdf", proofs[0].FileURL)
}

func TestUpdateVerificationStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProofRepo := mocks.NewMockProofOfPerformanceRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockProofRepo, mockOrderRepo, &stubStore{}, nil)

	mockProofRepo.EXPECT().GetByID("PRF1").Return(&domain.ProofOfPerformance{ID: "PRF1"}, nil)
	mockProofRepo.EXPECT().UpdateVerificationStatus("PRF1", domain.VerificationVerified).Return(nil)

	err := service.UpdateVerificationStatus("PRF1", domain.VerificationVerified)

	assert.NoError(t, err)
}

func TestUpdateVerificationStatus_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProofRepo := mocks.NewMockProofOfPerformanceRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockProofRepo, mockOrderRepo, &stubStore{}, nil)

	err := service.UpdateVerificationStatus("PRF1", domain.VerificationStatus("aprovada"))

	assert.Error(t, err)
}

func TestUpdateVerificationStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProofRepo := mocks.NewMockProofOfPerformanceRepository(ctrl)
	mockOrderRepo := mocks.NewMockInsertionOrderRepository(ctrl)
	service := NewService(mockProofRepo, mockOrderRepo, &stubStore{}, nil)

	mockProofRepo.EXPECT().GetByID("PRF-X").Return(nil, nil)

	err := service.UpdateVerificationStatus("PRF-X", domain.VerificationVerified)

	assert.ErrorIs(t, err, ErrProofNotFound)
}

package permitting

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/adhub-delivery-api/infrastructure/repository"
	"github.com/vfg2006/adhub-delivery-api/internal/domain"
)

// PermissionService resolve o escopo de acesso do chamador. O núcleo trata o
// resultado como opaco; admins têm bypass total.
type PermissionService interface {
	CanAccessPublication(claims *domain.Claims, publicationID string) (bool, error)
	CanAccessHub(claims *domain.Claims, hubID string) (bool, error)
	GetUserPublications(claims *domain.Claims) ([]string, error)
	GetUserHubs(claims *domain.Claims) ([]string, error)
}

type Service struct {
	scopeRepo repository.UserScopeRepository
}

func NewService(scopeRepo repository.UserScopeRepository) PermissionService {
	return &Service{
		scopeRepo: scopeRepo,
	}
}

func (s *Service) CanAccessPublication(claims *domain.Claims, publicationID string) (bool, error) {
	if claims.IsAdmin() {
		return true, nil
	}

	publications, err := s.scopeRepo.GetUserPublications(claims.UserID)
	if err != nil {
		return false, errors.Wrap(err, "erro ao resolver publicações do usuário")
	}

	return contains(publications, publicationID), nil
}

func (s *Service) CanAccessHub(claims *domain.Claims, hubID string) (bool, error) {
	if claims.IsAdmin() {
		return true, nil
	}

	hubs, err := s.scopeRepo.GetUserHubs(claims.UserID)
	if err != nil {
		return false, errors.Wrap(err, "erro ao resolver hubs do usuário")
	}

	return contains(hubs, hubID), nil
}

func (s *Service) GetUserPublications(claims *domain.Claims) ([]string, error) {
	return s.scopeRepo.GetUserPublications(claims.UserID)
}

func (s *Service) GetUserHubs(claims *domain.Claims) ([]string, error) {
	return s.scopeRepo.GetUserHubs(claims.UserID)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

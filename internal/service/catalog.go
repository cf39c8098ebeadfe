package service

import (
	"context"
	"errors"

	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/emelinabraham-cmd/homeease-api/internal/errs"
	"github.com/emelinabraham-cmd/homeease-api/internal/sqlerr"
	"github.com/rs/zerolog"
)

var codeDuplicateService = "DUPLICATE_SERVICE"

// CatalogService manages the bookable service catalog. Its mutating
// operations are reachable only through admin-gated routes.
type CatalogService struct {
	services ServiceRepo
	logger   *zerolog.Logger
}

func NewCatalogService(services ServiceRepo, logger *zerolog.Logger) *CatalogService {
	return &CatalogService{
		services: services,
		logger:   logger,
	}
}

// Create adds a catalog entry. The trimmed name must not collide with an
// existing service; the pre-check answers the common case and the unique
// constraint on services.name catches the race, which sqlerr maps to the
// same conflict response.
func (s *CatalogService) Create(ctx context.Context, in domain.CreateServiceInput) (*domain.Service, error) {
	exists, err := s.services.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictError("A service with this name already exists", &codeDuplicateService)
	}

	svc, err := s.services.Insert(ctx, in)
	if err != nil {
		if sqlerr.ErrCode(err) == sqlerr.UniqueViolation {
			return nil, errs.NewConflictError("A service with this name already exists", &codeDuplicateService)
		}
		return nil, err
	}

	s.logger.Info().
		Str("service_id", svc.ID).
		Str("name", svc.Name).
		Msg("service created")

	return svc, nil
}

// ListActive returns the bookable catalog.
func (s *CatalogService) ListActive(ctx context.Context) ([]domain.Service, error) {
	return s.services.ListActive(ctx)
}

// SetActive flips a service's availability flag.
func (s *CatalogService) SetActive(ctx context.Context, id string, active bool) (*domain.Service, error) {
	svc, err := s.services.SetActive(ctx, id, active)
	if errors.Is(err, domain.ErrServiceNotFound) {
		return nil, errs.NewNotFoundError("The requested service does not exist", nil)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("service_id", svc.ID).
		Bool("is_active", svc.IsActive).
		Msg("service availability updated")

	return svc, nil
}

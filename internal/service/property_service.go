package service

import (
	"context"
	"fmt"

	"github.com/kcoproperties/leasing-api/internal/domain"
	"github.com/kcoproperties/leasing-api/internal/repository"
	"github.com/kcoproperties/leasing-api/internal/utils"
	"github.com/kcoproperties/leasing-api/pkg/logger"
)

// PropertyCache fronts the available-property listing. Cache failures are
// never surfaced; the database remains the source of truth.
type PropertyCache interface {
	GetAvailableProperties(ctx context.Context) ([]domain.Property, error)
	SetAvailableProperties(ctx context.Context, props []domain.Property) error
	InvalidateProperties(ctx context.Context) error
}

type PropertyService interface {
	CreateProperty(ctx context.Context, req *domain.PropertyReq) (*domain.Property, error)
	GetProperty(ctx context.Context, id int64) (*domain.Property, error)
	ListProperties(ctx context.Context, limit, offset int) ([]domain.Property, error)
	ListAvailableProperties(ctx context.Context) ([]domain.Property, error)
	UpdateProperty(ctx context.Context, id int64, patch *domain.PropertyPatch) (*domain.Property, error)
	DeleteProperty(ctx context.Context, id int64) (bool, error)
}

type propertyService struct {
	propertyRepo repository.PropertyRepository
	cache        PropertyCache
}

func NewPropertyService(propertyRepo repository.PropertyRepository, cache PropertyCache) PropertyService {
	return &propertyService{propertyRepo: propertyRepo, cache: cache}
}

func (s *propertyService) CreateProperty(ctx context.Context, req *domain.PropertyReq) (*domain.Property, error) {
	if err := s.validatePropertyRequest(req); err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.invalidate(ctx)
	return property, nil
}

func (s *propertyService) GetProperty(ctx context.Context, id int64) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

func (s *propertyService) ListProperties(ctx context.Context, limit, offset int) ([]domain.Property, error) {
	return s.propertyRepo.List(ctx, limit, offset)
}

func (s *propertyService) ListAvailableProperties(ctx context.Context) ([]domain.Property, error) {
	if s.cache != nil {
		cached, err := s.cache.GetAvailableProperties(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "Property cache read failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	props, err := s.propertyRepo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAvailableProperties(ctx, props); err != nil {
			logger.ErrorContext(ctx, "Property cache write failed", "error", err)
		}
	}
	return props, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, id int64, patch *domain.PropertyPatch) (*domain.Property, error) {
	property, err := s.propertyRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	if property != nil {
		s.invalidate(ctx)
	}
	return property, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.propertyRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete property: %w", err)
	}
	if deleted {
		s.invalidate(ctx)
	}
	return deleted, nil
}

func (s *propertyService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProperties(ctx); err != nil {
		logger.ErrorContext(ctx, "Property cache invalidation failed", "error", err)
	}
}

func (s *propertyService) validatePropertyRequest(req *domain.PropertyReq) error {
	req.Name = utils.NormalizeString(req.Name)
	req.Address = utils.NormalizeString(req.Address)

	if req.Name == "" {
		return validationErrorf("name is required")
	}
	if req.Address == "" {
		return validationErrorf("address is required")
	}
	if req.RentAmount < 0 || req.DepositAmount < 0 {
		return validationErrorf("rent and deposit must not be negative")
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/kcoproperties/leasing-api/internal/domain"
	"github.com/kcoproperties/leasing-api/internal/repository"
	"github.com/kcoproperties/leasing-api/internal/utils"
)

type UnitService interface {
	CreateUnit(ctx context.Context, req *domain.UnitReq) (*domain.Unit, error)
	GetUnit(ctx context.Context, id int64) (*domain.Unit, error)
	ListUnits(ctx context.Context, propertyID int64) ([]domain.Unit, error)
	ListAvailableUnits(ctx context.Context, propertyID int64) ([]domain.Unit, error)
	UpdateUnit(ctx context.Context, id int64, patch *domain.UnitPatch) (*domain.Unit, error)
	DeleteUnit(ctx context.Context, id int64) (bool, error)
}

type unitService struct {
	unitRepo     repository.UnitRepository
	propertyRepo repository.PropertyRepository
}

func NewUnitService(unitRepo repository.UnitRepository, propertyRepo repository.PropertyRepository) UnitService {
	return &unitService{unitRepo: unitRepo, propertyRepo: propertyRepo}
}

func (s *unitService) CreateUnit(ctx context.Context, req *domain.UnitReq) (*domain.Unit, error) {
	req.UnitNumber = utils.NormalizeString(req.UnitNumber)

	if req.PropertyID <= 0 {
		return nil, validationErrorf("property_id is required")
	}
	if req.UnitNumber == "" {
		return nil, validationErrorf("unit_number is required")
	}
	if req.RentAmount < 0 || req.DepositAmount < 0 {
		return nil, validationErrorf("rent and deposit must not be negative")
	}

	property, err := s.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, validationErrorf("property %d not found", req.PropertyID)
	}

	unit, err := s.unitRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}
	return unit, nil
}

func (s *unitService) GetUnit(ctx context.Context, id int64) (*domain.Unit, error) {
	return s.unitRepo.GetByID(ctx, id)
}

func (s *unitService) ListUnits(ctx context.Context, propertyID int64) ([]domain.Unit, error) {
	return s.unitRepo.ListByProperty(ctx, propertyID)
}

func (s *unitService) ListAvailableUnits(ctx context.Context, propertyID int64) ([]domain.Unit, error) {
	return s.unitRepo.ListAvailableByProperty(ctx, propertyID)
}

func (s *unitService) UpdateUnit(ctx context.Context, id int64, patch *domain.UnitPatch) (*domain.Unit, error) {
	return s.unitRepo.Update(ctx, id, patch)
}

func (s *unitService) DeleteUnit(ctx context.Context, id int64) (bool, error) {
	return s.unitRepo.Delete(ctx, id)
}

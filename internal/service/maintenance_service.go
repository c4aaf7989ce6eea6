package service

import (
	"context"
	"fmt"

	"github.com/kcoproperties/leasing-api/internal/domain"
	"github.com/kcoproperties/leasing-api/internal/repository"
	"github.com/kcoproperties/leasing-api/internal/utils"
	"github.com/kcoproperties/leasing-api/pkg/events"
	"github.com/kcoproperties/leasing-api/pkg/logger"
)

type MaintenanceService interface {
	OpenRequest(ctx context.Context, tenantID int64, req *domain.MaintenanceReq) (*domain.MaintenanceRequest, error)
	GetRequest(ctx context.Context, id int64) (*domain.MaintenanceRequest, error)
	ListRequests(ctx context.Context, limit, offset int) ([]domain.MaintenanceRequest, error)
	ListRequestsByTenant(ctx context.Context, tenantID int64) ([]domain.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id int64, patch *domain.MaintenancePatch) (*domain.MaintenanceRequest, error)
}

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	propertyRepo    repository.PropertyRepository
	eventBus        events.EventBus
}

func NewMaintenanceService(
	maintenanceRepo repository.MaintenanceRepository,
	propertyRepo repository.PropertyRepository,
	eventBus events.EventBus,
) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		propertyRepo:    propertyRepo,
		eventBus:        eventBus,
	}
}

func (s *maintenanceService) OpenRequest(ctx context.Context, tenantID int64, req *domain.MaintenanceReq) (*domain.MaintenanceRequest, error) {
	req.Title = utils.NormalizeString(req.Title)
	req.Description = utils.NormalizeString(req.Description)

	if req.PropertyID <= 0 {
		return nil, validationErrorf("property_id is required")
	}
	if req.Title == "" {
		return nil, validationErrorf("title is required")
	}
	if req.Description == "" {
		return nil, validationErrorf("description is required")
	}
	if _, ok := domain.ParseMaintenanceUrgency(string(req.Urgency)); !ok {
		return nil, validationErrorf("invalid urgency %q", req.Urgency)
	}

	request, err := s.maintenanceRepo.Create(ctx, tenantID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create maintenance request: %w", err)
	}

	propertyName := fmt.Sprintf("Property #%d", request.PropertyID)
	if property, err := s.propertyRepo.GetByID(ctx, request.PropertyID); err == nil && property != nil {
		propertyName = property.Name
	}

	notification := events.OwnerNotification{
		Title: "New Maintenance Request",
		Content: fmt.Sprintf("%s at %s (urgency: %s)\n\n%s",
			request.Title, propertyName, request.Urgency, request.Description),
	}
	if err := s.eventBus.Publish(ctx, events.NotifyOwner, notification); err != nil {
		logger.ErrorContext(ctx, "Failed to send maintenance notification", "error", err, "request_id", request.ID)
	}

	if err := s.eventBus.Publish(ctx, events.MaintenanceOpened, map[string]any{
		"request_id":  request.ID,
		"property_id": request.PropertyID,
		"urgency":     request.Urgency,
	}); err != nil {
		logger.ErrorContext(ctx, "Failed to publish maintenance opened event", "error", err, "request_id", request.ID)
	}

	return request, nil
}

func (s *maintenanceService) GetRequest(ctx context.Context, id int64) (*domain.MaintenanceRequest, error) {
	return s.maintenanceRepo.GetByID(ctx, id)
}

func (s *maintenanceService) ListRequests(ctx context.Context, limit, offset int) ([]domain.MaintenanceRequest, error) {
	return s.maintenanceRepo.List(ctx, limit, offset)
}

func (s *maintenanceService) ListRequestsByTenant(ctx context.Context, tenantID int64) ([]domain.MaintenanceRequest, error) {
	return s.maintenanceRepo.ListByTenant(ctx, tenantID)
}

func (s *maintenanceService) UpdateRequest(ctx context.Context, id int64, patch *domain.MaintenancePatch) (*domain.MaintenanceRequest, error) {
	if patch.Status != nil {
		if _, ok := domain.ParseMaintenanceStatus(string(*patch.Status)); !ok {
			return nil, validationErrorf("invalid maintenance status %q", *patch.Status)
		}
	}
	return s.maintenanceRepo.Update(ctx, id, patch)
}

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

type ApplicationService interface {
	SubmitApplication(ctx context.Context, req *domain.ApplicationReq) (*domain.Application, error)
	GetApplication(ctx context.Context, id int64) (*domain.Application, error)
	ListApplications(ctx context.Context, limit, offset int) ([]domain.Application, error)
	ListApplicationsByProperty(ctx context.Context, propertyID int64) ([]domain.Application, error)
	ReviewApplication(ctx context.Context, id int64, patch domain.ApplicationStatusPatch, reviewedBy int64) (*domain.Application, error)
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	propertyRepo    repository.PropertyRepository
	eventBus        events.EventBus
}

func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	propertyRepo repository.PropertyRepository,
	eventBus events.EventBus,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		propertyRepo:    propertyRepo,
		eventBus:        eventBus,
	}
}

func (s *applicationService) SubmitApplication(ctx context.Context, req *domain.ApplicationReq) (*domain.Application, error) {
	if err := s.validateApplicationRequest(req); err != nil {
		return nil, err
	}

	application, err := s.applicationRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	propertyName := fmt.Sprintf("Property #%d", application.PropertyID)
	if property, err := s.propertyRepo.GetByID(ctx, application.PropertyID); err == nil && property != nil {
		propertyName = property.Name
	}

	notification := events.OwnerNotification{
		Title: "New Rental Application Received",
		Content: fmt.Sprintf("New application from %s for %s.\n\nContact: %s | %s\n\nView in the admin panel to review details.",
			application.FullName, propertyName, application.Email, application.Phone),
	}
	if err := s.eventBus.Publish(ctx, events.NotifyOwner, notification); err != nil {
		logger.ErrorContext(ctx, "Failed to send application notification", "error", err, "application_id", application.ID)
	}

	event := events.ApplicationSubmittedEvent{
		ApplicationID: application.ID,
		PropertyID:    application.PropertyID,
		FullName:      application.FullName,
		Email:         application.Email,
		CreatedAt:     application.CreatedAt,
	}
	if err := s.eventBus.Publish(ctx, events.ApplicationSubmitted, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish application submitted event", "error", err, "application_id", application.ID)
	}

	return application, nil
}

func (s *applicationService) GetApplication(ctx context.Context, id int64) (*domain.Application, error) {
	return s.applicationRepo.GetByID(ctx, id)
}

func (s *applicationService) ListApplications(ctx context.Context, limit, offset int) ([]domain.Application, error) {
	return s.applicationRepo.List(ctx, limit, offset)
}

func (s *applicationService) ListApplicationsByProperty(ctx context.Context, propertyID int64) ([]domain.Application, error) {
	return s.applicationRepo.ListByProperty(ctx, propertyID)
}

func (s *applicationService) ReviewApplication(ctx context.Context, id int64, patch domain.ApplicationStatusPatch, reviewedBy int64) (*domain.Application, error) {
	if _, ok := domain.ParseApplicationStatus(string(patch.Status)); !ok {
		return nil, validationErrorf("invalid application status %q", patch.Status)
	}

	application, err := s.applicationRepo.UpdateStatus(ctx, id, patch, reviewedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	if application == nil {
		return nil, nil
	}

	if err := s.eventBus.Publish(ctx, events.ApplicationReviewed, map[string]any{
		"application_id": application.ID,
		"status":         application.Status,
		"reviewed_by":    reviewedBy,
	}); err != nil {
		logger.ErrorContext(ctx, "Failed to publish application reviewed event", "error", err, "application_id", application.ID)
	}

	return application, nil
}

func (s *applicationService) validateApplicationRequest(req *domain.ApplicationReq) error {
	req.FullName = utils.NormalizeString(req.FullName)
	req.Email = utils.NormalizeEmail(req.Email)
	req.Phone = utils.NormalizeString(req.Phone)

	if req.PropertyID <= 0 {
		return validationErrorf("property_id is required")
	}
	if req.FullName == "" {
		return validationErrorf("full_name is required")
	}
	if !utils.IsValidEmail(req.Email) {
		return validationErrorf("invalid email address")
	}
	if !utils.IsValidPhone(req.Phone) {
		return validationErrorf("invalid phone number")
	}
	if !req.ConsentGiven {
		return validationErrorf("consent is required to process an application")
	}
	return nil
}

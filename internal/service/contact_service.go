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

type ContactService interface {
	SubmitMessage(ctx context.Context, req *domain.ContactReq) (*domain.ContactMessage, error)
	ListMessages(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error)
	UpdateMessageStatus(ctx context.Context, id int64, status domain.ContactStatus) (*domain.ContactMessage, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	eventBus    events.EventBus
}

func NewContactService(contactRepo repository.ContactRepository, eventBus events.EventBus) ContactService {
	return &contactService{contactRepo: contactRepo, eventBus: eventBus}
}

func (s *contactService) SubmitMessage(ctx context.Context, req *domain.ContactReq) (*domain.ContactMessage, error) {
	req.Name = utils.NormalizeString(req.Name)
	req.Email = utils.NormalizeEmail(req.Email)
	req.Subject = utils.NormalizeString(req.Subject)
	req.Message = utils.NormalizeString(req.Message)

	if req.Name == "" {
		return nil, validationErrorf("name is required")
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, validationErrorf("invalid email address")
	}
	if req.Subject == "" {
		return nil, validationErrorf("subject is required")
	}
	if req.Message == "" {
		return nil, validationErrorf("message is required")
	}

	message, err := s.contactRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	notification := events.OwnerNotification{
		Title: "New Contact Message",
		Content: fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s",
			message.Name, message.Email, message.Subject, message.Message),
	}
	if err := s.eventBus.Publish(ctx, events.NotifyOwner, notification); err != nil {
		logger.ErrorContext(ctx, "Failed to send contact notification", "error", err, "message_id", message.ID)
	}

	event := events.ContactReceivedEvent{
		MessageID: message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		CreatedAt: message.CreatedAt,
	}
	if err := s.eventBus.Publish(ctx, events.ContactReceived, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish contact received event", "error", err, "message_id", message.ID)
	}

	return message, nil
}

func (s *contactService) ListMessages(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	return s.contactRepo.List(ctx, limit, offset)
}

func (s *contactService) UpdateMessageStatus(ctx context.Context, id int64, status domain.ContactStatus) (*domain.ContactMessage, error) {
	switch status {
	case domain.ContactNew, domain.ContactRead, domain.ContactResponded:
	default:
		return nil, validationErrorf("invalid contact status %q", status)
	}
	return s.contactRepo.UpdateStatus(ctx, id, status)
}
